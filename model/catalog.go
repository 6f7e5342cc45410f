package model

// CategoryEntity represents the category table entity
type CategoryEntity struct {
	ID           uint64 `db:"id" json:"id"`
	Name         string `db:"name" json:"name"`
	Description  string `db:"description" json:"description,omitempty"`
	DisplayOrder int    `db:"display_order" json:"display_order"`
	IsActive     bool   `db:"is_active" json:"is_active"`
	Icon         string `db:"icon" json:"icon,omitempty"`
}

// NomineeEntity represents the nominee table entity
type NomineeEntity struct {
	ID           uint64  `db:"id" json:"id"`
	Name         string  `db:"name" json:"name"`
	CategoryID   uint64  `db:"category_id" json:"category_id"`
	Bio          string  `db:"bio" json:"bio,omitempty"`
	Image        string  `db:"image" json:"-"`
	DisplayOrder int     `db:"display_order" json:"display_order"`
	IsActive     bool    `db:"is_active" json:"is_active"`
	TotalVotes   int64   `db:"total_votes" json:"total_votes"`
	TotalAmount  float64 `db:"total_amount" json:"total_amount"`
}

type NomineeItem struct {
	ID         uint64  `json:"id"`
	Name       string  `json:"name"`
	CategoryID uint64  `json:"category_id"`
	Bio        string  `json:"bio,omitempty"`
	ImageURL   string  `json:"image_url"`
	TotalVotes int64   `json:"total_votes"`
	Amount     float64 `json:"total_amount"`
}

type CategoryItem struct {
	ID           uint64        `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description,omitempty"`
	DisplayOrder int           `json:"display_order"`
	Nominees     []NomineeItem `json:"nominees"`
}

type CatalogResponse struct {
	Categories []CategoryItem `json:"categories"`
}

type LeaderboardItem struct {
	Rank        int     `json:"rank"`
	RankClass   string  `json:"rank_class,omitempty"`
	NomineeID   uint64  `json:"nominee_id"`
	Name        string  `json:"name"`
	TotalVotes  int64   `json:"total_votes"`
	TotalAmount float64 `json:"total_amount"`
}

type Leaderboard struct {
	CategoryID   uint64            `json:"category_id"`
	CategoryName string            `json:"category_name"`
	DisplayOrder int               `json:"display_order"`
	Items        []LeaderboardItem `json:"items"`
}

type DashboardResponse struct {
	TotalVotes     int64         `json:"total_votes"`
	TotalRevenue   float64       `json:"total_revenue"`
	TotalVoters    int64         `json:"total_voters"`
	AvgVoteValue   string        `json:"avg_vote_value"`
	CurrencySymbol string        `json:"currency_symbol"`
	Leaderboards   []Leaderboard `json:"leaderboards"`
}
