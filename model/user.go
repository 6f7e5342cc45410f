package model

import "time"

// VoterEntity represents the voter table entity
type VoterEntity struct {
	ID         uint64     `db:"id" json:"id"`
	Phone      string     `db:"phone" json:"phone"`
	Name       string     `db:"name" json:"name,omitempty"`
	IsActive   bool       `db:"is_active" json:"is_active"`
	TotalSpent float64    `db:"total_spent" json:"total_spent"`
	TotalVotes int64      `db:"total_votes" json:"total_votes"`
	FirstLogin time.Time  `db:"first_login" json:"first_login"`
	LastLogin  *time.Time `db:"last_login" json:"last_login,omitempty"`
}

// VoterFilter for querying voters
type VoterFilter struct {
	ID    uint64
	Phone string
}

// SessionEntity represents the voting_session table entity
type SessionEntity struct {
	ID           uint64    `db:"id" json:"id"`
	VoterID      uint64    `db:"voter_id" json:"voter_id"`
	SessionToken string    `db:"session_token" json:"session_token"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	ExpiresAt    time.Time `db:"expires_at" json:"expires_at"`
	IPAddress    string    `db:"ip_address" json:"ip_address"`
	UserAgent    string    `db:"user_agent" json:"user_agent"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// LoginRequest carries the 9-digit phone number without its leading zero.
type LoginRequest struct {
	Phone     string `json:"phone" validate:"required,localphone"`
	IPAddress string `json:"-"`
	UserAgent string `json:"-"`
}

type LoginResponse struct {
	Phone     string    `json:"phone"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Message   string    `json:"message"`
}
