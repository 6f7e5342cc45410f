package model

import (
	"time"

	"github.com/muhammadheryan/e-voting/constant"
)

// ConfigEntity represents the app_config table entity
type ConfigEntity struct {
	ID          uint64                   `db:"id" json:"id"`
	Key         string                   `db:"config_key" json:"key"`
	Value       string                   `db:"value" json:"value"`
	Type        constant.ConfigValueType `db:"type" json:"type"`
	Description string                   `db:"description" json:"description,omitempty"`
	IsActive    bool                     `db:"is_active" json:"is_active"`
	UpdatedAt   *time.Time               `db:"updated_at" json:"updated_at,omitempty"`
}

// VoteRate is one entry of the vote_conversion_rates table.
type VoteRate struct {
	Amount float64 `json:"amount"`
	Votes  int64   `json:"votes"`
}

// AppConfig is the typed view over all active config entries.
type AppConfig struct {
	Title             string         `json:"app_title"`
	Subtitle          string         `json:"app_subtitle"`
	VotingEnabled     bool           `json:"voting_enabled"`
	PaystackPublicKey string         `json:"paystack_public_key"`
	Currency          string         `json:"currency"`
	CurrencySymbol    string         `json:"currency_symbol"`
	VoteRates         []VoteRate     `json:"vote_conversion_rates"`
	MinVoteAmount     float64        `json:"min_vote_amount"`
	MaxVoteAmount     float64        `json:"max_vote_amount"`
	Values            map[string]any `json:"values"`
}

// FindRate returns the configured rate for amount.
func (c *AppConfig) FindRate(amount float64) (VoteRate, bool) {
	for _, r := range c.VoteRates {
		if r.Amount == amount {
			return r, true
		}
	}
	return VoteRate{}, false
}

type UpdateConfigRequest struct {
	Key   string `json:"-"`
	Value string `json:"value" validate:"required"`
}
