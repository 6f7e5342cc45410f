package model

import (
	"encoding/json"

	"github.com/muhammadheryan/e-voting/constant"
)

// ChangeEvent is a realtime notification about a record of a collection.
type ChangeEvent struct {
	Collection string                `json:"collection"`
	Action     constant.ChangeAction `json:"action"`
	Record     json.RawMessage       `json:"record"`
}

// NomineeChange is the record payload of a nominees event.
type NomineeChange struct {
	ID          uint64  `json:"id"`
	TotalVotes  int64   `json:"total_votes"`
	TotalAmount float64 `json:"total_amount"`
}

// ConfigChange is the record payload of an app_config event.
type ConfigChange struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// LiveView is the projected state kept current by change events.
type LiveView struct {
	Title        string            `json:"title"`
	Subtitle     string            `json:"subtitle"`
	RateOptions  []RateOption      `json:"rate_options"`
	NomineeVotes map[uint64]string `json:"nominee_votes"`
}

type RateOption struct {
	Amount float64 `json:"amount"`
	Votes  int64   `json:"votes"`
	Label  string  `json:"label"`
}
