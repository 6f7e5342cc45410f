package model

import "time"

// AuditEntry represents the audit_log table entity
type AuditEntry struct {
	ID        uint64         `db:"id" json:"id"`
	VoterID   *uint64        `db:"voter_id" json:"voter_id,omitempty"`
	Action    string         `db:"action" json:"action"`
	Details   map[string]any `db:"-" json:"details,omitempty"`
	IPAddress string         `db:"ip_address" json:"ip_address,omitempty"`
	UserAgent string         `db:"user_agent" json:"user_agent,omitempty"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
}
