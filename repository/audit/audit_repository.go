package audit

import (
	"context"
	"encoding/json"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/e-voting/model"
)

type SQL struct {
	conn *sqlx.DB
}

type AuditRepository interface {
	Insert(ctx context.Context, entry *model.AuditEntry) error
}

func NewAuditRepository(conn *sqlx.DB) AuditRepository {
	return &SQL{conn: conn}
}

const insertAuditLog = `INSERT INTO audit_log (voter_id, action, details, ip_address, user_agent, created_at) VALUES (?, ?, ?, ?, ?, ?)`

func (s *SQL) Insert(ctx context.Context, entry *model.AuditEntry) error {
	var details []byte
	if len(entry.Details) > 0 {
		b, err := json.Marshal(entry.Details)
		if err != nil {
			return err
		}
		details = b
	}
	_, err := s.conn.ExecContext(ctx, insertAuditLog, entry.VoterID, entry.Action, details, entry.IPAddress, entry.UserAgent, entry.CreatedAt)
	return err
}
