package session

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/e-voting/model"
)

type SQL struct {
	conn *sqlx.DB
}

type SessionRepository interface {
	Create(ctx context.Context, session *model.SessionEntity) (*model.SessionEntity, error)
	GetByToken(ctx context.Context, token string) (*model.SessionEntity, error)
}

func NewSessionRepository(conn *sqlx.DB) SessionRepository {
	return &SQL{conn: conn}
}

const (
	insertSession = `INSERT INTO voting_session (voter_id, session_token, is_active, expires_at, ip_address, user_agent, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`
	getByToken    = `SELECT id, voter_id, session_token, is_active, expires_at, ip_address, user_agent, created_at FROM voting_session WHERE session_token = ?`
)

func (s *SQL) Create(ctx context.Context, data *model.SessionEntity) (*model.SessionEntity, error) {
	res, err := s.conn.ExecContext(ctx, insertSession, data.VoterID, data.SessionToken, data.IsActive, data.ExpiresAt, data.IPAddress, data.UserAgent, data.CreatedAt)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	data.ID = uint64(id)
	return data, nil
}

func (s *SQL) GetByToken(ctx context.Context, token string) (*model.SessionEntity, error) {
	var entity model.SessionEntity
	if err := s.conn.QueryRowxContext(ctx, getByToken, token).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}
