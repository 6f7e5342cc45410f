package voter

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/e-voting/model"
)

type SQL struct {
	conn *sqlx.DB
}

type VoterRepository interface {
	Create(ctx context.Context, req *model.VoterEntity) (*model.VoterEntity, error)
	Get(ctx context.Context, filter *model.VoterFilter) (*model.VoterEntity, error)
	UpdateLastLogin(ctx context.Context, id uint64, at time.Time) error
	IncrementTotalsTx(ctx context.Context, tx *sqlx.Tx, id uint64, amount float64, votes int64) error
	CountWithVotes(ctx context.Context) (int64, error)
}

func NewVoterRepository(conn *sqlx.DB) VoterRepository {
	return &SQL{conn: conn}
}

const (
	insertVoterQuery = `INSERT INTO voter (phone, is_active, total_spent, total_votes, first_login, last_login) VALUES (?, ?, ?, ?, ?, ?)`
	getVoterBase     = `SELECT id, phone, name, is_active, total_spent, total_votes, first_login, last_login FROM voter WHERE true`
	updateLastLogin  = `UPDATE voter SET last_login = ? WHERE id = ?`
	incrementTotals  = `UPDATE voter SET total_spent = total_spent + ?, total_votes = total_votes + ? WHERE id = ?`
	countWithVotes   = `SELECT COUNT(*) FROM voter WHERE is_active = 1 AND total_votes > 0`
)

func (s *SQL) Create(ctx context.Context, data *model.VoterEntity) (*model.VoterEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertVoterQuery, data.Phone, data.IsActive, data.TotalSpent, data.TotalVotes, data.FirstLogin, data.LastLogin)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

func (s *SQL) Get(ctx context.Context, filter *model.VoterFilter) (*model.VoterEntity, error) {
	query := getVoterBase
	args := make([]any, 0, 2)

	if filter.ID != 0 {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Phone != "" {
		query += " AND phone = ?"
		args = append(args, filter.Phone)
	}

	var entity model.VoterEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) UpdateLastLogin(ctx context.Context, id uint64, at time.Time) error {
	res, err := s.conn.ExecContext(ctx, updateLastLogin, at, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// IncrementTotalsTx adds amount and votes to the voter aggregates server-side.
func (s *SQL) IncrementTotalsTx(ctx context.Context, tx *sqlx.Tx, id uint64, amount float64, votes int64) error {
	res, err := tx.ExecContext(ctx, incrementTotals, amount, votes, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *SQL) CountWithVotes(ctx context.Context) (int64, error) {
	var total int64
	if err := s.conn.GetContext(ctx, &total, countWithVotes); err != nil {
		return 0, err
	}
	return total, nil
}
