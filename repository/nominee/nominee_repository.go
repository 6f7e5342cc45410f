package nominee

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/e-voting/model"
)

type SQL struct {
	conn *sqlx.DB
}

type NomineeRepository interface {
	ListActive(ctx context.Context) ([]model.NomineeEntity, error)
	GetByID(ctx context.Context, id uint64) (*model.NomineeEntity, error)
	IncrementTotalsTx(ctx context.Context, tx *sqlx.Tx, id uint64, votes int64, amount float64) (*model.NomineeTotals, error)
}

func NewNomineeRepository(conn *sqlx.DB) NomineeRepository {
	return &SQL{conn: conn}
}

const (
	nomineeColumns = `n.id, n.name, n.category_id, COALESCE(n.bio, '') as bio, n.image, n.display_order, n.is_active, n.total_votes, n.total_amount`

	listActiveNominees = `SELECT ` + nomineeColumns + `
FROM nominee n
JOIN category c ON c.id = n.category_id
WHERE n.is_active = 1 AND c.is_active = 1
ORDER BY n.category_id, n.display_order, n.id`

	getNomineeByID = `SELECT ` + nomineeColumns + ` FROM nominee n WHERE n.id = ?`

	incrementNomineeTotals = `UPDATE nominee SET total_votes = total_votes + ?, total_amount = total_amount + ? WHERE id = ?`

	getNomineeTotals = `SELECT id, total_votes, total_amount FROM nominee WHERE id = ?`
)

func (s *SQL) ListActive(ctx context.Context) ([]model.NomineeEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, listActiveNominees)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.NomineeEntity, 0)
	for rows.Next() {
		var it model.NomineeEntity
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.NomineeEntity, error) {
	var detail model.NomineeEntity
	if err := s.conn.QueryRowxContext(ctx, getNomineeByID, id).StructScan(&detail); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("%w", err)
	}
	return &detail, nil
}

// IncrementTotalsTx adds to the nominee aggregates and returns the totals as seen
// inside tx after the increment.
func (s *SQL) IncrementTotalsTx(ctx context.Context, tx *sqlx.Tx, id uint64, votes int64, amount float64) (*model.NomineeTotals, error) {
	res, err := tx.ExecContext(ctx, incrementNomineeTotals, votes, amount, id)
	if err != nil {
		return nil, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, sql.ErrNoRows
	}

	var totals model.NomineeTotals
	if err := tx.GetContext(ctx, &totals, getNomineeTotals, id); err != nil {
		return nil, err
	}
	return &totals, nil
}
