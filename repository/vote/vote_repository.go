package vote

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/e-voting/model"
)

type SQL struct {
	conn *sqlx.DB
}

type VoteRepository interface {
	InsertVoteTx(ctx context.Context, tx *sqlx.Tx, vote *model.VoteEntity) (uint64, error)
	GetByTransactionRef(ctx context.Context, ref string) (*model.VoteEntity, error)
}

func NewVoteRepository(conn *sqlx.DB) VoteRepository {
	return &SQL{conn: conn}
}

const (
	insertVoteQuery = "INSERT INTO vote (voter_id, nominee_id, category_id, votes, amount, transaction_ref, payment_status, payment_method, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)"
	getVoteByRef    = "SELECT id, voter_id, nominee_id, category_id, votes, amount, transaction_ref, payment_status, payment_method, created_at FROM vote WHERE transaction_ref = ?"
)

// InsertVoteTx inserts a vote. The unique transaction_ref index rejects a second
// insert for an already reconciled payment.
func (r *SQL) InsertVoteTx(ctx context.Context, tx *sqlx.Tx, vote *model.VoteEntity) (uint64, error) {
	res, err := tx.ExecContext(ctx, insertVoteQuery,
		vote.VoterID, vote.NomineeID, vote.CategoryID, vote.Votes, vote.Amount,
		vote.TransactionRef, vote.PaymentStatus, vote.PaymentMethod, vote.CreatedAt)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) GetByTransactionRef(ctx context.Context, ref string) (*model.VoteEntity, error) {
	var v model.VoteEntity
	if err := r.conn.QueryRowxContext(ctx, getVoteByRef, ref).StructScan(&v); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}
