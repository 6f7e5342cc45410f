package model

import (
	"time"

	"github.com/muhammadheryan/e-voting/constant"
)

// VoteEntity represents the vote table entity
type VoteEntity struct {
	ID             uint64                 `db:"id" json:"id"`
	VoterID        uint64                 `db:"voter_id" json:"voter_id"`
	NomineeID      uint64                 `db:"nominee_id" json:"nominee_id"`
	CategoryID     uint64                 `db:"category_id" json:"category_id"`
	Votes          int64                  `db:"votes" json:"votes"`
	Amount         float64                `db:"amount" json:"amount"`
	TransactionRef string                 `db:"transaction_ref" json:"transaction_ref"`
	PaymentStatus  constant.PaymentStatus `db:"payment_status" json:"payment_status"`
	PaymentMethod  string                 `db:"payment_method" json:"payment_method"`
	CreatedAt      time.Time              `db:"created_at" json:"created_at"`
}

// NomineeTotals are the aggregate counters of a nominee after an increment.
type NomineeTotals struct {
	NomineeID   uint64  `db:"id" json:"id"`
	TotalVotes  int64   `db:"total_votes" json:"total_votes"`
	TotalAmount float64 `db:"total_amount" json:"total_amount"`
}

// ChosenNominee is the nominee picked in the current selection.
type ChosenNominee struct {
	ID         uint64 `json:"id"`
	Name       string `json:"name"`
	CategoryID uint64 `json:"category_id"`
}

// SelectionState is the per-session vote selection held between requests.
type SelectionState struct {
	Stage      constant.SelectionStage `json:"stage"`
	LoggedIn   bool                    `json:"logged_in"`
	VoterID    uint64                  `json:"voter_id"`
	Phone      string                  `json:"phone"`
	Amount     float64                 `json:"amount"`
	Votes      int64                   `json:"votes"`
	Nominee    *ChosenNominee          `json:"nominee,omitempty"`
	PendingRef string                  `json:"pending_ref,omitempty"`
}

// PaymentAttempt is the server-side record of an opened payment, keyed by reference.
type PaymentAttempt struct {
	Reference   string    `json:"reference"`
	SessionID   string    `json:"session_id"`
	VoterID     uint64    `json:"voter_id"`
	Phone       string    `json:"phone"`
	NomineeID   uint64    `json:"nominee_id"`
	NomineeName string    `json:"nominee_name"`
	CategoryID  uint64    `json:"category_id"`
	Votes       int64     `json:"votes"`
	Amount      float64   `json:"amount"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// PaymentOutcome is a successful payment ready to be converted into vote records.
type PaymentOutcome struct {
	VoterID        uint64
	NomineeID      uint64
	NomineeName    string
	CategoryID     uint64
	Votes          int64
	Amount         float64
	TransactionRef string
	IPAddress      string
	UserAgent      string
}

type ReconcileResult struct {
	Vote            *VoteEntity    `json:"vote"`
	Nominee         *NomineeTotals `json:"nominee,omitempty"`
	AlreadyRecorded bool           `json:"already_recorded"`
}

type SelectAmountRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

type ChooseNomineeRequest struct {
	NomineeID uint64 `json:"nominee_id" validate:"required"`
}

type PaymentCallbackRequest struct {
	Reference string `json:"reference" validate:"required"`
	Status    string `json:"status" validate:"required"`
}

// PaymentCheckout is the configuration handed to the payment widget.
type PaymentCheckout struct {
	Key       string          `json:"key"`
	Email     string          `json:"email"`
	Amount    int64           `json:"amount"`
	Currency  string          `json:"currency"`
	Channels  []string        `json:"channels"`
	Reference string          `json:"reference"`
	Metadata  PaymentMetadata `json:"metadata"`
}

type PaymentMetadata struct {
	NomineeID   uint64 `json:"nomineeId"`
	NomineeName string `json:"nomineeName"`
	CategoryID  uint64 `json:"categoryId"`
	Votes       int64  `json:"votes"`
	UserID      uint64 `json:"userId"`
}

type SelectionResponse struct {
	Selection SelectionState `json:"selection"`
	Message   string         `json:"message,omitempty"`
}

type PaymentResultResponse struct {
	Selection      SelectionState `json:"selection"`
	Message        string         `json:"message"`
	TransactionRef string         `json:"transaction_ref"`
	Vote           *VoteEntity    `json:"vote,omitempty"`
}
