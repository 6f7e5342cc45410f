package vote_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/muhammadheryan/e-voting/application/vote"
	"github.com/muhammadheryan/e-voting/cmd/config"
	"github.com/muhammadheryan/e-voting/constant"
	auditmocks "github.com/muhammadheryan/e-voting/mocks/application/audit"
	configappmocks "github.com/muhammadheryan/e-voting/mocks/application/config"
	nomineemocks "github.com/muhammadheryan/e-voting/mocks/repository/nominee"
	redismocks "github.com/muhammadheryan/e-voting/mocks/repository/redis"
	txmocks "github.com/muhammadheryan/e-voting/mocks/repository/tx"
	votemocks "github.com/muhammadheryan/e-voting/mocks/repository/vote"
	votermocks "github.com/muhammadheryan/e-voting/mocks/repository/voter"
	paystackmocks "github.com/muhammadheryan/e-voting/mocks/thirdparty/paystack"
	rabbitmocks "github.com/muhammadheryan/e-voting/mocks/thirdparty/rabbitmq"
	"github.com/muhammadheryan/e-voting/model"
	redisrepo "github.com/muhammadheryan/e-voting/repository/redis"
	"github.com/muhammadheryan/e-voting/thirdparty/paystack"
	"github.com/muhammadheryan/e-voting/thirdparty/rabbitmq"
	ctxutil "github.com/muhammadheryan/e-voting/utils/context"
	cerr "github.com/muhammadheryan/e-voting/utils/errors"
)

const sessionID = "session_1700000000000_abc"

type fields struct {
	configApp   *configappmocks.ConfigApp
	voteRepo    *votemocks.VoteRepository
	nomineeRepo *nomineemocks.NomineeRepository
	voterRepo   *votermocks.VoterRepository
	txRepo      *txmocks.TxRepository
	redisRepo   *redismocks.RedisRepository
	publisher   *rabbitmocks.EventPublisher
	paystack    *paystackmocks.Client
	recorder    *auditmocks.Recorder
}

func newFields(t *testing.T) fields {
	return fields{
		configApp:   configappmocks.NewConfigApp(t),
		voteRepo:    votemocks.NewVoteRepository(t),
		nomineeRepo: nomineemocks.NewNomineeRepository(t),
		voterRepo:   votermocks.NewVoterRepository(t),
		txRepo:      txmocks.NewTxRepository(t),
		redisRepo:   redismocks.NewRedisRepository(t),
		publisher:   rabbitmocks.NewEventPublisher(t),
		paystack:    paystackmocks.NewClient(t),
		recorder:    auditmocks.NewRecorder(t),
	}
}

func (f fields) app() vote.VoteApp {
	cfg := &config.Config{
		Auth:    config.AuthConfig{SessionExpTime: 24 * time.Hour},
		Payment: config.PaymentConfig{EmailDomain: "votingapp.com", AttemptExpiration: 15 * time.Minute},
		Voting:  config.VotingConfig{SelectionTTL: 24 * time.Hour},
	}
	return vote.NewVoteApp(cfg, f.configApp, f.voteRepo, f.nomineeRepo, f.voterRepo, f.txRepo, f.redisRepo, f.publisher, f.paystack, f.recorder)
}

func sessionCtx() context.Context {
	return ctxutil.WithSession(context.Background(), 42, sessionID)
}

func attempt(ref string) *model.PaymentAttempt {
	return &model.PaymentAttempt{
		Reference:   ref,
		SessionID:   sessionID,
		VoterID:     42,
		Phone:       "0244000000",
		NomineeID:   1,
		NomineeName: "Maccarthy Charles",
		CategoryID:  1,
		Votes:       5,
		Amount:      5,
		ExpiresAt:   time.Now().Add(15 * time.Minute),
	}
}

func outcome(ref string) model.PaymentOutcome {
	return model.PaymentOutcome{
		VoterID:        42,
		NomineeID:      1,
		NomineeName:    "Maccarthy Charles",
		CategoryID:     1,
		Votes:          5,
		Amount:         5,
		TransactionRef: ref,
	}
}

func stage(s constant.SelectionStage) interface{} {
	return mock.MatchedBy(func(st *model.SelectionState) bool { return st.Stage == s })
}

func paymentResolved(ref string) model.SelectionState {
	s := paymentPending(ref)
	s.Stage = constant.StagePaymentResolved
	return s
}

// applyUpdate runs the update function against current, as Redis would under
// WATCH, and captures the state it writes.
func applyUpdate(current *model.SelectionState, written **model.SelectionState) func(mock.Arguments) {
	return func(args mock.Arguments) {
		fn := args.Get(3).(redisrepo.SelectionUpdateFunc)
		next, err := fn(current)
		if err == nil {
			*written = next
		}
	}
}

func recordFailed() interface{} {
	return mock.MatchedBy(func(e *model.AuditEntry) bool {
		return e.Action == constant.AuditActionVoteRecordFailed && e.Details["transaction_ref"] == "txn_abc123"
	})
}

func TestVoteApp_HandlePaymentCallback(t *testing.T) {
	tx := &sqlx.Tx{}

	tests := []struct {
		name     string
		req      *model.PaymentCallbackRequest
		mockCall func(f fields)
		check    func(t *testing.T, got *model.PaymentResultResponse)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: ten votes for Maccarthy Charles recorded and selection cleared",
			req:  &model.PaymentCallbackRequest{Reference: "txn_abc123", Status: "success"},
			mockCall: func(f fields) {
				pending := paymentPending("txn_abc123")
				pending.Amount, pending.Votes = 10, 10
				paid := attempt("txn_abc123")
				paid.Amount, paid.Votes = 10, 10
				f.redisRepo.On("GetSelection", mock.Anything, sessionID).Return(&pending, nil).Once()
				f.configApp.On("Get", mock.Anything).Return(baseConfig(), nil).Once()
				f.redisRepo.On("GetPaymentAttempt", mock.Anything, "txn_abc123").Return(paid, nil).Once()
				f.paystack.On("Enabled").Return(false).Once()
				f.redisRepo.On("SetSelection", mock.Anything, sessionID, stage(constant.StagePaymentResolved), 24*time.Hour).Return(nil).Once()

				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.voteRepo.On("InsertVoteTx", mock.Anything, tx, mock.MatchedBy(func(v *model.VoteEntity) bool {
					return v.VoterID == 42 && v.NomineeID == 1 && v.CategoryID == 1 && v.Votes == 10 && v.Amount == 10 &&
						v.TransactionRef == "txn_abc123" &&
						v.PaymentStatus == constant.PaymentStatusCompleted &&
						v.PaymentMethod == constant.PaymentMethodMobileMoney
				})).Return(uint64(99), nil).Once()
				f.nomineeRepo.On("IncrementTotalsTx", mock.Anything, tx, uint64(1), int64(10), 10.0).
					Return(&model.NomineeTotals{NomineeID: 1, TotalVotes: 110, TotalAmount: 110}, nil).Once()
				f.voterRepo.On("IncrementTotalsTx", mock.Anything, tx, uint64(42), 10.0, int64(10)).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.recorder.On("Record", mock.Anything, mock.MatchedBy(func(e *model.AuditEntry) bool {
					return e.Action == constant.AuditActionVoteCast && e.Details["transaction_ref"] == "txn_abc123" &&
						e.Details["votes"] == int64(10) && e.Details["amount"] == 10.0
				})).Once()
				f.publisher.On("PublishChange", mock.Anything, mock.MatchedBy(func(ev model.ChangeEvent) bool {
					var change model.NomineeChange
					_ = json.Unmarshal(ev.Record, &change)
					return ev.Collection == constant.CollectionNominees && ev.Action == constant.ChangeActionUpdate &&
						change.ID == 1 && change.TotalVotes == 110 && change.TotalAmount == 110
				})).Return(nil).Once()

				resolved := paymentResolved("txn_abc123")
				var written *model.SelectionState
				f.redisRepo.On("UpdateSelection", mock.Anything, sessionID, 24*time.Hour, mock.Anything).
					Run(applyUpdate(&resolved, &written)).Return(nil).Once()
				f.redisRepo.On("DeletePaymentAttempt", mock.Anything, "txn_abc123").Return(nil).Once()
			},
			check: func(t *testing.T, got *model.PaymentResultResponse) {
				assert.Equal(t, "Payment Successful! You've successfully voted for Maccarthy Charles with 10 votes. Amount: ₵10. Transaction Reference: txn_abc123", got.Message)
				assert.Equal(t, "txn_abc123", got.TransactionRef)
				assert.Equal(t, uint64(99), got.Vote.ID)
				assert.Equal(t, int64(10), got.Vote.Votes)
				assert.Equal(t, loggedIn(), got.Selection)
			},
		},
		{
			name: "success: selection changed during recording is kept",
			req:  &model.PaymentCallbackRequest{Reference: "txn_abc123", Status: "success"},
			mockCall: func(f fields) {
				pending := paymentPending("txn_abc123")
				f.redisRepo.On("GetSelection", mock.Anything, sessionID).Return(&pending, nil).Once()
				f.configApp.On("Get", mock.Anything).Return(baseConfig(), nil).Once()
				f.redisRepo.On("GetPaymentAttempt", mock.Anything, "txn_abc123").Return(attempt("txn_abc123"), nil).Once()
				f.paystack.On("Enabled").Return(false).Once()
				f.redisRepo.On("SetSelection", mock.Anything, sessionID, stage(constant.StagePaymentResolved), 24*time.Hour).Return(nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.voteRepo.On("InsertVoteTx", mock.Anything, tx, mock.Anything).Return(uint64(99), nil).Once()
				f.nomineeRepo.On("IncrementTotalsTx", mock.Anything, tx, uint64(1), int64(5), 5.0).
					Return(&model.NomineeTotals{NomineeID: 1, TotalVotes: 105, TotalAmount: 105}, nil).Once()
				f.voterRepo.On("IncrementTotalsTx", mock.Anything, tx, uint64(42), 5.0, int64(5)).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.recorder.On("Record", mock.Anything, mock.Anything).Once()
				f.publisher.On("PublishChange", mock.Anything, mock.Anything).Return(nil).Once()

				// the voter picked a new amount while the vote was being recorded
				current := amountSelected(10, 10)
				var written *model.SelectionState
				f.redisRepo.On("UpdateSelection", mock.Anything, sessionID, 24*time.Hour, mock.Anything).
					Run(applyUpdate(&current, &written)).Return(nil).Once()
				f.redisRepo.On("DeletePaymentAttempt", mock.Anything, "txn_abc123").Return(nil).Once()
			},
			check: func(t *testing.T, got *model.PaymentResultResponse) {
				assert.Equal(t, amountSelected(10, 10), got.Selection)
				assert.Contains(t, got.Message, "Maccarthy Charles with 5 votes")
			},
		},
		{
			name: "failure: non-success status leaves data untouched",
			req:  &model.PaymentCallbackRequest{Reference: "txn_abc123", Status: "failed"},
			mockCall: func(f fields) {
				pending := paymentPending("txn_abc123")
				f.redisRepo.On("GetSelection", mock.Anything, sessionID).Return(&pending, nil).Once()
				f.configApp.On("Get", mock.Anything).Return(baseConfig(), nil).Once()
				f.redisRepo.On("GetPaymentAttempt", mock.Anything, "txn_abc123").Return(attempt("txn_abc123"), nil).Once()
				f.redisRepo.On("SetSelection", mock.Anything, sessionID, stage(constant.StageNomineeChosen), 24*time.Hour).Return(nil).Once()
				f.recorder.On("Record", mock.Anything, mock.MatchedBy(func(e *model.AuditEntry) bool {
					return e.Action == constant.AuditActionPaymentFailed
				})).Once()
			},
			wantErr: true,
			errCode: constant.ErrPaymentNotCompleted,
		},
		{
			name: "failure: provider amount differs",
			req:  &model.PaymentCallbackRequest{Reference: "txn_abc123", Status: "success"},
			mockCall: func(f fields) {
				pending := paymentPending("txn_abc123")
				f.redisRepo.On("GetSelection", mock.Anything, sessionID).Return(&pending, nil).Once()
				f.configApp.On("Get", mock.Anything).Return(baseConfig(), nil).Once()
				f.redisRepo.On("GetPaymentAttempt", mock.Anything, "txn_abc123").Return(attempt("txn_abc123"), nil).Once()
				f.paystack.On("Enabled").Return(true).Once()
				f.paystack.On("Verify", mock.Anything, "txn_abc123").
					Return(&paystack.Transaction{Reference: "txn_abc123", Status: "success", Amount: 100}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrPaymentMismatch,
		},
		{
			name: "failure: attempt of another voter",
			req:  &model.PaymentCallbackRequest{Reference: "txn_abc123", Status: "success"},
			mockCall: func(f fields) {
				pending := paymentPending("txn_abc123")
				other := attempt("txn_abc123")
				other.VoterID = 7
				f.redisRepo.On("GetSelection", mock.Anything, sessionID).Return(&pending, nil).Once()
				f.configApp.On("Get", mock.Anything).Return(baseConfig(), nil).Once()
				f.redisRepo.On("GetPaymentAttempt", mock.Anything, "txn_abc123").Return(other, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
		{
			name: "success: replayed callback answers from the recorded vote",
			req:  &model.PaymentCallbackRequest{Reference: "txn_abc123", Status: "success"},
			mockCall: func(f fields) {
				state := loggedIn()
				f.redisRepo.On("GetSelection", mock.Anything, sessionID).Return(&state, nil).Once()
				f.configApp.On("Get", mock.Anything).Return(baseConfig(), nil).Once()
				f.redisRepo.On("GetPaymentAttempt", mock.Anything, "txn_abc123").Return(nil, nil).Once()
				f.voteRepo.On("GetByTransactionRef", mock.Anything, "txn_abc123").
					Return(&model.VoteEntity{ID: 99, VoterID: 42, NomineeID: 1, Votes: 5, Amount: 5, TransactionRef: "txn_abc123"}, nil).Once()
				f.nomineeRepo.On("GetByID", mock.Anything, uint64(1)).Return(&model.NomineeEntity{ID: 1, Name: "Maccarthy Charles"}, nil).Once()
			},
			check: func(t *testing.T, got *model.PaymentResultResponse) {
				assert.Contains(t, got.Message, "Maccarthy Charles with 5 votes")
				assert.Equal(t, uint64(99), got.Vote.ID)
			},
		},
		{
			name: "failure: vote insert error carries the reference",
			req:  &model.PaymentCallbackRequest{Reference: "txn_abc123", Status: "success"},
			mockCall: func(f fields) {
				pending := paymentPending("txn_abc123")
				f.redisRepo.On("GetSelection", mock.Anything, sessionID).Return(&pending, nil).Once()
				f.configApp.On("Get", mock.Anything).Return(baseConfig(), nil).Once()
				f.redisRepo.On("GetPaymentAttempt", mock.Anything, "txn_abc123").Return(attempt("txn_abc123"), nil).Once()
				f.paystack.On("Enabled").Return(false).Once()
				f.redisRepo.On("SetSelection", mock.Anything, sessionID, stage(constant.StagePaymentResolved), 24*time.Hour).Return(nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.voteRepo.On("InsertVoteTx", mock.Anything, tx, mock.Anything).Return(uint64(0), errors.New("deadlock")).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				f.recorder.On("Record", mock.Anything, recordFailed()).Once()
			},
			wantErr: true,
			errCode: constant.ErrVoteRecordFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			got, err := f.app().HandlePaymentCallback(sessionCtx(), tt.req, "10.0.0.1", "test-agent")
			if tt.wantErr {
				require.Error(t, err)
				var ce cerr.CustomError
				require.True(t, errors.As(err, &ce))
				assert.Equal(t, constant.ErrorTypeCode[tt.errCode], ce.ErrorCode())
				return
			}
			require.NoError(t, err)
			tt.check(t, got)
		})
	}
}

func TestVoteApp_Reconcile(t *testing.T) {
	tx := &sqlx.Tx{}

	tests := []struct {
		name        string
		mockCall    func(f fields)
		wantAlready bool
		wantErr     bool
	}{
		{
			name: "duplicate reference returns existing vote without aggregate change",
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.voteRepo.On("InsertVoteTx", mock.Anything, tx, mock.Anything).Return(uint64(0), &mysql.MySQLError{Number: 1062}).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				f.voteRepo.On("GetByTransactionRef", mock.Anything, "txn_abc123").
					Return(&model.VoteEntity{ID: 99, TransactionRef: "txn_abc123"}, nil).Once()
			},
			wantAlready: true,
		},
		{
			name: "nominee update failure rolls back",
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.voteRepo.On("InsertVoteTx", mock.Anything, tx, mock.Anything).Return(uint64(99), nil).Once()
				f.nomineeRepo.On("IncrementTotalsTx", mock.Anything, tx, uint64(1), int64(5), 5.0).Return(nil, errors.New("db down")).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				f.recorder.On("Record", mock.Anything, recordFailed()).Once()
			},
			wantErr: true,
		},
		{
			name: "voter update failure rolls back",
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.voteRepo.On("InsertVoteTx", mock.Anything, tx, mock.Anything).Return(uint64(99), nil).Once()
				f.nomineeRepo.On("IncrementTotalsTx", mock.Anything, tx, uint64(1), int64(5), 5.0).
					Return(&model.NomineeTotals{NomineeID: 1, TotalVotes: 5, TotalAmount: 5}, nil).Once()
				f.voterRepo.On("IncrementTotalsTx", mock.Anything, tx, uint64(42), 5.0, int64(5)).Return(errors.New("no rows")).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				f.recorder.On("Record", mock.Anything, recordFailed()).Once()
			},
			wantErr: true,
		},
		{
			name: "publish failure does not fail the vote",
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.voteRepo.On("InsertVoteTx", mock.Anything, tx, mock.Anything).Return(uint64(99), nil).Once()
				f.nomineeRepo.On("IncrementTotalsTx", mock.Anything, tx, uint64(1), int64(5), 5.0).
					Return(&model.NomineeTotals{NomineeID: 1, TotalVotes: 5, TotalAmount: 5}, nil).Once()
				f.voterRepo.On("IncrementTotalsTx", mock.Anything, tx, uint64(42), 5.0, int64(5)).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.recorder.On("Record", mock.Anything, mock.Anything).Once()
				f.publisher.On("PublishChange", mock.Anything, mock.Anything).Return(errors.New("channel closed")).Once()
			},
		},
		{
			name: "duplicate reference whose vote cannot be read is a failure",
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.voteRepo.On("InsertVoteTx", mock.Anything, tx, mock.Anything).Return(uint64(0), &mysql.MySQLError{Number: 1062}).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				f.voteRepo.On("GetByTransactionRef", mock.Anything, "txn_abc123").Return(nil, errors.New("db down")).Once()
				f.recorder.On("Record", mock.Anything, recordFailed()).Once()
			},
			wantErr: true,
		},
		{
			name: "begin failure",
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, errors.New("db down")).Once()
				f.txRepo.On("RollbackTx", mock.Anything).Return(nil).Maybe()
				f.recorder.On("Record", mock.Anything, recordFailed()).Once()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			got, err := f.app().Reconcile(context.Background(), outcome("txn_abc123"))
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, cerr.IsType(err, constant.ErrVoteRecordFailed))
				assert.Contains(t, err.Error(), "txn_abc123")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAlready, got.AlreadyRecorded)
			assert.Equal(t, uint64(99), got.Vote.ID)
		})
	}
}

func TestVoteApp_InitiatePayment(t *testing.T) {
	f := newFields(t)
	chosen := nomineeChosen()
	f.redisRepo.On("GetSelection", mock.Anything, sessionID).Return(&chosen, nil).Once()
	f.configApp.On("Get", mock.Anything).Return(baseConfig(), nil).Once()
	f.redisRepo.On("SetPaymentAttempt", mock.Anything, mock.MatchedBy(func(a *model.PaymentAttempt) bool {
		return strings.HasPrefix(a.Reference, "vote_") && a.SessionID == sessionID && a.VoterID == 42 &&
			a.NomineeID == 1 && a.Votes == 5 && a.Amount == 5
	}), 24*time.Hour).Return(nil).Once()
	f.redisRepo.On("SetSelection", mock.Anything, sessionID, stage(constant.StagePaymentPending), 24*time.Hour).Return(nil).Once()
	f.publisher.On("PublishPaymentExpiration", mock.Anything, mock.MatchedBy(func(m rabbitmq.PaymentExpirationMessage) bool {
		return m.SessionID == sessionID && strings.HasPrefix(m.Reference, "vote_")
	})).Return(nil).Once()

	got, err := f.app().InitiatePayment(sessionCtx())
	require.NoError(t, err)
	assert.Equal(t, int64(500), got.Amount)
	assert.Equal(t, "0244000000@votingapp.com", got.Email)
	assert.Equal(t, "Maccarthy Charles", got.Metadata.NomineeName)
}

func TestVoteApp_ExpirePayment(t *testing.T) {
	tests := []struct {
		name        string
		current     *model.SelectionState
		noAttempt   bool
		updateErr   error
		wantWritten *model.SelectionState
		wantErr     bool
	}{
		{
			name:        "pending attempt returns to chosen nominee",
			current:     func() *model.SelectionState { s := paymentPending("vote_1"); return &s }(),
			wantWritten: func() *model.SelectionState { s := nomineeChosen(); return &s }(),
		},
		{
			name:    "payment recorded meanwhile leaves the cleared selection",
			current: func() *model.SelectionState { s := loggedIn(); return &s }(),
		},
		{
			name:    "payment being recorded is left alone",
			current: func() *model.SelectionState { s := paymentResolved("vote_1"); return &s }(),
		},
		{
			name:    "newer attempt is left alone",
			current: func() *model.SelectionState { s := paymentPending("vote_2"); return &s }(),
		},
		{
			name: "session without selection",
		},
		{
			name:      "unknown attempt",
			noAttempt: true,
		},
		{
			name:      "selection kept changing",
			current:   func() *model.SelectionState { s := paymentPending("vote_1"); return &s }(),
			updateErr: redisrepo.ErrConflict,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			var written *model.SelectionState
			if tt.noAttempt {
				f.redisRepo.On("GetPaymentAttempt", mock.Anything, "vote_1").Return(nil, nil).Once()
			} else {
				f.redisRepo.On("GetPaymentAttempt", mock.Anything, "vote_1").Return(attempt("vote_1"), nil).Once()
				f.redisRepo.On("UpdateSelection", mock.Anything, sessionID, 24*time.Hour, mock.Anything).
					Run(applyUpdate(tt.current, &written)).Return(tt.updateErr).Once()
			}

			err := f.app().ExpirePayment(context.Background(), "vote_1")
			if tt.wantErr {
				assert.True(t, cerr.IsType(err, constant.ErrInternal))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantWritten, written)
		})
	}
}

func TestVoteApp_ChooseNominee(t *testing.T) {
	tests := []struct {
		name     string
		mockCall func(f fields)
		errCode  constant.ErrorType
		wantErr  bool
	}{
		{
			name: "success",
			mockCall: func(f fields) {
				state := amountSelected(5, 5)
				f.nomineeRepo.On("GetByID", mock.Anything, uint64(1)).
					Return(&model.NomineeEntity{ID: 1, Name: "Maccarthy Charles", CategoryID: 1, IsActive: true}, nil).Once()
				f.redisRepo.On("GetSelection", mock.Anything, sessionID).Return(&state, nil).Once()
				f.configApp.On("Get", mock.Anything).Return(baseConfig(), nil).Once()
				f.redisRepo.On("SetSelection", mock.Anything, sessionID, stage(constant.StageNomineeChosen), 24*time.Hour).Return(nil).Once()
			},
		},
		{
			name: "zero amount blocks the vote",
			mockCall: func(f fields) {
				f.nomineeRepo.On("GetByID", mock.Anything, uint64(1)).
					Return(&model.NomineeEntity{ID: 1, Name: "Maccarthy Charles", CategoryID: 1, IsActive: true}, nil).Once()
				f.redisRepo.On("GetSelection", mock.Anything, sessionID).Return(nil, nil).Once()
				f.voterRepo.On("Get", mock.Anything, &model.VoterFilter{ID: 42}).
					Return(&model.VoterEntity{ID: 42, Phone: "0244000000"}, nil).Once()
				f.configApp.On("Get", mock.Anything).Return(baseConfig(), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrAmountNotSelected,
		},
		{
			name: "unknown nominee",
			mockCall: func(f fields) {
				f.nomineeRepo.On("GetByID", mock.Anything, uint64(1)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			got, err := f.app().ChooseNominee(sessionCtx(), &model.ChooseNomineeRequest{NomineeID: 1})
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, cerr.IsType(err, tt.errCode), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Maccarthy Charles", got.Selection.Nominee.Name)
		})
	}
}

func TestVoteApp_RequiresSession(t *testing.T) {
	f := newFields(t)
	_, err := f.app().GetSelection(context.Background())
	assert.True(t, cerr.IsType(err, constant.ErrNotLoggedIn))
}
