package vote

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/e-voting/application/audit"
	appconfig "github.com/muhammadheryan/e-voting/application/config"
	"github.com/muhammadheryan/e-voting/cmd/config"
	"github.com/muhammadheryan/e-voting/constant"
	"github.com/muhammadheryan/e-voting/model"
	nomineerepo "github.com/muhammadheryan/e-voting/repository/nominee"
	redisrepo "github.com/muhammadheryan/e-voting/repository/redis"
	txrepo "github.com/muhammadheryan/e-voting/repository/tx"
	voterepo "github.com/muhammadheryan/e-voting/repository/vote"
	voterrepo "github.com/muhammadheryan/e-voting/repository/voter"
	"github.com/muhammadheryan/e-voting/thirdparty/paystack"
	"github.com/muhammadheryan/e-voting/thirdparty/rabbitmq"
	ctxutil "github.com/muhammadheryan/e-voting/utils/context"
	"github.com/muhammadheryan/e-voting/utils/dberr"
	"github.com/muhammadheryan/e-voting/utils/errors"
	"github.com/muhammadheryan/e-voting/utils/logger"
	"go.uber.org/zap"
)

type VoteApp interface {
	GetSelection(ctx context.Context) (*model.SelectionResponse, error)
	SelectAmount(ctx context.Context, req *model.SelectAmountRequest) (*model.SelectionResponse, error)
	ChooseNominee(ctx context.Context, req *model.ChooseNomineeRequest) (*model.SelectionResponse, error)
	InitiatePayment(ctx context.Context) (*model.PaymentCheckout, error)
	CancelPayment(ctx context.Context) (*model.SelectionResponse, error)
	HandlePaymentCallback(ctx context.Context, req *model.PaymentCallbackRequest, ipAddress, userAgent string) (*model.PaymentResultResponse, error)
	// ExpirePayment returns a still pending attempt's session to NomineeChosen.
	ExpirePayment(ctx context.Context, reference string) error
	// Reconcile records a successful payment as votes. It is idempotent on the
	// transaction reference.
	Reconcile(ctx context.Context, outcome model.PaymentOutcome) (*model.ReconcileResult, error)
}

type VoteAppImpl struct {
	config      *config.Config
	configApp   appconfig.ConfigApp
	voteRepo    voterepo.VoteRepository
	nomineeRepo nomineerepo.NomineeRepository
	voterRepo   voterrepo.VoterRepository
	txRepo      txrepo.TxRepository
	redisRepo   redisrepo.Repository
	publisher   rabbitmq.EventPublisher
	paystack    paystack.Client
	recorder    audit.Recorder
}

func NewVoteApp(
	config *config.Config,
	configApp appconfig.ConfigApp,
	voteRepo voterepo.VoteRepository,
	nomineeRepo nomineerepo.NomineeRepository,
	voterRepo voterrepo.VoterRepository,
	txRepo txrepo.TxRepository,
	redisRepo redisrepo.Repository,
	publisher rabbitmq.EventPublisher,
	paystackClient paystack.Client,
	recorder audit.Recorder,
) VoteApp {
	return &VoteAppImpl{
		config:      config,
		configApp:   configApp,
		voteRepo:    voteRepo,
		nomineeRepo: nomineeRepo,
		voterRepo:   voterRepo,
		txRepo:      txRepo,
		redisRepo:   redisRepo,
		publisher:   publisher,
		paystack:    paystackClient,
		recorder:    recorder,
	}
}

func (s *VoteAppImpl) GetSelection(ctx context.Context) (*model.SelectionResponse, error) {
	_, state, err := s.loadState(ctx)
	if err != nil {
		return nil, err
	}
	return &model.SelectionResponse{Selection: *state}, nil
}

func (s *VoteAppImpl) SelectAmount(ctx context.Context, req *model.SelectAmountRequest) (*model.SelectionResponse, error) {
	return s.dispatch(ctx, Action{Kind: ActionSelectAmount, Amount: req.Amount})
}

func (s *VoteAppImpl) ChooseNominee(ctx context.Context, req *model.ChooseNomineeRequest) (*model.SelectionResponse, error) {
	nominee, err := s.nomineeRepo.GetByID(ctx, req.NomineeID)
	if err != nil {
		logger.Error("[ChooseNominee] err nomineeRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if nominee == nil || !nominee.IsActive {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	return s.dispatch(ctx, Action{
		Kind:    ActionChooseNominee,
		Nominee: &model.ChosenNominee{ID: nominee.ID, Name: nominee.Name, CategoryID: nominee.CategoryID},
	})
}

func (s *VoteAppImpl) CancelPayment(ctx context.Context) (*model.SelectionResponse, error) {
	return s.dispatch(ctx, Action{Kind: ActionCancelPayment})
}

func (s *VoteAppImpl) InitiatePayment(ctx context.Context) (*model.PaymentCheckout, error) {
	sessionID, state, err := s.loadState(ctx)
	if err != nil {
		return nil, err
	}
	cfg, err := s.configApp.Get(ctx)
	if err != nil {
		return nil, err
	}

	reference := "vote_" + uuid.NewString()
	next, cmds, err := Reduce(cfg, *state, Action{
		Kind:        ActionInitiatePayment,
		Reference:   reference,
		EmailDomain: s.config.Payment.EmailDomain,
	})
	if err != nil {
		return nil, err
	}

	expiresAt := time.Now().UTC().Add(s.config.Payment.AttemptExpiration)
	attempt := &model.PaymentAttempt{
		Reference:   reference,
		SessionID:   sessionID,
		VoterID:     next.VoterID,
		Phone:       next.Phone,
		NomineeID:   next.Nominee.ID,
		NomineeName: next.Nominee.Name,
		CategoryID:  next.Nominee.CategoryID,
		Votes:       next.Votes,
		Amount:      next.Amount,
		ExpiresAt:   expiresAt,
	}
	// kept past expiry so that a late success callback is still reconciled
	if err := s.redisRepo.SetPaymentAttempt(ctx, attempt, s.config.Auth.SessionExpTime); err != nil {
		logger.Error("[InitiatePayment] err redisRepo.SetPaymentAttempt", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.saveState(ctx, sessionID, &next); err != nil {
		return nil, err
	}

	msg := rabbitmq.PaymentExpirationMessage{Reference: reference, SessionID: sessionID, ExpiresAt: expiresAt}
	if err := s.publisher.PublishPaymentExpiration(ctx, msg); err != nil {
		logger.Error("[InitiatePayment] err publisher.PublishPaymentExpiration", zap.String("reference", reference), zap.String("error", err.Error()))
	}

	for _, cmd := range cmds {
		if cmd.Kind == CommandOpenPayment {
			return cmd.Checkout, nil
		}
	}
	return nil, errors.SetCustomError(constant.ErrInternal)
}

func (s *VoteAppImpl) HandlePaymentCallback(ctx context.Context, req *model.PaymentCallbackRequest, ipAddress, userAgent string) (*model.PaymentResultResponse, error) {
	sessionID, state, err := s.loadState(ctx)
	if err != nil {
		return nil, err
	}
	cfg, err := s.configApp.Get(ctx)
	if err != nil {
		return nil, err
	}

	attempt, err := s.redisRepo.GetPaymentAttempt(ctx, req.Reference)
	if err != nil {
		logger.Error("[HandlePaymentCallback] err redisRepo.GetPaymentAttempt", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if attempt == nil {
		return s.recordedResult(ctx, cfg, state, req.Reference)
	}
	if attempt.VoterID != state.VoterID {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}

	status := req.Status
	if status == constant.PaymentCallbackSuccess && s.paystack.Enabled() {
		if err := s.verify(ctx, attempt); err != nil {
			if !errors.IsType(err, constant.ErrPaymentNotCompleted) {
				return nil, err
			}
			status = string(constant.PaymentStatusFailed)
		}
	}

	next, cmds, err := Reduce(cfg, *state, Action{Kind: ActionResolvePayment, Reference: req.Reference, Status: status})
	if err != nil {
		return nil, err
	}

	for _, cmd := range cmds {
		switch cmd.Kind {
		case CommandShowMessage:
			if err := s.saveState(ctx, sessionID, &next); err != nil {
				return nil, err
			}
			voterID := attempt.VoterID
			s.recorder.Record(ctx, &model.AuditEntry{
				VoterID:   &voterID,
				Action:    constant.AuditActionPaymentFailed,
				Details:   map[string]any{"reference": req.Reference, "status": req.Status},
				IPAddress: ipAddress,
				UserAgent: userAgent,
			})
			return nil, errors.SetCustomErrorWithDetail(constant.ErrPaymentNotCompleted, req.Reference)

		case CommandReconcile:
			if err := s.saveState(ctx, sessionID, &next); err != nil {
				return nil, err
			}
			outcome := model.PaymentOutcome{
				VoterID:        attempt.VoterID,
				NomineeID:      attempt.NomineeID,
				NomineeName:    attempt.NomineeName,
				CategoryID:     attempt.CategoryID,
				Votes:          attempt.Votes,
				Amount:         attempt.Amount,
				TransactionRef: attempt.Reference,
				IPAddress:      ipAddress,
				UserAgent:      userAgent,
			}
			result, err := s.Reconcile(ctx, outcome)
			if err != nil {
				return nil, err
			}

			next, err = s.updateState(ctx, sessionID, next, Action{Kind: ActionPaymentRecorded, Reference: req.Reference})
			if err != nil {
				return nil, err
			}
			if err := s.redisRepo.DeletePaymentAttempt(ctx, req.Reference); err != nil {
				logger.Warn("[HandlePaymentCallback] err redisRepo.DeletePaymentAttempt", zap.String("error", err.Error()))
			}

			return &model.PaymentResultResponse{
				Selection:      next,
				Message:        SuccessMessage(cfg.CurrencySymbol, outcome),
				TransactionRef: outcome.TransactionRef,
				Vote:           result.Vote,
			}, nil
		}
	}

	// stale failure for an attempt the session already left
	return nil, errors.SetCustomErrorWithDetail(constant.ErrPaymentNotCompleted, req.Reference)
}

// recordedResult answers a callback whose attempt is gone: either it was already
// reconciled or the reference is unknown.
func (s *VoteAppImpl) recordedResult(ctx context.Context, cfg *model.AppConfig, state *model.SelectionState, reference string) (*model.PaymentResultResponse, error) {
	vote, err := s.voteRepo.GetByTransactionRef(ctx, reference)
	if err != nil {
		logger.Error("[HandlePaymentCallback] err voteRepo.GetByTransactionRef", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if vote == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if vote.VoterID != state.VoterID {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}

	outcome := model.PaymentOutcome{Votes: vote.Votes, Amount: vote.Amount, TransactionRef: vote.TransactionRef}
	if nominee, err := s.nomineeRepo.GetByID(ctx, vote.NomineeID); err == nil && nominee != nil {
		outcome.NomineeName = nominee.Name
	}
	return &model.PaymentResultResponse{
		Selection:      *state,
		Message:        SuccessMessage(cfg.CurrencySymbol, outcome),
		TransactionRef: reference,
		Vote:           vote,
	}, nil
}

func (s *VoteAppImpl) verify(ctx context.Context, attempt *model.PaymentAttempt) error {
	txn, err := s.paystack.Verify(ctx, attempt.Reference)
	if err != nil {
		logger.Error("[verify] err paystack.Verify", zap.String("reference", attempt.Reference), zap.String("error", err.Error()))
		return errors.SetCustomErrorWithDetail(constant.ErrInternal, attempt.Reference)
	}
	if txn.Status != constant.PaymentCallbackSuccess {
		return errors.SetCustomErrorWithDetail(constant.ErrPaymentNotCompleted, attempt.Reference)
	}
	if txn.Amount != paystack.MinorUnits(attempt.Amount) {
		logger.Error("[verify] amount mismatch", zap.String("reference", attempt.Reference), zap.Int64("paid", txn.Amount), zap.Float64("expected", attempt.Amount))
		return errors.SetCustomErrorWithDetail(constant.ErrPaymentMismatch, attempt.Reference)
	}
	return nil
}

func (s *VoteAppImpl) ExpirePayment(ctx context.Context, reference string) error {
	attempt, err := s.redisRepo.GetPaymentAttempt(ctx, reference)
	if err != nil {
		logger.Error("[ExpirePayment] err redisRepo.GetPaymentAttempt", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if attempt == nil {
		return nil
	}

	err = s.redisRepo.UpdateSelection(ctx, attempt.SessionID, s.config.Voting.SelectionTTL, func(current *model.SelectionState) (*model.SelectionState, error) {
		if current == nil {
			return nil, nil
		}
		next, _, _ := Reduce(&model.AppConfig{}, *current, Action{Kind: ActionExpirePayment, Reference: reference})
		if next.Stage == current.Stage {
			return nil, nil
		}
		return &next, nil
	})
	if err != nil {
		logger.Error("[ExpirePayment] err redisRepo.UpdateSelection", zap.String("reference", reference), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *VoteAppImpl) Reconcile(ctx context.Context, outcome model.PaymentOutcome) (result *model.ReconcileResult, err error) {
	failed := func(step string, err error) error {
		logger.Error("[Reconcile] err "+step, zap.String("reference", outcome.TransactionRef), zap.String("error", err.Error()))
		s.recordFailure(ctx, outcome, step)
		return errors.SetCustomErrorWithDetail(constant.ErrVoteRecordFailed, outcome.TransactionRef)
	}

	var tx *sqlx.Tx
	tx, err = s.txRepo.BeginTx(ctx)
	if err != nil {
		return nil, failed("txRepo.BeginTx", err)
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := s.txRepo.RollbackTx(tx); rbErr != nil {
				logger.Error("[Reconcile] err RollbackTx", zap.String("error", rbErr.Error()))
			}
		}
	}()

	vote := &model.VoteEntity{
		VoterID:        outcome.VoterID,
		NomineeID:      outcome.NomineeID,
		CategoryID:     outcome.CategoryID,
		Votes:          outcome.Votes,
		Amount:         outcome.Amount,
		TransactionRef: outcome.TransactionRef,
		PaymentStatus:  constant.PaymentStatusCompleted,
		PaymentMethod:  constant.PaymentMethodMobileMoney,
		CreatedAt:      time.Now().UTC(),
	}
	vote.ID, err = s.voteRepo.InsertVoteTx(ctx, tx, vote)
	if err != nil {
		if dberr.IsDuplicateEntry(err) {
			return s.alreadyRecorded(ctx, outcome)
		}
		return nil, failed("voteRepo.InsertVoteTx", err)
	}

	totals, err := s.nomineeRepo.IncrementTotalsTx(ctx, tx, outcome.NomineeID, outcome.Votes, outcome.Amount)
	if err != nil {
		return nil, failed("nomineeRepo.IncrementTotalsTx", err)
	}

	if err = s.voterRepo.IncrementTotalsTx(ctx, tx, outcome.VoterID, outcome.Amount, outcome.Votes); err != nil {
		return nil, failed("voterRepo.IncrementTotalsTx", err)
	}

	if err = s.txRepo.CommitTx(tx); err != nil {
		return nil, failed("txRepo.CommitTx", err)
	}
	committed = true

	voterID := outcome.VoterID
	s.recorder.Record(ctx, &model.AuditEntry{
		VoterID: &voterID,
		Action:  constant.AuditActionVoteCast,
		Details: map[string]any{
			"nominee_id":      outcome.NomineeID,
			"votes":           outcome.Votes,
			"amount":          outcome.Amount,
			"transaction_ref": outcome.TransactionRef,
		},
		IPAddress: outcome.IPAddress,
		UserAgent: outcome.UserAgent,
	})

	record, _ := json.Marshal(model.NomineeChange{ID: totals.NomineeID, TotalVotes: totals.TotalVotes, TotalAmount: totals.TotalAmount})
	ev := model.ChangeEvent{Collection: constant.CollectionNominees, Action: constant.ChangeActionUpdate, Record: record}
	if pubErr := s.publisher.PublishChange(ctx, ev); pubErr != nil {
		logger.Error("[Reconcile] err publisher.PublishChange", zap.String("error", pubErr.Error()))
	}

	return &model.ReconcileResult{Vote: vote, Nominee: totals}, nil
}

func (s *VoteAppImpl) alreadyRecorded(ctx context.Context, outcome model.PaymentOutcome) (*model.ReconcileResult, error) {
	existing, err := s.voteRepo.GetByTransactionRef(ctx, outcome.TransactionRef)
	if err != nil || existing == nil {
		logger.Error("[Reconcile] err voteRepo.GetByTransactionRef", zap.String("reference", outcome.TransactionRef), zap.Error(err))
		s.recordFailure(ctx, outcome, "voteRepo.GetByTransactionRef")
		return nil, errors.SetCustomErrorWithDetail(constant.ErrVoteRecordFailed, outcome.TransactionRef)
	}
	return &model.ReconcileResult{Vote: existing, AlreadyRecorded: true}, nil
}

// recordFailure leaves a trail for payments that were taken but not recorded.
func (s *VoteAppImpl) recordFailure(ctx context.Context, outcome model.PaymentOutcome, step string) {
	voterID := outcome.VoterID
	s.recorder.Record(ctx, &model.AuditEntry{
		VoterID: &voterID,
		Action:  constant.AuditActionVoteRecordFailed,
		Details: map[string]any{
			"nominee_id":      outcome.NomineeID,
			"votes":           outcome.Votes,
			"amount":          outcome.Amount,
			"transaction_ref": outcome.TransactionRef,
			"step":            step,
		},
		IPAddress: outcome.IPAddress,
		UserAgent: outcome.UserAgent,
	})
}

func (s *VoteAppImpl) dispatch(ctx context.Context, action Action) (*model.SelectionResponse, error) {
	sessionID, state, err := s.loadState(ctx)
	if err != nil {
		return nil, err
	}
	cfg, err := s.configApp.Get(ctx)
	if err != nil {
		return nil, err
	}

	next, _, err := Reduce(cfg, *state, action)
	if err != nil {
		return nil, err
	}
	if err := s.saveState(ctx, sessionID, &next); err != nil {
		return nil, err
	}
	return &model.SelectionResponse{Selection: next}, nil
}

// loadState returns the session's selection, starting a fresh one for an
// authenticated session that has none.
func (s *VoteAppImpl) loadState(ctx context.Context) (string, *model.SelectionState, error) {
	sessionID, ok := ctxutil.GetSessionID(ctx)
	if !ok {
		return "", nil, errors.SetCustomError(constant.ErrNotLoggedIn)
	}
	userID, _ := ctxutil.GetUserID(ctx)

	state, err := s.redisRepo.GetSelection(ctx, sessionID)
	if err != nil {
		logger.Error("[loadState] err redisRepo.GetSelection", zap.String("error", err.Error()))
		return "", nil, errors.SetCustomError(constant.ErrInternal)
	}
	if state != nil && state.VoterID == userID {
		return sessionID, state, nil
	}

	voter, err := s.voterRepo.Get(ctx, &model.VoterFilter{ID: userID})
	if err != nil {
		logger.Error("[loadState] err voterRepo.Get", zap.String("error", err.Error()))
		return "", nil, errors.SetCustomError(constant.ErrInternal)
	}
	if voter == nil {
		return "", nil, errors.SetCustomError(constant.ErrNotLoggedIn)
	}
	return sessionID, &model.SelectionState{
		Stage:    constant.StageNoSelection,
		LoggedIn: true,
		VoterID:  voter.ID,
		Phone:    voter.Phone,
	}, nil
}

// updateState applies action to the selection as currently stored, falling
// back to fallback when the session has no stored selection.
func (s *VoteAppImpl) updateState(ctx context.Context, sessionID string, fallback model.SelectionState, action Action) (model.SelectionState, error) {
	var result model.SelectionState
	err := s.redisRepo.UpdateSelection(ctx, sessionID, s.config.Voting.SelectionTTL, func(current *model.SelectionState) (*model.SelectionState, error) {
		result = fallback
		if current != nil {
			result = *current
		}
		result, _, _ = Reduce(&model.AppConfig{}, result, action)
		return &result, nil
	})
	if err != nil {
		logger.Error("[updateState] err redisRepo.UpdateSelection", zap.String("error", err.Error()))
		return fallback, errors.SetCustomError(constant.ErrInternal)
	}
	return result, nil
}

func (s *VoteAppImpl) saveState(ctx context.Context, sessionID string, state *model.SelectionState) error {
	if err := s.redisRepo.SetSelection(ctx, sessionID, state, s.config.Voting.SelectionTTL); err != nil {
		logger.Error("[saveState] err redisRepo.SetSelection", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}
