package vote

import (
	"fmt"
	"strconv"

	"github.com/muhammadheryan/e-voting/constant"
	"github.com/muhammadheryan/e-voting/model"
	"github.com/muhammadheryan/e-voting/thirdparty/paystack"
	"github.com/muhammadheryan/e-voting/utils/errors"
)

type ActionKind int

const (
	ActionSelectAmount ActionKind = iota + 1
	ActionChooseNominee
	ActionInitiatePayment
	ActionCancelPayment
	ActionExpirePayment
	ActionResolvePayment
	ActionPaymentRecorded
)

// Action is one user or system event fed into Reduce.
type Action struct {
	Kind        ActionKind
	Amount      float64
	Nominee     *model.ChosenNominee
	Reference   string
	Status      string
	EmailDomain string
}

type CommandKind int

const (
	CommandOpenPayment CommandKind = iota + 1
	CommandReconcile
	CommandShowMessage
)

// Command is a side effect requested by Reduce and carried out by the caller.
type Command struct {
	Kind      CommandKind
	Reference string
	Message   string
	Checkout  *model.PaymentCheckout
}

const MessagePaymentNotCompleted = "payment was not completed"

// Reduce applies action to state. A rejected action returns the unchanged state
// together with the error.
func Reduce(cfg *model.AppConfig, state model.SelectionState, action Action) (model.SelectionState, []Command, error) {
	switch action.Kind {
	case ActionSelectAmount:
		return selectAmount(cfg, state, action.Amount)
	case ActionChooseNominee:
		return chooseNominee(cfg, state, action.Nominee)
	case ActionInitiatePayment:
		return initiatePayment(cfg, state, action)
	case ActionCancelPayment:
		if state.Stage != constant.StagePaymentPending {
			return state, nil, errors.SetCustomError(constant.ErrInvalidSelectionState)
		}
		return backToNominee(state), nil, nil
	case ActionExpirePayment:
		if state.Stage != constant.StagePaymentPending || state.PendingRef != action.Reference {
			return state, nil, nil
		}
		return backToNominee(state), nil, nil
	case ActionResolvePayment:
		return resolvePayment(state, action)
	case ActionPaymentRecorded:
		if state.PendingRef != action.Reference {
			return state, nil, nil
		}
		return cleared(state), nil, nil
	}
	return state, nil, errors.SetCustomError(constant.ErrInvalidRequest)
}

func selectAmount(cfg *model.AppConfig, state model.SelectionState, amount float64) (model.SelectionState, []Command, error) {
	switch state.Stage {
	case constant.StagePaymentPending:
		return state, nil, errors.SetCustomError(constant.ErrInvalidSelectionState)
	case constant.StagePaymentResolved:
		state = cleared(state)
	}

	rate, ok := cfg.FindRate(amount)
	if !ok {
		return state, nil, errors.SetCustomError(constant.ErrInvalidVoteRate)
	}
	if (cfg.MinVoteAmount > 0 && amount < cfg.MinVoteAmount) || (cfg.MaxVoteAmount > 0 && amount > cfg.MaxVoteAmount) {
		return state, nil, errors.SetCustomError(constant.ErrInvalidVoteRate)
	}

	if state.Amount == rate.Amount && state.Votes == rate.Votes && state.Stage != constant.StageNoSelection {
		return state, nil, nil
	}

	state.Stage = constant.StageAmountSelected
	state.Amount = rate.Amount
	state.Votes = rate.Votes
	state.Nominee = nil
	return state, nil, nil
}

func chooseNominee(cfg *model.AppConfig, state model.SelectionState, nominee *model.ChosenNominee) (model.SelectionState, []Command, error) {
	if !state.LoggedIn {
		return state, nil, errors.SetCustomError(constant.ErrNotLoggedIn)
	}
	if !cfg.VotingEnabled {
		return state, nil, errors.SetCustomError(constant.ErrVotingDisabled)
	}
	if state.Amount <= 0 || state.Votes <= 0 {
		return state, nil, errors.SetCustomError(constant.ErrAmountNotSelected)
	}
	if state.Stage != constant.StageAmountSelected && state.Stage != constant.StageNomineeChosen {
		return state, nil, errors.SetCustomError(constant.ErrInvalidSelectionState)
	}
	if nominee == nil {
		return state, nil, errors.SetCustomError(constant.ErrNotFound)
	}

	n := *nominee
	state.Stage = constant.StageNomineeChosen
	state.Nominee = &n
	return state, nil, nil
}

func initiatePayment(cfg *model.AppConfig, state model.SelectionState, action Action) (model.SelectionState, []Command, error) {
	if state.Stage != constant.StageNomineeChosen || state.Nominee == nil {
		return state, nil, errors.SetCustomError(constant.ErrInvalidSelectionState)
	}
	if !cfg.VotingEnabled {
		return state, nil, errors.SetCustomError(constant.ErrVotingDisabled)
	}
	if cfg.PaystackPublicKey == "" {
		return state, nil, errors.SetCustomError(constant.ErrPaymentNotConfigured)
	}

	checkout := &model.PaymentCheckout{
		Key:       cfg.PaystackPublicKey,
		Email:     state.Phone + "@" + action.EmailDomain,
		Amount:    paystack.MinorUnits(state.Amount),
		Currency:  cfg.Currency,
		Channels:  []string{constant.PaymentChannelMobileMoney},
		Reference: action.Reference,
		Metadata: model.PaymentMetadata{
			NomineeID:   state.Nominee.ID,
			NomineeName: state.Nominee.Name,
			CategoryID:  state.Nominee.CategoryID,
			Votes:       state.Votes,
			UserID:      state.VoterID,
		},
	}

	state.Stage = constant.StagePaymentPending
	state.PendingRef = action.Reference
	return state, []Command{{Kind: CommandOpenPayment, Reference: action.Reference, Checkout: checkout}}, nil
}

func resolvePayment(state model.SelectionState, action Action) (model.SelectionState, []Command, error) {
	current := state.PendingRef == action.Reference &&
		(state.Stage == constant.StagePaymentPending || state.Stage == constant.StagePaymentResolved)

	if action.Status != constant.PaymentCallbackSuccess {
		if !current {
			return state, nil, nil
		}
		return backToNominee(state), []Command{{Kind: CommandShowMessage, Reference: action.Reference, Message: MessagePaymentNotCompleted}}, nil
	}

	// a paid reference is always reconciled, even when the session moved on
	cmds := []Command{{Kind: CommandReconcile, Reference: action.Reference}}
	if current {
		state.Stage = constant.StagePaymentResolved
	}
	return state, cmds, nil
}

func backToNominee(state model.SelectionState) model.SelectionState {
	state.Stage = constant.StageNomineeChosen
	state.PendingRef = ""
	return state
}

func cleared(state model.SelectionState) model.SelectionState {
	return model.SelectionState{
		Stage:    constant.StageNoSelection,
		LoggedIn: state.LoggedIn,
		VoterID:  state.VoterID,
		Phone:    state.Phone,
	}
}

// SuccessMessage is shown once a payment has been turned into votes.
func SuccessMessage(symbol string, outcome model.PaymentOutcome) string {
	return fmt.Sprintf("Payment Successful! You've successfully voted for %s with %d votes. Amount: %s%s. Transaction Reference: %s",
		outcome.NomineeName, outcome.Votes, symbol, strconv.FormatFloat(outcome.Amount, 'f', -1, 64), outcome.TransactionRef)
}
