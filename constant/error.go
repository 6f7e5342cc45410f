package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrInvalidPhone
	ErrVotingDisabled
	ErrNotLoggedIn
	ErrAmountNotSelected
	ErrInvalidVoteRate
	ErrInvalidSelectionState
	ErrPaymentNotConfigured
	ErrPaymentNotCompleted
	ErrPaymentMismatch
	ErrVoteRecordFailed
	ErrForbidden
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:               "success",
	ErrInternal:              "error internal",
	ErrNotFound:              "data not found",
	ErrInvalidRequest:        "invalid request",
	ErrUnauthorize:           "unauthorize request",
	ErrInvalidPhone:          "please enter a valid 9-digit phone number",
	ErrVotingDisabled:        "voting is currently disabled",
	ErrNotLoggedIn:           "please login first",
	ErrAmountNotSelected:     "please select vote amount first",
	ErrInvalidVoteRate:       "vote amount is not available",
	ErrInvalidSelectionState: "action not allowed in current selection state",
	ErrPaymentNotConfigured:  "payment system not configured, please contact administrator",
	ErrPaymentNotCompleted:   "payment was not completed",
	ErrPaymentMismatch:       "payment could not be verified",
	ErrVoteRecordFailed:      "error recording vote, please contact support with reference",
	ErrForbidden:             "forbidden",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:               http.StatusOK,
	ErrInternal:              http.StatusInternalServerError,
	ErrNotFound:              http.StatusBadRequest,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrUnauthorize:           http.StatusUnauthorized,
	ErrInvalidPhone:          http.StatusBadRequest,
	ErrVotingDisabled:        http.StatusForbidden,
	ErrNotLoggedIn:           http.StatusUnauthorized,
	ErrAmountNotSelected:     http.StatusBadRequest,
	ErrInvalidVoteRate:       http.StatusBadRequest,
	ErrInvalidSelectionState: http.StatusConflict,
	ErrPaymentNotConfigured:  http.StatusServiceUnavailable,
	ErrPaymentNotCompleted:   http.StatusPaymentRequired,
	ErrPaymentMismatch:       http.StatusBadRequest,
	ErrVoteRecordFailed:      http.StatusInternalServerError,
	ErrForbidden:             http.StatusForbidden,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:               "0000",
	ErrInternal:              "0001",
	ErrNotFound:              "0002",
	ErrInvalidRequest:        "0003",
	ErrUnauthorize:           "0004",
	ErrInvalidPhone:          "0005",
	ErrVotingDisabled:        "0006",
	ErrNotLoggedIn:           "0007",
	ErrAmountNotSelected:     "0008",
	ErrInvalidVoteRate:       "0009",
	ErrInvalidSelectionState: "0010",
	ErrPaymentNotConfigured:  "0011",
	ErrPaymentNotCompleted:   "0012",
	ErrPaymentMismatch:       "0013",
	ErrVoteRecordFailed:      "0014",
	ErrForbidden:             "0015",
}
