package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/e-voting/constant"
	"github.com/muhammadheryan/e-voting/model"
	"github.com/muhammadheryan/e-voting/utils/errors"
	validatorx "github.com/muhammadheryan/e-voting/utils/validator"
)

// GetSelection handler
// @Summary Current selection
// @Tags Vote
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.SelectionResponse
// @Failure 401 {object} Response
// @Router /selection [get]
func (s *RestHandler) GetSelection(w http.ResponseWriter, r *http.Request) {
	res, err := s.VoteApp.GetSelection(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// SelectAmount handler
// @Summary Select vote amount
// @Description The amount must be one of the configured vote rates
// @Tags Vote
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.SelectAmountRequest true "Select Amount Request"
// @Success 200 {object} model.SelectionResponse
// @Failure 400 {object} Response
// @Router /selection/amount [post]
func (s *RestHandler) SelectAmount(w http.ResponseWriter, r *http.Request) {
	var req model.SelectAmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidVoteRate))
		return
	}

	res, err := s.VoteApp.SelectAmount(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ChooseNominee handler
// @Summary Choose nominee
// @Tags Vote
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.ChooseNomineeRequest true "Choose Nominee Request"
// @Success 200 {object} model.SelectionResponse
// @Failure 400 {object} Response
// @Router /selection/nominee [post]
func (s *RestHandler) ChooseNominee(w http.ResponseWriter, r *http.Request) {
	var req model.ChooseNomineeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.VoteApp.ChooseNominee(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// InitiatePayment handler
// @Summary Open payment
// @Description Registers a payment attempt and returns the checkout configuration for the payment widget
// @Tags Payment
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.PaymentCheckout
// @Failure 400 {object} Response
// @Router /payment/initiate [post]
func (s *RestHandler) InitiatePayment(w http.ResponseWriter, r *http.Request) {
	res, err := s.VoteApp.InitiatePayment(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CancelPayment handler
// @Summary Cancel payment
// @Description Called when the payment widget is closed without paying
// @Tags Payment
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.SelectionResponse
// @Failure 400 {object} Response
// @Router /payment/cancel [post]
func (s *RestHandler) CancelPayment(w http.ResponseWriter, r *http.Request) {
	res, err := s.VoteApp.CancelPayment(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// PaymentCallback handler
// @Summary Payment result
// @Description Resolves a payment attempt; a successful payment is recorded as votes
// @Tags Payment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.PaymentCallbackRequest true "Payment Callback Request"
// @Success 200 {object} model.PaymentResultResponse
// @Failure 400 {object} Response
// @Failure 500 {object} Response
// @Router /payment/callback [post]
func (s *RestHandler) PaymentCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.PaymentCallbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.VoteApp.HandlePaymentCallback(ctx, &req, s.IPResolver.Resolve(ctx, r), r.UserAgent())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ExpirePayment handler, called by the payment expiration consumer
func (s *RestHandler) ExpirePayment(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]
	if reference == "" {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.VoteApp.ExpirePayment(r.Context(), reference); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}
