package transport_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/muhammadheryan/e-voting/cmd/config"
	"github.com/muhammadheryan/e-voting/constant"
	configappmocks "github.com/muhammadheryan/e-voting/mocks/application/config"
	userappmocks "github.com/muhammadheryan/e-voting/mocks/application/user"
	voteappmocks "github.com/muhammadheryan/e-voting/mocks/application/vote"
	"github.com/muhammadheryan/e-voting/model"
	"github.com/muhammadheryan/e-voting/thirdparty/ipresolver"
	"github.com/muhammadheryan/e-voting/transport"
	utilsContext "github.com/muhammadheryan/e-voting/utils/context"
	cerr "github.com/muhammadheryan/e-voting/utils/errors"
)

type fields struct {
	userApp   *userappmocks.UserApp
	voteApp   *voteappmocks.VoteApp
	configApp *configappmocks.ConfigApp
}

func newHandler(t *testing.T) (http.Handler, fields) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	f := fields{
		userApp:   userappmocks.NewUserApp(t),
		voteApp:   voteappmocks.NewVoteApp(t),
		configApp: configappmocks.NewConfigApp(t),
	}
	auth := config.AuthConfig{InternalAPIKey: "internal-key", AdminUser: "admin", AdminPasswordHash: string(hash)}
	h := transport.NewTransport(auth, &transport.RestHandler{
		UserApp:    f.userApp,
		VoteApp:    f.voteApp,
		ConfigApp:  f.configApp,
		IPResolver: ipresolver.NewResolver("", false, time.Second),
	})
	return h, f
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) transport.Response {
	var resp transport.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func customErr(t constant.ErrorType) error {
	return cerr.SetCustomError(t)
}

func withSession(sessionID string) interface{} {
	return mock.MatchedBy(func(ctx context.Context) bool {
		id, ok := utilsContext.GetSessionID(ctx)
		return ok && id == sessionID
	})
}

func TestTransport(t *testing.T) {
	tests := []struct {
		name       string
		request    func() *http.Request
		mockCall   func(f fields)
		wantStatus int
		wantCode   string
	}{
		{
			name: "login resolves client ip",
			request: func() *http.Request {
				r := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"phone":"123456789"}`))
				r.RemoteAddr = "192.0.2.10:5555"
				r.Header.Set("User-Agent", "test-agent")
				return r
			},
			mockCall: func(f fields) {
				f.userApp.On("Login", mock.Anything, &model.LoginRequest{Phone: "123456789", IPAddress: "192.0.2.10", UserAgent: "test-agent"}).
					Return(&model.LoginResponse{Phone: "0123456789", Token: "jwt"}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantCode:   "0000",
		},
		{
			name: "login rejects malformed phone",
			request: func() *http.Request {
				return httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"phone":"0123456789"}`))
			},
			mockCall:   func(f fields) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   constant.ErrorTypeCode[constant.ErrInvalidPhone],
		},
		{
			name: "selection needs a token",
			request: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "/selection", nil)
			},
			mockCall:   func(f fields) {},
			wantStatus: http.StatusUnauthorized,
			wantCode:   constant.ErrorTypeCode[constant.ErrUnauthorize],
		},
		{
			name: "selection carries the session",
			request: func() *http.Request {
				r := httptest.NewRequest(http.MethodGet, "/selection", nil)
				r.Header.Set("Authorization", "Bearer jwt")
				return r
			},
			mockCall: func(f fields) {
				f.userApp.On("ValidateToken", mock.Anything, "jwt").Return(uint64(42), "session_1", nil).Once()
				f.voteApp.On("GetSelection", withSession("session_1")).
					Return(&model.SelectionResponse{Selection: model.SelectionState{Stage: constant.StageNoSelection}}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantCode:   "0000",
		},
		{
			name: "payment failure maps to payment required",
			request: func() *http.Request {
				r := httptest.NewRequest(http.MethodPost, "/payment/callback", strings.NewReader(`{"reference":"txn_abc123","status":"failed"}`))
				r.Header.Set("Authorization", "Bearer jwt")
				return r
			},
			mockCall: func(f fields) {
				f.userApp.On("ValidateToken", mock.Anything, "jwt").Return(uint64(42), "session_1", nil).Once()
				f.voteApp.On("HandlePaymentCallback", withSession("session_1"), &model.PaymentCallbackRequest{Reference: "txn_abc123", Status: "failed"}, mock.Anything, mock.Anything).
					Return(nil, customErr(constant.ErrPaymentNotCompleted)).Once()
			},
			wantStatus: http.StatusPaymentRequired,
			wantCode:   constant.ErrorTypeCode[constant.ErrPaymentNotCompleted],
		},
		{
			name: "internal route rejects missing key",
			request: func() *http.Request {
				return httptest.NewRequest(http.MethodPost, "/internal/v1/payment/vote_1/expire", nil)
			},
			mockCall:   func(f fields) {},
			wantStatus: http.StatusForbidden,
			wantCode:   constant.ErrorTypeCode[constant.ErrForbidden],
		},
		{
			name: "internal route expires attempt",
			request: func() *http.Request {
				r := httptest.NewRequest(http.MethodPost, "/internal/v1/payment/vote_1/expire", nil)
				r.Header.Set("Authorization", "Bearer internal-key")
				return r
			},
			mockCall: func(f fields) {
				f.voteApp.On("ExpirePayment", mock.Anything, "vote_1").Return(nil).Once()
			},
			wantStatus: http.StatusOK,
			wantCode:   "0000",
		},
		{
			name: "admin route rejects wrong password",
			request: func() *http.Request {
				r := httptest.NewRequest(http.MethodPut, "/admin/config/app_title", strings.NewReader(`{"value":"Finals"}`))
				r.SetBasicAuth("admin", "wrong")
				return r
			},
			mockCall:   func(f fields) {},
			wantStatus: http.StatusUnauthorized,
			wantCode:   constant.ErrorTypeCode[constant.ErrUnauthorize],
		},
		{
			name: "admin route updates config",
			request: func() *http.Request {
				r := httptest.NewRequest(http.MethodPut, "/admin/config/app_title", strings.NewReader(`{"value":"Finals"}`))
				r.SetBasicAuth("admin", "s3cret")
				return r
			},
			mockCall: func(f fields) {
				f.configApp.On("Update", mock.Anything, &model.UpdateConfigRequest{Key: "app_title", Value: "Finals"}).
					Return(&model.ConfigEntity{Key: "app_title", Value: "Finals"}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantCode:   "0000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, f := newHandler(t)
			tt.mockCall(f)

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, tt.request())

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decode(t, rec).Code)
		})
	}
}
