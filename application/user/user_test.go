package user_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	appuser "github.com/muhammadheryan/e-voting/application/user"
	"github.com/muhammadheryan/e-voting/cmd/config"
	"github.com/muhammadheryan/e-voting/constant"
	auditmocks "github.com/muhammadheryan/e-voting/mocks/application/audit"
	redismocks "github.com/muhammadheryan/e-voting/mocks/repository/redis"
	sessionmocks "github.com/muhammadheryan/e-voting/mocks/repository/session"
	votermocks "github.com/muhammadheryan/e-voting/mocks/repository/voter"
	"github.com/muhammadheryan/e-voting/model"
	redisrepo "github.com/muhammadheryan/e-voting/repository/redis"
	cerr "github.com/muhammadheryan/e-voting/utils/errors"
)

type fields struct {
	voterRepo   *votermocks.VoterRepository
	sessionRepo *sessionmocks.SessionRepository
	redisRepo   *redismocks.RedisRepository
	recorder    *auditmocks.Recorder
}

func newFields(t *testing.T) fields {
	return fields{
		voterRepo:   votermocks.NewVoterRepository(t),
		sessionRepo: sessionmocks.NewSessionRepository(t),
		redisRepo:   redismocks.NewRedisRepository(t),
		recorder:    auditmocks.NewRecorder(t),
	}
}

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret",
			JWTExpiration:  time.Hour,
			SessionExpTime: 24 * time.Hour,
		},
		Voting: config.VotingConfig{SelectionTTL: 24 * time.Hour},
	}
}

func (f fields) app() appuser.UserApp {
	return appuser.NewUserApp(testConfig(), f.voterRepo, f.sessionRepo, f.redisRepo, f.recorder)
}

func echoSession(_ context.Context, s *model.SessionEntity) (*model.SessionEntity, error) {
	s.ID = 7
	return s, nil
}

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{in: "123456789", want: "0123456789", wantOK: true},
		{in: "12345678"},
		{in: "1234567890"},
		{in: "12345678a"},
		{in: ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := appuser.FormatPhone(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUserApp_Login(t *testing.T) {
	tests := []struct {
		name     string
		req      *model.LoginRequest
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: first login creates voter",
			req:  &model.LoginRequest{Phone: "123456789", IPAddress: "10.0.0.1", UserAgent: "test-agent"},
			mockCall: func(f fields) {
				f.voterRepo.On("Get", mock.Anything, &model.VoterFilter{Phone: "0123456789"}).Return(nil, nil).Once()
				f.voterRepo.On("Create", mock.Anything, mock.MatchedBy(func(v *model.VoterEntity) bool {
					return v.Phone == "0123456789" && v.IsActive && v.TotalVotes == 0 && v.TotalSpent == 0 &&
						v.LastLogin != nil && v.LastLogin.Equal(v.FirstLogin)
				})).Return(func(_ context.Context, v *model.VoterEntity) (*model.VoterEntity, error) {
					v.ID = 1
					return v, nil
				}).Once()
				f.sessionRepo.On("Create", mock.Anything, mock.MatchedBy(func(s *model.SessionEntity) bool {
					return s.VoterID == 1 && s.IPAddress == "10.0.0.1" && s.UserAgent == "test-agent" &&
						strings.HasPrefix(s.SessionToken, "session_") && s.ExpiresAt.Sub(s.CreatedAt) == 24*time.Hour
				})).Return(echoSession).Once()
				f.redisRepo.On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(1), 24*time.Hour).Return(nil).Once()
				f.redisRepo.On("SetSelection", mock.Anything, mock.AnythingOfType("string"), mock.MatchedBy(func(s *model.SelectionState) bool {
					return s.LoggedIn && s.VoterID == 1 && s.Phone == "0123456789" && s.Stage == constant.StageNoSelection
				}), 24*time.Hour).Return(nil).Once()
				f.recorder.On("Record", mock.Anything, mock.MatchedBy(func(e *model.AuditEntry) bool {
					return e.Action == constant.AuditActionUserLogin && *e.VoterID == 1
				})).Once()
			},
		},
		{
			name:     "error: short phone rejected before any lookup",
			req:      &model.LoginRequest{Phone: "12345678"},
			mockCall: func(f fields) {},
			wantErr:  true,
			errCode:  constant.ErrInvalidPhone,
		},
		{
			name:     "error: phone with leading zero rejected",
			req:      &model.LoginRequest{Phone: "0123456789"},
			mockCall: func(f fields) {},
			wantErr:  true,
			errCode:  constant.ErrInvalidPhone,
		},
		{
			name: "error: store unavailable",
			req:  &model.LoginRequest{Phone: "123456789"},
			mockCall: func(f fields) {
				f.voterRepo.On("Get", mock.Anything, &model.VoterFilter{Phone: "0123456789"}).Return(nil, errors.New("db down")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name: "error: session insert fails",
			req:  &model.LoginRequest{Phone: "123456789"},
			mockCall: func(f fields) {
				f.voterRepo.On("Get", mock.Anything, &model.VoterFilter{Phone: "0123456789"}).
					Return(&model.VoterEntity{ID: 3, Phone: "0123456789", IsActive: true}, nil).Once()
				f.voterRepo.On("UpdateLastLogin", mock.Anything, uint64(3), mock.Anything).Return(nil).Once()
				f.sessionRepo.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			got, err := f.app().Login(context.Background(), tt.req)
			if tt.wantErr {
				require.Error(t, err)
				var ce cerr.CustomError
				require.True(t, errors.As(err, &ce))
				assert.Equal(t, constant.ErrorTypeCode[tt.errCode], ce.ErrorCode())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "0123456789", got.Phone)
			assert.NotEmpty(t, got.Token)
		})
	}
}

func TestUserApp_ResolveVoter(t *testing.T) {
	existing := &model.VoterEntity{ID: 5, Phone: "0244000000", IsActive: true, TotalVotes: 12}

	tests := []struct {
		name     string
		mockCall func(f fields)
		wantID   uint64
		wantErr  bool
	}{
		{
			name: "existing voter gets last login refreshed",
			mockCall: func(f fields) {
				f.voterRepo.On("Get", mock.Anything, &model.VoterFilter{Phone: "0244000000"}).Return(existing, nil).Once()
				f.voterRepo.On("UpdateLastLogin", mock.Anything, uint64(5), mock.Anything).Return(nil).Once()
			},
			wantID: 5,
		},
		{
			name: "concurrent first login re-reads the winner",
			mockCall: func(f fields) {
				f.voterRepo.On("Get", mock.Anything, &model.VoterFilter{Phone: "0244000000"}).Return(nil, nil).Once()
				f.voterRepo.On("Create", mock.Anything, mock.Anything).Return(nil, &mysql.MySQLError{Number: 1062}).Once()
				f.voterRepo.On("Get", mock.Anything, &model.VoterFilter{Phone: "0244000000"}).Return(existing, nil).Once()
			},
			wantID: 5,
		},
		{
			name: "update failure aborts",
			mockCall: func(f fields) {
				f.voterRepo.On("Get", mock.Anything, &model.VoterFilter{Phone: "0244000000"}).Return(existing, nil).Once()
				f.voterRepo.On("UpdateLastLogin", mock.Anything, uint64(5), mock.Anything).Return(errors.New("db down")).Once()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			got, err := f.app().ResolveVoter(context.Background(), "0244000000")
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, cerr.IsType(err, constant.ErrInternal))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, got.ID)
			assert.NotNil(t, got.LastLogin)
		})
	}
}

func TestUserApp_IssueSession_UnknownIP(t *testing.T) {
	f := newFields(t)
	f.sessionRepo.On("Create", mock.Anything, mock.MatchedBy(func(s *model.SessionEntity) bool {
		return s.IPAddress == "unknown"
	})).Return(echoSession).Once()
	f.redisRepo.On("SetSession", mock.Anything, mock.Anything, uint64(9), 24*time.Hour).Return(nil).Once()

	got, err := f.app().IssueSession(context.Background(), 9, "", "agent")
	require.NoError(t, err)
	assert.True(t, got.IsActive)
}

func TestUserApp_ValidateToken(t *testing.T) {
	var token, sessionID string
	{
		f := newFields(t)
		f.voterRepo.On("Get", mock.Anything, mock.Anything).Return(&model.VoterEntity{ID: 4, Phone: "0200000000"}, nil).Once()
		f.voterRepo.On("UpdateLastLogin", mock.Anything, uint64(4), mock.Anything).Return(nil).Once()
		f.sessionRepo.On("Create", mock.Anything, mock.Anything).Return(func(ctx context.Context, s *model.SessionEntity) (*model.SessionEntity, error) {
			sessionID = s.SessionToken
			return echoSession(ctx, s)
		}).Once()
		f.redisRepo.On("SetSession", mock.Anything, mock.Anything, uint64(4), mock.Anything).Return(nil).Once()
		f.redisRepo.On("SetSelection", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
		f.recorder.On("Record", mock.Anything, mock.Anything).Once()

		resp, err := f.app().Login(context.Background(), &model.LoginRequest{Phone: "200000000"})
		require.NoError(t, err)
		token = resp.Token
	}

	tests := []struct {
		name     string
		token    string
		mockCall func(f fields)
		wantErr  bool
	}{
		{
			name:  "valid session",
			token: token,
			mockCall: func(f fields) {
				f.redisRepo.On("GetSession", mock.Anything, sessionID).Return(uint64(4), nil).Once()
			},
		},
		{
			name:  "redis miss restored from store",
			token: token,
			mockCall: func(f fields) {
				f.redisRepo.On("GetSession", mock.Anything, sessionID).Return(uint64(0), redisrepo.ErrNotFound).Once()
				f.sessionRepo.On("GetByToken", mock.Anything, sessionID).
					Return(&model.SessionEntity{VoterID: 4, IsActive: true, ExpiresAt: time.Now().Add(time.Hour)}, nil).Once()
				f.redisRepo.On("SetSession", mock.Anything, sessionID, uint64(4), mock.Anything).Return(nil).Once()
			},
		},
		{
			name:  "expired persisted session",
			token: token,
			mockCall: func(f fields) {
				f.redisRepo.On("GetSession", mock.Anything, sessionID).Return(uint64(0), redisrepo.ErrNotFound).Once()
				f.sessionRepo.On("GetByToken", mock.Anything, sessionID).
					Return(&model.SessionEntity{VoterID: 4, IsActive: true, ExpiresAt: time.Now().Add(-time.Minute)}, nil).Once()
			},
			wantErr: true,
		},
		{
			name:  "session belongs to someone else",
			token: token,
			mockCall: func(f fields) {
				f.redisRepo.On("GetSession", mock.Anything, sessionID).Return(uint64(99), nil).Once()
			},
			wantErr: true,
		},
		{
			name:     "garbage token",
			token:    "not-a-jwt",
			mockCall: func(f fields) {},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			userID, sid, err := f.app().ValidateToken(context.Background(), tt.token)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, uint64(4), userID)
			assert.Equal(t, sessionID, sid)
		})
	}
}
