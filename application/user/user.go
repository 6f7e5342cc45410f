package user

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/muhammadheryan/e-voting/application/audit"
	"github.com/muhammadheryan/e-voting/cmd/config"
	"github.com/muhammadheryan/e-voting/constant"
	"github.com/muhammadheryan/e-voting/model"
	redisrepo "github.com/muhammadheryan/e-voting/repository/redis"
	sessionrepo "github.com/muhammadheryan/e-voting/repository/session"
	voterrepo "github.com/muhammadheryan/e-voting/repository/voter"
	"github.com/muhammadheryan/e-voting/utils/dberr"
	"github.com/muhammadheryan/e-voting/utils/errors"
	"github.com/muhammadheryan/e-voting/utils/logger"
	validatorx "github.com/muhammadheryan/e-voting/utils/validator"
	"go.uber.org/zap"
)

type UserApp interface {
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	// ResolveVoter finds the voter for a 10-digit local phone, creating it on first login.
	ResolveVoter(ctx context.Context, phone string) (*model.VoterEntity, error)
	IssueSession(ctx context.Context, voterID uint64, ipAddress, userAgent string) (*model.SessionEntity, error)
	ValidateToken(ctx context.Context, tokenString string) (uint64, string, error)
}

type UserAppImpl struct {
	config      *config.Config
	voterRepo   voterrepo.VoterRepository
	sessionRepo sessionrepo.SessionRepository
	redisRepo   redisrepo.Repository
	recorder    audit.Recorder
}

func NewUserApp(config *config.Config, voterRepo voterrepo.VoterRepository, sessionRepo sessionrepo.SessionRepository, redisRepo redisrepo.Repository, recorder audit.Recorder) UserApp {
	return &UserAppImpl{
		config:      config,
		voterRepo:   voterRepo,
		sessionRepo: sessionRepo,
		redisRepo:   redisRepo,
		recorder:    recorder,
	}
}

// FormatPhone turns the 9 digits typed after the country prefix into the stored local format.
func FormatPhone(digits string) (string, bool) {
	if !validatorx.IsLocalPhone(digits) {
		return "", false
	}
	return "0" + digits, true
}

func (s *UserAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	phone, ok := FormatPhone(req.Phone)
	if !ok {
		return nil, errors.SetCustomError(constant.ErrInvalidPhone)
	}

	voter, err := s.ResolveVoter(ctx, phone)
	if err != nil {
		return nil, err
	}

	session, err := s.IssueSession(ctx, voter.ID, req.IPAddress, req.UserAgent)
	if err != nil {
		return nil, err
	}

	token, err := s.generateJWT(voter.ID, session)
	if err != nil {
		logger.Error("[Login] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	selection := &model.SelectionState{
		Stage:    constant.StageNoSelection,
		LoggedIn: true,
		VoterID:  voter.ID,
		Phone:    voter.Phone,
	}
	if err := s.redisRepo.SetSelection(ctx, session.SessionToken, selection, s.config.Voting.SelectionTTL); err != nil {
		logger.Error("[Login] err redisRepo.SetSelection", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	voterID := voter.ID
	s.recorder.Record(ctx, &model.AuditEntry{
		VoterID:   &voterID,
		Action:    constant.AuditActionUserLogin,
		Details:   map[string]any{"phone": voter.Phone},
		IPAddress: session.IPAddress,
		UserAgent: session.UserAgent,
	})

	return &model.LoginResponse{
		Phone:     voter.Phone,
		Token:     token,
		ExpiresAt: session.ExpiresAt,
		Message:   "Login successful! Select nominees and vote amount.",
	}, nil
}

func (s *UserAppImpl) ResolveVoter(ctx context.Context, phone string) (*model.VoterEntity, error) {
	voter, err := s.voterRepo.Get(ctx, &model.VoterFilter{Phone: phone})
	if err != nil {
		logger.Error("[ResolveVoter] err voterRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	now := time.Now().UTC()
	if voter != nil {
		if err := s.voterRepo.UpdateLastLogin(ctx, voter.ID, now); err != nil {
			logger.Error("[ResolveVoter] err voterRepo.UpdateLastLogin", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		voter.LastLogin = &now
		return voter, nil
	}

	voter, err = s.voterRepo.Create(ctx, &model.VoterEntity{
		Phone:      phone,
		IsActive:   true,
		FirstLogin: now,
		LastLogin:  &now,
	})
	if err == nil {
		return voter, nil
	}
	if !dberr.IsDuplicateEntry(err) {
		logger.Error("[ResolveVoter] err voterRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// lost a concurrent first login for the same phone
	voter, err = s.voterRepo.Get(ctx, &model.VoterFilter{Phone: phone})
	if err != nil || voter == nil {
		logger.Error("[ResolveVoter] err voterRepo.Get after duplicate", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return voter, nil
}

func (s *UserAppImpl) IssueSession(ctx context.Context, voterID uint64, ipAddress, userAgent string) (*model.SessionEntity, error) {
	now := time.Now().UTC()
	if ipAddress == "" {
		ipAddress = "unknown"
	}

	session, err := s.sessionRepo.Create(ctx, &model.SessionEntity{
		VoterID:      voterID,
		SessionToken: newSessionToken(now),
		IsActive:     true,
		ExpiresAt:    now.Add(s.config.Auth.SessionExpTime),
		IPAddress:    ipAddress,
		UserAgent:    userAgent,
		CreatedAt:    now,
	})
	if err != nil {
		logger.Error("[IssueSession] err sessionRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.redisRepo.SetSession(ctx, session.SessionToken, voterID, s.config.Auth.SessionExpTime); err != nil {
		logger.Error("[IssueSession] err redisRepo.SetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return session, nil
}

// ValidateToken returns the voter id and session token behind a bearer token.
func (s *UserAppImpl) ValidateToken(ctx context.Context, tokenString string) (uint64, string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return 0, "", fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return 0, "", fmt.Errorf("invalid claims")
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("invalid user id in token")
	}

	sessionID := claims.ID
	if sessionID == "" {
		return 0, "", fmt.Errorf("token missing jti")
	}

	redisUserID, err := s.redisRepo.GetSession(ctx, sessionID)
	if err == redisrepo.ErrNotFound {
		redisUserID, err = s.restoreSession(ctx, sessionID)
	}
	if err != nil {
		return 0, "", fmt.Errorf("invalid or expired session")
	}

	if redisUserID != userID {
		return 0, "", fmt.Errorf("token does not match user session")
	}

	return userID, sessionID, nil
}

// restoreSession re-mirrors a still valid persisted session into Redis.
func (s *UserAppImpl) restoreSession(ctx context.Context, sessionID string) (uint64, error) {
	session, err := s.sessionRepo.GetByToken(ctx, sessionID)
	if err != nil {
		logger.Error("[restoreSession] err sessionRepo.GetByToken", zap.String("error", err.Error()))
		return 0, err
	}
	if session == nil || !session.IsActive {
		return 0, redisrepo.ErrNotFound
	}
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return 0, redisrepo.ErrNotFound
	}
	if err := s.redisRepo.SetSession(ctx, sessionID, session.VoterID, ttl); err != nil {
		logger.Warn("[restoreSession] err redisRepo.SetSession", zap.String("error", err.Error()))
	}
	return session.VoterID, nil
}

func (s *UserAppImpl) generateJWT(voterID uint64, session *model.SessionEntity) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(voterID, 10),
		ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		IssuedAt:  jwt.NewNumericDate(session.CreatedAt),
		ID:        session.SessionToken,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

func newSessionToken(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("session_%d_%s", now.UnixMilli(), suffix[:16])
}
