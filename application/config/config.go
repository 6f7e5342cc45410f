package config

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/muhammadheryan/e-voting/application/audit"
	"github.com/muhammadheryan/e-voting/cmd/config"
	"github.com/muhammadheryan/e-voting/constant"
	"github.com/muhammadheryan/e-voting/model"
	configrepo "github.com/muhammadheryan/e-voting/repository/config"
	redisrepo "github.com/muhammadheryan/e-voting/repository/redis"
	"github.com/muhammadheryan/e-voting/thirdparty/rabbitmq"
	"github.com/muhammadheryan/e-voting/utils/errors"
	"github.com/muhammadheryan/e-voting/utils/logger"
)

const cacheKey = "app_config:entries"

type ConfigApp interface {
	// Get returns the typed configuration, served from cache when possible.
	Get(ctx context.Context) (*model.AppConfig, error)
	// Reload drops the cache and reads every active entry from the store.
	Reload(ctx context.Context) (*model.AppConfig, error)
	Update(ctx context.Context, req *model.UpdateConfigRequest) (*model.ConfigEntity, error)
}

type configAppImpl struct {
	config     *config.Config
	configRepo configrepo.ConfigRepository
	redisRepo  redisrepo.Repository
	publisher  rabbitmq.EventPublisher
	recorder   audit.Recorder
}

func NewConfigApp(config *config.Config, configRepo configrepo.ConfigRepository, redisRepo redisrepo.Repository, publisher rabbitmq.EventPublisher, recorder audit.Recorder) ConfigApp {
	return &configAppImpl{
		config:     config,
		configRepo: configRepo,
		redisRepo:  redisRepo,
		publisher:  publisher,
		recorder:   recorder,
	}
}

func (s *configAppImpl) Get(ctx context.Context) (*model.AppConfig, error) {
	cached, err := s.redisRepo.Get(ctx, cacheKey)
	if err == nil {
		var entries []model.ConfigEntity
		if err := json.Unmarshal([]byte(cached), &entries); err == nil {
			cfg, _ := ParseEntries(entries)
			return cfg, nil
		}
		logger.Warn("[ConfigApp.Get] drop unreadable config cache")
	} else if err != redisrepo.ErrNotFound {
		logger.Warn("[ConfigApp.Get] err redisRepo.Get", zap.String("error", err.Error()))
	}

	return s.load(ctx)
}

func (s *configAppImpl) Reload(ctx context.Context) (*model.AppConfig, error) {
	if err := s.redisRepo.Delete(ctx, cacheKey); err != nil {
		logger.Warn("[ConfigApp.Reload] err redisRepo.Delete", zap.String("error", err.Error()))
	}
	return s.load(ctx)
}

func (s *configAppImpl) load(ctx context.Context) (*model.AppConfig, error) {
	entries, err := s.configRepo.ListActive(ctx)
	if err != nil {
		logger.Error("[ConfigApp.load] err configRepo.ListActive", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	cfg, warnings := ParseEntries(entries)
	for _, w := range warnings {
		logger.Warn("[ConfigApp.load] " + w)
	}

	if b, err := json.Marshal(entries); err == nil {
		if err := s.redisRepo.SetWithTTL(ctx, cacheKey, string(b), s.config.Voting.ConfigCacheTTL); err != nil {
			logger.Warn("[ConfigApp.load] err redisRepo.SetWithTTL", zap.String("error", err.Error()))
		}
	}

	return cfg, nil
}

func (s *configAppImpl) Update(ctx context.Context, req *model.UpdateConfigRequest) (*model.ConfigEntity, error) {
	entry, err := s.configRepo.GetByKey(ctx, req.Key)
	if err != nil {
		logger.Error("[ConfigApp.Update] err configRepo.GetByKey", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entry == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if err := validateValue(entry.Key, entry.Type, req.Value); err != nil {
		return nil, errors.SetCustomErrorWithDetail(constant.ErrInvalidRequest, err.Error())
	}

	now := time.Now().UTC()
	if err := s.configRepo.UpdateValue(ctx, entry.Key, req.Value, now); err != nil {
		logger.Error("[ConfigApp.Update] err configRepo.UpdateValue", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	entry.Value = req.Value
	entry.UpdatedAt = &now

	if err := s.redisRepo.Delete(ctx, cacheKey); err != nil {
		logger.Warn("[ConfigApp.Update] err redisRepo.Delete", zap.String("error", err.Error()))
	}

	record, _ := json.Marshal(model.ConfigChange{Key: entry.Key, Value: entry.Value})
	ev := model.ChangeEvent{Collection: constant.CollectionAppConfig, Action: constant.ChangeActionUpdate, Record: record}
	if err := s.publisher.PublishChange(ctx, ev); err != nil {
		logger.Error("[ConfigApp.Update] err publisher.PublishChange", zap.String("error", err.Error()))
	}

	s.recorder.Record(ctx, &model.AuditEntry{
		Action:  constant.AuditActionConfigUpdated,
		Details: map[string]any{"key": entry.Key, "value": entry.Value},
	})

	return entry, nil
}

// ParseEntries converts raw entries into the typed configuration. Values that do
// not parse as their declared type keep the raw string and produce a warning.
func ParseEntries(entries []model.ConfigEntity) (*model.AppConfig, []string) {
	cfg := &model.AppConfig{
		Title:          constant.DefaultAppTitle,
		Subtitle:       constant.DefaultAppSubtitle,
		Currency:       constant.DefaultCurrency,
		CurrencySymbol: constant.DefaultCurrencySymbol,
		Values:         make(map[string]any, len(entries)),
	}
	var warnings []string

	for _, e := range entries {
		if !e.IsActive {
			continue
		}
		value, err := parseValue(e.Type, e.Value)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("failed to parse %s config: %s", e.Type, e.Key))
			value = e.Value
		}
		cfg.Values[e.Key] = value
	}

	if v, ok := cfg.Values[constant.ConfigKeyAppTitle].(string); ok && v != "" {
		cfg.Title = v
	}
	if v, ok := cfg.Values[constant.ConfigKeyAppSubtitle].(string); ok && v != "" {
		cfg.Subtitle = v
	}
	if v, ok := cfg.Values[constant.ConfigKeyCurrency].(string); ok && v != "" {
		cfg.Currency = v
	}
	if v, ok := cfg.Values[constant.ConfigKeyCurrencySymbol].(string); ok && v != "" {
		cfg.CurrencySymbol = v
	}
	if v, ok := cfg.Values[constant.ConfigKeyPaystackPublicKey].(string); ok {
		cfg.PaystackPublicKey = v
	}
	cfg.VotingEnabled, _ = cfg.Values[constant.ConfigKeyVotingEnabled].(bool)
	cfg.MinVoteAmount, _ = cfg.Values[constant.ConfigKeyMinVoteAmount].(float64)
	cfg.MaxVoteAmount, _ = cfg.Values[constant.ConfigKeyMaxVoteAmount].(float64)

	rates, rateWarnings := voteRates(cfg.Values[constant.ConfigKeyVoteRates])
	warnings = append(warnings, rateWarnings...)
	cfg.VoteRates = rates

	return cfg, warnings
}

func parseValue(t constant.ConfigValueType, raw string) (any, error) {
	switch t {
	case constant.ConfigTypeBoolean:
		return raw == "true", nil
	case constant.ConfigTypeNumber:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, err
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("not a finite number: %q", raw)
		}
		return f, nil
	case constant.ConfigTypeJSON:
		var v any
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			return nil, err
		}
		return v, nil
	default:
		return raw, nil
	}
}

func voteRates(v any) ([]model.VoteRate, []string) {
	defaults := []model.VoteRate{{Amount: 1, Votes: 1}, {Amount: 5, Votes: 5}, {Amount: 10, Votes: 10}}
	list, ok := v.([]any)
	if !ok {
		return defaults, nil
	}

	var warnings []string
	rates := make([]model.VoteRate, 0, len(list))
	for i, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("skip vote rate %d: not an object", i))
			continue
		}
		amount, _ := m["amount"].(float64)
		votes, _ := m["votes"].(float64)
		if amount <= 0 || votes <= 0 || votes != math.Trunc(votes) {
			warnings = append(warnings, fmt.Sprintf("skip vote rate %d: amount and votes must be positive", i))
			continue
		}
		rates = append(rates, model.VoteRate{Amount: amount, Votes: int64(votes)})
	}
	if len(rates) == 0 {
		return defaults, warnings
	}
	return rates, warnings
}

func validateValue(key string, t constant.ConfigValueType, raw string) error {
	if t == constant.ConfigTypeBoolean && raw != "true" && raw != "false" {
		return fmt.Errorf("%s must be true or false", key)
	}
	v, err := parseValue(t, raw)
	if err != nil {
		return fmt.Errorf("%s is not a valid %s", key, t)
	}
	if key == constant.ConfigKeyVoteRates {
		if _, warnings := voteRates(v); len(warnings) > 0 {
			return fmt.Errorf("%s: %s", key, warnings[0])
		}
		if _, ok := v.([]any); !ok {
			return fmt.Errorf("%s must be a list", key)
		}
	}
	return nil
}
