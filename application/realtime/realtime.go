package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"github.com/muhammadheryan/e-voting/application/config"
	"github.com/muhammadheryan/e-voting/constant"
	"github.com/muhammadheryan/e-voting/model"
	nomineerepo "github.com/muhammadheryan/e-voting/repository/nominee"
	"github.com/muhammadheryan/e-voting/utils/logger"
	"go.uber.org/zap"
)

// Projector keeps the live view current from change events. Delivery is at least
// once and the last event wins.
type Projector interface {
	Init(ctx context.Context) error
	Apply(ctx context.Context, ev model.ChangeEvent) error
	Snapshot() model.LiveView
}

type projector struct {
	configApp   config.ConfigApp
	nomineeRepo nomineerepo.NomineeRepository

	mu   sync.RWMutex
	view model.LiveView
}

func NewProjector(configApp config.ConfigApp, nomineeRepo nomineerepo.NomineeRepository) Projector {
	return &projector{
		configApp:   configApp,
		nomineeRepo: nomineeRepo,
		view:        model.LiveView{NomineeVotes: map[uint64]string{}},
	}
}

func (p *projector) Init(ctx context.Context) error {
	cfg, err := p.configApp.Get(ctx)
	if err != nil {
		return err
	}
	nominees, err := p.nomineeRepo.ListActive(ctx)
	if err != nil {
		return err
	}

	view := model.LiveView{
		Title:        cfg.Title,
		Subtitle:     cfg.Subtitle,
		RateOptions:  RateOptions(cfg),
		NomineeVotes: make(map[uint64]string, len(nominees)),
	}
	for _, n := range nominees {
		view.NomineeVotes[n.ID] = strconv.FormatInt(n.TotalVotes, 10)
	}

	p.mu.Lock()
	p.view = view
	p.mu.Unlock()
	return nil
}

func (p *projector) Apply(ctx context.Context, ev model.ChangeEvent) error {
	if ev.Action != constant.ChangeActionUpdate {
		return nil
	}

	switch ev.Collection {
	case constant.CollectionNominees:
		var change model.NomineeChange
		if err := json.Unmarshal(ev.Record, &change); err != nil {
			return fmt.Errorf("decode nominee change: %w", err)
		}
		p.mu.Lock()
		if _, ok := p.view.NomineeVotes[change.ID]; ok {
			p.view.NomineeVotes[change.ID] = strconv.FormatInt(change.TotalVotes, 10)
		}
		p.mu.Unlock()

	case constant.CollectionAppConfig:
		var change model.ConfigChange
		if err := json.Unmarshal(ev.Record, &change); err != nil {
			return fmt.Errorf("decode config change: %w", err)
		}
		cfg, err := p.configApp.Reload(ctx)
		if err != nil {
			logger.Error("[Projector.Apply] err configApp.Reload", zap.String("error", err.Error()))
			return err
		}
		p.mu.Lock()
		p.view.Title = cfg.Title
		p.view.Subtitle = cfg.Subtitle
		if change.Key == constant.ConfigKeyVoteRates {
			p.view.RateOptions = RateOptions(cfg)
		}
		p.mu.Unlock()
	}
	return nil
}

// Snapshot returns a copy of the current view.
func (p *projector) Snapshot() model.LiveView {
	p.mu.RLock()
	defer p.mu.RUnlock()

	view := p.view
	view.RateOptions = append([]model.RateOption(nil), p.view.RateOptions...)
	view.NomineeVotes = make(map[uint64]string, len(p.view.NomineeVotes))
	for id, votes := range p.view.NomineeVotes {
		view.NomineeVotes[id] = votes
	}
	return view
}

// RateOptions renders the amount choices, e.g. "₵5 (5 Votes)".
func RateOptions(cfg *model.AppConfig) []model.RateOption {
	opts := make([]model.RateOption, 0, len(cfg.VoteRates))
	for _, r := range cfg.VoteRates {
		unit := "Votes"
		if r.Votes == 1 {
			unit = "Vote"
		}
		opts = append(opts, model.RateOption{
			Amount: r.Amount,
			Votes:  r.Votes,
			Label:  fmt.Sprintf("%s%s (%d %s)", cfg.CurrencySymbol, strconv.FormatFloat(r.Amount, 'f', -1, 64), r.Votes, unit),
		})
	}
	return opts
}
