package realtime_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/muhammadheryan/e-voting/application/realtime"
	"github.com/muhammadheryan/e-voting/constant"
	configappmocks "github.com/muhammadheryan/e-voting/mocks/application/config"
	nomineemocks "github.com/muhammadheryan/e-voting/mocks/repository/nominee"
	"github.com/muhammadheryan/e-voting/model"
)

func appConfig(title string, rates ...model.VoteRate) *model.AppConfig {
	if len(rates) == 0 {
		rates = []model.VoteRate{{Amount: 1, Votes: 1}, {Amount: 5, Votes: 5}}
	}
	return &model.AppConfig{Title: title, Subtitle: "Cast your votes", CurrencySymbol: "₵", VoteRates: rates}
}

func event(t *testing.T, collection string, action constant.ChangeAction, record any) model.ChangeEvent {
	b, err := json.Marshal(record)
	require.NoError(t, err)
	return model.ChangeEvent{Collection: collection, Action: action, Record: b}
}

func newProjector(t *testing.T) (realtime.Projector, *configappmocks.ConfigApp) {
	configApp := configappmocks.NewConfigApp(t)
	nomineeRepo := nomineemocks.NewNomineeRepository(t)

	configApp.On("Get", mock.Anything).Return(appConfig("Voting System"), nil).Once()
	nomineeRepo.On("ListActive", mock.Anything).Return([]model.NomineeEntity{
		{ID: 1, Name: "Maccarthy Charles", TotalVotes: 10},
		{ID: 2, Name: "Ama Serwaa", TotalVotes: 3},
	}, nil).Once()

	p := realtime.NewProjector(configApp, nomineeRepo)
	require.NoError(t, p.Init(context.Background()))
	return p, configApp
}

func TestProjector_Init(t *testing.T) {
	p, _ := newProjector(t)

	view := p.Snapshot()
	assert.Equal(t, "Voting System", view.Title)
	assert.Equal(t, map[uint64]string{1: "10", 2: "3"}, view.NomineeVotes)
	assert.Equal(t, []model.RateOption{
		{Amount: 1, Votes: 1, Label: "₵1 (1 Vote)"},
		{Amount: 5, Votes: 5, Label: "₵5 (5 Votes)"},
	}, view.RateOptions)
}

func TestProjector_Apply(t *testing.T) {
	tests := []struct {
		name     string
		event    func(t *testing.T) model.ChangeEvent
		mockCall func(configApp *configappmocks.ConfigApp)
		check    func(t *testing.T, view model.LiveView)
	}{
		{
			name: "nominee update overwrites only that count",
			event: func(t *testing.T) model.ChangeEvent {
				return event(t, constant.CollectionNominees, constant.ChangeActionUpdate, model.NomineeChange{ID: 1, TotalVotes: 42})
			},
			check: func(t *testing.T, view model.LiveView) {
				assert.Equal(t, map[uint64]string{1: "42", 2: "3"}, view.NomineeVotes)
			},
		},
		{
			name: "unknown nominee is ignored",
			event: func(t *testing.T) model.ChangeEvent {
				return event(t, constant.CollectionNominees, constant.ChangeActionUpdate, model.NomineeChange{ID: 9, TotalVotes: 42})
			},
			check: func(t *testing.T, view model.LiveView) {
				assert.Equal(t, map[uint64]string{1: "10", 2: "3"}, view.NomineeVotes)
			},
		},
		{
			name: "non update actions are ignored",
			event: func(t *testing.T) model.ChangeEvent {
				return event(t, constant.CollectionNominees, constant.ChangeActionDelete, model.NomineeChange{ID: 1})
			},
			check: func(t *testing.T, view model.LiveView) {
				assert.Equal(t, "10", view.NomineeVotes[1])
			},
		},
		{
			name: "title change reloads config but keeps rate options",
			event: func(t *testing.T) model.ChangeEvent {
				return event(t, constant.CollectionAppConfig, constant.ChangeActionUpdate, model.ConfigChange{Key: constant.ConfigKeyAppTitle, Value: "Finals"})
			},
			mockCall: func(configApp *configappmocks.ConfigApp) {
				configApp.On("Reload", mock.Anything).Return(appConfig("Finals", model.VoteRate{Amount: 2, Votes: 3}), nil).Once()
			},
			check: func(t *testing.T, view model.LiveView) {
				assert.Equal(t, "Finals", view.Title)
				assert.Len(t, view.RateOptions, 2)
			},
		},
		{
			name: "rate change rebuilds options",
			event: func(t *testing.T) model.ChangeEvent {
				return event(t, constant.CollectionAppConfig, constant.ChangeActionUpdate, model.ConfigChange{Key: constant.ConfigKeyVoteRates})
			},
			mockCall: func(configApp *configappmocks.ConfigApp) {
				configApp.On("Reload", mock.Anything).Return(appConfig("Voting System", model.VoteRate{Amount: 2, Votes: 3}), nil).Once()
			},
			check: func(t *testing.T, view model.LiveView) {
				assert.Equal(t, []model.RateOption{{Amount: 2, Votes: 3, Label: "₵2 (3 Votes)"}}, view.RateOptions)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, configApp := newProjector(t)
			if tt.mockCall != nil {
				tt.mockCall(configApp)
			}

			require.NoError(t, p.Apply(context.Background(), tt.event(t)))
			tt.check(t, p.Snapshot())
		})
	}
}

func TestProjector_SnapshotIsCopy(t *testing.T) {
	p, _ := newProjector(t)

	view := p.Snapshot()
	view.NomineeVotes[1] = "999"
	assert.Equal(t, "10", p.Snapshot().NomineeVotes[1])
}

func TestProjector_BadPayload(t *testing.T) {
	p, _ := newProjector(t)
	err := p.Apply(context.Background(), model.ChangeEvent{
		Collection: constant.CollectionNominees,
		Action:     constant.ChangeActionUpdate,
		Record:     json.RawMessage(`{"id":`),
	})
	assert.Error(t, err)
}
