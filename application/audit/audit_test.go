package audit_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/muhammadheryan/e-voting/application/audit"
	auditmocks "github.com/muhammadheryan/e-voting/mocks/repository/audit"
	"github.com/muhammadheryan/e-voting/model"
)

func TestRecorder(t *testing.T) {
	tests := []struct {
		name     string
		enabled  bool
		mockCall func(repo *auditmocks.AuditRepository)
	}{
		{
			name:     "disabled records nothing",
			enabled:  false,
			mockCall: func(repo *auditmocks.AuditRepository) {},
		},
		{
			name:    "enabled persists entry",
			enabled: true,
			mockCall: func(repo *auditmocks.AuditRepository) {
				repo.On("Insert", mock.Anything, mock.MatchedBy(func(e *model.AuditEntry) bool {
					return e.Action == "vote_cast" && !e.CreatedAt.IsZero()
				})).Return(nil).Once()
			},
		},
		{
			name:    "store failure is swallowed",
			enabled: true,
			mockCall: func(repo *auditmocks.AuditRepository) {
				repo.On("Insert", mock.Anything, mock.Anything).Return(errors.New("db down")).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := auditmocks.NewAuditRepository(t)
			tt.mockCall(repo)

			audit.NewRecorder(tt.enabled, repo).Record(context.Background(), &model.AuditEntry{Action: "vote_cast"})
		})
	}
}
