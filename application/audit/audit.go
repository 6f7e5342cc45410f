package audit

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/muhammadheryan/e-voting/model"
	auditrepo "github.com/muhammadheryan/e-voting/repository/audit"
	"github.com/muhammadheryan/e-voting/utils/logger"
)

// Recorder is the audit hook. Callers record unconditionally; whether anything is
// persisted depends on the implementation chosen at startup. Record never fails the
// caller's operation.
type Recorder interface {
	Record(ctx context.Context, entry *model.AuditEntry)
}

// NewRecorder returns a MySQL-backed recorder when enabled, otherwise a no-op.
func NewRecorder(enabled bool, repo auditrepo.AuditRepository) Recorder {
	if !enabled || repo == nil {
		return noopRecorder{}
	}
	return &dbRecorder{repo: repo}
}

type noopRecorder struct{}

func (noopRecorder) Record(context.Context, *model.AuditEntry) {}

type dbRecorder struct {
	repo auditrepo.AuditRepository
}

func (r *dbRecorder) Record(ctx context.Context, entry *model.AuditEntry) {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	if err := r.repo.Insert(ctx, entry); err != nil {
		logger.Error("[Record] err auditRepo.Insert", zap.String("action", entry.Action), zap.String("error", err.Error()))
	}
}
