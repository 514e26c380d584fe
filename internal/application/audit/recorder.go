// Package audit provides the application-level audit trail facade. Recording
// is best effort: a failed write is logged and never fails the mutation that
// triggered it.
package audit

import (
	"context"

	"go.uber.org/zap"

	"github.com/paperstock/backend/internal/domain/audit"
)

// Actor identifies who performed an operation, threaded from the session
type Actor struct {
	UserID   string
	UserName string
}

// Recorder writes audit and failed-transaction entries
type Recorder struct {
	auditRepo  audit.AuditLogRepository
	failedRepo audit.FailedTransactionRepository
	logger     *zap.Logger
}

// NewRecorder creates a new audit recorder
func NewRecorder(auditRepo audit.AuditLogRepository, failedRepo audit.FailedTransactionRepository, logger *zap.Logger) *Recorder {
	return &Recorder{
		auditRepo:  auditRepo,
		failedRepo: failedRepo,
		logger:     logger,
	}
}

// Record writes a successful-mutation entry to the audit trail
func (r *Recorder) Record(ctx context.Context, actor Actor, action audit.Action, module, recordID string) {
	entry := audit.NewAuditLog(actor.UserID, actor.UserName, action, module, recordID)
	if err := r.auditRepo.Record(ctx, entry); err != nil {
		r.logger.Warn("Failed to record audit entry",
			zap.String("module", module),
			zap.String("record_id", recordID),
			zap.Error(err))
	}
}

// RecordFieldChange writes an update entry carrying field-level detail
func (r *Recorder) RecordFieldChange(ctx context.Context, actor Actor, module, recordID, field, oldValue, newValue string) {
	entry := audit.NewAuditLog(actor.UserID, actor.UserName, audit.ActionUpdate, module, recordID).
		WithFieldChange(field, oldValue, newValue)
	if err := r.auditRepo.Record(ctx, entry); err != nil {
		r.logger.Warn("Failed to record audit entry",
			zap.String("module", module),
			zap.String("record_id", recordID),
			zap.Error(err))
	}
}

// RecordFailure writes an entry to the failed-transaction log
func (r *Recorder) RecordFailure(ctx context.Context, actor Actor, module, action, errMsg, details string) {
	entry := audit.NewFailedTransaction(actor.UserID, actor.UserName, module, action, errMsg, details)
	if err := r.failedRepo.Record(ctx, entry); err != nil {
		r.logger.Warn("Failed to record failure entry",
			zap.String("module", module),
			zap.String("action", action),
			zap.Error(err))
	}
}

// Trail returns the audit trail, most recent first
func (r *Recorder) Trail(ctx context.Context) ([]audit.AuditLog, error) {
	return r.auditRepo.FindAll(ctx)
}

// Failures returns the failed-transaction log, most recent first
func (r *Recorder) Failures(ctx context.Context) ([]audit.FailedTransaction, error) {
	return r.failedRepo.FindAll(ctx)
}

// ClearFailures empties the failed-transaction log
func (r *Recorder) ClearFailures(ctx context.Context) error {
	return r.failedRepo.Clear(ctx)
}
