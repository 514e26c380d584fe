package persistence

import (
	"context"

	"github.com/paperstock/backend/internal/domain/audit"
	"github.com/paperstock/backend/internal/infrastructure/store"
)

// Store keys for the bounded logs
const (
	AuditLogsKey          = "audit_logs"
	FailedTransactionsKey = "failed_transactions"
)

// KVAuditLogRepository implements audit.AuditLogRepository over a KeyValueStore
type KVAuditLogRepository struct {
	kv store.KeyValueStore
}

// NewKVAuditLogRepository creates the audit trail repository
func NewKVAuditLogRepository(kv store.KeyValueStore) *KVAuditLogRepository {
	return &KVAuditLogRepository{kv: kv}
}

// Record prepends the entry and truncates to the audit cap
func (r *KVAuditLogRepository) Record(ctx context.Context, entry audit.AuditLog) error {
	var logs []audit.AuditLog
	if _, err := r.kv.Get(ctx, AuditLogsKey, &logs); err != nil {
		return persistenceError(err)
	}
	logs = audit.Prepend(logs, entry, audit.MaxAuditEntries)
	if err := r.kv.Set(ctx, AuditLogsKey, logs); err != nil {
		return persistenceError(err)
	}
	return nil
}

// FindAll returns entries most-recent-first
func (r *KVAuditLogRepository) FindAll(ctx context.Context) ([]audit.AuditLog, error) {
	var logs []audit.AuditLog
	if _, err := r.kv.Get(ctx, AuditLogsKey, &logs); err != nil {
		return nil, persistenceError(err)
	}
	if logs == nil {
		logs = []audit.AuditLog{}
	}
	return logs, nil
}

// KVFailedTransactionRepository implements audit.FailedTransactionRepository
// over a KeyValueStore
type KVFailedTransactionRepository struct {
	kv store.KeyValueStore
}

// NewKVFailedTransactionRepository creates the failed-transaction log repository
func NewKVFailedTransactionRepository(kv store.KeyValueStore) *KVFailedTransactionRepository {
	return &KVFailedTransactionRepository{kv: kv}
}

// Record prepends the entry and truncates to the failure cap
func (r *KVFailedTransactionRepository) Record(ctx context.Context, entry audit.FailedTransaction) error {
	var failures []audit.FailedTransaction
	if _, err := r.kv.Get(ctx, FailedTransactionsKey, &failures); err != nil {
		return persistenceError(err)
	}
	failures = audit.Prepend(failures, entry, audit.MaxFailedEntries)
	if err := r.kv.Set(ctx, FailedTransactionsKey, failures); err != nil {
		return persistenceError(err)
	}
	return nil
}

// FindAll returns entries most-recent-first
func (r *KVFailedTransactionRepository) FindAll(ctx context.Context) ([]audit.FailedTransaction, error) {
	var failures []audit.FailedTransaction
	if _, err := r.kv.Get(ctx, FailedTransactionsKey, &failures); err != nil {
		return nil, persistenceError(err)
	}
	if failures == nil {
		failures = []audit.FailedTransaction{}
	}
	return failures, nil
}

// Clear resets the failed-transaction log to empty
func (r *KVFailedTransactionRepository) Clear(ctx context.Context) error {
	if err := r.kv.Set(ctx, FailedTransactionsKey, []audit.FailedTransaction{}); err != nil {
		return persistenceError(err)
	}
	return nil
}

var (
	_ audit.AuditLogRepository          = (*KVAuditLogRepository)(nil)
	_ audit.FailedTransactionRepository = (*KVFailedTransactionRepository)(nil)
)
