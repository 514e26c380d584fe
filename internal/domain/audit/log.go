package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Caps for the bounded most-recent-N logs. New entries are prepended and the
// log is truncated to its cap, oldest evicted first.
const (
	MaxAuditEntries  = 1000
	MaxFailedEntries = 500
)

// Action is the kind of mutation an audit entry records
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// AuditLog is one entry of the audit trail
type AuditLog struct {
	ID           string    `json:"id"`
	Timestamp    time.Time `json:"timestamp"`
	UserID       string    `json:"userId"`
	UserName     string    `json:"userName"`
	Action       Action    `json:"action"`
	Module       string    `json:"module"`
	RecordID     string    `json:"recordId"`
	FieldUpdated string    `json:"fieldUpdated,omitempty"`
	OldValue     string    `json:"oldValue,omitempty"`
	NewValue     string    `json:"newValue,omitempty"`
}

// NewAuditLog stamps an entry with a generated id and the current time
func NewAuditLog(userID, userName string, action Action, module, recordID string) AuditLog {
	return AuditLog{
		ID:        "audit-" + uuid.NewString(),
		Timestamp: time.Now(),
		UserID:    userID,
		UserName:  userName,
		Action:    action,
		Module:    module,
		RecordID:  recordID,
	}
}

// WithFieldChange attaches field-level change detail to the entry
func (a AuditLog) WithFieldChange(field, oldValue, newValue string) AuditLog {
	a.FieldUpdated = field
	a.OldValue = oldValue
	a.NewValue = newValue
	return a
}

// FailedTransaction is one entry of the failed-transaction log
type FailedTransaction struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Module    string    `json:"module"`
	Action    string    `json:"action"`
	Error     string    `json:"error"`
	Details   string    `json:"details,omitempty"`
}

// NewFailedTransaction stamps a failure entry with a generated id and the
// current time
func NewFailedTransaction(userID, userName, module, action, errMsg, details string) FailedTransaction {
	return FailedTransaction{
		ID:        "failed-" + uuid.NewString(),
		Timestamp: time.Now(),
		UserID:    userID,
		UserName:  userName,
		Module:    module,
		Action:    action,
		Error:     errMsg,
		Details:   details,
	}
}

// Prepend puts entry at the front of log and truncates to cap,
// most-recent-first.
func Prepend[T any](log []T, entry T, cap int) []T {
	out := make([]T, 0, len(log)+1)
	out = append(out, entry)
	out = append(out, log...)
	if len(out) > cap {
		out = out[:cap]
	}
	return out
}

// AuditLogRepository persists the bounded audit trail
type AuditLogRepository interface {
	// Record prepends the entry and truncates to MaxAuditEntries
	Record(ctx context.Context, entry AuditLog) error

	// FindAll returns entries most-recent-first
	FindAll(ctx context.Context) ([]AuditLog, error)
}

// FailedTransactionRepository persists the bounded failure log
type FailedTransactionRepository interface {
	// Record prepends the entry and truncates to MaxFailedEntries
	Record(ctx context.Context, entry FailedTransaction) error

	// FindAll returns entries most-recent-first
	FindAll(ctx context.Context) ([]FailedTransaction, error)

	// Clear resets the log to empty
	Clear(ctx context.Context) error
}
