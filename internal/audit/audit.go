// Package audit keeps the two append-only trails: field-level client history
// and entity-level audit log snapshots.
package audit

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Entity kinds recorded in the audit log.
const (
	EntityClient         = "client"
	EntityClientDocument = "client_document"
	EntityClientMonth    = "client_month"
	EntityHousingSupport = "housing_support"
	EntityRentPayment    = "rent_payment"
	EntityLthPayment     = "lth_payment"
	EntityExpense        = "expense"
	EntityExpenseDoc     = "expense_document"
)

// HistoryEntry is one field change on a client. Entries are never updated.
type HistoryEntry struct {
	ID        uuid.UUID
	ClientID  uuid.UUID
	Field     string
	OldValue  string
	NewValue  string
	ChangedBy uuid.UUID
	ChangedAt time.Time
}

// Entry is one audit log record. OldData and NewData are opaque JSON snapshots.
type Entry struct {
	ID         uuid.UUID
	Action     Action
	EntityType string
	EntityID   uuid.UUID
	OldData    json.RawMessage
	NewData    json.RawMessage
	ActorID    uuid.UUID
	CreatedAt  time.Time
}

// Change is a field-level difference passed to Recorder.Changes.
type Change struct {
	Field string
	Old   string
	New   string
}

// Diff appends a Change when old and new differ.
func Diff(changes []Change, field, before, after string) []Change {
	if before == after {
		return changes
	}

	return append(changes, Change{Field: field, Old: before, New: after})
}

type ListFilter struct {
	EntityType *string
	EntityID   *uuid.UUID
	Limit      int
}
