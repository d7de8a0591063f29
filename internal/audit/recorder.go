package audit

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/loqeyusa/housingsupport/internal/auth"
)

//go:generate mockgen -source=recorder.go -destination=store_mock.go -package=audit
type Store interface {
	AppendHistory(ctx context.Context, entries []HistoryEntry) error
	AppendAudit(ctx context.Context, e *Entry) error
	ListHistory(ctx context.Context, clientID uuid.UUID) ([]HistoryEntry, error)
	ListAudit(ctx context.Context, filter ListFilter) ([]*Entry, error)
}

// Recorder writes trail entries on behalf of services. Write failures are
// logged and swallowed: callers have already committed the primary change.
type Recorder struct {
	store Store
	log   *slog.Logger
	now   func() time.Time
}

func NewRecorder(store Store, log *slog.Logger) *Recorder {
	if log == nil {
		log = slog.Default()
	}

	return &Recorder{store: store, log: log, now: time.Now}
}

// Changes appends one history entry per change.
func (r *Recorder) Changes(ctx context.Context, actor auth.Actor, clientID uuid.UUID, changes []Change) {
	if len(changes) == 0 {
		return
	}

	at := r.now()
	entries := make([]HistoryEntry, len(changes))

	for i, c := range changes {
		entries[i] = HistoryEntry{
			ClientID:  clientID,
			Field:     c.Field,
			OldValue:  c.Old,
			NewValue:  c.New,
			ChangedBy: actor.UserID,
			ChangedAt: at,
		}
	}

	if err := r.store.AppendHistory(ctx, entries); err != nil {
		r.log.ErrorContext(ctx, "failed to append client history",
			"client_id", clientID, "changes", len(changes), "error", err)
	}
}

// Action appends an audit log entry. before and after are marshalled as JSON
// snapshots; a nil value records no snapshot.
func (r *Recorder) Action(ctx context.Context, actor auth.Actor, action Action, entityType string, entityID uuid.UUID, before, after any) {
	e := &Entry{
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		OldData:    r.snapshot(ctx, entityType, entityID, before),
		NewData:    r.snapshot(ctx, entityType, entityID, after),
		ActorID:    actor.UserID,
		CreatedAt:  r.now(),
	}

	if err := r.store.AppendAudit(ctx, e); err != nil {
		r.log.ErrorContext(ctx, "failed to append audit log",
			"action", action, "entity_type", entityType, "entity_id", entityID, "error", err)
	}
}

func (r *Recorder) snapshot(ctx context.Context, entityType string, entityID uuid.UUID, v any) json.RawMessage {
	if v == nil {
		return nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		r.log.ErrorContext(ctx, "failed to marshal audit snapshot",
			"entity_type", entityType, "entity_id", entityID, "error", err)

		return nil
	}

	// Typed nil pointers marshal to null.
	if string(data) == "null" {
		return nil
	}

	return data
}

func (r *Recorder) History(ctx context.Context, clientID uuid.UUID) ([]HistoryEntry, error) {
	return r.store.ListHistory(ctx, clientID)
}

func (r *Recorder) List(ctx context.Context, filter ListFilter) ([]*Entry, error) {
	return r.store.ListAudit(ctx, filter)
}
