package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/loqeyusa/housingsupport/internal/audit"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// AppendHistory inserts all entries in one transaction.
func (s *Store) AppendHistory(ctx context.Context, entries []audit.HistoryEntry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning history tx: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO client_history (client_id, field_name, old_value, new_value, changed_by, changed_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	for i := range entries {
		e := &entries[i]

		err := tx.QueryRowContext(ctx, query,
			e.ClientID, e.Field, e.OldValue, e.NewValue, e.ChangedBy, e.ChangedAt,
		).Scan(&e.ID)
		if err != nil {
			return fmt.Errorf("appending history: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing history: %w", err)
	}

	return nil
}

func (s *Store) AppendAudit(ctx context.Context, e *audit.Entry) error {
	query := `
		INSERT INTO audit_logs (action, entity_type, entity_id, old_data, new_data, actor_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query,
		e.Action, e.EntityType, e.EntityID, nullJSON(e.OldData), nullJSON(e.NewData), e.ActorID, e.CreatedAt,
	).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("appending audit log: %w", err)
	}

	return nil
}

func (s *Store) ListHistory(ctx context.Context, clientID uuid.UUID) ([]audit.HistoryEntry, error) {
	query := `
		SELECT id, client_id, field_name, old_value, new_value, changed_by, changed_at
		FROM client_history
		WHERE client_id = $1
		ORDER BY changed_at DESC, id
	`

	rows, err := s.db.QueryContext(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	defer rows.Close()

	var entries []audit.HistoryEntry

	for rows.Next() {
		var e audit.HistoryEntry
		if err := rows.Scan(&e.ID, &e.ClientID, &e.Field, &e.OldValue, &e.NewValue, &e.ChangedBy, &e.ChangedAt); err != nil {
			return nil, fmt.Errorf("scanning history: %w", err)
		}

		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating history rows: %w", err)
	}

	return entries, nil
}

func (s *Store) ListAudit(ctx context.Context, filter audit.ListFilter) ([]*audit.Entry, error) {
	query := `
		SELECT id, action, entity_type, entity_id, old_data, new_data, actor_id, created_at
		FROM audit_logs
		WHERE 1=1`

	var args []any

	argIdx := 1

	if filter.EntityType != nil {
		query += fmt.Sprintf(" AND entity_type = $%d", argIdx)

		args = append(args, *filter.EntityType)
		argIdx++
	}

	if filter.EntityID != nil {
		query += fmt.Sprintf(" AND entity_id = $%d", argIdx)

		args = append(args, *filter.EntityID)
		argIdx++
	}

	limit := filter.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argIdx)

	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing audit logs: %w", err)
	}
	defer rows.Close()

	var entries []*audit.Entry

	for rows.Next() {
		var (
			e                audit.Entry
			action           string
			oldData, newData []byte
		)

		if err := rows.Scan(&e.ID, &action, &e.EntityType, &e.EntityID, &oldData, &newData, &e.ActorID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning audit log: %w", err)
		}

		e.Action = audit.Action(action)
		e.OldData = oldData
		e.NewData = newData
		entries = append(entries, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating audit rows: %w", err)
	}

	return entries, nil
}

func nullJSON(b []byte) any {
	if len(b) == 0 {
		return nil
	}

	return string(b)
}
