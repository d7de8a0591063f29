package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/loqeyusa/housingsupport/internal/finance"
	"github.com/loqeyusa/housingsupport/internal/money"
	"github.com/loqeyusa/housingsupport/internal/poolfund"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) UpsertSnapshot(ctx context.Context, snap *poolfund.Snapshot) error {
	query := `
		INSERT INTO pool_funds (client_month_id, hs_amount, rent_amount, expense_amount, pool_amount, calculated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (client_month_id) DO UPDATE
		SET hs_amount = EXCLUDED.hs_amount, rent_amount = EXCLUDED.rent_amount,
		    expense_amount = EXCLUDED.expense_amount, pool_amount = EXCLUDED.pool_amount,
		    calculated_at = EXCLUDED.calculated_at
	`

	var pool any
	if snap.PoolAmount != nil {
		pool = *snap.PoolAmount
	}

	_, err := s.db.ExecContext(ctx, query,
		snap.ClientMonthID, snap.HousingSupport, snap.RentPaid, snap.Expenses, pool, snap.CalculatedAt,
	)
	if err != nil {
		return fmt.Errorf("upserting pool fund snapshot: %w", err)
	}

	return nil
}

func (s *Store) GetSnapshot(ctx context.Context, clientMonthID uuid.UUID) (*poolfund.Snapshot, error) {
	query := `
		SELECT client_month_id, hs_amount, rent_amount, expense_amount, pool_amount, calculated_at
		FROM pool_funds
		WHERE client_month_id = $1
	`

	var (
		snap poolfund.Snapshot
		pool sql.NullString
	)

	err := s.db.QueryRowContext(ctx, query, clientMonthID).Scan(
		&snap.ClientMonthID, &snap.HousingSupport, &snap.RentPaid, &snap.Expenses, &pool, &snap.CalculatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, finance.ErrNotFound
		}

		return nil, fmt.Errorf("getting pool fund snapshot: %w", err)
	}

	if pool.Valid {
		amount, err := money.Parse(pool.String)
		if err != nil {
			return nil, fmt.Errorf("parsing pool amount: %w", err)
		}

		snap.PoolAmount = &amount
	}

	return &snap, nil
}
