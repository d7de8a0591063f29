package poolfund

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/loqeyusa/housingsupport/internal/finance"
	"github.com/loqeyusa/housingsupport/internal/money"
)

// Snapshot is the persisted copy of one month's pool-fund computation. Live
// reads always recompute; snapshots are kept for audit and export.
type Snapshot struct {
	ClientMonthID  uuid.UUID    `json:"clientMonthId"`
	HousingSupport money.Money  `json:"housingSupport"`
	RentPaid       money.Money  `json:"rentPaid"`
	Expenses       money.Money  `json:"expenses"`
	PoolAmount     *money.Money `json:"poolAmount"`
	CalculatedAt   time.Time    `json:"calculatedAt"`
}

//go:generate mockgen -source=refresher.go -destination=refresher_mock.go -package=poolfund
type Aggregator interface {
	AggregateMonth(ctx context.Context, clientMonthID uuid.UUID) (*finance.ClientMonth, finance.Totals, error)
}

type SnapshotStore interface {
	UpsertSnapshot(ctx context.Context, s *Snapshot) error
	GetSnapshot(ctx context.Context, clientMonthID uuid.UUID) (*Snapshot, error)
}

type Refresher struct {
	totals Aggregator
	store  SnapshotStore
	now    func() time.Time
}

func NewRefresher(totals Aggregator, store SnapshotStore) *Refresher {
	return &Refresher{totals: totals, store: store, now: time.Now}
}

func (r *Refresher) WithClock(now func() time.Time) *Refresher {
	r.now = now
	return r
}

// Refresh recomputes the month's totals and overwrites its snapshot.
func (r *Refresher) Refresh(ctx context.Context, clientMonthID uuid.UUID) (*Snapshot, error) {
	_, t, err := r.totals.AggregateMonth(ctx, clientMonthID)
	if err != nil {
		return nil, fmt.Errorf("aggregating month %s: %w", clientMonthID, err)
	}

	s := &Snapshot{
		ClientMonthID:  clientMonthID,
		HousingSupport: t.HousingSupport,
		RentPaid:       t.RentPaid,
		Expenses:       t.TotalExpenses,
		CalculatedAt:   r.now(),
	}

	if amount, ok := Amount(t); ok {
		s.PoolAmount = &amount
	}

	if err := r.store.UpsertSnapshot(ctx, s); err != nil {
		return nil, fmt.Errorf("saving snapshot: %w", err)
	}

	return s, nil
}

func (r *Refresher) Snapshot(ctx context.Context, clientMonthID uuid.UUID) (*Snapshot, error) {
	return r.store.GetSnapshot(ctx, clientMonthID)
}
