package finance_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/loqeyusa/housingsupport/internal/access"
	"github.com/loqeyusa/housingsupport/internal/audit"
	"github.com/loqeyusa/housingsupport/internal/auth"
	"github.com/loqeyusa/housingsupport/internal/finance"
	"github.com/loqeyusa/housingsupport/internal/money"
	"github.com/loqeyusa/housingsupport/internal/period"
)

var (
	now = time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC)

	april   = period.Period{Year: 2025, Month: 4}
	january = period.Period{Year: 2025, Month: 1}

	admin = auth.Actor{UserID: uuid.New(), Role: auth.RoleAdmin}
	super = auth.Actor{UserID: uuid.New(), Role: auth.RoleSuperAdmin}
)

type guardFunc func(ctx context.Context, actor auth.Actor, clientID uuid.UUID, locked bool) error

func (f guardFunc) Check(ctx context.Context, actor auth.Actor, clientID uuid.UUID, locked bool) error {
	return f(ctx, actor, clientID, locked)
}

// lockOnly rejects locked months for everyone but super admins.
var lockOnly = guardFunc(func(_ context.Context, actor auth.Actor, _ uuid.UUID, locked bool) error {
	if !access.IsEditable(locked, actor) {
		return access.ErrEditWindowClosed
	}

	return nil
})

func quietTrail(ctrl *gomock.Controller) *audit.Recorder {
	store := audit.NewMockStore(ctrl)
	store.EXPECT().AppendHistory(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	store.EXPECT().AppendAudit(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return audit.NewRecorder(store, nil)
}

func newService(repo finance.Repository, guard finance.Guard, trail *audit.Recorder) *finance.Service {
	return finance.NewService(repo, guard, trail, period.NewWindow(0)).
		WithClock(func() time.Time { return now })
}

func TestService_FindOrCreateMonth(t *testing.T) {
	clientID := uuid.New()

	t.Run("Idempotent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := newMemRepo()
		svc := newService(repo, lockOnly, quietTrail(ctrl))

		first, err := svc.FindOrCreateMonth(context.Background(), clientID, april)
		require.NoError(t, err)

		second, err := svc.FindOrCreateMonth(context.Background(), clientID, april)
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.False(t, first.Locked)
		assert.Equal(t, 1, repo.monthCount())
		assert.Equal(t, 1, repo.creates)
	})

	t.Run("LosingTheRaceReadsWinner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := newMemRepo()

		var winner *finance.ClientMonth

		repo.beforeCreate = func(m *finance.ClientMonth) {
			repo.beforeCreate = nil
			winner = repo.insertMonth(m.ClientID, m.Period, false)
		}

		svc := newService(repo, lockOnly, quietTrail(ctrl))

		got, err := svc.FindOrCreateMonth(context.Background(), clientID, april)
		require.NoError(t, err)
		assert.Equal(t, winner.ID, got.ID)
		assert.Equal(t, 1, repo.monthCount())
	})

	t.Run("Concurrent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := newMemRepo()
		svc := newService(repo, lockOnly, quietTrail(ctrl))

		const callers = 32

		var (
			wg  sync.WaitGroup
			ids = make([]uuid.UUID, callers)
		)

		start := make(chan struct{})

		for i := range callers {
			wg.Add(1)

			go func() {
				defer wg.Done()
				<-start

				m, err := svc.FindOrCreateMonth(context.Background(), clientID, april)
				if assert.NoError(t, err) {
					ids[i] = m.ID
				}
			}()
		}

		close(start)
		wg.Wait()

		assert.Equal(t, 1, repo.monthCount())

		for _, id := range ids {
			assert.Equal(t, ids[0], id)
		}
	})

	t.Run("InvalidPeriod", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := newService(newMemRepo(), lockOnly, quietTrail(ctrl))

		_, err := svc.FindOrCreateMonth(context.Background(), clientID, period.Period{Year: 2025, Month: 13})
		assert.ErrorIs(t, err, period.ErrInvalidPeriod)
	})

	t.Run("ClosedWindowLocksOnRead", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := newMemRepo()
		svc := newService(repo, lockOnly, quietTrail(ctrl))

		m, err := svc.FindOrCreateMonth(context.Background(), clientID, january)
		require.NoError(t, err)
		assert.True(t, m.Locked)

		stored, err := repo.GetMonth(context.Background(), clientID, january)
		require.NoError(t, err)
		assert.True(t, stored.Locked)
	})
}

func TestService_FindOrCreateMonth_LockPersistFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clientID := uuid.New()
	monthID := uuid.New()

	repo := finance.NewMockRepository(ctrl)
	repo.EXPECT().GetMonth(gomock.Any(), clientID, january).
		Return(&finance.ClientMonth{ID: monthID, ClientID: clientID, Period: january}, nil)
	repo.EXPECT().SetMonthLocked(gomock.Any(), monthID, true).Return(errors.New("db down"))

	svc := newService(repo, lockOnly, quietTrail(ctrl))

	m, err := svc.FindOrCreateMonth(context.Background(), clientID, january)
	require.NoError(t, err)
	assert.True(t, m.Locked)
}

func TestService_SetHousingSupport_Gate(t *testing.T) {
	clientID := uuid.New()
	dbDown := errors.New("db down")

	type testCase struct {
		name      string
		actor     auth.Actor
		period    period.Period
		guard     finance.Guard
		amount    money.Money
		setup     func(repo *memRepo)
		wantErr   error
		wantMonth bool
	}

	tests := []testCase{
		{
			name:      "AdminOpenMonth",
			actor:     admin,
			period:    april,
			guard:     lockOnly,
			wantMonth: true,
		},
		{
			name:    "AdminClosedWindowCreatesNothing",
			actor:   admin,
			period:  january,
			guard:   lockOnly,
			wantErr: access.ErrEditWindowClosed,
		},
		{
			name:   "AdminExplicitlyLocked",
			actor:  admin,
			period: april,
			guard:  lockOnly,
			setup: func(repo *memRepo) {
				repo.insertMonth(clientID, april, true)
			},
			wantErr:   access.ErrEditWindowClosed,
			wantMonth: true,
		},
		{
			name:   "SuperAdminLocked",
			actor:  super,
			period: april,
			guard:  lockOnly,
			setup: func(repo *memRepo) {
				repo.insertMonth(clientID, april, true)
			},
			wantMonth: true,
		},
		{
			name:      "SuperAdminClosedWindow",
			actor:     super,
			period:    january,
			guard:     lockOnly,
			wantMonth: true,
		},
		{
			name:   "ExpiredAgreementCreatesNothing",
			actor:  admin,
			period: april,
			guard: guardFunc(func(context.Context, auth.Actor, uuid.UUID, bool) error {
				return access.ErrServiceAgreementExpired
			}),
			wantErr: access.ErrServiceAgreementExpired,
		},
		{
			name:    "OversizedAmountCreatesNothing",
			actor:   super,
			period:  april,
			guard:   lockOnly,
			amount:  money.FromDecimal(decimal.New(1, 11)),
			wantErr: money.ErrInvalidAmount,
		},
		{
			name:   "FailedWriteRemovesNewMonth",
			actor:  admin,
			period: april,
			guard:  lockOnly,
			setup: func(repo *memRepo) {
				repo.writeErr = dbDown
			},
			wantErr: dbDown,
		},
		{
			name:   "FailedWriteKeepsExistingMonth",
			actor:  admin,
			period: april,
			guard:  lockOnly,
			setup: func(repo *memRepo) {
				repo.insertMonth(clientID, april, false)
				repo.writeErr = dbDown
			},
			wantErr:   dbDown,
			wantMonth: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := newMemRepo()

			amount := tt.amount
			if amount.IsZero() {
				amount = money.MustParse("500.00")
			}

			if tt.setup != nil {
				tt.setup(repo)
			}

			svc := newService(repo, tt.guard, quietTrail(ctrl))
			hs, err := svc.SetHousingSupport(context.Background(), tt.actor, clientID, tt.period,
				finance.HousingSupportParams{Amount: amount})

			if tt.wantMonth {
				assert.Equal(t, 1, repo.monthCount())
			} else {
				assert.Equal(t, 0, repo.monthCount())
			}

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, hs)
				assert.Empty(t, repo.hs)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "500.00", hs.Amount.Plain())
			assert.Equal(t, tt.actor.UserID, hs.CreatedBy)
			assert.Len(t, repo.hs, 1)
		})
	}
}

func TestService_SetHousingSupport_Trail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clientID := uuid.New()
	repo := newMemRepo()
	store := audit.NewMockStore(ctrl)

	gomock.InOrder(
		store.EXPECT().AppendHistory(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entries []audit.HistoryEntry) error {
				require.Len(t, entries, 1)
				assert.Equal(t, "housing_support:2025-04", entries[0].Field)
				assert.Equal(t, "", entries[0].OldValue)
				assert.Equal(t, "500.00", entries[0].NewValue)

				return nil
			}),
		store.EXPECT().AppendAudit(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *audit.Entry) error {
				assert.Equal(t, audit.ActionCreate, e.Action)
				assert.Nil(t, e.OldData)
				assert.NotNil(t, e.NewData)

				return nil
			}),
		store.EXPECT().AppendHistory(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entries []audit.HistoryEntry) error {
				require.Len(t, entries, 1)
				assert.Equal(t, "500.00", entries[0].OldValue)
				assert.Equal(t, "550.00", entries[0].NewValue)

				return nil
			}),
		store.EXPECT().AppendAudit(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *audit.Entry) error {
				assert.Equal(t, audit.ActionUpdate, e.Action)
				assert.NotNil(t, e.OldData)

				return nil
			}),
	)

	svc := newService(repo, lockOnly, audit.NewRecorder(store, nil))

	first, err := svc.SetHousingSupport(context.Background(), admin, clientID, april,
		finance.HousingSupportParams{Amount: money.MustParse("500.00")})
	require.NoError(t, err)

	second, err := svc.SetHousingSupport(context.Background(), admin, clientID, april,
		finance.HousingSupportParams{Amount: money.MustParse("550.00")})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, repo.hs, 1)
}

func TestService_TrailFailureDoesNotFailMutation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := audit.NewMockStore(ctrl)
	store.EXPECT().AppendHistory(gomock.Any(), gomock.Any()).Return(errors.New("history table gone")).AnyTimes()
	store.EXPECT().AppendAudit(gomock.Any(), gomock.Any()).Return(errors.New("audit table gone")).AnyTimes()

	notifier := finance.NewMockNotifier(ctrl)
	notifier.EXPECT().MonthChanged(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	repo := newMemRepo()
	svc := newService(repo, lockOnly, audit.NewRecorder(store, nil)).WithNotifier(notifier)

	rp, err := svc.SetRentPayment(context.Background(), admin, uuid.New(), april, finance.RentParams{
		ExpectedAmount: money.MustParse("475.00"),
		PaidAmount:     money.MustParse("450.00"),
		Confirmed:      true,
	})
	require.NoError(t, err)
	assert.Equal(t, "450.00", rp.PaidAmount.Plain())
	assert.Len(t, repo.rent, 1)
}

func TestService_NotifiesMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clientID := uuid.New()
	repo := newMemRepo()

	notifier := finance.NewMockNotifier(ctrl)
	notifier.EXPECT().MonthChanged(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m *finance.ClientMonth) error {
			assert.Equal(t, clientID, m.ClientID)
			assert.Equal(t, april, m.Period)

			return nil
		})

	svc := newService(repo, lockOnly, quietTrail(ctrl)).WithNotifier(notifier)

	_, err := svc.AddExpense(context.Background(), admin, clientID, april, finance.ExpenseParams{
		Amount: money.MustParse("30.00"),
		Notes:  " bus pass ",
	})
	require.NoError(t, err)

	for _, e := range repo.expenses {
		assert.Equal(t, "bus pass", e.Notes)
	}
}

func TestService_RowMutationsGateOnMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	clientID := uuid.New()
	repo := newMemRepo()
	svc := newService(repo, lockOnly, quietTrail(ctrl))
	ctx := context.Background()

	l, err := svc.AddLthPayment(ctx, admin, clientID, april, finance.LthParams{Amount: money.MustParse("20.00")})
	require.NoError(t, err)

	e, err := svc.AddExpense(ctx, admin, clientID, april, finance.ExpenseParams{Amount: money.MustParse("30.00")})
	require.NoError(t, err)

	updated, err := svc.UpdateLthPayment(ctx, admin, l.ID, finance.LthParams{Amount: money.MustParse("25.00")})
	require.NoError(t, err)
	assert.Equal(t, "25.00", updated.Amount.Plain())

	_, err = svc.LockMonth(ctx, admin, clientID, april)
	require.NoError(t, err)

	_, err = svc.UpdateLthPayment(ctx, admin, l.ID, finance.LthParams{Amount: money.MustParse("1.00")})
	assert.ErrorIs(t, err, access.ErrEditWindowClosed)

	err = svc.DeleteExpense(ctx, admin, e.ID)
	assert.ErrorIs(t, err, access.ErrEditWindowClosed)

	_, err = svc.AttachExpenseDocument(ctx, admin, e.ID, finance.ExpenseDocumentParams{FileName: "receipt.pdf"})
	assert.ErrorIs(t, err, access.ErrEditWindowClosed)

	stored, err := repo.GetLthPayment(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, "25.00", stored.Amount.Plain())
	assert.Len(t, repo.expenses, 1)

	require.NoError(t, svc.DeleteExpense(ctx, super, e.ID))
	require.NoError(t, svc.DeleteLthPayment(ctx, super, l.ID))
	assert.Empty(t, repo.expenses)
	assert.Empty(t, repo.lth)

	err = svc.DeleteLthPayment(ctx, super, l.ID)
	assert.ErrorIs(t, err, finance.ErrNotFound)
}

func TestService_RejectsUnstorableAmounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	clientID := uuid.New()
	repo := newMemRepo()
	svc := newService(repo, lockOnly, quietTrail(ctrl))
	ctx := context.Background()
	huge := money.FromDecimal(decimal.New(1, 10))

	_, err := svc.SetRentPayment(ctx, admin, clientID, april, finance.RentParams{ExpectedAmount: money.MustParse("800.00"), PaidAmount: huge})
	assert.ErrorIs(t, err, money.ErrInvalidAmount)

	_, err = svc.AddLthPayment(ctx, admin, clientID, april, finance.LthParams{Amount: huge.Neg()})
	assert.ErrorIs(t, err, money.ErrInvalidAmount)

	_, err = svc.AddExpense(ctx, admin, clientID, april, finance.ExpenseParams{Amount: huge})
	assert.ErrorIs(t, err, money.ErrInvalidAmount)
	assert.Equal(t, 0, repo.monthCount())

	l, err := svc.AddLthPayment(ctx, admin, clientID, april, finance.LthParams{Amount: money.MustParse("20.00")})
	require.NoError(t, err)

	e, err := svc.AddExpense(ctx, admin, clientID, april, finance.ExpenseParams{Amount: money.MustParse("30.00")})
	require.NoError(t, err)

	_, err = svc.UpdateLthPayment(ctx, admin, l.ID, finance.LthParams{Amount: huge})
	assert.ErrorIs(t, err, money.ErrInvalidAmount)

	_, err = svc.UpdateExpense(ctx, admin, e.ID, finance.ExpenseParams{Amount: huge})
	assert.ErrorIs(t, err, money.ErrInvalidAmount)

	stored, err := repo.GetLthPayment(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, "20.00", stored.Amount.Plain())
}

func TestService_FailedFirstWriteRemovesNewMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	clientID := uuid.New()
	repo := newMemRepo()
	repo.writeErr = errors.New("db down")
	svc := newService(repo, lockOnly, quietTrail(ctrl))
	ctx := context.Background()

	_, err := svc.SetRentPayment(ctx, admin, clientID, april, finance.RentParams{ExpectedAmount: money.MustParse("800.00")})
	require.Error(t, err)

	_, err = svc.AddLthPayment(ctx, admin, clientID, april, finance.LthParams{Amount: money.MustParse("20.00")})
	require.Error(t, err)

	_, err = svc.AddExpense(ctx, admin, clientID, april, finance.ExpenseParams{Amount: money.MustParse("30.00")})
	require.Error(t, err)

	assert.Equal(t, 0, repo.monthCount())
}

func TestService_AttachExpenseDocument_RequiresFileName(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := newMemRepo()
	svc := newService(repo, lockOnly, quietTrail(ctrl))
	ctx := context.Background()

	e, err := svc.AddExpense(ctx, admin, uuid.New(), april, finance.ExpenseParams{Amount: money.MustParse("30.00")})
	require.NoError(t, err)

	_, err = svc.AttachExpenseDocument(ctx, admin, e.ID, finance.ExpenseDocumentParams{FileName: "  "})
	assert.ErrorIs(t, err, finance.ErrInvalidDocument)

	doc, err := svc.AttachExpenseDocument(ctx, admin, e.ID, finance.ExpenseDocumentParams{FileName: " receipt.pdf "})
	require.NoError(t, err)
	assert.Equal(t, "receipt.pdf", doc.FileName)
}

func TestService_LockMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	clientID := uuid.New()
	repo := newMemRepo()
	svc := newService(repo, lockOnly, quietTrail(ctrl))
	ctx := context.Background()

	_, err := svc.LockMonth(ctx, admin, clientID, april)
	assert.ErrorIs(t, err, finance.ErrNotFound)
	assert.Equal(t, 0, repo.monthCount())

	repo.insertMonth(clientID, april, false)

	first, err := svc.LockMonth(ctx, admin, clientID, april)
	require.NoError(t, err)
	assert.True(t, first.Locked)

	second, err := svc.LockMonth(ctx, admin, clientID, april)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.True(t, second.Locked)
}

// Clients A and B are open for 2025-04; C's month is locked.
func TestService_BulkSetHousingSupport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, b, c := uuid.New(), uuid.New(), uuid.New()

	repo := newMemRepo()
	locked := repo.insertMonth(c, april, true)

	clients := access.NewMockClients(ctrl)
	clients.EXPECT().LatestServiceAgreement(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)

	gate := access.NewGate(clients).WithClock(func() time.Time { return now })
	svc := newService(repo, gate, quietTrail(ctrl))

	result, err := svc.BulkSetHousingSupport(context.Background(), admin, april, money.MustParse("200.00"), nil,
		[]uuid.UUID{a, b, c})
	require.NoError(t, err)

	assert.Equal(t, 2, result.UpdatedCount)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, c, result.Failed[0].ClientID)
	assert.ErrorIs(t, result.Failed[0].Err, access.ErrEditWindowClosed)

	_, err = repo.GetHousingSupport(context.Background(), locked.ID)
	assert.ErrorIs(t, err, finance.ErrNotFound)

	for _, id := range []uuid.UUID{a, b} {
		totals, err := svc.AggregateRange(context.Background(), id, &april.Year, &april.Month)
		require.NoError(t, err)
		assert.Equal(t, "200.00", totals.HousingSupport.Plain())
	}
}

func TestService_BulkSetHousingSupport_RepeatedClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	a, b := uuid.New(), uuid.New()
	repo := newMemRepo()
	svc := newService(repo, lockOnly, quietTrail(ctrl))

	result, err := svc.BulkSetHousingSupport(context.Background(), admin, april, money.MustParse("200.00"), nil,
		[]uuid.UUID{a, b, a, a})
	require.NoError(t, err)

	assert.Equal(t, 2, result.UpdatedCount)
	assert.Empty(t, result.Failed)
	assert.Equal(t, 2, repo.monthCount())
}

func TestService_BulkApply_InvalidPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := newService(newMemRepo(), lockOnly, quietTrail(ctrl))

	result, err := svc.BulkApply(context.Background(), admin, period.Period{Year: 2025}, []finance.BulkItem{{ClientID: uuid.New()}})
	assert.ErrorIs(t, err, period.ErrInvalidPeriod)
	assert.Zero(t, result.UpdatedCount)
}

func TestService_Reads(t *testing.T) {
	ctrl := gomock.NewController(t)
	clientID := uuid.New()
	repo := newMemRepo()
	svc := newService(repo, lockOnly, quietTrail(ctrl))
	ctx := context.Background()

	_, err := svc.SetHousingSupport(ctx, super, clientID, january, finance.HousingSupportParams{Amount: money.MustParse("500.00")})
	require.NoError(t, err)

	_, err = svc.SetHousingSupport(ctx, admin, clientID, april, finance.HousingSupportParams{Amount: money.MustParse("400.00")})
	require.NoError(t, err)

	_, err = svc.AddExpense(ctx, admin, clientID, april, finance.ExpenseParams{Amount: money.MustParse("30.00")})
	require.NoError(t, err)

	t.Run("Month", func(t *testing.T) {
		rec, err := svc.Month(ctx, clientID, april)
		require.NoError(t, err)
		assert.False(t, rec.Month.Locked)
		assert.Equal(t, "30.00", rec.Totals().TotalExpenses.Plain())

		_, err = svc.Month(ctx, clientID, period.Period{Year: 2025, Month: 2})
		assert.ErrorIs(t, err, finance.ErrNotFound)
	})

	t.Run("AggregateMonth", func(t *testing.T) {
		rec, err := svc.Month(ctx, clientID, april)
		require.NoError(t, err)

		m, totals, err := svc.AggregateMonth(ctx, rec.Month.ID)
		require.NoError(t, err)
		assert.Equal(t, clientID, m.ClientID)
		assert.Equal(t, "400.00", totals.HousingSupport.Plain())

		_, _, err = svc.AggregateMonth(ctx, uuid.New())
		assert.ErrorIs(t, err, finance.ErrNotFound)
	})

	t.Run("AggregateRange", func(t *testing.T) {
		year := 2025

		totals, err := svc.AggregateRange(ctx, clientID, &year, nil)
		require.NoError(t, err)
		assert.Equal(t, "900.00", totals.HousingSupport.Plain())
		assert.Equal(t, "30.00", totals.TotalExpenses.Plain())

		other := 2024
		totals, err = svc.AggregateRange(ctx, clientID, &other, nil)
		require.NoError(t, err)
		assert.True(t, totals.HousingSupport.IsZero())
	})

	t.Run("RecordsReflectWindow", func(t *testing.T) {
		records, err := svc.Records(ctx, finance.RecordFilter{ClientID: &clientID})
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.True(t, records[0].Month.Locked)
		assert.False(t, records[1].Month.Locked)
	})
}
