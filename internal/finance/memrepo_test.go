package finance_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/loqeyusa/housingsupport/internal/finance"
	"github.com/loqeyusa/housingsupport/internal/period"
)

type monthKey struct {
	clientID uuid.UUID
	period   period.Period
}

// memRepo is an in-memory Repository that enforces the one-month-per-key
// constraint the way the database does.
type memRepo struct {
	mu sync.Mutex

	months   map[monthKey]*finance.ClientMonth
	hs       map[uuid.UUID]*finance.HousingSupport
	rent     map[uuid.UUID]*finance.RentPayment
	lth      map[uuid.UUID]*finance.LthPayment
	expenses map[uuid.UUID]*finance.Expense
	docs     map[uuid.UUID][]*finance.ExpenseDocument

	creates int
	// writeErr, when set, fails every row write.
	writeErr error
	// beforeCreate runs inside CreateMonth before the key is checked.
	beforeCreate func(m *finance.ClientMonth)
}

func newMemRepo() *memRepo {
	return &memRepo{
		months:   make(map[monthKey]*finance.ClientMonth),
		hs:       make(map[uuid.UUID]*finance.HousingSupport),
		rent:     make(map[uuid.UUID]*finance.RentPayment),
		lth:      make(map[uuid.UUID]*finance.LthPayment),
		expenses: make(map[uuid.UUID]*finance.Expense),
		docs:     make(map[uuid.UUID][]*finance.ExpenseDocument),
	}
}

// insertMonth stores a month directly, bypassing CreateMonth.
func (r *memRepo) insertMonth(clientID uuid.UUID, p period.Period, locked bool) *finance.ClientMonth {
	r.mu.Lock()
	defer r.mu.Unlock()

	m := &finance.ClientMonth{ID: uuid.New(), ClientID: clientID, Period: p, Locked: locked, CreatedAt: time.Now()}
	r.months[monthKey{clientID, p}] = m

	return m
}

func (r *memRepo) monthCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.months)
}

func (r *memRepo) GetMonth(_ context.Context, clientID uuid.UUID, p period.Period) (*finance.ClientMonth, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.months[monthKey{clientID, p}]
	if !ok {
		return nil, finance.ErrNotFound
	}

	cp := *m

	return &cp, nil
}

func (r *memRepo) GetMonthByID(_ context.Context, id uuid.UUID) (*finance.ClientMonth, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range r.months {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}

	return nil, finance.ErrNotFound
}

func (r *memRepo) CreateMonth(_ context.Context, m *finance.ClientMonth) error {
	if r.beforeCreate != nil {
		r.beforeCreate(m)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.creates++

	key := monthKey{m.ClientID, m.Period}
	if _, ok := r.months[key]; ok {
		return finance.ErrConstraintViolation
	}

	m.ID = uuid.New()
	m.CreatedAt = time.Now()
	cp := *m
	r.months[key] = &cp

	return nil
}

func (r *memRepo) SetMonthLocked(_ context.Context, id uuid.UUID, locked bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range r.months {
		if m.ID == id {
			m.Locked = locked
			return nil
		}
	}

	return finance.ErrNotFound
}

func (r *memRepo) DeleteEmptyMonth(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.hs[id]; ok {
		return nil
	}

	if _, ok := r.rent[id]; ok {
		return nil
	}

	for _, l := range r.lth {
		if l.ClientMonthID == id {
			return nil
		}
	}

	for _, e := range r.expenses {
		if e.ClientMonthID == id {
			return nil
		}
	}

	for key, m := range r.months {
		if m.ID == id {
			delete(r.months, key)
		}
	}

	return nil
}

func (r *memRepo) GetHousingSupport(_ context.Context, clientMonthID uuid.UUID) (*finance.HousingSupport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	hs, ok := r.hs[clientMonthID]
	if !ok {
		return nil, finance.ErrNotFound
	}

	cp := *hs

	return &cp, nil
}

func (r *memRepo) UpsertHousingSupport(_ context.Context, hs *finance.HousingSupport) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.writeErr != nil {
		return r.writeErr
	}

	if old, ok := r.hs[hs.ClientMonthID]; ok {
		hs.ID = old.ID
	} else {
		hs.ID = uuid.New()
	}

	cp := *hs
	r.hs[hs.ClientMonthID] = &cp

	return nil
}

func (r *memRepo) GetRentPayment(_ context.Context, clientMonthID uuid.UUID) (*finance.RentPayment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rp, ok := r.rent[clientMonthID]
	if !ok {
		return nil, finance.ErrNotFound
	}

	cp := *rp

	return &cp, nil
}

func (r *memRepo) UpsertRentPayment(_ context.Context, rp *finance.RentPayment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.writeErr != nil {
		return r.writeErr
	}

	if old, ok := r.rent[rp.ClientMonthID]; ok {
		rp.ID = old.ID
	} else {
		rp.ID = uuid.New()
	}

	cp := *rp
	r.rent[rp.ClientMonthID] = &cp

	return nil
}

func (r *memRepo) CreateLthPayment(_ context.Context, l *finance.LthPayment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.writeErr != nil {
		return r.writeErr
	}

	l.ID = uuid.New()
	l.CreatedAt = time.Now()
	cp := *l
	r.lth[l.ID] = &cp

	return nil
}

func (r *memRepo) GetLthPayment(_ context.Context, id uuid.UUID) (*finance.LthPayment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.lth[id]
	if !ok {
		return nil, finance.ErrNotFound
	}

	cp := *l

	return &cp, nil
}

func (r *memRepo) UpdateLthPayment(_ context.Context, l *finance.LthPayment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.lth[l.ID]; !ok {
		return finance.ErrNotFound
	}

	cp := *l
	r.lth[l.ID] = &cp

	return nil
}

func (r *memRepo) DeleteLthPayment(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.lth[id]; !ok {
		return finance.ErrNotFound
	}

	delete(r.lth, id)

	return nil
}

func (r *memRepo) CreateExpense(_ context.Context, e *finance.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.writeErr != nil {
		return r.writeErr
	}

	e.ID = uuid.New()
	e.CreatedAt = time.Now()
	cp := *e
	r.expenses[e.ID] = &cp

	return nil
}

func (r *memRepo) GetExpense(_ context.Context, id uuid.UUID) (*finance.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.expenses[id]
	if !ok {
		return nil, finance.ErrNotFound
	}

	cp := *e

	return &cp, nil
}

func (r *memRepo) UpdateExpense(_ context.Context, e *finance.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.expenses[e.ID]; !ok {
		return finance.ErrNotFound
	}

	cp := *e
	r.expenses[e.ID] = &cp

	return nil
}

func (r *memRepo) DeleteExpense(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.expenses[id]; !ok {
		return finance.ErrNotFound
	}

	delete(r.expenses, id)

	return nil
}

func (r *memRepo) CreateExpenseDocument(_ context.Context, d *finance.ExpenseDocument) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	d.ID = uuid.New()
	r.docs[d.ExpenseID] = append(r.docs[d.ExpenseID], d)

	return nil
}

func (r *memRepo) ListExpenseDocuments(_ context.Context, expenseID uuid.UUID) ([]*finance.ExpenseDocument, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.docs[expenseID], nil
}

// ListMonthRecords ignores the county and service type filters; the fake
// holds no clients.
func (r *memRepo) ListMonthRecords(_ context.Context, filter finance.RecordFilter) ([]*finance.MonthRecords, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var records []*finance.MonthRecords

	for _, m := range r.months {
		if filter.ClientMonthID != nil && m.ID != *filter.ClientMonthID {
			continue
		}

		if filter.ClientID != nil && m.ClientID != *filter.ClientID {
			continue
		}

		if filter.Year != nil && m.Period.Year != *filter.Year {
			continue
		}

		if filter.Month != nil && m.Period.Month != *filter.Month {
			continue
		}

		rec := &finance.MonthRecords{Month: *m, HousingSupport: r.hs[m.ID], Rent: r.rent[m.ID]}

		for _, l := range r.lth {
			if l.ClientMonthID == m.ID {
				rec.Lth = append(rec.Lth, l)
			}
		}

		for _, e := range r.expenses {
			if e.ClientMonthID == m.ID {
				rec.Expenses = append(rec.Expenses, e)
			}
		}

		records = append(records, rec)
	}

	sort.Slice(records, func(i, j int) bool {
		a, b := records[i].Month, records[j].Month
		if a.ClientID != b.ClientID {
			return a.ClientID.String() < b.ClientID.String()
		}

		return a.Period.Before(b.Period)
	})

	return records, nil
}
