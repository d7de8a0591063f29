package finance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/loqeyusa/housingsupport/internal/audit"
	"github.com/loqeyusa/housingsupport/internal/auth"
	"github.com/loqeyusa/housingsupport/internal/money"
	"github.com/loqeyusa/housingsupport/internal/period"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=finance
type Repository interface {
	GetMonth(ctx context.Context, clientID uuid.UUID, p period.Period) (*ClientMonth, error)
	GetMonthByID(ctx context.Context, id uuid.UUID) (*ClientMonth, error)
	CreateMonth(ctx context.Context, m *ClientMonth) error
	SetMonthLocked(ctx context.Context, id uuid.UUID, locked bool) error
	// DeleteEmptyMonth removes a month that has no rows hanging off it.
	// Deleting a month that has rows is a no-op.
	DeleteEmptyMonth(ctx context.Context, id uuid.UUID) error

	GetHousingSupport(ctx context.Context, clientMonthID uuid.UUID) (*HousingSupport, error)
	UpsertHousingSupport(ctx context.Context, hs *HousingSupport) error
	GetRentPayment(ctx context.Context, clientMonthID uuid.UUID) (*RentPayment, error)
	UpsertRentPayment(ctx context.Context, rp *RentPayment) error

	CreateLthPayment(ctx context.Context, l *LthPayment) error
	GetLthPayment(ctx context.Context, id uuid.UUID) (*LthPayment, error)
	UpdateLthPayment(ctx context.Context, l *LthPayment) error
	DeleteLthPayment(ctx context.Context, id uuid.UUID) error

	CreateExpense(ctx context.Context, e *Expense) error
	GetExpense(ctx context.Context, id uuid.UUID) (*Expense, error)
	UpdateExpense(ctx context.Context, e *Expense) error
	DeleteExpense(ctx context.Context, id uuid.UUID) error
	CreateExpenseDocument(ctx context.Context, d *ExpenseDocument) error
	ListExpenseDocuments(ctx context.Context, expenseID uuid.UUID) ([]*ExpenseDocument, error)

	ListMonthRecords(ctx context.Context, filter RecordFilter) ([]*MonthRecords, error)
}

// Guard decides whether actor may mutate clientID's records in a month with
// the given effective lock state.
type Guard interface {
	Check(ctx context.Context, actor auth.Actor, clientID uuid.UUID, locked bool) error
}

// Notifier is told about every month whose records changed.
type Notifier interface {
	MonthChanged(ctx context.Context, m *ClientMonth) error
}

type Service struct {
	repo     Repository
	guard    Guard
	trail    *audit.Recorder
	notifier Notifier
	window   period.Window
	now      func() time.Time
	log      *slog.Logger
}

func NewService(repo Repository, guard Guard, trail *audit.Recorder, window period.Window) *Service {
	return &Service{
		repo:   repo,
		guard:  guard,
		trail:  trail,
		window: window,
		now:    time.Now,
		log:    slog.Default(),
	}
}

func (s *Service) WithNotifier(n Notifier) *Service {
	s.notifier = n
	return s
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) WithLogger(log *slog.Logger) *Service {
	s.log = log
	return s
}

// Window returns the edit window the service locks months with.
func (s *Service) Window() period.Window {
	return s.window
}

// FindOrCreateMonth returns the ClientMonth for clientID and p, creating it
// unlocked when absent. A concurrent creator losing the race on the
// (client, year, month) constraint reads back the winner's row.
func (s *Service) FindOrCreateMonth(ctx context.Context, clientID uuid.UUID, p period.Period) (*ClientMonth, error) {
	m, _, err := s.findOrCreate(ctx, clientID, p)
	return m, err
}

// findOrCreate is FindOrCreateMonth that also reports whether this call
// inserted the month.
func (s *Service) findOrCreate(ctx context.Context, clientID uuid.UUID, p period.Period) (*ClientMonth, bool, error) {
	if err := p.Validate(); err != nil {
		return nil, false, err
	}

	m, err := s.repo.GetMonth(ctx, clientID, p)
	if err == nil {
		s.observeLock(ctx, m)
		return m, false, nil
	}

	if !errors.Is(err, ErrNotFound) {
		return nil, false, fmt.Errorf("getting client month: %w", err)
	}

	m = &ClientMonth{ClientID: clientID, Period: p}
	created := true

	err = s.repo.CreateMonth(ctx, m)
	if errors.Is(err, ErrConstraintViolation) {
		created = false

		m, err = s.repo.GetMonth(ctx, clientID, p)
		if err != nil {
			return nil, false, fmt.Errorf("re-reading client month: %w", err)
		}
	} else if err != nil {
		return nil, false, fmt.Errorf("creating client month: %w", err)
	}

	s.observeLock(ctx, m)

	return m, created, nil
}

// EffectiveLock reports whether m is locked, either explicitly or because its
// edit window has closed.
func (s *Service) EffectiveLock(m *ClientMonth) bool {
	return m.Locked || s.window.Closed(m.Period, s.now())
}

// observeLock flips m to locked when its edit window has closed and persists
// the flag. Persisting is best effort.
func (s *Service) observeLock(ctx context.Context, m *ClientMonth) {
	if m.Locked || !s.window.Closed(m.Period, s.now()) {
		return
	}

	m.Locked = true

	if err := s.repo.SetMonthLocked(ctx, m.ID, true); err != nil {
		s.log.ErrorContext(ctx, "failed to persist month lock", "client_month_id", m.ID, "error", err)
	}
}

// open gates actor on clientID's month p and returns the month, creating it
// only after the gate passes. created is true when this call inserted it.
func (s *Service) open(ctx context.Context, actor auth.Actor, clientID uuid.UUID, p period.Period) (m *ClientMonth, created bool, err error) {
	if err := p.Validate(); err != nil {
		return nil, false, err
	}

	existing, err := s.repo.GetMonth(ctx, clientID, p)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, false, fmt.Errorf("getting client month: %w", err)
	}

	locked := s.window.Closed(p, s.now())
	if existing != nil {
		locked = locked || existing.Locked
	}

	if err := s.guard.Check(ctx, actor, clientID, locked); err != nil {
		return nil, false, err
	}

	if existing != nil {
		s.observeLock(ctx, existing)
		return existing, false, nil
	}

	return s.findOrCreate(ctx, clientID, p)
}

// discard removes a month this request created when its first row could not
// be written. Removal is best effort and skips months that gained rows.
func (s *Service) discard(ctx context.Context, m *ClientMonth, created bool) {
	if !created {
		return
	}

	if err := s.repo.DeleteEmptyMonth(ctx, m.ID); err != nil {
		s.log.ErrorContext(ctx, "failed to remove empty client month", "client_month_id", m.ID, "error", err)
	}
}

// checkAmounts rejects amounts the store cannot hold.
func checkAmounts(amounts ...money.Money) error {
	for _, a := range amounts {
		if err := a.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// openByID gates actor on an existing month.
func (s *Service) openByID(ctx context.Context, actor auth.Actor, clientMonthID uuid.UUID) (*ClientMonth, error) {
	m, err := s.repo.GetMonthByID(ctx, clientMonthID)
	if err != nil {
		return nil, err
	}

	if err := s.guard.Check(ctx, actor, m.ClientID, s.EffectiveLock(m)); err != nil {
		return nil, err
	}

	s.observeLock(ctx, m)

	return m, nil
}

func (s *Service) notify(ctx context.Context, m *ClientMonth) {
	if s.notifier == nil {
		return
	}

	if err := s.notifier.MonthChanged(ctx, m); err != nil {
		s.log.ErrorContext(ctx, "failed to publish month change", "client_month_id", m.ID, "error", err)
	}
}

func historyField(name string, p period.Period) string {
	return name + ":" + p.String()
}

func plain(m *money.Money) string {
	if m == nil {
		return ""
	}

	return m.Plain()
}

type HousingSupportParams struct {
	Amount       money.Money
	ReceivedDate *time.Time
}

// SetHousingSupport records the month's housing support, replacing any
// earlier amount.
func (s *Service) SetHousingSupport(ctx context.Context, actor auth.Actor, clientID uuid.UUID, p period.Period, params HousingSupportParams) (*HousingSupport, error) {
	if err := checkAmounts(params.Amount); err != nil {
		return nil, err
	}

	m, created, err := s.open(ctx, actor, clientID, p)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.GetHousingSupport(ctx, m.ID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		s.discard(ctx, m, created)
		return nil, fmt.Errorf("getting housing support: %w", err)
	}

	hs := &HousingSupport{
		ClientMonthID: m.ID,
		Amount:        params.Amount,
		ReceivedDate:  params.ReceivedDate,
		CreatedBy:     actor.UserID,
	}
	if err := s.repo.UpsertHousingSupport(ctx, hs); err != nil {
		s.discard(ctx, m, created)
		return nil, err
	}

	action := audit.ActionCreate

	var old *money.Money

	if existing != nil {
		action = audit.ActionUpdate
		old = &existing.Amount
	}

	s.trail.Changes(ctx, actor, clientID, audit.Diff(nil, historyField("housing_support", p), plain(old), hs.Amount.Plain()))
	s.trail.Action(ctx, actor, action, audit.EntityHousingSupport, hs.ID, existing, hs)
	s.notify(ctx, m)

	return hs, nil
}

type RentParams struct {
	ExpectedAmount money.Money
	PaidAmount     money.Money
	PaidDate       *time.Time
	Confirmed      bool
}

// SetRentPayment records the month's rent, replacing any earlier values.
func (s *Service) SetRentPayment(ctx context.Context, actor auth.Actor, clientID uuid.UUID, p period.Period, params RentParams) (*RentPayment, error) {
	if err := checkAmounts(params.ExpectedAmount, params.PaidAmount); err != nil {
		return nil, err
	}

	m, created, err := s.open(ctx, actor, clientID, p)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.GetRentPayment(ctx, m.ID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		s.discard(ctx, m, created)
		return nil, fmt.Errorf("getting rent payment: %w", err)
	}

	rp := &RentPayment{
		ClientMonthID:  m.ID,
		ExpectedAmount: params.ExpectedAmount,
		PaidAmount:     params.PaidAmount,
		PaidDate:       params.PaidDate,
		Confirmed:      params.Confirmed,
		CreatedBy:      actor.UserID,
	}
	if err := s.repo.UpsertRentPayment(ctx, rp); err != nil {
		s.discard(ctx, m, created)
		return nil, err
	}

	action := audit.ActionCreate

	var oldExpected, oldPaid *money.Money

	if existing != nil {
		action = audit.ActionUpdate
		oldExpected, oldPaid = &existing.ExpectedAmount, &existing.PaidAmount
	}

	var changes []audit.Change
	changes = audit.Diff(changes, historyField("rent_expected", p), plain(oldExpected), rp.ExpectedAmount.Plain())
	changes = audit.Diff(changes, historyField("rent_paid", p), plain(oldPaid), rp.PaidAmount.Plain())

	s.trail.Changes(ctx, actor, clientID, changes)
	s.trail.Action(ctx, actor, action, audit.EntityRentPayment, rp.ID, existing, rp)
	s.notify(ctx, m)

	return rp, nil
}

type LthParams struct {
	Amount       money.Money
	ReceivedDate *time.Time
}

func (s *Service) AddLthPayment(ctx context.Context, actor auth.Actor, clientID uuid.UUID, p period.Period, params LthParams) (*LthPayment, error) {
	if err := checkAmounts(params.Amount); err != nil {
		return nil, err
	}

	m, created, err := s.open(ctx, actor, clientID, p)
	if err != nil {
		return nil, err
	}

	l := &LthPayment{
		ClientMonthID: m.ID,
		Amount:        params.Amount,
		ReceivedDate:  params.ReceivedDate,
		CreatedBy:     actor.UserID,
	}
	if err := s.repo.CreateLthPayment(ctx, l); err != nil {
		s.discard(ctx, m, created)
		return nil, err
	}

	s.trail.Changes(ctx, actor, clientID, audit.Diff(nil, historyField("lth_payment", p), "", l.Amount.Plain()))
	s.trail.Action(ctx, actor, audit.ActionCreate, audit.EntityLthPayment, l.ID, nil, l)
	s.notify(ctx, m)

	return l, nil
}

func (s *Service) UpdateLthPayment(ctx context.Context, actor auth.Actor, id uuid.UUID, params LthParams) (*LthPayment, error) {
	if err := checkAmounts(params.Amount); err != nil {
		return nil, err
	}

	l, err := s.repo.GetLthPayment(ctx, id)
	if err != nil {
		return nil, err
	}

	m, err := s.openByID(ctx, actor, l.ClientMonthID)
	if err != nil {
		return nil, err
	}

	before := *l
	l.Amount = params.Amount
	l.ReceivedDate = params.ReceivedDate

	if err := s.repo.UpdateLthPayment(ctx, l); err != nil {
		return nil, err
	}

	s.trail.Changes(ctx, actor, m.ClientID, audit.Diff(nil, historyField("lth_payment", m.Period), before.Amount.Plain(), l.Amount.Plain()))
	s.trail.Action(ctx, actor, audit.ActionUpdate, audit.EntityLthPayment, l.ID, &before, l)
	s.notify(ctx, m)

	return l, nil
}

func (s *Service) DeleteLthPayment(ctx context.Context, actor auth.Actor, id uuid.UUID) error {
	l, err := s.repo.GetLthPayment(ctx, id)
	if err != nil {
		return err
	}

	m, err := s.openByID(ctx, actor, l.ClientMonthID)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteLthPayment(ctx, id); err != nil {
		return err
	}

	s.trail.Changes(ctx, actor, m.ClientID, audit.Diff(nil, historyField("lth_payment", m.Period), l.Amount.Plain(), ""))
	s.trail.Action(ctx, actor, audit.ActionDelete, audit.EntityLthPayment, l.ID, l, nil)
	s.notify(ctx, m)

	return nil
}

type ExpenseParams struct {
	CategoryID *uuid.UUID
	Amount     money.Money
	Date       *time.Time
	Notes      string
}

func (s *Service) AddExpense(ctx context.Context, actor auth.Actor, clientID uuid.UUID, p period.Period, params ExpenseParams) (*Expense, error) {
	if err := checkAmounts(params.Amount); err != nil {
		return nil, err
	}

	m, created, err := s.open(ctx, actor, clientID, p)
	if err != nil {
		return nil, err
	}

	e := &Expense{
		ClientMonthID: m.ID,
		CategoryID:    params.CategoryID,
		Amount:        params.Amount,
		Date:          params.Date,
		Notes:         strings.TrimSpace(params.Notes),
		CreatedBy:     actor.UserID,
	}
	if err := s.repo.CreateExpense(ctx, e); err != nil {
		s.discard(ctx, m, created)
		return nil, err
	}

	s.trail.Changes(ctx, actor, clientID, audit.Diff(nil, historyField("expense", p), "", e.Amount.Plain()))
	s.trail.Action(ctx, actor, audit.ActionCreate, audit.EntityExpense, e.ID, nil, e)
	s.notify(ctx, m)

	return e, nil
}

func (s *Service) UpdateExpense(ctx context.Context, actor auth.Actor, id uuid.UUID, params ExpenseParams) (*Expense, error) {
	if err := checkAmounts(params.Amount); err != nil {
		return nil, err
	}

	e, err := s.repo.GetExpense(ctx, id)
	if err != nil {
		return nil, err
	}

	m, err := s.openByID(ctx, actor, e.ClientMonthID)
	if err != nil {
		return nil, err
	}

	before := *e
	e.CategoryID = params.CategoryID
	e.Amount = params.Amount
	e.Date = params.Date
	e.Notes = strings.TrimSpace(params.Notes)

	if err := s.repo.UpdateExpense(ctx, e); err != nil {
		return nil, err
	}

	s.trail.Changes(ctx, actor, m.ClientID, audit.Diff(nil, historyField("expense", m.Period), before.Amount.Plain(), e.Amount.Plain()))
	s.trail.Action(ctx, actor, audit.ActionUpdate, audit.EntityExpense, e.ID, &before, e)
	s.notify(ctx, m)

	return e, nil
}

func (s *Service) DeleteExpense(ctx context.Context, actor auth.Actor, id uuid.UUID) error {
	e, err := s.repo.GetExpense(ctx, id)
	if err != nil {
		return err
	}

	m, err := s.openByID(ctx, actor, e.ClientMonthID)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteExpense(ctx, id); err != nil {
		return err
	}

	s.trail.Changes(ctx, actor, m.ClientID, audit.Diff(nil, historyField("expense", m.Period), e.Amount.Plain(), ""))
	s.trail.Action(ctx, actor, audit.ActionDelete, audit.EntityExpense, e.ID, e, nil)
	s.notify(ctx, m)

	return nil
}

type ExpenseDocumentParams struct {
	FileName   string
	StorageKey string
}

// AttachExpenseDocument adds proof-of-expense metadata. It is gated like a
// change to the expense itself.
func (s *Service) AttachExpenseDocument(ctx context.Context, actor auth.Actor, expenseID uuid.UUID, params ExpenseDocumentParams) (*ExpenseDocument, error) {
	if strings.TrimSpace(params.FileName) == "" {
		return nil, fmt.Errorf("%w: file name is required", ErrInvalidDocument)
	}

	e, err := s.repo.GetExpense(ctx, expenseID)
	if err != nil {
		return nil, err
	}

	if _, err := s.openByID(ctx, actor, e.ClientMonthID); err != nil {
		return nil, err
	}

	d := &ExpenseDocument{
		ExpenseID:  e.ID,
		FileName:   strings.TrimSpace(params.FileName),
		StorageKey: params.StorageKey,
		UploadedBy: actor.UserID,
	}
	if err := s.repo.CreateExpenseDocument(ctx, d); err != nil {
		return nil, err
	}

	s.trail.Action(ctx, actor, audit.ActionCreate, audit.EntityExpenseDoc, d.ID, nil, d)

	return d, nil
}

func (s *Service) ListExpenseDocuments(ctx context.Context, expenseID uuid.UUID) ([]*ExpenseDocument, error) {
	return s.repo.ListExpenseDocuments(ctx, expenseID)
}

// LockMonth locks an existing month. Locking an already locked month is a
// no-op.
func (s *Service) LockMonth(ctx context.Context, actor auth.Actor, clientID uuid.UUID, p period.Period) (*ClientMonth, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	m, err := s.repo.GetMonth(ctx, clientID, p)
	if err != nil {
		return nil, err
	}

	if m.Locked {
		return m, nil
	}

	if err := s.repo.SetMonthLocked(ctx, m.ID, true); err != nil {
		return nil, err
	}

	before := *m
	m.Locked = true

	s.trail.Action(ctx, actor, audit.ActionUpdate, audit.EntityClientMonth, m.ID, &before, m)

	return m, nil
}

// Month returns one client's records for p with the lock state brought up to
// date.
func (s *Service) Month(ctx context.Context, clientID uuid.UUID, p period.Period) (*MonthRecords, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	records, err := s.repo.ListMonthRecords(ctx, RecordFilter{ClientID: &clientID, Year: &p.Year, Month: &p.Month})
	if err != nil {
		return nil, fmt.Errorf("listing month records: %w", err)
	}

	if len(records) == 0 {
		return nil, ErrNotFound
	}

	s.observeLock(ctx, &records[0].Month)

	return records[0], nil
}

// Records lists month records matching filter. Lock flags reflect the edit
// window but are not persisted.
func (s *Service) Records(ctx context.Context, filter RecordFilter) ([]*MonthRecords, error) {
	records, err := s.repo.ListMonthRecords(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing month records: %w", err)
	}

	for _, r := range records {
		r.Month.Locked = s.EffectiveLock(&r.Month)
	}

	return records, nil
}

// AggregateMonth sums the rows of one ClientMonth.
func (s *Service) AggregateMonth(ctx context.Context, clientMonthID uuid.UUID) (*ClientMonth, Totals, error) {
	records, err := s.repo.ListMonthRecords(ctx, RecordFilter{ClientMonthID: &clientMonthID})
	if err != nil {
		return nil, Totals{}, fmt.Errorf("listing month records: %w", err)
	}

	if len(records) == 0 {
		return nil, Totals{}, ErrNotFound
	}

	return &records[0].Month, records[0].Totals(), nil
}

// AggregateRange sums every month of clientID matching the optional year
// and month.
func (s *Service) AggregateRange(ctx context.Context, clientID uuid.UUID, year, month *int) (Totals, error) {
	records, err := s.repo.ListMonthRecords(ctx, RecordFilter{ClientID: &clientID, Year: year, Month: month})
	if err != nil {
		return Totals{}, fmt.Errorf("listing month records: %w", err)
	}

	return Aggregate(records), nil
}
