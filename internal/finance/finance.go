// Package finance owns the per-client monthly records and their totals.
package finance

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/loqeyusa/housingsupport/internal/money"
	"github.com/loqeyusa/housingsupport/internal/period"
)

var (
	ErrNotFound = errors.New("record not found")
	// ErrConstraintViolation is returned by stores when a write hits a
	// uniqueness constraint, such as a second ClientMonth for the same key.
	ErrConstraintViolation = errors.New("constraint violation")
	ErrInvalidDocument     = errors.New("invalid expense document")
)

// ClientMonth is the container every financial row of one client and one
// period hangs off. There is at most one per (client, year, month).
type ClientMonth struct {
	ID        uuid.UUID
	ClientID  uuid.UUID
	Period    period.Period
	Locked    bool
	CreatedAt time.Time
}

type HousingSupport struct {
	ID            uuid.UUID
	ClientMonthID uuid.UUID
	Amount        money.Money
	ReceivedDate  *time.Time
	CreatedBy     uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

type RentPayment struct {
	ID             uuid.UUID
	ClientMonthID  uuid.UUID
	ExpectedAmount money.Money
	PaidAmount     money.Money
	PaidDate       *time.Time
	Confirmed      bool
	CreatedBy      uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

type LthPayment struct {
	ID            uuid.UUID
	ClientMonthID uuid.UUID
	Amount        money.Money
	ReceivedDate  *time.Time
	CreatedBy     uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

type Expense struct {
	ID            uuid.UUID
	ClientMonthID uuid.UUID
	CategoryID    *uuid.UUID
	Category      string // Loaded via JOIN
	Amount        money.Money
	Date          *time.Time
	Notes         string
	CreatedBy     uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

// ExpenseDocument is proof-of-expense metadata. It plays no part in totals.
type ExpenseDocument struct {
	ID         uuid.UUID
	ExpenseID  uuid.UUID
	FileName   string
	StorageKey string
	UploadedBy uuid.UUID
	CreatedAt  time.Time
}

// Totals is the normalized sum of one or more months. Missing rows count as
// zero.
type Totals struct {
	HousingSupport money.Money `json:"housingSupport"`
	RentPaid       money.Money `json:"rentPaid"`
	TotalExpenses  money.Money `json:"totalExpenses"`
	LthTotal       money.Money `json:"lthTotal"`
}

func (t Totals) Add(other Totals) Totals {
	return Totals{
		HousingSupport: t.HousingSupport.Add(other.HousingSupport),
		RentPaid:       t.RentPaid.Add(other.RentPaid),
		TotalExpenses:  t.TotalExpenses.Add(other.TotalExpenses),
		LthTotal:       t.LthTotal.Add(other.LthTotal),
	}
}

// HasData reports whether any of housing support, rent paid or expenses is
// nonzero.
func (t Totals) HasData() bool {
	return !t.HousingSupport.IsZero() || !t.RentPaid.IsZero() || !t.TotalExpenses.IsZero()
}

// MonthRecords is a ClientMonth with every row recorded against it.
type MonthRecords struct {
	Month          ClientMonth
	HousingSupport *HousingSupport
	Rent           *RentPayment
	Lth            []*LthPayment
	Expenses       []*Expense
}

// Totals sums the month's rows.
func (r *MonthRecords) Totals() Totals {
	var t Totals

	if r.HousingSupport != nil {
		t.HousingSupport = r.HousingSupport.Amount
	}

	if r.Rent != nil {
		t.RentPaid = r.Rent.PaidAmount
	}

	for _, e := range r.Expenses {
		t.TotalExpenses = t.TotalExpenses.Add(e.Amount)
	}

	for _, l := range r.Lth {
		t.LthTotal = t.LthTotal.Add(l.Amount)
	}

	return t
}

// Aggregate sums the totals of every month in records.
func Aggregate(records []*MonthRecords) Totals {
	var t Totals
	for _, r := range records {
		t = t.Add(r.Totals())
	}

	return t
}

// RecordFilter narrows ListMonthRecords. Nil fields do not filter.
type RecordFilter struct {
	ClientMonthID *uuid.UUID
	ClientID      *uuid.UUID
	Year          *int
	Month         *int
	CountyID      *uuid.UUID
	ServiceTypeID *uuid.UUID
}
