// Package report shapes finance records into dashboard, grid and report
// views. All amounts come from the finance aggregator and the poolfund rules.
package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/loqeyusa/housingsupport/internal/access"
	"github.com/loqeyusa/housingsupport/internal/auth"
	"github.com/loqeyusa/housingsupport/internal/client"
	"github.com/loqeyusa/housingsupport/internal/finance"
	"github.com/loqeyusa/housingsupport/internal/money"
	"github.com/loqeyusa/housingsupport/internal/period"
	"github.com/loqeyusa/housingsupport/internal/poolfund"
)

var ErrInvalidScope = errors.New("invalid report scope")

//go:generate mockgen -source=report.go -destination=sources_mock.go -package=report
type Clients interface {
	Get(ctx context.Context, id uuid.UUID) (*client.Client, error)
	List(ctx context.Context, filter client.ListFilter) ([]*client.Client, error)
}

type Records interface {
	Records(ctx context.Context, filter finance.RecordFilter) ([]*finance.MonthRecords, error)
	Window() period.Window
}

type Guard interface {
	Check(ctx context.Context, actor auth.Actor, clientID uuid.UUID, locked bool) error
}

type Service struct {
	clients Clients
	records Records
	guard   Guard
	now     func() time.Time
}

func NewService(clients Clients, records Records, guard Guard) *Service {
	return &Service{clients: clients, records: records, guard: guard, now: time.Now}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Scope selects the months a view covers. No Year means all time; Month
// requires Year.
type Scope struct {
	Year          *int
	Month         *int
	CountyID      *uuid.UUID
	ServiceTypeID *uuid.UUID
}

func (sc Scope) Validate() error {
	if sc.Month != nil {
		if sc.Year == nil {
			return fmt.Errorf("%w: month requires year", ErrInvalidScope)
		}

		if *sc.Month < 1 || *sc.Month > 12 {
			return fmt.Errorf("%w: month %d", ErrInvalidScope, *sc.Month)
		}
	}

	return nil
}

func (sc Scope) recordFilter() finance.RecordFilter {
	return finance.RecordFilter{
		Year:          sc.Year,
		Month:         sc.Month,
		CountyID:      sc.CountyID,
		ServiceTypeID: sc.ServiceTypeID,
	}
}

func (sc Scope) clientFilter() client.ListFilter {
	return client.ListFilter{CountyID: sc.CountyID, ServiceTypeID: sc.ServiceTypeID}
}

func (s *Service) scoped(ctx context.Context, sc Scope) ([]*finance.MonthRecords, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	records, err := s.records.Records(ctx, sc.recordFilter())
	if err != nil {
		return nil, fmt.Errorf("loading records: %w", err)
	}

	return records, nil
}

type Dashboard struct {
	TotalClients         int         `json:"totalClients"`
	ActiveClients        int         `json:"activeClients"`
	TotalHousingSupport  money.Money `json:"totalHousingSupport"`
	TotalRentPaid        money.Money `json:"totalRentPaid"`
	TotalExpenses        money.Money `json:"totalExpenses"`
	TotalLth             money.Money `json:"totalLth"`
	RemainingBalance     money.Money `json:"remainingBalance"`
	PoolFund             money.Money `json:"poolFund"`
	TotalContributors    int         `json:"totalContributors"`
	PositiveContributors int         `json:"positiveContributors"`
	NegativeContributors int         `json:"negativeContributors"`
}

func (s *Service) Dashboard(ctx context.Context, sc Scope) (*Dashboard, error) {
	records, err := s.scoped(ctx, sc)
	if err != nil {
		return nil, err
	}

	clients, err := s.clients.List(ctx, sc.clientFilter())
	if err != nil {
		return nil, fmt.Errorf("listing clients: %w", err)
	}

	sum := poolfund.Summarize(records)

	d := &Dashboard{
		TotalClients:         len(clients),
		TotalHousingSupport:  sum.TotalHousingSupport,
		TotalRentPaid:        sum.TotalRentPaid,
		TotalExpenses:        sum.TotalExpenses,
		TotalLth:             sum.TotalLth,
		RemainingBalance:     sum.RemainingBalance,
		PoolFund:             sum.TotalPoolFund,
		TotalContributors:    sum.TotalContributors,
		PositiveContributors: sum.PositiveContributors,
		NegativeContributors: sum.NegativeContributors,
	}

	for _, c := range clients {
		if c.Active {
			d.ActiveClients++
		}
	}

	return d, nil
}

func (s *Service) PoolFundSummary(ctx context.Context, sc Scope) (*poolfund.Summary, error) {
	records, err := s.scoped(ctx, sc)
	if err != nil {
		return nil, err
	}

	sum := poolfund.Summarize(records)

	return &sum, nil
}

func (s *Service) Contributions(ctx context.Context, sc Scope) ([]poolfund.Contribution, error) {
	records, err := s.scoped(ctx, sc)
	if err != nil {
		return nil, err
	}

	clients, err := s.clients.List(ctx, sc.clientFilter())
	if err != nil {
		return nil, fmt.Errorf("listing clients: %w", err)
	}

	info := make(map[uuid.UUID]poolfund.ClientInfo, len(clients))
	for _, c := range clients {
		info[c.ID] = poolfund.ClientInfo{Name: c.Name, County: c.County}
	}

	return poolfund.Contributions(records, info), nil
}

type GridRow struct {
	Year             int          `json:"year"`
	Month            int          `json:"month"`
	HousingSupport   money.Money  `json:"housingSupport"`
	RentPaid         money.Money  `json:"rentPaid"`
	TotalExpenses    money.Money  `json:"totalExpenses"`
	LthTotal         money.Money  `json:"lthTotal"`
	RemainingBalance money.Money  `json:"remainingBalance"`
	PoolAmount       *money.Money `json:"poolAmount"`
	Included         bool         `json:"included"`
	HasData          bool         `json:"hasData"`
	Locked           bool         `json:"locked"`
}

type YearlyGrid struct {
	ClientID         uuid.UUID      `json:"clientId"`
	Year             int            `json:"year"`
	Rows             []GridRow      `json:"rows"`
	Totals           finance.Totals `json:"totals"`
	RemainingBalance money.Money    `json:"remainingBalance"`
	PoolFund         money.Money    `json:"poolFund"`
}

// YearlyGrid returns twelve rows for clientID's year. Months without a
// ClientMonth are zero rows whose lock follows the edit window.
func (s *Service) YearlyGrid(ctx context.Context, clientID uuid.UUID, year int) (*YearlyGrid, error) {
	if _, err := period.New(year, 1); err != nil {
		return nil, err
	}

	if _, err := s.clients.Get(ctx, clientID); err != nil {
		return nil, err
	}

	records, err := s.records.Records(ctx, finance.RecordFilter{ClientID: &clientID, Year: &year})
	if err != nil {
		return nil, fmt.Errorf("loading records: %w", err)
	}

	byMonth := make(map[int]*finance.MonthRecords, len(records))
	for _, r := range records {
		byMonth[r.Month.Period.Month] = r
	}

	window := s.records.Window()
	now := s.now()

	g := &YearlyGrid{ClientID: clientID, Year: year, Rows: make([]GridRow, 0, 12)}

	for m := 1; m <= 12; m++ {
		p := period.Period{Year: year, Month: m}
		row := GridRow{Year: year, Month: m, Locked: window.Closed(p, now)}

		if r, ok := byMonth[m]; ok {
			t := r.Totals()
			d := poolfund.Evaluate(t)

			row.HousingSupport = t.HousingSupport
			row.RentPaid = t.RentPaid
			row.TotalExpenses = t.TotalExpenses
			row.LthTotal = t.LthTotal
			row.RemainingBalance = d.RemainingBalance
			row.PoolAmount = d.PoolAmount
			row.Included = d.Included
			row.HasData = t.HasData()
			row.Locked = r.Month.Locked

			g.Totals = g.Totals.Add(t)

			if d.PoolAmount != nil {
				g.PoolFund = g.PoolFund.Add(*d.PoolAmount)
			}
		}

		g.Rows = append(g.Rows, row)
	}

	g.RemainingBalance = poolfund.RemainingBalance(g.Totals)

	return g, nil
}

// Row is one client's line in a report.
type Row struct {
	ClientID         uuid.UUID   `json:"clientId"`
	ClientName       string      `json:"clientName"`
	CaseNumber       string      `json:"caseNumber"`
	County           string      `json:"county"`
	ServiceType      string      `json:"serviceType"`
	Months           int         `json:"months"`
	HousingSupport   money.Money `json:"totalHousingSupport"`
	RentPaid         money.Money `json:"totalRentPaid"`
	Expenses         money.Money `json:"totalExpenses"`
	Lth              money.Money `json:"totalLth"`
	RemainingBalance money.Money `json:"remainingBalance"`
	PoolFund         money.Money `json:"poolFund"`
}

// Rows returns one row per client with at least one month in scope, in
// client listing order.
func (s *Service) Rows(ctx context.Context, sc Scope) ([]Row, error) {
	records, err := s.scoped(ctx, sc)
	if err != nil {
		return nil, err
	}

	clients, err := s.clients.List(ctx, sc.clientFilter())
	if err != nil {
		return nil, fmt.Errorf("listing clients: %w", err)
	}

	perClient := make(map[uuid.UUID][]*finance.MonthRecords)
	for _, r := range records {
		perClient[r.Month.ClientID] = append(perClient[r.Month.ClientID], r)
	}

	rows := make([]Row, 0, len(perClient))

	for _, c := range clients {
		months, ok := perClient[c.ID]
		if !ok {
			continue
		}

		sum := poolfund.Summarize(months)

		rows = append(rows, Row{
			ClientID:         c.ID,
			ClientName:       c.Name,
			CaseNumber:       c.CaseNumber,
			County:           c.County,
			ServiceType:      c.ServiceType,
			Months:           len(months),
			HousingSupport:   sum.TotalHousingSupport,
			RentPaid:         sum.TotalRentPaid,
			Expenses:         sum.TotalExpenses,
			Lth:              sum.TotalLth,
			RemainingBalance: sum.RemainingBalance,
			PoolFund:         sum.TotalPoolFund,
		})
	}

	return rows, nil
}

// MonthDetail is one client's month as shown to a particular actor.
type MonthDetail struct {
	ClientID       uuid.UUID
	Year           int
	Month          int
	ClientMonthID  *uuid.UUID
	Locked         bool
	EditDeadline   time.Time
	Editable       bool
	BlockedReason  string
	Totals         finance.Totals
	Decision       poolfund.Decision
	HousingSupport *finance.HousingSupport
	Rent           *finance.RentPayment
	Lth            []*finance.LthPayment
	Expenses       []*finance.Expense
}

// MonthDetail reports a month whether or not it has a ClientMonth yet. Asking
// never creates one.
func (s *Service) MonthDetail(ctx context.Context, actor auth.Actor, clientID uuid.UUID, p period.Period) (*MonthDetail, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.clients.Get(ctx, clientID); err != nil {
		return nil, err
	}

	records, err := s.records.Records(ctx, finance.RecordFilter{ClientID: &clientID, Year: &p.Year, Month: &p.Month})
	if err != nil {
		return nil, fmt.Errorf("loading records: %w", err)
	}

	window := s.records.Window()

	d := &MonthDetail{
		ClientID:     clientID,
		Year:         p.Year,
		Month:        p.Month,
		Locked:       window.Closed(p, s.now()),
		EditDeadline: window.Deadline(p),
		Lth:          []*finance.LthPayment{},
		Expenses:     []*finance.Expense{},
	}

	if len(records) > 0 {
		r := records[0]
		d.ClientMonthID = &r.Month.ID
		d.Locked = r.Month.Locked
		d.Totals = r.Totals()
		d.HousingSupport = r.HousingSupport
		d.Rent = r.Rent

		if r.Lth != nil {
			d.Lth = r.Lth
		}

		if r.Expenses != nil {
			d.Expenses = r.Expenses
		}
	}

	d.Decision = poolfund.Evaluate(d.Totals)

	switch err := s.guard.Check(ctx, actor, clientID, d.Locked); {
	case err == nil:
		d.Editable = true
	case errors.Is(err, access.ErrEditWindowClosed), errors.Is(err, access.ErrServiceAgreementExpired):
		d.BlockedReason = err.Error()
	default:
		return nil, err
	}

	return d, nil
}
