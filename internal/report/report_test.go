package report_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/loqeyusa/housingsupport/internal/access"
	"github.com/loqeyusa/housingsupport/internal/auth"
	"github.com/loqeyusa/housingsupport/internal/client"
	"github.com/loqeyusa/housingsupport/internal/finance"
	"github.com/loqeyusa/housingsupport/internal/money"
	"github.com/loqeyusa/housingsupport/internal/period"
	"github.com/loqeyusa/housingsupport/internal/report"
)

var (
	now   = time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC)
	admin = auth.Actor{UserID: uuid.New(), Role: auth.RoleAdmin}
)

func month(clientID uuid.UUID, p period.Period, locked bool, hs, rent string, expenses ...string) *finance.MonthRecords {
	r := &finance.MonthRecords{Month: finance.ClientMonth{ID: uuid.New(), ClientID: clientID, Period: p, Locked: locked}}

	if hs != "" {
		r.HousingSupport = &finance.HousingSupport{Amount: money.MustParse(hs)}
	}

	if rent != "" {
		r.Rent = &finance.RentPayment{PaidAmount: money.MustParse(rent)}
	}

	for _, e := range expenses {
		r.Expenses = append(r.Expenses, &finance.Expense{Amount: money.MustParse(e)})
	}

	return r
}

type fixture struct {
	clients *report.MockClients
	records *report.MockRecords
	guard   *report.MockGuard
	svc     *report.Service
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		clients: report.NewMockClients(ctrl),
		records: report.NewMockRecords(ctrl),
		guard:   report.NewMockGuard(ctrl),
	}
	f.records.EXPECT().Window().Return(period.NewWindow(0)).AnyTimes()
	f.svc = report.NewService(f.clients, f.records, f.guard).WithClock(func() time.Time { return now })

	return f
}

func TestService_Dashboard(t *testing.T) {
	f := newFixture(t)

	a := &client.Client{ID: uuid.New(), Name: "Ann", Active: true}
	b := &client.Client{ID: uuid.New(), Name: "Bo", Active: true}
	c := &client.Client{ID: uuid.New(), Name: "Cy"}

	march := period.Period{Year: 2025, Month: 3}
	year, mon := 2025, 3

	f.records.EXPECT().Records(gomock.Any(), finance.RecordFilter{Year: &year, Month: &mon}).
		Return([]*finance.MonthRecords{
			month(a.ID, march, false, "500.00", "450.00", "30.00", "20.00"),
			month(b.ID, march, false, "500.00", ""),
			month(c.ID, march, false, "", "300.00"),
		}, nil)
	f.clients.EXPECT().List(gomock.Any(), client.ListFilter{}).Return([]*client.Client{a, b, c}, nil)

	d, err := f.svc.Dashboard(context.Background(), report.Scope{Year: &year, Month: &mon})
	require.NoError(t, err)

	assert.Equal(t, 3, d.TotalClients)
	assert.Equal(t, 2, d.ActiveClients)
	assert.Equal(t, "1000.00", d.TotalHousingSupport.Plain())
	assert.Equal(t, "750.00", d.TotalRentPaid.Plain())
	assert.Equal(t, "50.00", d.TotalExpenses.Plain())
	assert.Equal(t, "200.00", d.RemainingBalance.Plain())
	assert.Equal(t, "0.00", d.PoolFund.Plain())
	assert.Equal(t, 1, d.TotalContributors)
	assert.Equal(t, 1, d.PositiveContributors)
	assert.Equal(t, 0, d.NegativeContributors)
}

func TestScope_Validate(t *testing.T) {
	year, mon, bad := 2025, 3, 13

	assert.NoError(t, report.Scope{}.Validate())
	assert.NoError(t, report.Scope{Year: &year}.Validate())
	assert.NoError(t, report.Scope{Year: &year, Month: &mon}.Validate())
	assert.ErrorIs(t, report.Scope{Month: &mon}.Validate(), report.ErrInvalidScope)
	assert.ErrorIs(t, report.Scope{Year: &year, Month: &bad}.Validate(), report.ErrInvalidScope)
}

func TestService_YearlyGrid(t *testing.T) {
	f := newFixture(t)

	clientID := uuid.New()
	year := 2025

	records := []*finance.MonthRecords{
		month(clientID, period.Period{Year: 2025, Month: 1}, true, "500.00", "450.00", "80.00"),
		month(clientID, period.Period{Year: 2025, Month: 3}, false, "500.00", ""),
		month(clientID, period.Period{Year: 2025, Month: 4}, false, "", "", "12.34"),
	}

	f.clients.EXPECT().Get(gomock.Any(), clientID).Return(&client.Client{ID: clientID}, nil)
	f.records.EXPECT().Records(gomock.Any(), finance.RecordFilter{ClientID: &clientID, Year: &year}).Return(records, nil)

	g, err := f.svc.YearlyGrid(context.Background(), clientID, year)
	require.NoError(t, err)
	require.Len(t, g.Rows, 12)

	jan := g.Rows[0]
	assert.True(t, jan.Included)
	assert.True(t, jan.HasData)
	assert.True(t, jan.Locked)
	require.NotNil(t, jan.PoolAmount)
	assert.Equal(t, "-30.00", jan.PoolAmount.Plain())

	feb := g.Rows[1]
	assert.False(t, feb.HasData)
	assert.True(t, feb.Locked, "february closed on 2025-03-31")
	assert.Equal(t, "0.00", feb.RemainingBalance.Plain())

	mar := g.Rows[2]
	assert.False(t, mar.Included)
	assert.Nil(t, mar.PoolAmount)
	assert.False(t, mar.Locked)
	assert.Equal(t, "500.00", mar.RemainingBalance.Plain())

	apr := g.Rows[3]
	assert.True(t, apr.HasData)
	assert.False(t, apr.Included)
	assert.Equal(t, "-12.34", apr.RemainingBalance.Plain())

	dec := g.Rows[11]
	assert.False(t, dec.HasData)
	assert.False(t, dec.Locked)

	// Year totals equal the aggregate of the same months.
	want := finance.Aggregate(records)
	assert.Equal(t, want.HousingSupport.Plain(), g.Totals.HousingSupport.Plain())
	assert.Equal(t, want.RentPaid.Plain(), g.Totals.RentPaid.Plain())
	assert.Equal(t, want.TotalExpenses.Plain(), g.Totals.TotalExpenses.Plain())

	var rowSum money.Money
	for _, r := range g.Rows {
		rowSum = rowSum.Add(r.RemainingBalance)
	}

	assert.Equal(t, g.RemainingBalance.Plain(), rowSum.Plain())
	assert.Equal(t, "457.66", g.RemainingBalance.Plain())
	assert.Equal(t, "-30.00", g.PoolFund.Plain())
}

func TestService_YearlyGridMatchesYearRow(t *testing.T) {
	f := newFixture(t)

	c := &client.Client{ID: uuid.New(), Name: "Ann", CaseNumber: "C-1"}
	year := 2025

	records := []*finance.MonthRecords{
		month(c.ID, period.Period{Year: 2025, Month: 1}, true, "500.00", "450.00", "80.00"),
		month(c.ID, period.Period{Year: 2025, Month: 2}, true, "500.00", "450.00", "10.00"),
		month(c.ID, period.Period{Year: 2025, Month: 3}, false, "500.00", ""),
		month(c.ID, period.Period{Year: 2025, Month: 4}, false, "", "", "12.34"),
	}
	records[1].Lth = []*finance.LthPayment{{Amount: money.MustParse("25.00")}}

	f.clients.EXPECT().Get(gomock.Any(), c.ID).Return(c, nil)
	f.records.EXPECT().Records(gomock.Any(), finance.RecordFilter{ClientID: &c.ID, Year: &year}).Return(records, nil)
	f.records.EXPECT().Records(gomock.Any(), finance.RecordFilter{Year: &year}).Return(records, nil)
	f.clients.EXPECT().List(gomock.Any(), client.ListFilter{}).Return([]*client.Client{c}, nil)

	g, err := f.svc.YearlyGrid(context.Background(), c.ID, year)
	require.NoError(t, err)

	rows, err := f.svc.Rows(context.Background(), report.Scope{Year: &year})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, row.HousingSupport.Plain(), g.Totals.HousingSupport.Plain())
	assert.Equal(t, row.RentPaid.Plain(), g.Totals.RentPaid.Plain())
	assert.Equal(t, row.Expenses.Plain(), g.Totals.TotalExpenses.Plain())
	assert.Equal(t, row.Lth.Plain(), g.Totals.LthTotal.Plain())
	assert.Equal(t, row.RemainingBalance.Plain(), g.RemainingBalance.Plain())
	assert.Equal(t, row.PoolFund.Plain(), g.PoolFund.Plain())
}

func TestService_YearlyGrid_UnknownClient(t *testing.T) {
	f := newFixture(t)

	id := uuid.New()
	f.clients.EXPECT().Get(gomock.Any(), id).Return(nil, client.ErrNotFound)

	_, err := f.svc.YearlyGrid(context.Background(), id, 2025)
	assert.ErrorIs(t, err, client.ErrNotFound)
}

func TestService_Rows(t *testing.T) {
	f := newFixture(t)

	county := uuid.New()
	a := &client.Client{ID: uuid.New(), Name: "Ann", CaseNumber: "C-1", County: "Hennepin"}
	b := &client.Client{ID: uuid.New(), Name: "Bo", CaseNumber: "C-2", County: "Hennepin"}
	idle := &client.Client{ID: uuid.New(), Name: "Idle", County: "Hennepin"}

	jan := period.Period{Year: 2025, Month: 1}
	feb := period.Period{Year: 2025, Month: 2}

	f.records.EXPECT().Records(gomock.Any(), finance.RecordFilter{CountyID: &county}).
		Return([]*finance.MonthRecords{
			month(b.ID, jan, true, "500.00", "450.00"),
			month(a.ID, jan, true, "500.00", ""),
			month(a.ID, feb, true, "500.00", "450.00", "10.00"),
		}, nil)
	f.clients.EXPECT().List(gomock.Any(), client.ListFilter{CountyID: &county}).
		Return([]*client.Client{a, b, idle}, nil)

	rows, err := f.svc.Rows(context.Background(), report.Scope{CountyID: &county})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Ann", rows[0].ClientName)
	assert.Equal(t, 2, rows[0].Months)
	assert.Equal(t, "1000.00", rows[0].HousingSupport.Plain())
	assert.Equal(t, "540.00", rows[0].RemainingBalance.Plain())
	assert.Equal(t, "40.00", rows[0].PoolFund.Plain())

	assert.Equal(t, "Bo", rows[1].ClientName)
	assert.Equal(t, "50.00", rows[1].PoolFund.Plain())
}

func TestService_Contributions(t *testing.T) {
	f := newFixture(t)

	a := &client.Client{ID: uuid.New(), Name: "Ann", County: "Hennepin"}
	b := &client.Client{ID: uuid.New(), Name: "Bo", County: "Ramsey"}
	jan := period.Period{Year: 2025, Month: 1}

	f.records.EXPECT().Records(gomock.Any(), finance.RecordFilter{}).
		Return([]*finance.MonthRecords{
			month(a.ID, jan, true, "500.00", "450.00"),
			month(b.ID, jan, true, "500.00", "300.00"),
		}, nil)
	f.clients.EXPECT().List(gomock.Any(), client.ListFilter{}).Return([]*client.Client{a, b}, nil)

	got, err := f.svc.Contributions(context.Background(), report.Scope{})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Bo", got[0].ClientName)
	assert.Equal(t, "200.00", got[0].PoolAmount.Plain())
	assert.Equal(t, "Hennepin", got[1].County)
}

func TestService_PoolFundSummary_InvalidScope(t *testing.T) {
	f := newFixture(t)

	mon := 4
	_, err := f.svc.PoolFundSummary(context.Background(), report.Scope{Month: &mon})
	assert.ErrorIs(t, err, report.ErrInvalidScope)
}

func TestService_MonthDetail(t *testing.T) {
	clientID := uuid.New()
	april := period.Period{Year: 2025, Month: 4}

	type testCase struct {
		name         string
		records      []*finance.MonthRecords
		guardErr     error
		wantErr      bool
		wantEditable bool
		wantReason   string
		wantIncluded bool
	}

	tests := []testCase{
		{
			name:         "NoMonthYet",
			wantEditable: true,
		},
		{
			name:         "IncludedMonth",
			records:      []*finance.MonthRecords{month(clientID, april, false, "500.00", "450.00")},
			wantEditable: true,
			wantIncluded: true,
		},
		{
			name:       "ExpiredAgreement",
			records:    []*finance.MonthRecords{month(clientID, april, false, "500.00", "")},
			guardErr:   access.ErrServiceAgreementExpired,
			wantReason: access.ErrServiceAgreementExpired.Error(),
		},
		{
			name:     "GuardFailure",
			guardErr: errors.New("db down"),
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.clients.EXPECT().Get(gomock.Any(), clientID).Return(&client.Client{ID: clientID}, nil)
			f.records.EXPECT().Records(gomock.Any(), gomock.Any()).Return(tt.records, nil)
			f.guard.EXPECT().Check(gomock.Any(), admin, clientID, false).Return(tt.guardErr)

			d, err := f.svc.MonthDetail(context.Background(), admin, clientID, april)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantEditable, d.Editable)
			assert.Equal(t, tt.wantReason, d.BlockedReason)
			assert.Equal(t, tt.wantIncluded, d.Decision.Included)
			assert.Equal(t, time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC), d.EditDeadline)
			assert.NotNil(t, d.Expenses)

			if tt.records == nil {
				assert.Nil(t, d.ClientMonthID)
			}
		})
	}
}
