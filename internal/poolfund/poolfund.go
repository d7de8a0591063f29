// Package poolfund applies the pool-fund rules to month totals.
//
// A month contributes to the pool fund only when it had housing support and
// at least one deduction (rent paid or expenses). Its pool amount is the
// support minus those deductions and may be negative. Remaining balance is the
// same subtraction taken over every month, contributing or not.
package poolfund

import (
	"sort"

	"github.com/google/uuid"

	"github.com/loqeyusa/housingsupport/internal/finance"
	"github.com/loqeyusa/housingsupport/internal/money"
)

// Included reports whether a month with totals t contributes to the pool
// fund.
func Included(t finance.Totals) bool {
	return t.HousingSupport.IsPositive() && (t.RentPaid.IsPositive() || t.TotalExpenses.IsPositive())
}

// Amount returns the month's pool amount, or false when the month is
// excluded.
func Amount(t finance.Totals) (money.Money, bool) {
	if !Included(t) {
		return money.Zero, false
	}

	return RemainingBalance(t), true
}

// RemainingBalance is housing support minus rent paid and expenses, whether
// or not the month is included.
func RemainingBalance(t finance.Totals) money.Money {
	return t.HousingSupport.Sub(t.RentPaid).Sub(t.TotalExpenses)
}

// Decision is the rule engine's verdict on one month.
type Decision struct {
	Included         bool         `json:"included"`
	PoolAmount       *money.Money `json:"poolAmount"`
	RemainingBalance money.Money  `json:"remainingBalance"`
}

func Evaluate(t finance.Totals) Decision {
	d := Decision{RemainingBalance: RemainingBalance(t)}

	if amount, ok := Amount(t); ok {
		d.Included = true
		d.PoolAmount = &amount
	}

	return d
}

// Summary rolls the rules up over a scope of months.
type Summary struct {
	TotalHousingSupport  money.Money `json:"totalHousingSupport"`
	TotalRentPaid        money.Money `json:"totalRentPaid"`
	TotalExpenses        money.Money `json:"totalExpenses"`
	TotalLth             money.Money `json:"totalLth"`
	RemainingBalance     money.Money `json:"remainingBalance"`
	TotalPoolFund        money.Money `json:"totalPoolFund"`
	TotalContributors    int         `json:"totalContributors"`
	PositiveContributors int         `json:"positiveContributors"`
	NegativeContributors int         `json:"negativeContributors"`
}

// Summarize totals every month in records and tallies contributors: clients
// with at least one included month, split by the sign of their summed pool
// amount. Zero counts as positive.
func Summarize(records []*finance.MonthRecords) Summary {
	var s Summary

	perClient := make(map[uuid.UUID]money.Money)

	for _, r := range records {
		t := r.Totals()

		s.TotalHousingSupport = s.TotalHousingSupport.Add(t.HousingSupport)
		s.TotalRentPaid = s.TotalRentPaid.Add(t.RentPaid)
		s.TotalExpenses = s.TotalExpenses.Add(t.TotalExpenses)
		s.TotalLth = s.TotalLth.Add(t.LthTotal)
		s.RemainingBalance = s.RemainingBalance.Add(RemainingBalance(t))

		amount, ok := Amount(t)
		if !ok {
			continue
		}

		s.TotalPoolFund = s.TotalPoolFund.Add(amount)
		perClient[r.Month.ClientID] = perClient[r.Month.ClientID].Add(amount)
	}

	s.TotalContributors = len(perClient)

	for _, amount := range perClient {
		if amount.IsNegative() {
			s.NegativeContributors++
		} else {
			s.PositiveContributors++
		}
	}

	return s
}

// ClientInfo names a client in contribution listings.
type ClientInfo struct {
	Name   string
	County string
}

// Contribution is one client's included months summed over a scope.
type Contribution struct {
	ClientID       uuid.UUID   `json:"clientId"`
	ClientName     string      `json:"clientName"`
	County         string      `json:"county"`
	HousingSupport money.Money `json:"housingSupport"`
	RentPaid       money.Money `json:"rentPaid"`
	Expenses       money.Money `json:"expenses"`
	PoolAmount     money.Money `json:"poolAmount"`
}

// Contributions lists every client with an included month, summing only the
// included months, sorted by pool amount descending. Ties keep the order in
// which clients first appear in records.
func Contributions(records []*finance.MonthRecords, clients map[uuid.UUID]ClientInfo) []Contribution {
	out := make([]Contribution, 0)
	index := make(map[uuid.UUID]int)

	for _, r := range records {
		t := r.Totals()

		amount, ok := Amount(t)
		if !ok {
			continue
		}

		id := r.Month.ClientID

		i, seen := index[id]
		if !seen {
			info := clients[id]
			out = append(out, Contribution{ClientID: id, ClientName: info.Name, County: info.County})
			i = len(out) - 1
			index[id] = i
		}

		c := &out[i]
		c.HousingSupport = c.HousingSupport.Add(t.HousingSupport)
		c.RentPaid = c.RentPaid.Add(t.RentPaid)
		c.Expenses = c.Expenses.Add(t.TotalExpenses)
		c.PoolAmount = c.PoolAmount.Add(amount)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PoolAmount.Cmp(out[j].PoolAmount) > 0
	})

	return out
}
