package finance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loqeyusa/housingsupport/internal/finance"
	"github.com/loqeyusa/housingsupport/internal/money"
)

func TestMonthRecords_Totals(t *testing.T) {
	t.Run("MissingRowsAreZero", func(t *testing.T) {
		r := &finance.MonthRecords{}
		got := r.Totals()

		assert.True(t, got.HousingSupport.IsZero())
		assert.True(t, got.RentPaid.IsZero())
		assert.True(t, got.TotalExpenses.IsZero())
		assert.True(t, got.LthTotal.IsZero())
		assert.False(t, got.HasData())
	})

	t.Run("SumsRows", func(t *testing.T) {
		r := &finance.MonthRecords{
			HousingSupport: &finance.HousingSupport{Amount: money.MustParse("500.00")},
			Rent:           &finance.RentPayment{ExpectedAmount: money.MustParse("475.00"), PaidAmount: money.MustParse("450.00")},
			Expenses: []*finance.Expense{
				{Amount: money.MustParse("30.00")},
				{Amount: money.MustParse("20.00")},
			},
			Lth: []*finance.LthPayment{
				{Amount: money.MustParse("12.50")},
				{Amount: money.MustParse("7.50")},
			},
		}

		got := r.Totals()

		assert.Equal(t, "500.00", got.HousingSupport.Plain())
		assert.Equal(t, "450.00", got.RentPaid.Plain())
		assert.Equal(t, "50.00", got.TotalExpenses.Plain())
		assert.Equal(t, "20.00", got.LthTotal.Plain())
		assert.True(t, got.HasData())
	})

	t.Run("ManySmallExpensesDoNotDrift", func(t *testing.T) {
		r := &finance.MonthRecords{}
		for range 1000 {
			r.Expenses = append(r.Expenses, &finance.Expense{Amount: money.MustParse("0.10")})
		}

		assert.Equal(t, "100.00", r.Totals().TotalExpenses.Plain())
	})

	t.Run("LthAloneIsNotData", func(t *testing.T) {
		r := &finance.MonthRecords{Lth: []*finance.LthPayment{{Amount: money.MustParse("5.00")}}}
		assert.False(t, r.Totals().HasData())
	})
}

func TestAggregate(t *testing.T) {
	records := []*finance.MonthRecords{
		{HousingSupport: &finance.HousingSupport{Amount: money.MustParse("500.00")}},
		{Rent: &finance.RentPayment{PaidAmount: money.MustParse("300.00")}},
		{Expenses: []*finance.Expense{{Amount: money.MustParse("0.01")}}},
	}

	got := finance.Aggregate(records)

	assert.Equal(t, "500.00", got.HousingSupport.Plain())
	assert.Equal(t, "300.00", got.RentPaid.Plain())
	assert.Equal(t, "0.01", got.TotalExpenses.Plain())
	assert.True(t, finance.Aggregate(nil).HousingSupport.IsZero())
}
