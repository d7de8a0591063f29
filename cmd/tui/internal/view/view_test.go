package view_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loqeyusa/housingsupport/cmd/tui/internal/view"
	"github.com/loqeyusa/housingsupport/internal/money"
	"github.com/loqeyusa/housingsupport/internal/poolfund"
	"github.com/loqeyusa/housingsupport/internal/report"
)

func TestScopeFrom(t *testing.T) {
	type testCase struct {
		name      string
		year      string
		month     int
		wantYear  *int
		wantMonth *int
		wantErr   bool
	}

	tests := []testCase{
		{name: "AllTime"},
		{name: "WholeYear", year: "2025", wantYear: new(2025)},
		{name: "OneMonth", year: " 2025 ", month: 3, wantYear: new(2025), wantMonth: new(3)},
		{name: "MonthWithoutYear", month: 3, wantErr: true},
		{name: "BadYear", year: "twenty", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sc, err := view.ScopeFrom(tc.year, tc.month)
			if tc.wantErr {
				require.ErrorIs(t, err, report.ErrInvalidScope)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantYear, sc.Year)
			assert.Equal(t, tc.wantMonth, sc.Month)
		})
	}
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "All time", view.Describe(report.Scope{}))
	assert.Equal(t, "2025", view.Describe(report.Scope{Year: new(2025)}))
	assert.Equal(t, "March 2025", view.Describe(report.Scope{Year: new(2025), Month: new(3)}))
}

func TestContributionRows(t *testing.T) {
	rows := view.ContributionRows([]poolfund.Contribution{
		{ClientID: uuid.New(), ClientName: "Ann Lee", County: "Hennepin",
			HousingSupport: money.MustParse("1000"), RentPaid: money.MustParse("900"),
			Expenses: money.MustParse("50"), PoolAmount: money.MustParse("50")},
		{ClientID: uuid.New(), ClientName: "Bo", HousingSupport: money.MustParse("500"),
			RentPaid: money.MustParse("512.34"), PoolAmount: money.MustParse("-12.34")},
	})

	require.Len(t, rows, 2)
	assert.Equal(t, "Ann Lee", rows[0][0])
	assert.Equal(t, "$50.00", rows[0][5])
	assert.Equal(t, "-$12.34", rows[1][5])
}

func TestWriteExports(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	at := time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC)

	files, err := view.WriteExports(dir, at, []report.Row{{ClientName: "Ann Lee", Months: 1}})
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "housing_support_report_20250410.csv"),
		filepath.Join(dir, "housing_support_report_20250410.xlsx"),
	}, files)

	body, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Contains(t, string(body), "Ann Lee,,,,1,0.00")

	info, err := os.Stat(files[1])
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
