package report_test

import (
	"bytes"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/loqeyusa/housingsupport/internal/money"
	"github.com/loqeyusa/housingsupport/internal/report"
)

func sampleRows() []report.Row {
	return []report.Row{
		{
			ClientID:         uuid.New(),
			ClientName:       "Ann Lee",
			CaseNumber:       "C-1",
			County:           "Hennepin",
			ServiceType:      "HSS",
			Months:           2,
			HousingSupport:   money.MustParse("1000.00"),
			RentPaid:         money.MustParse("450.00"),
			Expenses:         money.MustParse("10.00"),
			RemainingBalance: money.MustParse("540.00"),
			PoolFund:         money.MustParse("40.00"),
		},
		{
			ClientID:         uuid.New(),
			ClientName:       "Smith, Bo",
			Months:           1,
			HousingSupport:   money.MustParse("500.00"),
			RentPaid:         money.MustParse("512.34"),
			RemainingBalance: money.MustParse("-12.34"),
			PoolFund:         money.MustParse("-12.34"),
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, report.WriteCSV(&buf, sampleRows()))

	want := "Client,Case Number,County,Service Type,Months,Housing Support,Rent Paid,Expenses,LTH,Remaining Balance,Pool Fund\n" +
		"Ann Lee,C-1,Hennepin,HSS,2,1000.00,450.00,10.00,0.00,540.00,40.00\n" +
		"\"Smith, Bo\",,,,1,500.00,512.34,0.00,0.00,-12.34,-12.34\n"

	assert.Equal(t, want, buf.String())
}

func TestWriteCSV_NoRows(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, report.WriteCSV(&buf, nil))
	assert.Equal(t, "Client,Case Number,County,Service Type,Months,Housing Support,Rent Paid,Expenses,LTH,Remaining Balance,Pool Fund\n", buf.String())
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, report.WriteXLSX(&buf, sampleRows()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)

	defer f.Close()

	assert.Equal(t, []string{"Report"}, f.GetSheetList())

	get := func(cell string) string {
		v, err := f.GetCellValue("Report", cell, excelize.Options{RawCellValue: true})
		require.NoError(t, err)

		return v
	}

	amount := func(cell string) float64 {
		v, err := strconv.ParseFloat(get(cell), 64)
		require.NoError(t, err, cell)

		return v
	}

	assert.Equal(t, "Client", get("A1"))
	assert.Equal(t, "Pool Fund", get("K1"))
	assert.Equal(t, "Ann Lee", get("A2"))
	assert.Equal(t, "2", get("E2"))
	assert.InDelta(t, 1000.0, amount("F2"), 0.001)
	assert.InDelta(t, 40.0, amount("K2"), 0.001)
	assert.Equal(t, "Smith, Bo", get("A3"))
	assert.InDelta(t, -12.34, amount("J3"), 0.001)

	rows, err := f.GetRows("Report")
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestFileName(t *testing.T) {
	at := time.Date(2025, time.April, 10, 15, 0, 0, 0, time.UTC)

	assert.Equal(t, "housing_support_report_20250410.xlsx", report.FileName(at, "xlsx"))
}
