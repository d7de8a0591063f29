package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"
)

var rowHeader = []string{
	"Client", "Case Number", "County", "Service Type", "Months",
	"Housing Support", "Rent Paid", "Expenses", "LTH", "Remaining Balance", "Pool Fund",
}

func (r Row) record() []string {
	return []string{
		r.ClientName, r.CaseNumber, r.County, r.ServiceType, strconv.Itoa(r.Months),
		r.HousingSupport.Plain(), r.RentPaid.Plain(), r.Expenses.Plain(), r.Lth.Plain(),
		r.RemainingBalance.Plain(), r.PoolFund.Plain(),
	}
}

// FileName is the download name for a report rendered at the given time.
func FileName(at time.Time, ext string) string {
	return fmt.Sprintf("housing_support_report_%s.%s", at.Format("20060102"), ext)
}

// WriteCSV writes rows with a header line. Amounts are plain decimals.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(rowHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, r := range rows {
		if err := cw.Write(r.record()); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}

	return nil
}

const sheetName = "Report"

// amountColumns are the zero-based header positions holding money.
var amountColumns = map[int]bool{5: true, 6: true, 7: true, 8: true, 9: true, 10: true}

// WriteXLSX writes rows to a single-sheet workbook. Amount cells are
// numeric with two decimals.
func WriteXLSX(w io.Writer, rows []Row) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	for i, h := range rowHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}

		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	amountStyle, err := f.NewStyle(&excelize.Style{NumFmt: 2})
	if err != nil {
		return fmt.Errorf("creating amount style: %w", err)
	}

	for ri, r := range rows {
		values := []any{
			r.ClientName, r.CaseNumber, r.County, r.ServiceType, r.Months,
			r.HousingSupport.Decimal().InexactFloat64(), r.RentPaid.Decimal().InexactFloat64(),
			r.Expenses.Decimal().InexactFloat64(), r.Lth.Decimal().InexactFloat64(),
			r.RemainingBalance.Decimal().InexactFloat64(), r.PoolFund.Decimal().InexactFloat64(),
		}

		for ci, v := range values {
			cell, err := excelize.CoordinatesToCellName(ci+1, ri+2)
			if err != nil {
				return err
			}

			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return fmt.Errorf("writing row %d: %w", ri+1, err)
			}

			if amountColumns[ci] {
				if err := f.SetCellStyle(sheetName, cell, cell, amountStyle); err != nil {
					return fmt.Errorf("styling row %d: %w", ri+1, err)
				}
			}
		}
	}

	if err := f.SetColWidth(sheetName, "A", "A", 28); err != nil {
		return err
	}

	if err := f.SetColWidth(sheetName, "B", "D", 16); err != nil {
		return err
	}

	if err := f.SetColWidth(sheetName, "F", "K", 16); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}

	return nil
}
