// Package importer reads housing support remittance files and applies them
// as a bulk update.
package importer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/loqeyusa/housingsupport/internal/encoding"
	"github.com/loqeyusa/housingsupport/internal/money"
)

var ErrUnknownFormat = errors.New("no known remittance header found")

// Line is one parsed row. Row is the 1-based line in the file.
type Line struct {
	Row          int
	CaseNumber   string
	Amount       money.Money
	ReceivedDate *time.Time
}

// Rejection is a row that could not be parsed or applied.
type Rejection struct {
	Row        int    `json:"row"`
	CaseNumber string `json:"caseNumber,omitempty"`
	Reason     string `json:"reason"`
}

type Parsed struct {
	Profile  string
	Charset  string
	Lines    []Line
	Rejected []Rejection
}

var dateLayouts = []string{"01/02/2006", "1/2/2006", "2006-01-02", "01-02-2006"}

// Parse reads a comma or semicolon separated file in any charset Decode
// understands. Rows above the header are ignored, as are blank rows.
func Parse(r io.Reader) (*Parsed, error) {
	utf8r, charset, err := encoding.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("detecting encoding: %w", err)
	}

	data, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	var lastErr error

	for _, comma := range []rune{',', ';'} {
		rows, err := readRows(data, comma)
		if err != nil {
			lastErr = err
			continue
		}

		profile, cols, headerIdx, ok := detect(rows)
		if !ok {
			continue
		}

		parsed := parseRows(cols, rows[headerIdx+1:])
		parsed.Profile = profile.Name
		parsed.Charset = charset

		return parsed, nil
	}

	if lastErr != nil {
		return nil, fmt.Errorf("reading csv: %w", lastErr)
	}

	return nil, ErrUnknownFormat
}

// record is a csv row and the file line it started on. Blank lines are
// skipped by the csv reader, so the index alone is not the line.
type record struct {
	line  int
	cells []string
}

func readRows(data []byte, comma rune) ([]record, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var rows []record

	for {
		cells, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}

		if err != nil {
			return nil, err
		}

		line, _ := reader.FieldPos(0)
		rows = append(rows, record{line: line, cells: cells})
	}
}

func detect(rows []record) (*Profile, columns, int, bool) {
	for rowIdx, row := range rows {
		for i := range profiles {
			if cols, ok := profiles[i].match(row.cells); ok {
				return &profiles[i], cols, rowIdx, true
			}
		}
	}

	return nil, columns{}, 0, false
}

func parseRows(cols columns, rows []record) *Parsed {
	parsed := &Parsed{Lines: []Line{}, Rejected: []Rejection{}}

	for _, rec := range rows {
		row, rowNum := rec.cells, rec.line

		if blank(row) {
			continue
		}

		caseNumber := cellValue(row, cols.caseIdx)
		if caseNumber == "" {
			parsed.Rejected = append(parsed.Rejected, Rejection{Row: rowNum, Reason: "missing case number"})
			continue
		}

		amount, err := money.Parse(cellValue(row, cols.amountIdx))
		if err != nil {
			parsed.Rejected = append(parsed.Rejected, Rejection{Row: rowNum, CaseNumber: caseNumber, Reason: err.Error()})
			continue
		}

		line := Line{Row: rowNum, CaseNumber: caseNumber, Amount: amount}

		if s := cellValue(row, cols.dateIdx); s != "" {
			d, ok := parseDate(s)
			if !ok {
				parsed.Rejected = append(parsed.Rejected, Rejection{
					Row: rowNum, CaseNumber: caseNumber, Reason: fmt.Sprintf("invalid date %q", s),
				})

				continue
			}

			line.ReceivedDate = &d
		}

		parsed.Lines = append(parsed.Lines, line)
	}

	return parsed
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

func blank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
