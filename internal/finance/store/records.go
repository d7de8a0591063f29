package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/loqeyusa/housingsupport/internal/finance"
)

// ListMonthRecords loads the matching months and then every row under them
// in one query per table.
func (s *Store) ListMonthRecords(ctx context.Context, filter finance.RecordFilter) ([]*finance.MonthRecords, error) {
	query := `SELECT ` + selectMonthColumns + `
		FROM client_months cm
		JOIN clients c ON c.id = cm.client_id
		WHERE 1=1`

	var args []any

	argIdx := 1

	if filter.ClientMonthID != nil {
		query += fmt.Sprintf(" AND cm.id = $%d", argIdx)

		args = append(args, *filter.ClientMonthID)
		argIdx++
	}

	if filter.ClientID != nil {
		query += fmt.Sprintf(" AND cm.client_id = $%d", argIdx)

		args = append(args, *filter.ClientID)
		argIdx++
	}

	if filter.Year != nil {
		query += fmt.Sprintf(" AND cm.year = $%d", argIdx)

		args = append(args, *filter.Year)
		argIdx++
	}

	if filter.Month != nil {
		query += fmt.Sprintf(" AND cm.month = $%d", argIdx)

		args = append(args, *filter.Month)
		argIdx++
	}

	if filter.CountyID != nil {
		query += fmt.Sprintf(" AND c.county_id = $%d", argIdx)

		args = append(args, *filter.CountyID)
		argIdx++
	}

	if filter.ServiceTypeID != nil {
		query += fmt.Sprintf(" AND c.service_type_id = $%d", argIdx)

		args = append(args, *filter.ServiceTypeID)
	}

	query += " ORDER BY cm.client_id, cm.year, cm.month"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing client months: %w", err)
	}
	defer rows.Close()

	var (
		records []*finance.MonthRecords
		ids     []string
	)

	byID := make(map[uuid.UUID]*finance.MonthRecords)

	for rows.Next() {
		m, err := scanMonth(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning client month: %w", err)
		}

		r := &finance.MonthRecords{Month: *m}
		records = append(records, r)
		byID[m.ID] = r
		ids = append(ids, m.ID.String())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating client month rows: %w", err)
	}

	if len(records) == 0 {
		return records, nil
	}

	if err := s.attachHousingSupport(ctx, ids, byID); err != nil {
		return nil, err
	}

	if err := s.attachRent(ctx, ids, byID); err != nil {
		return nil, err
	}

	if err := s.attachLth(ctx, ids, byID); err != nil {
		return nil, err
	}

	if err := s.attachExpenses(ctx, ids, byID); err != nil {
		return nil, err
	}

	return records, nil
}

func (s *Store) attachHousingSupport(ctx context.Context, ids []string, byID map[uuid.UUID]*finance.MonthRecords) error {
	query := `SELECT ` + selectHousingSupportColumns + ` FROM housing_supports WHERE client_month_id = ANY($1::uuid[])`

	rows, err := s.db.QueryContext(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("listing housing supports: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		hs, err := scanHousingSupport(rows)
		if err != nil {
			return fmt.Errorf("scanning housing support: %w", err)
		}

		if r, ok := byID[hs.ClientMonthID]; ok {
			r.HousingSupport = hs
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating housing support rows: %w", err)
	}

	return nil
}

func (s *Store) attachRent(ctx context.Context, ids []string, byID map[uuid.UUID]*finance.MonthRecords) error {
	query := `SELECT ` + selectRentColumns + ` FROM rent_payments WHERE client_month_id = ANY($1::uuid[])`

	rows, err := s.db.QueryContext(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("listing rent payments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		rp, err := scanRent(rows)
		if err != nil {
			return fmt.Errorf("scanning rent payment: %w", err)
		}

		if r, ok := byID[rp.ClientMonthID]; ok {
			r.Rent = rp
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating rent payment rows: %w", err)
	}

	return nil
}

func (s *Store) attachLth(ctx context.Context, ids []string, byID map[uuid.UUID]*finance.MonthRecords) error {
	query := `SELECT ` + selectLthColumns + ` FROM lth_payments
		WHERE client_month_id = ANY($1::uuid[])
		ORDER BY created_at, id`

	rows, err := s.db.QueryContext(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("listing lth payments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		l, err := scanLth(rows)
		if err != nil {
			return fmt.Errorf("scanning lth payment: %w", err)
		}

		if r, ok := byID[l.ClientMonthID]; ok {
			r.Lth = append(r.Lth, l)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating lth payment rows: %w", err)
	}

	return nil
}

func (s *Store) attachExpenses(ctx context.Context, ids []string, byID map[uuid.UUID]*finance.MonthRecords) error {
	query := `SELECT ` + selectExpenseColumns + `
		FROM expenses e
		LEFT JOIN expense_categories ec ON e.category_id = ec.id
		WHERE e.client_month_id = ANY($1::uuid[])
		ORDER BY e.created_at, e.id`

	rows, err := s.db.QueryContext(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("listing expenses: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return fmt.Errorf("scanning expense: %w", err)
		}

		if r, ok := byID[e.ClientMonthID]; ok {
			r.Expenses = append(r.Expenses, e)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating expense rows: %w", err)
	}

	return nil
}
