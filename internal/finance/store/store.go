package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/loqeyusa/housingsupport/internal/database"
	"github.com/loqeyusa/housingsupport/internal/finance"
	"github.com/loqeyusa/housingsupport/internal/period"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectMonthColumns = `cm.id, cm.client_id, cm.year, cm.month, cm.locked, cm.created_at`

func scanMonth(s scanner) (*finance.ClientMonth, error) {
	var m finance.ClientMonth
	if err := s.Scan(&m.ID, &m.ClientID, &m.Period.Year, &m.Period.Month, &m.Locked, &m.CreatedAt); err != nil {
		return nil, err
	}

	return &m, nil
}

// mapWriteErr turns constraint failures into finance errors.
func mapWriteErr(err error, what string) error {
	switch {
	case database.IsUniqueViolation(err):
		return fmt.Errorf("%s: %w", what, finance.ErrConstraintViolation)
	case database.IsForeignKeyViolation(err):
		return fmt.Errorf("%s: %w", what, finance.ErrNotFound)
	default:
		return fmt.Errorf("%s: %w", what, err)
	}
}

func (s *Store) GetMonth(ctx context.Context, clientID uuid.UUID, p period.Period) (*finance.ClientMonth, error) {
	query := `SELECT ` + selectMonthColumns + ` FROM client_months cm
		WHERE cm.client_id = $1 AND cm.year = $2 AND cm.month = $3`

	m, err := scanMonth(s.db.QueryRowContext(ctx, query, clientID, p.Year, p.Month))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, finance.ErrNotFound
		}

		return nil, fmt.Errorf("getting client month: %w", err)
	}

	return m, nil
}

func (s *Store) GetMonthByID(ctx context.Context, id uuid.UUID) (*finance.ClientMonth, error) {
	query := `SELECT ` + selectMonthColumns + ` FROM client_months cm WHERE cm.id = $1`

	m, err := scanMonth(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, finance.ErrNotFound
		}

		return nil, fmt.Errorf("getting client month: %w", err)
	}

	return m, nil
}

// CreateMonth inserts m. A row for the same (client, year, month) yields
// finance.ErrConstraintViolation.
func (s *Store) CreateMonth(ctx context.Context, m *finance.ClientMonth) error {
	query := `
		INSERT INTO client_months (client_id, year, month, locked, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query, m.ClientID, m.Period.Year, m.Period.Month, m.Locked).
		Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return mapWriteErr(err, "creating client month")
	}

	return nil
}

func (s *Store) SetMonthLocked(ctx context.Context, id uuid.UUID, locked bool) error {
	res, err := s.db.ExecContext(ctx, `UPDATE client_months SET locked = $1 WHERE id = $2`, locked, id)
	if err != nil {
		return fmt.Errorf("locking client month: %w", err)
	}

	return requireRow(res, "locking client month")
}

// DeleteEmptyMonth removes the month only while nothing references it.
func (s *Store) DeleteEmptyMonth(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM client_months cm
		WHERE cm.id = $1
		  AND NOT EXISTS (SELECT 1 FROM housing_supports WHERE client_month_id = cm.id)
		  AND NOT EXISTS (SELECT 1 FROM rent_payments WHERE client_month_id = cm.id)
		  AND NOT EXISTS (SELECT 1 FROM lth_payments WHERE client_month_id = cm.id)
		  AND NOT EXISTS (SELECT 1 FROM expenses WHERE client_month_id = cm.id)
		  AND NOT EXISTS (SELECT 1 FROM pool_funds WHERE client_month_id = cm.id)
	`

	if _, err := s.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deleting empty client month: %w", err)
	}

	return nil
}

func requireRow(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}

	if n == 0 {
		return finance.ErrNotFound
	}

	return nil
}

const selectHousingSupportColumns = `id, client_month_id, amount, received_date, created_by, created_at, updated_at`

func scanHousingSupport(s scanner) (*finance.HousingSupport, error) {
	var (
		hs        finance.HousingSupport
		createdBy *uuid.UUID
	)

	if err := s.Scan(&hs.ID, &hs.ClientMonthID, &hs.Amount, &hs.ReceivedDate, &createdBy, &hs.CreatedAt, &hs.UpdatedAt); err != nil {
		return nil, err
	}

	if createdBy != nil {
		hs.CreatedBy = *createdBy
	}

	return &hs, nil
}

func (s *Store) GetHousingSupport(ctx context.Context, clientMonthID uuid.UUID) (*finance.HousingSupport, error) {
	query := `SELECT ` + selectHousingSupportColumns + ` FROM housing_supports WHERE client_month_id = $1`

	hs, err := scanHousingSupport(s.db.QueryRowContext(ctx, query, clientMonthID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, finance.ErrNotFound
		}

		return nil, fmt.Errorf("getting housing support: %w", err)
	}

	return hs, nil
}

// UpsertHousingSupport writes the month's single housing support row.
func (s *Store) UpsertHousingSupport(ctx context.Context, hs *finance.HousingSupport) error {
	query := `
		INSERT INTO housing_supports (client_month_id, amount, received_date, created_by, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (client_month_id) DO UPDATE
		SET amount = EXCLUDED.amount, received_date = EXCLUDED.received_date, updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query, hs.ClientMonthID, hs.Amount, hs.ReceivedDate, hs.CreatedBy).
		Scan(&hs.ID, &hs.CreatedAt, &hs.UpdatedAt)
	if err != nil {
		return mapWriteErr(err, "upserting housing support")
	}

	return nil
}

const selectRentColumns = `id, client_month_id, expected_amount, paid_amount, paid_date, confirmed, created_by, created_at, updated_at`

func scanRent(s scanner) (*finance.RentPayment, error) {
	var (
		rp        finance.RentPayment
		createdBy *uuid.UUID
	)

	if err := s.Scan(&rp.ID, &rp.ClientMonthID, &rp.ExpectedAmount, &rp.PaidAmount, &rp.PaidDate, &rp.Confirmed,
		&createdBy, &rp.CreatedAt, &rp.UpdatedAt); err != nil {
		return nil, err
	}

	if createdBy != nil {
		rp.CreatedBy = *createdBy
	}

	return &rp, nil
}

func (s *Store) GetRentPayment(ctx context.Context, clientMonthID uuid.UUID) (*finance.RentPayment, error) {
	query := `SELECT ` + selectRentColumns + ` FROM rent_payments WHERE client_month_id = $1`

	rp, err := scanRent(s.db.QueryRowContext(ctx, query, clientMonthID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, finance.ErrNotFound
		}

		return nil, fmt.Errorf("getting rent payment: %w", err)
	}

	return rp, nil
}

func (s *Store) UpsertRentPayment(ctx context.Context, rp *finance.RentPayment) error {
	query := `
		INSERT INTO rent_payments (client_month_id, expected_amount, paid_amount, paid_date, confirmed, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (client_month_id) DO UPDATE
		SET expected_amount = EXCLUDED.expected_amount, paid_amount = EXCLUDED.paid_amount,
		    paid_date = EXCLUDED.paid_date, confirmed = EXCLUDED.confirmed, updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		rp.ClientMonthID, rp.ExpectedAmount, rp.PaidAmount, rp.PaidDate, rp.Confirmed, rp.CreatedBy,
	).Scan(&rp.ID, &rp.CreatedAt, &rp.UpdatedAt)
	if err != nil {
		return mapWriteErr(err, "upserting rent payment")
	}

	return nil
}

const selectLthColumns = `id, client_month_id, amount, received_date, created_by, created_at, updated_at`

func scanLth(s scanner) (*finance.LthPayment, error) {
	var (
		l         finance.LthPayment
		createdBy *uuid.UUID
	)

	if err := s.Scan(&l.ID, &l.ClientMonthID, &l.Amount, &l.ReceivedDate, &createdBy, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return nil, err
	}

	if createdBy != nil {
		l.CreatedBy = *createdBy
	}

	return &l, nil
}

func (s *Store) CreateLthPayment(ctx context.Context, l *finance.LthPayment) error {
	query := `
		INSERT INTO lth_payments (client_month_id, amount, received_date, created_by, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query, l.ClientMonthID, l.Amount, l.ReceivedDate, l.CreatedBy).
		Scan(&l.ID, &l.CreatedAt)
	if err != nil {
		return mapWriteErr(err, "creating lth payment")
	}

	return nil
}

func (s *Store) GetLthPayment(ctx context.Context, id uuid.UUID) (*finance.LthPayment, error) {
	query := `SELECT ` + selectLthColumns + ` FROM lth_payments WHERE id = $1`

	l, err := scanLth(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, finance.ErrNotFound
		}

		return nil, fmt.Errorf("getting lth payment: %w", err)
	}

	return l, nil
}

func (s *Store) UpdateLthPayment(ctx context.Context, l *finance.LthPayment) error {
	query := `
		UPDATE lth_payments SET amount = $1, received_date = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING updated_at
	`

	err := s.db.QueryRowContext(ctx, query, l.Amount, l.ReceivedDate, l.ID).Scan(&l.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return finance.ErrNotFound
		}

		return fmt.Errorf("updating lth payment: %w", err)
	}

	return nil
}

func (s *Store) DeleteLthPayment(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM lth_payments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting lth payment: %w", err)
	}

	return requireRow(res, "deleting lth payment")
}

const selectExpenseColumns = `
	e.id, e.client_month_id, e.category_id, ec.name, e.amount, e.expense_date, e.notes,
	e.created_by, e.created_at, e.updated_at
`

func scanExpense(s scanner) (*finance.Expense, error) {
	var (
		e         finance.Expense
		category  sql.NullString
		createdBy *uuid.UUID
	)

	if err := s.Scan(&e.ID, &e.ClientMonthID, &e.CategoryID, &category, &e.Amount, &e.Date, &e.Notes,
		&createdBy, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}

	e.Category = category.String
	if createdBy != nil {
		e.CreatedBy = *createdBy
	}

	return &e, nil
}

func (s *Store) CreateExpense(ctx context.Context, e *finance.Expense) error {
	query := `
		INSERT INTO expenses (client_month_id, category_id, amount, expense_date, notes, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query, e.ClientMonthID, e.CategoryID, e.Amount, e.Date, e.Notes, e.CreatedBy).
		Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return mapWriteErr(err, "creating expense")
	}

	return nil
}

func (s *Store) GetExpense(ctx context.Context, id uuid.UUID) (*finance.Expense, error) {
	query := `SELECT ` + selectExpenseColumns + `
		FROM expenses e
		LEFT JOIN expense_categories ec ON e.category_id = ec.id
		WHERE e.id = $1`

	e, err := scanExpense(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, finance.ErrNotFound
		}

		return nil, fmt.Errorf("getting expense: %w", err)
	}

	return e, nil
}

func (s *Store) UpdateExpense(ctx context.Context, e *finance.Expense) error {
	query := `
		UPDATE expenses SET category_id = $1, amount = $2, expense_date = $3, notes = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING updated_at
	`

	err := s.db.QueryRowContext(ctx, query, e.CategoryID, e.Amount, e.Date, e.Notes, e.ID).Scan(&e.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return finance.ErrNotFound
		}

		return mapWriteErr(err, "updating expense")
	}

	return nil
}

func (s *Store) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting expense: %w", err)
	}

	return requireRow(res, "deleting expense")
}

func (s *Store) CreateExpenseDocument(ctx context.Context, d *finance.ExpenseDocument) error {
	query := `
		INSERT INTO expense_documents (expense_id, file_name, storage_key, uploaded_by, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query, d.ExpenseID, d.FileName, d.StorageKey, d.UploadedBy).
		Scan(&d.ID, &d.CreatedAt)
	if err != nil {
		return mapWriteErr(err, "creating expense document")
	}

	return nil
}

func (s *Store) ListExpenseDocuments(ctx context.Context, expenseID uuid.UUID) ([]*finance.ExpenseDocument, error) {
	query := `
		SELECT id, expense_id, file_name, storage_key, uploaded_by, created_at
		FROM expense_documents
		WHERE expense_id = $1
		ORDER BY created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, expenseID)
	if err != nil {
		return nil, fmt.Errorf("listing expense documents: %w", err)
	}
	defer rows.Close()

	var docs []*finance.ExpenseDocument

	for rows.Next() {
		var (
			d          finance.ExpenseDocument
			uploadedBy *uuid.UUID
		)

		if err := rows.Scan(&d.ID, &d.ExpenseID, &d.FileName, &d.StorageKey, &uploadedBy, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning expense document: %w", err)
		}

		if uploadedBy != nil {
			d.UploadedBy = *uploadedBy
		}

		docs = append(docs, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating expense document rows: %w", err)
	}

	return docs, nil
}
