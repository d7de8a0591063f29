package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/loqeyusa/housingsupport/internal/client"
	"github.com/loqeyusa/housingsupport/internal/database"
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

// Expected column order matches selectClientColumns.
func scanClient(s scanner) (*client.Client, error) {
	var c client.Client

	var county, serviceType, serviceStatus sql.NullString

	if err := s.Scan(
		&c.ID, &c.Name, &c.Phone, &c.CaseNumber,
		&c.CountyID, &county, &c.ServiceTypeID, &serviceType, &c.ServiceStatusID, &serviceStatus,
		&c.StatusOverride, &c.StatusOverrideReason, &c.Active, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}

	c.County = county.String
	c.ServiceType = serviceType.String
	c.ServiceStatus = serviceStatus.String

	return &c, nil
}

const selectClientColumns = `
	c.id, c.name, c.phone, c.case_number,
	c.county_id, co.name, c.service_type_id, st.name, c.service_status_id, ss.name,
	c.status_override, c.status_override_reason, c.active, c.created_at, c.updated_at
`

const clientJoins = `
	FROM clients c
	LEFT JOIN counties co ON c.county_id = co.id
	LEFT JOIN service_types st ON c.service_type_id = st.id
	LEFT JOIN service_statuses ss ON c.service_status_id = ss.id
`

func (s *Store) CreateClient(ctx context.Context, c *client.Client) error {
	query := `
		INSERT INTO clients (name, phone, case_number, county_id, service_type_id, service_status_id, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		c.Name, c.Phone, c.CaseNumber, c.CountyID, c.ServiceTypeID, c.ServiceStatusID, c.Active,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return client.ErrDuplicateCase
		}

		return fmt.Errorf("creating client: %w", err)
	}

	return nil
}

func (s *Store) GetClient(ctx context.Context, id uuid.UUID) (*client.Client, error) {
	query := `SELECT ` + selectClientColumns + clientJoins + ` WHERE c.id = $1`

	c, err := scanClient(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, client.ErrNotFound
		}

		return nil, fmt.Errorf("getting client: %w", err)
	}

	return c, nil
}

func (s *Store) GetClientByCaseNumber(ctx context.Context, caseNumber string) (*client.Client, error) {
	query := `SELECT ` + selectClientColumns + clientJoins + ` WHERE c.case_number = $1`

	c, err := scanClient(s.db.QueryRowContext(ctx, query, caseNumber))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, client.ErrNotFound
		}

		return nil, fmt.Errorf("getting client by case number: %w", err)
	}

	return c, nil
}

func (s *Store) ListClients(ctx context.Context, filter client.ListFilter) ([]*client.Client, error) {
	query := `SELECT ` + selectClientColumns + clientJoins + ` WHERE 1=1`

	var args []any

	argIdx := 1

	if filter.CountyID != nil {
		query += fmt.Sprintf(" AND c.county_id = $%d", argIdx)

		args = append(args, *filter.CountyID)
		argIdx++
	}

	if filter.ServiceTypeID != nil {
		query += fmt.Sprintf(" AND c.service_type_id = $%d", argIdx)

		args = append(args, *filter.ServiceTypeID)
		argIdx++
	}

	if filter.Active != nil {
		query += fmt.Sprintf(" AND c.active = $%d", argIdx)

		args = append(args, *filter.Active)
		argIdx++
	}

	if filter.Search != "" {
		query += fmt.Sprintf(" AND (c.name ILIKE $%d OR c.case_number ILIKE $%d)", argIdx, argIdx)

		args = append(args, "%"+filter.Search+"%")
	}

	query += " ORDER BY c.name ASC, c.id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing clients: %w", err)
	}
	defer rows.Close()

	var clients []*client.Client

	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning client: %w", err)
		}

		clients = append(clients, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating client rows: %w", err)
	}

	return clients, nil
}

func (s *Store) UpdateClient(ctx context.Context, c *client.Client) error {
	query := `
		UPDATE clients
		SET name = $1, phone = $2, case_number = $3, county_id = $4, service_type_id = $5,
		    service_status_id = $6, status_override = $7, status_override_reason = $8, active = $9,
		    updated_at = NOW()
		WHERE id = $10
		RETURNING updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		c.Name, c.Phone, c.CaseNumber, c.CountyID, c.ServiceTypeID,
		c.ServiceStatusID, c.StatusOverride, c.StatusOverrideReason, c.Active,
		c.ID,
	).Scan(&c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return client.ErrNotFound
		}

		if database.IsUniqueViolation(err) {
			return client.ErrDuplicateCase
		}

		return fmt.Errorf("updating client: %w", err)
	}

	return nil
}

func (s *Store) CreateDocument(ctx context.Context, d *client.Document) error {
	query := `
		INSERT INTO client_documents (client_id, type, file_name, storage_key, start_date, expiry_date, uploaded_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		d.ClientID, d.Type, d.FileName, d.StorageKey, d.StartDate, d.ExpiryDate, d.UploadedBy,
	).Scan(&d.ID, &d.CreatedAt)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return client.ErrNotFound
		}

		return fmt.Errorf("creating document: %w", err)
	}

	return nil
}

func (s *Store) ListDocuments(ctx context.Context, clientID uuid.UUID, docType *client.DocumentType) ([]*client.Document, error) {
	query := `
		SELECT id, client_id, type, file_name, storage_key, start_date, expiry_date, uploaded_by, created_at
		FROM client_documents
		WHERE client_id = $1`

	args := []any{clientID}

	if docType != nil {
		query += " AND type = $2"

		args = append(args, *docType)
	}

	query += " ORDER BY created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	defer rows.Close()

	var docs []*client.Document

	for rows.Next() {
		var (
			d          client.Document
			typ        string
			uploadedBy *uuid.UUID
		)

		if err := rows.Scan(&d.ID, &d.ClientID, &typ, &d.FileName, &d.StorageKey,
			&d.StartDate, &d.ExpiryDate, &uploadedBy, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning document: %w", err)
		}

		d.Type = client.DocumentType(typ)
		if uploadedBy != nil {
			d.UploadedBy = *uploadedBy
		}

		docs = append(docs, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating document rows: %w", err)
	}

	return docs, nil
}

// referenceTables maps each kind to its table. Kinds never reach the query
// string unless they are listed here.
var referenceTables = map[client.ReferenceKind]string{
	client.RefCounty:          "counties",
	client.RefServiceType:     "service_types",
	client.RefServiceStatus:   "service_statuses",
	client.RefExpenseCategory: "expense_categories",
}

func (s *Store) ListReferences(ctx context.Context, kind client.ReferenceKind) ([]client.Reference, error) {
	table, ok := referenceTables[kind]
	if !ok {
		return nil, fmt.Errorf("unknown reference kind %q", kind)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM `+table+` ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", table, err)
	}
	defer rows.Close()

	var refs []client.Reference

	for rows.Next() {
		var r client.Reference
		if err := rows.Scan(&r.ID, &r.Name); err != nil {
			return nil, fmt.Errorf("scanning %s: %w", table, err)
		}

		refs = append(refs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s rows: %w", table, err)
	}

	return refs, nil
}
