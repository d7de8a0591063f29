package client

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/loqeyusa/housingsupport/internal/audit"
	"github.com/loqeyusa/housingsupport/internal/auth"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=client
type Repository interface {
	CreateClient(ctx context.Context, c *Client) error
	GetClient(ctx context.Context, id uuid.UUID) (*Client, error)
	GetClientByCaseNumber(ctx context.Context, caseNumber string) (*Client, error)
	ListClients(ctx context.Context, filter ListFilter) ([]*Client, error)
	UpdateClient(ctx context.Context, c *Client) error

	CreateDocument(ctx context.Context, d *Document) error
	ListDocuments(ctx context.Context, clientID uuid.UUID, docType *DocumentType) ([]*Document, error)

	ListReferences(ctx context.Context, kind ReferenceKind) ([]Reference, error)
}

type Service struct {
	repo  Repository
	trail *audit.Recorder
}

func NewService(repo Repository, trail *audit.Recorder) *Service {
	return &Service{repo: repo, trail: trail}
}

type ListFilter struct {
	CountyID      *uuid.UUID
	ServiceTypeID *uuid.UUID
	Active        *bool
	Search        string
}

type CreateParams struct {
	Name            string
	Phone           string
	CaseNumber      string
	CountyID        *uuid.UUID
	ServiceTypeID   *uuid.UUID
	ServiceStatusID *uuid.UUID
}

func (s *Service) Create(ctx context.Context, actor auth.Actor, params CreateParams) (*Client, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidClient)
	}

	c := &Client{
		Name:            name,
		Phone:           strings.TrimSpace(params.Phone),
		CaseNumber:      strings.TrimSpace(params.CaseNumber),
		CountyID:        params.CountyID,
		ServiceTypeID:   params.ServiceTypeID,
		ServiceStatusID: params.ServiceStatusID,
		Active:          true,
	}
	if err := s.repo.CreateClient(ctx, c); err != nil {
		return nil, err
	}

	s.trail.Action(ctx, actor, audit.ActionCreate, audit.EntityClient, c.ID, nil, c)

	return c, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Client, error) {
	return s.repo.GetClient(ctx, id)
}

func (s *Service) GetByCaseNumber(ctx context.Context, caseNumber string) (*Client, error) {
	return s.repo.GetClientByCaseNumber(ctx, strings.TrimSpace(caseNumber))
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Client, error) {
	return s.repo.ListClients(ctx, filter)
}

type UpdateParams struct {
	Name            *string
	Phone           *string
	CaseNumber      *string
	CountyID        *uuid.UUID
	ServiceTypeID   *uuid.UUID
	ServiceStatusID *uuid.UUID
	Active          *bool
}

// Update applies the non-nil fields and records one history entry per
// changed field.
func (s *Service) Update(ctx context.Context, actor auth.Actor, id uuid.UUID, params UpdateParams) (*Client, error) {
	c, err := s.repo.GetClient(ctx, id)
	if err != nil {
		return nil, err
	}

	before := *c

	var changes []audit.Change

	if params.Name != nil {
		name := strings.TrimSpace(*params.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name is required", ErrInvalidClient)
		}

		changes = audit.Diff(changes, "name", c.Name, name)
		c.Name = name
	}

	if params.Phone != nil {
		changes = audit.Diff(changes, "phone", c.Phone, *params.Phone)
		c.Phone = *params.Phone
	}

	if params.CaseNumber != nil {
		changes = audit.Diff(changes, "case_number", c.CaseNumber, *params.CaseNumber)
		c.CaseNumber = *params.CaseNumber
	}

	if params.CountyID != nil {
		changes = audit.Diff(changes, "county_id", idString(c.CountyID), params.CountyID.String())
		c.CountyID = params.CountyID
	}

	if params.ServiceTypeID != nil {
		changes = audit.Diff(changes, "service_type_id", idString(c.ServiceTypeID), params.ServiceTypeID.String())
		c.ServiceTypeID = params.ServiceTypeID
	}

	if params.ServiceStatusID != nil {
		changes = audit.Diff(changes, "service_status_id", idString(c.ServiceStatusID), params.ServiceStatusID.String())
		c.ServiceStatusID = params.ServiceStatusID
	}

	if params.Active != nil {
		changes = audit.Diff(changes, "active", strconv.FormatBool(c.Active), strconv.FormatBool(*params.Active))
		c.Active = *params.Active
	}

	if len(changes) == 0 {
		return c, nil
	}

	if err := s.repo.UpdateClient(ctx, c); err != nil {
		return nil, err
	}

	s.trail.Changes(ctx, actor, c.ID, changes)
	s.trail.Action(ctx, actor, audit.ActionUpdate, audit.EntityClient, c.ID, &before, c)

	return c, nil
}

// SetStatusOverride turns the manual status override on or off. Only super
// admins may call it.
func (s *Service) SetStatusOverride(ctx context.Context, actor auth.Actor, id uuid.UUID, active bool, reason string) (*Client, error) {
	if !actor.IsSuperAdmin() {
		return nil, auth.ErrForbidden
	}

	c, err := s.repo.GetClient(ctx, id)
	if err != nil {
		return nil, err
	}

	reason = strings.TrimSpace(reason)
	if !active {
		reason = ""
	}

	before := *c

	var changes []audit.Change
	changes = audit.Diff(changes, "status_override", strconv.FormatBool(c.StatusOverride), strconv.FormatBool(active))
	changes = audit.Diff(changes, "status_override_reason", c.StatusOverrideReason, reason)

	if len(changes) == 0 {
		return c, nil
	}

	c.StatusOverride = active
	c.StatusOverrideReason = reason

	if err := s.repo.UpdateClient(ctx, c); err != nil {
		return nil, err
	}

	s.trail.Changes(ctx, actor, c.ID, changes)
	s.trail.Action(ctx, actor, audit.ActionUpdate, audit.EntityClient, c.ID, &before, c)

	return c, nil
}

type DocumentParams struct {
	Type       DocumentType
	FileName   string
	StorageKey string
	StartDate  *time.Time
	ExpiryDate *time.Time
}

func (s *Service) AddDocument(ctx context.Context, actor auth.Actor, clientID uuid.UUID, params DocumentParams) (*Document, error) {
	if !params.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidDocument, params.Type)
	}

	if strings.TrimSpace(params.FileName) == "" {
		return nil, fmt.Errorf("%w: file name is required", ErrInvalidDocument)
	}

	if params.StartDate != nil && params.ExpiryDate != nil && params.ExpiryDate.Before(*params.StartDate) {
		return nil, fmt.Errorf("%w: expiry date is before start date", ErrInvalidDocument)
	}

	if _, err := s.repo.GetClient(ctx, clientID); err != nil {
		return nil, err
	}

	d := &Document{
		ClientID:   clientID,
		Type:       params.Type,
		FileName:   strings.TrimSpace(params.FileName),
		StorageKey: params.StorageKey,
		StartDate:  params.StartDate,
		ExpiryDate: params.ExpiryDate,
		UploadedBy: actor.UserID,
	}
	if err := s.repo.CreateDocument(ctx, d); err != nil {
		return nil, err
	}

	s.trail.Action(ctx, actor, audit.ActionCreate, audit.EntityClientDocument, d.ID, nil, d)

	return d, nil
}

func (s *Service) ListDocuments(ctx context.Context, clientID uuid.UUID) ([]*Document, error) {
	return s.repo.ListDocuments(ctx, clientID, nil)
}

// LatestServiceAgreement returns the client's service agreement with the
// latest expiry date, or nil when there is none with an expiry date.
func (s *Service) LatestServiceAgreement(ctx context.Context, clientID uuid.UUID) (*Document, error) {
	docType := DocumentServiceAgreement

	docs, err := s.repo.ListDocuments(ctx, clientID, &docType)
	if err != nil {
		return nil, fmt.Errorf("listing service agreements: %w", err)
	}

	return LatestExpiring(docs), nil
}

func (s *Service) References(ctx context.Context, kind ReferenceKind) ([]Reference, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown reference kind %q", kind)
	}

	return s.repo.ListReferences(ctx, kind)
}

func (s *Service) History(ctx context.Context, clientID uuid.UUID) ([]audit.HistoryEntry, error) {
	return s.trail.History(ctx, clientID)
}

func idString(id *uuid.UUID) string {
	if id == nil {
		return ""
	}

	return id.String()
}
