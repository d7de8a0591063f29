package client

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound        = errors.New("client not found")
	ErrInvalidDocument = errors.New("invalid document")
	ErrInvalidClient   = errors.New("invalid client")
	ErrDuplicateCase   = errors.New("case number already in use")
)

// Client is a housing-support recipient.
type Client struct {
	ID         uuid.UUID
	Name       string
	Phone      string
	CaseNumber string

	CountyID        *uuid.UUID
	County          string // Loaded via JOIN
	ServiceTypeID   *uuid.UUID
	ServiceType     string // Loaded via JOIN
	ServiceStatusID *uuid.UUID
	ServiceStatus   string // Loaded via JOIN

	// StatusOverride lets a super admin keep a client editable even
	// though their service agreement has expired.
	StatusOverride       bool
	StatusOverrideReason string

	Active    bool
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// DocumentType tags what a client document is.
type DocumentType string

const (
	DocumentAwardLetter      DocumentType = "award_letter"
	DocumentLease            DocumentType = "lease"
	DocumentPolicy           DocumentType = "policy"
	DocumentServiceAgreement DocumentType = "service_agreement"
	DocumentOther            DocumentType = "other"
)

func (t DocumentType) Valid() bool {
	switch t {
	case DocumentAwardLetter, DocumentLease, DocumentPolicy, DocumentServiceAgreement, DocumentOther:
		return true
	}

	return false
}

// Document is file metadata attached to a client. The file itself lives in
// external storage under StorageKey.
type Document struct {
	ID         uuid.UUID
	ClientID   uuid.UUID
	Type       DocumentType
	FileName   string
	StorageKey string
	StartDate  *time.Time
	ExpiryDate *time.Time
	UploadedBy uuid.UUID
	CreatedAt  time.Time
}

// ReferenceKind names one of the lookup tables.
type ReferenceKind string

const (
	RefCounty          ReferenceKind = "counties"
	RefServiceType     ReferenceKind = "service_types"
	RefServiceStatus   ReferenceKind = "service_statuses"
	RefExpenseCategory ReferenceKind = "expense_categories"
)

func (k ReferenceKind) Valid() bool {
	switch k {
	case RefCounty, RefServiceType, RefServiceStatus, RefExpenseCategory:
		return true
	}

	return false
}

// Reference is a row of a lookup table.
type Reference struct {
	ID   uuid.UUID
	Name string
}

// LatestExpiring returns the document with the latest expiry date, ignoring
// documents without one. It returns nil when none has an expiry date.
func LatestExpiring(docs []*Document) *Document {
	var latest *Document

	for _, d := range docs {
		if d.ExpiryDate == nil {
			continue
		}

		if latest == nil || d.ExpiryDate.After(*latest.ExpiryDate) {
			latest = d
		}
	}

	return latest
}
