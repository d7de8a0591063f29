package client

import (
	"time"

	"github.com/google/uuid"

	"github.com/loqeyusa/housingsupport/internal/audit"
	"github.com/loqeyusa/housingsupport/internal/client"
	"github.com/loqeyusa/housingsupport/internal/finance"
	"github.com/loqeyusa/housingsupport/internal/money"
	"github.com/loqeyusa/housingsupport/internal/poolfund"
	"github.com/loqeyusa/housingsupport/internal/report"
)

type clientResponse struct {
	ID                   uuid.UUID  `json:"id"`
	Name                 string     `json:"name"`
	Phone                string     `json:"phone,omitempty"`
	CaseNumber           string     `json:"caseNumber,omitempty"`
	CountyID             *uuid.UUID `json:"countyId,omitempty"`
	County               string     `json:"county,omitempty"`
	ServiceTypeID        *uuid.UUID `json:"serviceTypeId,omitempty"`
	ServiceType          string     `json:"serviceType,omitempty"`
	ServiceStatusID      *uuid.UUID `json:"serviceStatusId,omitempty"`
	ServiceStatus        string     `json:"serviceStatus,omitempty"`
	StatusOverride       bool       `json:"statusOverride"`
	StatusOverrideReason string     `json:"statusOverrideReason,omitempty"`
	Active               bool       `json:"active"`
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            *time.Time `json:"updatedAt,omitempty"`
}

func toResponse(c *client.Client) clientResponse {
	return clientResponse{
		ID:                   c.ID,
		Name:                 c.Name,
		Phone:                c.Phone,
		CaseNumber:           c.CaseNumber,
		CountyID:             c.CountyID,
		County:               c.County,
		ServiceTypeID:        c.ServiceTypeID,
		ServiceType:          c.ServiceType,
		ServiceStatusID:      c.ServiceStatusID,
		ServiceStatus:        c.ServiceStatus,
		StatusOverride:       c.StatusOverride,
		StatusOverrideReason: c.StatusOverrideReason,
		Active:               c.Active,
		CreatedAt:            c.CreatedAt,
		UpdatedAt:            c.UpdatedAt,
	}
}

func toResponseList(cs []*client.Client) []clientResponse {
	resp := make([]clientResponse, len(cs))
	for i, c := range cs {
		resp[i] = toResponse(c)
	}

	return resp
}

type documentResponse struct {
	ID         uuid.UUID           `json:"id"`
	Type       client.DocumentType `json:"type"`
	FileName   string              `json:"fileName"`
	StorageKey string              `json:"storageKey,omitempty"`
	StartDate  *time.Time          `json:"startDate,omitempty"`
	ExpiryDate *time.Time          `json:"expiryDate,omitempty"`
	UploadedBy uuid.UUID           `json:"uploadedBy"`
	CreatedAt  time.Time           `json:"createdAt"`
}

func toDocumentResponse(d *client.Document) documentResponse {
	return documentResponse{
		ID:         d.ID,
		Type:       d.Type,
		FileName:   d.FileName,
		StorageKey: d.StorageKey,
		StartDate:  d.StartDate,
		ExpiryDate: d.ExpiryDate,
		UploadedBy: d.UploadedBy,
		CreatedAt:  d.CreatedAt,
	}
}

type referenceResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type historyResponse struct {
	Field     string    `json:"field"`
	OldValue  string    `json:"oldValue"`
	NewValue  string    `json:"newValue"`
	ChangedBy uuid.UUID `json:"changedBy"`
	ChangedAt time.Time `json:"changedAt"`
}

func toHistoryResponse(entries []audit.HistoryEntry) []historyResponse {
	resp := make([]historyResponse, len(entries))
	for i, e := range entries {
		resp[i] = historyResponse{
			Field:     e.Field,
			OldValue:  e.OldValue,
			NewValue:  e.NewValue,
			ChangedBy: e.ChangedBy,
			ChangedAt: e.ChangedAt,
		}
	}

	return resp
}

type housingSupportResponse struct {
	ID           uuid.UUID   `json:"id"`
	Amount       money.Money `json:"amount"`
	ReceivedDate *time.Time  `json:"receivedDate,omitempty"`
}

type rentResponse struct {
	ID             uuid.UUID   `json:"id"`
	ExpectedAmount money.Money `json:"expectedAmount"`
	PaidAmount     money.Money `json:"paidAmount"`
	PaidDate       *time.Time  `json:"paidDate,omitempty"`
	Confirmed      bool        `json:"confirmed"`
}

type lthResponse struct {
	ID           uuid.UUID   `json:"id"`
	Amount       money.Money `json:"amount"`
	ReceivedDate *time.Time  `json:"receivedDate,omitempty"`
}

type expenseResponse struct {
	ID         uuid.UUID   `json:"id"`
	CategoryID *uuid.UUID  `json:"categoryId,omitempty"`
	Category   string      `json:"category,omitempty"`
	Amount     money.Money `json:"amount"`
	Date       *time.Time  `json:"date,omitempty"`
	Notes      string      `json:"notes,omitempty"`
}

type monthDetailResponse struct {
	ClientID       uuid.UUID               `json:"clientId"`
	Year           int                     `json:"year"`
	Month          int                     `json:"month"`
	ClientMonthID  *uuid.UUID              `json:"clientMonthId"`
	Locked         bool                    `json:"locked"`
	EditDeadline   time.Time               `json:"editDeadline"`
	Editable       bool                    `json:"editable"`
	BlockedReason  string                  `json:"blockedReason,omitempty"`
	Totals         finance.Totals          `json:"totals"`
	Decision       poolfund.Decision       `json:"poolFund"`
	HousingSupport *housingSupportResponse `json:"housingSupport"`
	Rent           *rentResponse           `json:"rent"`
	Lth            []lthResponse           `json:"lthPayments"`
	Expenses       []expenseResponse       `json:"expenses"`
}

func toMonthDetailResponse(d *report.MonthDetail) monthDetailResponse {
	resp := monthDetailResponse{
		ClientID:      d.ClientID,
		Year:          d.Year,
		Month:         d.Month,
		ClientMonthID: d.ClientMonthID,
		Locked:        d.Locked,
		EditDeadline:  d.EditDeadline,
		Editable:      d.Editable,
		BlockedReason: d.BlockedReason,
		Totals:        d.Totals,
		Decision:      d.Decision,
		Lth:           make([]lthResponse, 0, len(d.Lth)),
		Expenses:      make([]expenseResponse, 0, len(d.Expenses)),
	}

	if hs := d.HousingSupport; hs != nil {
		resp.HousingSupport = &housingSupportResponse{ID: hs.ID, Amount: hs.Amount, ReceivedDate: hs.ReceivedDate}
	}

	if rp := d.Rent; rp != nil {
		resp.Rent = &rentResponse{
			ID:             rp.ID,
			ExpectedAmount: rp.ExpectedAmount,
			PaidAmount:     rp.PaidAmount,
			PaidDate:       rp.PaidDate,
			Confirmed:      rp.Confirmed,
		}
	}

	for _, l := range d.Lth {
		resp.Lth = append(resp.Lth, lthResponse{ID: l.ID, Amount: l.Amount, ReceivedDate: l.ReceivedDate})
	}

	for _, e := range d.Expenses {
		resp.Expenses = append(resp.Expenses, expenseResponse{
			ID:         e.ID,
			CategoryID: e.CategoryID,
			Category:   e.Category,
			Amount:     e.Amount,
			Date:       e.Date,
			Notes:      e.Notes,
		})
	}

	return resp
}
