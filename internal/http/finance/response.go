package finance

import (
	"time"

	"github.com/google/uuid"

	"github.com/loqeyusa/housingsupport/internal/finance"
	"github.com/loqeyusa/housingsupport/internal/money"
)

type monthResponse struct {
	ID       uuid.UUID `json:"id"`
	ClientID uuid.UUID `json:"clientId"`
	Year     int       `json:"year"`
	Month    int       `json:"month"`
	Locked   bool      `json:"locked"`
}

func toMonthResponse(m *finance.ClientMonth) monthResponse {
	return monthResponse{
		ID:       m.ID,
		ClientID: m.ClientID,
		Year:     m.Period.Year,
		Month:    m.Period.Month,
		Locked:   m.Locked,
	}
}

type housingSupportResponse struct {
	ID            uuid.UUID   `json:"id"`
	ClientMonthID uuid.UUID   `json:"clientMonthId"`
	Amount        money.Money `json:"amount"`
	ReceivedDate  *time.Time  `json:"receivedDate,omitempty"`
	UpdatedAt     *time.Time  `json:"updatedAt,omitempty"`
}

func toHousingSupportResponse(hs *finance.HousingSupport) housingSupportResponse {
	return housingSupportResponse{
		ID:            hs.ID,
		ClientMonthID: hs.ClientMonthID,
		Amount:        hs.Amount,
		ReceivedDate:  hs.ReceivedDate,
		UpdatedAt:     hs.UpdatedAt,
	}
}

type rentResponse struct {
	ID             uuid.UUID   `json:"id"`
	ClientMonthID  uuid.UUID   `json:"clientMonthId"`
	ExpectedAmount money.Money `json:"expectedAmount"`
	PaidAmount     money.Money `json:"paidAmount"`
	PaidDate       *time.Time  `json:"paidDate,omitempty"`
	Confirmed      bool        `json:"confirmed"`
}

func toRentResponse(rp *finance.RentPayment) rentResponse {
	return rentResponse{
		ID:             rp.ID,
		ClientMonthID:  rp.ClientMonthID,
		ExpectedAmount: rp.ExpectedAmount,
		PaidAmount:     rp.PaidAmount,
		PaidDate:       rp.PaidDate,
		Confirmed:      rp.Confirmed,
	}
}

type lthResponse struct {
	ID            uuid.UUID   `json:"id"`
	ClientMonthID uuid.UUID   `json:"clientMonthId"`
	Amount        money.Money `json:"amount"`
	ReceivedDate  *time.Time  `json:"receivedDate,omitempty"`
}

func toLthResponse(l *finance.LthPayment) lthResponse {
	return lthResponse{ID: l.ID, ClientMonthID: l.ClientMonthID, Amount: l.Amount, ReceivedDate: l.ReceivedDate}
}

type expenseResponse struct {
	ID            uuid.UUID   `json:"id"`
	ClientMonthID uuid.UUID   `json:"clientMonthId"`
	CategoryID    *uuid.UUID  `json:"categoryId,omitempty"`
	Category      string      `json:"category,omitempty"`
	Amount        money.Money `json:"amount"`
	Date          *time.Time  `json:"date,omitempty"`
	Notes         string      `json:"notes,omitempty"`
}

func toExpenseResponse(e *finance.Expense) expenseResponse {
	return expenseResponse{
		ID:            e.ID,
		ClientMonthID: e.ClientMonthID,
		CategoryID:    e.CategoryID,
		Category:      e.Category,
		Amount:        e.Amount,
		Date:          e.Date,
		Notes:         e.Notes,
	}
}

type expenseDocumentResponse struct {
	ID         uuid.UUID `json:"id"`
	ExpenseID  uuid.UUID `json:"expenseId"`
	FileName   string    `json:"fileName"`
	StorageKey string    `json:"storageKey,omitempty"`
	UploadedBy uuid.UUID `json:"uploadedBy"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toExpenseDocumentResponse(d *finance.ExpenseDocument) expenseDocumentResponse {
	return expenseDocumentResponse{
		ID:         d.ID,
		ExpenseID:  d.ExpenseID,
		FileName:   d.FileName,
		StorageKey: d.StorageKey,
		UploadedBy: d.UploadedBy,
		CreatedAt:  d.CreatedAt,
	}
}
