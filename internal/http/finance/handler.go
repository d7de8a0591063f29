package finance

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/loqeyusa/housingsupport/internal/auth"
	"github.com/loqeyusa/housingsupport/internal/finance"
	"github.com/loqeyusa/housingsupport/internal/http/respond"
	"github.com/loqeyusa/housingsupport/internal/money"
	"github.com/loqeyusa/housingsupport/internal/period"
)

type Handler struct {
	svc *finance.Service
}

func NewHandler(svc *finance.Service) *Handler {
	return &Handler{svc: svc}
}

// MonthRoutes registers the per-month mutations under a client router.
func (h *Handler) MonthRoutes(r chi.Router) {
	const month = "/{id}/months/{year}/{month}"

	r.Put(month+"/housing-support", h.setHousingSupport)
	r.Put(month+"/rent", h.setRent)
	r.Post(month+"/lth", h.addLth)
	r.Post(month+"/expenses", h.addExpense)
	r.Post(month+"/lock", h.lock)
}

// Routes registers the row-level mutations and the bulk update.
func (h *Handler) Routes(r chi.Router) {
	r.Patch("/lth/{id}", h.updateLth)
	r.Delete("/lth/{id}", h.deleteLth)
	r.Patch("/expenses/{id}", h.updateExpense)
	r.Delete("/expenses/{id}", h.deleteExpense)
	r.Get("/expenses/{id}/documents", h.listExpenseDocuments)
	r.Post("/expenses/{id}/documents", h.attachExpenseDocument)
	r.Post("/housing-support/bulk", h.bulkHousingSupport)
}

type monthTarget struct {
	actor    auth.Actor
	clientID uuid.UUID
	period   period.Period
}

// target reads the actor, client id and period every month route needs.
func target(r *http.Request) (monthTarget, error) {
	var (
		t   monthTarget
		err error
	)

	if t.actor, err = respond.Actor(r); err != nil {
		return t, err
	}

	if t.clientID, err = respond.UUIDParam(r, "id"); err != nil {
		return t, err
	}

	t.period, err = respond.PeriodParams(r)

	return t, err
}

type housingSupportRequest struct {
	Amount       money.Money `json:"amount"`
	ReceivedDate *string     `json:"receivedDate"`
}

func (h *Handler) setHousingSupport(w http.ResponseWriter, r *http.Request) {
	t, err := target(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var req housingSupportRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	received, err := respond.Date(req.ReceivedDate)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	hs, err := h.svc.SetHousingSupport(r.Context(), t.actor, t.clientID, t.period, finance.HousingSupportParams{
		Amount:       req.Amount,
		ReceivedDate: received,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toHousingSupportResponse(hs))
}

type rentRequest struct {
	ExpectedAmount money.Money `json:"expectedAmount"`
	PaidAmount     money.Money `json:"paidAmount"`
	PaidDate       *string     `json:"paidDate"`
	Confirmed      bool        `json:"confirmed"`
}

func (h *Handler) setRent(w http.ResponseWriter, r *http.Request) {
	t, err := target(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var req rentRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	paid, err := respond.Date(req.PaidDate)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	rp, err := h.svc.SetRentPayment(r.Context(), t.actor, t.clientID, t.period, finance.RentParams{
		ExpectedAmount: req.ExpectedAmount,
		PaidAmount:     req.PaidAmount,
		PaidDate:       paid,
		Confirmed:      req.Confirmed,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toRentResponse(rp))
}

type lthRequest struct {
	Amount       money.Money `json:"amount"`
	ReceivedDate *string     `json:"receivedDate"`
}

func (req lthRequest) params() (finance.LthParams, error) {
	received, err := respond.Date(req.ReceivedDate)
	if err != nil {
		return finance.LthParams{}, err
	}

	return finance.LthParams{Amount: req.Amount, ReceivedDate: received}, nil
}

func (h *Handler) addLth(w http.ResponseWriter, r *http.Request) {
	t, err := target(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var req lthRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	params, err := req.params()
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	l, err := h.svc.AddLthPayment(r.Context(), t.actor, t.clientID, t.period, params)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toLthResponse(l))
}

func (h *Handler) updateLth(w http.ResponseWriter, r *http.Request) {
	actor, err := respond.Actor(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	id, err := respond.UUIDParam(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var req lthRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	params, err := req.params()
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	l, err := h.svc.UpdateLthPayment(r.Context(), actor, id, params)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toLthResponse(l))
}

func (h *Handler) deleteLth(w http.ResponseWriter, r *http.Request) {
	actor, err := respond.Actor(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	id, err := respond.UUIDParam(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	if err := h.svc.DeleteLthPayment(r.Context(), actor, id); err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type expenseRequest struct {
	CategoryID *uuid.UUID  `json:"categoryId"`
	Amount     money.Money `json:"amount"`
	Date       *string     `json:"date"`
	Notes      string      `json:"notes"`
}

func (req expenseRequest) params() (finance.ExpenseParams, error) {
	date, err := respond.Date(req.Date)
	if err != nil {
		return finance.ExpenseParams{}, err
	}

	return finance.ExpenseParams{CategoryID: req.CategoryID, Amount: req.Amount, Date: date, Notes: req.Notes}, nil
}

func (h *Handler) addExpense(w http.ResponseWriter, r *http.Request) {
	t, err := target(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var req expenseRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	params, err := req.params()
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	e, err := h.svc.AddExpense(r.Context(), t.actor, t.clientID, t.period, params)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toExpenseResponse(e))
}

func (h *Handler) updateExpense(w http.ResponseWriter, r *http.Request) {
	actor, err := respond.Actor(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	id, err := respond.UUIDParam(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var req expenseRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	params, err := req.params()
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	e, err := h.svc.UpdateExpense(r.Context(), actor, id, params)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toExpenseResponse(e))
}

func (h *Handler) deleteExpense(w http.ResponseWriter, r *http.Request) {
	actor, err := respond.Actor(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	id, err := respond.UUIDParam(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	if err := h.svc.DeleteExpense(r.Context(), actor, id); err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type expenseDocumentRequest struct {
	FileName   string `json:"fileName"`
	StorageKey string `json:"storageKey"`
}

func (h *Handler) attachExpenseDocument(w http.ResponseWriter, r *http.Request) {
	actor, err := respond.Actor(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	id, err := respond.UUIDParam(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var req expenseDocumentRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	d, err := h.svc.AttachExpenseDocument(r.Context(), actor, id, finance.ExpenseDocumentParams{
		FileName:   req.FileName,
		StorageKey: req.StorageKey,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toExpenseDocumentResponse(d))
}

func (h *Handler) listExpenseDocuments(w http.ResponseWriter, r *http.Request) {
	id, err := respond.UUIDParam(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	docs, err := h.svc.ListExpenseDocuments(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]expenseDocumentResponse, len(docs))
	for i, d := range docs {
		resp[i] = toExpenseDocumentResponse(d)
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) lock(w http.ResponseWriter, r *http.Request) {
	t, err := target(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	m, err := h.svc.LockMonth(r.Context(), t.actor, t.clientID, t.period)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toMonthResponse(m))
}

type bulkRequest struct {
	Year         int         `json:"year"`
	Month        int         `json:"month"`
	Amount       money.Money `json:"amount"`
	ReceivedDate *string     `json:"receivedDate"`
	ClientIDs    []uuid.UUID `json:"clientIds"`
}

// bulkHousingSupport answers 200 even when some clients failed; the body
// lists them.
func (h *Handler) bulkHousingSupport(w http.ResponseWriter, r *http.Request) {
	actor, err := respond.Actor(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var req bulkRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	received, err := respond.Date(req.ReceivedDate)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	p := period.Period{Year: req.Year, Month: req.Month}

	res, err := h.svc.BulkSetHousingSupport(r.Context(), actor, p, req.Amount, received, req.ClientIDs)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, res)
}
