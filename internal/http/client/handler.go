package client

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/loqeyusa/housingsupport/internal/client"
	authhttp "github.com/loqeyusa/housingsupport/internal/http/auth"
	"github.com/loqeyusa/housingsupport/internal/http/respond"
	"github.com/loqeyusa/housingsupport/internal/report"
)

type Handler struct {
	svc     *client.Service
	reports *report.Service
	now     func() time.Time
}

func NewHandler(svc *client.Service, reports *report.Service) *Handler {
	return &Handler{svc: svc, reports: reports, now: time.Now}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.With(authhttp.RequireSuperAdmin).Put("/{id}/status-override", h.setStatusOverride)
	r.Get("/{id}/documents", h.listDocuments)
	r.Post("/{id}/documents", h.addDocument)
	r.Get("/{id}/history", h.history)
	r.Get("/{id}/grid", h.grid)
	r.Get("/{id}/months/{year}/{month}", h.monthDetail)
}

// ReferenceRoutes serves the lookup tables.
func (h *Handler) ReferenceRoutes(r chi.Router) {
	r.Get("/{kind}", h.references)
}

type createClientRequest struct {
	Name            string     `json:"name"`
	Phone           string     `json:"phone"`
	CaseNumber      string     `json:"caseNumber"`
	CountyID        *uuid.UUID `json:"countyId"`
	ServiceTypeID   *uuid.UUID `json:"serviceTypeId"`
	ServiceStatusID *uuid.UUID `json:"serviceStatusId"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	actor, err := respond.Actor(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var req createClientRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	c, err := h.svc.Create(r.Context(), actor, client.CreateParams{
		Name:            req.Name,
		Phone:           req.Phone,
		CaseNumber:      req.CaseNumber,
		CountyID:        req.CountyID,
		ServiceTypeID:   req.ServiceTypeID,
		ServiceStatusID: req.ServiceStatusID,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(c))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := client.ListFilter{Search: r.URL.Query().Get("search")}

	var err error

	if filter.CountyID, err = respond.QueryUUID(r, "county_id"); err != nil {
		respond.Error(w, r, err)
		return
	}

	if filter.ServiceTypeID, err = respond.QueryUUID(r, "service_type_id"); err != nil {
		respond.Error(w, r, err)
		return
	}

	if s := r.URL.Query().Get("active"); s != "" {
		active, err := strconv.ParseBool(s)
		if err != nil {
			respond.BadRequest(w, r, "active must be true or false")
			return
		}

		filter.Active = &active
	}

	cs, err := h.svc.List(r.Context(), filter)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(cs))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := respond.UUIDParam(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(c))
}

type updateClientRequest struct {
	Name            *string    `json:"name,omitempty"`
	Phone           *string    `json:"phone,omitempty"`
	CaseNumber      *string    `json:"caseNumber,omitempty"`
	CountyID        *uuid.UUID `json:"countyId,omitempty"`
	ServiceTypeID   *uuid.UUID `json:"serviceTypeId,omitempty"`
	ServiceStatusID *uuid.UUID `json:"serviceStatusId,omitempty"`
	Active          *bool      `json:"active,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
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

	var req updateClientRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	c, err := h.svc.Update(r.Context(), actor, id, client.UpdateParams{
		Name:            req.Name,
		Phone:           req.Phone,
		CaseNumber:      req.CaseNumber,
		CountyID:        req.CountyID,
		ServiceTypeID:   req.ServiceTypeID,
		ServiceStatusID: req.ServiceStatusID,
		Active:          req.Active,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(c))
}

type statusOverrideRequest struct {
	Active bool   `json:"active"`
	Reason string `json:"reason"`
}

func (h *Handler) setStatusOverride(w http.ResponseWriter, r *http.Request) {
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

	var req statusOverrideRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	c, err := h.svc.SetStatusOverride(r.Context(), actor, id, req.Active, req.Reason)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(c))
}

func (h *Handler) listDocuments(w http.ResponseWriter, r *http.Request) {
	id, err := respond.UUIDParam(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	docs, err := h.svc.ListDocuments(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]documentResponse, len(docs))
	for i, d := range docs {
		resp[i] = toDocumentResponse(d)
	}

	respond.JSON(w, http.StatusOK, resp)
}

type addDocumentRequest struct {
	Type       client.DocumentType `json:"type"`
	FileName   string              `json:"fileName"`
	StorageKey string              `json:"storageKey"`
	StartDate  *string             `json:"startDate"`
	ExpiryDate *string             `json:"expiryDate"`
}

func (h *Handler) addDocument(w http.ResponseWriter, r *http.Request) {
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

	var req addDocumentRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	start, err := respond.Date(req.StartDate)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	expiry, err := respond.Date(req.ExpiryDate)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	d, err := h.svc.AddDocument(r.Context(), actor, id, client.DocumentParams{
		Type:       req.Type,
		FileName:   req.FileName,
		StorageKey: req.StorageKey,
		StartDate:  start,
		ExpiryDate: expiry,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toDocumentResponse(d))
}

func (h *Handler) history(w http.ResponseWriter, r *http.Request) {
	id, err := respond.UUIDParam(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	entries, err := h.svc.History(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toHistoryResponse(entries))
}

func (h *Handler) references(w http.ResponseWriter, r *http.Request) {
	kind := client.ReferenceKind(chi.URLParam(r, "kind"))
	if !kind.Valid() {
		respond.BadRequest(w, r, "unknown reference table %q", kind)
		return
	}

	refs, err := h.svc.References(r.Context(), kind)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]referenceResponse, len(refs))
	for i, ref := range refs {
		resp[i] = referenceResponse{ID: ref.ID, Name: ref.Name}
	}

	respond.JSON(w, http.StatusOK, resp)
}

// grid defaults to the current year.
func (h *Handler) grid(w http.ResponseWriter, r *http.Request) {
	id, err := respond.UUIDParam(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	year, err := respond.QueryInt(r, "year")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	if year == nil {
		year = new(h.now().Year())
	}

	g, err := h.reports.YearlyGrid(r.Context(), id, *year)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, g)
}

func (h *Handler) monthDetail(w http.ResponseWriter, r *http.Request) {
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

	p, err := respond.PeriodParams(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	d, err := h.reports.MonthDetail(r.Context(), actor, id, p)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toMonthDetailResponse(d))
}
