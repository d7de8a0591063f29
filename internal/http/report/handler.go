package report

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/loqeyusa/housingsupport/internal/http/respond"
	"github.com/loqeyusa/housingsupport/internal/report"
)

type Handler struct {
	svc *report.Service
}

func NewHandler(svc *report.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/dashboard", h.dashboard)
	r.Get("/reports", h.rows)
	r.Get("/pool-fund/summary", h.poolFundSummary)
	r.Get("/pool-fund/contributions", h.contributions)
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	sc, err := respond.Scope(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	d, err := h.svc.Dashboard(r.Context(), sc)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, d)
}

func (h *Handler) rows(w http.ResponseWriter, r *http.Request) {
	sc, err := respond.Scope(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	rows, err := h.svc.Rows(r.Context(), sc)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, rows)
}

func (h *Handler) poolFundSummary(w http.ResponseWriter, r *http.Request) {
	sc, err := respond.Scope(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	sum, err := h.svc.PoolFundSummary(r.Context(), sc)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, sum)
}

func (h *Handler) contributions(w http.ResponseWriter, r *http.Request) {
	sc, err := respond.Scope(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	cs, err := h.svc.Contributions(r.Context(), sc)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, cs)
}
