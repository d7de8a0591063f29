package export

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/loqeyusa/housingsupport/internal/http/respond"
	"github.com/loqeyusa/housingsupport/internal/logger"
	"github.com/loqeyusa/housingsupport/internal/report"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	svc *report.Service
	now func() time.Time
}

func NewHandler(svc *report.Service) *Handler {
	return &Handler{svc: svc, now: time.Now}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/reports/export.csv", h.csv)
	r.Get("/reports/export.xlsx", h.xlsx)
}

func (h *Handler) load(w http.ResponseWriter, r *http.Request) ([]report.Row, bool) {
	sc, err := respond.Scope(r)
	if err != nil {
		respond.Error(w, r, err)
		return nil, false
	}

	rows, err := h.svc.Rows(r.Context(), sc)
	if err != nil {
		respond.Error(w, r, err)
		return nil, false
	}

	return rows, true
}

// Files are rendered fully before any header is written.
func (h *Handler) csv(w http.ResponseWriter, r *http.Request) {
	rows, ok := h.load(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := report.WriteCSV(&buf, rows); err != nil {
		respond.Error(w, r, err)
		return
	}

	h.send(w, "text/csv; charset=utf-8", "csv", buf.Bytes())
}

func (h *Handler) xlsx(w http.ResponseWriter, r *http.Request) {
	rows, ok := h.load(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := report.WriteXLSX(&buf, rows); err != nil {
		respond.Error(w, r, err)
		return
	}

	h.send(w, xlsxContentType, "xlsx", buf.Bytes())
}

func (h *Handler) send(w http.ResponseWriter, contentType, ext string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", report.FileName(h.now(), ext)))

	if _, err := w.Write(body); err != nil {
		logger.For(logger.ComponentHTTP).Error("failed to write export", "error", err)
	}
}
