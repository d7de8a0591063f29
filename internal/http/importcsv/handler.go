package importcsv

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/loqeyusa/housingsupport/internal/http/respond"
	"github.com/loqeyusa/housingsupport/internal/importer"
	"github.com/loqeyusa/housingsupport/internal/period"
)

const maxUpload = 10 << 20

type Handler struct {
	importSvc *importer.Service
}

func NewHandler(importSvc *importer.Service) *Handler {
	return &Handler{importSvc: importSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/housing-support/import", h.importFile)
}

// importFile expects multipart fields file, year and month.
func (h *Handler) importFile(w http.ResponseWriter, r *http.Request) {
	actor, err := respond.Actor(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	if err := r.ParseMultipartForm(maxUpload); err != nil {
		respond.BadRequest(w, r, "failed to parse form: %v", err)
		return
	}

	year, err := strconv.Atoi(r.FormValue("year"))
	if err != nil {
		respond.BadRequest(w, r, "year field is required")
		return
	}

	month, err := strconv.Atoi(r.FormValue("month"))
	if err != nil {
		respond.BadRequest(w, r, "month field is required")
		return
	}

	p, err := period.New(year, month)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		respond.BadRequest(w, r, "file field is required")
		return
	}
	defer file.Close()

	res, err := h.importSvc.Import(r.Context(), actor, p, file)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, res)
}
