// Package respond holds the JSON and error helpers shared by the handlers.
package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/loqeyusa/housingsupport/internal/access"
	"github.com/loqeyusa/housingsupport/internal/auth"
	"github.com/loqeyusa/housingsupport/internal/client"
	"github.com/loqeyusa/housingsupport/internal/finance"
	"github.com/loqeyusa/housingsupport/internal/importer"
	"github.com/loqeyusa/housingsupport/internal/logger"
	"github.com/loqeyusa/housingsupport/internal/money"
	"github.com/loqeyusa/housingsupport/internal/period"
	"github.com/loqeyusa/housingsupport/internal/report"
)

// ErrBadRequest marks malformed input caught in the handler itself.
var ErrBadRequest = errors.New("bad request")

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

type mapping struct {
	target error
	status int
	code   string
}

// Checked in order; the first match wins.
var mappings = []mapping{
	{money.ErrInvalidAmount, http.StatusBadRequest, "invalid_amount"},
	{period.ErrInvalidPeriod, http.StatusBadRequest, "invalid_period"},
	{report.ErrInvalidScope, http.StatusBadRequest, "invalid_scope"},
	{client.ErrInvalidClient, http.StatusBadRequest, "invalid_client"},
	{client.ErrInvalidDocument, http.StatusBadRequest, "invalid_document"},
	{finance.ErrInvalidDocument, http.StatusBadRequest, "invalid_document"},
	{importer.ErrUnknownFormat, http.StatusBadRequest, "unknown_format"},
	{ErrBadRequest, http.StatusBadRequest, "invalid_request"},
	{auth.ErrInvalidCredentials, http.StatusUnauthorized, "invalid_credentials"},
	{auth.ErrInvalidToken, http.StatusUnauthorized, "invalid_token"},
	{auth.ErrUnauthenticated, http.StatusUnauthorized, "unauthenticated"},
	{access.ErrEditWindowClosed, http.StatusForbidden, "edit_window_closed"},
	{access.ErrServiceAgreementExpired, http.StatusForbidden, "service_agreement_expired"},
	{auth.ErrForbidden, http.StatusForbidden, "forbidden"},
	{client.ErrNotFound, http.StatusNotFound, "not_found"},
	{finance.ErrNotFound, http.StatusNotFound, "not_found"},
	{auth.ErrNotFound, http.StatusNotFound, "not_found"},
	{client.ErrDuplicateCase, http.StatusConflict, "duplicate_case_number"},
	{finance.ErrConstraintViolation, http.StatusConflict, "conflict"},
}

// Status returns the HTTP status and error code for err.
func Status(err error) (int, string) {
	for _, m := range mappings {
		if errors.Is(err, m.target) {
			return m.status, m.code
		}
	}

	return http.StatusInternalServerError, "internal"
}

// Error writes err as a JSON error body. Unmapped errors are logged and
// reported as a bare internal error.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	status, code := Status(err)

	msg := err.Error()
	if status == http.StatusInternalServerError {
		logger.For(logger.ComponentHTTP).ErrorContext(r.Context(), "request failed", "error", err, "path", r.URL.Path)
		msg = "internal error"
	}

	JSON(w, status, errorResponse{Error: msg, Code: code})
}

func BadRequest(w http.ResponseWriter, r *http.Request, format string, args ...any) {
	Error(w, r, fmt.Errorf("%w: %s", ErrBadRequest, fmt.Sprintf(format, args...)))
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.For(logger.ComponentHTTP).Error("failed to encode response", "error", err)
	}
}

func Decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrBadRequest, err)
	}

	return nil
}

// Actor returns the authenticated actor. Routes behind the auth middleware
// always have one.
func Actor(r *http.Request) (auth.Actor, error) {
	a, ok := auth.ActorFrom(r.Context())
	if !ok {
		return auth.Actor{}, auth.ErrUnauthenticated
	}

	return a, nil
}

func UUIDParam(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid %s", ErrBadRequest, name)
	}

	return id, nil
}

// PeriodParams reads the {year} and {month} path parameters.
func PeriodParams(r *http.Request) (period.Period, error) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		return period.Period{}, fmt.Errorf("%w: year", period.ErrInvalidPeriod)
	}

	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil {
		return period.Period{}, fmt.Errorf("%w: month", period.ErrInvalidPeriod)
	}

	return period.New(year, month)
}

// QueryInt reads an optional integer query parameter.
func QueryInt(r *http.Request, name string) (*int, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return nil, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a number", ErrBadRequest, name)
	}

	return &n, nil
}

// QueryUUID reads an optional uuid query parameter.
func QueryUUID(r *http.Request, name string) (*uuid.UUID, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return nil, nil
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid %s", ErrBadRequest, name)
	}

	return &id, nil
}

// Date parses an optional YYYY-MM-DD string.
func Date(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}

	t, err := time.Parse(time.DateOnly, *s)
	if err != nil {
		return nil, fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrBadRequest, *s)
	}

	return &t, nil
}

// Scope reads the year, month, county_id and service_type_id filters.
func Scope(r *http.Request) (report.Scope, error) {
	var (
		sc  report.Scope
		err error
	)

	if sc.Year, err = QueryInt(r, "year"); err != nil {
		return sc, err
	}

	if sc.Month, err = QueryInt(r, "month"); err != nil {
		return sc, err
	}

	if sc.CountyID, err = QueryUUID(r, "county_id"); err != nil {
		return sc, err
	}

	if sc.ServiceTypeID, err = QueryUUID(r, "service_type_id"); err != nil {
		return sc, err
	}

	return sc, sc.Validate()
}
