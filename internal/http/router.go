package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	authhttp "github.com/loqeyusa/housingsupport/internal/http/auth"
	"github.com/loqeyusa/housingsupport/internal/http/client"
	"github.com/loqeyusa/housingsupport/internal/http/export"
	"github.com/loqeyusa/housingsupport/internal/http/finance"
	"github.com/loqeyusa/housingsupport/internal/http/importcsv"
	"github.com/loqeyusa/housingsupport/internal/http/report"
)

type Handlers struct {
	Auth    *authhttp.Handler
	Clients *client.Handler
	Finance *finance.Handler
	Reports *report.Handler
	Export  *export.Handler
	Import  *importcsv.Handler
}

func New(h Handlers, authn authhttp.Authenticator, allowedOrigins []string) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			h.Auth.Routes(r)
		})

		r.Group(func(r chi.Router) {
			r.Use(authhttp.Authenticate(authn))

			r.Get("/me", h.Auth.Me)

			r.Route("/clients", func(r chi.Router) {
				h.Clients.Routes(r)
				h.Finance.MonthRoutes(r)
			})

			r.Route("/references", h.Clients.ReferenceRoutes)

			h.Finance.Routes(r)
			h.Import.Routes(r)
			h.Reports.Routes(r)
			h.Export.Routes(r)
		})
	})

	return router
}
