package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/loqeyusa/housingsupport/internal/auth"
	authhttp "github.com/loqeyusa/housingsupport/internal/http/auth"
)

type authFunc func(ctx context.Context, token string) (auth.Actor, error)

func (f authFunc) Authenticate(ctx context.Context, token string) (auth.Actor, error) {
	return f(ctx, token)
}

func TestAuthenticate(t *testing.T) {
	admin := auth.Actor{UserID: uuid.New(), Role: auth.RoleAdmin}

	a := authFunc(func(_ context.Context, token string) (auth.Actor, error) {
		if token == "good" {
			return admin, nil
		}

		return auth.Actor{}, auth.ErrInvalidToken
	})

	var seen auth.Actor

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = auth.ActorFrom(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	type testCase struct {
		name       string
		header     string
		wantStatus int
	}

	tests := []testCase{
		{"ValidToken", "Bearer good", http.StatusNoContent},
		{"LowercaseScheme", "bearer good", http.StatusNoContent},
		{"BadToken", "Bearer bad", http.StatusUnauthorized},
		{"NoHeader", "", http.StatusUnauthorized},
		{"WrongScheme", "Basic Z29vZA==", http.StatusUnauthorized},
		{"EmptyToken", "Bearer ", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = auth.Actor{}

			r := httptest.NewRequest(http.MethodGet, "/api/v1/clients", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}

			w := httptest.NewRecorder()
			authhttp.Authenticate(a)(next).ServeHTTP(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusNoContent {
				assert.Equal(t, admin, seen)
			}
		})
	}
}

func TestRequireSuperAdmin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	type testCase struct {
		name       string
		actor      *auth.Actor
		wantStatus int
	}

	tests := []testCase{
		{"SuperAdmin", &auth.Actor{UserID: uuid.New(), Role: auth.RoleSuperAdmin}, http.StatusOK},
		{"Admin", &auth.Actor{UserID: uuid.New(), Role: auth.RoleAdmin}, http.StatusForbidden},
		{"Anonymous", nil, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPut, "/x", nil)
			if tt.actor != nil {
				r = r.WithContext(auth.WithActor(r.Context(), *tt.actor))
			}

			w := httptest.NewRecorder()
			authhttp.RequireSuperAdmin(next).ServeHTTP(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
