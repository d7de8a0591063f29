package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/loqeyusa/housingsupport/internal/auth"
	"github.com/loqeyusa/housingsupport/internal/http/respond"
)

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (auth.Actor, error)
}

// Authenticate resolves the bearer token and stores the actor in the request
// context. Requests without a valid token stop here with 401.
func Authenticate(a Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearer(r.Header.Get("Authorization"))
			if !ok {
				respond.Error(w, r, auth.ErrUnauthenticated)
				return
			}

			actor, err := a.Authenticate(r.Context(), token)
			if err != nil {
				respond.Error(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithActor(r.Context(), actor)))
		})
	}
}

// RequireSuperAdmin rejects every actor but a super admin with 403.
func RequireSuperAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, err := respond.Actor(r)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		if !actor.IsSuperAdmin() {
			respond.Error(w, r, auth.ErrForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func bearer(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)

	return token, token != ""
}
