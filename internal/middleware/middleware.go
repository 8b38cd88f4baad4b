package middleware

import (
	"context"
	"net/http"

	"github.com/Dan9191/auth-service/internal/session"
	"github.com/gorilla/mux"
)

type contextKey string

const identityKey contextKey = "identity"

// RequireLogin guards protected routes: requests without a valid session
// are redirected to the login page instead of reaching the handler. The
// identity is placed in the request context for downstream handlers.
func RequireLogin(sessions *session.Manager) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ident, ok := sessions.Current(r)
			if !ok {
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}
			ctx := context.WithValue(r.Context(), identityKey, ident)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFrom returns the authenticated identity stored by RequireLogin.
func IdentityFrom(ctx context.Context) (session.Identity, bool) {
	ident, ok := ctx.Value(identityKey).(session.Identity)
	return ident, ok
}
