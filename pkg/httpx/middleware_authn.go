package httpx

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/jobtrackr/pkg/slogx"
)

// Guard resolves a raw bearer token to the user ID it was issued for.
type Guard interface {
	Guard(token string) (string, error)
}

// GuardFunc adapts a plain function to Guard.
type GuardFunc func(token string) (string, error)

func (f GuardFunc) Guard(token string) (string, error) { return f(token) }

// AuthnMiddleware rejects requests without a valid bearer token and injects
// the user ID into the context for downstream handlers.
func AuthnMiddleware(g Guard) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw, ok := BearerToken(r)
			if !ok {
				writeBearerError(w, "Not authorized, no token")
				return
			}

			userID, err := g.Guard(raw)
			if err != nil {
				log.Warn("bearer token rejected", "err", err)
				writeBearerError(w, "Not authorized, token failed")
				return
			}

			ctx = WithUserID(ctx, userID)
			ctx = slogx.WithUserID(ctx, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// header. The scheme is matched case-insensitively.
func BearerToken(r *http.Request) (string, bool) {
	authz := strings.TrimSpace(r.Header.Get("Authorization"))
	scheme, token, found := strings.Cut(authz, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func writeBearerError(w http.ResponseWriter, msg string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
	WriteError(w, http.StatusUnauthorized, ErrCodeUnauthorized, msg)
}
