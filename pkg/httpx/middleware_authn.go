package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/clipstack/clipstack/pkg/slogx"
)

// AccessTokenCookie is the cookie the boundary layer sets alongside the
// JSON token payload; AuthnMiddleware accepts the token from either place.
const AccessTokenCookie = "accessToken"

// AccessVerifier validates an access token and returns the identity id it
// was issued to. Pure; no store lookup.
type AccessVerifier interface {
	VerifyAccess(token string) (string, error)
}

// AuthnMiddleware requires a valid access token, delivered as a Bearer
// header or the accessToken cookie, and injects the identity id into the
// request context.
func AuthnMiddleware(v AccessVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := slogx.FromContext(r.Context())

			raw := bearerToken(r)
			if raw == "" {
				writeBearerError(w, "missing access token")
				return
			}

			userID, err := v.VerifyAccess(raw)
			if err != nil {
				log.Warn("access token rejected", "err", err)
				writeBearerError(w, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), CtxKeyUserID, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuthnMiddleware injects the identity id when a valid access
// token is present and passes the request through anonymously otherwise.
// For endpoints that are public but render differently for a known viewer.
func OptionalAuthnMiddleware(v AccessVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if raw := bearerToken(r); raw != "" {
				if userID, err := v.VerifyAccess(raw); err == nil {
					ctx := context.WithValue(r.Context(), CtxKeyUserID, userID)
					r = r.WithContext(ctx)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) string {
	if authz := r.Header.Get("Authorization"); strings.HasPrefix(authz, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))
	}
	if c, err := r.Cookie(AccessTokenCookie); err == nil {
		return c.Value
	}
	return ""
}

// RFC 6750-compliant error response for bearer auth.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteError(w, http.StatusUnauthorized, desc)
}
