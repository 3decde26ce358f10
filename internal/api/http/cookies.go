package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/clipstack/clipstack/internal/api/domain"
	"github.com/clipstack/clipstack/pkg/httpx"
)

// RefreshTokenCookie carries the refresh token between refresh calls for
// browser clients. API clients may instead send the token in the body.
const RefreshTokenCookie = "refreshToken"

// setTokenCookies mirrors the token pair into http-only cookies so browser
// clients need not store tokens in script-reachable state. The JSON body
// carries the same pair for non-browser clients.
func setTokenCookies(w http.ResponseWriter, pair domain.TokenPair, refreshTTL time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     httpx.AccessTokenCookie,
		Value:    pair.AccessToken,
		Path:     "/",
		MaxAge:   int(pair.ExpiresIn),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshTokenCookie,
		Value:    pair.RefreshToken,
		Path:     "/",
		MaxAge:   int(refreshTTL.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
}

func clearTokenCookies(w http.ResponseWriter) {
	for _, name := range []string{httpx.AccessTokenCookie, RefreshTokenCookie} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   true,
			SameSite: http.SameSiteStrictMode,
		})
	}
}

// refreshTokenFromRequest pulls the refresh token from the cookie or, for
// non-browser clients, from a {"refreshToken": "..."} body.
func refreshTokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie(RefreshTokenCookie); err == nil && c.Value != "" {
		return c.Value
	}

	var body struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
		return body.RefreshToken
	}
	return ""
}
