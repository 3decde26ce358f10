package http

import (
	"net/http"

	"github.com/clipstack/clipstack/internal/api/domain"
	"github.com/clipstack/clipstack/internal/api/service"
	"github.com/clipstack/clipstack/pkg/httpx"
)

// AuthHandler serves registration, login, token refresh and logout.
type AuthHandler struct {
	UserService  *service.UserService
	TokenService *service.TokenService
}

type tokenPayload struct {
	User   userResponse     `json:"user"`
	Tokens domain.TokenPair `json:"tokens"`
}

func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username  string `json:"username"`
		Email     string `json:"email"`
		FullName  string `json:"fullName"`
		Password  string `json:"password"`
		AvatarURL string `json:"avatarUrl"`
		CoverURL  string `json:"coverUrl"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.UserService.Register(r.Context(), service.RegisterRequest{
		Username:  req.Username,
		Email:     req.Email,
		FullName:  req.FullName,
		Password:  req.Password,
		AvatarURL: req.AvatarURL,
		CoverURL:  req.CoverURL,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toUserResponse(user))
}

func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	user, pair, err := h.UserService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	setTokenCookies(w, pair, h.TokenService.Refresh.TTL())
	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, tokenPayload{
		User:   toUserResponse(user),
		Tokens: pair,
	})
}

// HandleRefresh rotates a refresh token. A replayed token revokes the
// session and comes back 401 like every other unusable token.
func (h *AuthHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	token := refreshTokenFromRequest(r)
	if token == "" {
		httpx.WriteError(w, http.StatusBadRequest, "missing refresh token")
		return
	}

	pair, err := h.TokenService.Rotate(r.Context(), token)
	if err != nil {
		clearTokenCookies(w)
		writeServiceError(w, r, err)
		return
	}

	setTokenCookies(w, pair, h.TokenService.Refresh.TTL())
	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, pair)
}

func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.UserService.Logout(r.Context(), httpx.UserID(r.Context())); err != nil {
		writeServiceError(w, r, err)
		return
	}

	clearTokenCookies(w)
	httpx.NoCache(w)
	w.WriteHeader(http.StatusNoContent)
}

func (h *AuthHandler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OldPassword string `json:"oldPassword"`
		NewPassword string `json:"newPassword"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	err := h.UserService.ChangePassword(r.Context(), httpx.UserID(r.Context()), req.OldPassword, req.NewPassword)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	// The refresh slot died with the old password; the cookies are stale.
	clearTokenCookies(w)
	w.WriteHeader(http.StatusNoContent)
}
