package http

import (
	"net/http"

	"github.com/clipstack/clipstack/internal/api/service"
	"github.com/clipstack/clipstack/pkg/httpx"
)

// UsersHandler serves the authenticated account endpoints.
type UsersHandler struct {
	UserService   *service.UserService
	ToggleService *service.ToggleService
	VideoService  *service.VideoService
}

func (h *UsersHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	user, err := h.UserService.GetByID(r.Context(), httpx.UserID(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}

func (h *UsersHandler) HandleUpdateDetails(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FullName string `json:"fullName"`
		Email    string `json:"email"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	userID := httpx.UserID(r.Context())
	if err := h.UserService.UpdateDetails(r.Context(), userID, req.FullName, req.Email); err != nil {
		writeServiceError(w, r, err)
		return
	}

	user, err := h.UserService.GetByID(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}

func (h *UsersHandler) HandleUpdateAvatar(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AvatarURL string `json:"avatarUrl"`
		CoverURL  string `json:"coverUrl"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	userID := httpx.UserID(r.Context())
	if err := h.UserService.UpdateAvatar(r.Context(), userID, req.AvatarURL, req.CoverURL); err != nil {
		writeServiceError(w, r, err)
		return
	}

	user, err := h.UserService.GetByID(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}

// HandleLikedVideos lists the videos the caller has liked.
func (h *UsersHandler) HandleLikedVideos(w http.ResponseWriter, r *http.Request) {
	videos, err := h.ToggleService.LikedVideos(r.Context(), httpx.UserID(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toVideoResponses(videos))
}

// HandleWatchHistory lists the videos the caller has watched, most recent
// first.
func (h *UsersHandler) HandleWatchHistory(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	videos, err := h.VideoService.History(r.Context(), httpx.UserID(r.Context()), page, limit)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toVideoResponses(videos))
}

// HandleLikedComments lists the comments the caller has liked.
func (h *UsersHandler) HandleLikedComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.ToggleService.LikedComments(r.Context(), httpx.UserID(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toCommentResponses(comments))
}

// HandleLikedTweets lists the tweets the caller has liked.
func (h *UsersHandler) HandleLikedTweets(w http.ResponseWriter, r *http.Request) {
	tweets, err := h.ToggleService.LikedTweets(r.Context(), httpx.UserID(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toTweetResponses(tweets))
}
