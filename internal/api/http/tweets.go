package http

import (
	"net/http"

	"github.com/clipstack/clipstack/internal/api/service"
	"github.com/clipstack/clipstack/pkg/httpx"
)

// TweetsHandler serves the short-post CRUD surface.
type TweetsHandler struct {
	TweetService *service.TweetService
}

func (h *TweetsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Content string `json:"content"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	tweet, err := h.TweetService.Create(r.Context(), httpx.UserID(r.Context()), req.Content)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toTweetResponse(tweet))
}

func (h *TweetsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Content string `json:"content"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	tweet, err := h.TweetService.Update(r.Context(), httpx.UserID(r.Context()),
		r.PathValue("tweetID"), req.Content)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toTweetResponse(tweet))
}

func (h *TweetsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	err := h.TweetService.Delete(r.Context(), httpx.UserID(r.Context()), r.PathValue("tweetID"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
