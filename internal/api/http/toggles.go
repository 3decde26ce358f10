package http

import (
	"net/http"

	"github.com/clipstack/clipstack/internal/api/domain"
	"github.com/clipstack/clipstack/internal/api/service"
	"github.com/clipstack/clipstack/pkg/httpx"
)

// TogglesHandler serves the like and subscription toggles. Every endpoint
// is a state flip: present becomes absent and vice versa, reported through
// the response state.
type TogglesHandler struct {
	ToggleService *service.ToggleService
}

func (h *TogglesHandler) HandleVideoLike(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, r.PathValue("videoID"), domain.EdgeVideoLike)
}

func (h *TogglesHandler) HandleCommentLike(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, r.PathValue("commentID"), domain.EdgeCommentLike)
}

func (h *TogglesHandler) HandleTweetLike(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, r.PathValue("tweetID"), domain.EdgeTweetLike)
}

func (h *TogglesHandler) HandleSubscription(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, r.PathValue("channelID"), domain.EdgeSubscription)
}

func (h *TogglesHandler) toggle(w http.ResponseWriter, r *http.Request, targetID string, kind domain.EdgeKind) {
	result, err := h.ToggleService.Toggle(r.Context(), httpx.UserID(r.Context()), targetID, kind)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toggleResponse{State: result.String()})
}

// HandleSubscriptions lists the channels the caller subscribes to.
func (h *TogglesHandler) HandleSubscriptions(w http.ResponseWriter, r *http.Request) {
	channels, err := h.ToggleService.Subscriptions(r.Context(), httpx.UserID(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if channels == nil {
		channels = []string{}
	}
	httpx.WriteJSON(w, http.StatusOK, map[string][]string{"channels": channels})
}
