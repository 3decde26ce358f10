package http

import (
	"net/http"

	"github.com/clipstack/clipstack/internal/api/service"
	"github.com/clipstack/clipstack/pkg/httpx"
)

// DashboardHandler serves the channel owner's own view: aggregate stats
// and the full upload list including drafts.
type DashboardHandler struct {
	UserService  *service.UserService
	VideoService *service.VideoService
}

func (h *DashboardHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.UserService.Stats(r.Context(), httpx.UserID(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, struct {
		VideoCount      int64 `json:"videoCount"`
		TotalViews      int64 `json:"totalViews"`
		SubscriberCount int64 `json:"subscriberCount"`
		TotalLikes      int64 `json:"totalLikes"`
	}{stats.VideoCount, stats.TotalViews, stats.SubscriberCount, stats.TotalLikes})
}

func (h *DashboardHandler) HandleVideos(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserID(r.Context())
	page, limit := pageParams(r)

	videos, err := h.VideoService.ListByChannel(r.Context(), userID, userID, page, limit)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toVideoResponses(videos))
}
