package http

import (
	"net/http"

	"github.com/clipstack/clipstack/internal/api/service"
	"github.com/clipstack/clipstack/pkg/httpx"
)

// VideosHandler serves the video feed and the owner-facing CRUD surface.
type VideosHandler struct {
	VideoService *service.VideoService
}

func (h *VideosHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	videos, err := h.VideoService.ListPublished(r.Context(), page, limit)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toVideoResponses(videos))
}

func (h *VideosHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	video, err := h.VideoService.Get(r.Context(), r.PathValue("videoID"), httpx.UserID(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	likes, err := h.VideoService.LikeCount(r.Context(), video.ID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := struct {
		videoResponse
		Likes int64 `json:"likes"`
	}{toVideoResponse(video), likes}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

func (h *VideosHandler) HandlePublish(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title        string `json:"title"`
		Description  string `json:"description"`
		VideoURL     string `json:"videoUrl"`
		ThumbnailURL string `json:"thumbnailUrl"`
		DurationSecs int    `json:"durationSecs"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	video, err := h.VideoService.Publish(r.Context(), service.PublishVideoRequest{
		OwnerID:      httpx.UserID(r.Context()),
		Title:        req.Title,
		Description:  req.Description,
		VideoURL:     req.VideoURL,
		ThumbnailURL: req.ThumbnailURL,
		DurationSecs: req.DurationSecs,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toVideoResponse(video))
}

func (h *VideosHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title        string `json:"title"`
		Description  string `json:"description"`
		ThumbnailURL string `json:"thumbnailUrl"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	video, err := h.VideoService.Update(r.Context(), httpx.UserID(r.Context()),
		r.PathValue("videoID"), req.Title, req.Description, req.ThumbnailURL)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toVideoResponse(video))
}

func (h *VideosHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	err := h.VideoService.Delete(r.Context(), httpx.UserID(r.Context()), r.PathValue("videoID"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *VideosHandler) HandleTogglePublish(w http.ResponseWriter, r *http.Request) {
	published, err := h.VideoService.TogglePublish(r.Context(), httpx.UserID(r.Context()), r.PathValue("videoID"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]bool{"published": published})
}
