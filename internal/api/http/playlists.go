package http

import (
	"net/http"

	"github.com/clipstack/clipstack/internal/api/service"
	"github.com/clipstack/clipstack/pkg/httpx"
)

// PlaylistsHandler serves playlist CRUD and membership.
type PlaylistsHandler struct {
	PlaylistService *service.PlaylistService
}

func (h *PlaylistsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	playlist, err := h.PlaylistService.Create(r.Context(), httpx.UserID(r.Context()),
		req.Name, req.Description)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toPlaylistResponse(playlist))
}

func (h *PlaylistsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	playlist, err := h.PlaylistService.Get(r.Context(), r.PathValue("playlistID"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toPlaylistResponse(playlist))
}

func (h *PlaylistsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	playlist, err := h.PlaylistService.Update(r.Context(), httpx.UserID(r.Context()),
		r.PathValue("playlistID"), req.Name, req.Description)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toPlaylistResponse(playlist))
}

func (h *PlaylistsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	err := h.PlaylistService.Delete(r.Context(), httpx.UserID(r.Context()), r.PathValue("playlistID"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *PlaylistsHandler) HandleAddVideo(w http.ResponseWriter, r *http.Request) {
	err := h.PlaylistService.AddVideo(r.Context(), httpx.UserID(r.Context()),
		r.PathValue("playlistID"), r.PathValue("videoID"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *PlaylistsHandler) HandleRemoveVideo(w http.ResponseWriter, r *http.Request) {
	err := h.PlaylistService.RemoveVideo(r.Context(), httpx.UserID(r.Context()),
		r.PathValue("playlistID"), r.PathValue("videoID"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
