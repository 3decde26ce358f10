package http

import (
	"net/http"

	"github.com/clipstack/clipstack/internal/api/service"
	"github.com/clipstack/clipstack/pkg/httpx"
)

// ChannelsHandler serves the public channel surface: profile, uploads,
// tweets, playlists and subscriber listings.
type ChannelsHandler struct {
	UserService     *service.UserService
	VideoService    *service.VideoService
	TweetService    *service.TweetService
	PlaylistService *service.PlaylistService
	ToggleService   *service.ToggleService
}

func (h *ChannelsHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.UserService.Channel(r.Context(), r.PathValue("username"), httpx.UserID(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toChannelResponse(profile))
}

func (h *ChannelsHandler) HandleVideos(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	videos, err := h.VideoService.ListByChannel(r.Context(),
		r.PathValue("channelID"), httpx.UserID(r.Context()), page, limit)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toVideoResponses(videos))
}

func (h *ChannelsHandler) HandleTweets(w http.ResponseWriter, r *http.Request) {
	tweets, err := h.TweetService.ListByChannel(r.Context(), r.PathValue("channelID"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toTweetResponses(tweets))
}

func (h *ChannelsHandler) HandlePlaylists(w http.ResponseWriter, r *http.Request) {
	playlists, err := h.PlaylistService.ListByOwner(r.Context(), r.PathValue("channelID"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]playlistResponse, 0, len(playlists))
	for _, p := range playlists {
		out = append(out, toPlaylistResponse(p))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func (h *ChannelsHandler) HandleSubscribers(w http.ResponseWriter, r *http.Request) {
	subscribers, err := h.ToggleService.Subscribers(r.Context(), r.PathValue("channelID"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if subscribers == nil {
		subscribers = []string{}
	}
	httpx.WriteJSON(w, http.StatusOK, map[string][]string{"subscribers": subscribers})
}
