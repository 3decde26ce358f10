package http

import (
	"time"

	"github.com/clipstack/clipstack/internal/api/domain"
	"github.com/clipstack/clipstack/internal/api/service"
)

// Response shapes. Credential material (password hash, refresh fingerprint)
// never leaves the service boundary.

type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
	CoverURL  string    `json:"coverUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		AvatarURL: u.AvatarURL,
		CoverURL:  u.CoverURL,
		CreatedAt: u.CreatedAt,
	}
}

type channelResponse struct {
	ID              string `json:"id"`
	Username        string `json:"username"`
	FullName        string `json:"fullName"`
	AvatarURL       string `json:"avatarUrl,omitempty"`
	CoverURL        string `json:"coverUrl,omitempty"`
	SubscriberCount int64  `json:"subscriberCount"`
	Subscribed      bool   `json:"subscribed"`
}

func toChannelResponse(p service.ChannelProfile) channelResponse {
	return channelResponse{
		ID:              p.User.ID,
		Username:        p.User.Username,
		FullName:        p.User.FullName,
		AvatarURL:       p.User.AvatarURL,
		CoverURL:        p.User.CoverURL,
		SubscriberCount: p.SubscriberCount,
		Subscribed:      p.Subscribed,
	}
}

type videoResponse struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"ownerId"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	VideoURL     string    `json:"videoUrl"`
	ThumbnailURL string    `json:"thumbnailUrl,omitempty"`
	DurationSecs int       `json:"durationSecs"`
	Views        int64     `json:"views"`
	Published    bool      `json:"published"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toVideoResponse(v domain.Video) videoResponse {
	return videoResponse{
		ID:           v.ID,
		OwnerID:      v.OwnerID,
		Title:        v.Title,
		Description:  v.Description,
		VideoURL:     v.VideoURL,
		ThumbnailURL: v.ThumbnailURL,
		DurationSecs: v.DurationSecs,
		Views:        v.Views,
		Published:    v.Published,
		CreatedAt:    v.CreatedAt,
	}
}

func toVideoResponses(vs []domain.Video) []videoResponse {
	out := make([]videoResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, toVideoResponse(v))
	}
	return out
}

type commentResponse struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"ownerId"`
	VideoID   string    `json:"videoId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

func toCommentResponse(c domain.Comment) commentResponse {
	return commentResponse{
		ID:        c.ID,
		OwnerID:   c.OwnerID,
		VideoID:   c.VideoID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}

func toCommentResponses(cs []domain.Comment) []commentResponse {
	out := make([]commentResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, toCommentResponse(c))
	}
	return out
}

type tweetResponse struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"ownerId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

func toTweetResponse(t domain.Tweet) tweetResponse {
	return tweetResponse{ID: t.ID, OwnerID: t.OwnerID, Content: t.Content, CreatedAt: t.CreatedAt}
}

func toTweetResponses(ts []domain.Tweet) []tweetResponse {
	out := make([]tweetResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, toTweetResponse(t))
	}
	return out
}

type playlistResponse struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"ownerId"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	VideoIDs    []string  `json:"videoIds"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toPlaylistResponse(p domain.Playlist) playlistResponse {
	videoIDs := p.VideoIDs
	if videoIDs == nil {
		videoIDs = []string{}
	}
	return playlistResponse{
		ID:          p.ID,
		OwnerID:     p.OwnerID,
		Name:        p.Name,
		Description: p.Description,
		VideoIDs:    videoIDs,
		CreatedAt:   p.CreatedAt,
	}
}

type toggleResponse struct {
	State string `json:"state"` // "created" or "removed"
}
