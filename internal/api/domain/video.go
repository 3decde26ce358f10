package domain

import "time"

// Video is an uploaded video. OwnerID is set at creation and never mutated.
// Unpublished videos are only visible to their owner.
type Video struct {
	ID           string
	OwnerID      string
	Title        string
	Description  string
	VideoURL     string
	ThumbnailURL string
	DurationSecs int
	Views        int64
	Published    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
