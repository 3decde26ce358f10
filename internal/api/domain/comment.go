package domain

import "time"

// Comment belongs to a video. OwnerID is immutable after creation.
type Comment struct {
	ID        string
	OwnerID   string
	VideoID   string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
