package domain

import "time"

// Playlist is an ordered-by-insertion collection of videos owned by a user.
type Playlist struct {
	ID          string
	OwnerID     string
	Name        string
	Description string
	VideoIDs    []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
