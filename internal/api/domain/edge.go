package domain

import "time"

// EdgeKind enumerates the relation kinds the toggle engine manages. Likes
// for the three content types and channel subscriptions share one table
// with a single uniqueness constraint over (subject, target, kind).
type EdgeKind string

const (
	EdgeVideoLike    EdgeKind = "video_like"
	EdgeCommentLike  EdgeKind = "comment_like"
	EdgeTweetLike    EdgeKind = "tweet_like"
	EdgeSubscription EdgeKind = "subscription"
)

// Valid reports whether k is one of the defined edge kinds.
func (k EdgeKind) Valid() bool {
	switch k {
	case EdgeVideoLike, EdgeCommentLike, EdgeTweetLike, EdgeSubscription:
		return true
	}
	return false
}

// RelationEdge records that subject relates to target (liked it, subscribed
// to it). At most one edge exists per (SubjectID, TargetID, Kind); edges are
// created and deleted, never updated.
type RelationEdge struct {
	ID        string
	SubjectID string
	TargetID  string
	Kind      EdgeKind
	CreatedAt time.Time
}

// ToggleResult reports which transition a toggle call performed.
type ToggleResult int

const (
	ToggleCreated ToggleResult = iota
	ToggleRemoved
)

func (t ToggleResult) String() string {
	if t == ToggleCreated {
		return "created"
	}
	return "removed"
}
