package service

import (
	"context"
	"log/slog"

	"github.com/clipstack/clipstack/internal/api/domain"
	"github.com/clipstack/clipstack/internal/api/store"
	"github.com/clipstack/clipstack/pkg/idx"
	"github.com/clipstack/clipstack/pkg/slogx"
)

// ToggleService flips relation edges: likes on videos, comments and tweets,
// and channel subscriptions. A toggle is insert-or-delete against the
// unique constraint over (subject, target, kind); the constraint, not any
// lock, is what arbitrates concurrent toggles for the same edge.
type ToggleService struct {
	Store store.Store
}

// Toggle creates the edge when absent and removes it when present. The
// target must exist for its kind; subscriptions additionally reject
// subject == target. Toggling is idempotent in pairs: any even number of
// calls restores the starting state.
func (s *ToggleService) Toggle(ctx context.Context, subjectID, targetID string, kind domain.EdgeKind) (domain.ToggleResult, error) {
	if !kind.Valid() {
		return 0, ErrInvalidInput
	}
	if kind == domain.EdgeSubscription && subjectID == targetID {
		return 0, ErrSelfTarget
	}

	if err := s.targetExists(ctx, targetID, kind); err != nil {
		return 0, err
	}

	created, err := s.Store.Edges().Insert(ctx, domain.RelationEdge{
		ID:        idx.New().String(),
		SubjectID: subjectID,
		TargetID:  targetID,
		Kind:      kind,
	})
	if err != nil {
		return 0, err
	}
	if created {
		slogx.FromContext(ctx).Debug("relation edge created",
			slog.String("subject_id", subjectID),
			slog.String("target_id", targetID),
			slog.String("kind", string(kind)))
		return domain.ToggleCreated, nil
	}

	// Edge already present: this call removes it. When a concurrent toggle
	// deleted it first, the observable outcome is still "removed".
	if _, err := s.Store.Edges().Delete(ctx, subjectID, targetID, kind); err != nil {
		return 0, err
	}
	return domain.ToggleRemoved, nil
}

func (s *ToggleService) targetExists(ctx context.Context, targetID string, kind domain.EdgeKind) error {
	var err error
	switch kind {
	case domain.EdgeVideoLike:
		_, err = s.Store.Videos().GetByID(ctx, targetID)
	case domain.EdgeCommentLike:
		_, err = s.Store.Comments().GetByID(ctx, targetID)
	case domain.EdgeTweetLike:
		_, err = s.Store.Tweets().GetByID(ctx, targetID)
	case domain.EdgeSubscription:
		_, err = s.Store.Users().GetByID(ctx, targetID)
	}
	return err
}

// LikedVideos lists the videos a user has liked, most recent like first.
func (s *ToggleService) LikedVideos(ctx context.Context, subjectID string) ([]domain.Video, error) {
	return s.Store.Edges().ListLikedVideos(ctx, subjectID)
}

// LikedComments lists the comments a user has liked, most recent like first.
func (s *ToggleService) LikedComments(ctx context.Context, subjectID string) ([]domain.Comment, error) {
	return s.Store.Edges().ListLikedComments(ctx, subjectID)
}

// LikedTweets lists the tweets a user has liked, most recent like first.
func (s *ToggleService) LikedTweets(ctx context.Context, subjectID string) ([]domain.Tweet, error) {
	return s.Store.Edges().ListLikedTweets(ctx, subjectID)
}

// Subscribers lists the subscriber ids of a channel.
func (s *ToggleService) Subscribers(ctx context.Context, channelID string) ([]string, error) {
	if _, err := s.Store.Users().GetByID(ctx, channelID); err != nil {
		return nil, err
	}
	return s.Store.Edges().ListSubscribers(ctx, channelID)
}

// Subscriptions lists the channel ids a user subscribes to.
func (s *ToggleService) Subscriptions(ctx context.Context, subjectID string) ([]string, error) {
	return s.Store.Edges().ListSubscriptions(ctx, subjectID)
}
