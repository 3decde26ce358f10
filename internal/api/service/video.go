package service

import (
	"context"
	"strings"

	"github.com/clipstack/clipstack/internal/api/domain"
	"github.com/clipstack/clipstack/internal/api/store"
	"github.com/clipstack/clipstack/pkg/idx"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// VideoService manages video metadata. Media itself lives behind the urls
// the client supplies; this service only tracks records, visibility and
// ownership.
type VideoService struct {
	Store store.Store
	Guard Guard
}

type PublishVideoRequest struct {
	OwnerID      string
	Title        string
	Description  string
	VideoURL     string
	ThumbnailURL string
	DurationSecs int
}

func (s *VideoService) Publish(ctx context.Context, req PublishVideoRequest) (domain.Video, error) {
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" || req.VideoURL == "" {
		return domain.Video{}, ErrInvalidInput
	}

	video := domain.Video{
		ID:           idx.New().String(),
		OwnerID:      req.OwnerID,
		Title:        req.Title,
		Description:  req.Description,
		VideoURL:     req.VideoURL,
		ThumbnailURL: req.ThumbnailURL,
		DurationSecs: req.DurationSecs,
		Published:    true,
	}
	if err := s.Store.Videos().Create(ctx, video); err != nil {
		return domain.Video{}, err
	}
	return video, nil
}

// Get returns a video and bumps its view counter. Unpublished videos are
// invisible to everyone but their owner, surfacing as not found rather
// than forbidden so their existence leaks nothing.
func (s *VideoService) Get(ctx context.Context, videoID, viewerID string) (domain.Video, error) {
	video, err := s.Store.Videos().GetByID(ctx, videoID)
	if err != nil {
		return domain.Video{}, err
	}

	if !video.Published && video.OwnerID != viewerID {
		return domain.Video{}, store.ErrNotFound
	}

	if video.OwnerID != viewerID {
		if err := s.Store.Videos().IncrementViews(ctx, videoID); err != nil {
			return domain.Video{}, err
		}
		video.Views++
	}

	if viewerID != "" {
		if err := s.Store.History().Record(ctx, viewerID, videoID); err != nil {
			return domain.Video{}, err
		}
	}
	return video, nil
}

// History pages through the videos a user has watched, most recent first.
func (s *VideoService) History(ctx context.Context, userID string, page, limit int) ([]domain.Video, error) {
	page, limit = clampPage(page, limit)
	return s.Store.History().ListForUser(ctx, userID, page, limit)
}

func (s *VideoService) Update(ctx context.Context, actorID, videoID, title, description, thumbnailURL string) (domain.Video, error) {
	video, err := s.Store.Videos().GetByID(ctx, videoID)
	if err != nil {
		return domain.Video{}, err
	}
	if err := s.Guard.Authorize(actorID, video.OwnerID); err != nil {
		return domain.Video{}, err
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return domain.Video{}, ErrInvalidInput
	}

	if err := s.Store.Videos().Update(ctx, videoID, title, description, thumbnailURL); err != nil {
		return domain.Video{}, err
	}
	return s.Store.Videos().GetByID(ctx, videoID)
}

// TogglePublish flips the published flag and returns the new state.
func (s *VideoService) TogglePublish(ctx context.Context, actorID, videoID string) (bool, error) {
	video, err := s.Store.Videos().GetByID(ctx, videoID)
	if err != nil {
		return false, err
	}
	if err := s.Guard.Authorize(actorID, video.OwnerID); err != nil {
		return false, err
	}

	next := !video.Published
	if err := s.Store.Videos().SetPublished(ctx, videoID, next); err != nil {
		return false, err
	}
	return next, nil
}

// Delete removes a video together with the like edges pointing at it.
// Comments cascade through the schema.
func (s *VideoService) Delete(ctx context.Context, actorID, videoID string) error {
	video, err := s.Store.Videos().GetByID(ctx, videoID)
	if err != nil {
		return err
	}
	if err := s.Guard.Authorize(actorID, video.OwnerID); err != nil {
		return err
	}

	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Edges().DeleteForTarget(ctx, videoID); err != nil {
			return err
		}
		return tx.Videos().Delete(ctx, videoID)
	})
}

// ListPublished pages through the public feed.
func (s *VideoService) ListPublished(ctx context.Context, page, limit int) ([]domain.Video, error) {
	page, limit = clampPage(page, limit)
	return s.Store.Videos().ListPublished(ctx, page, limit)
}

// ListByChannel pages through a channel's videos. Unpublished entries are
// filtered out unless the viewer is the owner.
func (s *VideoService) ListByChannel(ctx context.Context, channelID, viewerID string, page, limit int) ([]domain.Video, error) {
	page, limit = clampPage(page, limit)

	videos, err := s.Store.Videos().ListByOwner(ctx, channelID, page, limit)
	if err != nil {
		return nil, err
	}
	if channelID == viewerID {
		return videos, nil
	}

	visible := videos[:0]
	for _, v := range videos {
		if v.Published {
			visible = append(visible, v)
		}
	}
	return visible, nil
}

// LikeCount counts likes on a video.
func (s *VideoService) LikeCount(ctx context.Context, videoID string) (int64, error) {
	return s.Store.Edges().CountForTarget(ctx, videoID, domain.EdgeVideoLike)
}

func clampPage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}
