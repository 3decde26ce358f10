package service

import (
	"context"
	"strings"

	"github.com/clipstack/clipstack/internal/api/domain"
	"github.com/clipstack/clipstack/internal/api/store"
	"github.com/clipstack/clipstack/pkg/idx"
)

// CommentService manages comments under videos.
type CommentService struct {
	Store store.Store
	Guard Guard
}

// Add creates a comment on a video. The video must exist and be visible to
// the commenter.
func (s *CommentService) Add(ctx context.Context, ownerID, videoID, content string) (domain.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return domain.Comment{}, ErrInvalidInput
	}

	video, err := s.Store.Videos().GetByID(ctx, videoID)
	if err != nil {
		return domain.Comment{}, err
	}
	if !video.Published && video.OwnerID != ownerID {
		return domain.Comment{}, store.ErrNotFound
	}

	comment := domain.Comment{
		ID:      idx.New().String(),
		OwnerID: ownerID,
		VideoID: videoID,
		Content: content,
	}
	if err := s.Store.Comments().Create(ctx, comment); err != nil {
		return domain.Comment{}, err
	}
	return comment, nil
}

func (s *CommentService) Update(ctx context.Context, actorID, commentID, content string) (domain.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return domain.Comment{}, ErrInvalidInput
	}

	comment, err := s.Store.Comments().GetByID(ctx, commentID)
	if err != nil {
		return domain.Comment{}, err
	}
	if err := s.Guard.Authorize(actorID, comment.OwnerID); err != nil {
		return domain.Comment{}, err
	}

	if err := s.Store.Comments().UpdateContent(ctx, commentID, content); err != nil {
		return domain.Comment{}, err
	}
	comment.Content = content
	return comment, nil
}

// Delete removes a comment and its like edges.
func (s *CommentService) Delete(ctx context.Context, actorID, commentID string) error {
	comment, err := s.Store.Comments().GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if err := s.Guard.Authorize(actorID, comment.OwnerID); err != nil {
		return err
	}

	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Edges().DeleteForTarget(ctx, commentID); err != nil {
			return err
		}
		return tx.Comments().Delete(ctx, commentID)
	})
}

func (s *CommentService) ListByVideo(ctx context.Context, videoID string, page, limit int) ([]domain.Comment, error) {
	page, limit = clampPage(page, limit)

	if _, err := s.Store.Videos().GetByID(ctx, videoID); err != nil {
		return nil, err
	}
	return s.Store.Comments().ListByVideo(ctx, videoID, page, limit)
}

// ListOwn pages through the comments a user has authored across all videos.
func (s *CommentService) ListOwn(ctx context.Context, ownerID string, page, limit int) ([]domain.Comment, error) {
	page, limit = clampPage(page, limit)
	return s.Store.Comments().ListByOwner(ctx, ownerID, page, limit)
}
