package service

import (
	"context"
	"strings"

	"github.com/clipstack/clipstack/internal/api/domain"
	"github.com/clipstack/clipstack/internal/api/store"
	"github.com/clipstack/clipstack/pkg/idx"
)

// TweetService manages the short text posts on a channel.
type TweetService struct {
	Store store.Store
	Guard Guard
}

func (s *TweetService) Create(ctx context.Context, ownerID, content string) (domain.Tweet, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return domain.Tweet{}, ErrInvalidInput
	}

	tweet := domain.Tweet{
		ID:      idx.New().String(),
		OwnerID: ownerID,
		Content: content,
	}
	if err := s.Store.Tweets().Create(ctx, tweet); err != nil {
		return domain.Tweet{}, err
	}
	return tweet, nil
}

func (s *TweetService) Update(ctx context.Context, actorID, tweetID, content string) (domain.Tweet, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return domain.Tweet{}, ErrInvalidInput
	}

	tweet, err := s.Store.Tweets().GetByID(ctx, tweetID)
	if err != nil {
		return domain.Tweet{}, err
	}
	if err := s.Guard.Authorize(actorID, tweet.OwnerID); err != nil {
		return domain.Tweet{}, err
	}

	if err := s.Store.Tweets().UpdateContent(ctx, tweetID, content); err != nil {
		return domain.Tweet{}, err
	}
	tweet.Content = content
	return tweet, nil
}

// Delete removes a tweet and its like edges.
func (s *TweetService) Delete(ctx context.Context, actorID, tweetID string) error {
	tweet, err := s.Store.Tweets().GetByID(ctx, tweetID)
	if err != nil {
		return err
	}
	if err := s.Guard.Authorize(actorID, tweet.OwnerID); err != nil {
		return err
	}

	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Edges().DeleteForTarget(ctx, tweetID); err != nil {
			return err
		}
		return tx.Tweets().Delete(ctx, tweetID)
	})
}

func (s *TweetService) ListByChannel(ctx context.Context, channelID string) ([]domain.Tweet, error) {
	if _, err := s.Store.Users().GetByID(ctx, channelID); err != nil {
		return nil, err
	}
	return s.Store.Tweets().ListByOwner(ctx, channelID)
}
