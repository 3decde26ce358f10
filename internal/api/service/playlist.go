package service

import (
	"context"
	"strings"

	"github.com/clipstack/clipstack/internal/api/domain"
	"github.com/clipstack/clipstack/internal/api/store"
	"github.com/clipstack/clipstack/pkg/idx"
)

// PlaylistService manages playlists and their video membership.
type PlaylistService struct {
	Store store.Store
	Guard Guard
}

func (s *PlaylistService) Create(ctx context.Context, ownerID, name, description string) (domain.Playlist, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Playlist{}, ErrInvalidInput
	}

	playlist := domain.Playlist{
		ID:          idx.New().String(),
		OwnerID:     ownerID,
		Name:        name,
		Description: description,
	}
	if err := s.Store.Playlists().Create(ctx, playlist); err != nil {
		return domain.Playlist{}, err
	}
	return playlist, nil
}

func (s *PlaylistService) Get(ctx context.Context, playlistID string) (domain.Playlist, error) {
	return s.Store.Playlists().GetByID(ctx, playlistID)
}

func (s *PlaylistService) Update(ctx context.Context, actorID, playlistID, name, description string) (domain.Playlist, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Playlist{}, ErrInvalidInput
	}

	playlist, err := s.Store.Playlists().GetByID(ctx, playlistID)
	if err != nil {
		return domain.Playlist{}, err
	}
	if err := s.Guard.Authorize(actorID, playlist.OwnerID); err != nil {
		return domain.Playlist{}, err
	}

	if err := s.Store.Playlists().Update(ctx, playlistID, name, description); err != nil {
		return domain.Playlist{}, err
	}
	playlist.Name = name
	playlist.Description = description
	return playlist, nil
}

func (s *PlaylistService) Delete(ctx context.Context, actorID, playlistID string) error {
	playlist, err := s.Store.Playlists().GetByID(ctx, playlistID)
	if err != nil {
		return err
	}
	if err := s.Guard.Authorize(actorID, playlist.OwnerID); err != nil {
		return err
	}
	return s.Store.Playlists().Delete(ctx, playlistID)
}

func (s *PlaylistService) ListByOwner(ctx context.Context, ownerID string) ([]domain.Playlist, error) {
	return s.Store.Playlists().ListByOwner(ctx, ownerID)
}

// AddVideo puts a video into a playlist the actor owns. Adding a video
// that is already present is a no-op.
func (s *PlaylistService) AddVideo(ctx context.Context, actorID, playlistID, videoID string) error {
	playlist, err := s.Store.Playlists().GetByID(ctx, playlistID)
	if err != nil {
		return err
	}
	if err := s.Guard.Authorize(actorID, playlist.OwnerID); err != nil {
		return err
	}
	if _, err := s.Store.Videos().GetByID(ctx, videoID); err != nil {
		return err
	}

	_, err = s.Store.Playlists().AddVideo(ctx, playlistID, videoID)
	return err
}

// RemoveVideo takes a video out of a playlist the actor owns. Removing a
// video that is not present is a no-op.
func (s *PlaylistService) RemoveVideo(ctx context.Context, actorID, playlistID, videoID string) error {
	playlist, err := s.Store.Playlists().GetByID(ctx, playlistID)
	if err != nil {
		return err
	}
	if err := s.Guard.Authorize(actorID, playlist.OwnerID); err != nil {
		return err
	}

	_, err = s.Store.Playlists().RemoveVideo(ctx, playlistID, videoID)
	return err
}
