package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlaylistLifecycle(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := &PlaylistService{Store: s}

	alice := seedUser(t, s, "alice")
	bob := seedUser(t, s, "bob")
	v1 := seedVideo(t, s, alice.ID, true)
	v2 := seedVideo(t, s, alice.ID, true)

	playlist, err := svc.Create(ctx, alice.ID, "favourites", "the good ones")
	require.NoError(t, err)

	require.NoError(t, svc.AddVideo(ctx, alice.ID, playlist.ID, v1.ID))
	require.NoError(t, svc.AddVideo(ctx, alice.ID, playlist.ID, v2.ID))

	// Re-adding is a no-op, not an error.
	require.NoError(t, svc.AddVideo(ctx, alice.ID, playlist.ID, v1.ID))

	got, err := svc.Get(ctx, playlist.ID)
	require.NoError(t, err)
	require.Equal(t, []string{v1.ID, v2.ID}, got.VideoIDs)

	t.Run("membership is owner-only", func(t *testing.T) {
		require.ErrorIs(t, svc.AddVideo(ctx, bob.ID, playlist.ID, v1.ID), ErrForbidden)
		require.ErrorIs(t, svc.RemoveVideo(ctx, bob.ID, playlist.ID, v1.ID), ErrForbidden)
	})

	require.NoError(t, svc.RemoveVideo(ctx, alice.ID, playlist.ID, v1.ID))

	got, err = svc.Get(ctx, playlist.ID)
	require.NoError(t, err)
	require.Equal(t, []string{v2.ID}, got.VideoIDs)

	lists, err := svc.ListByOwner(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, lists, 1)

	require.ErrorIs(t, svc.Delete(ctx, bob.ID, playlist.ID), ErrForbidden)
	require.NoError(t, svc.Delete(ctx, alice.ID, playlist.ID))
}
