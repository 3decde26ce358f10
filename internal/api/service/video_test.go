package service

import (
	"context"
	"testing"

	"github.com/clipstack/clipstack/internal/api/store"
	"github.com/stretchr/testify/require"
)

func TestVideoVisibility(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := &VideoService{Store: s}

	alice := seedUser(t, s, "alice")
	bob := seedUser(t, s, "bob")
	draft := seedVideo(t, s, alice.ID, false)

	t.Run("owner sees own draft", func(t *testing.T) {
		got, err := svc.Get(ctx, draft.ID, alice.ID)
		require.NoError(t, err)
		require.Equal(t, draft.ID, got.ID)
	})

	t.Run("draft is not found for others", func(t *testing.T) {
		_, err := svc.Get(ctx, draft.ID, bob.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
		_, err = svc.Get(ctx, draft.ID, "")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("views count only foreign viewers", func(t *testing.T) {
		published := seedVideo(t, s, alice.ID, true)

		_, err := svc.Get(ctx, published.ID, alice.ID)
		require.NoError(t, err)

		got, err := svc.Get(ctx, published.ID, bob.ID)
		require.NoError(t, err)
		require.EqualValues(t, 1, got.Views)
	})
}

func TestVideoMutationsRequireOwnership(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := &VideoService{Store: s}

	alice := seedUser(t, s, "alice")
	bob := seedUser(t, s, "bob")
	video := seedVideo(t, s, alice.ID, true)

	_, err := svc.Update(ctx, bob.ID, video.ID, "hijacked", "", "")
	require.ErrorIs(t, err, ErrForbidden)

	_, err = svc.TogglePublish(ctx, bob.ID, video.ID)
	require.ErrorIs(t, err, ErrForbidden)

	require.ErrorIs(t, svc.Delete(ctx, bob.ID, video.ID), ErrForbidden)

	// Missing beats forbidden: acting on an absent video is not found for
	// everyone including non-owners.
	require.ErrorIs(t, svc.Delete(ctx, bob.ID, "does-not-exist"), store.ErrNotFound)

	updated, err := svc.Update(ctx, alice.ID, video.ID, "new title", "new desc", "")
	require.NoError(t, err)
	require.Equal(t, "new title", updated.Title)

	published, err := svc.TogglePublish(ctx, alice.ID, video.ID)
	require.NoError(t, err)
	require.False(t, published)
}

func TestVideoDeleteRemovesLikeEdges(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	videos := &VideoService{Store: s}
	toggles := &ToggleService{Store: s}

	alice := seedUser(t, s, "alice")
	bob := seedUser(t, s, "bob")
	video := seedVideo(t, s, alice.ID, true)

	_, err := toggles.Toggle(ctx, bob.ID, video.ID, "video_like")
	require.NoError(t, err)

	require.NoError(t, videos.Delete(ctx, alice.ID, video.ID))

	liked, err := toggles.LikedVideos(ctx, bob.ID)
	require.NoError(t, err)
	require.Empty(t, liked)

	count, err := s.Edges().CountForTarget(ctx, video.ID, "video_like")
	require.NoError(t, err)
	require.EqualValues(t, 0, count)
}

func TestVideoListings(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := &VideoService{Store: s}

	alice := seedUser(t, s, "alice")
	bob := seedUser(t, s, "bob")

	seedVideo(t, s, alice.ID, true)
	seedVideo(t, s, alice.ID, false)
	seedVideo(t, s, bob.ID, true)

	t.Run("public feed only shows published", func(t *testing.T) {
		feed, err := svc.ListPublished(ctx, 1, 10)
		require.NoError(t, err)
		require.Len(t, feed, 2)
		for _, v := range feed {
			require.True(t, v.Published)
		}
	})

	t.Run("channel listing hides drafts from visitors", func(t *testing.T) {
		visible, err := svc.ListByChannel(ctx, alice.ID, bob.ID, 1, 10)
		require.NoError(t, err)
		require.Len(t, visible, 1)
	})

	t.Run("channel owner sees drafts", func(t *testing.T) {
		own, err := svc.ListByChannel(ctx, alice.ID, alice.ID, 1, 10)
		require.NoError(t, err)
		require.Len(t, own, 2)
	})

	t.Run("page bounds are clamped", func(t *testing.T) {
		feed, err := svc.ListPublished(ctx, 0, -5)
		require.NoError(t, err)
		require.Len(t, feed, 2)
	})
}

func TestWatchHistory(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := &VideoService{Store: s}

	alice := seedUser(t, s, "alice")
	bob := seedUser(t, s, "bob")
	first := seedVideo(t, s, bob.ID, true)
	second := seedVideo(t, s, bob.ID, true)

	t.Run("anonymous views leave no history", func(t *testing.T) {
		_, err := svc.Get(ctx, first.ID, "")
		require.NoError(t, err)

		watched, err := svc.History(ctx, alice.ID, 1, 10)
		require.NoError(t, err)
		require.Empty(t, watched)
	})

	t.Run("views are recorded per viewer", func(t *testing.T) {
		_, err := svc.Get(ctx, first.ID, alice.ID)
		require.NoError(t, err)
		_, err = svc.Get(ctx, second.ID, alice.ID)
		require.NoError(t, err)

		watched, err := svc.History(ctx, alice.ID, 1, 10)
		require.NoError(t, err)
		require.Len(t, watched, 2)

		ids := []string{watched[0].ID, watched[1].ID}
		require.ElementsMatch(t, []string{first.ID, second.ID}, ids)

		other, err := svc.History(ctx, bob.ID, 1, 10)
		require.NoError(t, err)
		require.Empty(t, other)
	})

	t.Run("re-watching does not duplicate", func(t *testing.T) {
		_, err := svc.Get(ctx, first.ID, alice.ID)
		require.NoError(t, err)

		watched, err := svc.History(ctx, alice.ID, 1, 10)
		require.NoError(t, err)
		require.Len(t, watched, 2)
	})
}
