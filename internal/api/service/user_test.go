package service

import (
	"context"
	"testing"

	"github.com/clipstack/clipstack/internal/api/domain"
	"github.com/clipstack/clipstack/internal/api/store"
	"github.com/stretchr/testify/require"
)

func newTestUserService(s store.Store) *UserService {
	return &UserService{Store: s, Tokens: newTestTokenService(s)}
}

func TestRegisterNormalizesAndRejectsDuplicates(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := newTestUserService(s)

	user, err := svc.Register(ctx, RegisterRequest{
		Username: "  Alice ",
		Email:    "Alice@Example.COM",
		FullName: "Alice Example",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)
	require.Equal(t, "alice", user.Username)
	require.Equal(t, "alice@example.com", user.Email)
	require.NotEqual(t, "hunter2hunter2", user.PasswordHash)

	_, err = svc.Register(ctx, RegisterRequest{
		Username: "ALICE",
		Email:    "other@example.com",
		FullName: "Alice Again",
		Password: "hunter2hunter2",
	})
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	_, err = svc.Register(ctx, RegisterRequest{
		Username: "alice2",
		Email:    "alice@example.com",
		FullName: "Alice Again",
		Password: "hunter2hunter2",
	})
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	t.Run("missing fields", func(t *testing.T) {
		_, err := svc.Register(ctx, RegisterRequest{Username: "bob"})
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestLoginIssuesTokensAndEndsPreviousSession(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := newTestUserService(s)

	registered, err := svc.Register(ctx, RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		FullName: "Alice Example",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)

	t.Run("by username", func(t *testing.T) {
		user, pair, err := svc.Login(ctx, "alice", "hunter2hunter2")
		require.NoError(t, err)
		require.Equal(t, registered.ID, user.ID)
		require.NotEmpty(t, pair.RefreshToken)
	})

	t.Run("by email", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "ALICE@example.com", "hunter2hunter2")
		require.NoError(t, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "alice", "wrong")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown account", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "nobody", "hunter2hunter2")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("second login retires the first refresh token", func(t *testing.T) {
		_, first, err := svc.Login(ctx, "alice", "hunter2hunter2")
		require.NoError(t, err)
		_, _, err = svc.Login(ctx, "alice", "hunter2hunter2")
		require.NoError(t, err)

		_, err = svc.Tokens.Rotate(ctx, first.RefreshToken)
		require.ErrorIs(t, err, ErrTokenReused)
	})
}

func TestChangePasswordRevokesSession(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := newTestUserService(s)

	_, err := svc.Register(ctx, RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		FullName: "Alice Example",
		Password: "old-password-1",
	})
	require.NoError(t, err)

	user, pair, err := svc.Login(ctx, "alice", "old-password-1")
	require.NoError(t, err)

	require.ErrorIs(t,
		svc.ChangePassword(ctx, user.ID, "wrong", "new-password-1"),
		ErrInvalidCredentials)

	require.NoError(t, svc.ChangePassword(ctx, user.ID, "old-password-1", "new-password-1"))

	_, _, err = svc.Login(ctx, "alice", "old-password-1")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Tokens.Rotate(ctx, pair.RefreshToken)
	require.ErrorIs(t, err, ErrTokenReused)

	_, _, err = svc.Login(ctx, "alice", "new-password-1")
	require.NoError(t, err)
}

func TestChannelProfileAndStats(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := newTestUserService(s)
	toggles := &ToggleService{Store: s}

	alice := seedUser(t, s, "alice")
	bob := seedUser(t, s, "bob")
	video := seedVideo(t, s, bob.ID, true)

	require.NoError(t, s.Videos().IncrementViews(ctx, video.ID))
	require.NoError(t, s.Videos().IncrementViews(ctx, video.ID))

	_, err := toggles.Toggle(ctx, alice.ID, bob.ID, domain.EdgeSubscription)
	require.NoError(t, err)
	_, err = toggles.Toggle(ctx, alice.ID, video.ID, domain.EdgeVideoLike)
	require.NoError(t, err)

	t.Run("profile as subscriber", func(t *testing.T) {
		profile, err := svc.Channel(ctx, "bob", alice.ID)
		require.NoError(t, err)
		require.Equal(t, bob.ID, profile.User.ID)
		require.EqualValues(t, 1, profile.SubscriberCount)
		require.True(t, profile.Subscribed)
	})

	t.Run("profile as anonymous", func(t *testing.T) {
		profile, err := svc.Channel(ctx, "bob", "")
		require.NoError(t, err)
		require.False(t, profile.Subscribed)
	})

	t.Run("email address resolves no profile", func(t *testing.T) {
		_, err := svc.Channel(ctx, bob.Email, "")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("owner dashboard stats", func(t *testing.T) {
		stats, err := svc.Stats(ctx, bob.ID)
		require.NoError(t, err)
		require.EqualValues(t, 1, stats.VideoCount)
		require.EqualValues(t, 2, stats.TotalViews)
		require.EqualValues(t, 1, stats.SubscriberCount)
		require.EqualValues(t, 1, stats.TotalLikes)
	})
}
