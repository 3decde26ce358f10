package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/clipstack/clipstack/internal/api/domain"
	"github.com/clipstack/clipstack/internal/api/store"
	"github.com/clipstack/clipstack/pkg/cryptox"
	"github.com/clipstack/clipstack/pkg/idx"
	"github.com/clipstack/clipstack/pkg/slogx"
)

// UserService handles registration, login and account maintenance.
type UserService struct {
	Store  store.Store
	Tokens *TokenService
}

// RegisterRequest captures the inputs to create an account. Username and
// email are normalized to lower case before the uniqueness check.
type RegisterRequest struct {
	Username  string
	Email     string
	FullName  string
	Password  string
	AvatarURL string
	CoverURL  string
}

// ChannelProfile is a user as seen by a viewer: the public account fields
// plus subscription facts.
type ChannelProfile struct {
	User            domain.User
	SubscriberCount int64
	Subscribed      bool
}

// ChannelStats aggregates what a channel owner sees on their dashboard.
type ChannelStats struct {
	VideoCount      int64
	TotalViews      int64
	SubscriberCount int64
	TotalLikes      int64
}

// Register creates a new account. Returns store.ErrAlreadyExists when the
// username or email is taken.
func (s *UserService) Register(ctx context.Context, req RegisterRequest) (domain.User, error) {
	req.Username = strings.ToLower(strings.TrimSpace(req.Username))
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.FullName = strings.TrimSpace(req.FullName)

	if req.Username == "" || req.Email == "" || req.FullName == "" || req.Password == "" {
		return domain.User{}, ErrInvalidInput
	}

	hash, err := cryptox.HashPassword(req.Password)
	if err != nil {
		return domain.User{}, err
	}

	user := domain.User{
		ID:           idx.New().String(),
		Username:     req.Username,
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: hash,
		AvatarURL:    req.AvatarURL,
		CoverURL:     req.CoverURL,
	}
	if err := s.Store.Users().Create(ctx, user); err != nil {
		return domain.User{}, err
	}

	slogx.FromContext(ctx).Info("user registered",
		slog.String("user_id", user.ID),
		slog.String("username", user.Username))
	return user, nil
}

// Login authenticates by username or email plus password and issues a
// token pair. The pair occupies the refresh slot, ending any previous
// session on this account.
func (s *UserService) Login(ctx context.Context, usernameOrEmail, password string) (domain.User, domain.TokenPair, error) {
	usernameOrEmail = strings.ToLower(strings.TrimSpace(usernameOrEmail))

	user, err := s.Store.Users().GetByUsernameOrEmail(ctx, usernameOrEmail)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, domain.TokenPair{}, ErrInvalidCredentials
		}
		return domain.User{}, domain.TokenPair{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		slogx.FromContext(ctx).Info("login failed",
			slog.String("user_id", user.ID))
		return domain.User{}, domain.TokenPair{}, ErrInvalidCredentials
	}

	pair, err := s.Tokens.IssuePair(ctx, user.ID)
	if err != nil {
		return domain.User{}, domain.TokenPair{}, err
	}
	return user, pair, nil
}

// Logout revokes the caller's refresh slot.
func (s *UserService) Logout(ctx context.Context, userID string) error {
	return s.Tokens.Revoke(ctx, userID)
}

// ChangePassword verifies the old password, stores the new hash and clears
// the refresh slot so every outstanding refresh token dies with the old
// password.
func (s *UserService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	if newPassword == "" {
		return ErrInvalidInput
	}

	user, err := s.Store.Users().GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := cryptox.VerifyPassword(oldPassword, user.PasswordHash); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return err
	}

	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().UpdatePasswordHash(ctx, userID, hash); err != nil {
			return err
		}
		return tx.Users().ClearRefreshFingerprint(ctx, userID)
	})
}

// UpdateDetails changes the mutable account fields.
func (s *UserService) UpdateDetails(ctx context.Context, userID, fullName, email string) error {
	fullName = strings.TrimSpace(fullName)
	email = strings.ToLower(strings.TrimSpace(email))
	if fullName == "" || email == "" {
		return ErrInvalidInput
	}
	return s.Store.Users().UpdateDetails(ctx, userID, fullName, email)
}

// UpdateAvatar replaces the avatar and cover image urls.
func (s *UserService) UpdateAvatar(ctx context.Context, userID, avatarURL, coverURL string) error {
	return s.Store.Users().UpdateAvatar(ctx, userID, avatarURL, coverURL)
}

// GetByID returns an account by id.
func (s *UserService) GetByID(ctx context.Context, userID string) (domain.User, error) {
	return s.Store.Users().GetByID(ctx, userID)
}

// Channel returns a channel profile as seen by viewerID. viewerID may be
// empty for anonymous viewers.
func (s *UserService) Channel(ctx context.Context, username, viewerID string) (ChannelProfile, error) {
	user, err := s.Store.Users().GetByUsername(ctx, strings.ToLower(strings.TrimSpace(username)))
	if err != nil {
		return ChannelProfile{}, err
	}

	count, err := s.Store.Edges().CountForTarget(ctx, user.ID, domain.EdgeSubscription)
	if err != nil {
		return ChannelProfile{}, err
	}

	profile := ChannelProfile{User: user, SubscriberCount: count}
	if viewerID != "" {
		subs, err := s.Store.Edges().ListSubscriptions(ctx, viewerID)
		if err != nil {
			return ChannelProfile{}, err
		}
		for _, id := range subs {
			if id == user.ID {
				profile.Subscribed = true
				break
			}
		}
	}
	return profile, nil
}

// Stats aggregates the dashboard numbers for a channel owner.
func (s *UserService) Stats(ctx context.Context, ownerID string) (ChannelStats, error) {
	count, views, err := s.Store.Videos().OwnerStats(ctx, ownerID)
	if err != nil {
		return ChannelStats{}, err
	}

	subs, err := s.Store.Edges().CountForTarget(ctx, ownerID, domain.EdgeSubscription)
	if err != nil {
		return ChannelStats{}, err
	}

	likes, err := s.Store.Edges().CountVideoLikesForOwner(ctx, ownerID)
	if err != nil {
		return ChannelStats{}, err
	}

	return ChannelStats{
		VideoCount:      count,
		TotalViews:      views,
		SubscriberCount: subs,
		TotalLikes:      likes,
	}, nil
}
