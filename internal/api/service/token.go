package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/clipstack/clipstack/internal/api/domain"
	"github.com/clipstack/clipstack/internal/api/store"
	"github.com/clipstack/clipstack/pkg/cryptox"
	"github.com/clipstack/clipstack/pkg/jwtx"
	"github.com/clipstack/clipstack/pkg/slogx"
)

// TokenService owns the token lifecycle: issuing access/refresh pairs,
// verifying access tokens, rotating refresh tokens and revoking sessions.
//
// Each user has a single refresh slot holding the fingerprint of the one
// refresh token currently honoured. Rotation replaces the slot through a
// conditional swap so concurrent rotations with the same token cannot both
// succeed, and presenting a token whose fingerprint no longer matches the
// slot is treated as reuse and revokes the session outright.
type TokenService struct {
	Store   store.Store
	Access  *jwtx.Signer
	Refresh *jwtx.Signer
}

// IssuePair signs a fresh access/refresh pair for userID and overwrites the
// refresh slot unconditionally. Any previously issued refresh token stops
// being honoured at that point.
func (s *TokenService) IssuePair(ctx context.Context, userID string) (domain.TokenPair, error) {
	accessToken, err := s.Access.Sign(userID)
	if err != nil {
		return domain.TokenPair{}, err
	}

	refreshToken, err := s.Refresh.Sign(userID)
	if err != nil {
		return domain.TokenPair{}, err
	}

	fp := cryptox.FingerprintToken(refreshToken)
	if err := s.Store.Users().SetRefreshFingerprint(ctx, userID, fp); err != nil {
		return domain.TokenPair{}, err
	}

	return domain.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.Access.TTL().Seconds()),
	}, nil
}

// VerifyAccess validates an access token and returns the subject user id.
func (s *TokenService) VerifyAccess(token string) (string, error) {
	claims, err := s.Access.Verify(token)
	if err != nil {
		return "", mapTokenError(err)
	}
	return claims.Subject, nil
}

// Rotate exchanges a valid refresh token for a new pair. The old token is
// retired in the same step: the slot swap is conditional on the old
// fingerprint, so of two concurrent rotations with the same token exactly
// one succeeds and the other observes reuse.
//
// A token that is well formed and unexpired but does not match the slot is
// a replay of an already rotated token. The session cannot tell which
// holder is legitimate anymore, so it clears the slot and forces a fresh
// login.
func (s *TokenService) Rotate(ctx context.Context, refreshToken string) (domain.TokenPair, error) {
	l := slogx.FromContext(ctx)

	claims, err := s.Refresh.Verify(refreshToken)
	if err != nil {
		return domain.TokenPair{}, mapTokenError(err)
	}
	userID := claims.Subject

	user, err := s.Store.Users().GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.TokenPair{}, ErrIdentityNotFound
		}
		return domain.TokenPair{}, err
	}

	incoming := cryptox.FingerprintToken(refreshToken)

	if user.RefreshFingerprint == nil {
		// No active session. The token was revoked underneath its holder.
		return domain.TokenPair{}, ErrTokenReused
	}

	if *user.RefreshFingerprint != incoming {
		l.Warn("refresh token reuse detected, revoking session",
			slog.String("user_id", userID))
		if err := s.Store.Users().ClearRefreshFingerprint(ctx, userID); err != nil {
			return domain.TokenPair{}, err
		}
		return domain.TokenPair{}, ErrTokenReused
	}

	accessToken, err := s.Access.Sign(userID)
	if err != nil {
		return domain.TokenPair{}, err
	}
	newRefresh, err := s.Refresh.Sign(userID)
	if err != nil {
		return domain.TokenPair{}, err
	}

	swapped, err := s.Store.Users().SwapRefreshFingerprint(ctx, userID, incoming, cryptox.FingerprintToken(newRefresh))
	if err != nil {
		return domain.TokenPair{}, err
	}
	if !swapped {
		// A concurrent rotation retired this token between our read and the
		// swap. The loser is indistinguishable from a replay.
		l.Warn("refresh token lost rotation race",
			slog.String("user_id", userID))
		return domain.TokenPair{}, ErrTokenReused
	}

	return domain.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: newRefresh,
		ExpiresIn:    int64(s.Access.TTL().Seconds()),
	}, nil
}

// Revoke clears the refresh slot so no refresh token is honoured until the
// next login. Outstanding access tokens keep working until they expire.
func (s *TokenService) Revoke(ctx context.Context, userID string) error {
	return s.Store.Users().ClearRefreshFingerprint(ctx, userID)
}

func mapTokenError(err error) error {
	switch {
	case errors.Is(err, jwtx.ErrExpired):
		return ErrTokenExpired
	default:
		return ErrTokenMalformed
	}
}
