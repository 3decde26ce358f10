package jwtx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSignAndVerify(t *testing.T) {
	t.Parallel()

	s := NewSigner("test-secret", time.Minute, "clipstack")

	token, err := s.Sign("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := s.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-123", claims.Subject)
	require.Equal(t, "clipstack", claims.Issuer)
	require.NotNil(t, claims.IssuedAt)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	t.Parallel()

	s := NewSigner("test-secret", time.Minute, "clipstack")

	tests := []struct {
		name  string
		token string
	}{
		{"empty string", ""},
		{"not a jwt", "definitely-not-a-jwt"},
		{"truncated", "eyJhbGciOiJIUzI1NiJ9.eyJzdWIi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Verify(tt.token)
			require.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	a := NewSigner("secret-a", time.Minute, "clipstack")
	b := NewSigner("secret-b", time.Minute, "clipstack")

	token, err := a.Sign("user-123")
	require.NoError(t, err)

	_, err = b.Verify(token)
	require.ErrorIs(t, err, ErrMalformed)
}

func TestVerifyRejectsCrossSignerTokens(t *testing.T) {
	t.Parallel()

	// Access and refresh signers share an issuer but not a secret; a
	// refresh token must never pass access verification.
	access := NewSigner("access-secret", time.Minute, "clipstack")
	refresh := NewSigner("refresh-secret", time.Hour, "clipstack")

	token, err := refresh.Sign("user-123")
	require.NoError(t, err)

	_, err = access.Verify(token)
	require.ErrorIs(t, err, ErrMalformed)
}

func TestVerifyRejectsExpired(t *testing.T) {
	t.Parallel()

	s := NewSigner("test-secret", -time.Minute, "clipstack")

	token, err := s.Sign("user-123")
	require.NoError(t, err)

	_, err = s.Verify(token)
	require.ErrorIs(t, err, ErrExpired)
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	t.Parallel()

	other := NewSigner("test-secret", time.Minute, "someone-else")
	s := NewSigner("test-secret", time.Minute, "clipstack")

	token, err := other.Sign("user-123")
	require.NoError(t, err)

	_, err = s.Verify(token)
	require.ErrorIs(t, err, ErrMalformed)
}
