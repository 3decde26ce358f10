package jwtx

import (
	"errors"
	"time"

	"github.com/clipstack/clipstack/pkg/idx"
	"github.com/golang-jwt/jwt/v5"
)

// Default token TTLs. Access tokens are short-lived; refresh tokens live
// for days and are bounded further by the single-slot fingerprint check.
const (
	DefaultAccessTokenTTL  = 15 * time.Minute
	DefaultRefreshTokenTTL = 7 * 24 * time.Hour
)

var (
	// ErrMalformed covers anything that is not a well-signed token of the
	// expected shape: garbage input, wrong signing algorithm, bad signature.
	ErrMalformed = errors.New("jwtx: malformed token")

	// ErrExpired means the token was well-signed but its exp has passed
	// (or nbf has not arrived). Expiry is evaluated lazily at verification.
	ErrExpired = errors.New("jwtx: token expired")
)

// Claims are the claims carried by both access and refresh tokens. Subject
// is the identity id; nothing else is load-bearing.
type Claims struct {
	jwt.RegisteredClaims
}

// Signer mints and verifies HS256 tokens with a fixed secret, TTL and
// issuer. Access and refresh tokens use separate Signers with separate
// secrets so one kind can never be presented as the other.
type Signer struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

func NewSigner(secret string, ttl time.Duration, issuer string) *Signer {
	return &Signer{secret: []byte(secret), ttl: ttl, issuer: issuer}
}

// TTL returns the lifetime this signer stamps on tokens.
func (s *Signer) TTL() time.Duration { return s.ttl }

// Sign mints a token for the given subject, issued now. The jti makes
// every minted token unique even when two are signed for the same subject
// within the same second.
func (s *Signer) Sign(subject string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        idx.New().String(),
			Issuer:    s.issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify parses and validates a token, returning its claims. Any failure
// is collapsed into ErrMalformed or ErrExpired; callers never see parser
// internals.
func (s *Signer) Verify(token string) (Claims, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrMalformed
		}
		return s.secret, nil
	}, jwt.WithIssuer(s.issuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) || errors.Is(err, jwt.ErrTokenNotValidYet) {
			return Claims{}, ErrExpired
		}
		return Claims{}, ErrMalformed
	}
	if !parsed.Valid || claims.Subject == "" {
		return Claims{}, ErrMalformed
	}
	return claims, nil
}
