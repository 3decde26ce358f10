package domain

import "time"

// User is a registered identity. Username and email are each globally
// unique. RefreshFingerprint is the single slot holding the SHA-256
// fingerprint of the only refresh token currently honoured for this user;
// it is overwritten on every login and rotation and cleared on logout and
// password change.
type User struct {
	ID                 string
	Username           string
	Email              string
	FullName           string
	PasswordHash       string  // argon2id PHC encoded
	RefreshFingerprint *string // nil when no session is active
	AvatarURL          string
	CoverURL           string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
