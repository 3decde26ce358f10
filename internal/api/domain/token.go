package domain

// TokenPair is what login and refresh return: a short-lived signed access
// token and the long-lived refresh token whose fingerprint occupies the
// user's single refresh slot.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"` // access token lifetime in seconds
}
