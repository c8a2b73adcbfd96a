package auth

// TokenResponse is returned by the token endpoint.
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

type ProfileDTO struct {
	Username string `json:"username"`
}
