package auth

import (
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
)

var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrTokensDisabled = errors.New("token signing is not configured")
)

// Credentials are fixed at startup and never mutated.
type Credentials struct {
	Username string
	Password string
	// PasswordHash is a bcrypt hash; when set it replaces Password.
	PasswordHash []byte
	BearerToken  string
}

// TokenSettings configure the scoped JWT routes. An empty Secret disables them.
type TokenSettings struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

// Claims carry a space separated scope list next to the registered claims.
type Claims struct {
	Scope string `json:"scope"`
	jwt.StandardClaims
}
