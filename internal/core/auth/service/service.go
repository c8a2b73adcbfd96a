package authapp

import (
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	authEntity "fastblog/internal/core/auth"
	authPort "fastblog/internal/ports/auth"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// AuthService checks presented credentials against fixed values.
type AuthService struct {
	creds  authEntity.Credentials
	tokens authEntity.TokenSettings
	now    func() time.Time
}

func NewAuthService(creds authEntity.Credentials, tokens authEntity.TokenSettings) *AuthService {
	return &AuthService{creds: creds, tokens: tokens, now: time.Now}
}

// CheckBearerToken accepts only the configured token.
func (s *AuthService) CheckBearerToken(token string) error {
	if s.creds.BearerToken == "" || !constantTimeEqual(token, s.creds.BearerToken) {
		return authEntity.ErrUnauthorized
	}
	return nil
}

// CheckBasicCredentials compares username and password independently so the
// time taken does not reveal which of them, or which byte, mismatched.
func (s *AuthService) CheckBasicCredentials(username, password string) error {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.creds.Username))

	var passOK int
	if len(s.creds.PasswordHash) > 0 {
		if bcrypt.CompareHashAndPassword(s.creds.PasswordHash, []byte(password)) == nil {
			passOK = 1
		}
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(s.creds.Password))
	}

	if userOK&passOK != 1 {
		return authEntity.ErrUnauthorized
	}
	return nil
}

// IssueToken signs an HS256 token for subject carrying the given scopes.
func (s *AuthService) IssueToken(subject string, scopes []string) (*authPort.TokenResponse, error) {
	if s.tokens.Secret == "" {
		return nil, authEntity.ErrTokensDisabled
	}
	now := s.now()
	expiresAt := now.Add(s.tokens.TTL).Unix()
	claims := &authEntity.Claims{
		Scope: strings.Join(scopes, " "),
		StandardClaims: jwt.StandardClaims{
			Subject:   subject,
			Issuer:    s.tokens.Issuer,
			IssuedAt:  now.Unix(),
			ExpiresAt: expiresAt,
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.tokens.Secret))
	if err != nil {
		return nil, fmt.Errorf("signing token: %w", err)
	}
	return &authPort.TokenResponse{Token: signed, ExpiresAt: expiresAt}, nil
}

// VerifyScopedToken validates signature, issuer and expiry, then requires scope in the scope claim.
func (s *AuthService) VerifyScopedToken(token, scope string) (*authEntity.Claims, error) {
	if s.tokens.Secret == "" {
		return nil, authEntity.ErrUnauthorized
	}

	claims := &authEntity.Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.tokens.Secret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("invalid token: %w", authEntity.ErrUnauthorized)
	}
	if s.tokens.Issuer != "" && !claims.VerifyIssuer(s.tokens.Issuer, true) {
		return nil, fmt.Errorf("unexpected issuer: %w", authEntity.ErrUnauthorized)
	}

	for _, granted := range strings.Fields(claims.Scope) {
		if granted == scope {
			return claims, nil
		}
	}
	return nil, fmt.Errorf("missing scope %q: %w", scope, authEntity.ErrUnauthorized)
}

func constantTimeEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
