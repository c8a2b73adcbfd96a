package middleware

import (
	"net/http"
	"strings"

	authEntity "fastblog/internal/core/auth"

	"github.com/gin-gonic/gin"
)

const (
	UsernameKey = "username"
	ClaimsKey   = "claims"

	basicChallenge = `Basic realm="fastblog"`
)

type BearerChecker interface {
	CheckBearerToken(token string) error
}

type BasicChecker interface {
	CheckBasicCredentials(username, password string) error
}

type ScopedVerifier interface {
	VerifyScopedToken(token, scope string) (*authEntity.Claims, error)
}

// BearerAuth requires "Authorization: Bearer <token>" matching the configured token.
func BearerAuth(checker BearerChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok || checker.CheckBearerToken(token) != nil {
			abortUnauthorized(c, "Bearer")
			return
		}
		c.Next()
	}
}

// BasicAuth requires HTTP basic credentials and stores the username under UsernameKey.
func BasicAuth(checker BasicChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, password, ok := c.Request.BasicAuth()
		if !ok || checker.CheckBasicCredentials(username, password) != nil {
			abortUnauthorized(c, basicChallenge)
			return
		}
		c.Set(UsernameKey, username)
		c.Next()
	}
}

// ScopedAuth requires a signed bearer JWT granting scope and stores its claims under ClaimsKey.
func ScopedAuth(verifier ScopedVerifier, scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abortUnauthorized(c, "Bearer")
			return
		}
		claims, err := verifier.VerifyScopedToken(token, scope)
		if err != nil {
			abortUnauthorized(c, `Bearer error="insufficient_scope", scope="`+scope+`"`)
			return
		}
		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// bearerToken keeps everything after the scheme, so tokens may contain spaces.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", false
	}
	return token, true
}

func abortUnauthorized(c *gin.Context, challenge string) {
	c.Header("WWW-Authenticate", challenge)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
}
