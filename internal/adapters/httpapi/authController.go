package httpapi

import (
	"errors"
	"net/http"

	"fastblog/internal/adapters/httpapi/middleware"
	authEntity "fastblog/internal/core/auth"
	authPort "fastblog/internal/ports/auth"

	"github.com/gin-gonic/gin"
)

type AuthController struct{ ac AuthUseCase }

func NewAuthController(ac AuthUseCase) *AuthController { return &AuthController{ac: ac} }

func (ctl *AuthController) Public(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"msg":    "Hello from a public endpoint! You don't need to be authenticated to see this.",
	})
}

func (ctl *AuthController) Private(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"msg":    "Hello from a private endpoint! You need to be authenticated to see this.",
	})
}

func (ctl *AuthController) PrivateScoped(c *gin.Context) {
	resp := gin.H{
		"status": "success",
		"msg":    "Hello from a private endpoint! You need to be authenticated and have a scope of read:messages to see this.",
	}
	if claims, ok := c.Get(middleware.ClaimsKey); ok {
		resp["sub"] = claims.(*authEntity.Claims).Subject
	}
	c.JSON(http.StatusOK, resp)
}

func (ctl *AuthController) Profile(c *gin.Context) {
	c.JSON(http.StatusOK, authPort.ProfileDTO{Username: c.GetString(middleware.UsernameKey)})
}

func (ctl *AuthController) IssueToken(c *gin.Context) {
	res, err := ctl.ac.IssueToken(c.GetString(middleware.UsernameKey), []string{ScopeReadMessages})
	if err != nil {
		if errors.Is(err, authEntity.ErrTokensDisabled) {
			c.JSON(http.StatusNotImplemented, gin.H{"error": "token signing is not configured"})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}
	c.JSON(http.StatusOK, res)
}
