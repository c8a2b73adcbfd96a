package httpapi

import (
	"errors"
	"net/http"

	"fastblog/internal/core/post"

	"github.com/gin-gonic/gin"
)

// postErrorStatus maps post store errors onto HTTP statuses.
func postErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, post.ErrNotFound):
		return http.StatusNotFound, "post not found"
	case errors.Is(err, post.ErrInvalidPost):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, post.ErrCorruptData):
		return http.StatusInternalServerError, "Error: " + err.Error()
	case errors.Is(err, post.ErrStorageUnavailable):
		return http.StatusServiceUnavailable, "post storage unavailable"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

func respondPostError(c *gin.Context, err error) {
	status, msg := postErrorStatus(err)
	_ = c.Error(err)
	c.JSON(status, gin.H{"error": msg})
}

func renderError(c *gin.Context, status int, msg string) {
	c.HTML(status, "error.html", gin.H{"Title": http.StatusText(status), "Message": msg})
}
