package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"fastblog/internal/core/post"
	postPort "fastblog/internal/ports/post"

	"github.com/gin-gonic/gin"
)

type PostController struct{ pc PostUseCase }

func NewPostController(pc PostUseCase) *PostController { return &PostController{pc: pc} }

func (ctl *PostController) ListPage(c *gin.Context) {
	posts, err := ctl.pc.ListPosts(c.Request.Context())
	if err != nil {
		status, msg := postErrorStatus(err)
		_ = c.Error(err)
		renderError(c, status, msg)
		return
	}
	c.HTML(http.StatusOK, "posts.html", gin.H{"Title": "Posts", "Posts": posts})
}

func (ctl *PostController) ShowPage(c *gin.Context) {
	id := c.Param("id")
	p, err := ctl.pc.GetPost(c.Request.Context(), id)
	if err != nil {
		status, msg := postErrorStatus(err)
		if errors.Is(err, post.ErrNotFound) {
			msg = fmt.Sprintf("Post %s not found", id)
			c.Header("X-Error", "The filename has a pattern of post_{id}.json")
		}
		_ = c.Error(err)
		renderError(c, status, msg)
		return
	}
	c.HTML(http.StatusOK, "post.html", gin.H{"Title": p.Title, "Post": p})
}

// CreateFromForm stores a post from the HTML form and redirects to the listing.
func (ctl *PostController) CreateFromForm(c *gin.Context) {
	var req struct {
		ID    string `form:"id" binding:"required"`
		Title string `form:"title" binding:"required"`
	}
	if err := c.ShouldBind(&req); err != nil {
		renderError(c, http.StatusBadRequest, "id and title are required")
		return
	}
	var content *string
	if text, ok := c.GetPostForm("copy_text"); ok {
		content = &text
	}

	if _, err := ctl.pc.PutPost(c.Request.Context(), req.ID, req.Title, content); err != nil {
		status, msg := postErrorStatus(err)
		_ = c.Error(err)
		renderError(c, status, msg)
		return
	}
	c.Redirect(http.StatusSeeOther, "/posts")
}

func (ctl *PostController) List(c *gin.Context) {
	posts, err := ctl.pc.ListPosts(c.Request.Context())
	if err != nil {
		respondPostError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

func (ctl *PostController) Get(c *gin.Context) {
	id := c.Param("id")
	p, err := ctl.pc.GetPost(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, post.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Post %s not found", id)})
			return
		}
		respondPostError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Put creates or replaces a post from a JSON body and echoes the request.
func (ctl *PostController) Put(c *gin.Context) {
	var req postPort.PutPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	if _, err := ctl.pc.PutPost(c.Request.Context(), req.ID, req.Title, req.TextCopy); err != nil {
		respondPostError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// Delete answers with a JSON string describing the outcome; a missing post is still 200.
func (ctl *PostController) Delete(c *gin.Context) {
	_, msg, err := ctl.pc.DeletePost(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": msg})
		return
	}
	c.JSON(http.StatusOK, msg)
}
