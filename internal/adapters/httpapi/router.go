package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"fastblog/internal/adapters/httpapi/middleware"
	authEntity "fastblog/internal/core/auth"
	"fastblog/internal/core/event"
	authPort "fastblog/internal/ports/auth"
	postPort "fastblog/internal/ports/post"
	"fastblog/web"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScopeReadMessages guards /api/private-scoped and is granted by /api/token.
const ScopeReadMessages = "read:messages"

type AuthUseCase interface {
	CheckBearerToken(token string) error
	CheckBasicCredentials(username, password string) error
	IssueToken(subject string, scopes []string) (*authPort.TokenResponse, error)
	VerifyScopedToken(token, scope string) (*authEntity.Claims, error)
}

type PostUseCase interface {
	GetPost(ctx context.Context, id string) (*postPort.PostDTO, error)
	ListPosts(ctx context.Context) ([]*postPort.PostDTO, error)
	PutPost(ctx context.Context, id, title string, content *string) (*postPort.PostDTO, error)
	DeletePost(ctx context.Context, id string) (postPort.DeleteResult, string, error)
}

type EventUseCase interface {
	ListEvents(ctx context.Context) []event.Event
}

// SetupRoutes wires the use cases into a gin engine. Only routing lives here.
func SetupRoutes(
	authUC AuthUseCase,
	postUC PostUseCase,
	eventUC EventUseCase,
	logger *zap.Logger,
) (*gin.Engine, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.RequestLogger(logger), gin.Recovery())
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", http.FS(web.Static()))

	pages := NewPageController()
	ac := NewAuthController(authUC)
	pc := NewPostController(postUC)
	ec := NewEventController(eventUC)

	// HTML pages
	r.GET("/", pages.Home)
	r.GET("/about", pages.About)
	r.GET("/contact", pages.Contact)
	r.GET("/posts", pc.ListPage)
	r.GET("/posts/:id", pc.ShowPage)
	r.POST("/posts", pc.CreateFromForm)
	r.DELETE("/posts/:id", pc.Delete)
	r.GET("/events", ec.Page)

	api := r.Group("/api")
	api.GET("/public", ac.Public)
	api.GET("/private", middleware.BearerAuth(authUC), ac.Private)
	api.GET("/private-scoped", middleware.ScopedAuth(authUC, ScopeReadMessages), ac.PrivateScoped)
	api.GET("/profile", middleware.BasicAuth(authUC), ac.Profile)
	api.POST("/token", middleware.BasicAuth(authUC), ac.IssueToken)

	api.GET("/posts", pc.List)
	api.GET("/posts/:id", pc.Get)
	api.PUT("/post", pc.Put)
	api.GET("/events", ec.List)

	return r, nil
}
