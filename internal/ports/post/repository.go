package post

import (
	"context"

	"fastblog/internal/core/post"
)

// PostStore is the port every post storage backend implements.
type PostStore interface {
	Get(ctx context.Context, id string) (*post.Post, error)
	List(ctx context.Context) ([]*post.Post, error)
	Put(ctx context.Context, p *post.Post) error
	Delete(ctx context.Context, id string) (DeleteResult, error)
}

// DeleteResult reports whether a delete removed a document. Neither outcome is an error.
type DeleteResult int

const (
	Deleted DeleteResult = iota
	NotFound
)

func (r DeleteResult) String() string {
	if r == Deleted {
		return "deleted"
	}
	return "not found"
}

// Locator maps a post id to its storage key. Pattern is a glob matching every key it produces.
type Locator interface {
	Key(id string) string
	Pattern() string
}

// FileLocator names documents Prefix + id + Suffix.
type FileLocator struct {
	Prefix string
	Suffix string
}

// DefaultLocator yields post_<id>.json.
var DefaultLocator = FileLocator{Prefix: "post_", Suffix: ".json"}

func (l FileLocator) Key(id string) string { return l.Prefix + id + l.Suffix }

func (l FileLocator) Pattern() string { return l.Prefix + "*" + l.Suffix }

// DTOs for the use cases
type PostDTO struct {
	ID      string  `json:"id"`
	Title   string  `json:"title"`
	Content *string `json:"content"`
}

// PutPostRequest is the JSON body accepted by the structured create/replace endpoint.
type PutPostRequest struct {
	ID       string  `json:"id" binding:"required"`
	Title    string  `json:"title" binding:"required"`
	TextCopy *string `json:"text_copy"`
}

func ToDTO(p *post.Post) *PostDTO {
	return &PostDTO{ID: p.ID, Title: p.Title, Content: p.Content}
}
