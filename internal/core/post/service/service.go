package postapp

import (
	"context"
	"fmt"

	postEntity "fastblog/internal/core/post"
	postPort "fastblog/internal/ports/post"

	"go.uber.org/zap"
)

type PostService struct {
	PostStore postPort.PostStore
	Locator   postPort.Locator
	Logger    *zap.Logger
}

func NewPostService(store postPort.PostStore, locator postPort.Locator, logger *zap.Logger) *PostService {
	if locator == nil {
		locator = postPort.DefaultLocator
	}
	return &PostService{PostStore: store, Locator: locator, Logger: logger}
}

// GetPost returns the stored post. Corrupt documents surface as post.ErrCorruptData.
func (s *PostService) GetPost(ctx context.Context, id string) (*postPort.PostDTO, error) {
	p, err := s.PostStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return postPort.ToDTO(p), nil
}

func (s *PostService) ListPosts(ctx context.Context) ([]*postPort.PostDTO, error) {
	posts, err := s.PostStore.List(ctx)
	if err != nil {
		s.Logger.Error("listing posts failed", zap.Error(err))
		return nil, err
	}
	dtos := make([]*postPort.PostDTO, 0, len(posts))
	for _, p := range posts {
		dtos = append(dtos, postPort.ToDTO(p))
	}
	return dtos, nil
}

// PutPost creates or fully replaces the post with the given id.
func (s *PostService) PutPost(ctx context.Context, id, title string, content *string) (*postPort.PostDTO, error) {
	p := &postEntity.Post{ID: id, Title: title, Content: content}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := s.PostStore.Put(ctx, p); err != nil {
		s.Logger.Error("storing post failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	s.Logger.Info("post stored", zap.String("id", id))
	return postPort.ToDTO(p), nil
}

// DeletePost removes the post and describes the outcome. A missing post is not an error.
func (s *PostService) DeletePost(ctx context.Context, id string) (postPort.DeleteResult, string, error) {
	name := s.Locator.Key(id)
	res, err := s.PostStore.Delete(ctx, id)
	if err != nil {
		s.Logger.Error("deleting post failed", zap.String("id", id), zap.Error(err))
		return res, fmt.Sprintf("Error deleting file '%s'", name), err
	}
	if res == postPort.NotFound {
		return res, fmt.Sprintf("File '%s' not found.", name), nil
	}
	s.Logger.Info("post deleted", zap.String("id", id))
	return res, fmt.Sprintf("File '%s' deleted successfully.", name), nil
}
