package database

import (
	"context"
	"errors"
	"fmt"

	"fastblog/internal/core/post"
	postPort "fastblog/internal/ports/post"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostRepositoryDatabase implements PostStore on a gorm "posts" table keyed by id.
type PostRepositoryDatabase struct {
	DB *gorm.DB
}

func NewPostRepositoryDatabase(db *gorm.DB) *PostRepositoryDatabase {
	return &PostRepositoryDatabase{DB: db}
}

// Migrate creates or updates the posts table.
func (repo *PostRepositoryDatabase) Migrate() error {
	return repo.DB.AutoMigrate(&post.Post{})
}

func (repo *PostRepositoryDatabase) Get(ctx context.Context, id string) (*post.Post, error) {
	var p post.Post
	if err := repo.DB.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("post %s: %w", id, post.ErrNotFound)
		}
		return nil, fmt.Errorf("loading post %s: %w: %v", id, post.ErrStorageUnavailable, err)
	}
	return &p, nil
}

func (repo *PostRepositoryDatabase) List(ctx context.Context) ([]*post.Post, error) {
	posts := make([]*post.Post, 0)
	if err := repo.DB.WithContext(ctx).Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("listing posts: %w: %v", post.ErrStorageUnavailable, err)
	}
	return posts, nil
}

// Put upserts every column, so an overwrite clears fields absent from the new post.
func (repo *PostRepositoryDatabase) Put(ctx context.Context, p *post.Post) error {
	err := repo.DB.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(p).Error
	if err != nil {
		return fmt.Errorf("saving post %s: %w: %v", p.ID, post.ErrStorageUnavailable, err)
	}
	return nil
}

func (repo *PostRepositoryDatabase) Delete(ctx context.Context, id string) (postPort.DeleteResult, error) {
	res := repo.DB.WithContext(ctx).Where("id = ?", id).Delete(&post.Post{})
	if res.Error != nil {
		return postPort.NotFound, fmt.Errorf("deleting post %s: %w: %v", id, post.ErrStorageUnavailable, res.Error)
	}
	if res.RowsAffected == 0 {
		return postPort.NotFound, nil
	}
	return postPort.Deleted, nil
}
