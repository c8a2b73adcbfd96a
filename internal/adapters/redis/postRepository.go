package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"fastblog/internal/core/post"
	postPort "fastblog/internal/ports/post"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const scanBatch = 100

// PostRepositoryRedis stores each post document as a plain string value under the locator key.
type PostRepositoryRedis struct {
	Client  *redis.Client
	locator postPort.Locator
	logger  *zap.Logger
	scan    scanFunc
}

type scanFunc func(ctx context.Context, cursor uint64, match string, count int64) ([]string, uint64, error)

func NewPostRepositoryRedis(client *redis.Client, locator postPort.Locator, logger *zap.Logger) *PostRepositoryRedis {
	if locator == nil {
		locator = postPort.DefaultLocator
	}
	repo := &PostRepositoryRedis{Client: client, locator: locator, logger: logger}
	repo.scan = func(ctx context.Context, cursor uint64, match string, count int64) ([]string, uint64, error) {
		return repo.Client.Scan(ctx, cursor, match, count).Result()
	}
	return repo
}

func (r *PostRepositoryRedis) Get(ctx context.Context, id string) (*post.Post, error) {
	key := r.locator.Key(id)
	data, err := r.Client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("post %s: %w", id, post.ErrNotFound)
		}
		return nil, fmt.Errorf("GET %s: %w: %v", key, post.ErrStorageUnavailable, err)
	}
	return r.decode(key, data)
}

// List walks the keyspace with SCAN; order is whatever Redis yields.
func (r *PostRepositoryRedis) List(ctx context.Context) ([]*post.Post, error) {
	posts := make([]*post.Post, 0)
	// SCAN may return a key more than once
	seen := make(map[string]struct{})
	var cursor uint64
	for {
		keys, next, err := r.scan(ctx, cursor, r.locator.Pattern(), scanBatch)
		if err != nil {
			return nil, fmt.Errorf("SCAN %s: %w: %v", r.locator.Pattern(), post.ErrStorageUnavailable, err)
		}
		for _, key := range keys {
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			data, err := r.Client.Get(ctx, key).Bytes()
			if err != nil {
				if errors.Is(err, redis.Nil) {
					continue
				}
				return nil, fmt.Errorf("GET %s: %w: %v", key, post.ErrStorageUnavailable, err)
			}
			p, err := r.decode(key, data)
			if err != nil {
				return nil, err
			}
			posts = append(posts, p)
		}
		cursor = next
		if cursor == 0 {
			return posts, nil
		}
	}
}

func (r *PostRepositoryRedis) Put(ctx context.Context, p *post.Post) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding post %s: %w", p.ID, err)
	}
	key := r.locator.Key(p.ID)
	if err := r.Client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("SET %s: %w: %v", key, post.ErrStorageUnavailable, err)
	}
	r.logger.Debug("stored post", zap.String("key", key))
	return nil
}

func (r *PostRepositoryRedis) Delete(ctx context.Context, id string) (postPort.DeleteResult, error) {
	key := r.locator.Key(id)
	n, err := r.Client.Del(ctx, key).Result()
	if err != nil {
		return postPort.NotFound, fmt.Errorf("DEL %s: %w: %v", key, post.ErrStorageUnavailable, err)
	}
	if n == 0 {
		return postPort.NotFound, nil
	}
	return postPort.Deleted, nil
}

func (r *PostRepositoryRedis) decode(key string, data []byte) (*post.Post, error) {
	var p post.Post
	if err := json.Unmarshal(data, &p); err != nil || p.ID == "" {
		r.logger.Warn("corrupt post document", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("invalid JSON format in %s: %w", key, post.ErrCorruptData)
	}
	return &p, nil
}
