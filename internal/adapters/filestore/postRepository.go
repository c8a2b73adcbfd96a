package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"fastblog/internal/core/post"
	postPort "fastblog/internal/ports/post"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// PostRepositoryFile keeps one JSON document per post in a flat directory.
// Writes go straight to the target file; there is no locking and no rename-on-write.
type PostRepositoryFile struct {
	fs      afero.Fs
	locator postPort.Locator
	logger  *zap.Logger
}

// NewPostRepositoryFile stores documents under dir on the local disk. A relative
// dir is resolved against the working directory once, at construction.
func NewPostRepositoryFile(dir string, locator postPort.Locator, logger *zap.Logger) (*PostRepositoryFile, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving post directory %q: %w", dir, err)
	}
	return NewPostRepositoryFs(afero.NewBasePathFs(afero.NewOsFs(), abs), locator, logger), nil
}

func NewPostRepositoryFs(fsys afero.Fs, locator postPort.Locator, logger *zap.Logger) *PostRepositoryFile {
	if locator == nil {
		locator = postPort.DefaultLocator
	}
	return &PostRepositoryFile{fs: fsys, locator: locator, logger: logger}
}

func (repo *PostRepositoryFile) Get(ctx context.Context, id string) (*post.Post, error) {
	if !validID(id) {
		return nil, fmt.Errorf("post %s: %w", id, post.ErrNotFound)
	}
	name := repo.locator.Key(id)
	data, err := afero.ReadFile(repo.fs, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("post %s: %w", id, post.ErrNotFound)
		}
		return nil, fmt.Errorf("reading %s: %w: %v", name, post.ErrStorageUnavailable, err)
	}
	return repo.decode(name, data)
}

// List returns every document matching the locator pattern, in directory order.
func (repo *PostRepositoryFile) List(ctx context.Context) ([]*post.Post, error) {
	names, err := afero.Glob(repo.fs, repo.locator.Pattern())
	if err != nil {
		return nil, fmt.Errorf("listing posts: %w: %v", post.ErrStorageUnavailable, err)
	}

	posts := make([]*post.Post, 0, len(names))
	for _, name := range names {
		data, err := afero.ReadFile(repo.fs, name)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				// removed between glob and read
				continue
			}
			return nil, fmt.Errorf("reading %s: %w: %v", name, post.ErrStorageUnavailable, err)
		}
		p, err := repo.decode(name, data)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, nil
}

func (repo *PostRepositoryFile) Put(ctx context.Context, p *post.Post) error {
	if !validID(p.ID) {
		return fmt.Errorf("id %q contains a path separator: %w", p.ID, post.ErrInvalidPost)
	}
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding post %s: %w", p.ID, err)
	}
	name := repo.locator.Key(p.ID)
	if err := afero.WriteFile(repo.fs, name, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w: %v", name, post.ErrStorageUnavailable, err)
	}
	return nil
}

func (repo *PostRepositoryFile) Delete(ctx context.Context, id string) (postPort.DeleteResult, error) {
	if !validID(id) {
		return postPort.NotFound, nil
	}
	name := repo.locator.Key(id)
	if _, err := repo.fs.Stat(name); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return postPort.NotFound, nil
		}
		return postPort.NotFound, fmt.Errorf("stat %s: %w: %v", name, post.ErrStorageUnavailable, err)
	}
	if err := repo.fs.Remove(name); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return postPort.NotFound, nil
		}
		return postPort.NotFound, fmt.Errorf("removing %s: %w: %v", name, post.ErrStorageUnavailable, err)
	}
	return postPort.Deleted, nil
}

func (repo *PostRepositoryFile) decode(name string, data []byte) (*post.Post, error) {
	var p post.Post
	if err := json.Unmarshal(data, &p); err != nil {
		repo.logger.Warn("invalid JSON format", zap.String("file", name), zap.Error(err))
		return nil, fmt.Errorf("invalid JSON format in %s: %w", name, post.ErrCorruptData)
	}
	if p.ID == "" {
		repo.logger.Warn("document has no id", zap.String("file", name))
		return nil, fmt.Errorf("missing id in %s: %w", name, post.ErrCorruptData)
	}
	return &p, nil
}

// validID keeps every document directly inside the store directory.
func validID(id string) bool {
	return !strings.ContainsAny(id, `/\`)
}
