package filestore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"fastblog/internal/core/post"
	postPort "fastblog/internal/ports/post"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRepo(t *testing.T) (*PostRepositoryFile, string) {
	t.Helper()
	dir := t.TempDir()
	repo, err := NewPostRepositoryFile(dir, postPort.DefaultLocator, zap.NewNop())
	require.NoError(t, err)
	return repo, dir
}

func strPtr(s string) *string { return &s }

func TestPutThenGet_RoundTrip(t *testing.T) {
	repo, dir := newTestRepo(t)
	ctx := context.Background()

	want := &post.Post{ID: "1", Title: "Hello", Content: strPtr("World")}
	require.NoError(t, repo.Put(ctx, want))

	got, err := repo.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	raw, err := os.ReadFile(filepath.Join(dir, "post_1.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"1","title":"Hello","content":"World"}`, string(raw))
}

func TestPut_NullContent(t *testing.T) {
	repo, dir := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, &post.Post{ID: "7", Title: "No body"}))

	raw, err := os.ReadFile(filepath.Join(dir, "post_7.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"7","title":"No body","content":null}`, string(raw))

	got, err := repo.Get(ctx, "7")
	require.NoError(t, err)
	assert.Nil(t, got.Content)
}

func TestGet_Missing(t *testing.T) {
	repo, _ := newTestRepo(t)

	_, err := repo.Get(context.Background(), "999")
	assert.ErrorIs(t, err, post.ErrNotFound)
}

func TestGet_CorruptDocument(t *testing.T) {
	repo, dir := newTestRepo(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "post_bad.json"), []byte("{not json"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "post_noid.json"), []byte(`{"title":"x"}`), 0o644))

	_, err := repo.Get(context.Background(), "bad")
	assert.ErrorIs(t, err, post.ErrCorruptData)
	assert.Contains(t, err.Error(), "post_bad.json")

	_, err = repo.Get(context.Background(), "noid")
	assert.ErrorIs(t, err, post.ErrCorruptData)
}

func TestPut_OverwriteReplacesDocument(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, &post.Post{ID: "1", Title: "First", Content: strPtr("old body")}))
	require.NoError(t, repo.Put(ctx, &post.Post{ID: "1", Title: "Second"}))

	got, err := repo.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Second", got.Title)
	assert.Nil(t, got.Content)
}

func TestList_ReturnsEveryPost(t *testing.T) {
	repo, dir := newTestRepo(t)
	ctx := context.Background()

	const n = 5
	for i := 0; i < n; i++ {
		require.NoError(t, repo.Put(ctx, &post.Post{ID: fmt.Sprint(i), Title: fmt.Sprintf("title %d", i)}))
	}
	// files outside the naming convention are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.json"), []byte(`[]`), 0o644))

	posts, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, posts, n)

	seen := map[string]bool{}
	for _, p := range posts {
		seen[p.ID] = true
	}
	for i := 0; i < n; i++ {
		assert.True(t, seen[fmt.Sprint(i)], "missing post %d", i)
	}
}

func TestList_Empty(t *testing.T) {
	repo, _ := newTestRepo(t)

	posts, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestList_CorruptDocumentFailsListing(t *testing.T) {
	repo, dir := newTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Put(ctx, &post.Post{ID: "1", Title: "ok"}))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "post_2.json"), []byte("garbage"), 0o644))

	_, err := repo.List(ctx)
	assert.ErrorIs(t, err, post.ErrCorruptData)
}

func TestDelete(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Put(ctx, &post.Post{ID: "1", Title: "Hello"}))

	res, err := repo.Delete(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, postPort.Deleted, res)

	res, err = repo.Delete(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, postPort.NotFound, res)

	_, err = repo.Get(ctx, "1")
	assert.ErrorIs(t, err, post.ErrNotFound)
}

func TestPut_ReadOnlyStorage(t *testing.T) {
	repo := NewPostRepositoryFs(afero.NewReadOnlyFs(afero.NewMemMapFs()), nil, zap.NewNop())

	err := repo.Put(context.Background(), &post.Post{ID: "1", Title: "Hello"})
	assert.ErrorIs(t, err, post.ErrStorageUnavailable)
}

func TestCustomLocator(t *testing.T) {
	dir := t.TempDir()
	repo, err := NewPostRepositoryFile(dir, postPort.FileLocator{Prefix: "entry-", Suffix: ".doc"}, zap.NewNop())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, &post.Post{ID: "a", Title: "A"}))
	_, err = os.Stat(filepath.Join(dir, "entry-a.doc"))
	require.NoError(t, err)

	posts, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, posts, 1)
}

// Writes are not atomic: a reader racing a partially written file sees corrupt data.
// This documents the limitation rather than guarding against it.
func TestKnownLimitation_TornWriteIsObservable(t *testing.T) {
	repo, dir := newTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Put(ctx, &post.Post{ID: "1", Title: "Hello", Content: strPtr("World")}))

	full, err := os.ReadFile(filepath.Join(dir, "post_1.json"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "post_1.json"), full[:len(full)/2], 0o644))

	_, err = repo.Get(ctx, "1")
	assert.ErrorIs(t, err, post.ErrCorruptData)
}

func TestRelativeDirectory_WorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	repo, err := NewPostRepositoryFile(".", postPort.DefaultLocator, zap.NewNop())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, &post.Post{ID: "1", Title: "Hello", Content: strPtr("World")}))
	_, err = os.Stat(filepath.Join(dir, "post_1.json"))
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "post_2.json"), []byte(`{"id":"2","title":"On disk","content":null}`), 0o644))

	got, err := repo.Get(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "On disk", got.Title)

	posts, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, posts, 2)

	res, err := repo.Delete(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, postPort.Deleted, res)
}

func TestIDsWithPathSeparatorsStayInsideDirectory(t *testing.T) {
	parent := t.TempDir()
	dataDir := filepath.Join(parent, "data")
	siblingDir := filepath.Join(parent, "data2")
	require.NoError(t, os.Mkdir(dataDir, 0o755))
	require.NoError(t, os.Mkdir(siblingDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(siblingDir, "x.json"), []byte(`{"id":"x","title":"sibling"}`), 0o644))

	repo, err := NewPostRepositoryFile(dataDir, postPort.DefaultLocator, zap.NewNop())
	require.NoError(t, err)
	ctx := context.Background()

	for _, id := range []string{"/../../data2/x", "../data2/x", `..\data2\x`, "a/b"} {
		t.Run(id, func(t *testing.T) {
			_, err := repo.Get(ctx, id)
			assert.ErrorIs(t, err, post.ErrNotFound)

			err = repo.Put(ctx, &post.Post{ID: id, Title: "escape"})
			assert.ErrorIs(t, err, post.ErrInvalidPost)

			res, err := repo.Delete(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, postPort.NotFound, res)
		})
	}

	_, err = os.Stat(filepath.Join(siblingDir, "x.json"))
	assert.NoError(t, err)
	entries, err := os.ReadDir(dataDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
