package post

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPost_Validate(t *testing.T) {
	body := "World"
	tests := []struct {
		name string
		post *Post
		err  error
	}{
		{"complete", &Post{ID: "1", Title: "Hello", Content: &body}, nil},
		{"content optional", &Post{ID: "1", Title: "Hello"}, nil},
		{"missing id", &Post{Title: "Hello"}, ErrInvalidPost},
		{"missing title", &Post{ID: "1"}, ErrInvalidPost},
		{"nil", nil, ErrInvalidPost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.post.Validate(), tt.err)
		})
	}
}
