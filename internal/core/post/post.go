package post

import "errors"

var (
	ErrNotFound           = errors.New("post not found")
	ErrCorruptData        = errors.New("post document is corrupt")
	ErrStorageUnavailable = errors.New("post storage unavailable")
	ErrInvalidPost        = errors.New("post requires an id and a title")
)

// Post is stored as one document per id; a write always replaces the whole document.
type Post struct {
	ID      string  `json:"id" gorm:"primaryKey;type:varchar(191)"`
	Title   string  `json:"title" gorm:"type:varchar(255);not null"`
	Content *string `json:"content" gorm:"type:text"`
}

func (p *Post) Validate() error {
	if p == nil || p.ID == "" || p.Title == "" {
		return ErrInvalidPost
	}
	return nil
}
