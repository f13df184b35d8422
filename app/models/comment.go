package models

import "strings"

// NewComment builds a comment from its fields. UpdatedAt is left unset.
func NewComment(id string, f CommentFields, now int64) Comment {
	return Comment{
		ID:        id,
		PostID:    f.PostID,
		Author:    f.Author,
		Content:   f.Content,
		CreatedAt: now,
	}
}

// Edited reports whether the comment has been updated since creation.
func (c Comment) Edited() bool {
	return c.UpdatedAt != 0
}

// Normalize trims surrounding whitespace from every text field.
func (f CommentFields) Normalize() CommentFields {
	f.PostID = strings.TrimSpace(f.PostID)
	f.Author = strings.TrimSpace(f.Author)
	f.Content = strings.TrimSpace(f.Content)
	return f
}

// Validate checks the fields against their struct tags.
func (f CommentFields) Validate() error {
	return validate.Struct(f)
}
