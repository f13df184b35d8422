package models

import "github.com/go-playground/validator/v10"

var validate = validator.New(validator.WithRequiredStructEnabled())

// Category groups posts by theme.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}

// Post represents a blog post. CreatedAt and UpdatedAt are epoch milliseconds.
type Post struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Slug       string `json:"slug"`
	Excerpt    string `json:"excerpt"`
	Content    string `json:"content"`
	CategoryID string `json:"categoryId"`
	CreatedAt  int64  `json:"createdAt"`
	UpdatedAt  int64  `json:"updatedAt"`
	ImageURL   string `json:"imageUrl"`
	Featured   bool   `json:"featured,omitempty"`
}

// Comment represents a comment on a blog post. UpdatedAt stays zero until the
// comment is edited.
type Comment struct {
	ID        string `json:"id"`
	PostID    string `json:"postId"`
	Author    string `json:"author"`
	Content   string `json:"content"`
	CreatedAt int64  `json:"createdAt"`
	UpdatedAt int64  `json:"updatedAt,omitempty"`
}

// PostFields holds the caller-supplied fields of a post.
type PostFields struct {
	Title      string `json:"title" validate:"required,max=200"`
	Slug       string `json:"slug" validate:"omitempty,max=200"`
	Excerpt    string `json:"excerpt" validate:"required,max=500"`
	Content    string `json:"content" validate:"required"`
	CategoryID string `json:"categoryId" validate:"required"`
	ImageURL   string `json:"imageUrl" validate:"required,url"`
	Featured   bool   `json:"featured"`
}

// CommentFields holds the caller-supplied fields of a comment.
type CommentFields struct {
	PostID  string `json:"postId" validate:"required"`
	Author  string `json:"author" validate:"required,max=100"`
	Content string `json:"content" validate:"required,max=2000"`
}

// CategoryFields holds the caller-supplied fields of a category.
type CategoryFields struct {
	Name        string `json:"name" validate:"required,max=100"`
	Slug        string `json:"slug" validate:"omitempty,max=100"`
	Description string `json:"description" validate:"max=500"`
}
