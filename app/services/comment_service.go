package services

import (
	"strings"

	"scribbles/app/models"
)

// CommentService handles business logic for comments
type CommentService struct {
	blog *BlogContext
}

// NewCommentService creates a new CommentService
func NewCommentService(blog *BlogContext) *CommentService {
	return &CommentService{blog: blog}
}

// ListComments returns the comments of a post, newest first.
func (s *CommentService) ListComments(postID string) ([]models.Comment, error) {
	if _, err := s.blog.GetPostByID(postID); err != nil {
		return nil, err
	}
	return s.blog.GetCommentsByPost(postID)
}

// CreateComment adds a comment to an existing post.
func (s *CommentService) CreateComment(postID string, form models.CommentFields) (models.Comment, error) {
	form.PostID = postID
	fields := form.Normalize()
	if err := fields.Validate(); err != nil {
		return models.Comment{}, invalid(err)
	}
	if _, err := s.blog.GetPostByID(fields.PostID); err != nil {
		return models.Comment{}, err
	}
	return s.blog.CreateComment(fields)
}

// UpdateComment replaces the content of a comment. Author and post stay as they were.
func (s *CommentService) UpdateComment(id, content string) (models.Comment, error) {
	existing, err := s.blog.GetCommentByID(id)
	if err != nil {
		return models.Comment{}, err
	}

	fields := models.CommentFields{
		PostID:  existing.PostID,
		Author:  existing.Author,
		Content: strings.TrimSpace(content),
	}
	if err := fields.Validate(); err != nil {
		return models.Comment{}, invalid(err)
	}

	existing.Content = fields.Content
	return s.blog.UpdateComment(*existing)
}

// DeleteComment deletes a comment. Unknown ids are ignored.
func (s *CommentService) DeleteComment(id string) error {
	return s.blog.DeleteComment(id)
}
