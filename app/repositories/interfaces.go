package repositories

import "scribbles/app/models"

// Store is the durable key-value seam the repository persists collections into.
// Get reports false when the key has never been written.
type Store interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Close() error
}

// PostRepository defines the interface for post data access
type PostRepository interface {
	Posts() ([]models.Post, error)
	GetPost(id string) (*models.Post, error)
	GetPostBySlug(slug string) (*models.Post, error)
	GetFeaturedPosts() ([]models.Post, error)
	GetPostsByCategory(categoryID string) ([]models.Post, error)
	CreatePost(fields models.PostFields) (models.Post, error)
	UpdatePost(post models.Post) (models.Post, error)
	DeletePost(id string) error
}

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	Comments() ([]models.Comment, error)
	GetComment(id string) (*models.Comment, error)
	ListCommentsByPost(postID string) ([]models.Comment, error)
	CreateComment(fields models.CommentFields) (models.Comment, error)
	UpdateComment(comment models.Comment) (models.Comment, error)
	DeleteComment(id string) error
}

// CategoryRepository defines the interface for category data access
type CategoryRepository interface {
	Categories() ([]models.Category, error)
	GetCategory(id string) (*models.Category, error)
	GetCategoryBySlug(slug string) (*models.Category, error)
	CreateCategory(fields models.CategoryFields) (models.Category, error)
	UpdateCategory(category models.Category) (models.Category, error)
	DeleteCategory(id string) error
}

// BlogRepository is the full storage engine: the three collections plus seeding.
type BlogRepository interface {
	PostRepository
	CommentRepository
	CategoryRepository
	Seed() (bool, error)
}

var _ BlogRepository = (*Repository)(nil)
