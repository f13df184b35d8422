package services

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"scribbles/app/models"
	"scribbles/app/repositories"
)

// ErrNotInitialized is returned when the BlogContext is used before Init.
var ErrNotInitialized = errors.New("blog context used before Init")

// Snapshot is a consistent copy of the four cached collections.
type Snapshot struct {
	Posts         []models.Post     `json:"posts"`
	Categories    []models.Category `json:"categories"`
	Comments      []models.Comment  `json:"comments"`
	FeaturedPosts []models.Post     `json:"featuredPosts"`
}

// BlogContext caches the latest snapshot of the store for its consumers.
// Every mutation goes to the repository and then reloads the whole snapshot;
// lookups by id, slug or category go straight to the repository.
type BlogContext struct {
	repo   repositories.BlogRepository
	logger *slog.Logger
	seed   bool

	mutex       sync.RWMutex
	initialized bool
	snapshot    Snapshot

	// slugs serializes slug allocation with the create or update that uses it.
	slugs sync.Mutex
}

// ContextOption configures a BlogContext.
type ContextOption func(*BlogContext)

// WithSeeding controls whether Init seeds an empty store. Enabled by default.
func WithSeeding(enabled bool) ContextOption {
	return func(c *BlogContext) {
		c.seed = enabled
	}
}

// NewBlogContext creates an uninitialized BlogContext. Call Init before use.
func NewBlogContext(repo repositories.BlogRepository, logger *slog.Logger, opts ...ContextOption) *BlogContext {
	if logger == nil {
		logger = slog.Default()
	}
	c := &BlogContext{repo: repo, logger: logger, seed: true}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Init seeds the store when it is empty and loads the first snapshot.
func (c *BlogContext) Init() error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.seed {
		seeded, err := c.repo.Seed()
		if err != nil {
			return fmt.Errorf("blog context init: %w", err)
		}
		if seeded {
			c.logger.Info("store seeded with demo content")
		}
	}
	if err := c.reload(); err != nil {
		return fmt.Errorf("blog context init: %w", err)
	}
	c.initialized = true
	return nil
}

// Refresh reloads the snapshot from the store.
func (c *BlogContext) Refresh() error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if !c.initialized {
		return ErrNotInitialized
	}
	return c.reload()
}

// reload replaces the snapshot wholesale. Callers hold the write lock.
func (c *BlogContext) reload() error {
	posts, err := c.repo.Posts()
	if err != nil {
		return err
	}
	categories, err := c.repo.Categories()
	if err != nil {
		return err
	}
	comments, err := c.repo.Comments()
	if err != nil {
		return err
	}
	featured, err := c.repo.GetFeaturedPosts()
	if err != nil {
		return err
	}

	c.snapshot = Snapshot{
		Posts:         posts,
		Categories:    categories,
		Comments:      comments,
		FeaturedPosts: featured,
	}
	c.logger.Debug("snapshot reloaded",
		"posts", len(posts),
		"categories", len(categories),
		"comments", len(comments),
		"featured", len(featured),
	)
	return nil
}

// Snapshot returns a copy of all four cached collections.
func (c *BlogContext) Snapshot() (Snapshot, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	if !c.initialized {
		return Snapshot{}, ErrNotInitialized
	}
	return Snapshot{
		Posts:         slices.Clone(c.snapshot.Posts),
		Categories:    slices.Clone(c.snapshot.Categories),
		Comments:      slices.Clone(c.snapshot.Comments),
		FeaturedPosts: slices.Clone(c.snapshot.FeaturedPosts),
	}, nil
}

// Posts returns the cached posts.
func (c *BlogContext) Posts() ([]models.Post, error) {
	s, err := c.Snapshot()
	return s.Posts, err
}

// Categories returns the cached categories.
func (c *BlogContext) Categories() ([]models.Category, error) {
	s, err := c.Snapshot()
	return s.Categories, err
}

// Comments returns the cached comments.
func (c *BlogContext) Comments() ([]models.Comment, error) {
	s, err := c.Snapshot()
	return s.Comments, err
}

// FeaturedPosts returns the cached featured posts.
func (c *BlogContext) FeaturedPosts() ([]models.Post, error) {
	s, err := c.Snapshot()
	return s.FeaturedPosts, err
}

// ready reports ErrNotInitialized until Init has succeeded.
func (c *BlogContext) ready() error {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	if !c.initialized {
		return ErrNotInitialized
	}
	return nil
}

// GetPostByID looks a post up in the store by id.
func (c *BlogContext) GetPostByID(id string) (*models.Post, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	return c.repo.GetPost(id)
}

// GetPostBySlug looks a post up in the store by slug.
func (c *BlogContext) GetPostBySlug(slug string) (*models.Post, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	return c.repo.GetPostBySlug(slug)
}

// GetPostsByCategory returns the stored posts filed under a category.
func (c *BlogContext) GetPostsByCategory(categoryID string) ([]models.Post, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	return c.repo.GetPostsByCategory(categoryID)
}

// GetCommentByID looks a comment up in the store by id.
func (c *BlogContext) GetCommentByID(id string) (*models.Comment, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	return c.repo.GetComment(id)
}

// GetCommentsByPost returns the stored comments of a post, newest first.
func (c *BlogContext) GetCommentsByPost(postID string) ([]models.Comment, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	return c.repo.ListCommentsByPost(postID)
}

// GetCategoryByID looks a category up in the store by id.
func (c *BlogContext) GetCategoryByID(id string) (*models.Category, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	return c.repo.GetCategory(id)
}

// GetCategoryBySlug looks a category up in the store by slug.
func (c *BlogContext) GetCategoryBySlug(slug string) (*models.Category, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	return c.repo.GetCategoryBySlug(slug)
}

// mutate runs fn against the repository and reloads the snapshot afterwards.
func (c *BlogContext) mutate(action string, fn func() error) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if !c.initialized {
		return ErrNotInitialized
	}
	if err := fn(); err != nil {
		c.logger.Error("mutation failed", "action", action, "error", err)
		return err
	}
	if err := c.reload(); err != nil {
		return fmt.Errorf("reload after %s: %w", action, err)
	}
	return nil
}

// Post actions

// CreatePost stores a new post and reloads the snapshot.
func (c *BlogContext) CreatePost(fields models.PostFields) (models.Post, error) {
	var post models.Post
	err := c.mutate("create post", func() (err error) {
		post, err = c.repo.CreatePost(fields)
		return err
	})
	return post, err
}

// UpdatePost replaces a stored post and reloads the snapshot.
func (c *BlogContext) UpdatePost(post models.Post) (models.Post, error) {
	var updated models.Post
	err := c.mutate("update post", func() (err error) {
		updated, err = c.repo.UpdatePost(post)
		return err
	})
	return updated, err
}

// DeletePost removes the post together with its comments.
func (c *BlogContext) DeletePost(id string) error {
	return c.mutate("delete post", func() error {
		return c.repo.DeletePost(id)
	})
}

// Comment actions

// CreateComment stores a new comment and reloads the snapshot.
func (c *BlogContext) CreateComment(fields models.CommentFields) (models.Comment, error) {
	var comment models.Comment
	err := c.mutate("create comment", func() (err error) {
		comment, err = c.repo.CreateComment(fields)
		return err
	})
	return comment, err
}

// UpdateComment replaces a stored comment and reloads the snapshot.
func (c *BlogContext) UpdateComment(comment models.Comment) (models.Comment, error) {
	var updated models.Comment
	err := c.mutate("update comment", func() (err error) {
		updated, err = c.repo.UpdateComment(comment)
		return err
	})
	return updated, err
}

// DeleteComment removes a comment and reloads the snapshot.
func (c *BlogContext) DeleteComment(id string) error {
	return c.mutate("delete comment", func() error {
		return c.repo.DeleteComment(id)
	})
}

// Category actions

// CreateCategory stores a new category and reloads the snapshot.
func (c *BlogContext) CreateCategory(fields models.CategoryFields) (models.Category, error) {
	var category models.Category
	err := c.mutate("create category", func() (err error) {
		category, err = c.repo.CreateCategory(fields)
		return err
	})
	return category, err
}

// UpdateCategory replaces a stored category and reloads the snapshot.
func (c *BlogContext) UpdateCategory(category models.Category) (models.Category, error) {
	var updated models.Category
	err := c.mutate("update category", func() (err error) {
		updated, err = c.repo.UpdateCategory(category)
		return err
	})
	return updated, err
}

// DeleteCategory removes a category and reloads the snapshot.
func (c *BlogContext) DeleteCategory(id string) error {
	return c.mutate("delete category", func() error {
		return c.repo.DeleteCategory(id)
	})
}
