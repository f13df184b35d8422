package services

import (
	"errors"

	"scribbles/app/markdown"
	"scribbles/app/models"
	"scribbles/app/repositories"
	"scribbles/app/slug"
)

// DefaultImageURL is the header image used when a post is created without one.
const DefaultImageURL = "https://images.unsplash.com/photo-1513836279014-a89f7a76ae86"

// reservedPostSlugs are path segments under /api/posts that are routes of their own.
var reservedPostSlugs = map[string]bool{
	"featured": true,
}

// PostService handles business logic for blog posts
type PostService struct {
	blog *BlogContext
}

// NewPostService creates a new PostService
func NewPostService(blog *BlogContext) *PostService {
	return &PostService{blog: blog}
}

// ListPosts returns the cached posts, or the posts of one category when
// categorySlug is set. An unknown category yields ErrNotFound.
func (s *PostService) ListPosts(categorySlug string) ([]models.Post, error) {
	if categorySlug == "" {
		return s.blog.Posts()
	}
	category, err := s.blog.GetCategoryBySlug(categorySlug)
	if err != nil {
		return nil, err
	}
	return s.blog.GetPostsByCategory(category.ID)
}

// FeaturedPosts returns the cached featured posts
func (s *PostService) FeaturedPosts() ([]models.Post, error) {
	return s.blog.FeaturedPosts()
}

// GetPost retrieves a post by slug
func (s *PostService) GetPost(postSlug string) (*models.Post, error) {
	return s.blog.GetPostBySlug(postSlug)
}

// CreatePost validates the form and creates a new post. The slug is derived
// from the title unless given, and suffixed until no other post uses it and it
// does not shadow a fixed route such as "featured".
func (s *PostService) CreatePost(form models.PostFields) (models.Post, error) {
	fields := form.Normalize()
	if fields.ImageURL == "" {
		fields.ImageURL = DefaultImageURL
	}
	if err := fields.Validate(); err != nil {
		return models.Post{}, invalid(err)
	}
	if err := s.checkCategory(fields.CategoryID); err != nil {
		return models.Post{}, err
	}

	base := fields.Slug
	if base == "" {
		base = slug.Generate(fields.Title)
	}
	if base == "" {
		return models.Post{}, invalidf("title %q does not produce a usable slug", fields.Title)
	}

	s.blog.slugs.Lock()
	defer s.blog.slugs.Unlock()

	var lookupErr error
	fields.Slug = slug.Unique(base, func(candidate string) bool {
		if reservedPostSlugs[candidate] {
			return true
		}
		_, err := s.blog.GetPostBySlug(candidate)
		if err != nil && !errors.Is(err, repositories.ErrNotFound) {
			lookupErr = err
			return false
		}
		return err == nil
	})
	if lookupErr != nil {
		return models.Post{}, lookupErr
	}

	return s.blog.CreatePost(fields)
}

// UpdatePost applies the edited form to an existing post. The slug never changes.
func (s *PostService) UpdatePost(id string, form models.PostFields) (models.Post, error) {
	existing, err := s.blog.GetPostByID(id)
	if err != nil {
		return models.Post{}, err
	}

	fields := form.Normalize()
	fields.Slug = existing.Slug
	if fields.ImageURL == "" {
		fields.ImageURL = existing.ImageURL
	}
	if err := fields.Validate(); err != nil {
		return models.Post{}, invalid(err)
	}
	if fields.CategoryID != existing.CategoryID {
		if err := s.checkCategory(fields.CategoryID); err != nil {
			return models.Post{}, err
		}
	}

	return s.blog.UpdatePost(existing.Apply(fields))
}

// DeletePost deletes a post and all its comments
func (s *PostService) DeletePost(id string) error {
	return s.blog.DeletePost(id)
}

// RenderPost renders the markdown content of the post with the given slug.
func (s *PostService) RenderPost(postSlug string) (string, error) {
	post, err := s.blog.GetPostBySlug(postSlug)
	if err != nil {
		return "", err
	}
	return markdown.ToHTML(post.Content)
}

func (s *PostService) checkCategory(id string) error {
	_, err := s.blog.GetCategoryByID(id)
	if errors.Is(err, repositories.ErrNotFound) {
		return invalidf("unknown category %q", id)
	}
	return err
}
