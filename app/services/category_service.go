package services

import (
	"errors"

	"scribbles/app/models"
	"scribbles/app/repositories"
	"scribbles/app/slug"
)

// CategoryService handles business logic for categories
type CategoryService struct {
	blog *BlogContext
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(blog *BlogContext) *CategoryService {
	return &CategoryService{blog: blog}
}

// CategoryPosts is a category together with the posts filed under it.
type CategoryPosts struct {
	Category models.Category `json:"category"`
	Posts    []models.Post   `json:"posts"`
}

// ListCategories returns the cached categories
func (s *CategoryService) ListCategories() ([]models.Category, error) {
	return s.blog.Categories()
}

// GetCategory looks a category up by slug and attaches its posts.
func (s *CategoryService) GetCategory(categorySlug string) (*CategoryPosts, error) {
	category, err := s.blog.GetCategoryBySlug(categorySlug)
	if err != nil {
		return nil, err
	}
	posts, err := s.blog.GetPostsByCategory(category.ID)
	if err != nil {
		return nil, err
	}
	return &CategoryPosts{Category: *category, Posts: posts}, nil
}

// CreateCategory validates the form and creates a category, deriving the slug
// from the name when none is given.
func (s *CategoryService) CreateCategory(form models.CategoryFields) (models.Category, error) {
	fields := form.Normalize()
	if fields.Slug == "" {
		fields.Slug = slug.Generate(fields.Name)
	}
	if err := fields.Validate(); err != nil {
		return models.Category{}, invalid(err)
	}
	if fields.Slug == "" {
		return models.Category{}, invalidf("name %q does not produce a usable slug", fields.Name)
	}
	s.blog.slugs.Lock()
	defer s.blog.slugs.Unlock()
	if err := s.checkSlugFree(fields.Slug, ""); err != nil {
		return models.Category{}, err
	}
	return s.blog.CreateCategory(fields)
}

// UpdateCategory replaces an existing category. An empty slug keeps the current one.
func (s *CategoryService) UpdateCategory(id string, form models.CategoryFields) (models.Category, error) {
	existing, err := s.blog.GetCategoryByID(id)
	if err != nil {
		return models.Category{}, err
	}

	fields := form.Normalize()
	if fields.Slug == "" {
		fields.Slug = existing.Slug
	}
	if err := fields.Validate(); err != nil {
		return models.Category{}, invalid(err)
	}
	s.blog.slugs.Lock()
	defer s.blog.slugs.Unlock()
	if fields.Slug != existing.Slug {
		if err := s.checkSlugFree(fields.Slug, id); err != nil {
			return models.Category{}, err
		}
	}
	return s.blog.UpdateCategory(models.NewCategory(id, fields))
}

// DeleteCategory deletes a category. Posts filed under it keep the dangling id
// and display as Uncategorized.
func (s *CategoryService) DeleteCategory(id string) error {
	return s.blog.DeleteCategory(id)
}

func (s *CategoryService) checkSlugFree(categorySlug, ownerID string) error {
	other, err := s.blog.GetCategoryBySlug(categorySlug)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return nil
	case err != nil:
		return err
	case other.ID != ownerID:
		return invalidf("slug %q is already used by category %q", categorySlug, other.Name)
	}
	return nil
}
