package repositories

import "scribbles/app/models"

// Categories returns every stored category in insertion order.
func (r *Repository) Categories() ([]models.Category, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return r.categories()
}

func (r *Repository) categories() ([]models.Category, error) {
	return loadCollection[models.Category](r.store, r.keys.Categories)
}

// GetCategory retrieves a category by ID
func (r *Repository) GetCategory(id string) (*models.Category, error) {
	return r.findCategory(func(c models.Category) bool { return c.ID == id })
}

// GetCategoryBySlug returns the first stored category with the given slug.
func (r *Repository) GetCategoryBySlug(slug string) (*models.Category, error) {
	return r.findCategory(func(c models.Category) bool { return c.Slug == slug })
}

func (r *Repository) findCategory(match func(models.Category) bool) (*models.Category, error) {
	categories, err := r.Categories()
	if err != nil {
		return nil, err
	}
	for _, category := range categories {
		if match(category) {
			return &category, nil
		}
	}
	return nil, ErrNotFound
}

// CreateCategory creates a new category
func (r *Repository) CreateCategory(fields models.CategoryFields) (models.Category, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.createCategory(fields)
}

func (r *Repository) createCategory(fields models.CategoryFields) (models.Category, error) {
	categories, err := r.categories()
	if err != nil {
		return models.Category{}, err
	}
	category := models.NewCategory(r.newID(), fields)
	if err := saveCollection(r.store, r.keys.Categories, append(categories, category)); err != nil {
		return models.Category{}, err
	}
	return category, nil
}

// UpdateCategory replaces the stored category with the same ID verbatim.
func (r *Repository) UpdateCategory(category models.Category) (models.Category, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	categories, err := r.categories()
	if err != nil {
		return models.Category{}, err
	}
	for i, existing := range categories {
		if existing.ID == category.ID {
			categories[i] = category
			break
		}
	}
	if err := saveCollection(r.store, r.keys.Categories, categories); err != nil {
		return models.Category{}, err
	}
	return category, nil
}

// DeleteCategory deletes a category by ID. Posts keep their categoryId.
func (r *Repository) DeleteCategory(id string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	categories, err := r.categories()
	if err != nil {
		return err
	}
	kept := make([]models.Category, 0, len(categories))
	for _, category := range categories {
		if category.ID != id {
			kept = append(kept, category)
		}
	}
	return saveCollection(r.store, r.keys.Categories, kept)
}
