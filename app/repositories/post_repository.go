package repositories

import "scribbles/app/models"

// Posts returns every stored post in insertion order.
func (r *Repository) Posts() ([]models.Post, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return r.posts()
}

func (r *Repository) posts() ([]models.Post, error) {
	return loadCollection[models.Post](r.store, r.keys.Posts)
}

// GetPost retrieves a post by ID
func (r *Repository) GetPost(id string) (*models.Post, error) {
	return r.findPost(func(p models.Post) bool { return p.ID == id })
}

// GetPostBySlug returns the first stored post with the given slug.
func (r *Repository) GetPostBySlug(slug string) (*models.Post, error) {
	return r.findPost(func(p models.Post) bool { return p.Slug == slug })
}

func (r *Repository) findPost(match func(models.Post) bool) (*models.Post, error) {
	posts, err := r.Posts()
	if err != nil {
		return nil, err
	}
	for _, post := range posts {
		if match(post) {
			return &post, nil
		}
	}
	return nil, ErrNotFound
}

// GetFeaturedPosts returns the featured posts in stored order.
func (r *Repository) GetFeaturedPosts() ([]models.Post, error) {
	return r.filterPosts(func(p models.Post) bool { return p.Featured })
}

// GetPostsByCategory returns the posts referencing categoryID in stored order.
func (r *Repository) GetPostsByCategory(categoryID string) ([]models.Post, error) {
	if categoryID == "" {
		return []models.Post{}, nil
	}
	return r.filterPosts(func(p models.Post) bool { return p.CategoryID == categoryID })
}

func (r *Repository) filterPosts(keep func(models.Post) bool) ([]models.Post, error) {
	posts, err := r.Posts()
	if err != nil {
		return nil, err
	}
	filtered := make([]models.Post, 0, len(posts))
	for _, post := range posts {
		if keep(post) {
			filtered = append(filtered, post)
		}
	}
	return filtered, nil
}

// CreatePost creates a new post
func (r *Repository) CreatePost(fields models.PostFields) (models.Post, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.createPost(fields)
}

func (r *Repository) createPost(fields models.PostFields) (models.Post, error) {
	posts, err := r.posts()
	if err != nil {
		return models.Post{}, err
	}
	post := models.NewPost(r.newID(), fields, r.now())
	if err := saveCollection(r.store, r.keys.Posts, append(posts, post)); err != nil {
		return models.Post{}, err
	}
	return post, nil
}

// UpdatePost replaces the stored post with the same ID and stamps UpdatedAt.
// The stored CreatedAt is kept. An unknown ID leaves the collection unchanged.
func (r *Repository) UpdatePost(post models.Post) (models.Post, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	posts, err := r.posts()
	if err != nil {
		return models.Post{}, err
	}

	post.UpdatedAt = r.now()
	for i, existing := range posts {
		if existing.ID != post.ID {
			continue
		}
		post.CreatedAt = existing.CreatedAt
		if post.UpdatedAt < post.CreatedAt {
			post.UpdatedAt = post.CreatedAt
		}
		posts[i] = post
		break
	}

	if err := saveCollection(r.store, r.keys.Posts, posts); err != nil {
		return models.Post{}, err
	}
	return post, nil
}

// DeletePost deletes a post and all its comments
func (r *Repository) DeletePost(id string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	posts, err := r.posts()
	if err != nil {
		return err
	}
	remaining := make([]models.Post, 0, len(posts))
	for _, post := range posts {
		if post.ID != id {
			remaining = append(remaining, post)
		}
	}
	if err := saveCollection(r.store, r.keys.Posts, remaining); err != nil {
		return err
	}

	comments, err := r.comments()
	if err != nil {
		return err
	}
	kept := make([]models.Comment, 0, len(comments))
	for _, comment := range comments {
		if comment.PostID != id {
			kept = append(kept, comment)
		}
	}
	return saveCollection(r.store, r.keys.Comments, kept)
}
