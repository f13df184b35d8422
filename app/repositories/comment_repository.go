package repositories

import (
	"sort"

	"scribbles/app/models"
)

// Comments returns every stored comment in insertion order.
func (r *Repository) Comments() ([]models.Comment, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return r.comments()
}

func (r *Repository) comments() ([]models.Comment, error) {
	return loadCollection[models.Comment](r.store, r.keys.Comments)
}

// GetComment retrieves a comment by ID
func (r *Repository) GetComment(id string) (*models.Comment, error) {
	comments, err := r.Comments()
	if err != nil {
		return nil, err
	}
	for _, comment := range comments {
		if comment.ID == id {
			return &comment, nil
		}
	}
	return nil, ErrNotFound
}

// ListCommentsByPost retrieves all comments for a post, newest first
func (r *Repository) ListCommentsByPost(postID string) ([]models.Comment, error) {
	comments, err := r.Comments()
	if err != nil {
		return nil, err
	}
	result := make([]models.Comment, 0)
	for _, comment := range comments {
		if comment.PostID == postID {
			result = append(result, comment)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt > result[j].CreatedAt
	})
	return result, nil
}

// CreateComment creates a new comment
func (r *Repository) CreateComment(fields models.CommentFields) (models.Comment, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.createComment(fields)
}

func (r *Repository) createComment(fields models.CommentFields) (models.Comment, error) {
	comments, err := r.comments()
	if err != nil {
		return models.Comment{}, err
	}
	comment := models.NewComment(r.newID(), fields, r.now())
	if err := saveCollection(r.store, r.keys.Comments, append(comments, comment)); err != nil {
		return models.Comment{}, err
	}
	return comment, nil
}

// UpdateComment replaces the stored comment with the same ID and stamps
// UpdatedAt. An unknown ID leaves the collection unchanged.
func (r *Repository) UpdateComment(comment models.Comment) (models.Comment, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	comments, err := r.comments()
	if err != nil {
		return models.Comment{}, err
	}

	comment.UpdatedAt = r.now()
	for i, existing := range comments {
		if existing.ID != comment.ID {
			continue
		}
		comment.CreatedAt = existing.CreatedAt
		if comment.UpdatedAt < comment.CreatedAt {
			comment.UpdatedAt = comment.CreatedAt
		}
		comments[i] = comment
		break
	}

	if err := saveCollection(r.store, r.keys.Comments, comments); err != nil {
		return models.Comment{}, err
	}
	return comment, nil
}

// DeleteComment deletes a comment by ID
func (r *Repository) DeleteComment(id string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	comments, err := r.comments()
	if err != nil {
		return err
	}
	kept := make([]models.Comment, 0, len(comments))
	for _, comment := range comments {
		if comment.ID != id {
			kept = append(kept, comment)
		}
	}
	return saveCollection(r.store, r.keys.Comments, kept)
}
