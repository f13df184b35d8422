package models

import "strings"

// NewPost builds a post from its fields with both timestamps set to now.
func NewPost(id string, f PostFields, now int64) Post {
	return Post{
		ID:         id,
		Title:      f.Title,
		Slug:       f.Slug,
		Excerpt:    f.Excerpt,
		Content:    f.Content,
		CategoryID: f.CategoryID,
		CreatedAt:  now,
		UpdatedAt:  now,
		ImageURL:   f.ImageURL,
		Featured:   f.Featured,
	}
}

// Fields returns the caller-editable part of the post.
func (p Post) Fields() PostFields {
	return PostFields{
		Title:      p.Title,
		Slug:       p.Slug,
		Excerpt:    p.Excerpt,
		Content:    p.Content,
		CategoryID: p.CategoryID,
		ImageURL:   p.ImageURL,
		Featured:   p.Featured,
	}
}

// Apply overwrites the editable fields of the post, keeping id, slug and timestamps.
func (p Post) Apply(f PostFields) Post {
	p.Title = f.Title
	p.Excerpt = f.Excerpt
	p.Content = f.Content
	p.CategoryID = f.CategoryID
	p.ImageURL = f.ImageURL
	p.Featured = f.Featured
	return p
}

// Normalize trims surrounding whitespace from every text field.
func (f PostFields) Normalize() PostFields {
	f.Title = strings.TrimSpace(f.Title)
	f.Slug = strings.TrimSpace(f.Slug)
	f.Excerpt = strings.TrimSpace(f.Excerpt)
	f.Content = strings.TrimSpace(f.Content)
	f.CategoryID = strings.TrimSpace(f.CategoryID)
	f.ImageURL = strings.TrimSpace(f.ImageURL)
	return f
}

// Validate checks the fields against their struct tags.
func (f PostFields) Validate() error {
	return validate.Struct(f)
}
