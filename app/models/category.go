package models

import "strings"

// Uncategorized is the display name used for posts whose category is missing.
const Uncategorized = "Uncategorized"

// NewCategory builds a category from its fields.
func NewCategory(id string, f CategoryFields) Category {
	return Category{
		ID:          id,
		Name:        f.Name,
		Slug:        f.Slug,
		Description: f.Description,
	}
}

// CategoryName returns the name of the category with the given id, or
// Uncategorized when the id does not resolve.
func CategoryName(categories []Category, id string) string {
	for _, c := range categories {
		if c.ID == id {
			return c.Name
		}
	}
	return Uncategorized
}

// Normalize trims surrounding whitespace from every text field.
func (f CategoryFields) Normalize() CategoryFields {
	f.Name = strings.TrimSpace(f.Name)
	f.Slug = strings.TrimSpace(f.Slug)
	f.Description = strings.TrimSpace(f.Description)
	return f
}

// Validate checks the fields against their struct tags.
func (f CategoryFields) Validate() error {
	return validate.Struct(f)
}
