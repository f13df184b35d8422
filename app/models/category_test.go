package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryName(t *testing.T) {
	categories := []Category{
		NewCategory("c1", CategoryFields{Name: "Characters", Slug: "characters"}),
		NewCategory("c2", CategoryFields{Name: "Fan Art", Slug: "fan-art"}),
	}

	assert.Equal(t, "Fan Art", CategoryName(categories, "c2"))
	assert.Equal(t, Uncategorized, CategoryName(categories, "deleted"))
	assert.Equal(t, Uncategorized, CategoryName(nil, ""))
}

func TestCategoryFieldsValidation(t *testing.T) {
	assert.NoError(t, CategoryFields{Name: "Nature"}.Validate())
	assert.Error(t, CategoryFields{Name: "  "}.Normalize().Validate())
}
