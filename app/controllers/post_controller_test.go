package controllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"scribbles/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostController(t *testing.T) {
	app := setupTestApp(t)
	category, err := app.blog.GetCategoryBySlug("characters")
	require.NoError(t, err)

	t.Run("index lists all posts", func(t *testing.T) {
		w := app.do(http.MethodGet, "/posts", "")
		expectStatus(t, w, http.StatusOK)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		assert.NotEmpty(t, w.Header().Get("ETag"))
		assert.Len(t, decodeBody[[]models.Post](t, w), 4)
	})

	t.Run("index filters by category", func(t *testing.T) {
		w := app.do(http.MethodGet, "/posts?category=characters", "")
		expectStatus(t, w, http.StatusOK)
		posts := decodeBody[[]models.Post](t, w)
		require.Len(t, posts, 1)
		assert.Equal(t, "spirit-of-kodama", posts[0].Slug)

		w = app.do(http.MethodGet, "/posts?category=missing", "")
		expectStatus(t, w, http.StatusNotFound)
	})

	t.Run("etag revalidation", func(t *testing.T) {
		first := app.do(http.MethodGet, "/posts/featured", "")
		expectStatus(t, first, http.StatusOK)
		assert.Len(t, decodeBody[[]models.Post](t, first), 2)

		req := httptest.NewRequest(http.MethodGet, "/posts/featured", nil)
		req.Header.Set("If-None-Match", first.Header().Get("ETag"))
		w := httptest.NewRecorder()
		app.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotModified, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("show and html", func(t *testing.T) {
		w := app.do(http.MethodGet, "/posts/enchanted-forest", "")
		expectStatus(t, w, http.StatusOK)
		assert.Equal(t, "The Enchanted Forest", decodeBody[models.Post](t, w).Title)

		w = app.do(http.MethodGet, "/posts/enchanted-forest/html", "")
		expectStatus(t, w, http.StatusOK)
		assert.Contains(t, decodeBody[map[string]string](t, w)["html"], "<h1")

		w = app.do(http.MethodGet, "/posts/missing", "")
		expectStatus(t, w, http.StatusNotFound)
		assert.Equal(t, "Not found", errorMessage(t, w))
	})

	var created models.Post
	t.Run("create", func(t *testing.T) {
		payload := fmt.Sprintf(`{
			"title": "Castle in the Sky",
			"excerpt": "Laputa",
			"content": "Floating islands",
			"categoryId": %q
		}`, category.ID)
		w := app.do(http.MethodPost, "/posts", payload)
		expectStatus(t, w, http.StatusCreated)

		created = decodeBody[models.Post](t, w)
		assert.Equal(t, "castle-in-the-sky", created.Slug)
		assert.NotEmpty(t, created.ID)

		posts, err := app.blog.Posts()
		require.NoError(t, err)
		assert.Len(t, posts, 5)
	})

	t.Run("create rejects bad input", func(t *testing.T) {
		w := app.do(http.MethodPost, "/posts", `{"title": ""}`)
		expectStatus(t, w, http.StatusBadRequest)
		assert.Contains(t, errorMessage(t, w), "invalid input")

		w = app.do(http.MethodPost, "/posts", `{not json`)
		expectStatus(t, w, http.StatusBadRequest)
		assert.Contains(t, errorMessage(t, w), "Invalid JSON")

		w = app.do(http.MethodPost, "/posts", "")
		expectStatus(t, w, http.StatusBadRequest)
	})

	t.Run("edit", func(t *testing.T) {
		payload := fmt.Sprintf(`{
			"title": "Castle in the Sky (1986)",
			"excerpt": "Laputa",
			"content": "Floating islands",
			"categoryId": %q,
			"featured": true
		}`, category.ID)
		w := app.do(http.MethodPut, "/posts/"+created.ID, payload)
		expectStatus(t, w, http.StatusOK)

		updated := decodeBody[models.Post](t, w)
		assert.Equal(t, "Castle in the Sky (1986)", updated.Title)
		assert.Equal(t, created.Slug, updated.Slug)
		assert.True(t, updated.Featured)

		w = app.do(http.MethodPut, "/posts/missing", payload)
		expectStatus(t, w, http.StatusNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		w := app.do(http.MethodDelete, "/posts/"+created.ID, "")
		expectStatus(t, w, http.StatusNoContent)

		w = app.do(http.MethodGet, "/posts/"+created.Slug, "")
		expectStatus(t, w, http.StatusNotFound)
	})

	t.Run("storage failure", func(t *testing.T) {
		app.store.SetErr = fmt.Errorf("disk full")
		defer func() { app.store.SetErr = nil }()

		w := app.do(http.MethodDelete, "/posts/anything", "")
		expectStatus(t, w, http.StatusInternalServerError)
		assert.Contains(t, errorMessage(t, w), "disk full")
	})
}
