package controllers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"scribbles/app/repositories"
	"scribbles/app/repositories/mock"
	"scribbles/app/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	blog   *services.BlogContext
	store  *mock.Store
	router *mux.Router
}

func setupTestApp(t *testing.T) *testApp {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := mock.NewStore()
	repo := repositories.NewRepository(store)
	t.Cleanup(func() { repo.Close() })

	blog := services.NewBlogContext(repo, logger)
	require.NoError(t, blog.Init())

	posts := NewPostController(services.NewPostService(blog), logger)
	comments := NewCommentController(services.NewCommentService(blog), logger)
	categories := NewCategoryController(services.NewCategoryService(blog), logger)

	// Registered by hand so these tests do not depend on the routes package.
	router := mux.NewRouter()
	router.HandleFunc("/posts", posts.Index).Methods("GET")
	router.HandleFunc("/posts/featured", posts.Featured).Methods("GET")
	router.HandleFunc("/posts", posts.Create).Methods("POST")
	router.HandleFunc("/posts/{slug}", posts.Show).Methods("GET")
	router.HandleFunc("/posts/{slug}/html", posts.HTML).Methods("GET")
	router.HandleFunc("/posts/{id}", posts.Edit).Methods("PUT")
	router.HandleFunc("/posts/{id}", posts.Delete).Methods("DELETE")
	router.HandleFunc("/posts/{postId}/comments", comments.Index).Methods("GET")
	router.HandleFunc("/posts/{postId}/comments", comments.Create).Methods("POST")
	router.HandleFunc("/comments/{id}", comments.Edit).Methods("PUT")
	router.HandleFunc("/comments/{id}", comments.Delete).Methods("DELETE")
	router.HandleFunc("/categories", categories.Index).Methods("GET")
	router.HandleFunc("/categories", categories.Create).Methods("POST")
	router.HandleFunc("/categories/{slug}", categories.Show).Methods("GET")
	router.HandleFunc("/categories/{id}", categories.Edit).Methods("PUT")
	router.HandleFunc("/categories/{id}", categories.Delete).Methods("DELETE")

	return &testApp{blog: blog, store: store, router: router}
}

func (a *testApp) do(method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	return decodeBody[map[string]string](t, w)["error"]
}

func expectStatus(t *testing.T, w *httptest.ResponseRecorder, status int) {
	t.Helper()
	require.Equal(t, status, w.Code, w.Body.String())
}
