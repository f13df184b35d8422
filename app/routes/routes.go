package routes

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"scribbles/app/controllers"
	"scribbles/app/middleware"
	"scribbles/app/services"

	"github.com/gorilla/mux"
)

// SetupRoutes defines the application's routes over an initialized BlogContext.
func SetupRoutes(blog *services.BlogContext, logger *slog.Logger) *mux.Router {
	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recoverer(logger))
	router.Use(middleware.ContentTypeJSON)

	postController := controllers.NewPostController(services.NewPostService(blog), logger)
	commentController := controllers.NewCommentController(services.NewCommentService(blog), logger)
	categoryController := controllers.NewCategoryController(services.NewCategoryService(blog), logger)

	router.NotFoundHandler = http.HandlerFunc(notFound)
	router.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)

	// Full paths on the root router, so a method mismatch reaches MethodNotAllowedHandler.

	// Posts API endpoints
	router.HandleFunc("/api/posts", postController.Index).Methods("GET")
	router.HandleFunc("/api/posts/featured", postController.Featured).Methods("GET")
	router.HandleFunc("/api/posts", postController.Create).Methods("POST")
	router.HandleFunc("/api/posts/{slug}", postController.Show).Methods("GET")
	router.HandleFunc("/api/posts/{slug}/html", postController.HTML).Methods("GET")
	router.HandleFunc("/api/posts/{id}", postController.Edit).Methods("PUT")
	router.HandleFunc("/api/posts/{id}", postController.Delete).Methods("DELETE")

	// Comments API endpoints
	router.HandleFunc("/api/posts/{postId}/comments", commentController.Index).Methods("GET")
	router.HandleFunc("/api/posts/{postId}/comments", commentController.Create).Methods("POST")
	router.HandleFunc("/api/comments/{id}", commentController.Edit).Methods("PUT")
	router.HandleFunc("/api/comments/{id}", commentController.Delete).Methods("DELETE")

	// Categories API endpoints
	router.HandleFunc("/api/categories", categoryController.Index).Methods("GET")
	router.HandleFunc("/api/categories", categoryController.Create).Methods("POST")
	router.HandleFunc("/api/categories/{slug}", categoryController.Show).Methods("GET")
	router.HandleFunc("/api/categories/{id}", categoryController.Edit).Methods("PUT")
	router.HandleFunc("/api/categories/{id}", categoryController.Delete).Methods("DELETE")

	return router
}

// mux skips middleware for unmatched routes, so these set the header themselves.
func notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "Not found")
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
