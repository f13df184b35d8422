package controllers

import (
	"log/slog"
	"net/http"

	"scribbles/app/models"
	"scribbles/app/services"

	"github.com/gorilla/mux"
)

// PostController handles HTTP requests for blog posts
type PostController struct {
	postService *services.PostService
	logger      *slog.Logger
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService, logger *slog.Logger) *PostController {
	return &PostController{postService: postService, logger: loggerOrDefault(logger)}
}

// Index lists posts, optionally filtered by ?category=<slug>
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := pc.postService.ListPosts(r.URL.Query().Get("category"))
	if err != nil {
		sendFailure(w, pc.logger, "fetch posts", err)
		return
	}
	sendList(w, r, posts)
}

// Featured lists the featured posts
func (pc *PostController) Featured(w http.ResponseWriter, r *http.Request) {
	posts, err := pc.postService.FeaturedPosts()
	if err != nil {
		sendFailure(w, pc.logger, "fetch featured posts", err)
		return
	}
	sendList(w, r, posts)
}

// Show returns a single post by slug
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	post, err := pc.postService.GetPost(mux.Vars(r)["slug"])
	if err != nil {
		sendFailure(w, pc.logger, "fetch post", err)
		return
	}
	sendJSON(w, http.StatusOK, post)
}

// HTML returns the post content rendered from markdown
func (pc *PostController) HTML(w http.ResponseWriter, r *http.Request) {
	postSlug := mux.Vars(r)["slug"]
	html, err := pc.postService.RenderPost(postSlug)
	if err != nil {
		sendFailure(w, pc.logger, "render post", err)
		return
	}
	sendJSON(w, http.StatusOK, map[string]string{"slug": postSlug, "html": html})
}

// Create handles post creation
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	var form models.PostFields
	if !decodeJSON(w, r, &form) {
		return
	}
	post, err := pc.postService.CreatePost(form)
	if err != nil {
		sendFailure(w, pc.logger, "create post", err)
		return
	}
	sendJSON(w, http.StatusCreated, post)
}

// Edit handles post updates
func (pc *PostController) Edit(w http.ResponseWriter, r *http.Request) {
	var form models.PostFields
	if !decodeJSON(w, r, &form) {
		return
	}
	post, err := pc.postService.UpdatePost(mux.Vars(r)["id"], form)
	if err != nil {
		sendFailure(w, pc.logger, "update post", err)
		return
	}
	sendJSON(w, http.StatusOK, post)
}

// Delete removes a post and its comments
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := pc.postService.DeletePost(mux.Vars(r)["id"]); err != nil {
		sendFailure(w, pc.logger, "delete post", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
