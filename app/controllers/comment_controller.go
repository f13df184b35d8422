package controllers

import (
	"log/slog"
	"net/http"

	"scribbles/app/models"
	"scribbles/app/services"

	"github.com/gorilla/mux"
)

// CommentController handles HTTP requests for comments
type CommentController struct {
	commentService *services.CommentService
	logger         *slog.Logger
}

// NewCommentController creates a new CommentController
func NewCommentController(commentService *services.CommentService, logger *slog.Logger) *CommentController {
	return &CommentController{commentService: commentService, logger: loggerOrDefault(logger)}
}

// Index lists the comments of a post
func (cc *CommentController) Index(w http.ResponseWriter, r *http.Request) {
	comments, err := cc.commentService.ListComments(mux.Vars(r)["postId"])
	if err != nil {
		sendFailure(w, cc.logger, "fetch comments", err)
		return
	}
	sendList(w, r, comments)
}

// Create adds a comment to a post
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	var form models.CommentFields
	if !decodeJSON(w, r, &form) {
		return
	}
	comment, err := cc.commentService.CreateComment(mux.Vars(r)["postId"], form)
	if err != nil {
		sendFailure(w, cc.logger, "create comment", err)
		return
	}
	sendJSON(w, http.StatusCreated, comment)
}

// Edit replaces the content of a comment
func (cc *CommentController) Edit(w http.ResponseWriter, r *http.Request) {
	var form struct {
		Content string `json:"content"`
	}
	if !decodeJSON(w, r, &form) {
		return
	}
	comment, err := cc.commentService.UpdateComment(mux.Vars(r)["id"], form.Content)
	if err != nil {
		sendFailure(w, cc.logger, "update comment", err)
		return
	}
	sendJSON(w, http.StatusOK, comment)
}

// Delete removes a comment
func (cc *CommentController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := cc.commentService.DeleteComment(mux.Vars(r)["id"]); err != nil {
		sendFailure(w, cc.logger, "delete comment", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
