package controllers

import (
	"log/slog"
	"net/http"

	"scribbles/app/models"
	"scribbles/app/services"

	"github.com/gorilla/mux"
)

// CategoryController handles HTTP requests for categories
type CategoryController struct {
	categoryService *services.CategoryService
	logger          *slog.Logger
}

// NewCategoryController creates a new CategoryController
func NewCategoryController(categoryService *services.CategoryService, logger *slog.Logger) *CategoryController {
	return &CategoryController{categoryService: categoryService, logger: loggerOrDefault(logger)}
}

// Index lists all categories
func (cc *CategoryController) Index(w http.ResponseWriter, r *http.Request) {
	categories, err := cc.categoryService.ListCategories()
	if err != nil {
		sendFailure(w, cc.logger, "fetch categories", err)
		return
	}
	sendList(w, r, categories)
}

// Show returns a category by slug together with its posts
func (cc *CategoryController) Show(w http.ResponseWriter, r *http.Request) {
	result, err := cc.categoryService.GetCategory(mux.Vars(r)["slug"])
	if err != nil {
		sendFailure(w, cc.logger, "fetch category", err)
		return
	}
	sendJSON(w, http.StatusOK, result)
}

// Create handles category creation
func (cc *CategoryController) Create(w http.ResponseWriter, r *http.Request) {
	var form models.CategoryFields
	if !decodeJSON(w, r, &form) {
		return
	}
	category, err := cc.categoryService.CreateCategory(form)
	if err != nil {
		sendFailure(w, cc.logger, "create category", err)
		return
	}
	sendJSON(w, http.StatusCreated, category)
}

// Edit handles category updates
func (cc *CategoryController) Edit(w http.ResponseWriter, r *http.Request) {
	var form models.CategoryFields
	if !decodeJSON(w, r, &form) {
		return
	}
	category, err := cc.categoryService.UpdateCategory(mux.Vars(r)["id"], form)
	if err != nil {
		sendFailure(w, cc.logger, "update category", err)
		return
	}
	sendJSON(w, http.StatusOK, category)
}

// Delete removes a category
func (cc *CategoryController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := cc.categoryService.DeleteCategory(mux.Vars(r)["id"]); err != nil {
		sendFailure(w, cc.logger, "delete category", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
