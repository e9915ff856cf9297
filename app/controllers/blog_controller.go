package controllers

import (
	"net/http"

	"bloglist/app/middleware"
	"bloglist/app/models"
	"bloglist/app/services"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// BlogController handles HTTP requests for blogs
type BlogController struct {
	blogService *services.BlogService
	log         zerolog.Logger
}

// NewBlogController creates a new BlogController
func NewBlogController(blogService *services.BlogService, log zerolog.Logger) *BlogController {
	return &BlogController{
		blogService: blogService,
		log:         log,
	}
}

// Index handles listing all blogs
func (bc *BlogController) Index(w http.ResponseWriter, r *http.Request) {
	blogs, err := bc.blogService.ListBlogs(r.Context())
	if err != nil {
		sendServiceError(w, r, bc.log, err)
		return
	}
	sendJSON(w, http.StatusOK, blogs)
}

// Show handles displaying a single blog
func (bc *BlogController) Show(w http.ResponseWriter, r *http.Request) {
	blog, err := bc.blogService.GetBlog(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		sendServiceError(w, r, bc.log, err)
		return
	}
	sendJSON(w, http.StatusOK, blog)
}

// Create handles creating a blog owned by the authenticated user
func (bc *BlogController) Create(w http.ResponseWriter, r *http.Request) {
	var in models.BlogInput
	if err := decodeJSON(r, &in); err != nil {
		sendServiceError(w, r, bc.log, err)
		return
	}

	blog, err := bc.blogService.CreateBlog(r.Context(), middleware.UserIDFromContext(r.Context()), &in)
	if err != nil {
		sendServiceError(w, r, bc.log, err)
		return
	}
	sendJSON(w, http.StatusCreated, blog)
}

// Update handles replacing a blog's fields
func (bc *BlogController) Update(w http.ResponseWriter, r *http.Request) {
	var in models.BlogInput
	if err := decodeJSON(r, &in); err != nil {
		sendServiceError(w, r, bc.log, err)
		return
	}

	blog, err := bc.blogService.UpdateBlog(r.Context(), mux.Vars(r)["id"], &in)
	if err != nil {
		sendServiceError(w, r, bc.log, err)
		return
	}
	sendJSON(w, http.StatusOK, blog)
}

// Delete handles removing a blog
func (bc *BlogController) Delete(w http.ResponseWriter, r *http.Request) {
	err := bc.blogService.DeleteBlog(r.Context(), middleware.UserIDFromContext(r.Context()), mux.Vars(r)["id"])
	if err != nil {
		sendServiceError(w, r, bc.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Stats handles the aggregate view over all blogs
func (bc *BlogController) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := bc.blogService.Stats(r.Context())
	if err != nil {
		sendServiceError(w, r, bc.log, err)
		return
	}
	sendJSON(w, http.StatusOK, stats)
}
