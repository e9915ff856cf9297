package controllers

import (
	"net/http"

	"bloglist/app/models"
	"bloglist/app/services"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// CommentController handles HTTP requests for comments on a blog
type CommentController struct {
	commentService *services.CommentService
	log            zerolog.Logger
}

// NewCommentController creates a new CommentController
func NewCommentController(commentService *services.CommentService, log zerolog.Logger) *CommentController {
	return &CommentController{
		commentService: commentService,
		log:            log,
	}
}

// Index handles listing the comments of a blog
func (cc *CommentController) Index(w http.ResponseWriter, r *http.Request) {
	comments, err := cc.commentService.ListComments(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		sendServiceError(w, r, cc.log, err)
		return
	}
	sendJSON(w, http.StatusOK, comments)
}

// Create handles adding a comment to a blog
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	var in models.CommentInput
	if err := decodeJSON(r, &in); err != nil {
		sendServiceError(w, r, cc.log, err)
		return
	}

	comment, err := cc.commentService.CreateComment(r.Context(), mux.Vars(r)["id"], &in)
	if err != nil {
		sendServiceError(w, r, cc.log, err)
		return
	}
	sendJSON(w, http.StatusCreated, comment)
}
