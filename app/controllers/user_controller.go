package controllers

import (
	"net/http"

	"bloglist/app/models"
	"bloglist/app/services"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// UserController handles HTTP requests for user accounts
type UserController struct {
	userService *services.UserService
	log         zerolog.Logger
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService, log zerolog.Logger) *UserController {
	return &UserController{
		userService: userService,
		log:         log,
	}
}

// Index handles listing all users
func (uc *UserController) Index(w http.ResponseWriter, r *http.Request) {
	users, err := uc.userService.ListUsers(r.Context())
	if err != nil {
		sendServiceError(w, r, uc.log, err)
		return
	}
	sendJSON(w, http.StatusOK, users)
}

// Show handles displaying a single user
func (uc *UserController) Show(w http.ResponseWriter, r *http.Request) {
	user, err := uc.userService.GetUser(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		sendServiceError(w, r, uc.log, err)
		return
	}
	sendJSON(w, http.StatusOK, user)
}

// Create handles registering a new user
func (uc *UserController) Create(w http.ResponseWriter, r *http.Request) {
	var in models.UserInput
	if err := decodeJSON(r, &in); err != nil {
		sendServiceError(w, r, uc.log, err)
		return
	}

	user, err := uc.userService.CreateUser(r.Context(), &in)
	if err != nil {
		sendServiceError(w, r, uc.log, err)
		return
	}
	sendJSON(w, http.StatusCreated, user)
}
