package controllers

import (
	"net/http"

	"bloglist/app/models"
	"bloglist/app/services"

	"github.com/rs/zerolog"
)

// LoginController handles token issuance
type LoginController struct {
	loginService *services.LoginService
	log          zerolog.Logger
}

// NewLoginController creates a new LoginController
func NewLoginController(loginService *services.LoginService, log zerolog.Logger) *LoginController {
	return &LoginController{
		loginService: loginService,
		log:          log,
	}
}

// Login exchanges username and password for a bearer token
func (lc *LoginController) Login(w http.ResponseWriter, r *http.Request) {
	var in models.LoginInput
	if err := decodeJSON(r, &in); err != nil {
		sendServiceError(w, r, lc.log, err)
		return
	}

	resp, err := lc.loginService.Login(r.Context(), &in)
	if err != nil {
		sendServiceError(w, r, lc.log, err)
		return
	}
	sendJSON(w, http.StatusOK, resp)
}
