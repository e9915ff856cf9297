package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"bloglist/app/services"

	"github.com/rs/zerolog"
)

const genericErrorMessage = "something went wrong..."

// errorResponses maps service errors to status and body. Order matters:
// the first match wins.
var errorResponses = []struct {
	err     error
	status  int
	message string
}{
	{services.ErrContentMissing, http.StatusBadRequest, "content missing"},
	{services.ErrBlogFieldsMissing, http.StatusBadRequest, "author, title or url is missing"},
	{services.ErrMalformedID, http.StatusBadRequest, "malformatted id"},
	{services.ErrPasswordTooShort, http.StatusBadRequest, "Password must be 3 or more characters long"},
	{services.ErrUsernameTaken, http.StatusBadRequest, "Username is already taken"},
	{services.ErrInvalidCredentials, http.StatusUnauthorized, "invalid username or password"},
	{services.ErrUnauthenticated, http.StatusUnauthorized, "token missing or invalid"},
	{services.ErrNotAllowed, http.StatusUnauthorized, "not allowed to remove blog"},
}

// errMalformedJSON is reported when a request body cannot be decoded
var errMalformedJSON = errors.New("malformatted json")

func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func sendError(w http.ResponseWriter, message string, status int) {
	sendJSON(w, status, map[string]string{"error": message})
}

// sendServiceError writes the response for an error returned by a service.
// Unknown errors are logged and answered with a generic 500.
func sendServiceError(w http.ResponseWriter, r *http.Request, log zerolog.Logger, err error) {
	if errors.Is(err, services.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if errors.Is(err, errMalformedJSON) {
		sendError(w, errMalformedJSON.Error(), http.StatusBadRequest)
		return
	}
	for _, resp := range errorResponses {
		if errors.Is(err, resp.err) {
			sendError(w, resp.message, resp.status)
			return
		}
	}

	log.Error().Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("request failed")
	sendError(w, genericErrorMessage, http.StatusInternalServerError)
}

// decodeJSON reads the request body into v. An empty body leaves v untouched
// so that validation reports the missing fields.
func decodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return errMalformedJSON
	}
	return nil
}
