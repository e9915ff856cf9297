package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bloglist/app/auth"
	"bloglist/app/middleware"
	"bloglist/app/models"
	"bloglist/app/repositories/mock"
	"bloglist/app/services"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	router   *mux.Router
	blogs    *mock.BlogRepository
	users    *mock.UserRepository
	comments *mock.CommentRepository
	tokens   *auth.JWTManager
}

// asUser marks every request carrying an X-Test-User header as
// authenticated by that user
func asUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := r.Header.Get("X-Test-User"); id != "" {
			r = r.WithContext(middleware.WithUserID(r.Context(), id))
		}
		next.ServeHTTP(w, r)
	})
}

func setupTestControllers(t *testing.T) *testEnv {
	t.Helper()
	log := zerolog.Nop()
	env := &testEnv{
		blogs:    mock.NewBlogRepository(),
		users:    mock.NewUserRepository(),
		comments: mock.NewCommentRepository(),
		tokens:   auth.NewJWTManager("test-secret", time.Hour),
	}

	blogs := NewBlogController(services.NewBlogService(env.blogs, env.users, env.comments, log), log)
	comments := NewCommentController(services.NewCommentService(env.comments, log), log)
	users := NewUserController(services.NewUserService(env.users, env.blogs, log), log)
	login := NewLoginController(services.NewLoginService(env.users, env.tokens, log), log)

	router := mux.NewRouter()
	router.Use(asUser)
	router.HandleFunc("/api/blogs", blogs.Index).Methods("GET")
	router.HandleFunc("/api/blogs", blogs.Create).Methods("POST")
	router.HandleFunc("/api/blogs/stats", blogs.Stats).Methods("GET")
	router.HandleFunc("/api/blogs/{id}", blogs.Show).Methods("GET")
	router.HandleFunc("/api/blogs/{id}", blogs.Update).Methods("PUT")
	router.HandleFunc("/api/blogs/{id}", blogs.Delete).Methods("DELETE")
	router.HandleFunc("/api/blogs/{id}/comments", comments.Index).Methods("GET")
	router.HandleFunc("/api/blogs/{id}/comments", comments.Create).Methods("POST")
	router.HandleFunc("/api/users", users.Index).Methods("GET")
	router.HandleFunc("/api/users", users.Create).Methods("POST")
	router.HandleFunc("/api/users/{id}", users.Show).Methods("GET")
	router.HandleFunc("/api/login", login.Login).Methods("POST")
	env.router = router
	return env
}

// do sends a request, optionally as the given user, and returns the recorder
func (env *testEnv) do(method, path, body, userID string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-Test-User", userID)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func (env *testEnv) createUser(t *testing.T, username, password string) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	user := &models.User{Username: username, Name: strings.ToUpper(username), PasswordHash: hash, Adult: true}
	require.NoError(t, env.users.Create(context.Background(), user))
	return user
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
