package routes

import (
	"encoding/json"
	"net/http"

	"bloglist/app/auth"
	"bloglist/app/controllers"
	"bloglist/app/middleware"
	"bloglist/app/repositories"
	"bloglist/app/services"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// Dependencies are the shared resources the routes are built from.
type Dependencies struct {
	Store  *repositories.Store
	Tokens auth.TokenManager
	Log    zerolog.Logger
	// ProtectReads requires a valid token for blog and comment reads.
	ProtectReads bool
}

// SetupRoutes defines the application's routes and returns a router.
func SetupRoutes(deps Dependencies) *mux.Router {
	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Recoverer(deps.Log))
	router.Use(middleware.Logger(deps.Log))
	router.Use(middleware.ContentTypeJSON)
	router.Use(middleware.BearerToken)

	store := deps.Store
	blogService := services.NewBlogService(store.Blogs, store.Users, store.Comments, deps.Log)
	commentService := services.NewCommentService(store.Comments, deps.Log)
	userService := services.NewUserService(store.Users, store.Blogs, deps.Log)
	loginService := services.NewLoginService(store.Users, deps.Tokens, deps.Log)

	blogController := controllers.NewBlogController(blogService, deps.Log)
	commentController := controllers.NewCommentController(commentService, deps.Log)
	userController := controllers.NewUserController(userService, deps.Log)
	loginController := controllers.NewLoginController(loginService, deps.Log)

	requireAuth := guard(middleware.RequireAuth(deps.Tokens))
	optionalAuth := guard(middleware.OptionalAuth(deps.Tokens))
	read := guard(nil)
	if deps.ProtectReads {
		read = requireAuth
	}

	api := router.PathPrefix("/api").Subrouter()

	// Blogs; stats must precede {id}
	api.Handle("/blogs", read(blogController.Index)).Methods("GET")
	api.Handle("/blogs", requireAuth(blogController.Create)).Methods("POST")
	api.Handle("/blogs/stats", read(blogController.Stats)).Methods("GET")
	api.Handle("/blogs/{id}", read(blogController.Show)).Methods("GET")
	api.HandleFunc("/blogs/{id}", blogController.Update).Methods("PUT")
	api.Handle("/blogs/{id}", optionalAuth(blogController.Delete)).Methods("DELETE")

	// Comments
	api.Handle("/blogs/{id}/comments", read(commentController.Index)).Methods("GET")
	api.Handle("/blogs/{id}/comments", requireAuth(commentController.Create)).Methods("POST")

	// Users
	api.HandleFunc("/users", userController.Index).Methods("GET")
	api.HandleFunc("/users", userController.Create).Methods("POST")
	api.HandleFunc("/users/{id}", userController.Show).Methods("GET")

	api.HandleFunc("/login", loginController.Login).Methods("POST")

	router.NotFoundHandler = http.HandlerFunc(unknownEndpoint)
	api.NotFoundHandler = router.NotFoundHandler
	router.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)
	api.MethodNotAllowedHandler = router.MethodNotAllowedHandler

	return router
}

// guard adapts a middleware so it can wrap a handler function. A nil
// middleware passes the handler through unchanged.
func guard(mw func(http.Handler) http.Handler) func(http.HandlerFunc) http.Handler {
	return func(h http.HandlerFunc) http.Handler {
		if mw == nil {
			return h
		}
		return mw(h)
	}
}

func unknownEndpoint(w http.ResponseWriter, r *http.Request) {
	writeJSONError(w, http.StatusNotFound, "unknown endpoint")
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
