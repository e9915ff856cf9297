package controllers

import (
	"context"
	"net/http"
	"testing"

	"bloglist/app/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlogController(t *testing.T) {
	env := setupTestControllers(t)
	owner := env.createUser(t, "root", "sekret")
	other := env.createUser(t, "other", "sekret")

	var created models.FormattedBlog

	t.Run("create blog", func(t *testing.T) {
		payload := `{"title":"Canonical string reduction","author":"Edsger W. Dijkstra","url":"http://www.cs.utexas.edu/~EWD/transcriptions/EWD08xx/EWD808.html","likes":12}`
		w := env.do(http.MethodPost, "/api/blogs", payload, owner.ID)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		created = decodeBody[models.FormattedBlog](t, w)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, 12, created.Likes)
		require.NotNil(t, created.User)
		assert.Equal(t, owner.ID, created.User.ID)
		assert.NotContains(t, w.Body.String(), "passwordHash")
	})

	t.Run("create without likes", func(t *testing.T) {
		w := env.do(http.MethodPost, "/api/blogs", `{"title":"t","url":"u"}`, owner.ID)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 0, decodeBody[models.FormattedBlog](t, w).Likes)
	})

	t.Run("create errors", func(t *testing.T) {
		tests := []struct {
			name    string
			payload string
			user    string
			status  int
			body    string
		}{
			{"missing title", `{"url":"u"}`, owner.ID, http.StatusBadRequest, `{"error":"content missing"}`},
			{"missing url", `{"title":"t"}`, owner.ID, http.StatusBadRequest, `{"error":"content missing"}`},
			{"empty body", ``, owner.ID, http.StatusBadRequest, `{"error":"content missing"}`},
			{"bad json", `{"title":`, owner.ID, http.StatusBadRequest, `{"error":"malformatted json"}`},
			{"anonymous", `{"title":"t","url":"u"}`, "", http.StatusUnauthorized, `{"error":"token missing or invalid"}`},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				w := env.do(http.MethodPost, "/api/blogs", tt.payload, tt.user)
				assert.Equal(t, tt.status, w.Code)
				assert.JSONEq(t, tt.body, w.Body.String())
			})
		}
	})

	t.Run("list blogs", func(t *testing.T) {
		w := env.do(http.MethodGet, "/api/blogs", "", "")
		assert.Equal(t, http.StatusOK, w.Code)

		blogs := decodeBody[[]models.FormattedBlog](t, w)
		require.Len(t, blogs, 2)
		assert.Equal(t, created.ID, blogs[0].ID)
		require.NotNil(t, blogs[0].User)
		assert.Equal(t, "root", blogs[0].User.Username)
	})

	t.Run("get blog", func(t *testing.T) {
		w := env.do(http.MethodGet, "/api/blogs/"+created.ID, "", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, created, decodeBody[models.FormattedBlog](t, w))
	})

	t.Run("get missing blog", func(t *testing.T) {
		w := env.do(http.MethodGet, "/api/blogs/"+uuid.NewString(), "", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("get malformed id", func(t *testing.T) {
		w := env.do(http.MethodGet, "/api/blogs/5a3d5da59070081a82a3445", "", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"malformatted id"}`, w.Body.String())
	})

	t.Run("update blog", func(t *testing.T) {
		payload := `{"title":"Canonical string reduction","author":"Edsger W. Dijkstra","url":"u","likes":13}`
		w := env.do(http.MethodPut, "/api/blogs/"+created.ID, payload, "")
		assert.Equal(t, http.StatusOK, w.Code)

		updated := decodeBody[models.FormattedBlog](t, w)
		assert.Equal(t, 13, updated.Likes)
		require.NotNil(t, updated.User)
		assert.Equal(t, owner.ID, updated.User.ID)
	})

	t.Run("update errors", func(t *testing.T) {
		w := env.do(http.MethodPut, "/api/blogs/"+created.ID, `{"title":"t","url":"u"}`, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"author, title or url is missing"}`, w.Body.String())

		w = env.do(http.MethodPut, "/api/blogs/"+uuid.NewString(), `{"title":"t","author":"a","url":"u"}`, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"malformatted id"}`, w.Body.String())
	})

	t.Run("delete by another user", func(t *testing.T) {
		w := env.do(http.MethodDelete, "/api/blogs/"+created.ID, "", other.ID)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"not allowed to remove blog"}`, w.Body.String())
	})

	t.Run("delete anonymously", func(t *testing.T) {
		w := env.do(http.MethodDelete, "/api/blogs/"+created.ID, "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"token missing or invalid"}`, w.Body.String())
	})

	t.Run("delete by owner", func(t *testing.T) {
		w := env.do(http.MethodDelete, "/api/blogs/"+created.ID, "", owner.ID)
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())

		w = env.do(http.MethodDelete, "/api/blogs/"+created.ID, "", owner.ID)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"malformatted id"}`, w.Body.String())
	})

	t.Run("stats", func(t *testing.T) {
		w := env.do(http.MethodGet, "/api/blogs/stats", "", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{
			"totalLikes": 0,
			"favoriteBlog": {"title":"t","author":"","url":"u","likes":0},
			"mostBlogs": {"author":"","blogs":1},
			"mostLikes": {"author":"","likes":0}
		}`, w.Body.String())
	})

	t.Run("store failure", func(t *testing.T) {
		env.blogs.Err = assert.AnError
		defer func() { env.blogs.Err = nil }()

		w := env.do(http.MethodGet, "/api/blogs", "", "")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"something went wrong..."}`, w.Body.String())
	})

	t.Run("orphaned blog", func(t *testing.T) {
		env.users.LinkErr = assert.AnError
		defer func() { env.users.LinkErr = nil }()

		w := env.do(http.MethodPost, "/api/blogs", `{"title":"orphan","url":"u"}`, owner.ID)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"something went wrong..."}`, w.Body.String())

		blogs, err := env.blogs.List(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "orphan", blogs[len(blogs)-1].Title)
	})
}
