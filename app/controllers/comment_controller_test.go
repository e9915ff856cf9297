package controllers

import (
	"net/http"
	"testing"

	"bloglist/app/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentController(t *testing.T) {
	env := setupTestControllers(t)
	owner := env.createUser(t, "root", "sekret")
	blogID := uuid.NewString()
	path := "/api/blogs/" + blogID + "/comments"

	t.Run("list empty", func(t *testing.T) {
		w := env.do(http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{}`, w.Body.String())
	})

	t.Run("create comment", func(t *testing.T) {
		w := env.do(http.MethodPost, path, `{"content":"great read"}`, owner.ID)
		assert.Equal(t, http.StatusCreated, w.Code)

		created := decodeBody[map[string]models.FormattedComment](t, w)
		require.Contains(t, created, blogID)
		assert.Equal(t, "great read", created[blogID].Content)
	})

	t.Run("list grouped", func(t *testing.T) {
		w := env.do(http.MethodPost, path, `{"content":"agreed"}`, owner.ID)
		require.Equal(t, http.StatusCreated, w.Code)

		w = env.do(http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusOK, w.Code)

		grouped := decodeBody[map[string][]models.FormattedComment](t, w)
		require.Len(t, grouped[blogID], 2)
		assert.Equal(t, "great read", grouped[blogID][0].Content)
		assert.Equal(t, "agreed", grouped[blogID][1].Content)
	})

	t.Run("create without content", func(t *testing.T) {
		w := env.do(http.MethodPost, path, `{}`, owner.ID)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"content missing"}`, w.Body.String())
	})

	t.Run("malformed blog id", func(t *testing.T) {
		w := env.do(http.MethodGet, "/api/blogs/zzz/comments", "", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"malformatted id"}`, w.Body.String())

		w = env.do(http.MethodPost, "/api/blogs/zzz/comments", `{"content":"c"}`, owner.ID)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"malformatted id"}`, w.Body.String())
	})
}
