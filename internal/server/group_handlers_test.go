package server

import (
	"fmt"
	"net/http"
	"testing"

	"quill/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestAdmin(t *testing.T, s *Server, username string) (*models.User, string) {
	t.Helper()
	user, token := createTestUser(t, s, username)
	require.NoError(t, s.db.Model(user).Update("is_admin", true).Error)
	return user, token
}

func TestAdminGroupCRUD(t *testing.T) {
	t.Parallel()
	s, app := setupTestServer(t)
	_, adminToken := createTestAdmin(t, s, "admin")

	var group models.Group

	t.Run("create", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/admin/groups", adminToken, fiber.Map{
			"title":       "Cooking & Baking",
			"description": "Recipes and results",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		decodeBody(t, resp, &group)
		assert.Equal(t, "cooking-baking", group.Slug)
	})

	t.Run("duplicate slug conflicts", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/admin/groups", adminToken, fiber.Map{
			"title": "Cooking Baking",
			"slug":  "cooking-baking",
		})
		require.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("update keeps the slug", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/admin/groups/%d", group.ID), adminToken, fiber.Map{
			"title": "Cooking",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var updated models.Group
		decodeBody(t, resp, &updated)
		assert.Equal(t, "Cooking", updated.Title)
		assert.Equal(t, "cooking-baking", updated.Slug)
	})

	t.Run("delete clears group from posts", func(t *testing.T) {
		_, token := createTestUser(t, s, "leo")
		resp := doJSON(t, app, http.MethodPost, "/api/posts", token, fiber.Map{
			"text":     "posted into the group",
			"group_id": group.ID,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		var post models.Post
		decodeBody(t, resp, &post)
		require.NotNil(t, post.GroupID)

		resp = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/admin/groups/%d", group.ID), adminToken, nil)
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		// The post survives without its group.
		resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/users/leo/posts/%d", post.ID), "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var view struct {
			Post models.Post `json:"post"`
		}
		decodeBody(t, resp, &view)
		assert.Nil(t, view.Post.GroupID)
	})
}

func TestPublicGroupRoutes(t *testing.T) {
	t.Parallel()
	s, app := setupTestServer(t)
	_, adminToken := createTestAdmin(t, s, "admin")
	_, leoToken := createTestUser(t, s, "leo")

	resp := doJSON(t, app, http.MethodPost, "/api/admin/groups", adminToken, fiber.Map{
		"title": "Travel",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var group models.Group
	decodeBody(t, resp, &group)

	resp = doJSON(t, app, http.MethodPost, "/api/posts", leoToken, fiber.Map{
		"text":     "in the group",
		"group_id": group.ID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	_ = resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/posts", leoToken, fiber.Map{
		"text": "outside the group",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	_ = resp.Body.Close()

	t.Run("list groups", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/groups", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var groups []models.Group
		decodeBody(t, resp, &groups)
		require.Len(t, groups, 1)
		assert.Equal(t, "travel", groups[0].Slug)
	})

	t.Run("group page lists only its posts", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/groups/travel/posts", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var out struct {
			Group models.Group  `json:"group"`
			Posts []models.Post `json:"posts"`
		}
		decodeBody(t, resp, &out)
		assert.Equal(t, "Travel", out.Group.Title)
		require.Len(t, out.Posts, 1)
		assert.Equal(t, "in the group", out.Posts[0].Text)
	})

	t.Run("unknown group page", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/groups/ghost/posts", "", nil)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
