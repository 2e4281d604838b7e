package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"quill/internal/config"
	"quill/internal/database"
	"quill/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestServer(t *testing.T) (*Server, *fiber.App) {
	t.Helper()

	// TranslateError maps sqlite unique violations onto gorm.ErrDuplicatedKey
	// so conflict handling behaves as it does against Postgres.
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(database.PersistentModels()...))

	cfg := &config.Config{
		Env:       "test",
		Port:      "0",
		JWTSecret: "unit-test-secret-unit-test-secret!!",
	}

	s, err := NewServerWithDeps(cfg, db, nil)
	require.NoError(t, err)

	app := fiber.New()
	s.SetupRoutes(app)

	return s, app
}

// createTestUser inserts a user with a known password ("Sup3r-Secret-Pass!")
// and returns it together with a valid bearer token.
func createTestUser(t *testing.T, s *Server, username string) (*models.User, string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("Sup3r-Secret-Pass!"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: string(hash),
	}
	require.NoError(t, s.db.Create(user).Error)

	token, err := s.generateToken(user.ID, user.Username)
	require.NoError(t, err)

	return user, token
}

func doJSON(t *testing.T, app *fiber.App, method, url, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, url, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

func TestAuthRequired(t *testing.T) {
	t.Parallel()
	s, app := setupTestServer(t)

	t.Run("missing token", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/posts", "", fiber.Map{"text": "hi"})
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("garbage token", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/posts", "not-a-jwt", fiber.Map{"text": "hi"})
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("valid token passes", func(t *testing.T) {
		_, token := createTestUser(t, s, "authuser")
		resp := doJSON(t, app, http.MethodPost, "/api/posts", token, fiber.Map{"text": "hi"})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	})
}

func TestHealthEndpoints(t *testing.T) {
	t.Parallel()
	_, app := setupTestServer(t)

	resp := doJSON(t, app, http.MethodGet, "/health/live", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/health/ready", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAdminRequired(t *testing.T) {
	t.Parallel()
	s, app := setupTestServer(t)

	_, token := createTestUser(t, s, "plainuser")
	resp := doJSON(t, app, http.MethodPost, "/api/admin/groups", token, fiber.Map{
		"title": "Cooking",
	})
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestUnmatchedRoute(t *testing.T) {
	t.Parallel()
	_, app := setupTestServer(t)

	resp := doJSON(t, app, http.MethodGet, "/api/nope", "", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body map[string]any
	decodeBody(t, resp, &body)
	require.Contains(t, body["error"], "/api/nope")
}
