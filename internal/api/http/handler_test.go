package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sohanurdev/portfolio-backend/internal/repository"
	"github.com/sohanurdev/portfolio-backend/internal/service"
)

const testSecret = "test-secret"

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	accounts := repository.NewInMemoryAccountRepository()
	appointments := repository.NewInMemoryAppointmentRepository(accounts)
	accounts.AttachAppointments(appointments)

	accountService := service.NewAccountService(accounts, nil)
	contactService := service.NewContactService(repository.NewInMemoryContactRepository(), nil)
	appointmentService := service.NewAppointmentService(appointments, accounts, nil)
	videoService := service.NewVideoService(repository.NewInMemoryVideoRepository(), nil)
	contentService := service.NewSiteContentService(repository.NewInMemorySiteContentRepository(), nil)

	return SetupRouter(
		NewAccountController(accountService),
		NewAuthController(accountService, testSecret, time.Hour),
		NewContactController(contactService),
		NewAppointmentController(appointmentService),
		NewVideoController(videoService),
		NewContentController(contentService),
		[]string{"http://localhost:3000"},
		testSecret,
	)
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body
}

func TestHealthz(t *testing.T) {
	router := setupTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAccountEndpoints(t *testing.T) {
	router := setupTestRouter(t)

	t.Run("create returns record without password", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/accounts", map[string]any{
			"name":                  "Jane Doe",
			"email":                 "jane@example.com",
			"password":              "secret123",
			"password_confirmation": "secret123",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		body := decodeBody(t, w)
		assert.Equal(t, "success", body["status"])

		data := body["data"].(map[string]any)
		assert.Equal(t, "jane@example.com", data["email"])
		assert.Equal(t, "user", data["role"])
		assert.NotContains(t, data, "password")
		assert.NotContains(t, data, "password_hash")
	})

	t.Run("duplicate email rejected with field errors", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/accounts", map[string]any{
			"name":                  "Jane Doe",
			"email":                 "jane@example.com",
			"password":              "secret123",
			"password_confirmation": "secret123",
		})
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)

		body := decodeBody(t, w)
		assert.Equal(t, "error", body["status"])
		assert.Contains(t, body["errors"].(map[string]any), "email")
	})

	t.Run("get unknown id", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/accounts/73c7f5a0-0000-4000-8000-000000000000", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("get malformed id", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/accounts/42", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("list", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/accounts", nil)
		require.Equal(t, http.StatusOK, w.Code)

		body := decodeBody(t, w)
		assert.Len(t, body["data"].([]any), 1)
	})
}

func TestContactEndpoints(t *testing.T) {
	router := setupTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/contacts", map[string]any{
		"name":    "Jane Doe",
		"email":   "jane@example.com",
		"message": "Hello there",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "Contact message submitted successfully!", body["message"])

	w = doJSON(t, router, http.MethodPost, "/api/contacts", map[string]any{"name": "Jane Doe"})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body = decodeBody(t, w)
	errs := body["errors"].(map[string]any)
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "message")

	w = doJSON(t, router, http.MethodDelete, "/api/contacts/73c7f5a0-0000-4000-8000-000000000000", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAppointmentEndpoints(t *testing.T) {
	router := setupTestRouter(t)

	t.Run("create without user", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/appointments", map[string]any{
			"name":             "Jane Doe",
			"email":            "jane@example.com",
			"appointment_time": "2026-09-01T10:00:00Z",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		body := decodeBody(t, w)
		assert.Equal(t, "Appointment booked successfully!", body["message"])
	})

	t.Run("unknown user id rejected", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/appointments", map[string]any{
			"name":             "Jane Doe",
			"email":            "jane@example.com",
			"appointment_time": "2026-09-01T10:00:00Z",
			"user_id":          "73c7f5a0-0000-4000-8000-000000000000",
		})
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)

		body := decodeBody(t, w)
		assert.Contains(t, body["errors"].(map[string]any), "user_id")
	})

	t.Run("list newest submitted first", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/appointments", map[string]any{
			"name":             "Second",
			"email":            "second@example.com",
			"appointment_time": "2026-01-01T08:00:00Z",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		w = doJSON(t, router, http.MethodGet, "/api/appointments", nil)
		require.Equal(t, http.StatusOK, w.Code)

		data := decodeBody(t, w)["data"].([]any)
		require.Len(t, data, 2)
		assert.Equal(t, "Second", data[0].(map[string]any)["name"])
	})

	t.Run("delete missing id", func(t *testing.T) {
		w := doJSON(t, router, http.MethodDelete, "/api/appointments/73c7f5a0-0000-4000-8000-000000000000", nil)
		require.Equal(t, http.StatusNotFound, w.Code)

		body := decodeBody(t, w)
		assert.Equal(t, "error", body["status"])
		assert.Equal(t, "Appointment not found", body["message"])
	})
}

func TestVideoEndpoints(t *testing.T) {
	router := setupTestRouter(t)

	t.Run("create includes derived fields", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/videos", map[string]any{
			"title": "Studio tour",
			"url":   "https://www.youtube.com/watch?v=abc123",
			"type":  "youtube",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		body := decodeBody(t, w)
		assert.Equal(t, true, body["success"])

		data := body["data"].(map[string]any)
		assert.Equal(t, "abc123", data["platform_id"])
		assert.Equal(t, "https://www.youtube.com/embed/abc123", data["embed_url"])
		assert.Equal(t, "https://img.youtube.com/vi/abc123/hqdefault.jpg", data["thumbnail_url"])
	})

	t.Run("other type passes url through", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/videos", map[string]any{
			"title": "Showreel",
			"url":   "https://cdn.example.com/reel.mp4",
			"type":  "other",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		data := decodeBody(t, w)["data"].(map[string]any)
		assert.Equal(t, "https://cdn.example.com/reel.mp4", data["embed_url"])
		assert.NotContains(t, data, "thumbnail_url")
		assert.NotContains(t, data, "platform_id")
	})

	t.Run("invalid type filter", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/videos/type/dailymotion", nil)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)

		body := decodeBody(t, w)
		assert.Equal(t, false, body["success"])
	})

	t.Run("type filter", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/videos/type/youtube", nil)
		require.Equal(t, http.StatusOK, w.Code)

		body := decodeBody(t, w)
		assert.Len(t, body["data"].([]any), 1)
	})

	t.Run("search query boundary", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/videos/search?query=a", nil)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		w = doJSON(t, router, http.MethodGet, "/api/videos/search?query=st", nil)
		require.Equal(t, http.StatusOK, w.Code)

		body := decodeBody(t, w)
		assert.Len(t, body["data"].([]any), 1)
	})

	t.Run("missing video", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/videos/73c7f5a0-0000-4000-8000-000000000000", nil)
		require.Equal(t, http.StatusNotFound, w.Code)

		body := decodeBody(t, w)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Video not found", body["message"])
	})
}

func TestContentEndpoints(t *testing.T) {
	router := setupTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/content", map[string]any{
		"section":   "hero",
		"title":     "Hi, I'm Jane",
		"body":      "Filmmaker and editor.",
		"published": true,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/content", map[string]any{
		"section": "about",
		"title":   "Draft about page",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/content/public", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	data := body["data"].([]any)
	require.Len(t, data, 1)
	assert.Equal(t, "hero", data[0].(map[string]any)["section"])

	w = doJSON(t, router, http.MethodGet, "/api/content", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["data"].([]any), 2)

	w = doJSON(t, router, http.MethodPost, "/api/content", map[string]any{"section": "hero"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestAuthFlow(t *testing.T) {
	router := setupTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/signup", map[string]any{
		"name":                  "Jane Doe",
		"email":                 "jane@example.com",
		"password":              "secret123",
		"password_confirmation": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	data := decodeBody(t, w)["data"].(map[string]any)
	assert.NotEmpty(t, data["token"])

	w = doJSON(t, router, http.MethodPost, "/api/login", map[string]any{
		"email":    "jane@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	data = decodeBody(t, w)["data"].(map[string]any)
	token := data["token"].(string)
	require.NotEmpty(t, token)
	user := data["user"].(map[string]any)
	assert.Equal(t, "jane@example.com", user["email"])

	w = doJSON(t, router, http.MethodPost, "/api/login", map[string]any{
		"email":    "jane@example.com",
		"password": "wrongpass",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	me := decodeBody(t, rec)["data"].(map[string]any)
	assert.Equal(t, "jane@example.com", me["email"])

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/user", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
