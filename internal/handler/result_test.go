package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dyslexiaid/dyslexiaid-go/internal/auth"
	"github.com/dyslexiaid/dyslexiaid-go/internal/middleware"
	"github.com/dyslexiaid/dyslexiaid-go/internal/repository"
	"github.com/dyslexiaid/dyslexiaid-go/internal/service"
)

func newTestResultHandler() *ResultHandler {
	return NewResultHandler(service.NewResultService(repository.NewResultRepository(nil)))
}

func submitAs(t *testing.T, h *ResultHandler, userID, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/test-results/submit", strings.NewReader(body))
	req = req.WithContext(middleware.ContextWithUserID(context.Background(), userID))
	rec := httptest.NewRecorder()
	h.HandleSubmit(rec, req)
	return rec
}

func TestHandleSubmitMissingFields(t *testing.T) {
	h := newTestResultHandler()

	rec := submitAs(t, h, "user-1", `{"testName":"Word Scramble","score":5}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing required test result data", decodeError(t, rec))
}

func TestHandleSubmitBadTypes(t *testing.T) {
	h := newTestResultHandler()

	rec := submitAs(t, h, "user-1",
		`{"testName":"Word Scramble","score":5.5,"misses":1,"accuracy":"84.62"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid data types or format for score, misses, or accuracy", decodeError(t, rec))
}

func TestHandleSubmitInfiniteScore(t *testing.T) {
	h := newTestResultHandler()

	// strconv parses the string "Inf" to +Inf, which must not reach the store.
	rec := submitAs(t, h, "user-1",
		`{"testName":"Word Scramble","score":"Inf","misses":0,"accuracy":100}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid data types or format for score, misses, or accuracy", decodeError(t, rec))
}

func TestHandleSubmitInvalidBody(t *testing.T) {
	h := newTestResultHandler()

	rec := submitAs(t, h, "user-1", "not json")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request body", decodeError(t, rec))
}

func TestUserIDRoute(t *testing.T) {
	secret := "route-test-secret"
	token, err := auth.GenerateToken("user-42", secret, time.Hour)
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(secret))
		r.Get("/user/id", HandleUserID)
	})

	req := httptest.NewRequest(http.MethodGet, "/user/id", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "user-42", body["userId"])
}

func TestUserIDRouteNoToken(t *testing.T) {
	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth("route-test-secret"))
		r.Get("/user/id", HandleUserID)
	})

	req := httptest.NewRequest(http.MethodGet, "/user/id", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "No token provided", decodeError(t, rec))
}
