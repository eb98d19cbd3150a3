package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dyslexiaid/dyslexiaid-go/internal/repository"
	"github.com/dyslexiaid/dyslexiaid-go/internal/service"
)

func newTestAuthHandler() *AuthHandler {
	svc := service.NewAuthService(repository.NewUserRepository(nil), "test-secret", time.Hour)
	return NewAuthHandler(svc, 24*time.Hour, false)
}

func postJSON(t *testing.T, handler http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["error"]
}

func TestHandleRegisterInvalidBody(t *testing.T) {
	h := newTestAuthHandler()

	rec := postJSON(t, h.HandleRegister, "/api/auth/register", "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request body", decodeError(t, rec))
}

func TestHandleRegisterPasswordMismatch(t *testing.T) {
	h := newTestAuthHandler()

	rec := postJSON(t, h.HandleRegister, "/api/auth/register",
		`{"name":"A","email":"a@b.com","password":"secret1","confirmPassword":"secret2"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Passwords do not match", decodeError(t, rec))
}

func TestHandleRegisterMissingFields(t *testing.T) {
	h := newTestAuthHandler()

	rec := postJSON(t, h.HandleRegister, "/api/auth/register",
		`{"email":"a@b.com","password":"secret1","confirmPassword":"secret1"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "All fields are required", decodeError(t, rec))
}

func TestHandleRegisterShortPassword(t *testing.T) {
	h := newTestAuthHandler()

	rec := postJSON(t, h.HandleRegister, "/api/auth/register",
		`{"name":"A","email":"a@b.com","password":"12345","confirmPassword":"12345"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Password must be at least 6 characters long", decodeError(t, rec))
}

func TestHandleLoginMissingFields(t *testing.T) {
	h := newTestAuthHandler()

	rec := postJSON(t, h.HandleLogin, "/api/auth/login", `{"email":"","password":""}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email and password are required", decodeError(t, rec))
}

func TestHandleLoginBadEmailShape(t *testing.T) {
	h := newTestAuthHandler()

	rec := postJSON(t, h.HandleLogin, "/api/auth/login", `{"email":"a@b","password":"secret1"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid email format", decodeError(t, rec))
}
