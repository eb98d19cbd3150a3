package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dyslexiaid/dyslexiaid-go/internal/model"
)

func TestLoginSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/login", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req model.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice@example.com", req.Email)

		json.NewEncoder(w).Encode(model.AuthResponse{
			Message: "Login successful",
			Token:   "tok-1",
			User:    model.UserResponse{ID: "u-1", Name: "Alice", Email: req.Email},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	resp, err := client.Login(context.Background(), model.LoginRequest{
		Email:    "alice@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, "tok-1", resp.Token)
	assert.Equal(t, "u-1", resp.User.ID)
}

func TestLoginAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid email or password"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Login(context.Background(), model.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong",
	})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Invalid email or password", apiErr.Message)
}

func TestSubmitResultSendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/test-results/submit", r.URL.Path)
		require.Equal(t, "Bearer tok-9", r.Header.Get("Authorization"))

		var req model.SubmitResultRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Word Scramble", req.TestName)
		assert.Equal(t, 7.0, req.Score.Float64())

		json.NewEncoder(w).Encode(model.SubmitResultResponse{
			Message: "Test result processed successfully",
			Result: model.TestResult{
				ID:       1,
				TestName: req.TestName,
				Score:    7,
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	resp, err := client.SubmitResult(context.Background(), "tok-9", model.SubmitResultRequest{
		TestName: "Word Scramble",
		Score:    model.NewNumber(7),
		Misses:   model.NewNumber(2),
		Accuracy: model.NewNumber(77.78),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Result.ID)
}

func TestErrorWithoutJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Results(context.Background(), "tok")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, "request failed with status 502", apiErr.Message)
}
