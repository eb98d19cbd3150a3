package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dyslexiaid/dyslexiaid-go/internal/middleware"
	"github.com/dyslexiaid/dyslexiaid-go/internal/model"
	"github.com/dyslexiaid/dyslexiaid-go/internal/service"
)

// ResultHandler handles HTTP requests for test result submission and lookup.
type ResultHandler struct {
	service *service.ResultService
}

// NewResultHandler creates a new ResultHandler.
func NewResultHandler(svc *service.ResultService) *ResultHandler {
	return &ResultHandler{service: svc}
}

// HandleSubmit handles POST /api/test-results/submit requests.
func (h *ResultHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusForbidden, errorResponse("No token provided"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.SubmitResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("Invalid request body"))
		return
	}

	result, err := h.service.Submit(r.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrResultFieldsMissing),
			errors.Is(err, service.ErrResultBadFormat):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		default:
			slog.Error("result submission failed", "user_id", userID, "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse("Failed to process test result"))
		}
		return
	}

	writeJSON(w, http.StatusOK, model.SubmitResultResponse{
		Message: "Test result processed successfully",
		Result:  result,
	})
}

// HandleList handles GET /api/test-results requests, returning all stored
// results for the authenticated user.
func (h *ResultHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusForbidden, errorResponse("No token provided"))
		return
	}

	results, err := h.service.List(r.Context(), userID)
	if err != nil {
		slog.Error("result listing failed", "user_id", userID, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("Internal server error"))
		return
	}
	if results == nil {
		results = []model.TestResult{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"results": results})
}
