package handler

import (
	"net/http"

	"github.com/dyslexiaid/dyslexiaid-go/internal/middleware"
)

// HandleUserID handles GET /user/id requests, echoing back the user ID the
// session guard decoded from the bearer token.
func HandleUserID(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok || userID == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse("User ID not found in token"))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"userId": userID})
}
