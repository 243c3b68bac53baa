package handler

import (
	"encoding/json"
	"net/http"

	"github.com/yourorg/jobboard/internal/domain"
)

// errorBody is the error response shape: a client-safe message plus,
// for validation failures, the violated field rules.
type errorBody struct {
	Message string              `json:"message"`
	Errors  []domain.FieldError `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorBody{Message: message})
}

func writeValidationError(w http.ResponseWriter, verr *domain.ValidationError) {
	writeJSON(w, http.StatusBadRequest, errorBody{
		Message: "Invalid request data",
		Errors:  verr.Fields,
	})
}
