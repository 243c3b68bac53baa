package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/yourorg/jobboard/internal/domain"
	"github.com/yourorg/jobboard/internal/service"
)

// ApplicationsHandler serves the job application endpoints
type ApplicationsHandler struct {
	applications *service.ApplicationService
	logger       *slog.Logger
}

// NewApplicationsHandler creates a new applications handler
func NewApplicationsHandler(applications *service.ApplicationService, logger *slog.Logger) *ApplicationsHandler {
	return &ApplicationsHandler{
		applications: applications,
		logger:       logger,
	}
}

// Submit handles POST /api/applications. Submission is public; no
// authentication is required to apply.
func (h *ApplicationsHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var app domain.Application
	if err := json.NewDecoder(r.Body).Decode(&app); err != nil {
		h.logger.Warn("undecodable application payload", slog.String("error", err.Error()))
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.applications.Submit(r.Context(), &app)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			writeValidationError(w, verr)
			return
		}
		h.logger.Error("failed to submit application", slog.String("error", err.Error()))
		writeMessage(w, http.StatusInternalServerError, "Error submitting application")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// List handles GET /api/applications
func (h *ApplicationsHandler) List(w http.ResponseWriter, r *http.Request) {
	apps, err := h.applications.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list applications", slog.String("error", err.Error()))
		writeMessage(w, http.StatusInternalServerError, "Error fetching applications")
		return
	}
	writeJSON(w, http.StatusOK, apps)
}
