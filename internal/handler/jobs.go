package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/yourorg/jobboard/internal/domain"
	"github.com/yourorg/jobboard/internal/security/audit"
	"github.com/yourorg/jobboard/internal/security/middleware"
	"github.com/yourorg/jobboard/internal/service"
)

// JobsHandler serves the job posting endpoints
type JobsHandler struct {
	jobs     *service.JobService
	auditLog *audit.Logger
	logger   *slog.Logger
}

// NewJobsHandler creates a new jobs handler
func NewJobsHandler(jobs *service.JobService, auditLog *audit.Logger, logger *slog.Logger) *JobsHandler {
	return &JobsHandler{
		jobs:     jobs,
		auditLog: auditLog,
		logger:   logger,
	}
}

// List handles GET /api/jobs
func (h *JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.jobs.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list jobs", slog.String("error", err.Error()))
		writeMessage(w, http.StatusInternalServerError, "Error fetching jobs")
		return
	}
	writeJSON(w, http.StatusOK, jobs)
}

// GetByID handles GET /api/jobs/{id}
func (h *JobsHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	job, err := h.jobs.GetByID(r.Context(), id)
	if err != nil {
		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr):
			writeValidationError(w, verr)
		case errors.Is(err, domain.ErrNotFound):
			writeMessage(w, http.StatusNotFound, "Job not found")
		default:
			h.logger.Error("failed to get job",
				slog.String("job_id", id),
				slog.String("error", err.Error()),
			)
			writeMessage(w, http.StatusInternalServerError, "Error fetching job details")
		}
		return
	}

	writeJSON(w, http.StatusOK, job)
}

// Create handles POST /api/jobs (admin only)
func (h *JobsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var job domain.Job
	if err := json.NewDecoder(r.Body).Decode(&job); err != nil {
		h.logger.Warn("undecodable job payload", slog.String("error", err.Error()))
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.jobs.Create(r.Context(), &job)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			writeValidationError(w, verr)
			return
		}
		h.logger.Error("failed to create job", slog.String("error", err.Error()))
		writeMessage(w, http.StatusInternalServerError, "Error saving job")
		return
	}

	h.auditLog.LogJobCreated(r.Context(), principal(r), created.ID)
	writeJSON(w, http.StatusCreated, created)
}

// Delete handles DELETE /api/jobs/{id} (admin only)
func (h *JobsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.jobs.Delete(r.Context(), id); err != nil {
		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr):
			writeValidationError(w, verr)
		case errors.Is(err, domain.ErrNotFound):
			writeMessage(w, http.StatusNotFound, "Job not found")
		default:
			h.logger.Error("failed to delete job",
				slog.String("job_id", id),
				slog.String("error", err.Error()),
			)
			writeMessage(w, http.StatusInternalServerError, "Error deleting job")
		}
		return
	}

	h.auditLog.LogJobDeleted(r.Context(), principal(r), id)
	writeMessage(w, http.StatusOK, "Job deleted successfully")
}

func principal(r *http.Request) string {
	if claims := middleware.GetClaimsFromContext(r.Context()); claims != nil {
		return claims.Username
	}
	return ""
}
