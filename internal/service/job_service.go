package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/yourorg/jobboard/internal/domain"
	"github.com/yourorg/jobboard/internal/observability/metrics"
	"github.com/yourorg/jobboard/internal/validation"
)

// JobService orchestrates job posting operations: defaults, validation,
// identity assignment, persistence.
type JobService struct {
	repo   domain.JobRepository
	logger *slog.Logger
}

// NewJobService creates a new job service
func NewJobService(repo domain.JobRepository, logger *slog.Logger) *JobService {
	if logger == nil {
		logger = slog.Default()
	}
	return &JobService{repo: repo, logger: logger}
}

// Create validates a candidate job, assigns identity and timestamps,
// and persists it. The record is accepted fully or rejected fully.
func (s *JobService) Create(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	if job.JobStatus == "" {
		job.JobStatus = domain.JobStatusActive
	}
	if job.Salary != nil && job.Salary.Currency == "" {
		job.Salary.Currency = "USD"
	}

	if err := validation.ValidateJob(job); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	job.ID = uuid.NewString()
	job.CreatedAt = now
	job.UpdatedAt = now

	if err := s.repo.Create(ctx, job); err != nil {
		return nil, err
	}

	s.logger.Info("job created",
		slog.String("job_id", job.ID),
		slog.String("company", job.Company),
		slog.String("title", job.Title),
	)
	metrics.ObserveJobCreated()
	return job, nil
}

// GetByID returns the job with the given identity
func (s *JobService) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// Delete removes a job posting
func (s *JobService) Delete(ctx context.Context, id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("job deleted", slog.String("job_id", id))
	return nil
}

// List returns all job postings in the repository's stable order
func (s *JobService) List(ctx context.Context) ([]*domain.Job, error) {
	return s.repo.List(ctx)
}

// checkID rejects identity tokens that are not well-formed UUIDs before
// the backend is consulted.
func checkID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.NewValidationError("id", "uuid")
	}
	return nil
}
