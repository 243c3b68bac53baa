package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yourorg/jobboard/internal/domain"
	"github.com/yourorg/jobboard/internal/observability/metrics"
	"github.com/yourorg/jobboard/internal/validation"
)

// ApplicationService orchestrates job application submissions. The
// referenced job is not checked for existence at submission time.
type ApplicationService struct {
	repo   domain.ApplicationRepository
	logger *slog.Logger
}

// NewApplicationService creates a new application service
func NewApplicationService(repo domain.ApplicationRepository, logger *slog.Logger) *ApplicationService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ApplicationService{repo: repo, logger: logger}
}

// Submit validates a candidate application, assigns identity and
// timestamps, and persists it. Email is normalized to lowercase before
// validation.
func (s *ApplicationService) Submit(ctx context.Context, app *domain.Application) (*domain.Application, error) {
	app.Email = strings.ToLower(strings.TrimSpace(app.Email))
	if app.ApplicationStatus == "" {
		app.ApplicationStatus = domain.ApplicationStatusPending
	}

	if err := validation.ValidateApplication(app); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	app.ID = uuid.NewString()
	app.CreatedAt = now
	app.UpdatedAt = now

	if err := s.repo.Create(ctx, app); err != nil {
		return nil, err
	}

	s.logger.Info("application submitted",
		slog.String("application_id", app.ID),
		slog.String("job_id", app.JobID),
	)
	metrics.ObserveApplicationSubmitted()
	return app, nil
}

// List returns all submitted applications in the repository's stable order
func (s *ApplicationService) List(ctx context.Context) ([]*domain.Application, error) {
	return s.repo.List(ctx)
}
