package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/yourorg/jobboard/internal/domain"
	"github.com/yourorg/jobboard/internal/infrastructure/redis"
)

const jobKeyPrefix = "job:"

// JobRepository implements domain.JobRepository on top of Redis,
// storing each job as a JSON document under job:{id}
type JobRepository struct {
	redis  *redis.Client
	logger *slog.Logger
}

// NewJobRepository creates a new job repository
func NewJobRepository(redisClient *redis.Client, logger *slog.Logger) *JobRepository {
	return &JobRepository{
		redis:  redisClient,
		logger: logger,
	}
}

// Create stores a job document. Identity and timestamps are assigned by
// the service layer before this is called.
func (r *JobRepository) Create(ctx context.Context, job *domain.Job) error {
	data, err := json.Marshal(job)
	if err != nil {
		return &domain.StorageError{Op: "marshal job", Err: err}
	}

	if err := r.redis.Set(ctx, jobKeyPrefix+job.ID, string(data)); err != nil {
		return &domain.StorageError{Op: "store job", Err: err}
	}

	r.logger.Debug("job saved", slog.String("job_id", job.ID))
	return nil
}

// GetByID retrieves a job by ID
func (r *JobRepository) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	data, err := r.redis.Get(ctx, jobKeyPrefix+id)
	if err != nil {
		if errors.Is(err, redis.ErrKeyNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, &domain.StorageError{Op: "get job", Err: err}
	}

	var job domain.Job
	if err := json.Unmarshal([]byte(data), &job); err != nil {
		return nil, &domain.StorageError{Op: "unmarshal job", Err: err}
	}

	return &job, nil
}

// Delete removes a job document
func (r *JobRepository) Delete(ctx context.Context, id string) error {
	existed, err := r.redis.Delete(ctx, jobKeyPrefix+id)
	if err != nil {
		return &domain.StorageError{Op: "delete job", Err: err}
	}
	if !existed {
		return domain.ErrNotFound
	}

	r.logger.Debug("job deleted", slog.String("job_id", id))
	return nil
}

// List returns all jobs ordered by creation time, then ID. KEYS gives
// no stable order, so the sort keeps results deterministic.
func (r *JobRepository) List(ctx context.Context) ([]*domain.Job, error) {
	keys, err := r.redis.Keys(ctx, jobKeyPrefix+"*")
	if err != nil {
		return nil, &domain.StorageError{Op: "list jobs", Err: err}
	}

	jobs := make([]*domain.Job, 0, len(keys))
	for _, key := range keys {
		data, err := r.redis.Get(ctx, key)
		if err != nil {
			if errors.Is(err, redis.ErrKeyNotFound) {
				continue // deleted between KEYS and GET
			}
			return nil, &domain.StorageError{Op: fmt.Sprintf("get %s", key), Err: err}
		}

		var job domain.Job
		if err := json.Unmarshal([]byte(data), &job); err != nil {
			r.logger.Error("skipping undecodable job document",
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
			continue
		}

		if job.ID == "" {
			job.ID = strings.TrimPrefix(key, jobKeyPrefix)
		}
		jobs = append(jobs, &job)
	}

	sort.Slice(jobs, func(i, j int) bool {
		if !jobs[i].CreatedAt.Equal(jobs[j].CreatedAt) {
			return jobs[i].CreatedAt.Before(jobs[j].CreatedAt)
		}
		return jobs[i].ID < jobs[j].ID
	})

	return jobs, nil
}
