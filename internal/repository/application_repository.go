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

const applicationKeyPrefix = "application:"

// ApplicationRepository implements domain.ApplicationRepository on top
// of Redis, storing each application as JSON under application:{id}.
// Applications are never updated or deleted through the API.
type ApplicationRepository struct {
	redis  *redis.Client
	logger *slog.Logger
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(redisClient *redis.Client, logger *slog.Logger) *ApplicationRepository {
	return &ApplicationRepository{
		redis:  redisClient,
		logger: logger,
	}
}

// Create stores an application document
func (r *ApplicationRepository) Create(ctx context.Context, app *domain.Application) error {
	data, err := json.Marshal(app)
	if err != nil {
		return &domain.StorageError{Op: "marshal application", Err: err}
	}

	if err := r.redis.Set(ctx, applicationKeyPrefix+app.ID, string(data)); err != nil {
		return &domain.StorageError{Op: "store application", Err: err}
	}

	r.logger.Debug("application saved",
		slog.String("application_id", app.ID),
		slog.String("job_id", app.JobID),
	)
	return nil
}

// List returns all applications ordered by creation time, then ID
func (r *ApplicationRepository) List(ctx context.Context) ([]*domain.Application, error) {
	keys, err := r.redis.Keys(ctx, applicationKeyPrefix+"*")
	if err != nil {
		return nil, &domain.StorageError{Op: "list applications", Err: err}
	}

	apps := make([]*domain.Application, 0, len(keys))
	for _, key := range keys {
		data, err := r.redis.Get(ctx, key)
		if err != nil {
			if errors.Is(err, redis.ErrKeyNotFound) {
				continue
			}
			return nil, &domain.StorageError{Op: fmt.Sprintf("get %s", key), Err: err}
		}

		var app domain.Application
		if err := json.Unmarshal([]byte(data), &app); err != nil {
			r.logger.Error("skipping undecodable application document",
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
			continue
		}

		if app.ID == "" {
			app.ID = strings.TrimPrefix(key, applicationKeyPrefix)
		}
		apps = append(apps, &app)
	}

	sort.Slice(apps, func(i, j int) bool {
		if !apps[i].CreatedAt.Equal(apps[j].CreatedAt) {
			return apps[i].CreatedAt.Before(apps[j].CreatedAt)
		}
		return apps[i].ID < apps[j].ID
	})

	return apps, nil
}
