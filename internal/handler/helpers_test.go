package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/yourorg/jobboard/internal/domain"
	"github.com/yourorg/jobboard/internal/infrastructure/logger"
	"github.com/yourorg/jobboard/internal/security/audit"
	"github.com/yourorg/jobboard/internal/security/auth"
	"github.com/yourorg/jobboard/internal/security/middleware"
	"github.com/yourorg/jobboard/internal/service"
	"golang.org/x/crypto/bcrypt"
)

const (
	testSecret   = "test-secret"
	testAdmin    = "admin@gmail.com"
	testPassword = "Admin@123"
)

type memJobRepo struct {
	jobs  map[string]*domain.Job
	order []string
}

func newMemJobRepo() *memJobRepo {
	return &memJobRepo{jobs: map[string]*domain.Job{}}
}

func (m *memJobRepo) Create(ctx context.Context, job *domain.Job) error {
	copied := *job
	m.jobs[job.ID] = &copied
	m.order = append(m.order, job.ID)
	return nil
}

func (m *memJobRepo) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	if j, ok := m.jobs[id]; ok {
		return j, nil
	}
	return nil, domain.ErrNotFound
}

func (m *memJobRepo) Delete(ctx context.Context, id string) error {
	if _, ok := m.jobs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.jobs, id)
	return nil
}

func (m *memJobRepo) List(ctx context.Context) ([]*domain.Job, error) {
	out := make([]*domain.Job, 0, len(m.order))
	for _, id := range m.order {
		if j, ok := m.jobs[id]; ok {
			out = append(out, j)
		}
	}
	return out, nil
}

type memApplicationRepo struct {
	apps  map[string]*domain.Application
	order []string
}

func newMemApplicationRepo() *memApplicationRepo {
	return &memApplicationRepo{apps: map[string]*domain.Application{}}
}

func (m *memApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	copied := *app
	m.apps[app.ID] = &copied
	m.order = append(m.order, app.ID)
	return nil
}

func (m *memApplicationRepo) List(ctx context.Context) ([]*domain.Application, error) {
	out := make([]*domain.Application, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.apps[id])
	}
	return out, nil
}

type testEnv struct {
	mux     *http.ServeMux
	tokens  *auth.TokenManager
	jobRepo *memJobRepo
	appRepo *memApplicationRepo
}

// newTestEnv wires handlers and routes the way cmd/server does, against
// in-memory repositories.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	log := logger.NewLogger("error")
	tokens := auth.NewTokenManager(testSecret, "jobboard")
	auditLog := audit.NewLogger(log)

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}

	jobRepo := newMemJobRepo()
	appRepo := newMemApplicationRepo()

	authService := service.NewAuthService(testAdmin, string(hash), tokens, log)
	jobService := service.NewJobService(jobRepo, log)
	applicationService := service.NewApplicationService(appRepo, log)

	loginHandler := NewLoginHandler(authService, log)
	jobsHandler := NewJobsHandler(jobService, auditLog, log)
	applicationsHandler := NewApplicationsHandler(applicationService, log)

	requireAuth := middleware.RequireAuth(tokens, auditLog, log)

	mux := http.NewServeMux()
	mux.Handle("POST /api/auth/login", loginHandler)
	mux.HandleFunc("GET /api/jobs", jobsHandler.List)
	mux.HandleFunc("GET /api/jobs/{id}", jobsHandler.GetByID)
	mux.Handle("POST /api/jobs", requireAuth(http.HandlerFunc(jobsHandler.Create)))
	mux.Handle("DELETE /api/jobs/{id}", requireAuth(http.HandlerFunc(jobsHandler.Delete)))
	mux.HandleFunc("POST /api/applications", applicationsHandler.Submit)
	mux.HandleFunc("GET /api/applications", applicationsHandler.List)

	return &testEnv{mux: mux, tokens: tokens, jobRepo: jobRepo, appRepo: appRepo}
}

func (e *testEnv) adminToken(t *testing.T) string {
	t.Helper()
	token, err := e.tokens.GenerateToken(testAdmin, auth.TokenTTL)
	if err != nil {
		t.Fatalf("token generation failed: %v", err)
	}
	return token
}

func (e *testEnv) expiredToken(t *testing.T) string {
	t.Helper()
	token, err := e.tokens.GenerateToken(testAdmin, -time.Minute)
	if err != nil {
		t.Fatalf("token generation failed: %v", err)
	}
	return token
}

const validJobJSON = `{
	"title": "Software Developer",
	"company": "TechCorp",
	"location": {"city": "New York", "state": "NY", "country": "USA", "zipCode": "10001"},
	"description": "Developing cutting-edge software",
	"jobResponsibilities": ["Write clean, maintainable code"],
	"skillRequirements": ["Go", "Redis"],
	"salary": {"min": 60000, "max": 120000, "currency": "USD"},
	"jobType": "Full-time",
	"requirements": ["3+ years experience"],
	"benefits": ["Health Insurance"],
	"applicationDeadline": "2026-12-31T00:00:00Z",
	"postedBy": "603c72ef5f2a4b1b88cd9a8e"
}`

const validApplicationJSON = `{
	"jobId": "aa5b8f1e-3f64-4c8a-9a1e-0f0f3b1c2d3e",
	"name": "John Doe",
	"email": "John.Doe@Example.com",
	"cvLink": "https://example.com/cv.pdf",
	"phoneNumber": "+1234567890",
	"coverLetter": "I am very interested in this position because...",
	"applicantAddress": {"street": "1234 Elm Street", "city": "New York", "country": "USA"}
}`
