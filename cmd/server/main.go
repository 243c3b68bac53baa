package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/yourorg/jobboard/internal/handler"
	"github.com/yourorg/jobboard/internal/infrastructure/logger"
	"github.com/yourorg/jobboard/internal/infrastructure/redis"
	"github.com/yourorg/jobboard/internal/observability/metrics"
	"github.com/yourorg/jobboard/internal/observability/tracing"
	"github.com/yourorg/jobboard/internal/reliability/retry"
	"github.com/yourorg/jobboard/internal/repository"
	"github.com/yourorg/jobboard/internal/security/audit"
	"github.com/yourorg/jobboard/internal/security/auth"
	"github.com/yourorg/jobboard/internal/security/middleware"
	"github.com/yourorg/jobboard/internal/service"
	"github.com/yourorg/jobboard/pkg/config"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	// 1. Load configuration (.env is optional, real env wins)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 2. Initialize structured logger
	log := logger.NewLogger(cfg.LogLevel)
	log.Info("starting jobboard server", slog.String("environment", cfg.Environment))

	if cfg.AdminUsername == "" || cfg.AdminPasswordHash == "" {
		log.Warn("admin credentials not configured; login is disabled")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 3. Initialize tracing (no-op without an OTLP endpoint)
	shutdownTracing, err := tracing.Init(ctx, log, cfg.Environment)
	if err != nil {
		log.Error("failed to initialize tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 4. Connect to the document store with bounded retry; exhausting
	// the budget is fatal
	redisClient, err := retry.Do(ctx, retry.DefaultConfig(), log, "redis connect",
		func(ctx context.Context) (*redis.Client, error) {
			return redis.NewClient(ctx, cfg.RedisURL)
		})
	if err != nil {
		log.Error("failed to connect to Redis", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer redisClient.Close()

	// 5. Initialize repositories
	jobRepo := repository.NewJobRepository(redisClient, log)
	applicationRepo := repository.NewApplicationRepository(redisClient, log)

	// 6. Initialize security components and services
	tokenManager := auth.NewTokenManager(cfg.JWTSecret, "jobboard")
	auditLogger := audit.NewLogger(log)

	authService := service.NewAuthService(cfg.AdminUsername, cfg.AdminPasswordHash, tokenManager, log)
	jobService := service.NewJobService(jobRepo, log)
	applicationService := service.NewApplicationService(applicationRepo, log)

	// 7. Initialize handlers
	loginHandler := handler.NewLoginHandler(authService, log)
	jobsHandler := handler.NewJobsHandler(jobService, auditLogger, log)
	applicationsHandler := handler.NewApplicationsHandler(applicationService, log)
	healthHandler := handler.NewHealthHandler(redisClient, log)

	// 8. Setup HTTP routes; both mutating job operations sit behind the
	// bearer-token gate
	requireAuth := middleware.RequireAuth(tokenManager, auditLogger, log)

	mux := http.NewServeMux()
	mux.Handle("POST /api/auth/login", loginHandler)
	mux.HandleFunc("GET /api/jobs", jobsHandler.List)
	mux.HandleFunc("GET /api/jobs/{id}", jobsHandler.GetByID)
	mux.Handle("POST /api/jobs", requireAuth(http.HandlerFunc(jobsHandler.Create)))
	mux.Handle("DELETE /api/jobs/{id}", requireAuth(http.HandlerFunc(jobsHandler.Delete)))
	mux.HandleFunc("POST /api/applications", applicationsHandler.Submit)
	mux.HandleFunc("GET /api/applications", applicationsHandler.List)
	mux.HandleFunc("GET /healthz", healthHandler.Health)
	mux.HandleFunc("GET /readyz", healthHandler.Ready)
	mux.Handle("/metrics", promhttp.Handler())

	handlerWithCORS := middleware.CORS(cfg.CORSAllowedOrigins)(mux)

	// Chain middleware: request ID -> metrics -> timeout -> content type -> CORS -> mux
	rootHandler := withRequestID(
		metrics.HTTPMetricsMiddleware(
			withRequestTimeout(time.Duration(cfg.RequestTimeoutSeconds)*time.Second,
				middleware.ValidateJSONContentType(log)(handlerWithCORS),
			),
		),
		log,
	)

	// 9. Start HTTP server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      otelhttp.NewHandler(rootHandler, "jobboard"),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Info("server starting",
		slog.Int("port", cfg.ServerPort),
		slog.String("auth", "jwt"),
		slog.Duration("request_timeout", time.Duration(cfg.RequestTimeoutSeconds)*time.Second),
	)

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", slog.String("error", err.Error()))
		}
	}()

	<-sigChan
	log.Info("shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", slog.String("error", err.Error()))
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error("tracing shutdown error", slog.String("error", err.Error()))
	}

	log.Info("server stopped")
}

// withRequestID attaches a request ID to the context and response headers for traceability
func withRequestID(next http.Handler, log *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := generateRequestID()
		w.Header().Set("X-Request-ID", reqID)

		ctx := context.WithValue(r.Context(), audit.RequestIDContextKey{}, reqID)
		start := time.Now()

		next.ServeHTTP(w, r.WithContext(ctx))

		log.Info("request completed",
			slog.String("request_id", reqID),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Duration("duration_ms", time.Since(start)),
		)
	})
}

// withRequestTimeout bounds how long any single request may run. The
// deadline propagates into every repository call through the context.
func withRequestTimeout(timeout time.Duration, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func generateRequestID() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err == nil {
		return hex.EncodeToString(buf)
	}
	return fmt.Sprintf("req-%d", time.Now().UnixNano())
}
