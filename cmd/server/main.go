package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sca-trainer/backend/internal/api"
	"github.com/sca-trainer/backend/internal/auth"
	"github.com/sca-trainer/backend/internal/casegen"
	"github.com/sca-trainer/backend/internal/infrastructure/config"
	"github.com/sca-trainer/backend/internal/llm"
	"github.com/sca-trainer/backend/internal/rubric"
	"github.com/sca-trainer/backend/internal/scoring"
	"github.com/sca-trainer/backend/internal/service"
	"github.com/sca-trainer/backend/internal/store"
	"github.com/sca-trainer/backend/pkg/metrics"

	_ "github.com/sca-trainer/backend/docs" // generated swagger docs
)

// @title           SCA Trainer API
// @version         1.0
// @description     GP consultation training — generate patient cases, score transcripts against the RCGP rubric, and share results for peer review.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ── Dependencies ────────────────────────────────────────────────
	db, err := store.NewSQLite(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	rub := rubric.Default()
	if cfg.RubricPath != "" {
		rub, err = rubric.LoadFile(cfg.RubricPath)
		if err != nil {
			logger.Error("failed to load rubric", "path", cfg.RubricPath, "error", err)
			os.Exit(1)
		}
	}
	logger.Info("rubric loaded", "version", rub.Version, "domains", len(rub.Domains))

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	mgr := metrics.NewManager(registry)

	llmClient := llm.NewClient(cfg.LLMURL, cfg.LLMModel, cfg.LLMAPIKey, cfg.LLMTimeout)
	authClient := auth.NewClient(cfg.AuthServiceURL, cfg.AppName, 10*time.Second)

	caseSvc := service.NewCaseService(db, casegen.NewGenerator(llmClient, cfg.Temperature), mgr, logger)
	consultationSvc := service.NewConsultationService(db, scoring.NewScorer(llmClient, rub), mgr, logger)

	handler := api.NewHandler(db, caseSvc, consultationSvc, authClient, llmClient, logger)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler, authClient)

	mux.Handle("GET /metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(api.CORS(mux))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      2 * cfg.LLMTimeout,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}
