// staticpress orchestrator server — provides the HTTP API, manages
// queue workers, and runs builds, agent loops, and live editing.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/metrics-lab/staticpress/pkg/agent"
	"github.com/metrics-lab/staticpress/pkg/api"
	"github.com/metrics-lab/staticpress/pkg/browser"
	"github.com/metrics-lab/staticpress/pkg/cleanup"
	"github.com/metrics-lab/staticpress/pkg/config"
	"github.com/metrics-lab/staticpress/pkg/database"
	"github.com/metrics-lab/staticpress/pkg/deploy"
	"github.com/metrics-lab/staticpress/pkg/events"
	"github.com/metrics-lab/staticpress/pkg/liveedit"
	"github.com/metrics-lab/staticpress/pkg/measure"
	"github.com/metrics-lab/staticpress/pkg/oracle"
	"github.com/metrics-lab/staticpress/pkg/pipeline"
	"github.com/metrics-lab/staticpress/pkg/queue"
	"github.com/metrics-lab/staticpress/pkg/services"
	"github.com/metrics-lab/staticpress/pkg/settings"
	"github.com/metrics-lab/staticpress/pkg/verify"
	"github.com/metrics-lab/staticpress/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica
// coordination. Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting staticpress",
		"version", version.Full(),
		"http_port", httpPort,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(*configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database (runs embedded migrations)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. One-time startup orphan cleanup: jobs this pod reserved before
	// a crash go back to ready and resume from their checkpoints.
	if err := queue.CleanupStartupOrphans(ctx, dbClient.Client, podID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal — continue
	}

	// 4. Event bus, settings resolver, domain services
	bus := events.NewBus()
	resolver := settings.NewResolver(dbClient.Client)

	siteService := services.NewSiteService(dbClient.Client)
	buildService := services.NewBuildService(dbClient.Client, bus)
	settingsService := services.NewSettingsService(dbClient.Client, resolver)
	overrideService := services.NewOverrideService(dbClient.Client, resolver)
	agentService := services.NewAgentService(dbClient.Client)
	measurementService := services.NewMeasurementService(dbClient.Client)
	alertService := services.NewAlertService(dbClient.Client)
	slog.Info("Services initialized")

	// 5. External adapters
	// grpc.NewClient dials lazily; the first render RPC connects.
	renderer, err := browser.NewGRPCRenderer(cfg.Browser.Addr)
	if err != nil {
		slog.Error("Failed to initialize browser renderer", "error", err)
		os.Exit(1)
	}
	defer renderer.Close()
	deployer := deploy.NewHTTPDeployer(cfg.Edge.BaseURL, os.Getenv(cfg.Edge.APITokenEnv))
	measurer := measure.NewHTTPMeasurer(cfg.Measure.Endpoint, os.Getenv(cfg.Measure.APIKeyEnv))

	oracleCaller, err := oracle.NewAnthropicCaller(cfg.Oracle)
	if err != nil {
		slog.Error("Failed to initialize oracle", "error", err)
		os.Exit(1)
	}
	oracleClient := oracle.NewClient(oracleCaller)

	// 6. Pipeline engine, verification suite, executors
	engine := pipeline.NewEngine(dbClient.Client, cfg.Pipeline, bus, resolver, renderer, deployer, measurer, alertService)
	suite := verify.NewSuite(renderer, measurer, cfg.Pipeline.AssetConcurrency)
	runner := agent.NewRunner(dbClient.Client, cfg.Oracle, cfg.Pipeline, bus, oracleClient, engine, suite, settingsService)

	dispatcher := &queue.KindDispatcher{
		Build: pipeline.NewBuildExecutor(dbClient.Client, engine, bus),
		Agent: agent.NewExecutor(dbClient.Client, runner),
	}

	// 7. Worker pool (before the HTTP server accepts work)
	workerPool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, dispatcher)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}
	buildService.SetCanceller(workerPool)
	agentService.SetCanceller(workerPool)

	// 8. Retention sweep
	sweeper, err := cleanup.NewSweeper(dbClient.Client, cfg.Retention, cfg.Pipeline.DataRoot)
	if err != nil {
		slog.Error("Failed to create retention sweeper", "error", err)
		os.Exit(1)
	}
	if err := sweeper.Start(); err != nil {
		slog.Error("Failed to start retention sweeper", "error", err)
		os.Exit(1)
	}
	defer sweeper.Stop()

	// 9. HTTP server
	liveEdit := liveedit.NewService(dbClient.Client, cfg.Pipeline.DataRoot, deployer, bus)
	server := api.NewServer(cfg, dbClient.Client, bus, workerPool,
		siteService, buildService, settingsService, overrideService,
		agentService, measurementService, alertService, liveEdit, oracleClient)

	httpServer := &http.Server{
		Addr:              ":" + httpPort,
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("staticpress started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown: drain workers within the budget, then the
	// HTTP server. Jobs that do not finish in time are orphan-recovered
	// from their checkpoints.
	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — unfinished jobs will be orphan-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
