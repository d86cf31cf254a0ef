// cmd/worker-manager/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"platform-finder/internal/api"
	"platform-finder/internal/catalog"
	"platform-finder/internal/common/camunda"
	"platform-finder/internal/common/config"
	"platform-finder/internal/common/database"
	commonhttp "platform-finder/internal/common/http"
	"platform-finder/internal/common/logger"
	"platform-finder/internal/common/observability"
	"platform-finder/internal/momentum"
	"platform-finder/internal/wizard"
	"platform-finder/pkg/registry"

	qpc "platform-finder/internal/workers/catalog/query-platform-catalog"
	cms "platform-finder/internal/workers/matching/calculate-match-score"
	ftm "platform-finder/internal/workers/matching/find-top-matches"
	ctco "platform-finder/internal/workers/tco/calculate-tco"
	cmp "platform-finder/internal/workers/tco/compare-tco"
	sws "platform-finder/internal/workers/wizard/submit-wizard-step"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

// registration pairs a task type with its job handler.
type registration struct {
	taskType string
	handle   camunda.JobHandlerFunc
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		boot := logger.New("info", "json")
		boot.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting worker manager...",
		zap.String("app", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	obs := observability.New(cfg.App.Name)

	// --- Activity registry ---
	reg, err := registry.LoadRegistry(cfg.Registry.Path)
	if err != nil {
		zapLog.Fatal("activity registry load failed", zap.String("path", cfg.Registry.Path), zap.Error(err))
	}
	for _, problem := range reg.Validate() {
		zapLog.Warn("activity registry problem", zap.String("problem", problem))
	}

	// --- Zeebe client with retry ---
	var zeebe *camunda.Client
	err = retryWithBackoff(func() error {
		var err error
		zeebe, err = camunda.NewClientWithConfig(&camunda.ClientConfig{
			GatewayAddress:         cfg.Camunda.BrokerAddress,
			UsePlaintextConnection: true,
			RequestTimeout:         config.GetDuration(cfg.Camunda.RequestTimeout),
		})
		return err
	}, 10, 2*time.Second, zapLog, "Zeebe client initialization")
	if err != nil {
		zapLog.Fatal("zeebe client init failed", zap.Error(err))
	}
	zapLog.Info("Zeebe client connected", zap.String("address", cfg.Camunda.BrokerAddress))

	// --- Redis with retry ---
	redisClient, err := database.NewRedis(cfg.Database.Redis)
	if err != nil {
		zapLog.Fatal("redis client init failed", zap.Error(err))
	}
	err = retryWithBackoff(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return redisClient.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")
	if err != nil {
		zapLog.Fatal("redis connection failed", zap.Error(err))
	}
	zapLog.Info("Redis connected", zap.String("address", cfg.Database.Redis.Address))

	// --- Platform catalog ---
	loader, err := newCatalogLoader(cfg.Catalog, log)
	if err != nil {
		zapLog.Fatal("catalog loader init failed", zap.Error(err))
	}
	cat, err := loader.Load(context.Background())
	if err != nil {
		zapLog.Fatal("initial catalog load failed", zap.Error(err))
	}
	zapLog.Info("Catalog loaded", zap.Int("platforms", cat.Len()))

	features, err := momentum.NewLoader(catalog.FileSource{Path: cfg.Catalog.FeaturesPath}, log)
	if err != nil {
		zapLog.Fatal("feature catalog loader init failed", zap.Error(err))
	}
	if _, err := features.Load(context.Background()); err != nil {
		zapLog.Warn("feature catalog unavailable, /api/features will report errors", zap.Error(err))
	}

	// --- Wizard sessions ---
	sessions := wizard.NewService(wizard.NewRedisStore(redisClient.GetClient(), cfg.Wizard.TTL(), log))

	// --- Workers ---
	registrations := []registration{
		{qpc.TaskType, qpc.NewHandler(qpc.NewConfig(reg), loader, log).Handle},
		{sws.TaskType, sws.NewHandler(sws.NewConfig(reg), sessions, log).Handle},
		{ftm.TaskType, ftm.NewHandler(ftm.NewConfig(reg, cfg.Matching.DefaultLimit), loader, sessions, log).Handle},
		{cms.TaskType, cms.NewHandler(cms.NewConfig(reg), loader, log).Handle},
		{ctco.TaskType, ctco.NewHandler(ctco.NewConfig(reg), loader, log).Handle},
		{cmp.TaskType, cmp.NewHandler(cmp.NewConfig(reg), loader, log).Handle},
	}

	var workers []*camunda.Worker
	for _, r := range registrations {
		w := camunda.StartWorker(zeebe.GetClient(), r.taskType, config.GetWorkerConfig(cfg, r.taskType), r.handle, obs, log)
		if w != nil {
			workers = append(workers, w)
		}
	}
	zapLog.Info("Workers registered", zap.Int("started", len(workers)), zap.Int("known", len(registrations)))

	// --- Read API, health & metrics ---
	srv := api.New(loader, log,
		api.WithMatchLimit(cfg.Matching.DefaultLimit),
		api.WithFeatures(features),
		api.WithReadinessCheck("redis", redisClient.Ping),
		api.WithReadinessCheck("zeebe", zeebe.HealthCheck),
	)
	httpServer := &http.Server{
		Addr:              cfg.HTTP.Address,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zapLog.Info("HTTP server listening", zap.String("address", cfg.HTTP.Address))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		zapLog.Info("Shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		zapLog.Error("HTTP server failed", zap.Error(err))
	}

	for _, w := range workers {
		w.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.HTTP.ShutdownTimeout))
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error shutting down HTTP server", zap.Error(err))
	}

	obs.Shutdown()

	if err := redisClient.Close(); err != nil {
		zapLog.Error("Error closing Redis client", zap.Error(err))
	}
	if err := zeebe.Close(); err != nil {
		zapLog.Error("Error closing Zeebe client", zap.Error(err))
	}

	zapLog.Info("Worker manager stopped gracefully")
}

// newCatalogLoader reads the catalog from cfg.URL or cfg.Path, validating
// against the schema at cfg.SchemaPath or the embedded one when unset.
func newCatalogLoader(cfg config.CatalogConfig, log logger.Logger) (*catalog.Loader, error) {
	var source catalog.Source = catalog.FileSource{Path: cfg.Path}
	if cfg.URL != "" {
		source = catalog.HTTPSource{
			URL:    cfg.URL,
			Client: commonhttp.NewClient(config.GetDuration(cfg.FetchTimeout)),
		}
	}
	if cfg.SchemaPath == "" {
		return catalog.NewLoader(source, log)
	}
	schema, err := catalog.SchemaFromFile(cfg.SchemaPath)
	if err != nil {
		return nil, err
	}
	return catalog.NewLoaderWithSchema(source, schema, log)
}
