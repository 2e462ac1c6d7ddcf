package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	_ "portal_electro/docs"
	"portal_electro/internal/adapter/http/handlers"
	"portal_electro/internal/adapter/http/middleware"
	"portal_electro/internal/adapter/persistence/repository"
	"portal_electro/internal/config"
	"portal_electro/internal/infrastructure/cache"
	"portal_electro/internal/infrastructure/database"
	"portal_electro/internal/infrastructure/portalapi"
	"portal_electro/internal/usecase"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers is everything the router serves.
type Handlers struct {
	Processes *handlers.ProcessHandler
	Views     *handlers.ProcessViewHandler
	Materials *handlers.MaterialSearchHandler
}

// Run wires the service from cfg and serves until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	h, cleanup, err := buildHandlers(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.Server.Port),
		Handler:      NewRouter(h, logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to startup the application: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	logger.Info("shutting down http server")
	return srv.Shutdown(shutdownCtx)
}

// NewRouter builds the gin engine. Everything under /v1 except ping requires a bearer token.
func NewRouter(h Handlers, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Recovery(logger), middleware.RequestLogger(logger))

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	authed := v1.Group("", middleware.Credentials())
	addProcessRoutes(authed, h)
	return router
}

func buildHandlers(ctx context.Context, cfg *config.Config, logger *zap.Logger) (Handlers, func(), error) {
	api := portalapi.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, logger)
	repos := repository.NewProcessRepositories(api)
	cleanup := func() {}

	repos.EditLocker = repository.NewLocalEditLocker()
	if cfg.Redis.Enabled() {
		rds, err := cache.ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			logger.Warn("redis unavailable, using in-process edit lock and no lookup cache", zap.Error(err))
		} else {
			repos.EditLocker = repository.NewRedisEditLocker(rds.Locker, cfg.Redis.LockTTL, logger)
			repos.Catalog = repository.NewCachedCatalogRepository(repos.Catalog, rds.Client, cfg.Redis.LookupTTL, logger)
			cleanup = func() { _ = rds.Close() }
		}
	}

	repos.Signatures = repository.NewSignatureMemoryRepository()
	if cfg.DynamoDB.Enabled() {
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			cleanup()
			return Handlers{}, nil, fmt.Errorf("failed to connect dynamodb: %w", err)
		}
		repos.Signatures = repository.NewSignatureDynamoRepository(ddb, cfg.DynamoDB.SignaturesTable)
	} else {
		logger.Warn("no signatures table configured, client signatures are kept in memory")
	}

	opts := usecase.LifecycleOptions{Encoding: cfg.Process.Encoding(), HistoryNote: cfg.Process.HistoryNote}
	loader := usecase.NewProcessDetailLoader(repos, logger)
	views := usecase.NewViewRegistry(cfg.Views.IdleTTL, cfg.Views.MaxOpen, logger)
	processes := usecase.NewProcessListUseCase(repos, loader, views, opts, logger)
	picker := usecase.NewMaterialPicker(repos.Catalog, cfg.Redis.LookupTTL, logger)

	return Handlers{
		Processes: handlers.NewProcessHandler(processes, logger),
		Views:     handlers.NewProcessViewHandler(processes, views, picker, logger),
		Materials: handlers.NewMaterialSearchHandler(picker, logger),
	}, cleanup, nil
}
