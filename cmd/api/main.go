package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/team-pulse/internal/api/http"
	"github.com/spec-kit/team-pulse/internal/api/http/handlers"
	"github.com/spec-kit/team-pulse/internal/auth"
	"github.com/spec-kit/team-pulse/internal/config"
	"github.com/spec-kit/team-pulse/internal/notify"
	"github.com/spec-kit/team-pulse/internal/observability"
	"github.com/spec-kit/team-pulse/internal/persistence"
	"github.com/spec-kit/team-pulse/internal/repository"
	"github.com/spec-kit/team-pulse/internal/roster"
	"github.com/spec-kit/team-pulse/internal/service"
	"github.com/spec-kit/team-pulse/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	metrics := observability.NewMetrics()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	memberRepo := repository.NewMemberRepository(pool)
	announcementRepo := repository.NewAnnouncementRepository(pool)

	var notifier notify.Notifier
	if redis.Ping(ctx) == nil {
		notifier = notify.NewRedisNotifier(redis.Client, cfg.Sync.Channel, logger)
	} else {
		logger.Warn("redis unreachable, falling back to in-process change notifications")
		notifier = notify.NewInMemoryNotifier()
	}

	store := roster.NewStore()
	syncer := roster.NewSyncer(store, memberRepo, notifier, logger, metrics, cfg.Sync.LoadTimeout())
	coordinator := roster.NewCoordinator(store, memberRepo, syncer, notifier, logger, metrics)

	authService := service.NewAuthService(*cfg, userRepo)
	announcementService := service.NewAnnouncementService(announcementRepo)
	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	healthHandler := handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis)
	usersHandler := handlers.NewUsersHandler(authService)
	membersHandler := handlers.NewMembersHandler(store, coordinator)
	announcementsHandler := handlers.NewAnnouncementsHandler(announcementService)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         healthHandler,
		Users:          usersHandler,
		Members:        membersHandler,
		Announcements:  announcementsHandler,
		AuthMiddleware: authMiddleware,
	})

	worker.StartSyncWorker(ctx, syncer, logger)

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	cancel()
	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
