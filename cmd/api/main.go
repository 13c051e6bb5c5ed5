package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/hallkeeper/hall-service/internal/api/http"
	"github.com/hallkeeper/hall-service/internal/api/http/handlers"
	"github.com/hallkeeper/hall-service/internal/auth"
	"github.com/hallkeeper/hall-service/internal/config"
	"github.com/hallkeeper/hall-service/internal/events"
	"github.com/hallkeeper/hall-service/internal/observability"
	"github.com/hallkeeper/hall-service/internal/persistence"
	"github.com/hallkeeper/hall-service/internal/ratelimit"
	"github.com/hallkeeper/hall-service/internal/repository"
	"github.com/hallkeeper/hall-service/internal/service"
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
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), cfg.Postgres.MigrationsDir, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(ctx, cfg.Redis, logger)
	defer redis.Close()

	if cfg.Auth.AdminPassword == "" {
		logger.Warn("AUTH_ADMIN_PASSWORD is empty; admin login disabled")
	}

	pool := pg.PoolHandle()
	accountRepo := repository.NewAccountRepository(pool)
	mealRepo := repository.NewMealRepository(pool)
	complaintRepo := repository.NewComplaintRepository(pool)
	noticeRepo := repository.NewNoticeRepository(pool)

	dispatcher := events.NewInMemoryDispatcher(logger)
	service.NewAuditService(dispatcher, logger.Named("audit")).RegisterHandlers()
	if cfg.Events.AMQPURL != "" {
		forwarder, err := events.NewAMQPForwarder(cfg.Events.AMQPURL, cfg.Events.Queue, logger)
		if err != nil {
			logger.Warn("activity forwarding disabled", zap.Error(err))
		} else {
			defer forwarder.Close()
			forwarder.Register(dispatcher)
		}
	}

	authService := service.NewAuthService(*cfg, service.AuthDependencies{AccountRepo: accountRepo})
	accountService := service.NewAccountService(accountRepo, dispatcher)
	mealService := service.NewMealService(service.MealDependencies{
		MealRepo:      mealRepo,
		AccountRepo:   accountRepo,
		MonthLocation: cfg.Meals.MonthLocation,
	})
	complaintService := service.NewComplaintService(complaintRepo, accountRepo, dispatcher)
	noticeService := service.NewNoticeService(noticeRepo, dispatcher)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager())
	limiter := ratelimit.NewLimiter(cfg.RateLimit, ratelimit.NewRedisStore(redis.Client), logger)
	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health: handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, map[string]handlers.Pinger{
			"postgres": pg,
			"redis":    redis,
		}),
		Auth:           handlers.NewAuthHandler(authService),
		Student:        handlers.NewStudentHandler(accountService),
		Meals:          handlers.NewMealsHandler(mealService),
		Complaints:     handlers.NewComplaintsHandler(complaintService),
		Notices:        handlers.NewNoticesHandler(noticeService),
		Admin:          handlers.NewAdminHandler(accountService),
		AuthMiddleware: authMiddleware,
		Limiter:        limiter,
		Metrics:        metrics,
		StaticDir:      cfg.App.StaticDir,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Warn("shutdown", zap.Error(err))
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
