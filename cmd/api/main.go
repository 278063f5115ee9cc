package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/gym-service/internal/api/http"
	"github.com/spec-kit/gym-service/internal/api/http/handlers"
	"github.com/spec-kit/gym-service/internal/auth"
	"github.com/spec-kit/gym-service/internal/config"
	"github.com/spec-kit/gym-service/internal/events"
	"github.com/spec-kit/gym-service/internal/observability"
	"github.com/spec-kit/gym-service/internal/persistence"
	"github.com/spec-kit/gym-service/internal/repository"
	"github.com/spec-kit/gym-service/internal/service"
	"github.com/spec-kit/gym-service/internal/worker"
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

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	gymRepo := repository.NewGymRepository(pool)
	memberRepo := repository.NewMemberRepository(pool)
	paymentRepo := repository.NewPaymentRepository(pool)
	planRepo := repository.NewPlanRepository(pool)
	classRepo := repository.NewClassRepository(pool)
	trainerRepo := repository.NewTrainerRepository(pool)
	assetRepo := repository.NewAssetRepository(pool)
	expenseRepo := repository.NewExpenseRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo: userRepo,
		GymRepo:  gymRepo,
	})
	memberService := service.NewMemberService(memberRepo, dispatcher)
	paymentService := service.NewPaymentService(paymentRepo, memberRepo, dispatcher)
	planService := service.NewPlanService(planRepo, redis.Client, cfg.Redis.PlanCacheTTL(), logger)
	financeService := service.NewFinanceService(paymentRepo, expenseRepo)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)

	worker.StartNotificationWorker(notificationService)

	resolver := auth.NewIdentityResolver(userRepo)
	authMiddleware := auth.NewMiddleware(authService.TokenManager(), resolver, httptransport.Exemptions())

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Gyms:           handlers.NewGymsHandler(gymRepo, dispatcher),
		Members:        handlers.NewMembersHandler(memberService),
		Payments:       handlers.NewPaymentsHandler(paymentService),
		Plans:          handlers.NewPlansHandler(planService),
		Classes:        handlers.NewClassesHandler(classRepo),
		Trainers:       handlers.NewTrainersHandler(trainerRepo),
		Assets:         handlers.NewAssetsHandler(assetRepo),
		Expenses:       handlers.NewExpensesHandler(expenseRepo),
		Finance:        handlers.NewFinanceHandler(financeService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
