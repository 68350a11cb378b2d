package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	httptransport "github.com/srirahdirs/YoungZen-Admin-backend/internal/api/http"
	"github.com/srirahdirs/YoungZen-Admin-backend/internal/api/http/handlers"
	"github.com/srirahdirs/YoungZen-Admin-backend/internal/auth"
	"github.com/srirahdirs/YoungZen-Admin-backend/internal/config"
	"github.com/srirahdirs/YoungZen-Admin-backend/internal/events"
	"github.com/srirahdirs/YoungZen-Admin-backend/internal/observability"
	"github.com/srirahdirs/YoungZen-Admin-backend/internal/persistence"
	"github.com/srirahdirs/YoungZen-Admin-backend/internal/repository"
	"github.com/srirahdirs/YoungZen-Admin-backend/internal/service"
	"github.com/srirahdirs/YoungZen-Admin-backend/internal/worker"
)

var rootCmd = &cobra.Command{
	Use:   "admin-backend",
	Short: "Content administration backend",
	RunE:  runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE:  runServe,
}

var seedCmd = &cobra.Command{
	Use:   "seed-superadmin",
	Short: "Create the superadmin account if it does not exist",
	RunE:  runSeedSuperadmin,
}

func main() {
	rootCmd.AddCommand(serveCmd, seedCmd)
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		return err
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
	blogRepo := repository.NewBlogRepository(pool)
	categoryRepo := repository.NewCategoryRepository(pool)
	portfolioRepo := repository.NewPortfolioRepository(pool)
	seoRepo := repository.NewSeoRepository(pool)
	leadRepo := repository.NewLeadRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()

	userService := service.NewUserService(*cfg, service.UserDependencies{
		UserRepo:   userRepo,
		Dispatcher: dispatcher,
	})
	blogService := service.NewBlogService(blogRepo, categoryRepo)
	categoryService := service.NewCategoryService(categoryRepo, blogRepo)
	portfolioService := service.NewPortfolioService(portfolioRepo)
	seoService := service.NewSeoService(seoRepo, redis)
	leadService := service.NewLeadService(leadRepo, dispatcher)

	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewMiddleware(userService.TokenManager(), userRepo, cfg.Auth.CookieName)

	metrics := observability.NewMetrics()
	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(userService, cfg.Auth, cfg.App),
		Users:          handlers.NewUsersHandler(userService),
		Blogs:          handlers.NewBlogsHandler(blogService),
		Categories:     handlers.NewCategoriesHandler(categoryService),
		Portfolio:      handlers.NewPortfolioHandler(portfolioService),
		Seo:            handlers.NewSeoHandler(seoService),
		Leads:          handlers.NewLeadsHandler(leadService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	return app.Shutdown()
}

func runSeedSuperadmin(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	ctx := context.Background()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		return err
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			return err
		}
	}

	userRepo := repository.NewUserRepository(pg.PoolHandle())
	userService := service.NewUserService(*cfg, service.UserDependencies{
		UserRepo:   userRepo,
		Dispatcher: events.NewInMemoryDispatcher(),
	})

	user, created, err := userService.EnsureSuperadmin(ctx, cfg.Superadmin.SeedName, cfg.Superadmin.SeedEmail, cfg.Superadmin.SeedPassword)
	if err != nil {
		return err
	}
	if created {
		logger.Info("superadmin created", zap.String("email", user.Email))
	} else {
		logger.Info("superadmin already exists", zap.String("email", user.Email))
	}
	return nil
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
