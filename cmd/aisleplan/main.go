package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"aisleplan/internal/api"
	"aisleplan/internal/api/handlers"
	"aisleplan/internal/repository"
	"aisleplan/internal/service"
	"aisleplan/pkg/auth"
	"aisleplan/pkg/config"
	"aisleplan/pkg/logger"
	"aisleplan/pkg/metrics"
	"aisleplan/pkg/postgres"

	"go.uber.org/zap"
)

// @title AislePlan API
// @version 1.0
// @description Wedding planning service: weddings, guests, seating, budget, vendors, tasks, timeline, invitations and photos.

// @contact.name API Support
// @contact.email support@aisleplan.dev

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting AislePlan service")

	// Migrations run before the pool is opened
	if err := postgres.RunMigrations(&cfg.Database); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	weddingRepo := repository.NewWeddingRepository(db, appLogger)
	guestRepo := repository.NewGuestRepository(db, appLogger)
	tableRepo := repository.NewTableRepository(db, appLogger)
	budgetRepo := repository.NewBudgetRepository(db, appLogger)
	expenseRepo := repository.NewExpenseRepository(db, appLogger)
	vendorRepo := repository.NewVendorRepository(db, appLogger)
	taskRepo := repository.NewTaskRepository(db, appLogger)
	timelineRepo := repository.NewTimelineRepository(db, appLogger)
	invitationRepo := repository.NewInvitationRepository(db, appLogger)
	photoRepo := repository.NewPhotoRepository(db, appLogger)

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager, appLogger)
	weddingService := service.NewWeddingService(weddingRepo, appLogger)
	guestService := service.NewGuestService(guestRepo, weddingRepo, appLogger)
	seatingService := service.NewSeatingService(tableRepo, guestRepo, weddingRepo, appLogger)
	budgetService := service.NewBudgetService(budgetRepo, expenseRepo, weddingRepo, appLogger)
	vendorService := service.NewVendorService(vendorRepo, expenseRepo, budgetRepo, weddingRepo, appLogger)
	taskService := service.NewTaskService(taskRepo, weddingRepo, appLogger)
	timelineService := service.NewTimelineService(timelineRepo, weddingRepo, appLogger)
	invitationService := service.NewInvitationService(invitationRepo, guestRepo, weddingRepo, appLogger)
	photoService := service.NewPhotoService(photoRepo, weddingRepo, cfg.Uploads.Dir, cfg.Uploads.PublicPath, appLogger)

	// Initialize handlers
	h := api.Handlers{
		Auth:       handlers.NewAuthHandler(authService, appLogger),
		Wedding:    handlers.NewWeddingHandler(weddingService, appLogger),
		Guest:      handlers.NewGuestHandler(guestService, appLogger),
		Budget:     handlers.NewBudgetHandler(budgetService, appLogger),
		Vendor:     handlers.NewVendorHandler(vendorService, appLogger),
		Table:      handlers.NewTableHandler(seatingService, appLogger),
		Task:       handlers.NewTaskHandler(taskService, appLogger),
		Timeline:   handlers.NewTimelineHandler(timelineService, appLogger),
		Invitation: handlers.NewInvitationHandler(invitationService, appLogger),
		Photo:      handlers.NewPhotoHandler(photoService, appLogger),
	}

	app := api.SetupRouter(h, jwtManager, cfg, appLogger)

	// Metrics listener on its own port
	if cfg.Metrics.Enabled {
		go metrics.Serve(cfg.Metrics.Port, appLogger)
	}

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
