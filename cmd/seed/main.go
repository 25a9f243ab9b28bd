package main

import (
	"context"
	"log"
	"time"

	"aisleplan/internal/dto"
	"aisleplan/internal/repository"
	"aisleplan/internal/service"
	"aisleplan/pkg/auth"
	"aisleplan/pkg/config"
	"aisleplan/pkg/logger"
	"aisleplan/pkg/postgres"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Seeds a demo account with a fully populated wedding for local development.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	if err := postgres.RunMigrations(&cfg.Database); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db, appLogger)
	weddingRepo := repository.NewWeddingRepository(db, appLogger)
	guestRepo := repository.NewGuestRepository(db, appLogger)
	tableRepo := repository.NewTableRepository(db, appLogger)
	budgetRepo := repository.NewBudgetRepository(db, appLogger)
	expenseRepo := repository.NewExpenseRepository(db, appLogger)
	vendorRepo := repository.NewVendorRepository(db, appLogger)
	taskRepo := repository.NewTaskRepository(db, appLogger)
	timelineRepo := repository.NewTimelineRepository(db, appLogger)

	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)
	authService := service.NewAuthService(userRepo, jwtManager, appLogger)
	weddingService := service.NewWeddingService(weddingRepo, appLogger)
	guestService := service.NewGuestService(guestRepo, weddingRepo, appLogger)
	seatingService := service.NewSeatingService(tableRepo, guestRepo, weddingRepo, appLogger)
	budgetService := service.NewBudgetService(budgetRepo, expenseRepo, weddingRepo, appLogger)
	vendorService := service.NewVendorService(vendorRepo, expenseRepo, budgetRepo, weddingRepo, appLogger)
	taskService := service.NewTaskService(taskRepo, weddingRepo, appLogger)
	timelineService := service.NewTimelineService(timelineRepo, weddingRepo, appLogger)

	appLogger.Info("Starting database seeding...")

	resp, err := authService.Register(ctx, &dto.RegisterRequest{
		Username: "demo",
		Email:    "demo@aisleplan.dev",
		Password: "demo-password-123",
	})
	if err == service.ErrUserExists {
		appLogger.Info("Demo user already exists, nothing to seed")
		return
	}
	if err != nil {
		appLogger.Fatal("Failed to register demo user", zap.Error(err))
	}
	userID, err := uuid.Parse(resp.User.ID)
	if err != nil {
		appLogger.Fatal("Bad user ID in registration response", zap.Error(err))
	}

	date := time.Now().AddDate(0, 6, 0)
	wedding, err := weddingService.CreateWedding(ctx, userID, &dto.CreateWeddingRequest{
		Title:         "Sasha & Robin",
		PartnerOne:    "Sasha",
		PartnerTwo:    "Robin",
		Date:          &date,
		Venue:         "Riverside Gardens",
		City:          "Portland",
		GuestEstimate: 80,
	})
	if err != nil {
		appLogger.Fatal("Failed to create wedding", zap.Error(err))
	}

	budget, err := budgetService.CreateBudget(ctx, userID, wedding.ID, &dto.CreateBudgetRequest{
		TotalAmount: 25000,
		Allocations: map[string]float64{
			"venue":        9000,
			"catering":     7000,
			"photographer": 3500,
			"florist":      2000,
			"music":        1500,
		},
	})
	if err != nil {
		appLogger.Fatal("Failed to create budget", zap.Error(err))
	}

	// Priced vendors; their expenses land in the budget via the synchronizer.
	vendors := []dto.CreateVendorRequest{
		{Name: "Riverside Gardens", Company: "Riverside Events LLC", Type: "venue", Status: "booked", Price: floatPtr(9000), DepositAmount: floatPtr(2000), DepositPaid: true, ContractSigned: true},
		{Name: "Shutter Stories", Type: "photographer", Status: "booked", Price: floatPtr(3200), DepositAmount: floatPtr(500)},
		{Name: "Bloom & Co", Type: "florist", Status: "contacted", Price: floatPtr(1800)},
	}
	for _, v := range vendors {
		req := v
		if _, err := vendorService.CreateVendor(ctx, userID, wedding.ID, &req); err != nil {
			appLogger.Fatal("Failed to create vendor", zap.String("name", v.Name), zap.Error(err))
		}
	}

	if _, err := budgetService.CreateExpense(ctx, userID, budget.ID, &dto.CreateExpenseRequest{
		Category:    "stationery",
		Description: "Save-the-date cards",
		Amount:      320,
		PaidAmount:  floatPtr(320),
	}); err != nil {
		appLogger.Fatal("Failed to create expense", zap.Error(err))
	}

	guestNames := []string{"Alex Rivera", "Jordan Chen", "Priya Patel", "Marcus Webb", "Elena Sokolova", "Tom Akins"}
	guestIDs := make([]uuid.UUID, 0, len(guestNames))
	for _, name := range guestNames {
		guest, err := guestService.CreateGuest(ctx, userID, wedding.ID, &dto.CreateGuestRequest{
			Name:  name,
			Group: "friends",
		})
		if err != nil {
			appLogger.Fatal("Failed to create guest", zap.String("name", name), zap.Error(err))
		}
		guestIDs = append(guestIDs, guest.ID)
	}

	table, err := seatingService.CreateTable(ctx, userID, wedding.ID, &dto.CreateTableRequest{
		Name:     "Table 1",
		Capacity: 8,
	})
	if err != nil {
		appLogger.Fatal("Failed to create table", zap.Error(err))
	}
	if _, err := seatingService.AssignGuests(ctx, userID, table.ID, guestIDs); err != nil {
		appLogger.Fatal("Failed to assign guests", zap.Error(err))
	}

	if _, err := taskService.CreateTask(ctx, userID, wedding.ID, &dto.CreateTaskRequest{
		Title:    "Send invitations",
		Priority: "high",
	}); err != nil {
		appLogger.Fatal("Failed to create task", zap.Error(err))
	}

	ceremony := date.Add(14 * time.Hour)
	if _, err := timelineService.CreateEvent(ctx, userID, wedding.ID, &dto.CreateTimelineEventRequest{
		Title:    "Ceremony",
		StartsAt: ceremony,
		Location: "Riverside Gardens",
	}); err != nil {
		appLogger.Fatal("Failed to create timeline event", zap.Error(err))
	}

	appLogger.Info("Database seeding completed successfully!",
		zap.String("wedding_id", wedding.ID.String()),
		zap.String("budget_id", budget.ID.String()),
	)
}

func floatPtr(f float64) *float64 { return &f }
