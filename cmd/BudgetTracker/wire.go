package main

import (
	database "github.com/sebuszqo/BudgetTracker/db"
	"github.com/sebuszqo/BudgetTracker/internal/auth"
	"github.com/sebuszqo/BudgetTracker/internal/config"
	"github.com/sebuszqo/BudgetTracker/internal/finance/application"
	"github.com/sebuszqo/BudgetTracker/internal/finance/infrastructure"
	"github.com/sebuszqo/BudgetTracker/internal/finance/interfaces"
	"github.com/sebuszqo/BudgetTracker/internal/log"
	"github.com/sebuszqo/BudgetTracker/internal/metrics"
	"github.com/sebuszqo/BudgetTracker/internal/seed"
	"github.com/sebuszqo/BudgetTracker/internal/user"
)

type app struct {
	server  *Server
	seeder  *seed.Seeder
	revoked *auth.RevocationList
}

func newApp(cfg *config.Config, dbService *database.DBService, logger *log.Logger) *app {
	appMetrics := metrics.New()

	userRepo := user.NewUserRepository(dbService.DB)
	userService := user.NewUserService(userRepo, logger)
	userHandler := user.NewHandler(userService, respondJSON, respondError)

	revoked := auth.NewRevocationList()
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	authService := auth.NewAuthService(userService, jwtManager, revoked, logger)
	authHandler := auth.NewHandler(authService, respondJSON, respondError)

	transactionRepo := infrastructure.NewTransactionRepository(dbService.DB)
	categoryRepo := infrastructure.NewCategoryRepository(dbService.DB)
	budgetRepo := infrastructure.NewBudgetRepository(dbService.DB)

	categoryService := application.NewCategoryService(categoryRepo)
	transactionService := application.NewTransactionService(transactionRepo, categoryService, appMetrics)
	budgetService := application.NewBudgetService(budgetRepo, categoryService)
	summaryService := application.NewSummaryService(transactionRepo, budgetRepo, userService, appMetrics)
	exportService := application.NewExportService(transactionRepo, userService)

	server := &Server{
		authHandler:        authHandler,
		authService:        authService,
		userHandler:        userHandler,
		transactionHandler: interfaces.NewTransactionHandler(transactionService, respondJSON, respondError),
		categoryHandler:    interfaces.NewCategoryHandler(categoryService, respondJSON, respondError),
		budgetHandler:      interfaces.NewBudgetHandler(budgetService, respondJSON, respondError),
		dashboardHandler:   interfaces.NewDashboardHandler(summaryService, respondJSON, respondError),
		exportHandler:      interfaces.NewExportHandler(exportService, respondJSON, respondError),
		health:             dbService,
		metrics:            appMetrics,
		logger:             logger,
	}
	server.RegisterRoutes()

	return &app{
		server:  server,
		seeder:  seed.NewSeeder(userService, transactionService, categoryService, logger),
		revoked: revoked,
	}
}
