// Package main is the entry point for the Finwise API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/finwise/backend/config"
	"github.com/finwise/backend/internal/application/usecase/admin"
	"github.com/finwise/backend/internal/application/usecase/auth"
	"github.com/finwise/backend/internal/application/usecase/category"
	"github.com/finwise/backend/internal/application/usecase/goal"
	"github.com/finwise/backend/internal/application/usecase/investment"
	"github.com/finwise/backend/internal/application/usecase/investmenttype"
	"github.com/finwise/backend/internal/application/usecase/paymentmethod"
	"github.com/finwise/backend/internal/application/usecase/seeding"
	"github.com/finwise/backend/internal/application/usecase/transaction"
	"github.com/finwise/backend/internal/infra/db"
	"github.com/finwise/backend/internal/infra/server/router"
	"github.com/finwise/backend/internal/integration/adapters"
	"github.com/finwise/backend/internal/integration/entrypoint/controller"
	"github.com/finwise/backend/internal/integration/entrypoint/middleware"
	"github.com/finwise/backend/internal/integration/persistence"
	"github.com/finwise/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Finwise API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.AutoMigrate(model.AllModels()...); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Initialize Redis for the token revocation store
	redisOpts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		slog.Error("Invalid Redis URL", "error", err)
		os.Exit(1)
	}
	if cfg.Redis.Password != "" {
		redisOpts.Password = cfg.Redis.Password
	}
	if cfg.Redis.DB != 0 {
		redisOpts.DB = cfg.Redis.DB
	}
	redisClient := redis.NewClient(redisOpts)
	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("Failed to close Redis connection", "error", err)
		}
	}()

	// Create repositories
	userRepo := persistence.NewUserRepository(database.DB())
	categoryRepo := persistence.NewCategoryRepository(database.DB())
	paymentMethodRepo := persistence.NewPaymentMethodRepository(database.DB())
	investmentTypeRepo := persistence.NewInvestmentTypeRepository(database.DB())
	transactionRepo := persistence.NewTransactionRepository(database.DB())
	investmentRepo := persistence.NewInvestmentRepository(database.DB())
	goalRepo := persistence.NewGoalRepository(database.DB())
	txManager := persistence.NewTxManager(database.DB())
	schemaManager := persistence.NewSchemaManager(database.DB())

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.TokenExpiry, redisClient)
	sanitizer := adapters.NewSanitizer()

	// Create seeding use case (shared by registration and admin backfill)
	seedDefaultsUseCase := seeding.NewSeedDefaultsUseCase(categoryRepo, paymentMethodRepo, investmentTypeRepo)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, sanitizer, seedDefaultsUseCase, txManager)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	changePasswordUseCase := auth.NewChangePasswordUseCase(userRepo, passwordService)
	currentUserUseCase := auth.NewGetCurrentUserUseCase(userRepo)

	// Create category use cases
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo, sanitizer)
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	getCategoryUseCase := category.NewGetCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo, sanitizer)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)

	// Create payment method use cases
	createPaymentMethodUseCase := paymentmethod.NewCreatePaymentMethodUseCase(paymentMethodRepo, sanitizer)
	listPaymentMethodsUseCase := paymentmethod.NewListPaymentMethodsUseCase(paymentMethodRepo)
	getPaymentMethodUseCase := paymentmethod.NewGetPaymentMethodUseCase(paymentMethodRepo)
	updatePaymentMethodUseCase := paymentmethod.NewUpdatePaymentMethodUseCase(paymentMethodRepo, sanitizer)
	deletePaymentMethodUseCase := paymentmethod.NewDeletePaymentMethodUseCase(paymentMethodRepo)

	// Create investment type use cases
	createInvestmentTypeUseCase := investmenttype.NewCreateInvestmentTypeUseCase(investmentTypeRepo, sanitizer)
	listInvestmentTypesUseCase := investmenttype.NewListInvestmentTypesUseCase(investmentTypeRepo)
	getInvestmentTypeUseCase := investmenttype.NewGetInvestmentTypeUseCase(investmentTypeRepo)
	updateInvestmentTypeUseCase := investmenttype.NewUpdateInvestmentTypeUseCase(investmentTypeRepo, sanitizer)
	deleteInvestmentTypeUseCase := investmenttype.NewDeleteInvestmentTypeUseCase(investmentTypeRepo)

	// Create transaction use cases
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo, paymentMethodRepo, sanitizer)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	getTransactionUseCase := transaction.NewGetTransactionUseCase(transactionRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, categoryRepo, paymentMethodRepo, sanitizer)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)
	transactionsSummaryUseCase := transaction.NewGetTransactionsSummaryUseCase(transactionRepo)

	// Create investment use cases
	createInvestmentUseCase := investment.NewCreateInvestmentUseCase(investmentRepo, investmentTypeRepo, sanitizer)
	listInvestmentsUseCase := investment.NewListInvestmentsUseCase(investmentRepo)
	getInvestmentUseCase := investment.NewGetInvestmentUseCase(investmentRepo)
	updateInvestmentUseCase := investment.NewUpdateInvestmentUseCase(investmentRepo, investmentTypeRepo, sanitizer)
	deleteInvestmentUseCase := investment.NewDeleteInvestmentUseCase(investmentRepo)
	contributeToInvestmentUseCase := investment.NewContributeToInvestmentUseCase(investmentRepo)
	withdrawFromInvestmentUseCase := investment.NewWithdrawFromInvestmentUseCase(investmentRepo)
	investmentsSummaryUseCase := investment.NewGetInvestmentsSummaryUseCase(investmentRepo)

	// Create goal use cases
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo, sanitizer)
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
	getGoalUseCase := goal.NewGetGoalUseCase(goalRepo)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo, sanitizer)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo)
	contributeToGoalUseCase := goal.NewContributeToGoalUseCase(goalRepo)
	goalsSummaryUseCase := goal.NewGetGoalsSummaryUseCase(goalRepo)

	// Create admin use cases
	cleanDatabaseUseCase := admin.NewCleanDatabaseUseCase(schemaManager)
	seedUserDefaultsUseCase := admin.NewSeedUserDefaultsUseCase(userRepo, seedDefaultsUseCase)

	// Create controllers
	healthController := controller.NewHealthController(database)
	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		logoutUseCase,
		changePasswordUseCase,
		currentUserUseCase,
	)
	categoryController := controller.NewCategoryController(
		createCategoryUseCase,
		listCategoriesUseCase,
		getCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)
	paymentMethodController := controller.NewPaymentMethodController(
		createPaymentMethodUseCase,
		listPaymentMethodsUseCase,
		getPaymentMethodUseCase,
		updatePaymentMethodUseCase,
		deletePaymentMethodUseCase,
	)
	investmentTypeController := controller.NewInvestmentTypeController(
		createInvestmentTypeUseCase,
		listInvestmentTypesUseCase,
		getInvestmentTypeUseCase,
		updateInvestmentTypeUseCase,
		deleteInvestmentTypeUseCase,
	)
	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		listTransactionsUseCase,
		getTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		transactionsSummaryUseCase,
	)
	investmentController := controller.NewInvestmentController(
		createInvestmentUseCase,
		listInvestmentsUseCase,
		getInvestmentUseCase,
		updateInvestmentUseCase,
		deleteInvestmentUseCase,
		contributeToInvestmentUseCase,
		withdrawFromInvestmentUseCase,
		investmentsSummaryUseCase,
	)
	goalController := controller.NewGoalController(
		createGoalUseCase,
		listGoalsUseCase,
		getGoalUseCase,
		updateGoalUseCase,
		deleteGoalUseCase,
		contributeToGoalUseCase,
		goalsSummaryUseCase,
	)
	adminController := controller.NewAdminController(cleanDatabaseUseCase, seedUserDefaultsUseCase)

	// Create middleware
	loginRateLimiter := middleware.NewRateLimiter(cfg.RateLimit.MaxAttempts, cfg.RateLimit.WindowDuration)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Setup router
	r := router.NewRouter(
		healthController,
		authController,
		categoryController,
		paymentMethodController,
		investmentTypeController,
		transactionController,
		investmentController,
		goalController,
		adminController,
		loginRateLimiter,
		authMiddleware,
		cfg.Server.CORSOrigins,
		cfg.Admin.APIKey,
	)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
