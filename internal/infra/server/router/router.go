// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finwise/backend/internal/integration/entrypoint/controller"
	"github.com/finwise/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                   *gin.Engine
	healthController         *controller.HealthController
	authController           *controller.AuthController
	categoryController       *controller.CategoryController
	paymentMethodController  *controller.PaymentMethodController
	investmentTypeController *controller.InvestmentTypeController
	transactionController    *controller.TransactionController
	investmentController     *controller.InvestmentController
	goalController           *controller.GoalController
	adminController          *controller.AdminController
	loginRateLimiter         *middleware.RateLimiter
	authMiddleware           *middleware.AuthMiddleware
	corsOrigins              []string
	adminAPIKey              string
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	categoryController *controller.CategoryController,
	paymentMethodController *controller.PaymentMethodController,
	investmentTypeController *controller.InvestmentTypeController,
	transactionController *controller.TransactionController,
	investmentController *controller.InvestmentController,
	goalController *controller.GoalController,
	adminController *controller.AdminController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
	corsOrigins []string,
	adminAPIKey string,
) *Router {
	return &Router{
		healthController:         healthController,
		authController:           authController,
		categoryController:       categoryController,
		paymentMethodController:  paymentMethodController,
		investmentTypeController: investmentTypeController,
		transactionController:    transactionController,
		investmentController:     investmentController,
		goalController:           goalController,
		adminController:          adminController,
		loginRateLimiter:         loginRateLimiter,
		authMiddleware:           authMiddleware,
		corsOrigins:              corsOrigins,
		adminAPIKey:              adminAPIKey,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()
	r.engine.Use(middleware.SecurityHeaders(r.corsOrigins))

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	if r.healthController != nil {
		r.engine.GET("/health", r.healthController.Check)
	}
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes. Register and login are rate limited; the rest
		// require a valid token.
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.loginRateLimiter.Middleware(), r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
			}
			authProtected := v1.Group("/auth")
			authProtected.Use(r.authMiddleware.Authenticate())
			{
				authProtected.POST("/logout", r.authController.Logout)
				authProtected.POST("/change-password", r.authController.ChangePassword)
				authProtected.GET("/me", r.authController.Me)
			}
		}

		// Category routes (require authentication)
		if r.categoryController != nil && r.authMiddleware != nil {
			categories := v1.Group("/categories")
			categories.Use(r.authMiddleware.Authenticate())
			{
				categories.GET("", r.categoryController.List)
				categories.POST("", r.categoryController.Create)
				categories.GET("/:id", r.categoryController.Get)
				categories.PUT("/:id", r.categoryController.Update)
				categories.DELETE("/:id", r.categoryController.Delete)
			}
		}

		// Payment method routes (require authentication)
		if r.paymentMethodController != nil && r.authMiddleware != nil {
			paymentMethods := v1.Group("/payment-methods")
			paymentMethods.Use(r.authMiddleware.Authenticate())
			{
				paymentMethods.GET("", r.paymentMethodController.List)
				paymentMethods.POST("", r.paymentMethodController.Create)
				paymentMethods.GET("/:id", r.paymentMethodController.Get)
				paymentMethods.PUT("/:id", r.paymentMethodController.Update)
				paymentMethods.DELETE("/:id", r.paymentMethodController.Delete)
			}
		}

		// Investment type routes (require authentication)
		if r.investmentTypeController != nil && r.authMiddleware != nil {
			investmentTypes := v1.Group("/investment-types")
			investmentTypes.Use(r.authMiddleware.Authenticate())
			{
				investmentTypes.GET("", r.investmentTypeController.List)
				investmentTypes.POST("", r.investmentTypeController.Create)
				investmentTypes.GET("/:id", r.investmentTypeController.Get)
				investmentTypes.PUT("/:id", r.investmentTypeController.Update)
				investmentTypes.DELETE("/:id", r.investmentTypeController.Delete)
			}
		}

		// Transaction routes (require authentication)
		if r.transactionController != nil && r.authMiddleware != nil {
			transactions := v1.Group("/transactions")
			transactions.Use(r.authMiddleware.Authenticate())
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.GET("/summary", r.transactionController.Summary)
				transactions.GET("/:id", r.transactionController.Get)
				transactions.PUT("/:id", r.transactionController.Update)
				transactions.DELETE("/:id", r.transactionController.Delete)
			}
		}

		// Investment routes (require authentication)
		if r.investmentController != nil && r.authMiddleware != nil {
			investments := v1.Group("/investments")
			investments.Use(r.authMiddleware.Authenticate())
			{
				investments.GET("", r.investmentController.List)
				investments.POST("", r.investmentController.Create)
				investments.GET("/summary", r.investmentController.Summary)
				investments.GET("/:id", r.investmentController.Get)
				investments.PUT("/:id", r.investmentController.Update)
				investments.DELETE("/:id", r.investmentController.Delete)
				investments.POST("/:id/contribute", r.investmentController.Contribute)
				investments.POST("/:id/withdraw", r.investmentController.Withdraw)
			}
		}

		// Goal routes (require authentication)
		if r.goalController != nil && r.authMiddleware != nil {
			goals := v1.Group("/goals")
			goals.Use(r.authMiddleware.Authenticate())
			{
				goals.GET("", r.goalController.List)
				goals.POST("", r.goalController.Create)
				goals.GET("/summary", r.goalController.Summary)
				goals.GET("/:id", r.goalController.Get)
				goals.PUT("/:id", r.goalController.Update)
				goals.DELETE("/:id", r.goalController.Delete)
				goals.POST("/:id/contribute", r.goalController.Contribute)
			}
		}

		// Admin routes (gated by the API key, not user identity)
		if r.adminController != nil {
			admin := v1.Group("/admin")
			admin.Use(middleware.APIKeyGate(r.adminAPIKey))
			{
				admin.POST("/clean-database", r.adminController.CleanDatabase)
				admin.POST("/users/:id/seed-defaults", r.adminController.SeedUserDefaults)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
