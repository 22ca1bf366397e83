// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/finwise/backend/internal/application/usecase/admin"
	"github.com/finwise/backend/internal/application/usecase/auth"
	"github.com/finwise/backend/internal/application/usecase/category"
	"github.com/finwise/backend/internal/application/usecase/goal"
	"github.com/finwise/backend/internal/application/usecase/investment"
	"github.com/finwise/backend/internal/application/usecase/investmenttype"
	"github.com/finwise/backend/internal/application/usecase/paymentmethod"
	"github.com/finwise/backend/internal/application/usecase/seeding"
	"github.com/finwise/backend/internal/application/usecase/transaction"
	"github.com/finwise/backend/internal/infra/server/router"
	"github.com/finwise/backend/internal/integration/adapters"
	"github.com/finwise/backend/internal/integration/entrypoint/controller"
	"github.com/finwise/backend/internal/integration/entrypoint/middleware"
	"github.com/finwise/backend/internal/integration/persistence"
	"github.com/finwise/backend/internal/integration/persistence/model"
	"github.com/finwise/backend/test/integration/mock"
)

const (
	testJWTSecret   = "test-jwt-secret-key-for-testing-purposes"
	testAdminAPIKey = "test-admin-api-key"
)

var serverOnce sync.Once
var testServer *httptest.Server
var testDB *mock.Db

// testContext holds per-scenario state.
type testContext struct {
	uri         string
	client      *http.Client
	db          *mock.Db
	headers     map[string]string
	response    *response
	accessToken string
	// Named placeholder values captured from responses, keyed by the name
	// used in {{...}} substitutions.
	placeholders map[string]string
}

type response struct {
	status int
	body   any
}

// InitializeTestSuite sets up suite-wide resources.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
	ctx.AfterSuite(func() {
		if testServer != nil {
			testServer.Close()
		}
	})
}

// startServer wires the full stack against the in-memory database and the
// embedded Redis, then exposes it through an in-process HTTP server.
func startServer() {
	serverOnce.Do(func() {
		testDB = mock.NewDb(map[string]any{
			"users":            &model.UserModel{},
			"categories":       &model.CategoryModel{},
			"payment_methods":  &model.PaymentMethodModel{},
			"investment_types": &model.InvestmentTypeModel{},
			"transactions":     &model.TransactionModel{},
			"investments":      &model.InvestmentModel{},
			"goals":            &model.GoalModel{},
		})
		redisClient := mock.NewRedis()

		// Create repositories
		userRepo := persistence.NewUserRepository(testDB.DbConn)
		categoryRepo := persistence.NewCategoryRepository(testDB.DbConn)
		paymentMethodRepo := persistence.NewPaymentMethodRepository(testDB.DbConn)
		investmentTypeRepo := persistence.NewInvestmentTypeRepository(testDB.DbConn)
		transactionRepo := persistence.NewTransactionRepository(testDB.DbConn)
		investmentRepo := persistence.NewInvestmentRepository(testDB.DbConn)
		goalRepo := persistence.NewGoalRepository(testDB.DbConn)
		txManager := persistence.NewTxManager(testDB.DbConn)
		schemaManager := persistence.NewSchemaManager(testDB.DbConn)

		// Create adapters/services
		passwordService := adapters.NewPasswordService()
		tokenService := adapters.NewTokenService(testJWTSecret, time.Hour, redisClient)
		sanitizer := adapters.NewSanitizer()

		seedDefaultsUseCase := seeding.NewSeedDefaultsUseCase(categoryRepo, paymentMethodRepo, investmentTypeRepo)

		// Create controllers
		authController := controller.NewAuthController(
			auth.NewRegisterUserUseCase(userRepo, passwordService, sanitizer, seedDefaultsUseCase, txManager),
			auth.NewLoginUserUseCase(userRepo, passwordService, tokenService),
			auth.NewLogoutUserUseCase(tokenService),
			auth.NewChangePasswordUseCase(userRepo, passwordService),
			auth.NewGetCurrentUserUseCase(userRepo),
		)
		categoryController := controller.NewCategoryController(
			category.NewCreateCategoryUseCase(categoryRepo, sanitizer),
			category.NewListCategoriesUseCase(categoryRepo),
			category.NewGetCategoryUseCase(categoryRepo),
			category.NewUpdateCategoryUseCase(categoryRepo, sanitizer),
			category.NewDeleteCategoryUseCase(categoryRepo),
		)
		paymentMethodController := controller.NewPaymentMethodController(
			paymentmethod.NewCreatePaymentMethodUseCase(paymentMethodRepo, sanitizer),
			paymentmethod.NewListPaymentMethodsUseCase(paymentMethodRepo),
			paymentmethod.NewGetPaymentMethodUseCase(paymentMethodRepo),
			paymentmethod.NewUpdatePaymentMethodUseCase(paymentMethodRepo, sanitizer),
			paymentmethod.NewDeletePaymentMethodUseCase(paymentMethodRepo),
		)
		investmentTypeController := controller.NewInvestmentTypeController(
			investmenttype.NewCreateInvestmentTypeUseCase(investmentTypeRepo, sanitizer),
			investmenttype.NewListInvestmentTypesUseCase(investmentTypeRepo),
			investmenttype.NewGetInvestmentTypeUseCase(investmentTypeRepo),
			investmenttype.NewUpdateInvestmentTypeUseCase(investmentTypeRepo, sanitizer),
			investmenttype.NewDeleteInvestmentTypeUseCase(investmentTypeRepo),
		)
		transactionController := controller.NewTransactionController(
			transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo, paymentMethodRepo, sanitizer),
			transaction.NewListTransactionsUseCase(transactionRepo),
			transaction.NewGetTransactionUseCase(transactionRepo),
			transaction.NewUpdateTransactionUseCase(transactionRepo, categoryRepo, paymentMethodRepo, sanitizer),
			transaction.NewDeleteTransactionUseCase(transactionRepo),
			transaction.NewGetTransactionsSummaryUseCase(transactionRepo),
		)
		investmentController := controller.NewInvestmentController(
			investment.NewCreateInvestmentUseCase(investmentRepo, investmentTypeRepo, sanitizer),
			investment.NewListInvestmentsUseCase(investmentRepo),
			investment.NewGetInvestmentUseCase(investmentRepo),
			investment.NewUpdateInvestmentUseCase(investmentRepo, investmentTypeRepo, sanitizer),
			investment.NewDeleteInvestmentUseCase(investmentRepo),
			investment.NewContributeToInvestmentUseCase(investmentRepo),
			investment.NewWithdrawFromInvestmentUseCase(investmentRepo),
			investment.NewGetInvestmentsSummaryUseCase(investmentRepo),
		)
		goalController := controller.NewGoalController(
			goal.NewCreateGoalUseCase(goalRepo, sanitizer),
			goal.NewListGoalsUseCase(goalRepo),
			goal.NewGetGoalUseCase(goalRepo),
			goal.NewUpdateGoalUseCase(goalRepo, sanitizer),
			goal.NewDeleteGoalUseCase(goalRepo),
			goal.NewContributeToGoalUseCase(goalRepo),
			goal.NewGetGoalsSummaryUseCase(goalRepo),
		)
		adminController := controller.NewAdminController(
			admin.NewCleanDatabaseUseCase(schemaManager),
			admin.NewSeedUserDefaultsUseCase(userRepo, seedDefaultsUseCase),
		)

		// A generous window keeps the limiter out of the way of scenarios
		// that register and log in repeatedly.
		loginRateLimiter := middleware.NewRateLimiter(10000, time.Minute)
		authMiddleware := middleware.NewAuthMiddleware(tokenService)

		// The health route needs no real database in these tests; every
		// scenario asserts against API behavior instead.
		r := router.NewRouter(
			nil,
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
			nil,
			testAdminAPIKey,
		)
		engine := r.Setup("test")

		testServer = httptest.NewServer(engine)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	startServer()

	test := &testContext{
		uri:          testServer.URL,
		client:       &http.Client{Timeout: 10 * time.Second},
		db:           testDB,
		headers:      make(map[string]string),
		placeholders: make(map[string]string),
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.reset()
		return ctx, nil
	})

	// Steps are registered keyword-agnostically so any of them can appear
	// under Given, When, And or Then, including inside a Background.

	// Setup steps
	ctx.Step(`^a registered user "([^"]*)" with password "([^"]*)"$`, test.aRegisteredUserWithPassword)
	ctx.Step(`^I am logged in as "([^"]*)" with password "([^"]*)"$`, test.iAmLoggedInAsWithPassword)
	ctx.Step(`^I am not authenticated$`, test.iAmNotAuthenticated)
	ctx.Step(`^the header "([^"]*)" is "([^"]*)"$`, test.theHeaderIs)

	// Request steps
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)
	ctx.Step(`^I store the response field "([^"]*)" as "([^"]*)"$`, test.iStoreTheResponseFieldAs)

	// Response assertion steps
	ctx.Step(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Step(`^the response message should be "([^"]*)"$`, test.theResponseMessageShouldBe)
	ctx.Step(`^the response should be a list with (\d+) items?$`, test.theResponseShouldBeAListWithItems)

	// Database assertion steps
	ctx.Step(`^the db should contain (\d+) rows in "([^"]*)"$`, test.theDbShouldContainRowsIn)
}

func (t *testContext) reset() {
	t.headers = make(map[string]string)
	t.placeholders = make(map[string]string)
	t.accessToken = ""
	t.response = nil

	if t.db != nil {
		if err := t.db.Reset(); err != nil {
			panic("failed to reset test database: " + err.Error())
		}
	}
	_ = mock.ClearRedis(mock.NewRedis())
}
