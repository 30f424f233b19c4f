package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	expenseapp "github.com/dealerops/backend/internal/application/expense"
	inventoryapp "github.com/dealerops/backend/internal/application/inventory"
	ledgerapp "github.com/dealerops/backend/internal/application/ledger"
	notificationapp "github.com/dealerops/backend/internal/application/notification"
	partnerapp "github.com/dealerops/backend/internal/application/partner"
	tradeapp "github.com/dealerops/backend/internal/application/trade"
	domainnotification "github.com/dealerops/backend/internal/domain/notification"
	domainpartner "github.com/dealerops/backend/internal/domain/partner"
	"github.com/dealerops/backend/internal/infrastructure/config"
	"github.com/dealerops/backend/internal/infrastructure/logger"
	"github.com/dealerops/backend/internal/infrastructure/migration"
	"github.com/dealerops/backend/internal/infrastructure/persistence"
	"github.com/dealerops/backend/internal/interfaces/http/handler"
	"github.com/dealerops/backend/internal/interfaces/http/middleware"
	"github.com/dealerops/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting DealerOps Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))

	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully", zap.String("driver", cfg.Database.Driver))

	// Postgres deployments run SQL migrations via cmd/migrate; the
	// sqlite single-file install migrates and seeds on boot.
	if cfg.Database.Driver == "sqlite" {
		if err := migration.AutoMigrate(db.DB, log); err != nil {
			log.Fatal("Failed to migrate database", zap.Error(err))
		}
	}

	// Repositories
	accountRepo := persistence.NewGormAccountRepository(db.DB)
	partnerRepo := persistence.NewGormTradingPartnerRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	vehicleRepo := persistence.NewGormVehicleRepository(db.DB)
	saleRepo := persistence.NewGormSaleRepository(db.DB)
	expenseRepo := persistence.NewGormRecurringExpenseRepository(db.DB)
	notificationRepo := persistence.NewGormNotificationRepository(db.DB)

	partnerScope := persistence.NewGormPartnerTransactionScope(db.DB)
	tradeScope := persistence.NewGormTradeTransactionScope(db.DB)

	// Application services
	accountService := ledgerapp.NewAccountService(accountRepo)
	provisionerService := partnerapp.NewProvisionerService(
		partnerRepo, accountRepo, partnerScope, rootAccountsFromConfig(cfg.Ledger))
	customerService := partnerapp.NewCustomerService(customerRepo)
	vehicleService := inventoryapp.NewVehicleService(vehicleRepo)
	saleService := tradeapp.NewSaleService(saleRepo, vehicleRepo, customerRepo, tradeScope)
	expenseService := expenseapp.NewExpenseService(expenseRepo)
	generatorService := notificationapp.NewGeneratorService(
		notificationRepo, vehicleRepo, saleRepo, expenseRepo, policiesFromConfig(cfg.Notifications))

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.HTTP.CORSAllowOrigins,
		AllowMethods: cfg.HTTP.CORSAllowMethods,
		AllowHeaders: cfg.HTTP.CORSAllowHeaders,
	}))

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(handler.NewSystemHandler(db))
	r.Register(handler.NewAccountHandler(accountService))
	r.Register(handler.NewPartnerHandler(provisionerService))
	r.Register(handler.NewCustomerHandler(customerService))
	r.Register(handler.NewVehicleHandler(vehicleService))
	r.Register(handler.NewSaleHandler(saleService))
	r.Register(handler.NewNotificationHandler(generatorService))
	r.Register(handler.NewExpenseHandler(expenseService))
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

func rootAccountsFromConfig(cfg config.LedgerConfig) partnerapp.RootAccounts {
	return partnerapp.RootAccounts{
		domainpartner.KindSupplier:        cfg.SupplierRootAccountID,
		domainpartner.KindClearingAgent:   cfg.ClearingAgentRootAccountID,
		domainpartner.KindTrackingCompany: cfg.TrackingCompanyRootAccountID,
		domainpartner.KindInsurer:         cfg.InsurerRootAccountID,
		domainpartner.KindBroker:          cfg.BrokerRootAccountID,
	}
}

func policiesFromConfig(cfg config.NotificationsConfig) notificationapp.Policies {
	return notificationapp.Policies{
		domainnotification.CategoryVehicleETA: {
			LookaheadDays:  cfg.ETA.LookaheadDays,
			LowerBoundDays: cfg.ETA.LowerBoundDays,
		},
		domainnotification.CategoryInstallment: {
			LookaheadDays:  cfg.Installment.LookaheadDays,
			LowerBoundDays: cfg.Installment.LowerBoundDays,
		},
		domainnotification.CategoryRecurringExpense: {
			LookaheadDays:  cfg.Recurring.LookaheadDays,
			LowerBoundDays: cfg.Recurring.LowerBoundDays,
		},
	}
}
