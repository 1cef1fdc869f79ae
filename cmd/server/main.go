package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"gms-backend/internal/auth"
	"gms-backend/internal/cache"
	"gms-backend/internal/config"
	"gms-backend/internal/database"
	"gms-backend/internal/db"
	"gms-backend/internal/handlers"
	"gms-backend/internal/health"
	gmshttp "gms-backend/internal/http"
	"gms-backend/internal/middleware"
	"gms-backend/internal/repositories"
	"gms-backend/internal/services"
	"gms-backend/internal/sms"
	"gms-backend/internal/storage"
)

func main() {
	cfg := config.Load()

	pool := db.Connect(cfg)
	defer pool.Close()

	migrator := database.NewMigrator(pool)
	if err := migrator.RunMigrations(context.Background()); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	if err := cache.Init(); err != nil {
		log.Printf("[Cache] Redis unavailable, running without cache: %v", err)
	}
	defer cache.Close()

	store, err := storage.New(cfg)
	if err != nil {
		log.Fatalf("object store init failed: %v", err)
	}

	// Repositories
	userRepo := repositories.NewUserRepository(pool)
	cityRepo := repositories.NewCityRepository(pool)
	localityRepo := repositories.NewLocalityRepository(pool)
	projectRepo := repositories.NewProjectRepository(pool)
	towerRepo := repositories.NewTowerRepository(pool)
	wingRepo := repositories.NewWingRepository(pool)
	floorRepo := repositories.NewFloorRepository(pool)
	flatRepo := repositories.NewFlatRepository(pool)
	customerRepo := repositories.NewCustomerRepository(pool)
	agentRepo := repositories.NewAgentRepository(pool)
	costConfigRepo := repositories.NewCostConfigRepository(pool)
	meterRepo := repositories.NewMeterRepository(pool)
	meterLogRepo := repositories.NewMeterLogRepository(pool)
	invoiceRepo := repositories.NewInvoiceRepository(pool)
	paymentRepo := repositories.NewPaymentRepository(pool)
	smsTemplateRepo := repositories.NewSmsTemplateRepository(pool)
	emailTemplateRepo := repositories.NewEmailTemplateRepository(pool)
	reportRepo := repositories.NewReportRepository(pool)
	smsLogRepo := repositories.NewSMSLogRepository(pool)

	// SMS provider: real when a key is configured, mock otherwise
	var smsProvider sms.Provider
	if cfg.SMS.APIKey != "" {
		smsProvider = sms.NewFast2SMSProvider(cfg.SMS.APIKey, smsLogRepo)
	} else {
		log.Println("[SMS] No API key configured, using mock provider")
		smsProvider = sms.NewMockProvider(smsLogRepo)
	}

	// Services
	jwtManager := auth.NewJWTManager(cfg)
	userService := services.NewUserService(userRepo)
	customerService := services.NewCustomerService(customerRepo, flatRepo)
	meterService := services.NewMeterService(meterRepo, meterLogRepo, store)
	billingService := services.NewBillingService(invoiceRepo, paymentRepo, customerRepo, meterLogRepo, flatRepo, costConfigRepo)
	templateService := services.NewTemplateService(smsTemplateRepo, emailTemplateRepo)
	reportService := services.NewReportService(reportRepo, invoiceRepo, paymentRepo, customerRepo, meterLogRepo, store)
	gatewayService := services.NewGatewayService(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret)
	notificationService := services.NewNotificationService(smsProvider, smsTemplateRepo, customerRepo, smsLogRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(userRepo, jwtManager)
	userHandler := handlers.NewUserHandler(userService)
	geoHandler := handlers.NewGeoHandler(cityRepo, localityRepo)
	projectHandler := handlers.NewProjectHandler(projectRepo)
	propertyHandler := handlers.NewPropertyHandler(towerRepo, wingRepo, floorRepo, flatRepo)
	customerHandler := handlers.NewCustomerHandler(customerService)
	agentHandler := handlers.NewAgentHandler(agentRepo)
	costConfigHandler := handlers.NewCostConfigHandler(costConfigRepo)
	meterHandler := handlers.NewMeterHandler(meterService)
	meterLogHandler := handlers.NewMeterLogHandler(meterService)
	invoiceHandler := handlers.NewInvoiceHandler(billingService, notificationService)
	paymentHandler := handlers.NewPaymentHandler(billingService, gatewayService)
	templateHandler := handlers.NewTemplateHandler(templateService)
	reportHandler := handlers.NewReportHandler(reportService)
	smsHandler := handlers.NewSmsHandler(notificationService)
	healthHandler := handlers.NewHealthHandler(health.NewHealthChecker(pool))

	authMiddleware := middleware.NewAuthMiddleware(jwtManager, userRepo)

	router := gmshttp.NewRouter(
		authHandler,
		userHandler,
		geoHandler,
		projectHandler,
		propertyHandler,
		customerHandler,
		agentHandler,
		costConfigHandler,
		meterHandler,
		meterLogHandler,
		invoiceHandler,
		paymentHandler,
		templateHandler,
		reportHandler,
		smsHandler,
		healthHandler,
		authMiddleware,
	)

	// Daily overdue sweep: unpaid invoices past due date flip to OVERDUE.
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			count, err := billingService.MarkOverdueInvoices(ctx)
			if err != nil {
				log.Printf("[Billing] overdue sweep failed: %v", err)
			} else if count > 0 {
				log.Printf("[Billing] marked %d invoices overdue", count)
				cache.Invalidate(ctx, "invoices")
			}
			cancel()
		}
	}()

	var handler http.Handler = router
	handler = middleware.NewCORS(cfg)(handler)
	handler = middleware.RequestLogging(handler)
	handler = middleware.MetricsMiddleware(handler)
	handler = middleware.PanicRecovery(handler)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("[Server] Listening on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
