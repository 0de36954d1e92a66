package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"resto-backend/internal/auth"
	"resto-backend/internal/cache"
	"resto-backend/internal/cart"
	"resto-backend/internal/config"
	"resto-backend/internal/database"
	"resto-backend/internal/db"
	"resto-backend/internal/handlers"
	"resto-backend/internal/health"
	router "resto-backend/internal/http"
	"resto-backend/internal/middleware"
	"resto-backend/internal/monitoring"
	"resto-backend/internal/realtime"
	"resto-backend/internal/repositories"
	"resto-backend/internal/services"
	"resto-backend/internal/session"
	"resto-backend/internal/storage"
)

func main() {
	cfg := config.Load()

	pool := db.Connect(cfg)
	defer pool.Close()

	// Redis is optional; menu caching and session revocation degrade
	// gracefully without it
	if err := cache.Init(cfg); err != nil {
		log.Printf("[Redis] Cache unavailable: %v", err)
	} else {
		log.Println("[Redis] Cache connected successfully")
	}

	migrateCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.NewMigrator(pool).RunMigrations(migrateCtx); err != nil {
		cancel()
		log.Fatalf("Failed to run migrations: %v", err)
	}
	cancel()

	hub := realtime.NewHub()
	jwtManager := auth.NewJWTManager(cfg)
	media := storage.NewMediaStore(cfg)
	tokenTTL := time.Duration(cfg.JWT.ExpirationHours) * time.Hour
	watcher := session.NewWatcher(hub, tokenTTL)

	// Repositories
	userRepo := repositories.NewUserRepository(pool)
	staffRepo := repositories.NewStaffRepository(pool)
	attendanceRepo := repositories.NewAttendanceRepository(pool)
	payrollRepo := repositories.NewPayrollRepository(pool)
	advanceRepo := repositories.NewAdvanceRepository(pool)
	menuRepo := repositories.NewMenuRepository(pool)
	tableRepo := repositories.NewTableRepository(pool)
	orderRepo := repositories.NewOrderRepository(pool)
	customerRepo := repositories.NewCustomerRepository(pool)
	offerRepo := repositories.NewOfferRepository(pool)
	paymentRepo := repositories.NewPaymentRepository(pool)
	vendorRepo := repositories.NewVendorRepository(pool)
	inventoryRepo := repositories.NewInventoryRepository(pool)

	// Services
	userService := services.NewUserService(userRepo, staffRepo, jwtManager)
	totpService := services.NewTOTPService(userRepo)
	payrollService := services.NewPayrollService(payrollRepo, attendanceRepo, staffRepo, hub)
	attendanceService := services.NewAttendanceService(attendanceRepo, payrollService, hub)
	staffService := services.NewStaffService(staffRepo, advanceRepo, hub)
	menuService := services.NewMenuService(menuRepo, media)
	tableService := services.NewTableService(tableRepo)
	orderService := services.NewOrderService(orderRepo, menuRepo, hub)
	cartService := services.NewCartService(cart.NewStore(), orderService, tableService)
	khataService := services.NewKhataService(customerRepo)
	offerService := services.NewOfferService(offerRepo)
	vendorService := services.NewVendorService(vendorRepo)
	inventoryService := services.NewInventoryService(inventoryRepo)
	paymentService := services.NewPaymentService(paymentRepo, orderRepo, khataService,
		cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret, cfg.Razorpay.WebhookSecret)
	reportService := services.NewReportService(orderRepo, tableRepo, staffRepo, payrollRepo)

	// Handlers
	h := router.Handlers{
		Auth:     handlers.NewAuthHandler(userService, totpService),
		Staff:    handlers.NewStaffHandler(staffService),
		Attend:   handlers.NewAttendanceHandler(attendanceService),
		Payroll:  handlers.NewPayrollHandler(payrollService),
		Menu:     handlers.NewMenuHandler(menuService),
		Table:    handlers.NewTableHandler(tableService),
		Cart:     handlers.NewCartHandler(cartService),
		Order:    handlers.NewOrderHandler(orderService),
		Khata:    handlers.NewKhataHandler(khataService),
		Offer:    handlers.NewOfferHandler(offerService),
		Vendor:   handlers.NewVendorHandler(vendorService),
		Inv:      handlers.NewInventoryHandler(inventoryService),
		Payment:  handlers.NewPaymentHandler(paymentService),
		Report:   handlers.NewReportHandler(reportService),
		Realtime: handlers.NewRealtimeHandler(hub, watcher),
		Health:   handlers.NewHealthHandler(health.NewHealthChecker(pool)),
	}

	authMW := middleware.NewAuthMiddleware(jwtManager, staffRepo)
	monitor := monitoring.NewMonitor(pool, hub)
	corsMiddleware := middleware.NewCORS(cfg)
	requestLogging := middleware.NewRequestLogging()
	defer requestLogging.Close()

	mux := router.NewRouter(h, authMW, monitor)
	handler := middleware.PanicRecovery(
		middleware.MetricsMiddleware(
			corsMiddleware(
				requestLogging.Handler(mux))))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Server running on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Block until interrupted, then drain in-flight requests
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
