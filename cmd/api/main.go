package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"omnibook-admin/internal/application/services"
	httpHandler "omnibook-admin/internal/infrastructure/http"
	"omnibook-admin/internal/infrastructure/mongo"
	"omnibook-admin/internal/infrastructure/payos"
	jwtutil "omnibook-admin/pkg/jwt"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found or could not be loaded")
	}

	log.Println("Starting OmniBook Admin API...")

	mongoConfig := &mongo.Config{
		URI:      getEnv("MONGO_URI", ""),
		Database: getEnv("MONGO_DATABASE", "omnibook"),
		Timeout:  30 * time.Second,
	}

	mongoClient, err := mongo.NewClient(mongoConfig)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Close(); err != nil {
			log.Printf("Error closing MongoDB connection: %v", err)
		}
	}()

	if err := mongoClient.Ping(); err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}
	log.Println("Connected to MongoDB successfully")

	database := mongoClient.Database()

	// Repositories
	bookingRepo := mongo.NewBookingRepository(database)
	propertyRepo := mongo.NewPropertyRepository(database)
	hostRepo := mongo.NewHostRepository(database)
	userRepo := mongo.NewUserRepository(database)
	subscriptionRepo := mongo.NewSubscriptionRepository(database)
	couponRepo := mongo.NewCouponRepository(database)
	notificationRepo := mongo.NewNotificationRepository(database)
	adminRepo := mongo.NewAdminRepository(database)

	// Payment gateway is optional; the review workflow still works without
	// it, only link creation is disabled.
	var gateway services.PaymentGateway
	payosConfig := &payos.Config{
		ClientID:    getEnv("PAYOS_CLIENT_ID", ""),
		APIKey:      getEnv("PAYOS_API_KEY", ""),
		ChecksumKey: getEnv("PAYOS_CHECKSUM_KEY", ""),
		ReturnURL:   getEnv("PAYOS_RETURN_URL", ""),
		CancelURL:   getEnv("PAYOS_CANCEL_URL", ""),
	}
	if payosConfig.ClientID != "" {
		payosService, err := payos.NewService(payosConfig)
		if err != nil {
			log.Fatalf("Failed to initialize PayOS: %v", err)
		}
		gateway = payosService
		log.Println("PayOS payment gateway initialized")
	} else {
		log.Println("PayOS not configured, payment link creation disabled")
	}

	jwtManager := jwtutil.NewJWTManager(getEnv("JWT_SECRET", "dev-secret-change-me"), 24*time.Hour)

	// Services
	authService := services.NewAuthService(adminRepo, jwtManager)
	dashboardService := services.NewDashboardService(bookingRepo, propertyRepo, hostRepo, userRepo)
	bookingService := services.NewBookingService(bookingRepo)
	hostService := services.NewHostService(hostRepo, propertyRepo)
	userService := services.NewUserService(userRepo)
	couponService := services.NewCouponService(couponRepo)
	subscriptionService := services.NewSubscriptionService(subscriptionRepo, hostRepo, gateway)
	notificationService := services.NewNotificationService(notificationRepo)
	exportService := services.NewExportService(bookingRepo)

	// HTTP controllers and router
	router := httpHandler.NewRouter(httpHandler.Controllers{
		Auth:         httpHandler.NewHTTPAuthController(authService),
		Dashboard:    httpHandler.NewHTTPDashboardController(dashboardService),
		Booking:      httpHandler.NewHTTPBookingController(bookingService),
		Host:         httpHandler.NewHTTPHostController(hostService),
		User:         httpHandler.NewHTTPUserController(userService),
		Coupon:       httpHandler.NewHTTPCouponController(couponService),
		Subscription: httpHandler.NewHTTPSubscriptionController(subscriptionService),
		Notification: httpHandler.NewHTTPNotificationController(notificationService),
		Export:       httpHandler.NewHTTPExportController(exportService),
	}, jwtManager)

	port := getEnv("PORT", "8080")
	server := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on port %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server:", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
