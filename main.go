package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"event-backend/config"
	"event-backend/controllers"
	"event-backend/routes"
	"event-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	// Connect database (config.ConnectDatabase sets config.DB)
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and migrations applied.")

	// Initialize services
	notificationService := services.NewNotificationService(db)
	eventService := services.NewEventService(db)
	guestService := services.NewGuestService(db)
	tableService := services.NewTableService(db)
	rsvpService := services.NewRSVPService(db, notificationService)
	statsService := services.NewStatsService(db)
	shareService := services.NewShareService(db)
	contactService := services.NewContactService(db)
	campaignService := services.NewCampaignService(db)

	// Initialize controllers
	eventController := controllers.NewEventController(eventService, statsService, shareService)
	guestController := controllers.NewGuestController(guestService)
	tableController := controllers.NewTableController(tableService)
	rsvpController := controllers.NewRSVPController(rsvpService)
	contactController := controllers.NewContactController(contactService)
	notificationController := controllers.NewNotificationController(notificationService)
	campaignController := controllers.NewCampaignController(campaignService)

	// Build router
	router := routes.SetupRouter(
		eventController,
		guestController,
		tableController,
		rsvpController,
		contactController,
		notificationController,
		campaignController,
	)

	// Port from env (prefer), fallback to 8080
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
