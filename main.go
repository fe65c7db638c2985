package main

import (
	"log"
	"net/http"
	"os"

	"stayhub/config"
	"stayhub/controllers"
	"stayhub/jobs"
	"stayhub/models"
	"stayhub/routes"
	"stayhub/services"
	"stayhub/services/logger"
	"stayhub/services/notification"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func migrateTables() {
	err := config.DB.AutoMigrate(
		&models.User{},
		&models.Property{},
		&models.RoomType{},
		&models.Room{},
		&models.Booking{},
		&models.Coupon{},
		&models.Partner{},
		&models.PartnerRevenue{},
		&models.Invoice{},
		&models.ExchangeRate{},
		&models.Notification{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate tables: %v", err)
	}
}

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: no .env file found, using existing environment: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	migrateTables()

	services.ConnectElastic()

	bookingService := services.NewBookingService(services.BookingServiceOptions{
		DB:      config.DB,
		Redsync: config.Redsync,
		TaxRate: config.TaxRate(),
		Logger:  logger.NewDefaultLogger(logger.InfoLevel),
	})

	gateway := services.NewPaymentGateway(
		os.Getenv("PAYMENT_GATEWAY_URL"),
		os.Getenv("PAYMENT_KEY_ID"),
		os.Getenv("PAYMENT_KEY_SECRET"),
	)

	controllers.Init(bookingService, gateway, notification.NewMelodyService(m))

	jobs.SetPendingExpirer(bookingService)
	if err := jobs.InitCronJobs(c, m); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, config.DB, config.RedisClient, config.Cloudinary, m)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
