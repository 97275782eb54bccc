package main

import (
	"cruise_manager/config"
	"cruise_manager/database"
	"cruise_manager/handler"
	"cruise_manager/helper"
	"cruise_manager/logger"
	"cruise_manager/pricing"
	"cruise_manager/router"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	defer logger.Sync()

	settings := config.Load()
	if settings.JWTSecret == "" {
		logger.Fatal("JWT_SECRET is required")
	}

	catalog, err := pricing.LoadCatalog(settings.ClubCardCatalog)
	if err != nil {
		logger.Fatal("load club card catalog", "path", settings.ClubCardCatalog, "error", err)
	}

	handler.Settings = settings
	handler.ClubCards = catalog
	handler.Destinations = pricing.NewDestinationPolicy(settings.PrivateOnlyDestinations, settings.CharterBasePassengers)
	handler.Gateway = handler.NewSquare(settings)

	if settings.CloudinaryCloudName != "" {
		cld, err := helper.InitCloudinary(settings)
		if err != nil {
			logger.Warn("cloudinary disabled", "error", err)
		}
		handler.Cloudinary = cld
	}

	if err := database.ConnectDB(settings); err != nil {
		logger.Fatal("database", "error", err)
	}
	helper.Redis = helper.InitRedis(settings.RedisAddr, settings.RedisPassword)

	if err := helper.StartPaymentScheduler(time.Duration(settings.PaymentPendingTTLMinutes) * time.Minute); err != nil {
		logger.Fatal("payment scheduler", "error", err)
	}
	defer helper.StopPaymentScheduler()

	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     settings.CORSOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept, Accept-Language, X-Member-Id",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	router.SetupRoutes(app)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		logger.Info("shutting down")
		if err := app.Shutdown(); err != nil {
			logger.Error("shutdown", "error", err)
		}
	}()

	logger.Info("listening", "port", settings.Port, "cards", len(catalog.Cards()))
	if err := app.Listen(":" + settings.Port); err != nil {
		logger.Fatal("listen", "error", err)
	}
}
