package main

import (
	"log"

	"eadcourse/broker"
	"eadcourse/clients"
	"eadcourse/config"
	"eadcourse/database"
	appLogger "eadcourse/logger"
	courseRoutes "eadcourse/routers/courseRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	appLogger.Init()
	defer appLogger.Log.Sync()

	database.ConnectDb()

	clients.AuthUser = clients.NewAuthUserClient(config.AppConfig.AuthUserApiURL)

	// Without a broker the service still serves requests: the user
	// projection stops syncing and notifications are skipped.
	brokerClient, err := broker.Connect(config.AppConfig.BrokerURL)
	if err != nil {
		if config.AppConfig.BrokerRequired {
			appLogger.Log.Fatal("Failed to connect to broker", zap.Error(err))
		}
		appLogger.Log.Warn("Broker unavailable, running degraded", zap.Error(err))
	} else {
		defer brokerClient.Close()
		broker.Notifications = brokerClient
		if err := brokerClient.StartUserEventConsumer(database.Database.Db); err != nil {
			appLogger.Log.Error("Failed to start user event consumer", zap.Error(err))
		}
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	courseRoutes.SetupCourseRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
