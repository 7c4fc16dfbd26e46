package main

import (
	"smartlearn/config"
	"smartlearn/database"
	authRoutes "smartlearn/routers/authRoutes"
	bookRoutes "smartlearn/routers/bookRoutes"
	examRoutes "smartlearn/routers/examRoutes"
	ledgerRoutes "smartlearn/routers/ledgerRoutes"
	messageRoutes "smartlearn/routers/messageRoutes"
	subjectRoutes "smartlearn/routers/subjectRoutes"
	subscriptionRoutes "smartlearn/routers/subscriptionRoutes"
	tutorRoutes "smartlearn/routers/tutorRoutes"
	"smartlearn/utils"

	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	// Daily sweep that emails expiry reminders. Access control never depends
	// on it; entitlement is evaluated per request.
	utils.InitializeSubscriptionScheduler()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	subscriptionRoutes.SetupSubscriptionRoutes(app)
	subjectRoutes.SetupSubjectRoutes(app)
	examRoutes.SetupExamRoutes(app)
	bookRoutes.SetupBookRoutes(app)
	messageRoutes.SetupMessageRoutes(app)
	ledgerRoutes.SetupLedgerRoutes(app)
	tutorRoutes.SetupTutorRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
