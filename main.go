package main

import (
	"log"
	"wedding_rsvp/config"
	"wedding_rsvp/database"
	"wedding_rsvp/helper"
	"wedding_rsvp/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigDefault("CORS_ORIGIN", "http://localhost:5173"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	database.ConnectDB()

	helper.StartRSVPReminderScheduler()
	defer helper.StopRSVPReminderScheduler()
	helper.StartRSVPDigestScheduler()
	defer helper.StopRSVPDigestScheduler()

	router.SetupRoutes(app)

	log.Fatal(app.Listen(":" + config.ConfigDefault("PORT", "8002")))
}
