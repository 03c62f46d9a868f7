package main

import (
	"log"

	"github.com/zayi-14/german-school/config"
	"github.com/zayi-14/german-school/database"
	adminRoutes "github.com/zayi-14/german-school/routers/adminRoutes"
	authRoutes "github.com/zayi-14/german-school/routers/authRoutes"
	contactRoutes "github.com/zayi-14/german-school/routers/contactRoutes"
	courseRoutes "github.com/zayi-14/german-school/routers/courseRoutes"
	feedbackRoutes "github.com/zayi-14/german-school/routers/feedbackRoutes"
	profileRoutes "github.com/zayi-14/german-school/routers/profileRoutes"
	"github.com/zayi-14/german-school/utils"
	"github.com/zayi-14/german-school/whatsapp"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	cfg := config.Load()
	database.Connect(cfg)
	whatsapp.Default = whatsapp.NewDispatcher(cfg)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	profileRoutes.SetupProfileRoutes(app)
	feedbackRoutes.SetupFeedbackRoutes(app)
	contactRoutes.SetupContactRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	// Daily owner summary
	utils.StartReportScheduler()

	log.Printf("Server is running on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
