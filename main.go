package main

import (
	"log"
	"time"

	"github.com/Maexgon/RoasterManager/config"
	"github.com/Maexgon/RoasterManager/database"
	"github.com/Maexgon/RoasterManager/handlers"
	"github.com/Maexgon/RoasterManager/handlers/admin"
	"github.com/Maexgon/RoasterManager/middleware"
	"github.com/Maexgon/RoasterManager/models"
	"github.com/Maexgon/RoasterManager/services"
	"github.com/Maexgon/RoasterManager/storage"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	cfg := config.Load()

	db, err := database.Connect()
	if err != nil {
		log.Fatalf("Database initialization failed: %v", err)
	}
	defer database.Close(db)

	store, err := storage.NewDiskStore(cfg.UploadDir, cfg.BaseURL)
	if err != nil {
		log.Fatalf("Storage initialization failed: %v", err)
	}

	// Services
	playerService := services.NewPlayerService(db)
	teamService := services.NewTeamService(db)
	eventService := services.NewEventService(db)
	parentService := services.NewParentService(db, eventService)
	clubService := services.NewClubService(db)
	billboardService := services.NewBillboardService(db)
	importService := services.NewRosterImportService(db)
	prefsService := services.NewPreferencesService(db)

	// Handlers
	authHandler := handlers.NewAuthHandler(db, cfg)
	prefsHandler := handlers.NewPreferencesHandler(prefsService)
	playerHandler := handlers.NewPlayerHandler(playerService, store)
	teamHandler := handlers.NewTeamHandler(teamService)
	importHandler := handlers.NewImportHandler(importService)
	parentHandler := handlers.NewParentHandler(parentService, billboardService, store)
	eventHandler := handlers.NewEventHandler(eventService)
	clubHandler := handlers.NewClubHandler(clubService)
	billboardHandler := handlers.NewBillboardHandler(billboardService)
	maintenance := admin.NewMaintenance(parentService)

	app := fiber.New(fiber.Config{
		BodyLimit:    cfg.BodyLimitMB * 1024 * 1024,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	generalLimiter := middleware.NewRateLimiter(100, 900)
	authLimiter := middleware.NewRateLimiter(5, 300)
	app.Use(generalLimiter.Middleware())

	// Uploaded blobs (avatars, certificates)
	app.Static("/uploads", cfg.UploadDir)

	auth := middleware.Auth(cfg.JWTSecret)
	staffOnly := middleware.RequireRole(models.RoleStaff, models.RoleAdmin)

	api := app.Group("/api")

	// Auth routes with stricter rate limiting
	authGroup := api.Group("/auth")
	authGroup.Use(authLimiter.Middleware())
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/preferences", auth, prefsHandler.Get)
	authGroup.Put("/preferences", auth, prefsHandler.Save)

	// Roster routes (staff)
	playerGroup := api.Group("/players", auth, staffOnly)
	playerGroup.Get("/", playerHandler.List)
	playerGroup.Get("/summary", playerHandler.Summary)
	playerGroup.Post("/", playerHandler.Create)
	playerGroup.Post("/bulk", playerHandler.BulkUpdate)
	playerGroup.Get("/:id", playerHandler.Get)
	playerGroup.Put("/:id", playerHandler.Update)
	playerGroup.Delete("/:id", playerHandler.Delete)
	playerGroup.Post("/:id/skills", playerHandler.AddAssessment)
	playerGroup.Get("/:id/skills", playerHandler.ListAssessments)
	playerGroup.Get("/:id/rating", playerHandler.Rating)
	playerGroup.Post("/:id/avatar", playerHandler.UploadAvatar)

	// Team and lineup routes (staff)
	teamGroup := api.Group("/teams", auth, staffOnly)
	teamGroup.Get("/", teamHandler.List)
	teamGroup.Post("/", teamHandler.Create)
	teamGroup.Get("/:id", teamHandler.Get)
	teamGroup.Put("/:id", teamHandler.Update)
	teamGroup.Delete("/:id", teamHandler.Delete)
	teamGroup.Put("/:id/lineup", teamHandler.SaveLineup)
	teamGroup.Get("/:id/aggregate", teamHandler.Aggregate)

	// CSV import (staff)
	importGroup := api.Group("/import", auth, staffOnly)
	importGroup.Post("/preview", importHandler.Preview)
	importGroup.Post("/players", importHandler.Import)

	// Calendar: training sessions and matches (staff)
	eventGroup := api.Group("/events", auth, staffOnly)
	eventGroup.Get("/", eventHandler.List)
	eventGroup.Post("/", eventHandler.Create)
	eventGroup.Get("/:id", eventHandler.Get)
	eventGroup.Put("/:id", eventHandler.Update)
	eventGroup.Delete("/:id", eventHandler.Delete)
	eventGroup.Get("/:id/attendance", eventHandler.Attendance)
	eventGroup.Post("/:id/attendance", eventHandler.MarkAttendance)
	eventGroup.Post("/:id/plan", eventHandler.AddPlanSlot)
	eventGroup.Delete("/:id/plan/:slotId", eventHandler.RemovePlanSlot)
	eventGroup.Post("/:id/notes", eventHandler.AddNote)

	// Club registry, the match rival selector (staff)
	clubGroup := api.Group("/clubs", auth, staffOnly)
	clubGroup.Get("/", clubHandler.List)
	clubGroup.Post("/", clubHandler.Create)
	clubGroup.Delete("/:id", clubHandler.Delete)

	// Drill library (staff)
	drillGroup := api.Group("/drills", auth, staffOnly)
	drillGroup.Get("/", eventHandler.ListDrills)
	drillGroup.Post("/", eventHandler.CreateDrill)
	drillGroup.Put("/:id", eventHandler.UpdateDrill)
	drillGroup.Delete("/:id", eventHandler.DeleteDrill)

	// Billboard (staff write)
	billboardGroup := api.Group("/billboard", auth, staffOnly)
	billboardGroup.Get("/", billboardHandler.List)
	billboardGroup.Post("/", billboardHandler.Create)
	billboardGroup.Delete("/:id", billboardHandler.Delete)
	billboardGroup.Put("/:id/pin", billboardHandler.SetPinned)

	// Parent portal
	parentGroup := api.Group("/parent", auth, middleware.RequireRole(models.RoleParent, models.RoleAdmin))
	parentGroup.Get("/players", parentHandler.Players)
	parentGroup.Get("/players/:id", parentHandler.Player)
	parentGroup.Put("/players/:id/medical", parentHandler.UpdateMedical)
	parentGroup.Post("/players/:id/certificate", parentHandler.UploadCertificate)
	parentGroup.Get("/billboard", parentHandler.Billboard)

	// Admin maintenance
	adminGroup := api.Group("/admin", auth, middleware.RequireRole(models.RoleAdmin))
	adminGroup.Post("/fix-linkage", maintenance.FixLinkage)
	adminGroup.Post("/seed-demo", maintenance.SeedDemo)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
