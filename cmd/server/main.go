package main

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/biblemap/biblemap-api/internal/config"
	"github.com/biblemap/biblemap-api/internal/database"
	"github.com/biblemap/biblemap-api/internal/handlers"
	"github.com/biblemap/biblemap-api/internal/middleware"
	"github.com/biblemap/biblemap-api/internal/types"
	"github.com/biblemap/biblemap-api/internal/utils"

	_ "github.com/biblemap/biblemap-api/docs/api" // Swagger docs
)

// @title BibleMap API
// @version 1.0.0
// @description REST backend for browsing biblical persons, locations, events, journeys, and themes on a map
// @contact.name API Support
// @contact.url https://github.com/biblemap/biblemap-api
// @host localhost:3000
// @BasePath /api
// @schemes http https

func main() {
	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Skipping .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	app := buildApp(cfg, db)

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	log.Printf("Starting server on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

func buildApp(cfg *config.Config, db *gorm.DB) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler(cfg),
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.CORSOrigins, ","),
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Origin, Content-Type, Accept, X-Api-Version",
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimitMax,
		Expiration: time.Duration(cfg.RateLimitWindowMin) * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return utils.ErrorResponse(c, fiber.StatusTooManyRequests, "too many requests")
		},
	}))

	// Prometheus metrics
	prometheus := fiberprometheus.New("biblemap-api")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	meta := &handlers.MetaHandler{DB: db, Cfg: cfg, Started: time.Now()}
	app.Get("/health", meta.Health)

	// API routes under /api
	api := app.Group("/api")
	api.Use(middleware.Version())
	api.Get("/", meta.APIIndex)

	locationHandler := &handlers.LocationHandler{DB: db}
	api.Get("/locations", locationHandler.ListLocations)
	api.Get("/locations/map/geojson", locationHandler.GetLocationsGeoJSON)
	api.Get("/locations/:id", locationHandler.GetLocation)
	api.Post("/locations", locationHandler.CreateLocation)
	api.Put("/locations/:id", locationHandler.UpdateLocation)
	api.Delete("/locations/:id", locationHandler.DeleteLocation)

	personHandler := &handlers.PersonHandler{DB: db}
	api.Get("/persons", personHandler.ListPersons)
	api.Get("/persons/:id", personHandler.GetPerson)
	api.Get("/persons/:id/map-data", personHandler.GetPersonMapData)
	api.Get("/persons/:id/timeline", personHandler.GetPersonTimeline)
	api.Get("/persons/:id/timeline/detailed", personHandler.GetPersonDetailedTimeline)
	api.Get("/persons/:id/relationships/geo", personHandler.GetPersonRelationships)
	api.Post("/persons", personHandler.CreatePerson)
	api.Put("/persons/:id", personHandler.UpdatePerson)
	api.Delete("/persons/:id", personHandler.DeletePerson)

	eventHandler := &handlers.EventHandler{DB: db}
	api.Get("/events", eventHandler.ListEvents)
	api.Get("/events/timeline", eventHandler.GetEventsTimeline)
	api.Get("/events/:id", eventHandler.GetEvent)
	api.Post("/events", eventHandler.CreateEvent)
	api.Put("/events/:id", eventHandler.UpdateEvent)
	api.Delete("/events/:id", eventHandler.DeleteEvent)

	journeyHandler := &handlers.JourneyHandler{DB: db}
	api.Get("/journeys", journeyHandler.ListJourneys)
	api.Get("/journeys/map/paths", journeyHandler.GetJourneyPaths)
	api.Get("/journeys/:id", journeyHandler.GetJourney)
	api.Post("/journeys", journeyHandler.CreateJourney)
	api.Put("/journeys/:id", journeyHandler.UpdateJourney)
	api.Delete("/journeys/:id", journeyHandler.DeleteJourney)

	themeHandler := &handlers.ThemeHandler{DB: db}
	api.Get("/themes", themeHandler.ListThemes)
	api.Get("/themes/categories", themeHandler.GetThemeCategories)
	api.Get("/themes/:id", themeHandler.GetTheme)
	api.Post("/themes", themeHandler.CreateTheme)
	api.Put("/themes/:id", themeHandler.UpdateTheme)
	api.Delete("/themes/:id", themeHandler.DeleteTheme)

	searchHandler := &handlers.SearchHandler{DB: db}
	api.Get("/search", searchHandler.Search)
	api.Get("/search/suggestions", searchHandler.Suggestions)

	// 404 fallback
	app.Use(func(c *fiber.Ctx) error {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "resource not found")
	})

	return app
}

// errorHandler renders uncaught errors in the {error, status} envelope.
// Development mode additionally exposes the raw error as detail.
func errorHandler(cfg *config.Config) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := err.Error()

		var apiErr *types.APIError
		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &apiErr):
			code = apiErr.Status
			message = apiErr.Message
		case errors.As(err, &fiberErr):
			code = fiberErr.Code
			message = fiberErr.Message
		}

		if cfg.IsDevelopment() && code == fiber.StatusInternalServerError {
			return utils.ErrorResponseWithDetail(c, code, "internal server error", message)
		}
		return utils.ErrorResponse(c, code, message)
	}
}
