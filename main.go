package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/olls-san/tecopos-helpcenter/api"
	"github.com/olls-san/tecopos-helpcenter/config"
	"github.com/olls-san/tecopos-helpcenter/database"
	"github.com/olls-san/tecopos-helpcenter/middleware"
	"github.com/olls-san/tecopos-helpcenter/repository"
	"github.com/olls-san/tecopos-helpcenter/services"
	"github.com/olls-san/tecopos-helpcenter/storage"
)

func main() {
	// Load .env if present; environment variables stay authoritative.
	if err := godotenv.Load(); err != nil {
		log.Println("INFO: [Main] No .env file found, relying on process environment.")
	}

	// Load application configuration
	config.LoadConfig()

	// Initialize database connection
	db, err := database.Init()
	if err != nil {
		log.Fatalf("FATAL: [Main] Failed to initialize database: %v", err)
	}

	// Ensure the schema exists and carries every column, additively.
	if err := database.Migrate(db); err != nil {
		log.Fatalf("FATAL: [Main] Failed to migrate database: %v", err)
	}

	// Initialize repositories and services
	articleRepo := repository.NewArticleRepository(db)
	articleService := services.NewArticleService(articleRepo)
	log.Println("INFO: [Main] Repositories and services initialized.")

	// Seed example articles on first boot (empty table only).
	if err := services.SeedInitialData(articleRepo); err != nil {
		log.Fatalf("FATAL: [Main] Failed to seed initial data: %v", err)
	}

	// Local file storage for uploaded images and videos
	fileStorage := storage.NewLocalStorage(config.AppConfig.Upload.Dir)

	// Initialize HTTP handler with all dependencies
	apiHandler := api.NewAPIHandler(articleService, fileStorage)
	log.Println("INFO: [Main] API Handler initialized.")

	// Create Gin engine
	r := gin.Default()
	r.SetTrustedProxies(nil)

	// Register middlewares
	r.Use(middleware.Logger()) // Custom logger middleware
	r.Use(middleware.Cors())   // CORS middleware
	log.Println("INFO: [Main] Middlewares registered.")

	// Templates and static assets
	r.LoadHTMLGlob("templates/*.html")
	r.Static("/static", "./static")
	r.Static("/uploads", config.AppConfig.Upload.Dir)

	// Register routes
	registerRoutes(r, apiHandler)
	log.Println("INFO: [Main] Routes registered.")

	// Start the server
	serverPort := ":" + config.AppConfig.Server.Port
	if config.AppConfig.Server.Port == "" {
		log.Println("WARN: [Main] Server port not configured, using default :8080.")
		serverPort = ":8080"
	}
	log.Printf("INFO: [Main] Starting server on port %s", serverPort)
	if err := r.Run(serverPort); err != nil {
		log.Fatalf("FATAL: [Main] Server failed to start: %v", err)
	}
}

func registerRoutes(r *gin.Engine, handler *api.APIHandler) {
	// Public pages
	r.GET("/", handler.HomeHandler)
	r.GET("/errors", handler.ErrorsListHandler)
	r.GET("/errors/:id", handler.ErrorDetailHandler)
	r.GET("/docs/:doc_type", handler.DocsByTypeHandler)
	r.GET("/categories", handler.CategoriesHandler)

	// Admin pages (no authentication; the panel is expected to live behind
	// network-level access control)
	adminGroup := r.Group("/admin")
	{
		adminGroup.GET("", handler.AdminPanelHandler)
		adminGroup.POST("/create", handler.AdminCreateHandler)
		adminGroup.POST("/delete/:id", handler.AdminDeleteHandler)
	}
}
