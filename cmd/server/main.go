package main

import (
	"log"
	"time"

	"acta_flow_app_go/config"
	"acta_flow_app_go/db"
	"acta_flow_app_go/handlers"
	"acta_flow_app_go/middleware"
	"acta_flow_app_go/models"
	"acta_flow_app_go/services"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	if err := db.Initialize(cfg.DBPath, cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations
	err := db.AutoMigrate(
		&models.User{},
		&models.UserRole{},
		&models.Tenant{},
		&models.TenantUser{},
		&models.Session{},
		&models.Provincia{},
		&models.Municipio{},
		&models.Sector{},
		&models.Notario{},
		&models.DocumentTemplate{},
		&models.GeneratedDocument{},
		&models.Audiencia{},
		&models.Plazo{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed reference data
	if err := services.SeedGeography(db.DB); err != nil {
		log.Fatalf("Failed to seed geography: %v", err)
	}
	if err := services.SeedDocumentTemplates(db.DB); err != nil {
		log.Fatalf("Failed to seed document templates: %v", err)
	}
	if cfg.Environment == "development" {
		if err := services.SeedDemoData(db.DB); err != nil {
			log.Printf("[WARNING] Failed to seed demo data: %v", err)
		}
	}

	// Initialize object storage (R2 or local fallback)
	services.InitializeStorage(cfg)

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})

	// Public routes (no authentication required)
	e.POST("/api/auth/login", handlers.LoginHandler, middleware.LoginRateLimiter.Middleware())
	e.POST("/api/auth/logout", handlers.LogoutHandler)

	// Authenticated routes
	api := e.Group("/api")
	api.Use(middleware.RequireAuth())
	{
		api.GET("/me", handlers.MeHandler)
		api.GET("/permissions", handlers.GetPermissionsHandler)

		// Reference data, available to any authenticated user
		api.GET("/geography/provincias", handlers.GetProvinciasHandler)
		api.GET("/geography/municipios", handlers.GetMunicipiosHandler)
		api.GET("/geography/sectores", handlers.GetSectoresHandler)

		api.GET("/actos", handlers.ListActosHandler)
		api.GET("/actos/materias", handlers.GetMateriasHandler)
		api.GET("/actos/:slug", handlers.GetActoHandler)
		api.GET("/actos/:slug/fields", handlers.GetActoFieldsHandler)

		api.GET("/notarios", handlers.ListNotariosHandler)
		api.GET("/notarios/import/template", handlers.NotarioImportTemplateHandler)
		api.GET("/notarios/:id", handlers.GetNotarioHandler)

		// Tenant-scoped routes
		tenantRoutes := api.Group("")
		tenantRoutes.Use(middleware.RequireTenant())
		{
			tenantRoutes.GET("/tenant", handlers.GetTenantHandler)
			tenantRoutes.GET("/templates", handlers.ListTemplatesHandler)
			tenantRoutes.GET("/templates/:slug", handlers.GetTemplateHandler)

			tenantRoutes.GET("/audiencias", handlers.ListAudienciasHandler)
			tenantRoutes.POST("/audiencias", handlers.CreateAudienciaHandler)
			tenantRoutes.PATCH("/audiencias/:id/status", handlers.UpdateAudienciaStatusHandler)
			tenantRoutes.DELETE("/audiencias/:id", handlers.DeleteAudienciaHandler)

			tenantRoutes.GET("/plazos", handlers.ListPlazosHandler)
			tenantRoutes.POST("/plazos", handlers.CreatePlazoHandler)
			tenantRoutes.DELETE("/plazos/:id", handlers.DeletePlazoHandler)

			// Document generation, gated by permission and rate limited
			generation := tenantRoutes.Group("")
			generation.Use(middleware.RequirePermission(services.PermissionGenerateLegalActs))
			{
				generation.POST("/actos/:slug/render", handlers.RenderActoHandler)
				generation.POST("/actos/:slug/pdf", handlers.GenerateActoPDFHandler, middleware.PDFRateLimiter.Middleware())
			}

			// Notary directory management, enterprise only
			notarial := tenantRoutes.Group("")
			notarial.Use(middleware.RequirePermission(services.PermissionNotarialActs))
			{
				notarial.POST("/notarios/import", handlers.ImportNotariosHandler)
			}
		}
	}

	// Start background cleanup jobs (runs every hour)
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			if err := services.CleanupExpiredSessions(db.DB); err != nil {
				log.Printf("Error cleaning up expired sessions: %v", err)
			}
		}
	}()

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
