package main

import (
	"context"

	"github.com/deepshiftai/invoicer-api/internal/application/service"
	"github.com/deepshiftai/invoicer-api/internal/config"
	"github.com/deepshiftai/invoicer-api/internal/infrastructure/database"
	"github.com/deepshiftai/invoicer-api/internal/infrastructure/registry"
	"github.com/deepshiftai/invoicer-api/internal/infrastructure/repository"
	"github.com/deepshiftai/invoicer-api/internal/logger"
	"github.com/deepshiftai/invoicer-api/internal/presentation/http/handler"
	"github.com/deepshiftai/invoicer-api/internal/presentation/http/routes"
	"github.com/deepshiftai/invoicer-api/pkg/email"
	"github.com/deepshiftai/invoicer-api/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logger.Setup(cfg.Log.Level, cfg.Log.Format)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	if err := database.SeedAdminUser(db); err != nil {
		log.Warn().Err(err).Msg("Failed to seed admin user")
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	kvStore := repository.NewKVRepository(db)

	// Hydrate the document registry from storage
	documentRegistry, err := registry.NewDocumentRegistry(context.Background(), kvStore)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load document registry")
	}

	// Initialize email service
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUsername,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromName:     cfg.Email.FromName,
		FromEmail:    cfg.Email.FromEmail,
	})

	// Initialize services
	openaiClient := openai.NewClient(cfg.OpenAI.APIKey)
	brandingService := service.NewBrandingService(kvStore)
	documentService := service.NewDocumentService(documentRegistry, brandingService)
	dashboardService := service.NewDashboardService(documentRegistry)
	verificationService := service.NewVerificationService(documentRegistry, cfg.Company.VerifyBaseURL)
	reminderService := service.NewReminderService(documentRegistry, openaiClient, cfg.OpenAI.Model, emailService, cfg.Company)
	exportService := service.NewExportService(verificationService, cfg.Company)
	authService := service.NewAuthService(userRepo, jwtManager)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:         handler.NewAuthHandler(authService),
		Document:     handler.NewDocumentHandler(documentService),
		Dashboard:    handler.NewDashboardHandler(dashboardService),
		Verification: handler.NewVerificationHandler(verificationService, documentService),
		Reminder:     handler.NewReminderHandler(reminderService),
		Export:       handler.NewExportHandler(exportService, documentService),
		Branding:     handler.NewBrandingHandler(brandingService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Info().
		Str("service", cfg.App.Name).
		Str("env", cfg.App.Env).
		Str("port", port).
		Msg("Starting server")

	if err := router.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
