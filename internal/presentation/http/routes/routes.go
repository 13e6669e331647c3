package routes

import (
	"time"

	"github.com/deepshiftai/invoicer-api/internal/config"
	"github.com/deepshiftai/invoicer-api/internal/presentation/http/handler"
	"github.com/deepshiftai/invoicer-api/internal/presentation/http/middleware"
	"github.com/deepshiftai/invoicer-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth         *handler.AuthHandler
	Document     *handler.DocumentHandler
	Dashboard    *handler.DashboardHandler
	Verification *handler.VerificationHandler
	Reminder     *handler.ReminderHandler
	Export       *handler.ExportHandler
	Branding     *handler.BrandingHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)
		registerVerificationRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-client rate limiter
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}
}

func registerVerificationRoutes(v1 *gin.RouterGroup, h *Handlers) {
	// Public so that anyone scanning a printed QR code can verify a document.
	v1.GET("/verify/:id", h.Verification.Verify)
	v1.POST("/verify/scan", h.Verification.Scan)
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Profile
	protected.GET("/profile", h.Auth.GetProfile)

	// Dashboard
	protected.GET("/dashboard", h.Dashboard.GetMetrics)

	// Documents
	documents := protected.Group("/documents")
	{
		documents.GET("", h.Document.List)
		documents.GET("/new", h.Document.New)
		documents.POST("/draft", h.Document.SaveDraft)
		documents.POST("/finalize", h.Document.Finalize)
		documents.GET("/:id", h.Document.Get)
		documents.DELETE("/:id", h.Document.Delete)
		documents.POST("/:id/pay", h.Document.MarkPaid)
		documents.GET("/:id/qrcode", h.Verification.QRCode)
		documents.GET("/:id/pdf", h.Export.PDF)
		documents.POST("/:id/reminder", h.Reminder.Generate)
		documents.POST("/:id/reminder/send", h.Reminder.Send)
	}

	// Branding assets
	branding := protected.Group("/branding")
	{
		branding.GET("/signature", h.Branding.GetSignature)
		branding.PUT("/signature", h.Branding.SetSignature)
		branding.DELETE("/signature", h.Branding.DeleteSignature)
		branding.GET("/logo", h.Branding.GetLogo)
		branding.PUT("/logo", h.Branding.SetLogo)
		branding.DELETE("/logo", h.Branding.DeleteLogo)
	}
}
