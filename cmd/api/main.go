package main

import (
	"fmt"
	"net/http"
	"os"

	"nestegg/internal/config"
	"nestegg/internal/database"
	"nestegg/internal/handlers"
	"nestegg/internal/logger"
	"nestegg/internal/middleware"
	"nestegg/internal/quotes"
	"nestegg/internal/services"
	"nestegg/internal/session"
	"nestegg/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "nestegg/internal/docs" // Import swagger docs
)

// @title           Nestegg API
// @version         1.0
// @description     Nestegg is an investments manager that lets owners track savings accounts, stocks, and bonds, and project their compound growth over time.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Session registry with an audit subscriber
	sessions := session.NewRegistry()
	events := sessions.Subscribe()
	defer sessions.Unsubscribe(events)
	go func() {
		for event := range events {
			log.Infow("session event",
				"type", event.Type,
				"owner_id", event.User.ID,
				"email", event.User.Email,
			)
		}
	}()

	// Initialize services
	db := dbManager.DB()
	identityService := services.NewIdentityService(db)
	authService := services.NewAuthService(db, identityService, sessions)
	investmentService := services.NewInvestmentService(db)
	quoteClient := quotes.NewClient(http.DefaultClient, appConfig.AlphaVantageKey)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	investmentHandler := handlers.NewInvestmentHandler(investmentService)
	quoteHandler := handlers.NewQuoteHandler(quoteClient)

	// Register custom binding validators
	validator.Register()

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	v1.GET("/symbols", quoteHandler.ListSymbols)

	// Session-optional routes. Their contracts treat an absent session as a
	// non-error: fetching the profile yields an absent owner, updating the
	// display name is a silent no-op, and logging out does nothing.
	optional := v1.Group("/")
	optional.Use(middleware.OptionalAuthMiddleware())
	optional.POST("/auth/logout", authHandler.Logout)
	optional.GET("/profile", authHandler.GetProfile)
	optional.PUT("/profile", authHandler.UpdateProfile)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// Investment routes
	investments := protected.Group("/investments")
	investments.POST("", investmentHandler.CreateInvestment)
	investments.GET("", investmentHandler.ListInvestments)
	investments.GET("/:id", investmentHandler.GetInvestment)
	investments.PUT("/:id", investmentHandler.UpdateInvestment)
	investments.DELETE("/:id", investmentHandler.DeleteInvestment)
	investments.GET("/:id/projection", investmentHandler.GetProjection)

	// Quote routes
	protected.GET("/quotes/:symbol/daily", quoteHandler.GetDailyCloses)

	log.Infof("Starting Nestegg backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
