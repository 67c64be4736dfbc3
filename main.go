package main

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"mealhub-api/config"
	"mealhub-api/gate"
	"mealhub-api/handlers"
	"mealhub-api/identity"
	"mealhub-api/payments"
	"mealhub-api/policy"
	"mealhub-api/routes"
)

func main() {
	_ = godotenv.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	gin.SetMode(cfg.GinMode)

	db, err := config.OpenDB(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open database")
	}
	logger.Info().Str("db", cfg.DBPath).Msg("database connected and migrated")

	verifier := identity.NewJWTVerifier(cfg.JWTSecret)
	resolver := identity.NewResolver(verifier, logger)
	evaluator := policy.NewEvaluator(db)
	arbiter := gate.New(resolver, evaluator)
	handlerSet := handlers.NewSet(db, payments.NewStripeProcessor(cfg.StripeSecretKey), cfg)

	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "MealHub Order Management API",
			"version": "1.0.0",
		})
	})

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to the MealHub API",
			"health":  "/health",
			"roles":   []string{"user", "chef", "admin"},
		})
	})

	routes.SetupRoutes(r, arbiter, handlerSet)

	logger.Info().Str("port", cfg.Port).Msg("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server exited")
	}
}
