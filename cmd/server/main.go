package main

import (
	"context" // context package is needed for Redis operations
	"log"     // log package is needed for logging
	"time"    // Access token lifetime

	"finance_tracker/internal/api"        // Custom package for API handlers
	"finance_tracker/internal/config"     // Custom package for configuration
	"finance_tracker/internal/middleware" // Custom package for middleware
	"finance_tracker/internal/token"      // Custom package for token issuance

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Setup Data Source Name (DSN) and connect to the database
	dsn := cfg.DBUser + ":" + cfg.DBPassword + "@tcp(" + cfg.DBHost + ":" + cfg.DBPort + ")/" + cfg.DBName + "?parseTime=true"
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Token service: secret, algorithm and lifetime all come from config
	tokens, err := token.NewService(cfg.JWTSecret, cfg.JWTAlgorithm, time.Duration(cfg.AccessTokenTTL)*time.Minute)
	if err != nil {
		logrus.Fatalf("failed to build token service: %v", err)
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	_, err = redisClient.Ping(context.Background()).Result()
	if err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Auth routes (these produce tokens, no gateway in front)
	authGroup := r.Group("/auth")
	authGroup.POST("/signup", api.SignupHandler(db))           // Registration endpoint
	authGroup.POST("/login", api.LoginHandler(db, tokens))     // Login endpoint
	authGroup.POST("/refresh", api.RefreshHandler(db, tokens)) // Access token refresh endpoint

	// User routes
	userGroup := r.Group("/users")
	userGroup.GET("", api.ListUsersHandler(db))         // List users endpoint
	userGroup.GET("/:id", api.GetUserHandler(db))       // Get user endpoint
	userGroup.POST("", api.CreateUserHandler(db))       // Create user endpoint
	userGroup.PUT("/:id", api.UpdateUserHandler(db))    // Update user endpoint
	userGroup.DELETE("/:id", api.DeleteUserHandler(db)) // Delete user endpoint

	// Category routes
	categoryGroup := r.Group("/categories")
	categoryGroup.GET("", api.ListCategoriesHandler(db))        // List categories endpoint
	categoryGroup.GET("/:id", api.GetCategoryHandler(db))       // Get category endpoint
	categoryGroup.POST("", api.CreateCategoryHandler(db))       // Create category endpoint
	categoryGroup.PUT("/:id", api.UpdateCategoryHandler(db))    // Update category endpoint
	categoryGroup.DELETE("/:id", api.DeleteCategoryHandler(db)) // Delete category endpoint

	// Transaction routes (protected, scoped to the resolved user)
	transactionGroup := r.Group("/transactions")
	transactionGroup.Use(middleware.AuthMiddleware(tokens, db))
	transactionGroup.GET("", api.ListTransactionsHandler(db, redisClient))         // List transactions endpoint
	transactionGroup.GET("/:id", api.GetTransactionHandler(db))                    // Get transaction endpoint
	transactionGroup.POST("", api.CreateTransactionHandler(db, redisClient))       // Create transaction endpoint
	transactionGroup.PUT("/:id", api.UpdateTransactionHandler(db, redisClient))    // Update transaction endpoint
	transactionGroup.DELETE("/:id", api.DeleteTransactionHandler(db, redisClient)) // Delete transaction endpoint

	// Budget routes (protected, scoped to the resolved user)
	budgetGroup := r.Group("/budgets")
	budgetGroup.Use(middleware.AuthMiddleware(tokens, db))
	budgetGroup.GET("", api.ListBudgetsHandler(db))         // List budgets endpoint
	budgetGroup.GET("/:id", api.GetBudgetHandler(db))       // Get budget endpoint
	budgetGroup.POST("", api.CreateBudgetHandler(db))       // Create budget endpoint
	budgetGroup.PUT("/:id", api.UpdateBudgetHandler(db))    // Update budget endpoint
	budgetGroup.DELETE("/:id", api.DeleteBudgetHandler(db)) // Delete budget endpoint

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
