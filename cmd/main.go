package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	"github.com/nazmulhossain17/multi-vendor-ecommerce-api/internal/config"
	"github.com/nazmulhossain17/multi-vendor-ecommerce-api/internal/handler"
	"github.com/nazmulhossain17/multi-vendor-ecommerce-api/internal/handler/middleware"
	"github.com/nazmulhossain17/multi-vendor-ecommerce-api/internal/migrations"
	"github.com/nazmulhossain17/multi-vendor-ecommerce-api/internal/repository/postgres"
	"github.com/nazmulhossain17/multi-vendor-ecommerce-api/internal/service"
	appjwt "github.com/nazmulhossain17/multi-vendor-ecommerce-api/pkg/jwt"
	"github.com/nazmulhossain17/multi-vendor-ecommerce-api/pkg/ratelimit"
	"github.com/nazmulhossain17/multi-vendor-ecommerce-api/pkg/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database connection: %v", err)
		}
	}()
	log.Println("Database connection established")

	if err := runMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations applied")

	redisClient, err := initRedis(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Redis: %v", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Printf("Error closing Redis connection: %v", err)
		}
	}()
	log.Println("Redis connection established")

	validate := validator.New()

	userRepo := postgres.NewUserRepository(db)

	tokenService := appjwt.NewTokenService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
		cfg.JWT.Issuer,
	)

	loginLimiter := ratelimit.NewLoginLimiter(redisClient, cfg.Auth.MaxFailedLogins, cfg.Auth.AttemptWindow)

	authService := service.NewAuthService(userRepo, tokenService, loginLimiter, cfg)
	userService := service.NewUserService(userRepo, cfg)

	cookies := handler.NewCookieManager(cfg)
	authHandler := handler.NewAuthHandler(authService, cookies, validate)
	userHandler := handler.NewUserHandler(userService, validate)
	healthHandler := handler.NewHealthHandler()

	app := fiber.New(fiber.Config{
		AppName:      "Multi Vendor Ecommerce API v1.0",
		ErrorHandler: customErrorHandler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	})

	app.Use(middleware.RecoveryMiddleware())
	app.Use(middleware.LoggerMiddleware())
	app.Use(middleware.CORSMiddleware(cfg))

	authMiddleware := middleware.AuthMiddleware(tokenService)
	requireAdmin := middleware.RequireAdmin()

	handler.SetupRoutes(app, authHandler, userHandler, healthHandler, authMiddleware, requireAdmin)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		log.Printf("Server starting on http://localhost%s", addr)
		log.Printf("Environment: %s", cfg.Server.Environment)
		if err := app.Listen(addr); err != nil {
			log.Printf("Server failed to start: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down server gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}

// initDB connects to PostgreSQL with a retry loop
func initDB(cfg *config.Config) (*sqlx.DB, error) {
	dsn := cfg.Database.DSN()

	var db *sqlx.DB
	var err error

	maxRetries := 5
	retryInterval := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = sqlx.Connect("postgres", dsn)
		if err == nil {
			break
		}

		log.Printf("Failed to connect to database (attempt %d/%d): %v", i+1, maxRetries, err)
		if i < maxRetries-1 {
			time.Sleep(retryInterval)
		}
	}

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			log.Printf("Error closing database after ping failure: %v", closeErr)
		}
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

func runMigrations(db *sqlx.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db.DB, ".")
}

// initRedis connects to Redis and verifies the connection
func initRedis(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		if closeErr := client.Close(); closeErr != nil {
			log.Printf("Error closing Redis after ping failure: %v", closeErr)
		}
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	return client, nil
}

// customErrorHandler handles Fiber errors
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	log.Printf("Error handling request [%s %s]: %v", c.Method(), c.Path(), err)

	return c.Status(code).JSON(fiber.Map{
		"error": message,
	})
}
