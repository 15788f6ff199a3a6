package main

import (
	"context"
	"net/http"
	"os"
	"time"

	_ "emojiexplainer/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"emojiexplainer/internal/auth"
	"emojiexplainer/internal/cache"
	"emojiexplainer/internal/config"
	"emojiexplainer/internal/db"
	"emojiexplainer/internal/handler"
	"emojiexplainer/internal/model"
	"emojiexplainer/internal/provider"
	"emojiexplainer/internal/repository"
	"emojiexplainer/internal/router"
	"emojiexplainer/internal/service"
	"emojiexplainer/pkg/logger"
)

// @title Emoji Explainer API
// @version 1.0
// @description Emoji explanation API with user accounts, feedback, and JWT authentication.
// @host localhost:8080
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.LogLevel, cfg.Env == "development")

	e := echo.New()
	e.HideBanner = true

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Warn().Msg("RESET_DB=true detected, dropping all tables")
		tables := []interface{}{
			&model.Feedback{},
			&model.Session{},
			&model.Emoji{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Warn().Err(err).Msg("failed to drop table (may not exist)")
			}
		}
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Emoji{},
		&model.Feedback{},
		&model.Session{},
	); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	cacheClient := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	groqClient := provider.NewClient(cfg.Groq.BaseURL, cfg.Groq.APIKey, time.Duration(cfg.Groq.Timeout)*time.Second)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	emojiRepo := repository.NewEmojiRepository(gormDB)
	feedbackRepo := repository.NewFeedbackRepository(gormDB)
	sessionRepo := repository.NewSessionRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	userService := service.NewUserService(userRepo, feedbackRepo, sessionRepo)
	emojiService := service.NewEmojiService(emojiRepo, groqClient, cacheClient)
	feedbackService := service.NewFeedbackService(feedbackRepo, userRepo, emojiRepo)
	seedService := service.NewSeedService(emojiRepo)

	// Initialize handlers
	statusHandler := handler.NewStatusHandler(groqClient)
	userHandler := handler.NewUserHandler(userService)
	authHandler := handler.NewAuthHandler(authService)
	emojiHandler := handler.NewEmojiHandler(emojiService)
	feedbackHandler := handler.NewFeedbackHandler(feedbackService)
	seedHandler := handler.NewSeedHandler(seedService)

	// Register routes
	router.Register(
		e,
		cfg,
		log,
		statusHandler,
		userHandler,
		authHandler,
		emojiHandler,
		feedbackHandler,
		seedHandler,
	)

	addr := ":" + cfg.ServerPort
	log.Info().Str("addr", addr).Msg("starting server")
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server start")
	}
}
