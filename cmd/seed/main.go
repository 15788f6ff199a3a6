package main

import (
	"context"
	"errors"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"emojiexplainer/internal/config"
	"emojiexplainer/internal/db"
	"emojiexplainer/internal/model"
	"emojiexplainer/internal/repository"
	"emojiexplainer/internal/service"
	"emojiexplainer/pkg/logger"
)

const (
	adminEmail    = "admin@example.com"
	adminPassword = "ADMIN_PASSWORD" // env var holding the seed admin password
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}
	log := logger.New(cfg.LogLevel, true)
	log.Info().Msg("starting seed script")

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Emoji{},
		&model.Feedback{},
		&model.Session{},
	); err != nil {
		log.Fatal().Err(err).Msg("run migrations")
	}

	emojiRepo := repository.NewEmojiRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)

	created, err := service.NewSeedService(emojiRepo).SeedEmojis(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("seed emojis")
	}
	log.Info().Int("created", created).Msg("emoji seed completed")

	admin, err := seedAdmin(ctx, userRepo)
	if err != nil {
		log.Fatal().Err(err).Msg("seed admin user")
	}

	// One active session fixture so active-session counts have data to
	// count; nothing in the service itself creates sessions.
	if admin != nil {
		session := model.Session{
			UserID:    admin.ID,
			ExpiresAt: time.Now().Add(24 * time.Hour),
		}
		if err := gormDB.WithContext(ctx).Create(&session).Error; err != nil {
			log.Fatal().Err(err).Msg("seed session fixture")
		}
		log.Info().Uint("user_id", admin.ID).Msg("admin user and session seeded")
	}

	log.Info().Msg("seed completed successfully")
}

// seedAdmin creates the default admin account if it is missing. Returns nil
// when the account already exists.
func seedAdmin(ctx context.Context, repo repository.UserRepository) (*model.User, error) {
	if _, err := repo.FindByEmail(ctx, adminEmail); err == nil {
		return nil, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	password := os.Getenv(adminPassword)
	if password == "" {
		password = "admin123"
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return nil, err
	}

	admin := &model.User{
		Email:        adminEmail,
		PasswordHash: string(hashed),
		Name:         "Administrator",
		Role:         model.RoleAdmin,
	}
	if err := repo.Create(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}
