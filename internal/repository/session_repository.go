package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"emojiexplainer/internal/model"
)

// SessionRepository defines session persistence operations. Sessions are
// read-only in this service; records come from seeds and fixtures.
type SessionRepository interface {
	// CountActiveByUser counts sessions whose expiry is after now.
	CountActiveByUser(ctx context.Context, userID uint, now time.Time) (int64, error)
}

type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository builds a GORM-backed repository.
func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) CountActiveByUser(ctx context.Context, userID uint, now time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Session{}).
		Where("user_id = ? AND expires_at > ?", userID, now).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
