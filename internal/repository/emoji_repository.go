package repository

import (
	"context"

	"gorm.io/gorm"

	"emojiexplainer/internal/model"
)

// EmojiRepository defines emoji persistence operations. Emoji records are
// write-once: there is no update or delete path.
type EmojiRepository interface {
	Create(ctx context.Context, emoji *model.Emoji) error
	FindByID(ctx context.Context, id uint) (*model.Emoji, error)
	FindByCharacter(ctx context.Context, character string) (*model.Emoji, error)
	List(ctx context.Context) ([]model.Emoji, error)
}

type emojiRepository struct {
	db *gorm.DB
}

// NewEmojiRepository builds a GORM-backed repository.
func NewEmojiRepository(db *gorm.DB) EmojiRepository {
	return &emojiRepository{db: db}
}

func (r *emojiRepository) Create(ctx context.Context, emoji *model.Emoji) error {
	return r.db.WithContext(ctx).Create(emoji).Error
}

func (r *emojiRepository) FindByID(ctx context.Context, id uint) (*model.Emoji, error) {
	var emoji model.Emoji
	if err := r.db.WithContext(ctx).First(&emoji, id).Error; err != nil {
		return nil, err
	}
	return &emoji, nil
}

func (r *emojiRepository) FindByCharacter(ctx context.Context, character string) (*model.Emoji, error) {
	var emoji model.Emoji
	if err := r.db.WithContext(ctx).Where("`character` = ?", character).First(&emoji).Error; err != nil {
		return nil, err
	}
	return &emoji, nil
}

func (r *emojiRepository) List(ctx context.Context) ([]model.Emoji, error) {
	var emojis []model.Emoji
	if err := r.db.WithContext(ctx).Order("id").Find(&emojis).Error; err != nil {
		return nil, err
	}
	return emojis, nil
}
