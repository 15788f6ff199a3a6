package repository

import (
	"context"

	"gorm.io/gorm"

	"emojiexplainer/internal/model"
)

// FeedbackRepository defines feedback persistence operations.
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *model.Feedback) error
	Update(ctx context.Context, feedback *model.Feedback) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Feedback, error)
	// ListPage returns a newest-first page of feedback with the submitting
	// user preloaded.
	ListPage(ctx context.Context, offset, limit int) ([]model.Feedback, error)
	Count(ctx context.Context) (int64, error)
	// ListByUser returns a user's feedback newest-first with the emoji preloaded.
	ListByUser(ctx context.Context, userID uint) ([]model.Feedback, error)
	CountByUser(ctx context.Context, userID uint) (int64, error)
}

type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository builds a GORM-backed repository.
func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *model.Feedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

func (r *feedbackRepository) Update(ctx context.Context, feedback *model.Feedback) error {
	return r.db.WithContext(ctx).Save(feedback).Error
}

func (r *feedbackRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Feedback{}, id).Error
}

func (r *feedbackRepository) FindByID(ctx context.Context, id uint) (*model.Feedback, error) {
	var feedback model.Feedback
	if err := r.db.WithContext(ctx).First(&feedback, id).Error; err != nil {
		return nil, err
	}
	return &feedback, nil
}

func (r *feedbackRepository) ListPage(ctx context.Context, offset, limit int) ([]model.Feedback, error) {
	var feedbacks []model.Feedback
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&feedbacks).Error
	if err != nil {
		return nil, err
	}
	return feedbacks, nil
}

func (r *feedbackRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Feedback{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *feedbackRepository) ListByUser(ctx context.Context, userID uint) ([]model.Feedback, error) {
	var feedbacks []model.Feedback
	err := r.db.WithContext(ctx).
		Preload("Emoji").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&feedbacks).Error
	if err != nil {
		return nil, err
	}
	return feedbacks, nil
}

func (r *feedbackRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Feedback{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
