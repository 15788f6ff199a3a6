package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "emojiexplainer/internal/errors"
	"emojiexplainer/internal/model"
	"emojiexplainer/internal/repository"
)

// FeedbackPage is one newest-first page of feedback with pagination totals.
type FeedbackPage struct {
	Feedbacks   []model.Feedback
	TotalPages  int
	CurrentPage int
}

// FeedbackService exposes feedback operations.
type FeedbackService interface {
	Submit(ctx context.Context, userID, emojiID uint, content string) (*model.Feedback, error)
	FetchPage(ctx context.Context, page, limit int) (*FeedbackPage, error)
	UpdateContent(ctx context.Context, id uint, content string) (*model.Feedback, error)
	// Delete removes a feedback entry. Reviewed entries are terminal and
	// cannot be deleted.
	Delete(ctx context.Context, id uint) error
	// History lists a user's feedback newest-first with emoji preloaded.
	History(ctx context.Context, userID uint) ([]model.Feedback, error)
}

type feedbackService struct {
	feedbackRepo repository.FeedbackRepository
	userRepo     repository.UserRepository
	emojiRepo    repository.EmojiRepository
}

// NewFeedbackService builds a FeedbackService.
func NewFeedbackService(feedbackRepo repository.FeedbackRepository, userRepo repository.UserRepository, emojiRepo repository.EmojiRepository) FeedbackService {
	return &feedbackService{
		feedbackRepo: feedbackRepo,
		userRepo:     userRepo,
		emojiRepo:    emojiRepo,
	}
}

func (s *feedbackService) Submit(ctx context.Context, userID, emojiID uint, content string) (*model.Feedback, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if _, err := s.emojiRepo.FindByID(ctx, emojiID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmojiNotFound
		}
		return nil, fmt.Errorf("find emoji: %w", err)
	}

	feedback := &model.Feedback{
		UserID:  userID,
		EmojiID: emojiID,
		Content: content,
	}
	if err := s.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, fmt.Errorf("create feedback: %w", err)
	}
	return feedback, nil
}

func (s *feedbackService) FetchPage(ctx context.Context, page, limit int) (*FeedbackPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	offset := (page - 1) * limit
	feedbacks, err := s.feedbackRepo.ListPage(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}

	total, err := s.feedbackRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count feedback: %w", err)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &FeedbackPage{
		Feedbacks:   feedbacks,
		TotalPages:  totalPages,
		CurrentPage: page,
	}, nil
}

func (s *feedbackService) UpdateContent(ctx context.Context, id uint, content string) (*model.Feedback, error) {
	feedback, err := s.feedbackRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFeedbackNotFound
		}
		return nil, fmt.Errorf("find feedback: %w", err)
	}

	feedback.Content = content
	if err := s.feedbackRepo.Update(ctx, feedback); err != nil {
		return nil, fmt.Errorf("update feedback: %w", err)
	}
	return feedback, nil
}

func (s *feedbackService) Delete(ctx context.Context, id uint) error {
	feedback, err := s.feedbackRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrFeedbackNotFound
		}
		return fmt.Errorf("find feedback: %w", err)
	}

	if feedback.Reviewed {
		return apperrors.ErrAlreadyReviewed
	}

	if err := s.feedbackRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete feedback: %w", err)
	}
	return nil
}

func (s *feedbackService) History(ctx context.Context, userID uint) ([]model.Feedback, error) {
	return s.feedbackRepo.ListByUser(ctx, userID)
}
