package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "emojiexplainer/internal/errors"
	"emojiexplainer/internal/model"
	"emojiexplainer/internal/repository"
)

const bcryptCost = 10

// UserDetails bundles a user with its feedback and active-session counts.
type UserDetails struct {
	User           *model.User
	FeedbacksCount int64
	SessionsCount  int64
}

// UserService exposes account operations.
type UserService interface {
	CreateUser(ctx context.Context, email, password string, role model.Role) (*model.User, error)
	UpdateUser(ctx context.Context, id uint, email, name string, role model.Role) (*model.User, error)
	// DeleteUser removes an account. The target must hold the ADMIN role;
	// deletion is unconditional once authorized.
	DeleteUser(ctx context.Context, id uint) error
	GetUserDetails(ctx context.Context, id uint) (*UserDetails, error)
}

type userService struct {
	userRepo     repository.UserRepository
	feedbackRepo repository.FeedbackRepository
	sessionRepo  repository.SessionRepository
	now          func() time.Time
}

// NewUserService builds a UserService.
func NewUserService(userRepo repository.UserRepository, feedbackRepo repository.FeedbackRepository, sessionRepo repository.SessionRepository) UserService {
	return &userService{
		userRepo:     userRepo,
		feedbackRepo: feedbackRepo,
		sessionRepo:  sessionRepo,
		now:          time.Now,
	}
}

func (s *userService) CreateUser(ctx context.Context, email, password string, role model.Role) (*model.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrUserAlreadyExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        email,
		PasswordHash: string(hashed),
		Role:         role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, id uint, email, name string, role model.Role) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	user.Email = email
	user.Name = name
	user.Role = role
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id uint) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	switch user.Role {
	case model.RoleAdmin:
		// authorized
	case model.RoleUser, model.RoleGuest:
		return apperrors.ErrUnauthorized
	default:
		return apperrors.ErrUnauthorized
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func (s *userService) GetUserDetails(ctx context.Context, id uint) (*UserDetails, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	feedbacks, err := s.feedbackRepo.CountByUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("count feedbacks: %w", err)
	}

	sessions, err := s.sessionRepo.CountActiveByUser(ctx, id, s.now())
	if err != nil {
		return nil, fmt.Errorf("count sessions: %w", err)
	}

	return &UserDetails{
		User:           user,
		FeedbacksCount: feedbacks,
		SessionsCount:  sessions,
	}, nil
}
