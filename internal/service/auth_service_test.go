package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"emojiexplainer/internal/auth"
	apperrors "emojiexplainer/internal/errors"
	"emojiexplainer/internal/model"
)

func TestAuthService_Login(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("pw"), 10)

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository, *MockTokenStore)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "a@x.com",
			password: "pw",
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				mRepo.On("FindByEmail", mock.Anything, "a@x.com").Return(&model.User{
					ID:           42,
					Email:        "a@x.com",
					PasswordHash: string(hashed),
					Role:         model.RoleUser,
				}, nil)
				mToken.On("StoreRefreshToken", mock.Anything, mock.Anything, uint(42), "a@x.com", model.RoleUser, mock.Anything).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "user not found",
			email:    "missing@x.com",
			password: "pw",
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				mRepo.On("FindByEmail", mock.Anything, "missing@x.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "a@x.com",
			password: "not-the-password",
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				mRepo.On("FindByEmail", mock.Anything, "a@x.com").Return(&model.User{
					ID:           42,
					Email:        "a@x.com",
					PasswordHash: string(hashed),
					Role:         model.RoleUser,
				}, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			mockTokenStore := new(MockTokenStore)
			tt.setupMock(mockRepo, mockTokenStore)

			jwtService := auth.NewJWTService("test-secret")
			svc := NewAuthService(mockRepo, jwtService, mockTokenStore)

			accessToken, refreshToken, user, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, accessToken)
				assert.Empty(t, refreshToken)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, accessToken)
				assert.NotEmpty(t, refreshToken)
				assert.Equal(t, tt.email, user.Email)

				// The issued token decodes back to the stored identity.
				claims, err := jwtService.ValidateToken(accessToken)
				assert.NoError(t, err)
				assert.Equal(t, uint(42), claims.UserID)
				assert.Equal(t, model.RoleUser, claims.Role)
			}

			mockRepo.AssertExpectations(t)
			mockTokenStore.AssertExpectations(t)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	tokenID, refreshToken, err := jwtService.GenerateRefreshToken(7, "b@x.com", model.RoleAdmin)
	assert.NoError(t, err)

	mockTokenStore := new(MockTokenStore)
	mockTokenStore.On("GetRefreshToken", mock.Anything, tokenID).Return(uint(7), "b@x.com", model.RoleAdmin, nil)

	svc := NewAuthService(new(MockUserRepository), jwtService, mockTokenStore)
	accessToken, err := svc.RefreshToken(context.Background(), refreshToken)

	assert.NoError(t, err)
	claims, err := jwtService.ValidateToken(accessToken)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, model.RoleAdmin, claims.Role)
}

func TestAuthService_RefreshToken_Invalid(t *testing.T) {
	svc := NewAuthService(new(MockUserRepository), auth.NewJWTService("test-secret"), new(MockTokenStore))
	_, err := svc.RefreshToken(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestAuthService_Logout(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	tokenID, refreshToken, err := jwtService.GenerateRefreshToken(7, "b@x.com", model.RoleUser)
	assert.NoError(t, err)

	mockTokenStore := new(MockTokenStore)
	mockTokenStore.On("DeleteRefreshToken", mock.Anything, tokenID).Return(nil)

	svc := NewAuthService(new(MockUserRepository), jwtService, mockTokenStore)
	assert.NoError(t, svc.Logout(context.Background(), refreshToken))
	mockTokenStore.AssertExpectations(t)
}
