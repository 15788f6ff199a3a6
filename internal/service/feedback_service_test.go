package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "emojiexplainer/internal/errors"
	"emojiexplainer/internal/model"
)

func TestFeedbackService_Submit(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(*MockFeedbackRepository, *MockUserRepository, *MockEmojiRepository)
		expectedError error
	}{
		{
			name: "successful submission",
			setupMock: func(mF *MockFeedbackRepository, mU *MockUserRepository, mE *MockEmojiRepository) {
				mU.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1}, nil)
				mE.On("FindByID", mock.Anything, uint(2)).Return(&model.Emoji{ID: 2}, nil)
				mF.On("Create", mock.Anything, mock.MatchedBy(func(f *model.Feedback) bool {
					return f.UserID == 1 && f.EmojiID == 2 && f.Content == "nice"
				})).Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "user missing",
			setupMock: func(mF *MockFeedbackRepository, mU *MockUserRepository, mE *MockEmojiRepository) {
				mU.On("FindByID", mock.Anything, uint(1)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrUserNotFound,
		},
		{
			name: "emoji missing",
			setupMock: func(mF *MockFeedbackRepository, mU *MockUserRepository, mE *MockEmojiRepository) {
				mU.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1}, nil)
				mE.On("FindByID", mock.Anything, uint(2)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrEmojiNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockFeedbackRepo := new(MockFeedbackRepository)
			mockUserRepo := new(MockUserRepository)
			mockEmojiRepo := new(MockEmojiRepository)
			tt.setupMock(mockFeedbackRepo, mockUserRepo, mockEmojiRepo)

			svc := NewFeedbackService(mockFeedbackRepo, mockUserRepo, mockEmojiRepo)
			feedback, err := svc.Submit(context.Background(), 1, 2, "nice")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, feedback)
				mockFeedbackRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "nice", feedback.Content)
			}
			mockFeedbackRepo.AssertExpectations(t)
		})
	}
}

func TestFeedbackService_FetchPage_CeilTotalPages(t *testing.T) {
	tests := []struct {
		name       string
		total      int64
		limit      int
		page       int
		wantOffset int
		wantPages  int
	}{
		{name: "exact fit", total: 20, limit: 10, page: 1, wantOffset: 0, wantPages: 2},
		{name: "remainder adds a page", total: 25, limit: 10, page: 2, wantOffset: 10, wantPages: 3},
		{name: "single partial page", total: 3, limit: 10, page: 1, wantOffset: 0, wantPages: 1},
		{name: "empty table", total: 0, limit: 10, page: 1, wantOffset: 0, wantPages: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockFeedbackRepo := new(MockFeedbackRepository)
			mockFeedbackRepo.On("ListPage", mock.Anything, tt.wantOffset, tt.limit).Return([]model.Feedback{}, nil)
			mockFeedbackRepo.On("Count", mock.Anything).Return(tt.total, nil)

			svc := NewFeedbackService(mockFeedbackRepo, new(MockUserRepository), new(MockEmojiRepository))
			result, err := svc.FetchPage(context.Background(), tt.page, tt.limit)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantPages, result.TotalPages)
			assert.Equal(t, tt.page, result.CurrentPage)
			mockFeedbackRepo.AssertExpectations(t)
		})
	}
}

func TestFeedbackService_FetchPage_JoinsUserEmail(t *testing.T) {
	mockFeedbackRepo := new(MockFeedbackRepository)
	mockFeedbackRepo.On("ListPage", mock.Anything, 0, 10).Return([]model.Feedback{
		{
			ID:        1,
			Content:   "nice",
			CreatedAt: time.Now(),
			User:      model.User{Email: "a@x.com"},
		},
	}, nil)
	mockFeedbackRepo.On("Count", mock.Anything).Return(int64(1), nil)

	svc := NewFeedbackService(mockFeedbackRepo, new(MockUserRepository), new(MockEmojiRepository))
	result, err := svc.FetchPage(context.Background(), 1, 10)

	assert.NoError(t, err)
	assert.Len(t, result.Feedbacks, 1)
	assert.Equal(t, "a@x.com", result.Feedbacks[0].User.Email)
}

func TestFeedbackService_UpdateContent(t *testing.T) {
	mockFeedbackRepo := new(MockFeedbackRepository)
	existing := &model.Feedback{ID: 4, Content: "old"}
	mockFeedbackRepo.On("FindByID", mock.Anything, uint(4)).Return(existing, nil)
	mockFeedbackRepo.On("Update", mock.Anything, mock.MatchedBy(func(f *model.Feedback) bool {
		return f.ID == 4 && f.Content == "new"
	})).Return(nil)

	svc := NewFeedbackService(mockFeedbackRepo, new(MockUserRepository), new(MockEmojiRepository))
	feedback, err := svc.UpdateContent(context.Background(), 4, "new")

	assert.NoError(t, err)
	assert.Equal(t, "new", feedback.Content)
	mockFeedbackRepo.AssertExpectations(t)
}

func TestFeedbackService_UpdateContent_NotFound(t *testing.T) {
	mockFeedbackRepo := new(MockFeedbackRepository)
	mockFeedbackRepo.On("FindByID", mock.Anything, uint(404)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewFeedbackService(mockFeedbackRepo, new(MockUserRepository), new(MockEmojiRepository))
	_, err := svc.UpdateContent(context.Background(), 404, "new")

	assert.ErrorIs(t, err, apperrors.ErrFeedbackNotFound)
}

func TestFeedbackService_Delete(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(*MockFeedbackRepository)
		expectedError error
	}{
		{
			name: "unreviewed feedback is deleted",
			setupMock: func(m *MockFeedbackRepository) {
				m.On("FindByID", mock.Anything, uint(6)).Return(&model.Feedback{ID: 6, Reviewed: false}, nil)
				m.On("Delete", mock.Anything, uint(6)).Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "reviewed feedback is terminal",
			setupMock: func(m *MockFeedbackRepository) {
				m.On("FindByID", mock.Anything, uint(6)).Return(&model.Feedback{ID: 6, Reviewed: true}, nil)
			},
			expectedError: apperrors.ErrAlreadyReviewed,
		},
		{
			name: "missing feedback",
			setupMock: func(m *MockFeedbackRepository) {
				m.On("FindByID", mock.Anything, uint(6)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrFeedbackNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockFeedbackRepo := new(MockFeedbackRepository)
			tt.setupMock(mockFeedbackRepo)

			svc := NewFeedbackService(mockFeedbackRepo, new(MockUserRepository), new(MockEmojiRepository))
			err := svc.Delete(context.Background(), 6)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				mockFeedbackRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
			}
			mockFeedbackRepo.AssertExpectations(t)
		})
	}
}

func TestFeedbackService_History(t *testing.T) {
	mockFeedbackRepo := new(MockFeedbackRepository)
	mockFeedbackRepo.On("ListByUser", mock.Anything, uint(9)).Return([]model.Feedback{
		{ID: 2, Emoji: model.Emoji{Character: "🔥", Meaning: "fire"}},
		{ID: 1, Emoji: model.Emoji{Character: "😀", Meaning: "grinning face"}},
	}, nil)

	svc := NewFeedbackService(mockFeedbackRepo, new(MockUserRepository), new(MockEmojiRepository))
	feedbacks, err := svc.History(context.Background(), 9)

	assert.NoError(t, err)
	assert.Len(t, feedbacks, 2)
	assert.Equal(t, "🔥", feedbacks[0].Emoji.Character)
}
