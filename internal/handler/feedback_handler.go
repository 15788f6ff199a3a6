package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"

	"emojiexplainer/internal/auth"
	"emojiexplainer/internal/errors"
	"emojiexplainer/internal/service"
)

// FeedbackHandler handles feedback endpoints.
type FeedbackHandler struct {
	feedbackService service.FeedbackService
}

// NewFeedbackHandler creates a new feedback handler.
func NewFeedbackHandler(feedbackService service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

// SubmitFeedbackRequest represents a feedback submission.
type SubmitFeedbackRequest struct {
	UserID  uint   `json:"userId" validate:"required"`
	EmojiID uint   `json:"emojiId" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// FeedbackResultResponse confirms a feedback mutation.
type FeedbackResultResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// FeedbackDetail is one feedback entry joined with the submitter's email.
type FeedbackDetail struct {
	ID        uint      `json:"id"`
	Content   string    `json:"content"`
	UserEmail string    `json:"userEmail"`
	CreatedAt time.Time `json:"createdAt"`
}

// FeedbackPageResponse is one page of feedback plus pagination totals.
type FeedbackPageResponse struct {
	Feedbacks   []FeedbackDetail `json:"feedbacks"`
	TotalPages  int              `json:"totalPages"`
	CurrentPage int              `json:"currentPage"`
}

// UpdateFeedbackRequest represents a feedback content update.
type UpdateFeedbackRequest struct {
	NewContent string `json:"newContent" validate:"required"`
	UserID     uint   `json:"userId"`
}

// UpdateFeedbackResponse reflects the updated feedback entry.
type UpdateFeedbackResponse struct {
	ID        uint      `json:"id"`
	Content   string    `json:"content"`
	Reviewed  bool      `json:"reviewed"`
	CreatedAt time.Time `json:"createdAt"`
}

// HistoryEntry is one past interpretation.
type HistoryEntry struct {
	Emoji   string `json:"emoji"`
	Meaning string `json:"meaning"`
}

// HistoryResponse lists the current user's past interpretations.
type HistoryResponse struct {
	RecentEmojis []HistoryEntry `json:"recent_emojis"`
}

// Submit godoc
// @Summary Submit feedback on an emoji interpretation
// @Tags feedback
// @Accept json
// @Produce json
// @Param request body SubmitFeedbackRequest true "Feedback data"
// @Success 200 {object} FeedbackResultResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /feedback [post]
func (h *FeedbackHandler) Submit(c echo.Context) error {
	var req SubmitFeedbackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.feedbackService.Submit(c.Request().Context(), req.UserID, req.EmojiID, req.Content); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, FeedbackResultResponse{
		Success: true,
		Message: "Feedback received successfully",
	})
}

// Fetch godoc
// @Summary Fetch feedback, paginated newest-first
// @Tags feedback
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Entries per page"
// @Success 200 {object} FeedbackPageResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /feedback [get]
func (h *FeedbackHandler) Fetch(c echo.Context) error {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit < 1 {
		limit = 10
	}

	result, err := h.feedbackService.FetchPage(c.Request().Context(), page, limit)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	details := make([]FeedbackDetail, 0, len(result.Feedbacks))
	for _, f := range result.Feedbacks {
		details = append(details, FeedbackDetail{
			ID:        f.ID,
			Content:   f.Content,
			UserEmail: f.User.Email,
			CreatedAt: f.CreatedAt,
		})
	}

	return c.JSON(http.StatusOK, FeedbackPageResponse{
		Feedbacks:   details,
		TotalPages:  result.TotalPages,
		CurrentPage: result.CurrentPage,
	})
}

// Update godoc
// @Summary Update feedback content
// @Tags feedback
// @Accept json
// @Produce json
// @Param feedbackId path int true "Feedback ID"
// @Param request body UpdateFeedbackRequest true "New content"
// @Success 200 {object} UpdateFeedbackResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /feedback/{feedbackId} [patch]
func (h *FeedbackHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("feedbackId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid feedback id")
	}

	var req UpdateFeedbackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	feedback, err := h.feedbackService.UpdateContent(c.Request().Context(), uint(id), req.NewContent)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, UpdateFeedbackResponse{
		ID:        feedback.ID,
		Content:   feedback.Content,
		Reviewed:  feedback.Reviewed,
		CreatedAt: feedback.CreatedAt,
	})
}

// Delete godoc
// @Summary Delete a feedback entry
// @Tags feedback
// @Produce json
// @Param feedbackId path int true "Feedback ID"
// @Success 200 {object} FeedbackResultResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /feedback/{feedbackId} [delete]
func (h *FeedbackHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("feedbackId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid feedback id")
	}

	if err := h.feedbackService.Delete(c.Request().Context(), uint(id)); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, FeedbackResultResponse{
		Success: true,
		Message: "Feedback successfully deleted.",
	})
}

// History godoc
// @Summary List the current user's interpretation history
// @Tags feedback
// @Produce json
// @Security BearerAuth
// @Success 200 {object} HistoryResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/history [get]
func (h *FeedbackHandler) History(c echo.Context) error {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	claims, ok := token.Claims.(*auth.Claims)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
	}

	feedbacks, err := h.feedbackService.History(c.Request().Context(), claims.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	entries := make([]HistoryEntry, 0, len(feedbacks))
	for _, f := range feedbacks {
		entries = append(entries, HistoryEntry{
			Emoji:   f.Emoji.Character,
			Meaning: f.Emoji.Meaning,
		})
	}
	return c.JSON(http.StatusOK, HistoryResponse{RecentEmojis: entries})
}
