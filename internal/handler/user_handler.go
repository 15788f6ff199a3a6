package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"emojiexplainer/internal/errors"
	"emojiexplainer/internal/model"
	"emojiexplainer/internal/service"
)

// UserHandler handles account endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUserRequest represents an account creation request.
type CreateUserRequest struct {
	Email    string     `json:"email" validate:"required,email"`
	Password string     `json:"password" validate:"required,min=6"`
	Role     model.Role `json:"role" validate:"required,oneof=ADMIN USER GUEST"`
}

// CreateUserResponse returns the created account without sensitive fields.
type CreateUserResponse struct {
	ID        uint       `json:"id"`
	Email     string     `json:"email"`
	Role      model.Role `json:"role"`
	CreatedAt time.Time  `json:"createdAt"`
}

// UpdateUserRequest represents a profile update request.
type UpdateUserRequest struct {
	Email string     `json:"email" validate:"required,email"`
	Name  string     `json:"name" validate:"required"`
	Role  model.Role `json:"role" validate:"required,oneof=ADMIN USER GUEST"`
}

// UpdateUserResponse reflects the confirmed updated user.
type UpdateUserResponse struct {
	UserID uint       `json:"userId"`
	Email  string     `json:"email"`
	Name   string     `json:"name"`
	Role   model.Role `json:"role"`
}

// DeleteUserResponse confirms a deletion without disclosing user data.
type DeleteUserResponse struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// UserDetailsResponse returns a user with feedback and session counts.
type UserDetailsResponse struct {
	ID             uint       `json:"id"`
	Email          string     `json:"email"`
	Role           model.Role `json:"role"`
	FeedbacksCount int64      `json:"feedbacksCount"`
	SessionsCount  int64      `json:"sessionsCount"`
}

// CreateUser godoc
// @Summary Create a user account
// @Tags users
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "Account data"
// @Success 201 {object} CreateUserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/users [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userService.CreateUser(c.Request().Context(), req.Email, req.Password, req.Role)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, CreateUserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	})
}

// UpdateUser godoc
// @Summary Update user details
// @Tags users
// @Accept json
// @Produce json
// @Param userId path int true "User ID"
// @Param request body UpdateUserRequest true "Updated fields"
// @Success 200 {object} UpdateUserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/users/{userId} [put]
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userService.UpdateUser(c.Request().Context(), uint(id), req.Email, req.Name, req.Role)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, UpdateUserResponse{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
	})
}

// DeleteUser godoc
// @Summary Delete a user account
// @Tags users
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} DeleteUserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/users/{userId} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	if err := h.userService.DeleteUser(c.Request().Context(), uint(id)); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, DeleteUserResponse{
		Message: "User successfully deleted.",
		Status:  http.StatusOK,
	})
}

// GetUserDetails godoc
// @Summary Get user details with feedback and session counts
// @Tags users
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} UserDetailsResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/users/{userId} [get]
func (h *UserHandler) GetUserDetails(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	details, err := h.userService.GetUserDetails(c.Request().Context(), uint(id))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, UserDetailsResponse{
		ID:             details.User.ID,
		Email:          details.User.Email,
		Role:           details.User.Role,
		FeedbacksCount: details.FeedbacksCount,
		SessionsCount:  details.SessionsCount,
	})
}
