package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

// StatusProber checks reachability of the external meaning provider.
type StatusProber interface {
	Status(ctx context.Context) (int, error)
}

// StatusHandler reports API health including provider connectivity.
type StatusHandler struct {
	prober StatusProber
}

// NewStatusHandler creates a new status handler.
func NewStatusHandler(prober StatusProber) *StatusHandler {
	return &StatusHandler{prober: prober}
}

// StatusResponse reports the provider-facing health of the API.
type StatusResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

// Check godoc
// @Summary API status including provider connectivity
// @Tags status
// @Produce json
// @Success 200 {object} StatusResponse
// @Router /api/status [get]
func (h *StatusHandler) Check(c echo.Context) error {
	// An unreachable provider is reported as degraded, never as an error.
	code, err := h.prober.Status(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusOK, StatusResponse{
			StatusCode: http.StatusServiceUnavailable,
			Message:    "API is experiencing issues.",
		})
	}

	message := "API is experiencing issues."
	if code == http.StatusOK {
		message = "API is operational."
	}
	return c.JSON(http.StatusOK, StatusResponse{StatusCode: code, Message: message})
}
