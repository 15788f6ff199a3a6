package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"emojiexplainer/internal/service"
)

// SeedHandler handles seed data endpoints.
type SeedHandler struct {
	seedService service.SeedService
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(seedService service.SeedService) *SeedHandler {
	return &SeedHandler{seedService: seedService}
}

// SeedEmojisResponse represents the seed response.
type SeedEmojisResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// SeedEmojis godoc
// @Summary Seed the starter emoji set
// @Tags seed
// @Produce json
// @Success 200 {object} SeedEmojisResponse
// @Failure 500 {object} map[string]string
// @Router /api/seed/emojis [get]
func (h *SeedHandler) SeedEmojis(c echo.Context) error {
	count, err := h.seedService.SeedEmojis(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]string{
			"error": fmt.Sprintf("failed to seed emojis: %v", err),
		})
	}

	return c.JSON(http.StatusOK, SeedEmojisResponse{
		Message: "Emojis seeded successfully",
		Count:   count,
	})
}
