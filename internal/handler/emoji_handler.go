package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"emojiexplainer/internal/errors"
	"emojiexplainer/internal/service"
)

// EmojiHandler handles emoji lookup endpoints. The three lookup routes are
// legacy variants of the same operation; all delegate to the single resolver
// and differ only in response shape.
type EmojiHandler struct {
	emojiService service.EmojiService
}

// NewEmojiHandler creates a new emoji handler.
func NewEmojiHandler(emojiService service.EmojiService) *EmojiHandler {
	return &EmojiHandler{emojiService: emojiService}
}

// ExplainRequest carries the emoji character to resolve.
type ExplainRequest struct {
	Emoji string `json:"emoji" validate:"required"`
}

// MeaningResponse is the compact lookup response shape.
type MeaningResponse struct {
	Meaning string `json:"meaning"`
}

// ExplanationResponse is the verbose lookup response shape.
type ExplanationResponse struct {
	Emoji       string `json:"emoji"`
	Explanation string `json:"explanation"`
}

// SupportedEmoji is one stored emoji entry.
type SupportedEmoji struct {
	Character string `json:"character"`
	Meaning   string `json:"meaning"`
}

// SupportedEmojisResponse lists all stored emojis.
type SupportedEmojisResponse struct {
	Emojis []SupportedEmoji `json:"emojis"`
}

func (h *EmojiHandler) resolve(c echo.Context) (*ExplainRequest, *echo.HTTPError) {
	var req ExplainRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return &req, nil
}

// Explain godoc
// @Summary Explain the meaning of an emoji
// @Tags emoji
// @Accept json
// @Produce json
// @Param request body ExplainRequest true "Emoji character"
// @Success 200 {object} MeaningResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /emoji/explain [post]
func (h *EmojiHandler) Explain(c echo.Context) error {
	req, httpErr := h.resolve(c)
	if httpErr != nil {
		return httpErr
	}

	emoji, err := h.emojiService.Resolve(c.Request().Context(), req.Emoji)
	if err != nil {
		mapped := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(mapped.StatusCode, mapped.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, MeaningResponse{Meaning: emoji.Meaning})
}

// Interpret godoc
// @Summary Interpret an emoji character
// @Tags emoji
// @Accept json
// @Produce json
// @Param request body ExplainRequest true "Emoji character"
// @Success 200 {object} MeaningResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /api/interpret [post]
func (h *EmojiHandler) Interpret(c echo.Context) error {
	return h.Explain(c)
}

// FetchMeaning godoc
// @Summary Fetch the explanation for an emoji
// @Tags emoji
// @Accept json
// @Produce json
// @Param request body ExplainRequest true "Emoji character"
// @Success 200 {object} ExplanationResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /api/emoji-explainer [post]
func (h *EmojiHandler) FetchMeaning(c echo.Context) error {
	req, httpErr := h.resolve(c)
	if httpErr != nil {
		return httpErr
	}

	emoji, err := h.emojiService.Resolve(c.Request().Context(), req.Emoji)
	if err != nil {
		mapped := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(mapped.StatusCode, mapped.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, ExplanationResponse{
		Emoji:       emoji.Character,
		Explanation: emoji.Meaning,
	})
}

// ListSupported godoc
// @Summary List all stored emojis
// @Tags emoji
// @Produce json
// @Success 200 {object} SupportedEmojisResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/emoji/supported [get]
func (h *EmojiHandler) ListSupported(c echo.Context) error {
	emojis, err := h.emojiService.ListSupported(c.Request().Context())
	if err != nil {
		mapped := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(mapped.StatusCode, mapped.ToErrorResponse())
	}

	out := make([]SupportedEmoji, 0, len(emojis))
	for _, e := range emojis {
		out = append(out, SupportedEmoji{Character: e.Character, Meaning: e.Meaning})
	}
	return c.JSON(http.StatusOK, SupportedEmojisResponse{Emojis: out})
}
