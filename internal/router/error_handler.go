package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	apperrors "emojiexplainer/internal/errors"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that renders every
// failure as the {"error": ...} envelope. Handlers map domain failures to
// specific statuses themselves; anything unanticipated is logged with its
// real cause and degraded to a generic 500 so internal details never leak.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			switch msg := he.Message.(type) {
			case apperrors.ErrorResponse:
				_ = c.JSON(he.Code, msg)
			default:
				_ = c.JSON(he.Code, apperrors.ErrorResponse{Error: fmt.Sprintf("%v", msg)})
			}
			return
		}

		log.Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Request().URL.Path).
			Msg("unhandled error")
		_ = c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{Error: "internal server error"})
	}
}
