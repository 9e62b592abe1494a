package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"citystore/internal/domain/dto"
	"citystore/pkg/apperr"
	"citystore/pkg/logger"
)

// respondError converts a classified error into the JSON error body the
// API promises. Downstream failures keep their detail in the log only.
func respondError(c echo.Context, err error) error {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		logger.Error("request failed", "method", c.Request().Method, "path", c.Path(), "err", err)
	}

	return c.JSON(status, dto.ErrorResponse{Error: apperr.Message(err)})
}

func statusOf(err error) int {
	switch apperr.KindOf(err) {
	case apperr.Validation, apperr.TooLarge:
		return http.StatusBadRequest
	case apperr.NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
