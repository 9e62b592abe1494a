package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"citystore/internal/application/usecase/abstraction"
	"citystore/internal/domain/dto"
	"citystore/internal/presentation"
)

type DeleteHandler struct {
	deleter abstraction.Deleter
}

func NewDeleteHandler(deleter abstraction.Deleter) *DeleteHandler {
	return &DeleteHandler{
		deleter: deleter,
	}
}

// Handle handles DELETE /cities/:id requests.
func (h *DeleteHandler) Handle(c echo.Context) error {
	if err := h.deleter.Delete(c.Request().Context(), c.Param(presentation.IDParam)); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.Confirmation{Message: "city deleted"})
}
