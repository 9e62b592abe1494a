package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"citystore/internal/application/usecase/abstraction"
	"citystore/internal/presentation"
)

type GetHandler struct {
	getter abstraction.Getter
}

func NewGetHandler(getter abstraction.Getter) *GetHandler {
	return &GetHandler{
		getter: getter,
	}
}

// Handle handles GET /cities/:id requests.
func (h *GetHandler) Handle(c echo.Context) error {
	city, err := h.getter.Get(c.Request().Context(), c.Param(presentation.IDParam))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, city)
}
