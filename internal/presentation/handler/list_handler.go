package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"citystore/internal/application/usecase/abstraction"
)

type ListHandler struct {
	lister abstraction.Lister
}

func NewListHandler(lister abstraction.Lister) *ListHandler {
	return &ListHandler{
		lister: lister,
	}
}

// Handle handles GET /cities requests.
func (h *ListHandler) Handle(c echo.Context) error {
	cities, err := h.lister.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, cities)
}
