package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"citystore/internal/application/usecase/abstraction"
	"citystore/internal/domain/entity"
	"citystore/internal/infrastructure/staging"
	"citystore/internal/presentation"
)

type CreateHandler struct {
	creator abstraction.Creator
	stager  *staging.Stager
}

func NewCreateHandler(creator abstraction.Creator, stager *staging.Stager) *CreateHandler {
	return &CreateHandler{
		creator: creator,
		stager:  stager,
	}
}

// Handle handles POST /cities requests.
func (h *CreateHandler) Handle(c echo.Context) error {
	staged, err := intakeImage(c, h.stager)
	if err != nil {
		return respondError(c, err)
	}
	defer h.stager.Discard(staged)

	city, err := h.creator.Create(c.Request().Context(), entity.CityInput{
		Name:  c.FormValue(presentation.FormName),
		Phone: c.FormValue(presentation.FormPhone),
		Image: staged,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, city)
}
