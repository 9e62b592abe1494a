package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"citystore/internal/application/usecase/abstraction"
	"citystore/internal/domain/entity"
	"citystore/internal/infrastructure/staging"
	"citystore/internal/presentation"
)

type UpdateHandler struct {
	updater abstraction.Updater
	stager  *staging.Stager
}

func NewUpdateHandler(updater abstraction.Updater, stager *staging.Stager) *UpdateHandler {
	return &UpdateHandler{
		updater: updater,
		stager:  stager,
	}
}

// Handle handles PUT /cities/:id requests. All form fields are optional;
// the image is replaced only when a new file is attached.
func (h *UpdateHandler) Handle(c echo.Context) error {
	staged, err := intakeImage(c, h.stager)
	if err != nil {
		return respondError(c, err)
	}
	defer h.stager.Discard(staged)

	city, err := h.updater.Update(c.Request().Context(), c.Param(presentation.IDParam), entity.CityInput{
		Name:  c.FormValue(presentation.FormName),
		Phone: c.FormValue(presentation.FormPhone),
		Image: staged,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, city)
}
