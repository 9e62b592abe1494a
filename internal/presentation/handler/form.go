package handler

import (
	"github.com/labstack/echo/v4"

	"citystore/internal/domain/entity"
	"citystore/internal/infrastructure/staging"
	"citystore/internal/presentation"
)

// intakeImage stages the image file from the multipart form, if one was
// supplied. A missing file is reported as nil; whether that is an error
// depends on the operation, so the service layer decides.
func intakeImage(c echo.Context, stager *staging.Stager) (*entity.StagedFile, error) {
	fh, err := c.FormFile(presentation.FormImage)
	if err != nil {
		return nil, nil //nolint
	}

	return stager.Stage(fh)
}
