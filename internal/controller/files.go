package controller

import (
	"strings"

	"github.com/alimikegami/content-service/internal/asset"
	"github.com/alimikegami/content-service/pkg/errs"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// stageFiles stages one upload per field, in order, leaving nil where the
// field was not sent. Callers must defer asset.CleanupAll on the result.
func stageFiles(e echo.Context, stager asset.Stager, fields ...string) ([]asset.Upload, error) {
	uploads := make([]asset.Upload, len(fields))

	req := e.Request()
	if req.MultipartForm == nil && strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		if _, err := e.MultipartForm(); err != nil {
			return nil, errs.New(errs.ErrValidation, "Invalid form payload")
		}
	}

	for i, field := range fields {
		upload, err := asset.FromRequest(stager, e.Request(), field)
		if err != nil {
			log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "StageFiles").Str("field", field).Msg("")
			asset.CleanupAll(uploads...)
			return nil, err
		}
		uploads[i] = upload
	}

	return uploads, nil
}
