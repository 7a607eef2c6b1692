package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/arfind/arfind_admin/logger"
	"github.com/arfind/arfind_admin/services"
)

const defaultUploadFolder = "uploads"

// UploadController stores arbitrary files in object storage
type UploadController struct {
	images *services.ImageService
	log    *logger.Logger
}

func NewUploadController(images *services.ImageService, log *logger.Logger) *UploadController {
	return &UploadController{images: images, log: log.Named("upload")}
}

// Upload stores the "file" part as-is and answers with its public URL
func (uc *UploadController) Upload(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.String(http.StatusBadRequest, "No se recibió ningún archivo.")
	}

	data, err := services.ReadUpload(file)
	if err != nil {
		uc.log.Error().Err(err).Msg("Failed to read upload")
		return c.String(http.StatusInternalServerError, "Error al subir el archivo.")
	}

	folder := c.FormValue("carpeta")
	if folder == "" {
		folder = defaultUploadFolder
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	publicURL, err := uc.images.UploadRaw(ctx, file.Filename, data, folder)
	if err != nil {
		uc.log.Error().Err(err).Str("file", file.Filename).Msg("Failed to upload file")
		return c.String(http.StatusInternalServerError, "Error al subir el archivo.")
	}

	uc.log.Info().Str("url", publicURL).Msg("File uploaded")
	return c.String(http.StatusOK, publicURL)
}
