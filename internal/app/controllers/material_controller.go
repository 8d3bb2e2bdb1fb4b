package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/2403A51L17/SESD-Project/internal/app/models"
	"github.com/2403A51L17/SESD-Project/internal/app/models/dto"
	"github.com/2403A51L17/SESD-Project/internal/app/services"
	"github.com/2403A51L17/SESD-Project/internal/middleware"
	"github.com/2403A51L17/SESD-Project/internal/pkg/apperrors"
)

// MaterialController handles material upload and download
type MaterialController struct {
	materialService services.MaterialService
	logger          zerolog.Logger
}

// NewMaterialController creates a new MaterialController
func NewMaterialController(materialService services.MaterialService, logger zerolog.Logger) *MaterialController {
	return &MaterialController{
		materialService: materialService,
		logger:          logger,
	}
}

// Upload godoc
// @Summary Upload study material
// @Description Stores a mentor's file and records its metadata; every outcome redirects back to the mentor profile
// @Tags material
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload"
// @Param file_description formData string false "Description"
// @Success 303 {object} dto.APIResponse "Redirects to /mentor/profile"
// @Router /upload_material [post]
func (c *MaterialController) Upload(ctx *gin.Context) {
	userID, _, _, ok := middleware.SessionIdentity(ctx)
	if !ok {
		middleware.RedirectWithFlash(ctx, http.StatusSeeOther, "/login")
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		middleware.RedirectWithFlash(ctx, http.StatusSeeOther, "/mentor/profile",
			dto.NewFlash(dto.FlashDanger, "No file part"))
		return
	}
	if fileHeader.Filename == "" {
		middleware.RedirectWithFlash(ctx, http.StatusSeeOther, "/mentor/profile",
			dto.NewFlash(dto.FlashDanger, "No selected file"))
		return
	}

	var req dto.UploadRequest
	_ = ctx.ShouldBind(&req)

	src, err := fileHeader.Open()
	if err != nil {
		c.logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		middleware.RedirectWithFlash(ctx, http.StatusSeeOther, "/mentor/profile",
			dto.NewFlash(dto.FlashDanger, "Could not read the uploaded file."))
		return
	}
	defer src.Close()

	_, err = c.materialService.Upload(ctx.Request.Context(), userID, fileHeader.Filename, src, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNoFile):
			middleware.RedirectWithFlash(ctx, http.StatusSeeOther, "/mentor/profile",
				dto.NewFlash(dto.FlashDanger, "No selected file"))
		case errors.Is(err, apperrors.ErrFileTypeNotAllowed):
			middleware.RedirectWithFlash(ctx, http.StatusSeeOther, "/mentor/profile",
				dto.NewFlash(dto.FlashDanger, "File type not allowed. Please check the allowed extensions."))
		case errors.Is(err, apperrors.ErrFileExists):
			middleware.RedirectWithFlash(ctx, http.StatusSeeOther, "/mentor/profile",
				dto.NewFlash(dto.FlashWarning, "A file with this name already exists. Please rename your file and try again."))
		default:
			c.logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Upload failed")
			middleware.RedirectWithFlash(ctx, http.StatusSeeOther, "/mentor/profile",
				dto.NewFlash(dto.FlashDanger, "An error occurred while saving the file."))
		}
		return
	}

	middleware.RedirectWithFlash(ctx, http.StatusSeeOther, "/mentor/profile",
		dto.NewFlash(dto.FlashSuccess, "File uploaded successfully!"))
}

// Download godoc
// @Summary Download study material
// @Description Streams a stored file as an attachment to any authenticated user
// @Tags material
// @Produce octet-stream
// @Param filename path string true "Stored filename"
// @Success 200 {file} binary
// @Failure 303 {object} dto.APIResponse "File not found, redirects to the caller's profile"
// @Router /download/{filename} [get]
func (c *MaterialController) Download(ctx *gin.Context) {
	_, _, role, ok := middleware.SessionIdentity(ctx)
	if !ok {
		middleware.RedirectWithFlash(ctx, http.StatusSeeOther, "/login")
		return
	}

	filename := ctx.Param("filename")
	path, err := c.materialService.Resolve(filename)
	if err != nil {
		target := "/mentor/profile"
		if role == models.RoleStudent {
			target = "/student/profile"
		}
		middleware.RedirectWithFlash(ctx, http.StatusSeeOther, target,
			dto.NewFlash(dto.FlashDanger, "File not found."))
		return
	}

	ctx.FileAttachment(path, filename)
}
