package screenshot

import (
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rajendra-kc/scamlens/internal/pkg/cloudinary"
	"github.com/rajendra-kc/scamlens/internal/pkg/response"
)

const (
	defaultGalleryLimit = 50
	maxGalleryLimit     = 100
)

var allowedContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// Handler serves screenshot analysis and the scam gallery
type Handler struct {
	pipeline *Pipeline
	gallery  *cloudinary.Service // nil when storage is not configured
}

func NewHandler(pipeline *Pipeline, gallery *cloudinary.Service) *Handler {
	return &Handler{
		pipeline: pipeline,
		gallery:  gallery,
	}
}

// Analyze godoc
// @Summary Analyze a screenshot
// @Description OCR the image and score the extracted text for scam content
// @Tags screenshots
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Screenshot (jpeg/png/webp, max 5MB)"
// @Success 200 {object} response.SuccessResponse{data=Analysis}
// @Failure 400 {object} response.ErrorResponse
// @Router /screenshots/analyze [post]
func (h *Handler) Analyze(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		response.BadRequest(c, "File is required", "MISSING_FILE")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !allowedContentTypes[contentType] {
		response.BadRequest(c, "Only JPG, PNG and WEBP images are supported", "INVALID_FILE")
		return
	}

	if err := cloudinary.ValidateScreenshot(header); err != nil {
		response.BadRequest(c, err.Error(), "INVALID_FILE")
		return
	}

	image, err := io.ReadAll(io.LimitReader(file, cloudinary.MaxScreenshotSize+1))
	if err != nil {
		response.BadRequest(c, "Failed to read uploaded file", "INVALID_FILE")
		return
	}
	if int64(len(image)) > cloudinary.MaxScreenshotSize {
		response.BadRequest(c, "File too large, maximum 5 MB allowed", "INVALID_FILE")
		return
	}

	response.Success(c, h.pipeline.Analyze(c.Request.Context(), image, header.Filename, contentType))
}

// Gallery godoc
// @Summary High-risk screenshot gallery
// @Description Screenshots flagged at 80%+ scam probability
// @Tags screenshots
// @Produce json
// @Param limit query int false "Max entries" default(50)
// @Success 200 {object} response.SuccessResponse{data=[]cloudinary.GalleryItem}
// @Failure 503 {object} response.ErrorResponse
// @Router /screenshots/gallery [get]
func (h *Handler) Gallery(c *gin.Context) {
	if h.gallery == nil {
		response.ServiceUnavailable(c, "Gallery storage is not configured", "STORAGE_DISABLED")
		return
	}

	limit := defaultGalleryLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > maxGalleryLimit {
		limit = maxGalleryLimit
	}

	items, err := h.gallery.ListHighRisk(c.Request.Context(), limit)
	if err != nil {
		response.ServiceUnavailable(c, "Gallery storage is unreachable", "STORAGE_UNAVAILABLE")
		return
	}

	response.Success(c, items)
}

// DeleteGalleryItem godoc
// @Summary Remove a gallery screenshot
// @Description Admin-only moderation of the public gallery
// @Tags screenshots
// @Produce json
// @Security BearerAuth
// @Param path query string true "Storage path of the screenshot"
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /screenshots/gallery [delete]
func (h *Handler) DeleteGalleryItem(c *gin.Context) {
	if h.gallery == nil {
		response.ServiceUnavailable(c, "Gallery storage is not configured", "STORAGE_DISABLED")
		return
	}

	path := c.Query("path")
	if path == "" {
		response.BadRequest(c, "path query parameter is required", "MISSING_PARAM")
		return
	}

	if err := h.gallery.Delete(c.Request.Context(), path); err != nil {
		response.ServiceUnavailable(c, "Failed to delete screenshot", "STORAGE_UNAVAILABLE")
		return
	}

	response.Success(c, gin.H{"deleted": path})
}
