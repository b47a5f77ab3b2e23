package screenshot

import (
	"github.com/gin-gonic/gin"

	"github.com/rajendra-kc/scamlens/internal/config"
	"github.com/rajendra-kc/scamlens/internal/middleware"
	"github.com/rajendra-kc/scamlens/internal/pkg/cloudinary"
)

func RegisterRoutes(router *gin.RouterGroup, ocr OCR, gallery *cloudinary.Service, cfg *config.Config) {
	var store Store
	if gallery != nil {
		store = gallery
	}

	handler := NewHandler(NewPipeline(ocr, store), gallery)

	screenshots := router.Group("/screenshots")
	{
		screenshots.POST("/analyze", handler.Analyze)
		screenshots.GET("/gallery", handler.Gallery)
		screenshots.DELETE("/gallery", middleware.AdminAuth(cfg.AdminJWTSecret), handler.DeleteGalleryItem)
	}
}
