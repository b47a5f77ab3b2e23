package routes

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rajendra-kc/scamlens/internal/config"
	"github.com/rajendra-kc/scamlens/internal/database"
	"github.com/rajendra-kc/scamlens/internal/features/classify"
	"github.com/rajendra-kc/scamlens/internal/features/dashboard"
	"github.com/rajendra-kc/scamlens/internal/features/reports"
	"github.com/rajendra-kc/scamlens/internal/features/risk"
	"github.com/rajendra-kc/scamlens/internal/features/screenshot"
	"github.com/rajendra-kc/scamlens/internal/features/trending"
	"github.com/rajendra-kc/scamlens/internal/pkg/cloudinary"
	"github.com/rajendra-kc/scamlens/internal/pkg/logger"
	"github.com/rajendra-kc/scamlens/internal/pkg/response"
)

func SetupRoutes(router *gin.Engine, db *database.MongoDB, cfg *config.Config) {
	api := router.Group("/api/v1")

	reportsRepo := reports.NewRepository(db.Database)

	// Gallery storage is optional: without credentials the screenshot
	// analyzer still works, it just never persists anything.
	gallery, err := cloudinary.NewService(
		cfg.CloudinaryCloudName,
		cfg.CloudinaryAPIKey,
		cfg.CloudinaryAPISecret,
		cfg.CloudinaryFolder,
	)
	if err != nil {
		logger.Warn("gallery storage disabled: %v", err)
		gallery = nil
	}

	ocr := screenshot.NewHTTPOCRClient(cfg.OCRServiceURL, cfg.OCRTimeout)

	classify.RegisterRoutes(api)
	reports.RegisterRoutes(api, reportsRepo, cfg)
	risk.RegisterRoutes(api, reportsRepo, cfg)
	trending.RegisterRoutes(api, reportsRepo)
	dashboard.RegisterRoutes(api, reportsRepo)
	screenshot.RegisterRoutes(api, ocr, gallery, cfg)

	registerHealthRoutes(router, db, gallery)
}

func registerHealthRoutes(router *gin.Engine, db *database.MongoDB, gallery *cloudinary.Service) {
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, gin.H{
			"status": "ok",
			"time":   time.Now().Unix(),
		})
	})

	router.GET("/health/db", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			response.Success(c, gin.H{"status": "degraded", "db": "unreachable"})
			return
		}
		response.Success(c, gin.H{"status": "ok", "db": "connected"})
	})

	router.GET("/health/storage", func(c *gin.Context) {
		if gallery == nil {
			response.Success(c, gin.H{"status": "not_configured", "storage": "disabled"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := gallery.Ping(ctx); err != nil {
			response.Success(c, gin.H{"status": "error", "storage": "connection_failed"})
			return
		}
		response.Success(c, gin.H{"status": "ok", "storage": "connected"})
	})
}
