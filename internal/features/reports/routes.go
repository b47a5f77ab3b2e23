package reports

import (
	"github.com/gin-gonic/gin"

	"github.com/rajendra-kc/scamlens/internal/config"
	"github.com/rajendra-kc/scamlens/internal/pkg/ratelimit"
)

func RegisterRoutes(router *gin.RouterGroup, repo *Repository, cfg *config.Config) {
	handler := NewHandler(repo, cfg)

	// Submissions are the only abuse-prone write path
	limiter := ratelimit.New(cfg.ReportRateLimit, cfg.ReportRateWindow)
	limiter.StartCleanup(cfg.ReportRateWindow)

	router.POST("/reports", ratelimit.Middleware(limiter), handler.CreateReport)
}
