package dashboard

import (
	"github.com/gin-gonic/gin"

	"github.com/rajendra-kc/scamlens/internal/features/reports"
)

func RegisterRoutes(router *gin.RouterGroup, repo *reports.Repository) {
	handler := NewHandler(repo)

	router.GET("/dashboard", handler.GetDashboard)
}
