package trending

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, repo Repository) {
	handler := NewHandler(repo)

	router.GET("/trending", handler.GetTrending)
}
