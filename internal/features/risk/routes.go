package risk

import (
	"github.com/gin-gonic/gin"

	"github.com/rajendra-kc/scamlens/internal/config"
)

func RegisterRoutes(router *gin.RouterGroup, repo Repository, cfg *config.Config) {
	handler := NewHandler(repo, cfg)

	numbers := router.Group("/numbers")
	{
		numbers.GET("/:number", handler.GetNumber)
		numbers.GET("/:number/activity", handler.GetActivity)
	}
}
