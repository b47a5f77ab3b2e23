package classify

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup) {
	handler := NewHandler()

	router.POST("/classify", handler.Classify)
}
