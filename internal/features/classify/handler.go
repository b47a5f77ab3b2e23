package classify

import (
	"math"

	"github.com/gin-gonic/gin"

	"github.com/rajendra-kc/scamlens/internal/pkg/response"
	"github.com/rajendra-kc/scamlens/internal/pkg/risklevel"
)

// Handler serves ad-hoc message classification without storing anything
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Classify godoc
// @Summary Classify a message
// @Description Score a message for scam probability without submitting a report
// @Tags classify
// @Accept json
// @Produce json
// @Param request body ClassifyRequest true "Message"
// @Success 200 {object} response.SuccessResponse{data=ClassifyResponse}
// @Failure 400 {object} response.ErrorResponse
// @Router /classify [post]
func (h *Handler) Classify(c *gin.Context) {
	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	result, err := Classify(req.Message)
	if err != nil {
		response.BadRequest(c, err.Error(), "INVALID_MESSAGE")
		return
	}

	keywords := result.Keywords
	if keywords == nil {
		keywords = []string{}
	}

	response.Success(c, ClassifyResponse{
		ScamProbability:  math.Round(result.Probability*1000) / 1000,
		RiskLevel:        risklevel.Level(result.Probability),
		DetectedKeywords: keywords,
		Explanation:      result.Explanation,
		Model:            Model,
	})
}
