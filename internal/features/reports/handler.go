package reports

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rajendra-kc/scamlens/internal/config"
	"github.com/rajendra-kc/scamlens/internal/features/classify"
	"github.com/rajendra-kc/scamlens/internal/pkg/logger"
	"github.com/rajendra-kc/scamlens/internal/pkg/phone"
	"github.com/rajendra-kc/scamlens/internal/pkg/response"
	apperrors "github.com/rajendra-kc/scamlens/pkg/errors"
)

// Handler handles report submission
type Handler struct {
	repo   *Repository
	config *config.Config
}

func NewHandler(repo *Repository, cfg *config.Config) *Handler {
	return &Handler{
		repo:   repo,
		config: cfg,
	}
}

// CreateReport godoc
// @Summary Submit a scam report
// @Description Classify the message, normalize the number and append the report
// @Tags reports
// @Accept json
// @Produce json
// @Param request body CreateReportRequest true "Report"
// @Success 201 {object} response.SuccessResponse{data=ReportResponse}
// @Failure 400 {object} response.ErrorResponse
// @Router /reports [post]
func (h *Handler) CreateReport(c *gin.Context) {
	var req CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateCreateReportRequest(&req); err != nil {
		response.BadRequest(c, err.Error(), "INVALID_REPORT")
		return
	}

	number, err := phone.Normalize(req.Number, h.config.DefaultRegion)
	if err != nil {
		response.BadRequest(c, "Invalid phone number", "INVALID_NUMBER")
		return
	}

	// scam_probability is computed exactly once, here. Reports are historical
	// facts and are never rescored when the classifier changes.
	result, err := classify.Classify(req.Message)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidInput) {
			response.BadRequest(c, err.Error(), "INVALID_MESSAGE")
			return
		}
		response.InternalServerError(c, "Failed to classify message", "CLASSIFY_FAILED")
		return
	}

	report := &Report{
		ID:              uuid.NewString(),
		Number:          number,
		Category:        Category(req.Category),
		Message:         req.Message,
		ScamProbability: result.Probability,
		CreatedAt:       time.Now().UTC(),
	}

	// A failed write is fatal to the submission: the caller retries, we never
	// pretend the report was stored.
	if err := h.repo.Insert(c.Request.Context(), report); err != nil {
		logger.Error("report insert failed for %s: %v", number, err)
		response.DatabaseError(c, "Failed to store report")
		return
	}

	response.Created(c, ReportResponse{
		ID:              report.ID,
		Number:          report.Number,
		Category:        string(report.Category),
		Message:         report.Message,
		CreatedAt:       report.CreatedAt.Format(time.RFC3339),
		ScamProbability: report.ScamProbability,
	})
}
