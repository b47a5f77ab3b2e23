package risk

import (
	"context"
	"math"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rajendra-kc/scamlens/internal/config"
	"github.com/rajendra-kc/scamlens/internal/features/reports"
	"github.com/rajendra-kc/scamlens/internal/pkg/phone"
	"github.com/rajendra-kc/scamlens/internal/pkg/response"
)

const recentReportsLimit = 10

// Repository is the slice of the report store a lookup needs
type Repository interface {
	FindByNumber(ctx context.Context, number string) ([]reports.Report, error)
}

// Handler serves number lookups. Every lookup recomputes the profile from
// the report history visible at read time; nothing is cached.
type Handler struct {
	repo   Repository
	policy Policy
	config *config.Config
}

func NewHandler(repo Repository, cfg *config.Config) *Handler {
	return &Handler{
		repo:   repo,
		policy: DefaultPolicy,
		config: cfg,
	}
}

// GetNumber godoc
// @Summary Look up a number's risk profile
// @Description Composite risk score, anomalies and suspicious-activity verdict
// @Tags numbers
// @Produce json
// @Param number path string true "Phone number"
// @Success 200 {object} response.SuccessResponse{data=LookupResponse}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /numbers/{number} [get]
func (h *Handler) GetNumber(c *gin.Context) {
	number, err := phone.Normalize(c.Param("number"), h.config.DefaultRegion)
	if err != nil {
		response.BadRequest(c, "Invalid phone number", "INVALID_NUMBER")
		return
	}

	history, err := h.repo.FindByNumber(c.Request.Context(), number)
	if err != nil {
		response.DatabaseError(c, "Failed to load report history")
		return
	}

	// Zero reports is "we don't know", never LOW risk
	if len(history) == 0 {
		response.NotFound(c, "No reports on record for this number", "INSUFFICIENT_DATA")
		return
	}

	now := time.Now().UTC()
	anomalies := DetectAnomalies(history, now)
	verdict := Analyze(history, now)
	score, level := h.policy.Score(history, anomalies, verdict)

	anomalyStrings := make([]string, 0, len(anomalies))
	for _, a := range anomalies {
		anomalyStrings = append(anomalyStrings, string(a))
	}

	// history is newest-first; the head of recent_reports is the latest report
	recent := make([]RecentReport, 0, recentReportsLimit)
	for i, r := range history {
		if i == recentReportsLimit {
			break
		}
		recent = append(recent, RecentReport{
			Category:        string(r.Category),
			CreatedAt:       r.CreatedAt.Format(time.RFC3339),
			ScamProbability: r.ScamProbability,
		})
	}

	response.Success(c, LookupResponse{
		Number:             number,
		RiskScore:          math.Round(score*1000) / 1000,
		RiskLevel:          level,
		ReportCount:        len(history),
		Anomalies:          anomalyStrings,
		SuspiciousActivity: verdict,
		RecentReports:      recent,
	})
}

// GetActivity godoc
// @Summary Suspicious-activity check
// @Description Behavioral flags suggesting post-compromise scam campaigns
// @Tags numbers
// @Produce json
// @Param number path string true "Phone number"
// @Success 200 {object} response.SuccessResponse{data=ActivityResponse}
// @Failure 400 {object} response.ErrorResponse
// @Router /numbers/{number}/activity [get]
func (h *Handler) GetActivity(c *gin.Context) {
	number, err := phone.Normalize(c.Param("number"), h.config.DefaultRegion)
	if err != nil {
		response.BadRequest(c, "Invalid phone number", "INVALID_NUMBER")
		return
	}

	history, err := h.repo.FindByNumber(c.Request.Context(), number)
	if err != nil {
		response.DatabaseError(c, "Failed to load report history")
		return
	}

	response.Success(c, ActivityResponse{
		Number:  number,
		Verdict: Analyze(history, time.Now().UTC()),
	})
}
