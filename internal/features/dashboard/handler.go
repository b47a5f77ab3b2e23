// Package dashboard serves the aggregate overview the landing page renders.
package dashboard

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rajendra-kc/scamlens/internal/features/reports"
	"github.com/rajendra-kc/scamlens/internal/features/trending"
	"github.com/rajendra-kc/scamlens/internal/pkg/response"
)

const trendingLimit = 10

// Summary for GET /dashboard
type Summary struct {
	TotalReports         int64            `json:"total_reports"`
	CategoryDistribution map[string]int64 `json:"category_distribution"`
	Trending             []trending.Entry `json:"trending"`
}

type Handler struct {
	repo *reports.Repository
}

func NewHandler(repo *reports.Repository) *Handler {
	return &Handler{
		repo: repo,
	}
}

// GetDashboard godoc
// @Summary Aggregate overview
// @Description Total report volume, category distribution and trending numbers
// @Tags dashboard
// @Produce json
// @Success 200 {object} response.SuccessResponse{data=Summary}
// @Router /dashboard [get]
func (h *Handler) GetDashboard(c *gin.Context) {
	ctx := c.Request.Context()

	total, err := h.repo.CountAll(ctx)
	if err != nil {
		response.DatabaseError(c, "Failed to count reports")
		return
	}

	categories, err := h.repo.CategoryCounts(ctx)
	if err != nil {
		response.DatabaseError(c, "Failed to aggregate categories")
		return
	}

	now := time.Now().UTC()
	window, err := h.repo.FindSince(ctx, now.Add(-trending.DefaultWindow))
	if err != nil {
		response.DatabaseError(c, "Failed to load recent reports")
		return
	}

	response.Success(c, Summary{
		TotalReports:         total,
		CategoryDistribution: categories,
		Trending:             trending.Rank(window, now, trending.DefaultWindow, trendingLimit),
	})
}
