package trending

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rajendra-kc/scamlens/internal/features/reports"
	"github.com/rajendra-kc/scamlens/internal/pkg/response"
)

const (
	defaultLimit = 10
	maxLimit     = 50
)

// TrendingResponse for GET /trending
type TrendingResponse struct {
	Items []Entry `json:"items"`
	Limit int     `json:"limit"`
}

// Repository is the slice of the report store the ranking needs
type Repository interface {
	FindSince(ctx context.Context, cutoff time.Time) ([]reports.Report, error)
}

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{
		repo: repo,
	}
}

// GetTrending godoc
// @Summary Most reported numbers
// @Description Numbers ranked by report count over the last 24 hours
// @Tags trending
// @Produce json
// @Param limit query int false "Max entries" default(10)
// @Success 200 {object} response.SuccessResponse{data=TrendingResponse}
// @Router /trending [get]
func (h *Handler) GetTrending(c *gin.Context) {
	limit := defaultLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	now := time.Now().UTC()

	window, err := h.repo.FindSince(c.Request.Context(), now.Add(-DefaultWindow))
	if err != nil {
		response.DatabaseError(c, "Failed to load recent reports")
		return
	}

	response.Success(c, TrendingResponse{
		Items: Rank(window, now, DefaultWindow, limit),
		Limit: limit,
	})
}
