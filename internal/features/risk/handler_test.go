package risk

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajendra-kc/scamlens/internal/config"
	"github.com/rajendra-kc/scamlens/internal/features/reports"
)

type fakeRepo struct {
	history []reports.Report
	err     error
}

func (f *fakeRepo) FindByNumber(context.Context, string) ([]reports.Report, error) {
	return f.history, f.err
}

func setupLookupRouter(repo Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterRoutes(router.Group("/api/v1"), repo, &config.Config{DefaultRegion: "NP"})
	return router
}

func getLookup(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetNumberWithoutReportsIsNotFound(t *testing.T) {
	router := setupLookupRouter(&fakeRepo{})

	w := getLookup(router, "/api/v1/numbers/9841234567")
	require.Equal(t, http.StatusNotFound, w.Code)

	var envelope struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "INSUFFICIENT_DATA", envelope.Code)

	// An unknown number is "we don't know", never a LOW risk verdict
	assert.NotContains(t, w.Body.String(), LevelLow)
}

func TestGetNumberRejectsInvalidNumber(t *testing.T) {
	router := setupLookupRouter(&fakeRepo{})

	w := getLookup(router, "/api/v1/numbers/garbage")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_NUMBER")
}

func TestGetNumberDatabaseFailure(t *testing.T) {
	router := setupLookupRouter(&fakeRepo{err: errors.New("connection reset")})

	w := getLookup(router, "/api/v1/numbers/9841234567")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetNumberWithHistory(t *testing.T) {
	now := time.Now().UTC()
	router := setupLookupRouter(&fakeRepo{history: []reports.Report{
		report("+9779841234567", reports.CategoryOTPTheft, "asked for my otp code", 0.9, now.Add(-10*time.Minute)),
		report("+9779841234567", reports.CategoryOTPTheft, "wanted a verification code urgently", 0.85, now.Add(-20*time.Minute)),
		report("+9779841234567", reports.CategoryOTPTheft, "pretended to be my bank for the sms code", 0.92, now.Add(-30*time.Minute)),
	}})

	w := getLookup(router, "/api/v1/numbers/9841234567")
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Status string         `json:"status"`
		Data   LookupResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))

	assert.Equal(t, "success", envelope.Status)
	assert.Equal(t, "+9779841234567", envelope.Data.Number)
	assert.Equal(t, 3, envelope.Data.ReportCount)
	assert.Equal(t, LevelHigh, envelope.Data.RiskLevel)
	assert.Contains(t, envelope.Data.Anomalies, string(AnomalySpike))
	assert.True(t, envelope.Data.SuspiciousActivity.Detected)
	assert.Len(t, envelope.Data.RecentReports, 3)
	assert.Equal(t, Disclaimer, envelope.Data.SuspiciousActivity.Disclaimer)
}

func TestGetActivityWithoutReports(t *testing.T) {
	router := setupLookupRouter(&fakeRepo{})

	w := getLookup(router, "/api/v1/numbers/9841234567/activity")
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data ActivityResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))

	assert.Equal(t, "+9779841234567", envelope.Data.Number)
	assert.False(t, envelope.Data.Detected)
	assert.Equal(t, Disclaimer, envelope.Data.Disclaimer)
}
