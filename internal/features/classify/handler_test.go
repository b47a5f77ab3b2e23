package classify

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupClassifyRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterRoutes(router.Group("/api/v1"))
	return router
}

func postClassify(t *testing.T, router *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/classify", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestClassifyEndpoint(t *testing.T) {
	router := setupClassifyRouter()

	w := postClassify(t, router, gin.H{
		"message": "Congratulations! You won a lottery prize, claim now at http://claim.example.com",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Status string `json:"status"`
		Data   struct {
			ScamProbability  float64  `json:"scam_probability"`
			RiskLevel        string   `json:"risk_level"`
			DetectedKeywords []string `json:"detected_keywords"`
			Explanation      string   `json:"explanation"`
			Model            string   `json:"model"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))

	assert.Equal(t, "success", envelope.Status)
	assert.Equal(t, "HIGH", envelope.Data.RiskLevel)
	assert.GreaterOrEqual(t, envelope.Data.ScamProbability, 0.67)
	assert.Contains(t, envelope.Data.DetectedKeywords, "lottery")
	assert.NotEmpty(t, envelope.Data.Explanation)
	assert.Equal(t, Model, envelope.Data.Model)
}

func TestClassifyEndpointRejectsMissingMessage(t *testing.T) {
	router := setupClassifyRouter()

	w := postClassify(t, router, gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClassifyEndpointRejectsBlankMessage(t *testing.T) {
	router := setupClassifyRouter()

	w := postClassify(t, router, gin.H{"message": "   "})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var envelope struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "INVALID_MESSAGE", envelope.Code)
}

func TestClassifyEndpointNeverReturnsNullKeywords(t *testing.T) {
	router := setupClassifyRouter()

	w := postClassify(t, router, gin.H{"message": "see you at the meeting"})
	require.Equal(t, http.StatusOK, w.Code)

	assert.Contains(t, w.Body.String(), `"detected_keywords":[]`)
}
