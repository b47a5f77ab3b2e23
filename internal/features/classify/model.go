package classify

// ClassifyRequest for POST /classify
type ClassifyRequest struct {
	Message string `json:"message" binding:"required,min=1,max=2000"`
}

// ClassifyResponse carries the ad-hoc classification result
type ClassifyResponse struct {
	ScamProbability  float64  `json:"scam_probability"`
	RiskLevel        string   `json:"risk_level"`
	DetectedKeywords []string `json:"detected_keywords"`
	Explanation      string   `json:"explanation"`
	Model            string   `json:"model"`
}
