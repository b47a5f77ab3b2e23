package risk

import "github.com/rajendra-kc/scamlens/internal/pkg/risklevel"

// Risk level is a public contract displayed to users; the boundaries in
// risklevel.Level must not drift. The definitions live in the leaf
// package internal/pkg/risklevel; these aliases keep this package's API.
const (
	LevelLow    = risklevel.Low
	LevelMedium = risklevel.Medium
	LevelHigh   = risklevel.High

	ThresholdMedium = risklevel.ThresholdMedium
	ThresholdHigh   = risklevel.ThresholdHigh
)

// Level maps a score in [0,1] to the three-tier risk level
func Level(score float64) string {
	return risklevel.Level(score)
}

// Anomaly is a statistically unusual pattern in a number's report stream.
// The string values are fixed API tokens.
type Anomaly string

const (
	AnomalySpike           Anomaly = "SPIKE"
	AnomalyBurst           Anomaly = "BURST"
	AnomalyRepeatedMessage Anomaly = "REPEATED_MESSAGE"
)

// Flags are the five independent behavioral signals evaluated over the
// 48-hour activity window
type Flags struct {
	RecentSurge         bool `json:"recent_surge"`
	OTPFocus            bool `json:"otp_focus"`
	HighProbCluster     bool `json:"high_prob_cluster"`
	VictimSelfReport    bool `json:"victim_self_report"`
	MultiCategoryAttack bool `json:"multi_category_attack"`
}

// Count returns how many flags fired
func (f Flags) Count() int {
	n := 0
	for _, v := range []bool{f.RecentSurge, f.OTPFocus, f.HighProbCluster, f.VictimSelfReport, f.MultiCategoryAttack} {
		if v {
			n++
		}
	}
	return n
}

// Confidence levels for the suspicious-activity verdict
const (
	ConfidenceLow    = "low"
	ConfidenceMedium = "medium"
	ConfidenceHigh   = "high"
)

// Verdict is the behavioral inference for possible post-compromise activity.
// Derived per query, never persisted.
type Verdict struct {
	Detected          bool     `json:"suspicious_activity_detected"`
	Confidence        string   `json:"confidence"`
	LikelyScenario    string   `json:"likely_scenario"`
	Flags             Flags    `json:"flags"`
	RecentReportCount int      `json:"recent_report_count"`
	OTPProportion     float64  `json:"otp_proportion"`
	UniqueCategories  []string `json:"unique_categories"`
	Disclaimer        string   `json:"disclaimer"`
}

// RecentReport is one entry of the lookup response's recent report list
type RecentReport struct {
	Category        string  `json:"category"`
	CreatedAt       string  `json:"created_at"`
	ScamProbability float64 `json:"scam_probability"`
}

// LookupResponse is the full number profile returned on lookup
type LookupResponse struct {
	Number             string         `json:"number"`
	RiskScore          float64        `json:"risk_score"`
	RiskLevel          string         `json:"risk_level"`
	ReportCount        int            `json:"report_count"`
	Anomalies          []string       `json:"anomalies"`
	SuspiciousActivity Verdict        `json:"suspicious_activity"`
	RecentReports      []RecentReport `json:"recent_reports"`
}

// ActivityResponse is the standalone suspicious-activity check
type ActivityResponse struct {
	Number string `json:"number"`
	Verdict
}
