package risk

import (
	"math"

	"github.com/rajendra-kc/scamlens/internal/features/reports"
)

// Policy holds the tunable weights of the composite risk score. The weights
// are policy, not hidden constants: the LOW/MEDIUM/HIGH boundaries are a
// public contract, but how the score is assembled underneath may be tuned.
type Policy struct {
	// CountWeight scales the ln(1+n) report-volume term. The logarithm gives
	// diminishing returns: 50 reports is not 50x riskier than one.
	CountWeight float64

	// Per-anomaly additive bonuses
	SpikeBonus           float64
	BurstBonus           float64
	RepeatedMessageBonus float64

	// SuspiciousBonus is added when the behavioral verdict detected activity
	SuspiciousBonus float64
}

// DefaultPolicy is the production weighting
var DefaultPolicy = Policy{
	CountWeight:          0.10,
	SpikeBonus:           0.15,
	BurstBonus:           0.15,
	RepeatedMessageBonus: 0.10,
	SuspiciousBonus:      0.20,
}

// Score combines classifier output, report volume, anomalies and the
// behavioral verdict into one risk score in [0,1] plus its level.
//
// rs must be non-empty. A number with zero reports has no risk score at all:
// callers surface that as "insufficient data", never as LOW. An empty slice
// here is a programming error and panics.
func (p Policy) Score(rs []reports.Report, anomalies []Anomaly, verdict Verdict) (float64, string) {
	if len(rs) == 0 {
		panic("risk: Score called with zero reports")
	}

	var sum float64
	for _, r := range rs {
		sum += r.ScamProbability
	}
	score := sum / float64(len(rs))

	score += p.CountWeight * math.Log(1+float64(len(rs)))

	for _, a := range anomalies {
		switch a {
		case AnomalySpike:
			score += p.SpikeBonus
		case AnomalyBurst:
			score += p.BurstBonus
		case AnomalyRepeatedMessage:
			score += p.RepeatedMessageBonus
		}
	}

	if verdict.Detected {
		score += p.SuspiciousBonus
	}

	score = math.Max(0, math.Min(score, 1))

	return score, Level(score)
}
