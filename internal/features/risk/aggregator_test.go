package risk

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajendra-kc/scamlens/internal/features/reports"
)

func reportsWithProbs(probs ...float64) []reports.Report {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rs := make([]reports.Report, len(probs))
	for i, p := range probs {
		rs[i] = report("+9779841000010", reports.CategoryOther, "message", p, now.Add(-time.Duration(i)*time.Hour))
	}
	return rs
}

func TestLevelBoundaries(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{0, LevelLow},
		{0.339999, LevelLow},
		{0.34, LevelMedium},
		{0.5, LevelMedium},
		{0.669999, LevelMedium},
		{0.67, LevelHigh},
		{1, LevelHigh},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Level(tc.score), "score %v", tc.score)
	}
}

func TestScoreSingleCleanReport(t *testing.T) {
	rs := reportsWithProbs(0.1)

	score, level := DefaultPolicy.Score(rs, nil, Verdict{})

	// mean + 0.10 * ln(2)
	assert.InDelta(t, 0.1+0.10*math.Log(2), score, 1e-9)
	assert.Equal(t, LevelLow, level)
}

func TestScoreMeanProbability(t *testing.T) {
	rs := reportsWithProbs(0.2, 0.4, 0.6)

	score, _ := DefaultPolicy.Score(rs, nil, Verdict{})

	assert.InDelta(t, 0.4+0.10*math.Log(4), score, 1e-9)
}

func TestScoreAnomalyBonuses(t *testing.T) {
	rs := reportsWithProbs(0.1)
	base, _ := DefaultPolicy.Score(rs, nil, Verdict{})

	cases := []struct {
		name      string
		anomalies []Anomaly
		bonus     float64
	}{
		{"spike", []Anomaly{AnomalySpike}, 0.15},
		{"burst", []Anomaly{AnomalyBurst}, 0.15},
		{"repeated message", []Anomaly{AnomalyRepeatedMessage}, 0.10},
		{"all three", []Anomaly{AnomalySpike, AnomalyBurst, AnomalyRepeatedMessage}, 0.40},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			score, _ := DefaultPolicy.Score(rs, tc.anomalies, Verdict{})
			assert.InDelta(t, base+tc.bonus, score, 1e-9)
		})
	}
}

func TestScoreSuspiciousBonus(t *testing.T) {
	rs := reportsWithProbs(0.1)

	base, _ := DefaultPolicy.Score(rs, nil, Verdict{})
	detected, _ := DefaultPolicy.Score(rs, nil, Verdict{Detected: true})

	assert.InDelta(t, base+0.20, detected, 1e-9)
}

func TestScoreClampsToOne(t *testing.T) {
	rs := reportsWithProbs(0.99, 0.99, 0.99, 0.99, 0.99, 0.99, 0.99, 0.99)
	anomalies := []Anomaly{AnomalySpike, AnomalyBurst, AnomalyRepeatedMessage}

	score, level := DefaultPolicy.Score(rs, anomalies, Verdict{Detected: true})

	assert.Equal(t, 1.0, score)
	assert.Equal(t, LevelHigh, level)
}

func TestScoreStaysInRange(t *testing.T) {
	probs := []float64{0, 0.25, 0.5, 0.75, 0.99}
	anomalySets := [][]Anomaly{
		nil,
		{AnomalySpike},
		{AnomalySpike, AnomalyBurst, AnomalyRepeatedMessage},
	}

	for _, p := range probs {
		for n := 1; n <= 50; n += 7 {
			many := make([]float64, n)
			for i := range many {
				many[i] = p
			}
			rs := reportsWithProbs(many...)

			for _, anomalies := range anomalySets {
				for _, detected := range []bool{false, true} {
					score, level := DefaultPolicy.Score(rs, anomalies, Verdict{Detected: detected})
					require.GreaterOrEqual(t, score, 0.0)
					require.LessOrEqual(t, score, 1.0)
					require.Equal(t, Level(score), level)
				}
			}
		}
	}
}

func TestScorePanicsOnZeroReports(t *testing.T) {
	assert.Panics(t, func() {
		DefaultPolicy.Score(nil, nil, Verdict{})
	})
}
