package risk

import (
	"strings"
	"time"
	"unicode"

	"github.com/rajendra-kc/scamlens/internal/features/reports"
)

const (
	anomalyWindow  = time.Hour
	spikeThreshold = 3
	burstThreshold = 5

	// DefaultSimilarityThreshold is the minimum token overlap (Jaccard) for
	// two report messages to count as near-duplicates. Tunable; 0.85 keeps
	// reworded copies of the same template together without merging unrelated
	// complaints that happen to share vocabulary.
	DefaultSimilarityThreshold = 0.85
)

// DetectAnomalies flags statistical anomalies in one number's report history.
// Pure function of (reports, now): same inputs, same result, regardless of
// input order. BURST does not suppress SPIKE; both can be present.
func DetectAnomalies(rs []reports.Report, now time.Time) []Anomaly {
	return DetectAnomaliesThreshold(rs, now, DefaultSimilarityThreshold)
}

// DetectAnomaliesThreshold is DetectAnomalies with an explicit similarity
// threshold for near-duplicate message detection.
func DetectAnomaliesThreshold(rs []reports.Report, now time.Time, similarity float64) []Anomaly {
	var anomalies []Anomaly

	cutoff := now.Add(-anomalyWindow)
	recent := 0
	for _, r := range rs {
		if !r.CreatedAt.Before(cutoff) && !r.CreatedAt.After(now) {
			recent++
		}
	}

	if recent >= spikeThreshold {
		anomalies = append(anomalies, AnomalySpike)
	}
	if recent >= burstThreshold {
		anomalies = append(anomalies, AnomalyBurst)
	}

	if hasRepeatedMessage(rs, similarity) {
		anomalies = append(anomalies, AnomalyRepeatedMessage)
	}

	return anomalies
}

// hasRepeatedMessage reports whether any two distinct reports carry
// near-duplicate message bodies. The comparison is symmetric and a report is
// never compared against itself.
func hasRepeatedMessage(rs []reports.Report, similarity float64) bool {
	normalized := make([]string, len(rs))
	tokens := make([][]string, len(rs))
	for i, r := range rs {
		normalized[i] = normalizeMessage(r.Message)
		tokens[i] = strings.Fields(normalized[i])
	}

	for i := 0; i < len(rs); i++ {
		if normalized[i] == "" {
			continue
		}
		for j := i + 1; j < len(rs); j++ {
			if normalized[i] == normalized[j] {
				return true
			}
			if tokenOverlap(tokens[i], tokens[j]) >= similarity {
				return true
			}
		}
	}

	return false
}

// normalizeMessage lowercases, strips punctuation and collapses whitespace
func normalizeMessage(msg string) string {
	var b strings.Builder
	b.Grow(len(msg))

	for _, r := range strings.ToLower(msg) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// tokenOverlap is the Jaccard similarity of the two token sets
func tokenOverlap(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	setA := make(map[string]bool, len(a))
	for _, tok := range a {
		setA[tok] = true
	}
	setB := make(map[string]bool, len(b))
	for _, tok := range b {
		setB[tok] = true
	}

	intersection := 0
	for tok := range setA {
		if setB[tok] {
			intersection++
		}
	}

	union := len(setA) + len(setB) - intersection
	return float64(intersection) / float64(union)
}
