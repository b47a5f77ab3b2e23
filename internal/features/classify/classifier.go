// Package classify scores free text for scam likelihood. The classifier is a
// deterministic weighted keyword/pattern match: results are shown to end
// users as "detected keywords", so every point of score must be explainable
// by a trigger in the lexicon. No model, no randomness.
package classify

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	apperrors "github.com/rajendra-kc/scamlens/pkg/errors"
)

// Result is the classifier output for one message
type Result struct {
	Probability float64
	Keywords    []string
	Explanation string
}

// Model names the scoring scheme, reported on the classify endpoint so
// stored probabilities can be traced to the vocabulary that produced them.
const Model = "keyword-weighted-v1"

// Per-trigger weights
const (
	highWeight    = 0.25
	mediumWeight  = 0.15
	lowWeight     = 0.08
	patternWeight = 0.20

	maxKeywords = 15
	maxScore    = 0.99
)

var (
	phoneSeqRe  = regexp.MustCompile(`\b\d{10,}\b`)
	moneyTermRe = regexp.MustCompile(`\b(` + strings.Join(moneyTerms, "|") + `)\b`)
)

// Classify scores text for scam probability and returns the matched triggers.
// Deterministic for identical input: stored probabilities stay reproducible.
// Empty or blank text is rejected with ErrInvalidInput.
func Classify(text string) (*Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: empty message", apperrors.ErrInvalidInput)
	}

	lower := strings.ToLower(text)

	var score float64
	var keywords []string
	seen := make(map[string]bool)

	match := func(trigger string, weight float64) {
		if seen[trigger] || !strings.Contains(lower, trigger) {
			return
		}
		seen[trigger] = true
		keywords = append(keywords, trigger)
		score += weight
	}

	for _, kw := range highPriorityKeywords {
		match(kw, highWeight)
	}
	for _, kw := range mediumPriorityKeywords {
		match(kw, mediumWeight)
	}
	for _, kw := range lowPriorityKeywords {
		match(kw, lowWeight)
	}

	for _, pattern := range suspiciousPatterns {
		if strings.Contains(lower, pattern) {
			score += patternWeight
		}
	}

	// Structural red flags beyond the vocabulary

	if len(phoneSeqRe.FindAllString(lower, -1)) >= 2 {
		score += 0.15
		keywords = append(keywords, "multiple phone numbers")
	}

	if moneyTermRe.MatchString(lower) {
		score += 0.10
	}

	if strings.Contains(lower, "http") || strings.Contains(lower, "www.") || strings.Contains(lower, ".com") {
		score += 0.15
		keywords = append(keywords, "contains link")
	}

	urgencyHits := 0
	for _, word := range urgencyWords {
		if strings.Contains(lower, word) {
			urgencyHits++
		}
	}
	if urgencyHits >= 2 {
		score += 0.15
		keywords = append(keywords, "urgency tactics")
	}

	score = math.Min(score, maxScore)

	if len(keywords) > maxKeywords {
		keywords = keywords[:maxKeywords]
	}

	return &Result{
		Probability: score,
		Keywords:    keywords,
		Explanation: explain(score, len(keywords)),
	}, nil
}

func explain(score float64, keywordCount int) string {
	switch {
	case score >= 0.75:
		return fmt.Sprintf("HIGH RISK: strong scam indicators detected. The message contains %d suspicious elements including high-priority scam keywords. Do not respond, share OTPs, or click any links.", keywordCount)
	case score >= 0.50:
		return fmt.Sprintf("MEDIUM-HIGH RISK: the message contains %d suspicious keywords and patterns. Likely a scam attempt. Verify through official channels only and never share OTPs or personal information.", keywordCount)
	case score >= 0.34:
		return fmt.Sprintf("MEDIUM RISK: the message contains %d suspicious keywords. Exercise caution and verify through official channels before taking any action.", keywordCount)
	default:
		return "LOW RISK: few scam indicators detected. Always verify unsolicited messages through official channels."
	}
}
