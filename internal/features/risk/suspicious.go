package risk

import (
	"math"
	"regexp"
	"sort"
	"time"

	"github.com/rajendra-kc/scamlens/internal/features/reports"
)

const (
	activityWindow = 48 * time.Hour

	surgeThreshold     = 3
	baselineWeeklyMax  = 1.0
	otpFocusMin        = 0.5
	highProbMin        = 0.7
	highProbClusterMin = 3
	multiCategoryMin   = 3

	// Disclaimer is always present on a verdict, detected or not. The
	// analyzer infers behavior from crowd reports; it has no carrier data.
	Disclaimer = "This is behavioral analysis from user reports, not telecom-level SIM swap detection."
)

// victimPhrases indicate the number's owner (or a victim) reporting a hijack.
// Matched case-insensitively as whole words so "not me" does not fire on
// "cannot message".
var victimPhrases = []string{
	"hacked",
	"not me",
	"unauthorized",
	"stolen account",
	"someone using",
	"hijacked",
}

var victimRes = compileVictimPhrases()

func compileVictimPhrases() []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(victimPhrases))
	for i, phrase := range victimPhrases {
		res[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(phrase) + `\b`)
	}
	return res
}

// Analyze evaluates the five behavioral flags over the trailing 48-hour
// window and derives the suspicious-activity verdict. Pure function of
// (reports, now); the verdict is recomputed per query and never persisted.
func Analyze(rs []reports.Report, now time.Time) Verdict {
	windowStart := now.Add(-activityWindow)

	var recent, older []reports.Report
	for _, r := range rs {
		if r.CreatedAt.Before(windowStart) {
			older = append(older, r)
		} else if !r.CreatedAt.After(now) {
			recent = append(recent, r)
		}
	}

	otpCount := 0
	highProbCount := 0
	victim := false
	categories := make(map[string]bool)
	for _, r := range recent {
		if r.Category == reports.CategoryOTPTheft {
			otpCount++
		}
		if r.ScamProbability > highProbMin {
			highProbCount++
		}
		if !victim && victimSelfReport(r.Message) {
			victim = true
		}
		categories[string(r.Category)] = true
	}

	otpProportion := 0.0
	if len(recent) > 0 {
		otpProportion = float64(otpCount) / float64(len(recent))
	}

	flags := Flags{
		RecentSurge:         len(recent) >= surgeThreshold && weeklyBaseline(older, windowStart) <= baselineWeeklyMax,
		OTPFocus:            len(recent) > 0 && otpProportion >= otpFocusMin,
		HighProbCluster:     highProbCount >= highProbClusterMin,
		VictimSelfReport:    victim,
		MultiCategoryAttack: len(categories) >= multiCategoryMin,
	}

	// Two or more flags are required before anything is reported: a single
	// match is treated as noise, not signal.
	detected := flags.Count() >= 2

	uniqueCategories := make([]string, 0, len(categories))
	for c := range categories {
		uniqueCategories = append(uniqueCategories, c)
	}
	sort.Strings(uniqueCategories)

	return Verdict{
		Detected:          detected,
		Confidence:        confidence(flags.Count()),
		LikelyScenario:    scenario(flags, detected),
		Flags:             flags,
		RecentReportCount: len(recent),
		OTPProportion:     math.Round(otpProportion*1000) / 1000,
		UniqueCategories:  uniqueCategories,
		Disclaimer:        Disclaimer,
	}
}

// weeklyBaseline is the rate of reports per week outside the activity window.
// A quiet history means a sudden cluster of reports is a surge; the same
// cluster on an already-busy number is not.
func weeklyBaseline(older []reports.Report, windowStart time.Time) float64 {
	if len(older) == 0 {
		return 0
	}

	oldest := older[0].CreatedAt
	for _, r := range older[1:] {
		if r.CreatedAt.Before(oldest) {
			oldest = r.CreatedAt
		}
	}

	weeks := windowStart.Sub(oldest).Hours() / (24 * 7)
	if weeks < 1 {
		weeks = 1
	}

	return float64(len(older)) / weeks
}

func victimSelfReport(message string) bool {
	for _, re := range victimRes {
		if re.MatchString(message) {
			return true
		}
	}
	return false
}

// confidence maps the flag count to the verdict confidence. Reported as low
// whenever nothing was detected.
func confidence(flagCount int) string {
	switch {
	case flagCount >= 4:
		return ConfidenceHigh
	case flagCount >= 2:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}
