// Package risklevel holds the three-tier risk level contract in a leaf
// package so that classify, screenshot, and risk can all share it
// without an import cycle.
package risklevel

// Risk level is a public contract displayed to users; the boundaries in
// Level() must not drift.
const (
	Low    = "LOW"
	Medium = "MEDIUM"
	High   = "HIGH"

	ThresholdMedium = 0.34
	ThresholdHigh   = 0.67
)

// Level maps a score in [0,1] to the three-tier risk level
func Level(score float64) string {
	switch {
	case score >= ThresholdHigh:
		return High
	case score >= ThresholdMedium:
		return Medium
	default:
		return Low
	}
}
