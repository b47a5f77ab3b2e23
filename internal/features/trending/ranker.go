// Package trending ranks phone numbers by report volume in a rolling window.
package trending

import (
	"sort"
	"time"

	"github.com/rajendra-kc/scamlens/internal/features/reports"
)

// DefaultWindow is the rolling window trending counts over
const DefaultWindow = 24 * time.Hour

// Entry is one ranked number
type Entry struct {
	Number  string `json:"number"`
	Reports int    `json:"reports"`
}

// Rank counts reports per number within the trailing window and returns the
// top n numbers, most reported first. Ties are broken by the most recent
// report timestamp, newer first; equal again falls back to the number itself
// so the ordering stays deterministic. An empty window yields an empty slice.
func Rank(rs []reports.Report, now time.Time, window time.Duration, topN int) []Entry {
	cutoff := now.Add(-window)

	counts := make(map[string]int)
	latest := make(map[string]time.Time)
	for _, r := range rs {
		if r.CreatedAt.Before(cutoff) || r.CreatedAt.After(now) {
			continue
		}
		counts[r.Number]++
		if r.CreatedAt.After(latest[r.Number]) {
			latest[r.Number] = r.CreatedAt
		}
	}

	entries := make([]Entry, 0, len(counts))
	for number, count := range counts {
		entries = append(entries, Entry{Number: number, Reports: count})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Reports != entries[j].Reports {
			return entries[i].Reports > entries[j].Reports
		}
		li, lj := latest[entries[i].Number], latest[entries[j].Number]
		if !li.Equal(lj) {
			return li.After(lj)
		}
		return entries[i].Number < entries[j].Number
	})

	if topN > 0 && len(entries) > topN {
		entries = entries[:topN]
	}

	return entries
}
