package trending

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajendra-kc/scamlens/internal/features/reports"
)

func report(number string, at time.Time) reports.Report {
	return reports.Report{
		ID:        fmt.Sprintf("r-%s-%d", number, at.UnixNano()),
		Number:    number,
		Category:  reports.CategoryOther,
		Message:   "reported for spam calls",
		CreatedAt: at,
	}
}

func TestRankCountsAndSorts(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	var rs []reports.Report
	for i := 0; i < 3; i++ {
		rs = append(rs, report("+9779841000001", now.Add(-time.Duration(i+1)*time.Hour)))
	}
	rs = append(rs, report("+9779841000002", now.Add(-time.Hour)))

	entries := Rank(rs, now, DefaultWindow, 10)

	require.Len(t, entries, 2)
	assert.Equal(t, Entry{Number: "+9779841000001", Reports: 3}, entries[0])
	assert.Equal(t, Entry{Number: "+9779841000002", Reports: 1}, entries[1])
}

func TestRankBreaksTiesByRecency(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	var rs []reports.Report
	for i := 0; i < 5; i++ {
		rs = append(rs, report("+9779841000001", now.Add(-time.Duration(i+2)*time.Hour)))
		rs = append(rs, report("+9779841000002", now.Add(-time.Duration(i+1)*time.Hour)))
	}

	entries := Rank(rs, now, DefaultWindow, 10)

	require.Len(t, entries, 2)
	assert.Equal(t, "+9779841000002", entries[0].Number)
	assert.Equal(t, "+9779841000001", entries[1].Number)
	assert.Equal(t, 5, entries[0].Reports)
	assert.Equal(t, 5, entries[1].Reports)
}

func TestRankFallsBackToNumberOrder(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	at := now.Add(-time.Hour)

	rs := []reports.Report{
		report("+9779841000009", at),
		report("+9779841000001", at),
	}

	entries := Rank(rs, now, DefaultWindow, 10)

	require.Len(t, entries, 2)
	assert.Equal(t, "+9779841000001", entries[0].Number)
	assert.Equal(t, "+9779841000009", entries[1].Number)
}

func TestRankExcludesReportsOutsideWindow(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	rs := []reports.Report{
		report("+9779841000001", now.Add(-25*time.Hour)),
		report("+9779841000001", now.Add(-30*time.Hour)),
		report("+9779841000002", now.Add(-time.Hour)),
	}

	entries := Rank(rs, now, DefaultWindow, 10)

	require.Len(t, entries, 1)
	assert.Equal(t, "+9779841000002", entries[0].Number)
}

func TestRankTruncatesToTopN(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	var rs []reports.Report
	for i := 0; i < 8; i++ {
		number := fmt.Sprintf("+977984100000%d", i)
		for j := 0; j <= i; j++ {
			rs = append(rs, report(number, now.Add(-time.Duration(j+1)*time.Minute)))
		}
	}

	entries := Rank(rs, now, DefaultWindow, 3)

	require.Len(t, entries, 3)
	assert.Equal(t, 8, entries[0].Reports)
	assert.Equal(t, 7, entries[1].Reports)
	assert.Equal(t, 6, entries[2].Reports)
}

func TestRankEmptyWindow(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	entries := Rank(nil, now, DefaultWindow, 10)

	require.NotNil(t, entries)
	assert.Empty(t, entries)
}
