package naivedate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedClock(year int, month time.Month, day int, loc *time.Location) Clock {
	return ClockFunc(func() time.Time {
		return time.Date(year, month, day, 23, 30, 0, 0, loc)
	})
}

func TestTodayYesterdayTomorrow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                       string
		clock                      Clock
		today, yesterday, tomorrow string
	}{
		{"mid month", fixedClock(2024, time.June, 15, time.UTC), "2024-06-15", "2024-06-14", "2024-06-16"},
		{"leap day", fixedClock(2024, time.February, 29, time.UTC), "2024-02-29", "2024-02-28", "2024-03-01"},
		{"year end", fixedClock(2024, time.December, 31, time.UTC), "2024-12-31", "2024-12-30", "2025-01-01"},
		{"range edge", fixedClock(2100, time.December, 31, time.UTC), "2100-12-31", "2100-12-30", "2101-01-01"},
		{
			"clock location is respected",
			fixedClock(2024, time.January, 1, time.FixedZone("UTC+9", 9*60*60)),
			"2024-01-01", "2023-12-31", "2024-01-02",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cal := New(WithClock(tt.clock))
			assert.Equal(t, tt.today, cal.Today())
			assert.Equal(t, tt.yesterday, cal.Yesterday())
			assert.Equal(t, tt.tomorrow, cal.Tomorrow())
		})
	}
}

func TestToday_SystemClock(t *testing.T) {
	t.Parallel()

	today := Today()
	assert.True(t, IsValidString(today))
	assert.Len(t, Yesterday(), 10)
	assert.Len(t, Tomorrow(), 10)
}
