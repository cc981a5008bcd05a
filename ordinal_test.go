package naivedate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJulianDay_KnownValues(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2453738, julianDay(2006, time.January, 2))
	assert.Equal(t, 2415021, minOrdinal)
	assert.Equal(t, 2488434, maxOrdinal)
	assert.Equal(t, d(2006, time.January, 2), civil(2453738))
}

func TestOrdinal_RoundTrip(t *testing.T) {
	t.Parallel()

	prev := minOrdinal - 1
	for y := MinYear; y <= MaxYear; y++ {
		for m := time.January; m <= time.December; m++ {
			for day := 1; day <= DaysInMonth(y, m); day++ {
				date := d(y, m, day)
				n := date.ordinal()
				if n != prev+1 {
					t.Fatalf("%v: ordinal %d does not follow %d", date, n, prev)
				}
				got, err := fromOrdinal(n)
				if err != nil || got != date {
					t.Fatalf("fromOrdinal(%d) = %v, %v; want %v", n, got, err, date)
				}
				prev = n
			}
		}
	}
	assert.Equal(t, maxOrdinal, prev)
}

func TestFromOrdinal_OutOfRange(t *testing.T) {
	t.Parallel()

	_, err := fromOrdinal(minOrdinal - 1)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = fromOrdinal(maxOrdinal + 1)
	assert.ErrorIs(t, err, ErrOutOfRange)

	got, err := fromOrdinal(minOrdinal)
	require.NoError(t, err)
	assert.Equal(t, "1900-01-01", got.String())
}

func TestWeekday_Congruence(t *testing.T) {
	t.Parallel()

	assert.Equal(t, time.Monday, weekday(julianDay(1900, time.January, 1)))
	assert.Equal(t, time.Monday, weekday(julianDay(2024, time.January, 1)))
	assert.Equal(t, time.Saturday, weekday(julianDay(2024, time.January, 6)))
	assert.Equal(t, time.Friday, weekday(julianDay(2100, time.December, 31)))

	// Cross-check against the standard library in UTC.
	for n := minOrdinal; n <= maxOrdinal; n += 97 {
		date := civil(n)
		want := time.Date(date.year, date.month, date.day, 0, 0, 0, 0, time.UTC).Weekday()
		if got := weekday(n); got != want {
			t.Errorf("weekday(%v) = %v, want %v", date, got, want)
		}
	}
}
