package naivedate

import (
	"math"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddMonths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		date string
		n    int
		want string
	}{
		{"2024-01-31", 1, "2024-02-29"},
		{"2023-01-31", 1, "2023-02-28"},
		{"2024-03-31", 1, "2024-04-30"},
		{"2024-02-15", -1, "2024-01-15"},
		{"2024-01-15", -1, "2023-12-15"},
		{"2024-12-31", 2, "2025-02-28"},
		{"2024-05-31", -3, "2024-02-29"},
		{"2024-06-10", 0, "2024-06-10"},
		{"2024-06-10", 24, "2026-06-10"},
		{"1900-01-31", 1, "1900-02-28"},
	}
	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			got, err := AddMonths(tt.date, tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got, "AddMonths(%q, %d)", tt.date, tt.n)
		})
	}
}

func TestSubtractMonths(t *testing.T) {
	t.Parallel()

	got, err := SubtractMonths("2024-03-31", 1)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", got)
}

func TestAddYears(t *testing.T) {
	t.Parallel()

	tests := []struct {
		date string
		n    int
		want string
	}{
		{"2024-02-29", 1, "2025-02-28"},
		{"2020-02-29", 4, "2024-02-29"},
		{"2000-02-29", 100, "2100-02-28"},
		{"2024-02-29", -124, "1900-02-28"},
		{"2024-07-04", -1, "2023-07-04"},
	}
	for _, tt := range tests {
		got, err := AddYears(tt.date, tt.n)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "AddYears(%q, %d)", tt.date, tt.n)
	}
}

func TestAddDays(t *testing.T) {
	t.Parallel()

	tests := []struct {
		date string
		n    int
		want string
	}{
		{"2024-01-01", 1, "2024-01-02"},
		{"2024-02-28", 1, "2024-02-29"},
		{"2023-02-28", 1, "2023-03-01"},
		{"2024-12-31", 1, "2025-01-01"},
		{"2024-01-01", -1, "2023-12-31"},
		{"2024-01-01", 366, "2025-01-01"},
		{"1900-01-01", 73413, "2100-12-31"},
	}
	for _, tt := range tests {
		got, err := AddDays(tt.date, tt.n)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "AddDays(%q, %d)", tt.date, tt.n)
	}

	got, err := SubtractDays("2024-03-01", 1)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", got)
}

func TestArithmetic_OutOfRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func() (string, error)
	}{
		{"days past end", func() (string, error) { return AddDays("2100-12-31", 1) }},
		{"days before start", func() (string, error) { return SubtractDays("1900-01-01", 1) }},
		{"days overflow", func() (string, error) { return AddDays("2024-01-01", math.MaxInt) }},
		{"days underflow", func() (string, error) { return AddDays("2024-01-01", math.MinInt) }},
		{"months past end", func() (string, error) { return AddMonths("2100-12-01", 1) }},
		{"months overflow", func() (string, error) { return AddMonths("2024-01-01", math.MaxInt) }},
		{"months before start", func() (string, error) { return AddMonths("1900-01-31", -1) }},
		{"years past end", func() (string, error) { return AddYears("2100-01-01", 1) }},
		{"years overflow", func() (string, error) { return AddYears("2024-01-01", math.MinInt) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn()
			assert.ErrorIs(t, err, ErrOutOfRange)
			assert.Empty(t, got)
		})
	}
}

func TestDiffDays(t *testing.T) {
	t.Parallel()

	got, err := DiffDays("2024-01-01", "2024-12-31")
	require.NoError(t, err)
	assert.Equal(t, 365, got)

	got, err = DiffDays("2024-12-31", "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, -365, got)

	got, err = DiffDays("1900-01-01", "2100-12-31")
	require.NoError(t, err)
	assert.Equal(t, 73413, got)

	samples := []string{"1900-01-01", "1999-12-31", "2000-02-29", "2024-06-15", "2100-12-31"}
	for _, a := range samples {
		for _, b := range samples {
			ab, err := DiffDays(a, b)
			require.NoError(t, err)
			ba, err := DiffDays(b, a)
			require.NoError(t, err)
			assert.Equal(t, -ab, ba, "DiffDays(%s, %s)", a, b)

			c, err := Compare(a, b)
			require.NoError(t, err)
			rc, err := Compare(b, a)
			require.NoError(t, err)
			assert.Equal(t, -c, rc, "Compare antisymmetry %s %s", a, b)
			switch {
			case ab > 0:
				assert.Equal(t, -1, c)
				assert.True(t, IsBefore(a, b))
				assert.False(t, IsAfter(a, b))
			case ab < 0:
				assert.Equal(t, 1, c)
				assert.True(t, IsAfter(a, b))
				assert.False(t, IsBefore(a, b))
			default:
				assert.Equal(t, 0, c)
				assert.False(t, IsBefore(a, b))
				assert.False(t, IsAfter(a, b))
			}
		}
	}
}

func TestRange(t *testing.T) {
	t.Parallel()

	got, err := Range("2024-01-01", "2024-01-03")
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-01-01", "2024-01-02", "2024-01-03"}, got)

	got, err = Range("2024-02-27", "2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-02-27", "2024-02-28", "2024-02-29", "2024-03-01"}, got)

	got, err = Range("2024-05-05", "2024-05-05")
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-05-05"}, got)

	from, to := "2023-11-20", "2024-03-10"
	got, err = Range(from, to)
	require.NoError(t, err)
	n, err := DiffDays(from, to)
	require.NoError(t, err)
	assert.Len(t, got, n+1)
	assert.Equal(t, from, got[0])
	assert.Equal(t, to, got[len(got)-1])
	assert.True(t, slices.IsSorted(got))

	got, err = Range("2024-01-03", "2024-01-01")
	assert.ErrorIs(t, err, ErrInvertedRange)
	assert.Empty(t, got)
}

func TestDays_Iterator(t *testing.T) {
	t.Parallel()

	from, to := MustParseDate("2024-12-30"), MustParseDate("2025-01-02")
	var got []string
	for date := range Days(from, to) {
		got = append(got, date.String())
	}
	assert.Equal(t, []string{"2024-12-30", "2024-12-31", "2025-01-01", "2025-01-02"}, got)

	// Early termination.
	count := 0
	for range Days(from, to) {
		count++
		break
	}
	assert.Equal(t, 1, count)

	for range Days(to, from) {
		t.Fatal("inverted iterator should yield nothing")
	}

	dates, err := Between(from, to)
	require.NoError(t, err)
	assert.Len(t, dates, 4)
	_, err = Between(to, from)
	assert.ErrorIs(t, err, ErrInvertedRange)
}

func TestDays_ZeroDate(t *testing.T) {
	t.Parallel()

	end := MustParseDate("1900-01-05")
	for range Days(Date{}, end) {
		t.Fatal("iterator over the zero Date should yield nothing")
	}
	for range Days(end, d(2101, time.January, 1)) {
		t.Fatal("iterator past MaxYear should yield nothing")
	}

	got, err := Between(Date{}, end)
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.Empty(t, got)

	_, err = Between(end, Date{})
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestInvalidInput_NeverPanics(t *testing.T) {
	t.Parallel()

	_, err := AddDays("invalid", 1)
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = Weekday("2024-02-30")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = DiffDays("invalid", "2024-01-01")
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = DiffDays("2024-01-01", "invalid")
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = Compare("2024-01-01", "2024-13-01")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = Range("invalid", "2024-01-01")
	assert.ErrorIs(t, err, ErrMalformed)

	assert.False(t, IsBefore("invalid", "2024-01-01"))
	assert.False(t, IsAfter("2024-01-01", "invalid"))

	for _, fn := range []func(string) (string, error){
		MonthName, StartOfMonth, EndOfMonth,
	} {
		got, err := fn("garbage")
		assert.Error(t, err)
		assert.Empty(t, got)
	}
}
