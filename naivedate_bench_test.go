package naivedate

import "testing"

func BenchmarkParseDate(b *testing.B) {
	for b.Loop() {
		_, _ = ParseDate("2024-06-15")
	}
}

func BenchmarkAddMonths(b *testing.B) {
	for b.Loop() {
		_, _ = AddMonths("2024-01-31", 1)
	}
}

func BenchmarkDiffDays(b *testing.B) {
	for b.Loop() {
		_, _ = DiffDays("1900-01-01", "2100-12-31")
	}
}

func BenchmarkWeekday(b *testing.B) {
	for b.Loop() {
		_, _ = Weekday("2024-01-01")
	}
}

func BenchmarkFormat(b *testing.B) {
	for b.Loop() {
		_, _ = Format("2024-01-05", "dddd, MMMM D, YYYY")
	}
}

func BenchmarkComplete_Year_Cached(b *testing.B) {
	cal := New()
	for b.Loop() {
		cal.Complete("2024")
	}
}

func BenchmarkComplete_Year_Uncached(b *testing.B) {
	cal := New(WithCache(nil))
	for b.Loop() {
		cal.Complete("2024")
	}
}

func BenchmarkComplete_DayPrefix(b *testing.B) {
	cal := New()
	for b.Loop() {
		cal.Complete("2024-01-1")
	}
}

func BenchmarkRange_Year(b *testing.B) {
	for b.Loop() {
		_, _ = Range("2024-01-01", "2024-12-31")
	}
}

func BenchmarkBusinessDaysBetween(b *testing.B) {
	cal := New()
	_ = cal.AddHoliday("2024-12-25", "Christmas Day")
	for b.Loop() {
		_, _ = cal.BusinessDaysBetween("2024-01-01", "2024-12-31")
	}
}
