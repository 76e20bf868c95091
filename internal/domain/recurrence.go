package domain

// RecurrencePattern names a fixed day interval between occurrences
type RecurrencePattern string

const (
	PatternWeekly      RecurrencePattern = "weekly"
	PatternBiweekly    RecurrencePattern = "biweekly"
	PatternEvery3Weeks RecurrencePattern = "every_3_weeks"
	PatternMonthly     RecurrencePattern = "monthly" // 28 days, not a calendar month
	PatternEvery5Weeks RecurrencePattern = "every_5_weeks"
	PatternEvery6Weeks RecurrencePattern = "every_6_weeks"
)

var patternIntervals = map[RecurrencePattern]int{
	PatternWeekly:      7,
	PatternBiweekly:    14,
	PatternEvery3Weeks: 21,
	PatternMonthly:     28,
	PatternEvery5Weeks: 35,
	PatternEvery6Weeks: 42,
}

// IntervalDays returns the number of days between occurrences
func (p RecurrencePattern) IntervalDays() (int, bool) {
	days, ok := patternIntervals[p]
	return days, ok
}
