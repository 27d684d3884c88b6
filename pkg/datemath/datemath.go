package datemath

import "time"

// MaxPenaltyMonths is the statutory cap on late months charged for a single
// tax period (2 years).
const MaxPenaltyMonths = 24

// GraceDays is the day-of-month threshold: a leftover day component has to
// exceed this before it counts as an extra late month.
const GraceDays = 15

// Diff holds a calendar breakdown between two dates.
// Months is cumulative (Years*12 + month remainder); Days is the leftover
// day component after the month borrow, not the total day count.
type Diff struct {
	Years  int
	Months int
	Days   int
}

// Between decomposes end - start into years, cumulative months and leftover
// days, borrowing from the prior unit when a component goes negative.
// Callers must ensure end >= start; the result is unspecified otherwise.
func Between(start, end time.Time) Diff {
	years := end.Year() - start.Year()
	months := int(end.Month()) - int(start.Month())
	days := end.Day() - start.Day()

	if days < 0 {
		months--
		// days in the month preceding end
		prev := time.Date(end.Year(), end.Month(), 0, 0, 0, 0, 0, end.Location())
		days += prev.Day()
	}
	if months < 0 {
		years--
		months += 12
	}

	return Diff{
		Years:  years,
		Months: years*12 + months,
		Days:   days,
	}
}

// TotalDays returns the whole number of days between two dates.
func TotalDays(start, end time.Time) int {
	return int(end.Sub(start).Hours() / 24)
}

// PenaltyMonths computes the number of late months charged for a liability
// due on dueDate and still unpaid at asOf. Zero when asOf is on or before
// the due date. A leftover day component over GraceDays counts as one more
// month. The result is capped at maxMonths.
func PenaltyMonths(dueDate, asOf time.Time, maxMonths int) int {
	if !asOf.After(dueDate) {
		return 0
	}

	diff := Between(dueDate, asOf)
	months := diff.Months
	if diff.Days > GraceDays {
		months++
	}

	if months > maxMonths {
		return maxMonths
	}
	return months
}

// AnniversaryInYear projects base's month and day into the given year,
// clamping to the last valid day of that month when the day does not exist
// (e.g. a Feb 29 anniversary in a non-leap year).
func AnniversaryInYear(year int, base time.Time) time.Time {
	month := base.Month()
	day := base.Day()

	last := time.Date(year, month+1, 0, 0, 0, 0, 0, base.Location()).Day()
	if day > last {
		day = last
	}

	return time.Date(year, month, day, 0, 0, 0, 0, base.Location())
}

// MonthsBefore returns the date the given number of months before t,
// clamping to the last valid day of the target month (May 31 minus 3 months
// is Feb 28 or 29, never a normalized March date).
func MonthsBefore(t time.Time, months int) time.Time {
	year := t.Year()
	month := t.Month() - time.Month(months)
	day := t.Day()

	last := time.Date(year, month+1, 0, 0, 0, 0, 0, t.Location()).Day()
	if day > last {
		day = last
	}

	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// NextAnnualAfter adds whole years to date until it falls strictly after ref.
func NextAnnualAfter(date, ref time.Time) time.Time {
	next := date
	for !next.After(ref) {
		next = next.AddDate(1, 0, 0)
	}
	return next
}

// Midnight truncates a time to its date in the same location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
