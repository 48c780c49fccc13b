package daycount

import (
	"fmt"
	"time"
)

// civil truncates t to its calendar date at midnight UTC so that day
// arithmetic ignores time-of-day and zone.
func civil(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ActualDays returns the literal calendar-day difference second - first.
//
// It returns ErrDateOrder if second is before first.
func ActualDays(first, second time.Time) (int, error) {
	days := int(civil(second).Sub(civil(first)) / (24 * time.Hour))
	if days < 0 {
		return 0, fmt.Errorf("ActualDays: %s before %s: %w",
			second.Format("2006-01-02"), first.Format("2006-01-02"), ErrDateOrder)
	}
	return days, nil
}

// NextLeapDay returns the first February 29 strictly after t.
func NextLeapDay(t time.Time) time.Time {
	d := civil(t)
	y := d.Year()
	if IsLeapYear(y) {
		feb29 := time.Date(y, 2, 29, 0, 0, 0, 0, time.UTC)
		if feb29.After(d) {
			return feb29
		}
	}
	y++
	for !IsLeapYear(y) {
		y++
	}
	return time.Date(y, 2, 29, 0, 0, 0, 0, time.UTC)
}

// LengthOfYear returns 366 if t falls in a leap year, else 365.
func LengthOfYear(t time.Time) int {
	if IsLeapYear(t.Year()) {
		return 366
	}
	return 365
}

// IsLeapYear reports whether year is a leap year in the proleptic Gregorian calendar.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// isLastDayOfFebruary reports whether t is February 28 in a common year or
// February 29 in a leap year.
func isLastDayOfFebruary(t time.Time) bool {
	return t.Month() == time.February && t.Day() == daysInMonth(t.Year(), time.February)
}

// checkOrder validates that second does not precede first.
func checkOrder(first, second time.Time) error {
	if civil(second).Before(civil(first)) {
		return fmt.Errorf("day count from %s to %s: %w",
			first.Format("2006-01-02"), second.Format("2006-01-02"), ErrDateOrder)
	}
	return nil
}
