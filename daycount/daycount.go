// Package daycount implements market-standard day count conventions for
// interest accrual. A convention converts a pair of calendar dates into a
// numeric year fraction; the set of built-in conventions follows the 2006
// ISDA definitions and common market usage.
package daycount

import (
	"errors"
	"time"
)

var (
	// ErrUnknown is returned by Of when no convention is registered under the requested name.
	ErrUnknown = errors.New("unknown day count convention")

	// ErrDateOrder is returned when the second date of a period precedes the first.
	ErrDateOrder = errors.New("dates must be in order")
)

// ScheduleInfo supplies the schedule context some conventions depend on.
//
// It is provided by the schedule construction layer; the engine never builds
// or caches one. Only two conventions consult it: 30U/360 reads the
// end-of-month flag and 30E/360 ISDA asks whether the second date is the
// final accrual date of the schedule.
type ScheduleInfo interface {
	// IsEndOfMonthConvention reports whether the schedule rolls on month ends.
	IsEndOfMonthConvention() bool

	// IsScheduleEndDate reports whether date is the schedule's final accrual date.
	IsScheduleEndDate(date time.Time) bool
}

// Convention is a named, stateless day count rule.
//
// Implementations must be pure: the fraction depends only on the two dates
// and the schedule context, so a single value is safe for concurrent use.
type Convention interface {
	// Name returns the canonical convention name, e.g. "Act/360".
	Name() string

	// Fraction computes the accrual year fraction from first to second.
	//
	// Every convention requires second >= first and returns ErrDateOrder
	// otherwise; dates are never reordered on the caller's behalf.
	Fraction(first, second time.Time, info ScheduleInfo) (float64, error)
}

// NoSchedule is the context to use when no schedule information is available.
//
// It assumes the end-of-month rule applies and that no date is the schedule
// end date, matching the defaults of single-period usage.
var NoSchedule ScheduleInfo = noSchedule{}

type noSchedule struct{}

func (noSchedule) IsEndOfMonthConvention() bool { return true }
func (noSchedule) IsScheduleEndDate(time.Time) bool { return false }
