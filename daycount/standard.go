package daycount

import (
	"fmt"
	"time"
)

// Standard enumerates the built-in day count conventions by canonical name.
type Standard string

const (
	// OneOne is the '1/1' day count; the fraction is always one.
	OneOne Standard = "1/1"

	// ActActISDA divides actual days in a leap year by 366 and actual days
	// in a common year by 365, summing the per-year parts.
	ActActISDA Standard = "Act/Act ISDA"

	// Act365Actual divides actual days by 366 if the period contains a leap
	// day, else by 365.
	Act365Actual Standard = "Act/365 Actual"

	// Act360 divides actual days by 360.
	Act360 Standard = "Act/360"

	// Act364 divides actual days by 364.
	Act364 Standard = "Act/364"

	// Act365 divides actual days by a fixed 365.
	Act365 Standard = "Act/365"

	// Act36525 divides actual days by 365.25.
	Act36525 Standard = "Act/365.25"

	// NL365 divides actual days excluding leap days by 365.
	NL365 Standard = "NL/365"

	// Thirty360ISDA is the 30/360 bond-basis rule with the ISDA 31st-day clamps.
	Thirty360ISDA Standard = "30/360 ISDA"

	// ThirtyU360 is 30/360 ISDA plus end-of-February rules when the schedule
	// uses the end-of-month convention.
	ThirtyU360 Standard = "30U/360"

	// ThirtyE360ISDA is the German 30/360 rule with unconditional
	// end-of-February clamping, except on the schedule end date.
	ThirtyE360ISDA Standard = "30E/360 ISDA"

	// ThirtyE360 is the Eurobond 30/360 rule: both 31sts clamp to 30.
	ThirtyE360 Standard = "30E/360"

	// ThirtyEPlus360 clamps the first 31st to 30 and rolls a second 31st
	// into day 1 of the following month.
	ThirtyEPlus360 Standard = "30E+/360"
)

// standards lists the built-ins in registration order.
var standards = []Standard{
	OneOne,
	ActActISDA,
	Act365Actual,
	Act360,
	Act364,
	Act365,
	Act36525,
	NL365,
	Thirty360ISDA,
	ThirtyU360,
	ThirtyE360ISDA,
	ThirtyE360,
	ThirtyEPlus360,
}

// Name returns the canonical convention name.
func (s Standard) Name() string { return string(s) }

func (s Standard) String() string { return string(s) }

// Fraction computes the accrual year fraction from first to second.
//
// One arm per convention so every formula is auditable in one place.
// Adjustment ordering within the 30/360 family is significant and follows
// the 2006 ISDA definitions. A nil info is treated as NoSchedule.
func (s Standard) Fraction(first, second time.Time, info ScheduleInfo) (float64, error) {
	if info == nil {
		info = NoSchedule
	}
	switch s {
	case OneOne:
		if err := checkOrder(first, second); err != nil {
			return 0, err
		}
		return 1, nil

	case ActActISDA:
		if err := checkOrder(first, second); err != nil {
			return 0, err
		}
		y1, y2 := first.Year(), second.Year()
		firstYearLength := float64(LengthOfYear(first))
		if y1 == y2 {
			return float64(second.YearDay()-first.YearDay()) / firstYearLength, nil
		}
		firstRemainderOfYear := firstYearLength - float64(first.YearDay()) + 1
		secondRemainderOfYear := float64(second.YearDay() - 1)
		secondYearLength := float64(LengthOfYear(second))
		return firstRemainderOfYear/firstYearLength +
			secondRemainderOfYear/secondYearLength +
			float64(y2-y1-1), nil

	case Act365Actual:
		actualDays, err := ActualDays(first, second)
		if err != nil {
			return 0, err
		}
		if NextLeapDay(first).After(civil(second)) {
			return float64(actualDays) / 365, nil
		}
		return float64(actualDays) / 366, nil

	case Act360:
		actualDays, err := ActualDays(first, second)
		if err != nil {
			return 0, err
		}
		return float64(actualDays) / 360, nil

	case Act364:
		actualDays, err := ActualDays(first, second)
		if err != nil {
			return 0, err
		}
		return float64(actualDays) / 364, nil

	case Act365:
		actualDays, err := ActualDays(first, second)
		if err != nil {
			return 0, err
		}
		return float64(actualDays) / 365, nil

	case Act36525:
		actualDays, err := ActualDays(first, second)
		if err != nil {
			return 0, err
		}
		return float64(actualDays) / 365.25, nil

	case NL365:
		actualDays, err := ActualDays(first, second)
		if err != nil {
			return 0, err
		}
		leapDays := 0
		for d := NextLeapDay(first); !d.After(civil(second)); d = NextLeapDay(d) {
			leapDays++
		}
		return float64(actualDays-leapDays) / 365, nil

	case Thirty360ISDA:
		if err := checkOrder(first, second); err != nil {
			return 0, err
		}
		d1, d2 := first.Day(), second.Day()
		if d1 == 31 {
			d1 = 30
		}
		if d2 == 31 && d1 == 30 {
			d2 = 30
		}
		return thirty360(
			first.Year(), int(first.Month()), d1,
			second.Year(), int(second.Month()), d2), nil

	case ThirtyU360:
		if err := checkOrder(first, second); err != nil {
			return 0, err
		}
		d1, d2 := first.Day(), second.Day()
		if info.IsEndOfMonthConvention() && isLastDayOfFebruary(first) {
			if isLastDayOfFebruary(second) {
				d2 = 30
			}
			d1 = 30
		}
		if d1 == 31 {
			d1 = 30
		}
		if d2 == 31 && d1 == 30 {
			d2 = 30
		}
		return thirty360(
			first.Year(), int(first.Month()), d1,
			second.Year(), int(second.Month()), d2), nil

	case ThirtyE360ISDA:
		if err := checkOrder(first, second); err != nil {
			return 0, err
		}
		d1, d2 := first.Day(), second.Day()
		if d1 == 31 || isLastDayOfFebruary(first) {
			d1 = 30
		}
		if d2 == 31 || (isLastDayOfFebruary(second) && !info.IsScheduleEndDate(second)) {
			d2 = 30
		}
		return thirty360(
			first.Year(), int(first.Month()), d1,
			second.Year(), int(second.Month()), d2), nil

	case ThirtyE360:
		if err := checkOrder(first, second); err != nil {
			return 0, err
		}
		d1, d2 := first.Day(), second.Day()
		if d1 == 31 {
			d1 = 30
		}
		if d2 == 31 {
			d2 = 30
		}
		return thirty360(
			first.Year(), int(first.Month()), d1,
			second.Year(), int(second.Month()), d2), nil

	case ThirtyEPlus360:
		if err := checkOrder(first, second); err != nil {
			return 0, err
		}
		d1, d2 := first.Day(), second.Day()
		m1, m2 := int(first.Month()), int(second.Month())
		if d1 == 31 {
			d1 = 30
		}
		if d2 == 31 {
			d2 = 1
			// Nature of the formula means December needs no roll into January.
			m2 = m2 + 1
		}
		return thirty360(
			first.Year(), m1, d1,
			second.Year(), m2, d2), nil
	}
	return 0, fmt.Errorf("Fraction: %q: %w", string(s), ErrUnknown)
}

// thirty360 is the shared 360-basis formula applied after day-of-month adjustment.
func thirty360(y1, m1, d1, y2, m2, d2 int) float64 {
	return float64(360*(y2-y1)+30*(m2-m1)+(d2-d1)) / 360
}
