// Package schedule generates unadjusted accrual schedules and feeds them to
// the day count engine. Dates are plain calendar dates; business-day rolling
// is the responsibility of an upstream holiday-calendar layer.
package schedule

import (
	"fmt"
	"time"

	"github.com/meenmo/accrual/daycount"
	"github.com/meenmo/accrual/utils"
)

// Frequency enumerates accrual frequencies in months.
type Frequency int

const (
	FreqAnnual    Frequency = 12
	FreqSemi      Frequency = 6
	FreqQuarterly Frequency = 3
	FreqMonthly   Frequency = 1
)

// RollConvention for month-end handling when stepping between periods.
type RollConvention string

const (
	// RollDayOfMonth keeps the anchor day-of-month, letting Go normalize
	// short months.
	RollDayOfMonth RollConvention = "DAY_OF_MONTH"
	// RollBackwardEOM steps EDATE-style: a day-of-month that overflows a
	// shorter month clamps to that month's end instead of spilling over.
	RollBackwardEOM RollConvention = "BACKWARD_EOM"
)

// Direction selects which end of the schedule the roll is anchored to.
type Direction string

const (
	// Forward rolls from the effective date toward maturity.
	Forward Direction = "FORWARD"
	// Backward rolls from maturity toward the effective date, creating a
	// front stub if the dates do not divide evenly (Bloomberg SWPM
	// convention for IBOR legs).
	Backward Direction = "BACKWARD"
)

// Terms describes how a schedule is generated.
type Terms struct {
	Frequency Frequency
	Roll      RollConvention
	Direction Direction

	// EndOfMonth marks the schedule as following the end-of-month
	// convention, which day count rules such as 30U/360 consult.
	EndOfMonth bool
}

// Period is a single accrual period.
type Period struct {
	StartDate time.Time
	EndDate   time.Time
}

// Schedule is a generated sequence of contiguous accrual periods.
//
// It implements daycount.ScheduleInfo, so a schedule can be passed directly
// as the context for its own periods' fractions.
type Schedule struct {
	Periods []Period

	terms   Terms
	endDate time.Time
}

// IsEndOfMonthConvention reports whether the schedule rolls on month ends.
func (s *Schedule) IsEndOfMonthConvention() bool {
	return s.terms.EndOfMonth
}

// IsScheduleEndDate reports whether date is the final accrual date.
func (s *Schedule) IsScheduleEndDate(date time.Time) bool {
	return date.Year() == s.endDate.Year() &&
		date.Month() == s.endDate.Month() &&
		date.Day() == s.endDate.Day()
}

// Generate builds the accrual schedule between effective and maturity.
func Generate(effective, maturity time.Time, terms Terms) (*Schedule, error) {
	if maturity.Before(effective) {
		return nil, fmt.Errorf("Generate: maturity %s before effective %s",
			maturity.Format("2006-01-02"), effective.Format("2006-01-02"))
	}
	if terms.Frequency <= 0 {
		return nil, fmt.Errorf("Generate: unsupported frequency %d", terms.Frequency)
	}

	var dates []time.Time
	if terms.Direction == Backward {
		dates = rollBackward(effective, maturity, terms)
	} else {
		dates = rollForward(effective, maturity, terms)
	}

	periods := make([]Period, 0, len(dates)-1)
	for i := 0; i < len(dates)-1; i++ {
		periods = append(periods, Period{StartDate: dates[i], EndDate: dates[i+1]})
	}
	return &Schedule{Periods: periods, terms: terms, endDate: dates[len(dates)-1]}, nil
}

// rollForward steps from the effective date; the final period is truncated
// at maturity if the tenor does not divide evenly.
func rollForward(effective, maturity time.Time, terms Terms) []time.Time {
	months := int(terms.Frequency)
	dates := []time.Time{effective}
	current := effective
	for {
		next := step(current, months, terms.Roll)
		if next.After(maturity) {
			break
		}
		dates = append(dates, next)
		current = next
	}
	if dates[len(dates)-1].Before(maturity) {
		dates = append(dates, maturity)
	}
	return dates
}

// rollBackward steps from maturity so intermediate dates align with it.
// A front stub of seven days or fewer is absorbed into the first regular
// period rather than kept as a tiny period of its own.
func rollBackward(effective, maturity time.Time, terms Terms) []time.Time {
	months := int(terms.Frequency)
	var dates []time.Time
	current := maturity
	for current.After(effective) {
		dates = append([]time.Time{current}, dates...)
		current = step(current, -months, terms.Roll)
	}

	if len(dates) > 1 {
		stubDays, err := daycount.ActualDays(effective, dates[0])
		if err == nil && stubDays > 0 && stubDays <= 7 {
			dates = dates[1:]
		}
	}
	return append([]time.Time{effective}, dates...)
}

func step(t time.Time, months int, roll RollConvention) time.Time {
	if roll == RollBackwardEOM {
		return utils.AddMonth(t, months)
	}
	return t.AddDate(0, months, 0)
}

// Fractions computes one accrual fraction per period under the given
// convention, using the schedule itself as the context.
func (s *Schedule) Fractions(conv daycount.Convention) ([]float64, error) {
	out := make([]float64, len(s.Periods))
	for i, p := range s.Periods {
		f, err := conv.Fraction(p.StartDate, p.EndDate, s)
		if err != nil {
			return nil, fmt.Errorf("Fractions: period %d: %w", i, err)
		}
		out[i] = f
	}
	return out, nil
}
