package daycount_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/meenmo/accrual/daycount"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// fixedScheduleInfo is a minimal schedule context for tests.
type fixedScheduleInfo struct {
	eom bool
	end time.Time
}

func (f fixedScheduleInfo) IsEndOfMonthConvention() bool { return f.eom }

func (f fixedScheduleInfo) IsScheduleEndDate(d time.Time) bool { return d.Equal(f.end) }

func TestFraction_Standard(t *testing.T) {
	t.Parallel()

	eom := fixedScheduleInfo{eom: true}
	noEOM := fixedScheduleInfo{eom: false}

	cases := []struct {
		name          string
		conv          daycount.Standard
		first, second time.Time
		info          daycount.ScheduleInfo
		want          float64
	}{
		{"1/1 same day", daycount.OneOne, date(2020, 1, 1), date(2020, 1, 1), nil, 1},
		{"1/1 any span", daycount.OneOne, date(2011, 12, 28), date(2016, 2, 29), nil, 1},

		{"ActAct same year", daycount.ActActISDA, date(2021, 1, 1), date(2021, 7, 1), nil, 181.0 / 365},
		{"ActAct year boundary", daycount.ActActISDA, date(2019, 12, 1), date(2020, 2, 1), nil, 31.0/365 + 31.0/366},
		{"ActAct two whole years", daycount.ActActISDA, date(2019, 6, 1), date(2021, 6, 1), nil, 2},
		{"ActAct same day", daycount.ActActISDA, date(2020, 2, 29), date(2020, 2, 29), nil, 0},

		{"Act365A leap day in span", daycount.Act365Actual, date(2020, 1, 1), date(2020, 3, 1), nil, 60.0 / 366},
		{"Act365A no leap day", daycount.Act365Actual, date(2019, 1, 1), date(2019, 12, 31), nil, 364.0 / 365},
		{"Act365A leap day just before span", daycount.Act365Actual, date(2020, 3, 1), date(2021, 2, 28), nil, 364.0 / 365},

		{"Act360 half year", daycount.Act360, date(2021, 1, 1), date(2021, 7, 1), nil, 181.0 / 360},
		{"Act360 leap year span", daycount.Act360, date(2020, 1, 1), date(2021, 1, 1), nil, 366.0 / 360},

		{"Act364", daycount.Act364, date(2021, 1, 1), date(2021, 7, 1), nil, 181.0 / 364},

		{"Act365 fixed denominator", daycount.Act365, date(2020, 1, 1), date(2021, 1, 1), nil, 366.0 / 365},
		{"Act365 half year", daycount.Act365, date(2021, 1, 1), date(2021, 7, 1), nil, 181.0 / 365},

		{"Act365.25", daycount.Act36525, date(2021, 1, 1), date(2021, 7, 1), nil, 181.0 / 365.25},

		{"NL365 one leap day", daycount.NL365, date(2019, 12, 1), date(2020, 3, 1), nil, 90.0 / 365},
		{"NL365 leap day excluded at start", daycount.NL365, date(2020, 2, 29), date(2021, 2, 28), nil, 1},
		{"NL365 no leap day", daycount.NL365, date(2019, 12, 1), date(2019, 12, 31), nil, 30.0 / 365},
		{"NL365 two leap days", daycount.NL365, date(2019, 6, 1), date(2024, 6, 1), nil, 5},

		{"30/360 ISDA both 31", daycount.Thirty360ISDA, date(2021, 1, 31), date(2021, 3, 31), nil, 60.0 / 360},
		{"30/360 ISDA second 31 unclamped", daycount.Thirty360ISDA, date(2021, 1, 29), date(2021, 3, 31), nil, 62.0 / 360},
		{"30/360 ISDA into February", daycount.Thirty360ISDA, date(2021, 1, 30), date(2021, 2, 28), nil, 28.0 / 360},
		{"30/360 ISDA leap February start", daycount.Thirty360ISDA, date(2020, 2, 29), date(2020, 8, 31), nil, 182.0 / 360},

		{"30U/360 EOM both late February", daycount.ThirtyU360, date(2020, 2, 29), date(2021, 2, 28), eom, 1},
		{"30U/360 EOM late February start", daycount.ThirtyU360, date(2021, 2, 28), date(2021, 8, 31), eom, 180.0 / 360},
		{"30U/360 no EOM late February start", daycount.ThirtyU360, date(2021, 2, 28), date(2021, 8, 31), noEOM, 183.0 / 360},
		{"30U/360 plain 31s", daycount.ThirtyU360, date(2021, 1, 31), date(2021, 3, 31), eom, 60.0 / 360},

		{"30E/360 ISDA late February clamp", daycount.ThirtyE360ISDA, date(2021, 2, 28), date(2021, 8, 31), fixedScheduleInfo{}, 180.0 / 360},
		{"30E/360 ISDA schedule end date", daycount.ThirtyE360ISDA, date(2020, 8, 31), date(2021, 2, 28), fixedScheduleInfo{end: date(2021, 2, 28)}, 178.0 / 360},
		{"30E/360 ISDA not schedule end", daycount.ThirtyE360ISDA, date(2020, 8, 31), date(2021, 2, 28), fixedScheduleInfo{}, 180.0 / 360},

		{"30E/360 first 31 clamped", daycount.ThirtyE360, date(2021, 1, 31), date(2021, 2, 28), nil, 28.0 / 360},
		{"30E/360 second 31 clamped", daycount.ThirtyE360, date(2021, 1, 29), date(2021, 3, 31), nil, 61.0 / 360},
		{"30E/360 no February rule", daycount.ThirtyE360, date(2020, 2, 29), date(2021, 2, 28), nil, 359.0 / 360},

		{"30E+/360 second 31 rolls", daycount.ThirtyEPlus360, date(2021, 1, 29), date(2021, 3, 31), nil, 62.0 / 360},
		{"30E+/360 December roll", daycount.ThirtyEPlus360, date(2021, 11, 30), date(2021, 12, 31), nil, 31.0 / 360},
		{"30E+/360 first 31 clamped", daycount.ThirtyEPlus360, date(2021, 1, 31), date(2021, 3, 30), nil, 60.0 / 360},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := tc.conv.Fraction(tc.first, tc.second, tc.info)
			if err != nil {
				t.Fatalf("Fraction error: %v", err)
			}
			if math.Abs(got-tc.want) > 1e-12 {
				t.Fatalf("Fraction mismatch: got %.15f, want %.15f", got, tc.want)
			}
		})
	}
}

func TestFraction_DatesMustBeInOrder(t *testing.T) {
	t.Parallel()

	first := date(2020, 3, 1)
	second := date(2020, 1, 1)
	for _, conv := range daycount.All() {
		if _, err := conv.Fraction(first, second, daycount.NoSchedule); !errors.Is(err, daycount.ErrDateOrder) {
			t.Fatalf("%s: expected ErrDateOrder, got %v", conv.Name(), err)
		}
	}
}

func TestFraction_SameDate(t *testing.T) {
	t.Parallel()

	d := date(2021, 5, 15)
	for _, conv := range daycount.All() {
		got, err := conv.Fraction(d, d, daycount.NoSchedule)
		if err != nil {
			t.Fatalf("%s: Fraction error: %v", conv.Name(), err)
		}
		want := 0.0
		if conv.Name() == daycount.OneOne.Name() {
			want = 1.0
		}
		if math.Abs(got-want) > 1e-12 {
			t.Fatalf("%s: got %.15f, want %.15f", conv.Name(), got, want)
		}
	}
}

func TestFraction_NonNegative(t *testing.T) {
	t.Parallel()

	pairs := [][2]time.Time{
		{date(2019, 12, 31), date(2020, 1, 1)},
		{date(2020, 2, 28), date(2020, 2, 29)},
		{date(2015, 6, 30), date(2045, 6, 30)},
		{date(2021, 1, 31), date(2021, 3, 31)},
	}
	for _, conv := range daycount.All() {
		for _, p := range pairs {
			got, err := conv.Fraction(p[0], p[1], daycount.NoSchedule)
			if err != nil {
				t.Fatalf("%s: Fraction error: %v", conv.Name(), err)
			}
			if got < 0 {
				t.Fatalf("%s: negative fraction %.15f for %s -> %s",
					conv.Name(), got, p[0].Format("2006-01-02"), p[1].Format("2006-01-02"))
			}
		}
	}
}

func TestActActISDA_Additivity(t *testing.T) {
	t.Parallel()

	a := date(2019, 6, 1)
	b := date(2020, 1, 1) // year boundary
	c := date(2020, 6, 1)

	whole, err := daycount.ActActISDA.Fraction(a, c, daycount.NoSchedule)
	if err != nil {
		t.Fatalf("Fraction error: %v", err)
	}
	left, err := daycount.ActActISDA.Fraction(a, b, daycount.NoSchedule)
	if err != nil {
		t.Fatalf("Fraction error: %v", err)
	}
	right, err := daycount.ActActISDA.Fraction(b, c, daycount.NoSchedule)
	if err != nil {
		t.Fatalf("Fraction error: %v", err)
	}
	if math.Abs(whole-(left+right)) > 1e-12 {
		t.Fatalf("additivity broken: %.15f != %.15f + %.15f", whole, left, right)
	}
}

func TestThirty360Family_AgreeOnPlainDates(t *testing.T) {
	t.Parallel()

	// No 31st day-of-month, no end of February: all five rules coincide.
	first := date(2021, 4, 15)
	second := date(2022, 10, 20)
	want := (360*1 + 30*6 + 5) / 360.0

	family := []daycount.Standard{
		daycount.Thirty360ISDA,
		daycount.ThirtyU360,
		daycount.ThirtyE360ISDA,
		daycount.ThirtyE360,
		daycount.ThirtyEPlus360,
	}
	for _, conv := range family {
		got, err := conv.Fraction(first, second, daycount.NoSchedule)
		if err != nil {
			t.Fatalf("%s: Fraction error: %v", conv.Name(), err)
		}
		if math.Abs(got-want) > 1e-12 {
			t.Fatalf("%s: got %.15f, want %.15f", conv.Name(), got, want)
		}
	}
}
