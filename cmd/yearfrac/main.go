package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/meenmo/accrual/daycount"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("yearfrac", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		convName   = fs.String("convention", "Act/360", "day count convention name (see -list)")
		startStr   = fs.String("start", "", "period start date (YYYY-MM-DD)")
		endStr     = fs.String("end", "", "period end date (YYYY-MM-DD)")
		eom        = fs.Bool("eom", true, "schedule uses the end-of-month convention")
		isMaturity = fs.Bool("maturity", false, "end date is the schedule's final accrual date")
		list       = fs.Bool("list", false, "list registered conventions and exit")
	)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: yearfrac -convention <name> -start YYYY-MM-DD -end YYYY-MM-DD [-eom] [-maturity]")
		fmt.Fprintln(stderr)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *list {
		for _, c := range daycount.All() {
			fmt.Fprintln(stdout, c.Name())
		}
		return 0
	}

	if *startStr == "" || *endStr == "" {
		fs.Usage()
		return 2
	}

	start, err := parseDate(*startStr)
	if err != nil {
		fmt.Fprintf(stderr, "yearfrac: %v\n", err)
		return 2
	}
	end, err := parseDate(*endStr)
	if err != nil {
		fmt.Fprintf(stderr, "yearfrac: %v\n", err)
		return 2
	}

	conv, err := daycount.Of(*convName)
	if err != nil {
		fmt.Fprintf(stderr, "yearfrac: %v\n", err)
		return 2
	}

	frac, err := conv.Fraction(start, end, cliScheduleInfo{eom: *eom, end: end, isEnd: *isMaturity})
	if err != nil {
		fmt.Fprintf(stderr, "yearfrac: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "%-14s %s -> %s  %.10f\n", conv.Name(), *startStr, *endStr, frac)
	return 0
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return t, nil
}

// cliScheduleInfo adapts the -eom and -maturity flags into the engine's
// schedule context.
type cliScheduleInfo struct {
	eom   bool
	end   time.Time
	isEnd bool
}

func (c cliScheduleInfo) IsEndOfMonthConvention() bool { return c.eom }

func (c cliScheduleInfo) IsScheduleEndDate(date time.Time) bool {
	return c.isEnd && date.Equal(c.end)
}
