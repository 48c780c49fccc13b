package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/meenmo/accrual/daycount"
	"github.com/meenmo/accrual/schedule"
	"github.com/meenmo/accrual/utils"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("accruals", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		convName     = fs.String("convention", "Act/360", "day count convention name")
		effectiveStr = fs.String("effective", "", "effective date (YYYY-MM-DD)")
		maturityStr  = fs.String("maturity", "", "maturity date (YYYY-MM-DD)")
		freqMonths   = fs.Int("freq", 6, "accrual frequency in months")
		backward     = fs.Bool("backward", false, "roll backward from maturity (front stub)")
		eom          = fs.Bool("eom", false, "use the end-of-month convention")
	)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: accruals -convention <name> -effective YYYY-MM-DD -maturity YYYY-MM-DD [-freq N] [-backward] [-eom]")
		fmt.Fprintln(stderr)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *effectiveStr == "" || *maturityStr == "" {
		fs.Usage()
		return 2
	}

	conv, err := daycount.Of(*convName)
	if err != nil {
		fmt.Fprintf(stderr, "accruals: %v\n", err)
		return 2
	}

	terms := schedule.Terms{
		Frequency:  schedule.Frequency(*freqMonths),
		Roll:       schedule.RollDayOfMonth,
		Direction:  schedule.Forward,
		EndOfMonth: *eom,
	}
	if *eom {
		terms.Roll = schedule.RollBackwardEOM
	}
	if *backward {
		terms.Direction = schedule.Backward
	}

	sched, err := schedule.Generate(utils.DateParser(*effectiveStr), utils.DateParser(*maturityStr), terms)
	if err != nil {
		fmt.Fprintf(stderr, "accruals: %v\n", err)
		return 2
	}

	fracs, err := sched.Fractions(conv)
	if err != nil {
		fmt.Fprintf(stderr, "accruals: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "%-4s %-12s %-12s %s\n", "#", "start", "end", conv.Name())
	total := 0.0
	for i, p := range sched.Periods {
		fmt.Fprintf(stdout, "%-4d %-12s %-12s %.10f\n",
			i+1, p.StartDate.Format("2006-01-02"), p.EndDate.Format("2006-01-02"), fracs[i])
		total += fracs[i]
	}
	fmt.Fprintf(stdout, "total %.6f\n", utils.RoundTo(total, 6))
	return 0
}
