package main

import (
	"fmt"

	"github.com/meenmo/accrual/daycount"
	"github.com/meenmo/accrual/utils"
)

func main() {
	first := utils.DateParser("2021-01-01")
	second := utils.DateParser("2021-07-01")

	fmt.Printf("Year fractions %s -> %s\n\n",
		first.Format("2006-01-02"), second.Format("2006-01-02"))

	for _, conv := range daycount.All() {
		frac, err := conv.Fraction(first, second, daycount.NoSchedule)
		if err != nil {
			fmt.Printf("%-14s error: %v\n", conv.Name(), err)
			continue
		}
		fmt.Printf("%-14s %.10f\n", conv.Name(), frac)
	}
}
