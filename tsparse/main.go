// Command tsparse reads date strings the way the tseries package does and
// prints what it found.
//
//	tsparse parse 4Q2005 "2005-03" "Mar 15 2005 10:30"
//	tsparse convert --errors raise 2021-01-01 not-a-date
//	tsparse ole 40000.25
package main

import (
	"os"

	"github.com/fatih/color"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
