// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"fmt"
	"log"

	"github.com/Thermoquad/crcsum/pkg/selftest"
	"github.com/spf13/cobra"
)

var (
	selftestGroup   string
	selftestName    string
	selftestRepeat  int
	selftestVerbose bool
)

// errSelftestFailed is returned when at least one case fails
var errSelftestFailed = fmt.Errorf("selftest failed")

var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Run the CRC conformance suite",
	Long: `Run the conformance suite against every registered variant.

Four cases run per variant:
  <variant>Calculate         checksum of "123456789" equals the check value
  <variant>CalculatePartial  byte-at-a-time accumulation equals the check value
  <variant>CalculateEmpty    nil and empty input return the initial value
  <variant>Methods           table and bit-loop engines agree

Options:
  -g [group]  Run cases with substring [group] in the group name
  -n [test]   Run cases with substring [test] in the case name
  -r [count]  Repeat the run [count] times
  -v          Announce each case before it runs and show its duration

Exit codes:
  0 - All cases passed
  1 - At least one case failed`,
	Args: cobra.NoArgs,
	RunE: runSelftest,
}

func init() {
	rootCmd.AddCommand(selftestCmd)
	selftestCmd.Flags().StringVarP(&selftestGroup, "group", "g", "", "Only run groups containing this substring")
	selftestCmd.Flags().StringVarP(&selftestName, "name", "n", "", "Only run cases containing this substring")
	selftestCmd.Flags().IntVarP(&selftestRepeat, "repeat", "r", 1, "Number of times to repeat the run")
	selftestCmd.Flags().BoolVarP(&selftestVerbose, "verbose", "v", false, "Announce each case before it runs")
}

func runSelftest(cmd *cobra.Command, args []string) error {
	algs, err := algorithms(nil)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	st := stylesFor(out)

	cases := selftest.Cases(algs)
	fmt.Fprintln(out, st.title.Render("crcsum - Conformance Self-Test"))
	fmt.Fprintln(out, st.header.Render(fmt.Sprintf("%d variants, %s method", len(algs), algs[0].Describe().Method)))
	fmt.Fprintln(out)

	if len(selftest.Filter(cases, selftestGroup, selftestName)) == 0 {
		log.Printf("No cases match group %q name %q", selftestGroup, selftestName)
	}

	dots := 0
	stats := selftest.Run(cases, selftest.Options{
		Group:  selftestGroup,
		Name:   selftestName,
		Repeat: selftestRepeat,
		OnStart: func(c selftest.Case) {
			if selftestVerbose {
				fmt.Fprint(out, c.ID())
			}
		},
		OnResult: func(r selftest.Result) {
			switch {
			case r.Passed() && selftestVerbose:
				fmt.Fprintf(out, " %s %s\n", st.value.Render("PASS"), st.header.Render(fmt.Sprintf("(%v)", r.Duration)))
			case r.Passed():
				fmt.Fprint(out, ".")
				dots++
			default:
				if dots > 0 {
					fmt.Fprintln(out)
					dots = 0
				}
				if !selftestVerbose {
					fmt.Fprint(out, r.Case.ID())
				}
				fmt.Fprintf(out, " %s %s %s\n", st.err.Render("FAIL:"), r.Err, st.header.Render(fmt.Sprintf("(%v)", r.Duration)))
			}
		},
	})
	if dots > 0 {
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out)
	fmt.Fprint(out, stats.String())

	if !stats.OK() {
		return fmt.Errorf("%w: %d of %d cases", errSelftestFailed, stats.Failures, stats.Tests)
	}
	return nil
}
