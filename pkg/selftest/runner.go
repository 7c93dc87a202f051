// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package selftest

import (
	"fmt"
	"strings"
	"time"
)

// Options controls a run. Group and Name are substring filters; Repeat
// runs the filtered set that many times (values below 1 mean once).
type Options struct {
	Group  string
	Name   string
	Repeat int

	// OnStart is called before each case runs
	OnStart func(c Case)

	// OnResult is called after each case with its error, nil on pass
	OnResult func(r Result)
}

// Result is the outcome of one case
type Result struct {
	Case     Case
	Err      error
	Duration time.Duration
}

// Passed reports whether the case passed
func (r Result) Passed() bool {
	return r.Err == nil
}

// Filter returns the cases whose group and name contain the given
// substrings
func Filter(cases []Case, group, name string) []Case {
	out := make([]Case, 0, len(cases))
	for _, c := range cases {
		if group != "" && !strings.Contains(c.Group, group) {
			continue
		}
		if name != "" && !strings.Contains(c.Name, name) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Run executes the filtered cases and returns the accumulated statistics
func Run(cases []Case, opts Options) *Statistics {
	stats := NewStatistics()
	selected := Filter(cases, opts.Group, opts.Name)

	repeat := opts.Repeat
	if repeat < 1 {
		repeat = 1
	}

	for i := 0; i < repeat; i++ {
		for _, c := range selected {
			if opts.OnStart != nil {
				opts.OnStart(c)
			}

			start := time.Now()
			err := runCase(c)
			r := Result{Case: c, Err: err, Duration: time.Since(start)}

			stats.Update(c, err)
			if opts.OnResult != nil {
				opts.OnResult(r)
			}
		}
	}
	return stats
}

// runCase turns a panicking case into a failure so one bad variant does
// not abort the run
func runCase(c Case) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r}
		}
	}()
	return c.Run()
}

// PanicError reports a case that panicked
type PanicError struct {
	Value interface{}
}

// Error implements the error interface
func (p *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", p.Value)
}
