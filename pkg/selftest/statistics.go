// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package selftest

import (
	"fmt"
	"time"
)

// Statistics tracks conformance results
type Statistics struct {
	StartTime      time.Time
	LastUpdateTime time.Time

	// Counters
	Tests    uint64
	Passed   uint64
	Failures uint64

	// Failures by kind
	CheckFailures   uint64
	PartialFailures uint64
	EmptyFailures   uint64
	MethodFailures  uint64

	// Rates (calculated)
	TestRate float64 // tests/sec
}

// NewStatistics creates a new statistics tracker
func NewStatistics() *Statistics {
	now := time.Now()
	return &Statistics{
		StartTime:      now,
		LastUpdateTime: now,
	}
}

// Update records the outcome of one case
func (s *Statistics) Update(c Case, err error) {
	s.Tests++
	s.LastUpdateTime = time.Now()

	if err == nil {
		s.Passed++
		return
	}

	s.Failures++
	switch c.Kind {
	case KindCheck:
		s.CheckFailures++
	case KindPartial:
		s.PartialFailures++
	case KindEmpty:
		s.EmptyFailures++
	case KindMethods:
		s.MethodFailures++
	}
}

// CalculateRates calculates the test rate
func (s *Statistics) CalculateRates() {
	elapsed := s.LastUpdateTime.Sub(s.StartTime).Seconds()
	if elapsed > 0 {
		s.TestRate = float64(s.Tests) / elapsed
	}
}

// Elapsed returns the time between the start of the run and the last result
func (s *Statistics) Elapsed() time.Duration {
	return s.LastUpdateTime.Sub(s.StartTime)
}

// OK reports whether every case passed
func (s *Statistics) OK() bool {
	return s.Failures == 0
}

// String returns the summary line block printed after a run
func (s *Statistics) String() string {
	s.CalculateRates()

	result := fmt.Sprintf("Elapsed: %v (%.1f tests/sec)\n", s.Elapsed().Round(time.Microsecond), s.TestRate)
	result += "-----------------------\n"
	result += fmt.Sprintf("%d Tests %d Failures 0 Ignored\n", s.Tests, s.Failures)

	if s.CheckFailures > 0 {
		result += fmt.Sprintf("  Check value:   %5d\n", s.CheckFailures)
	}
	if s.PartialFailures > 0 {
		result += fmt.Sprintf("  Partial:       %5d\n", s.PartialFailures)
	}
	if s.EmptyFailures > 0 {
		result += fmt.Sprintf("  Empty input:   %5d\n", s.EmptyFailures)
	}
	if s.MethodFailures > 0 {
		result += fmt.Sprintf("  Table vs loop: %5d\n", s.MethodFailures)
	}

	if s.OK() {
		result += "OK\n"
	} else {
		result += "FAIL\n"
	}
	return result
}

// Reset resets all statistics counters
func (s *Statistics) Reset() {
	*s = *NewStatistics()
}
