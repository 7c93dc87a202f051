// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

// Package selftest runs the CRC conformance suite: check values,
// byte-at-a-time accumulation, degenerate input and engine agreement for
// every registered variant.
package selftest

import (
	"fmt"
	"math/rand"
	"strings"
	"unicode"

	"github.com/Thermoquad/crcsum/pkg/crc"
)

// Group is the test group every generated case belongs to
const Group = "crc_test"

// Kind classifies a case for statistics
type Kind int

const (
	KindCheck Kind = iota
	KindPartial
	KindEmpty
	KindMethods
)

func (k Kind) String() string {
	switch k {
	case KindCheck:
		return "check"
	case KindPartial:
		return "partial"
	case KindEmpty:
		return "empty"
	case KindMethods:
		return "methods"
	}
	return "unknown"
}

// Case is a single named conformance test
type Case struct {
	Group string
	Name  string
	Kind  Kind
	Run   func() error
}

// ID returns the case identifier in TEST(group, name) form
func (c Case) ID() string {
	return fmt.Sprintf("TEST(%s, %s)", c.Group, c.Name)
}

// methodsSeed fixes the pseudo-random buffer used by the methods case so
// failures reproduce
const methodsSeed = 0x7E7F

// Cases builds the conformance cases for algs, four per algorithm
func Cases(algs []crc.Algorithm) []Case {
	cases := make([]Case, 0, len(algs)*4)
	for _, a := range algs {
		base := CaseName(a.Name())
		cases = append(cases,
			Case{Group: Group, Name: base + "Calculate", Kind: KindCheck, Run: checkCase(a)},
			Case{Group: Group, Name: base + "CalculatePartial", Kind: KindPartial, Run: partialCase(a)},
			Case{Group: Group, Name: base + "CalculateEmpty", Kind: KindEmpty, Run: emptyCase(a)},
			Case{Group: Group, Name: base + "Methods", Kind: KindMethods, Run: methodsCase(a)},
		)
	}
	return cases
}

// CaseName turns a catalogue name into a lower camel case identifier,
// e.g. "CRC-16/CCITT-FALSE" becomes "crc16CcittFalse"
func CaseName(variant string) string {
	fields := strings.FieldsFunc(variant, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	var b strings.Builder
	for i, f := range fields {
		f = strings.ToLower(f)
		if i > 0 {
			f = strings.ToUpper(f[:1]) + f[1:]
		}
		b.WriteString(f)
	}
	return b.String()
}

func checkCase(a crc.Algorithm) func() error {
	return func() error {
		got := a.Checksum([]byte(crc.CheckInput))
		if got != a.Check() {
			return mismatch(a, "Expected", a.Check(), got)
		}
		return nil
	}
}

func partialCase(a crc.Algorithm) func() error {
	return func() error {
		data := []byte(crc.CheckInput)
		reg := a.Init()
		for i, b := range data {
			reg = a.Update(b, reg, i == len(data)-1)
		}
		if reg != a.Check() {
			return mismatch(a, "Expected", a.Check(), reg)
		}
		return nil
	}
}

func emptyCase(a crc.Algorithm) func() error {
	return func() error {
		if got := a.Checksum(nil); got != a.Init() {
			return mismatch(a, "nil data: Expected", a.Init(), got)
		}
		if got := a.Checksum([]byte{}); got != a.Init() {
			return mismatch(a, "empty data: Expected", a.Init(), got)
		}
		return nil
	}
}

func methodsCase(a crc.Algorithm) func() error {
	return func() error {
		table := a.WithMethod(crc.MethodTable)
		loop := a.WithMethod(crc.MethodLoop)

		rng := rand.New(rand.NewSource(methodsSeed))
		data := make([]byte, 1024)
		rng.Read(data)

		for n := 0; n <= len(data); n += 64 {
			want := table.Checksum(data[:n])
			if got := loop.Checksum(data[:n]); got != want {
				return fmt.Errorf("%d bytes: table 0x%0*X, loop 0x%0*X",
					n, a.Width()/4, want, a.Width()/4, got)
			}
		}
		return nil
	}
}

func mismatch(a crc.Algorithm, what string, want, got uint64) error {
	digits := a.Width() / 4
	return fmt.Errorf("%s 0x%0*X Was 0x%0*X", what, digits, want, digits, got)
}
