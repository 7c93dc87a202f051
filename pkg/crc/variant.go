// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package crc

import (
	"fmt"
	"math/bits"
	"strings"
)

// Method selects how a Variant folds a byte into the register. Both
// methods produce identical results.
type Method int

const (
	// MethodTable uses a 256-entry lookup table built once by New
	MethodTable Method = iota
	// MethodLoop runs the eight-round bit loop for every byte
	MethodLoop
)

// DefaultMethod returns the method the package-level variants were built
// with. It is MethodTable unless the crcloop build tag is set.
func DefaultMethod() Method {
	return defaultMethod
}

func (m Method) String() string {
	switch m {
	case MethodTable:
		return "table"
	case MethodLoop:
		return "loop"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod parses "table" or "loop"
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "table", "lookup", "lookup-table":
		return MethodTable, nil
	case "loop", "bitwise":
		return MethodLoop, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

// Variant is a CRC engine for one parameter set. A Variant is immutable
// after New returns and may be shared between goroutines.
type Variant[T Word] struct {
	params Params[T]
	method Method
	width  int
	shift  int // distance from the low byte to the top byte of the register
	top    T
	table  *Table[T] // nil for MethodLoop
}

// New creates a Variant for p using method m
func New[T Word](p Params[T], m Method) *Variant[T] {
	w := width[T]()
	v := &Variant[T]{
		params: p,
		method: m,
		width:  w,
		shift:  w - 8,
		top:    T(1) << (w - 1),
	}
	if m == MethodTable {
		v.table = MakeTable(p)
	}
	return v
}

// Params returns the parameters the variant was built from
func (v *Variant[T]) Params() Params[T] {
	return v.params
}

// Method returns the folding method
func (v *Variant[T]) Method() Method {
	return v.method
}

// Partial folds one byte into reg and returns the new register. reg may
// hold any value; seed it with Params().Init for the first byte of a
// message. When final is set the output transform is applied, so the
// result is the finished checksum rather than an intermediate register.
func (v *Variant[T]) Partial(b byte, reg T, final bool) T {
	if v.params.RefIn {
		b = bits.Reverse8(b)
	}

	if v.table != nil {
		idx := byte(reg>>v.shift) ^ b
		if v.shift == 0 {
			reg = v.table[idx]
		} else {
			// 16-bit register: shift is 8
			reg = (reg << v.shift) ^ v.table[idx]
		}
	} else {
		reg = divide(reg^(T(b)<<v.shift), v.params.Poly, v.top)
	}

	if final {
		reg = v.finish(reg)
	}
	return reg
}

// Calculate computes the checksum of data. Nil or empty data yields the
// initial register value.
func (v *Variant[T]) Calculate(data []byte) T {
	reg := v.params.Init
	last := len(data) - 1
	for i, b := range data {
		reg = v.Partial(b, reg, i == last)
	}
	return reg
}

func (v *Variant[T]) finish(reg T) T {
	if v.params.RefOut {
		reg = reverse(reg, v.width)
	}
	return reg ^ v.params.XorOut
}
