// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package crc

// Table is a 256-entry table representing the polynomial for efficient
// processing. Entry i is the register obtained by dividing i, placed in
// the top byte of an otherwise zero register, by the polynomial.
type Table[T Word] [256]T

// MakeTable builds the lookup table for p
func MakeTable[T Word](p Params[T]) *Table[T] {
	w := width[T]()
	top := T(1) << (w - 1)
	t := new(Table[T])
	for i := range t {
		t[i] = divide(T(i)<<(w-8), p.Poly, top)
	}
	return t
}

// divide runs eight rounds of polynomial division over GF(2)
func divide[T Word](reg, poly, top T) T {
	for i := 0; i < 8; i++ {
		if reg&top != 0 {
			reg = (reg << 1) ^ poly
		} else {
			reg <<= 1
		}
	}
	return reg
}
