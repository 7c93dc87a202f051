// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package crc

// Algorithm is the width-independent view of a Variant. Register values
// travel as uint64 and never exceed 1<<Width()-1.
type Algorithm interface {
	Name() string
	Width() int
	Init() uint64
	Check() uint64
	RequiresFinal() bool

	// Checksum computes the checksum of data
	Checksum(data []byte) uint64

	// Update folds one byte into reg, truncating reg to the register width
	Update(b byte, reg uint64, final bool) uint64

	// Verify reports whether data checksums to expected
	Verify(data []byte, expected uint64) bool

	// Describe returns the parameter record
	Describe() Descriptor

	// WithMethod returns the same algorithm folded with method m
	WithMethod(m Method) Algorithm
}

// Descriptor is a width-independent copy of Params
type Descriptor struct {
	Name          string
	Width         int
	Poly          uint64
	Init          uint64
	RefIn         bool
	RefOut        bool
	XorOut        uint64
	Check         uint64
	RequiresFinal bool
	Method        Method
}

func (v *Variant[T]) Name() string        { return v.params.Name }
func (v *Variant[T]) Width() int          { return v.width }
func (v *Variant[T]) Init() uint64        { return uint64(v.params.Init) }
func (v *Variant[T]) Check() uint64       { return uint64(v.params.Check) }
func (v *Variant[T]) RequiresFinal() bool { return v.params.RequiresFinal() }

func (v *Variant[T]) Checksum(data []byte) uint64 {
	return uint64(v.Calculate(data))
}

func (v *Variant[T]) Update(b byte, reg uint64, final bool) uint64 {
	return uint64(v.Partial(b, T(reg), final))
}

func (v *Variant[T]) Verify(data []byte, expected uint64) bool {
	return v.Checksum(data) == expected
}

func (v *Variant[T]) Describe() Descriptor {
	return Descriptor{
		Name:          v.params.Name,
		Width:         v.width,
		Poly:          uint64(v.params.Poly),
		Init:          uint64(v.params.Init),
		RefIn:         v.params.RefIn,
		RefOut:        v.params.RefOut,
		XorOut:        uint64(v.params.XorOut),
		Check:         uint64(v.params.Check),
		RequiresFinal: v.params.RequiresFinal(),
		Method:        v.method,
	}
}

func (v *Variant[T]) WithMethod(m Method) Algorithm {
	if m == v.method {
		return v
	}
	return New(v.params, m)
}
