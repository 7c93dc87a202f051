// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package crc

import (
	"fmt"
	"math/bits"
)

// Word is the set of register types a variant can use. The register
// width is the bit size of the type.
type Word interface {
	~uint8 | ~uint16
}

// Params describes a CRC algorithm in the Rocksoft model
type Params[T Word] struct {
	Name   string
	Poly   T    // generator polynomial, implicit top bit omitted
	Init   T    // initial register value
	RefIn  bool // process input bytes least-significant bit first
	RefOut bool // reflect the register before the final XOR
	XorOut T    // XOR mask applied to the final register
	Check  T    // checksum of CheckInput
}

// Width returns the register width in bits
func (p Params[T]) Width() int {
	return width[T]()
}

// RequiresFinal reports whether the algorithm has an output transform
func (p Params[T]) RequiresFinal() bool {
	return p.RefOut || p.XorOut != 0
}

// Validate computes the checksum of CheckInput with the bit-loop engine
// and compares it against Check.
func (p Params[T]) Validate() error {
	got := New(p, MethodLoop).Calculate([]byte(CheckInput))
	if got != p.Check {
		digits := p.Width() / 4
		return fmt.Errorf("%w: %s: expected 0x%0*X, got 0x%0*X",
			ErrCheckMismatch, p.Name, digits, p.Check, digits, got)
	}
	return nil
}

// CRC-8 family
var (
	CRC8Params = Params[uint8]{
		Name: "CRC-8", Poly: 0x07, Init: InitCRC8,
		Check: 0xF4,
	}
	CRC8CDMA2000Params = Params[uint8]{
		Name: "CRC-8/CDMA2000", Poly: 0x9B, Init: InitCRC8CDMA2000,
		Check: 0xDA,
	}
	CRC8DARCParams = Params[uint8]{
		Name: "CRC-8/DARC", Poly: 0x39, Init: InitCRC8DARC,
		RefIn: true, RefOut: true,
		Check: 0x15,
	}
	CRC8DVBS2Params = Params[uint8]{
		Name: "CRC-8/DVB-S2", Poly: 0xD5, Init: InitCRC8DVBS2,
		Check: 0xBC,
	}
	CRC8EBUParams = Params[uint8]{
		Name: "CRC-8/EBU", Poly: 0x1D, Init: InitCRC8EBU,
		RefIn: true, RefOut: true,
		Check: 0x97,
	}
	CRC8ICODEParams = Params[uint8]{
		Name: "CRC-8/I-CODE", Poly: 0x1D, Init: InitCRC8ICODE,
		Check: 0x7E,
	}
	CRC8ITUParams = Params[uint8]{
		Name: "CRC-8/ITU", Poly: 0x07, Init: InitCRC8ITU,
		XorOut: 0x55,
		Check:  0xA1,
	}
	CRC8MAXIMParams = Params[uint8]{
		Name: "CRC-8/MAXIM", Poly: 0x31, Init: InitCRC8MAXIM,
		RefIn: true, RefOut: true,
		Check: 0xA1,
	}
	CRC8ROHCParams = Params[uint8]{
		Name: "CRC-8/ROHC", Poly: 0x07, Init: InitCRC8ROHC,
		RefIn: true, RefOut: true,
		Check: 0xD0,
	}
	CRC8WCDMAParams = Params[uint8]{
		Name: "CRC-8/WCDMA", Poly: 0x9B, Init: InitCRC8WCDMA,
		RefIn: true, RefOut: true,
		Check: 0x25,
	}
)

// CRC-16 family
var (
	CRC16ARCParams = Params[uint16]{
		Name: "CRC-16/ARC", Poly: 0x8005, Init: InitCRC16ARC,
		RefIn: true, RefOut: true,
		Check: 0xBB3D,
	}
	CRC16CCITTFalseParams = Params[uint16]{
		Name: "CRC-16/CCITT-FALSE", Poly: 0x1021, Init: InitCRC16CCITTFalse,
		Check: 0x29B1,
	}
)

func width[T Word]() int {
	return bits.Len16(uint16(^T(0)))
}

// reverse reflects the low w bits of v
func reverse[T Word](v T, w int) T {
	return T(bits.Reverse16(uint16(v)) >> (16 - w))
}
