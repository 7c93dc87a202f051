// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

// Package crc implements the CRC-8 and CRC-16 variants used across the
// Thermoquad ecosystem.
//
// Every variant is one instance of a single generic engine (Variant)
// configured by an immutable Params record. Each variant exposes a
// whole-buffer function (e.g. CRC8MAXIM) and a byte-at-a-time partial
// function (e.g. CRC8MAXIMPartial). Partial functions of variants with an
// output transform (reflected output or a non-zero XOR mask) take a final
// flag; the transform is applied only when it is set.
package crc

import "fmt"

// CheckInput is the standard message used to publish check values
const CheckInput = "123456789"

// Initial register values. Seed the register with these when driving a
// variant's partial function by hand.
const (
	InitCRC8            = 0x00
	InitCRC8CDMA2000    = 0xFF
	InitCRC8DARC        = 0x00
	InitCRC8DVBS2       = 0x00
	InitCRC8EBU         = 0xFF
	InitCRC8ICODE       = 0xFD
	InitCRC8ITU         = 0x00
	InitCRC8MAXIM       = 0x00
	InitCRC8ROHC        = 0xFF
	InitCRC8WCDMA       = 0x00
	InitCRC16ARC        = 0x0000
	InitCRC16CCITTFalse = 0xFFFF
)

var (
	// ErrUnknownVariant is returned by Lookup for names not in the registry
	ErrUnknownVariant = fmt.Errorf("unknown CRC variant")

	// ErrDuplicateVariant is returned by Register when a name is taken
	ErrDuplicateVariant = fmt.Errorf("CRC variant already registered")

	// ErrCheckMismatch is returned by Params.Validate
	ErrCheckMismatch = fmt.Errorf("CRC check value mismatch")

	// ErrUnknownMethod is returned by ParseMethod
	ErrUnknownMethod = fmt.Errorf("unknown CRC method")
)
