// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"fmt"
	"io"

	"github.com/Thermoquad/crcsum/pkg/crc"
	"github.com/fxamacker/cbor/v2"
)

// checksumRecord is one `sum` result in CBOR output
type checksumRecord struct {
	Variant  string `cbor:"1,keyasint"`
	Width    int    `cbor:"2,keyasint"`
	Input    []byte `cbor:"3,keyasint"`
	Checksum uint64 `cbor:"4,keyasint"`
}

// variantRecord is one `list` entry in CBOR output
type variantRecord struct {
	Name          string `cbor:"1,keyasint"`
	Width         int    `cbor:"2,keyasint"`
	Poly          uint64 `cbor:"3,keyasint"`
	Init          uint64 `cbor:"4,keyasint"`
	RefIn         bool   `cbor:"5,keyasint"`
	RefOut        bool   `cbor:"6,keyasint"`
	XorOut        uint64 `cbor:"7,keyasint"`
	Check         uint64 `cbor:"8,keyasint"`
	RequiresFinal bool   `cbor:"9,keyasint"`
}

func newVariantRecord(a crc.Algorithm) variantRecord {
	d := a.Describe()
	return variantRecord{
		Name:          d.Name,
		Width:         d.Width,
		Poly:          d.Poly,
		Init:          d.Init,
		RefIn:         d.RefIn,
		RefOut:        d.RefOut,
		XorOut:        d.XorOut,
		Check:         d.Check,
		RequiresFinal: d.RequiresFinal,
	}
}

// writeCBOR encodes v with core deterministic encoding
func writeCBOR(w io.Writer, v interface{}) error {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return fmt.Errorf("failed to create CBOR encoder: %w", err)
	}
	if err := em.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("failed to encode CBOR: %w", err)
	}
	return nil
}
