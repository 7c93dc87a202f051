// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package crc

import (
	"errors"
	"testing"
)

func TestAll_CatalogueOrder(t *testing.T) {
	want := []string{
		"CRC-8", "CRC-8/CDMA2000", "CRC-8/DARC", "CRC-8/DVB-S2",
		"CRC-8/EBU", "CRC-8/I-CODE", "CRC-8/ITU", "CRC-8/MAXIM",
		"CRC-8/ROHC", "CRC-8/WCDMA", "CRC-16/ARC", "CRC-16/CCITT-FALSE",
	}
	all := All()
	if len(all) < len(want) {
		t.Fatalf("expected at least %d variants, got %d", len(want), len(all))
	}
	for i, name := range want {
		if all[i].Name() != name {
			t.Errorf("All()[%d] = %s, expected %s", i, all[i].Name(), name)
		}
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	all := All()
	all[0] = nil
	if All()[0] == nil {
		t.Error("mutating the returned slice should not affect the registry")
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"CRC-8", "CRC-8"},
		{"crc8", "CRC-8"},
		{"CRC-8/SMBUS", "CRC-8"},
		{"crc8-maxim", "CRC-8/MAXIM"},
		{"DOW-CRC", "CRC-8/MAXIM"},
		{"CRC-8/MAXIM-DOW", "CRC-8/MAXIM"},
		{"crc_8_dvb_s2", "CRC-8/DVB-S2"},
		{"CRC-8/AES", "CRC-8/EBU"},
		{"crc-8/i-432-1", "CRC-8/ITU"},
		{"ARC", "CRC-16/ARC"},
		{"CRC-16", "CRC-16/ARC"},
		{"CRC-16/LHA", "CRC-16/ARC"},
		{"crc16 ccitt false", "CRC-16/CCITT-FALSE"},
		{"CRC-16/IBM-3740", "CRC-16/CCITT-FALSE"},
		{"CRC-16/AUTOSAR", "CRC-16/CCITT-FALSE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := Lookup(tt.name)
			if err != nil {
				t.Fatalf("Lookup(%q): %v", tt.name, err)
			}
			if a.Name() != tt.want {
				t.Errorf("Lookup(%q) = %s, expected %s", tt.name, a.Name(), tt.want)
			}
		})
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Lookup("CRC-32")
	if !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("expected ErrUnknownVariant, got %v", err)
	}
}

func TestRegister_Custom(t *testing.T) {
	// CRC-8/SAE-J1850 is not built in
	p := Params[uint8]{
		Name: "CRC-8/SAE-J1850", Poly: 0x1D, Init: 0xFF, XorOut: 0xFF,
		Check: 0x4B,
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	// tolerate -count=N reruns against the shared registry
	if err := Register(New(p, MethodTable), "CRC-8/J1850"); err != nil && !errors.Is(err, ErrDuplicateVariant) {
		t.Fatalf("Register() = %v", err)
	}

	a, err := Lookup("crc8 j1850")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if got := a.Checksum([]byte(CheckInput)); got != 0x4B {
		t.Errorf("expected 0x4B, got 0x%02X", got)
	}
	if all := All(); all[len(all)-1].Name() != p.Name {
		t.Errorf("custom variant should be appended, last is %s", all[len(all)-1].Name())
	}
}

func TestRegister_Duplicate(t *testing.T) {
	before := len(All())

	err := Register(New(CRC8Params, MethodLoop))
	if !errors.Is(err, ErrDuplicateVariant) {
		t.Fatalf("expected ErrDuplicateVariant, got %v", err)
	}

	// An alias clash must not register the name either
	p := CRC8Params
	p.Name = "CRC-8/UNUSED"
	err = Register(New(p, MethodLoop), "crc-16")
	if !errors.Is(err, ErrDuplicateVariant) {
		t.Fatalf("expected ErrDuplicateVariant, got %v", err)
	}
	if _, err := Lookup("CRC-8/UNUSED"); err == nil {
		t.Error("failed registration should not leave the name behind")
	}
	if len(All()) != before {
		t.Errorf("registry grew from %d to %d", before, len(All()))
	}
}

func TestAlgorithm_Verify(t *testing.T) {
	for _, a := range All()[:12] {
		t.Run(a.Name(), func(t *testing.T) {
			data := []byte(CheckInput)
			if !a.Verify(data, a.Check()) {
				t.Error("Verify should accept the check value")
			}
			if a.Verify(data, a.Check()^1) {
				t.Error("Verify should reject a wrong checksum")
			}
		})
	}
}

func TestAlgorithm_Describe(t *testing.T) {
	d := CRC16ARCVariant.Describe()
	if d.Name != "CRC-16/ARC" || d.Width != 16 || d.Poly != 0x8005 ||
		!d.RefIn || !d.RefOut || d.Check != 0xBB3D || !d.RequiresFinal {
		t.Errorf("unexpected descriptor %+v", d)
	}

	d = CRC8ICODEVariant.Describe()
	if d.Width != 8 || d.Init != 0xFD || d.RequiresFinal {
		t.Errorf("unexpected descriptor %+v", d)
	}
}

func TestAlgorithm_UpdateMatchesChecksum(t *testing.T) {
	data := []byte(CheckInput)
	for _, a := range All()[:12] {
		t.Run(a.Name(), func(t *testing.T) {
			reg := a.Init()
			for i, b := range data {
				reg = a.Update(b, reg, i == len(data)-1)
			}
			if reg != a.Check() {
				t.Errorf("expected 0x%04X, got 0x%04X", a.Check(), reg)
			}
		})
	}
}
