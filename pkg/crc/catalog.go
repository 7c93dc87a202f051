// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package crc

import (
	"fmt"
	"strings"
	"sync"
)

var (
	mu      sync.RWMutex
	ordered []Algorithm
	byName  = make(map[string]Algorithm)
)

func init() {
	builtins := []struct {
		alg     Algorithm
		aliases []string
	}{
		{CRC8Variant, []string{"CRC-8/SMBUS"}},
		{CRC8CDMA2000Variant, nil},
		{CRC8DARCVariant, nil},
		{CRC8DVBS2Variant, nil},
		{CRC8EBUVariant, []string{"CRC-8/AES", "CRC-8/TECH-3250"}},
		{CRC8ICODEVariant, nil},
		{CRC8ITUVariant, []string{"CRC-8/I-432-1"}},
		{CRC8MAXIMVariant, []string{"CRC-8/MAXIM-DOW", "DOW-CRC"}},
		{CRC8ROHCVariant, nil},
		{CRC8WCDMAVariant, nil},
		{CRC16ARCVariant, []string{"ARC", "CRC-16", "CRC-16/LHA", "CRC-IBM"}},
		{CRC16CCITTFalseVariant, []string{"CRC-16/IBM-3740", "CRC-16/AUTOSAR"}},
	}
	for _, b := range builtins {
		if err := Register(b.alg, b.aliases...); err != nil {
			panic(err)
		}
	}
}

// Register adds a to the registry under its name and the given aliases
func Register(a Algorithm, aliases ...string) error {
	keys := append([]string{a.Name()}, aliases...)

	mu.Lock()
	defer mu.Unlock()

	for _, name := range keys {
		if _, ok := byName[normalizeName(name)]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateVariant, name)
		}
	}
	for _, name := range keys {
		byName[normalizeName(name)] = a
	}
	ordered = append(ordered, a)
	return nil
}

// Lookup resolves a variant by name or alias. Matching ignores case and
// the separators '-', '/', '_' and ' ', so "crc8-maxim" finds CRC-8/MAXIM.
func Lookup(name string) (Algorithm, error) {
	mu.RLock()
	a, ok := byName[normalizeName(name)]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}
	return a, nil
}

// All returns every registered variant in registration order, built-in
// variants first in catalogue order.
func All() []Algorithm {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]Algorithm, len(ordered))
	copy(out, ordered)
	return out
}

func normalizeName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '/', '_', ' ':
			return -1
		}
		if r >= 'a' && r <= 'z' {
			return r - 'a' + 'A'
		}
		return r
	}, name)
}
