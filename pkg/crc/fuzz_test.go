// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package crc

import (
	"math/rand"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/sigurn/crc16"
	"github.com/sigurn/crc8"
)

// getFuzzRounds returns the number of fuzz rounds from FUZZ_ROUNDS env var, default 1000
func getFuzzRounds() int {
	if envRounds := os.Getenv("FUZZ_ROUNDS"); envRounds != "" {
		if rounds, err := strconv.Atoi(envRounds); err == nil && rounds > 0 {
			return rounds
		}
	}
	return 1000
}

// getFuzzSeed returns the seed from FUZZ_SEED env var, or generates one from current time
func getFuzzSeed() int64 {
	if envSeed := os.Getenv("FUZZ_SEED"); envSeed != "" {
		if seed, err := strconv.ParseInt(envSeed, 10, 64); err == nil {
			return seed
		}
	}
	return time.Now().UnixNano()
}

// newFuzzRng creates a new random number generator and logs the seed for reproducibility
func newFuzzRng(t *testing.T) *rand.Rand {
	seed := getFuzzSeed()
	t.Logf("Seed: %d (reproduce with FUZZ_SEED=%d)", seed, seed)
	return rand.New(rand.NewSource(seed))
}

// randomData returns 1-512 random bytes
func randomData(rng *rand.Rand) []byte {
	data := make([]byte, rng.Intn(512)+1)
	rng.Read(data)
	return data
}

// referenceChecksum computes the checksum with the sigurn implementation
func referenceChecksum(a Algorithm, data []byte) uint64 {
	d := a.Describe()
	if d.Width == 8 {
		table := crc8.MakeTable(crc8.Params{
			Poly:   uint8(d.Poly),
			Init:   uint8(d.Init),
			RefIn:  d.RefIn,
			RefOut: d.RefOut,
			XorOut: uint8(d.XorOut),
			Check:  uint8(d.Check),
			Name:   d.Name,
		})
		return uint64(crc8.Checksum(data, table))
	}
	table := crc16.MakeTable(crc16.Params{
		Poly:   uint16(d.Poly),
		Init:   uint16(d.Init),
		RefIn:  d.RefIn,
		RefOut: d.RefOut,
		XorOut: uint16(d.XorOut),
		Check:  uint16(d.Check),
		Name:   d.Name,
	})
	return uint64(crc16.Checksum(data, table))
}

// ============================================================
// Engine Fuzz Tests
// ============================================================

// TestFuzzCRC_PartialEqualsCalculate folds random messages byte by byte
// through every named partial function and compares against the
// whole-buffer function
func TestFuzzCRC_PartialEqualsCalculate(t *testing.T) {
	rounds := getFuzzRounds()
	rng := newFuzzRng(t)
	t.Logf("Running %d fuzz rounds", rounds)

	variants := namedVariants()
	for i := 0; i < rounds; i++ {
		data := randomData(rng)
		nv := variants[rng.Intn(len(variants))]

		bulk := nv.calculate(data)
		incremental := foldPartial(nv, data)
		if bulk != incremental {
			t.Fatalf("Round %d: %s: calculate 0x%04X != partial 0x%04X (len %d)",
				i, nv.name, bulk, incremental, len(data))
		}
	}
}

// TestFuzzCRC_MethodsAgree checks the table and bit-loop engines produce
// identical registers for every intermediate step, not only the result
func TestFuzzCRC_MethodsAgree(t *testing.T) {
	rounds := getFuzzRounds()
	rng := newFuzzRng(t)
	t.Logf("Running %d fuzz rounds", rounds)

	algs := All()[:12]
	for i := 0; i < rounds; i++ {
		a := algs[rng.Intn(len(algs))]
		table := a.WithMethod(MethodTable)
		loop := a.WithMethod(MethodLoop)

		reg := uint64(rng.Intn(1 << a.Width()))
		b := byte(rng.Intn(256))
		final := rng.Intn(2) == 1

		got := loop.Update(b, reg, final)
		want := table.Update(b, reg, final)
		if got != want {
			t.Fatalf("Round %d: %s: Update(0x%02X, 0x%04X, %v): loop 0x%04X != table 0x%04X",
				i, a.Name(), b, reg, final, got, want)
		}
	}
}

// TestFuzzCRC_Reference cross-checks every variant against an
// independent implementation. Empty input is excluded: the reference
// applies the output transform to the bare initial value.
func TestFuzzCRC_Reference(t *testing.T) {
	rounds := getFuzzRounds()
	rng := newFuzzRng(t)
	t.Logf("Running %d fuzz rounds", rounds)

	algs := All()[:12]
	for _, a := range algs {
		if got, want := a.Checksum([]byte(CheckInput)), referenceChecksum(a, []byte(CheckInput)); got != want {
			t.Errorf("%s: check input 0x%04X, reference 0x%04X", a.Name(), got, want)
		}
	}

	for i := 0; i < rounds; i++ {
		data := randomData(rng)
		a := algs[rng.Intn(len(algs))]

		if got, want := a.Checksum(data), referenceChecksum(a, data); got != want {
			t.Fatalf("Round %d: %s: 0x%04X, reference 0x%04X (len %d)", i, a.Name(), got, want, len(data))
		}
	}
}

// TestFuzzCRC_SplitPoints resumes a computation from an intermediate
// register at a random split point
func TestFuzzCRC_SplitPoints(t *testing.T) {
	rounds := getFuzzRounds()
	rng := newFuzzRng(t)
	t.Logf("Running %d fuzz rounds", rounds)

	algs := All()[:12]
	for i := 0; i < rounds; i++ {
		data := randomData(rng)
		a := algs[rng.Intn(len(algs))]
		split := rng.Intn(len(data))

		reg := a.Init()
		for _, b := range data[:split] {
			reg = a.Update(b, reg, false)
		}
		// hand the register over as if to a different caller
		resumed := reg
		for j, b := range data[split:] {
			resumed = a.Update(b, resumed, split+j == len(data)-1)
		}

		if want := a.Checksum(data); resumed != want {
			t.Fatalf("Round %d: %s split at %d: 0x%04X != 0x%04X", i, a.Name(), split, resumed, want)
		}
	}
}

func TestFuzzCRC_RandomData(t *testing.T) {
	rounds := getFuzzRounds()
	rng := newFuzzRng(t)
	t.Logf("Running %d fuzz rounds", rounds)

	algs := All()[:12]
	for i := 0; i < rounds; i++ {
		data := randomData(rng)
		a := algs[rng.Intn(len(algs))]

		crc1 := a.Checksum(data)
		crc2 := a.Checksum(append([]byte(nil), data...))
		if crc1 != crc2 {
			t.Errorf("Round %d: %s: CRC not deterministic: 0x%04X != 0x%04X", i, a.Name(), crc1, crc2)
		}
		if crc1 >= 1<<a.Width() {
			t.Errorf("Round %d: %s: 0x%X exceeds %d bits", i, a.Name(), crc1, a.Width())
		}

		// Modify one byte - CRC should change
		idx := rng.Intn(len(data))
		original := data[idx]
		data[idx] ^= byte(rng.Intn(255) + 1)
		crc3 := a.Checksum(data)
		data[idx] = original

		if crc3 == crc1 {
			// A burst of at most eight bits is always detected
			t.Errorf("Round %d: %s: single-byte change not detected", i, a.Name())
		}
	}
}
