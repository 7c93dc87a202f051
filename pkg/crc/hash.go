// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package crc

import "hash"

// Hash8 is the common interface implemented by all 8-bit hash functions
type Hash8 interface {
	hash.Hash
	Sum8() uint8 // returns the 8-bit checksum of the hash
}

// Hash16 is the common interface implemented by all 16-bit hash functions
type Hash16 interface {
	hash.Hash
	Sum16() uint16 // returns the 16-bit checksum of the hash
}

// NewHash8 returns a Hash8 computing the checksum of v
func NewHash8(v *Variant[uint8]) Hash8 {
	d := &digest8{}
	d.init(v)
	return d
}

// NewHash16 returns a Hash16 computing the checksum of v
func NewHash16(v *Variant[uint16]) Hash16 {
	d := &digest16{}
	d.init(v)
	return d
}

// digest represents the partial evaluation of a checksum. reg holds the
// raw register; the output transform is applied when the sum is read.
type digest[T Word] struct {
	v   *Variant[T]
	reg T
	n   uint64
}

func (d *digest[T]) init(v *Variant[T]) {
	d.v = v
	d.Reset()
}

func (d *digest[T]) Reset() {
	d.reg = d.v.params.Init
	d.n = 0
}

func (d *digest[T]) BlockSize() int {
	return 1
}

func (d *digest[T]) Write(p []byte) (int, error) {
	for _, b := range p {
		d.reg = d.v.Partial(b, d.reg, false)
	}
	d.n += uint64(len(p))
	return len(p), nil
}

func (d *digest[T]) sum() T {
	if d.n == 0 {
		return d.v.params.Init
	}
	return d.v.finish(d.reg)
}

type digest8 struct {
	digest[uint8]
}

func (d *digest8) Size() int {
	return 1
}

func (d *digest8) Sum8() uint8 {
	return d.sum()
}

func (d *digest8) Sum(in []byte) []byte {
	return append(in, d.sum())
}

type digest16 struct {
	digest[uint16]
}

func (d *digest16) Size() int {
	return 2
}

func (d *digest16) Sum16() uint16 {
	return d.sum()
}

// Sum appends the checksum in big-endian order
func (d *digest16) Sum(in []byte) []byte {
	s := d.sum()
	return append(in, byte(s>>8), byte(s))
}
