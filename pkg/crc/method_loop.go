// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

//go:build crcloop

package crc

// Building with -tags crcloop drops the 256-entry tables from the
// package-level variants.
const defaultMethod = MethodLoop
