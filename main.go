// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad
//
// crcsum - CRC-8 and CRC-16 checksum tool
//
// A CLI tool for computing, listing and self-testing the CRC variants
// implemented by pkg/crc.

package main

import (
	"fmt"
	"os"

	"github.com/Thermoquad/crcsum/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
