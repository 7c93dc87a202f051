// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"fmt"
	"os"

	"github.com/Thermoquad/crcsum/pkg/crc"
	"github.com/spf13/cobra"
)

// methodEnv overrides the build default when --method is not given
const methodEnv = "CRCSUM_METHOD"

var (
	// Engine selection
	methodName string
)

var rootCmd = &cobra.Command{
	Use:   "crcsum",
	Short: "CRC-8 and CRC-16 checksum tool",
	Long: `crcsum - compute and verify CRC-8 and CRC-16 checksums.

Supported variants:
  CRC-8, CRC-8/CDMA2000, CRC-8/DARC, CRC-8/DVB-S2, CRC-8/EBU, CRC-8/I-CODE,
  CRC-8/ITU, CRC-8/MAXIM, CRC-8/ROHC, CRC-8/WCDMA,
  CRC-16/ARC, CRC-16/CCITT-FALSE

Every variant can be folded with a 256-entry lookup table or with the
eight-round bit loop. Select one with --method, or set the CRCSUM_METHOD
environment variable. Both give identical results.`,
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&methodName, "method", "m", "", "Engine: table or loop (default from "+methodEnv+", else build default)")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// resolveMethod picks the engine from --method, then the environment,
// then the build default
func resolveMethod() (crc.Method, error) {
	name := methodName
	if name == "" {
		name = os.Getenv(methodEnv)
	}
	if name == "" {
		return crc.DefaultMethod(), nil
	}
	m, err := crc.ParseMethod(name)
	if err != nil {
		return 0, fmt.Errorf("invalid method: %w", err)
	}
	return m, nil
}

// algorithms returns the named variants (all when names is empty) built
// with the selected method
func algorithms(names []string) ([]crc.Algorithm, error) {
	m, err := resolveMethod()
	if err != nil {
		return nil, err
	}

	var selected []crc.Algorithm
	if len(names) == 0 {
		selected = crc.All()
	} else {
		for _, name := range names {
			a, err := crc.Lookup(name)
			if err != nil {
				return nil, err
			}
			selected = append(selected, a)
		}
	}

	for i, a := range selected {
		selected[i] = a.WithMethod(m)
	}
	return selected, nil
}

// formatCRC formats a checksum with as many hex digits as the register has
func formatCRC(a crc.Algorithm, v uint64) string {
	return fmt.Sprintf("0x%0*X", a.Width()/4, v)
}
