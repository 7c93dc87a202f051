// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/Thermoquad/crcsum/pkg/crc"
	"github.com/spf13/cobra"
)

var (
	sumVariants []string
	sumHex      bool
	sumTrace    bool
	sumCBOR     bool
)

var sumCmd = &cobra.Command{
	Use:   "sum [flags] <message>...",
	Short: "Compute checksums of messages",
	Long: `Compute the checksum of each message argument.

Messages are taken as raw text, or as hex with --hex. Hex fields may be
separated by spaces, colons or commas, and each may carry a 0x prefix. By default every variant is computed; restrict the
set with --variant, which accepts catalogue names and common aliases
(e.g. crc8-maxim, DOW-CRC, CRC-16/IBM-3740).

With --trace the register is printed after every byte, showing the raw
intermediate value handed from one partial step to the next and the
output transform applied on the final byte.

Examples:
  crcsum sum 123456789
  crcsum sum --hex "7E 10 30 01" -a crc-16/ccitt-false
  crcsum sum --hex "0x12, 0x34" -a crc-8
  crcsum sum --trace -a crc-8/maxim 123456789`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSum,
}

func init() {
	rootCmd.AddCommand(sumCmd)
	sumCmd.Flags().StringSliceVarP(&sumVariants, "variant", "a", nil, "Variant name or alias (repeatable, default all)")
	sumCmd.Flags().BoolVar(&sumHex, "hex", false, "Decode messages as hex")
	sumCmd.Flags().BoolVar(&sumTrace, "trace", false, "Print the register after every byte")
	sumCmd.Flags().BoolVar(&sumCBOR, "cbor", false, "Write results as a CBOR array")
}

func runSum(cmd *cobra.Command, args []string) error {
	algs, err := algorithms(sumVariants)
	if err != nil {
		return err
	}

	messages := make([][]byte, len(args))
	for i, arg := range args {
		if messages[i], err = decodeMessage(arg, sumHex); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if sumCBOR {
		var records []checksumRecord
		for _, msg := range messages {
			for _, a := range algs {
				records = append(records, checksumRecord{
					Variant:  a.Name(),
					Width:    a.Width(),
					Input:    msg,
					Checksum: a.Checksum(msg),
				})
			}
		}
		return writeCBOR(out, records)
	}

	st := stylesFor(out)
	for i, msg := range messages {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "%s %s\n",
			st.label.Render(fmt.Sprintf("%q", args[i])),
			st.header.Render(fmt.Sprintf("(%d bytes)", len(msg))))

		for _, a := range algs {
			fmt.Fprintf(out, "  %-20s %s\n", a.Name(), st.value.Render(formatCRC(a, a.Checksum(msg))))
			if sumTrace {
				writeTrace(out, st, a, msg)
			}
		}
	}
	return nil
}

// writeTrace prints the register after each partial step
func writeTrace(w io.Writer, st styles, a crc.Algorithm, msg []byte) {
	reg := a.Init()
	fmt.Fprintf(w, "    %s init %s\n", st.header.Render("     "), formatCRC(a, reg))
	for i, b := range msg {
		final := i == len(msg)-1
		reg = a.Update(b, reg, final)

		note := ""
		if final && a.RequiresFinal() {
			note = st.warning.Render(" (final)")
		}
		fmt.Fprintf(w, "    %s 0x%02X -> %s%s\n",
			st.header.Render(fmt.Sprintf("[%3d]", i)), b, formatCRC(a, reg), note)
	}
}

// decodeMessage returns arg as bytes, hex-decoding it when asHex is set
func decodeMessage(arg string, asHex bool) ([]byte, error) {
	if !asHex {
		return []byte(arg), nil
	}

	fields := strings.FieldsFunc(arg, func(r rune) bool {
		return r == ' ' || r == ':' || r == '\t' || r == ','
	})
	for i, f := range fields {
		fields[i] = strings.TrimPrefix(strings.TrimPrefix(f, "0x"), "0X")
	}

	data, err := hex.DecodeString(strings.Join(fields, ""))
	if err != nil {
		return nil, fmt.Errorf("invalid hex message %q: %w", arg, err)
	}
	return data, nil
}
