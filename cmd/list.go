// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var listCBOR bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the variant parameter catalogue",
	Long: `Show the parameters of every registered variant: width, polynomial,
initial value, input/output reflection, output XOR mask and the check value
(the checksum of "123456789").

The Final column marks variants whose partial function takes a final flag
because they apply an output transform after the last byte.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listCBOR, "cbor", false, "Write the catalogue as a CBOR array")
}

func runList(cmd *cobra.Command, args []string) error {
	algs, err := algorithms(nil)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if listCBOR {
		records := make([]variantRecord, 0, len(algs))
		for _, a := range algs {
			records = append(records, newVariantRecord(a))
		}
		return writeCBOR(out, records)
	}

	st := stylesFor(out)
	yesNo := func(b bool) string {
		if b {
			return "yes"
		}
		return "no"
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(st.header).
		Headers("Name", "Width", "Poly", "Init", "RefIn", "RefOut", "XorOut", "Check", "Final").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return st.label.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	for _, a := range algs {
		d := a.Describe()
		t.Row(
			d.Name,
			fmt.Sprintf("%d", d.Width),
			formatCRC(a, d.Poly),
			formatCRC(a, d.Init),
			yesNo(d.RefIn),
			yesNo(d.RefOut),
			formatCRC(a, d.XorOut),
			formatCRC(a, d.Check),
			yesNo(d.RequiresFinal),
		)
	}

	fmt.Fprintln(out, t.Render())
	fmt.Fprintln(out, st.header.Render(fmt.Sprintf("%d variants, %s method", len(algs), algs[0].Describe().Method)))
	return nil
}
