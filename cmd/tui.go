// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/Thermoquad/crcsum/pkg/crc"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive checksum view",
	Long: `Type a message and watch the checksum of every variant update as you type.

Keys:
  tab        toggle between text and hex input
  esc/ctrl+c quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("tui requires an interactive terminal; use 'crcsum sum' instead")
	}

	algs, err := algorithms(nil)
	if err != nil {
		return err
	}

	p := tea.NewProgram(initialTUIModel(algs), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// tuiModel is the Bubble Tea model for the interactive view
type tuiModel struct {
	algs     []crc.Algorithm
	input    textinput.Model
	hexMode  bool
	width    int
	quitting bool
}

func initialTUIModel(algs []crc.Algorithm) tuiModel {
	ti := textinput.New()
	ti.Placeholder = crc.CheckInput
	ti.CharLimit = 1024
	ti.Width = 60
	ti.Focus()

	return tuiModel{
		algs:  algs,
		input: ti,
		width: 80,
	}
}

func (m tuiModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "tab":
			m.hexMode = !m.hexMode
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// message returns the bytes currently entered, or an error for bad hex
func (m tuiModel) message() ([]byte, error) {
	return decodeMessage(m.input.Value(), m.hexMode)
}

func (m tuiModel) View() string {
	if m.quitting {
		return ""
	}

	st := colorStyles()

	var s strings.Builder
	s.WriteString(st.title.Render("CRCSUM - LIVE CHECKSUMS"))
	s.WriteString("\n")

	mode := "text"
	if m.hexMode {
		mode = "hex"
	}
	s.WriteString(st.header.Render(fmt.Sprintf("Input: %s | tab: toggle text/hex | esc: quit", mode)))
	s.WriteString("\n\n")
	s.WriteString(m.input.View())
	s.WriteString("\n\n")

	msg, err := m.message()

	var content strings.Builder
	if err != nil {
		content.WriteString(st.err.Render("✗ invalid hex input"))
	} else {
		content.WriteString(st.header.Render(fmt.Sprintf("%d bytes", len(msg))))
		content.WriteString("\n")
		for _, a := range m.algs {
			content.WriteString(fmt.Sprintf("%s %s\n",
				st.label.Render(fmt.Sprintf("%-20s", a.Name())),
				st.value.Render(formatCRC(a, a.Checksum(msg))),
			))
		}
	}

	boxWidth := m.width - 4
	if boxWidth < 36 {
		boxWidth = 36
	}
	s.WriteString(st.box.Width(boxWidth).Render(strings.TrimRight(content.String(), "\n")))
	return s.String()
}
