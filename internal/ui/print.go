package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/shadanan/mediar/internal/core"
)

// maxDisplay caps the operation preview before asking whether to page
// through the rest.
const maxDisplay = 10

var (
	copyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))  // blue
	moveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("204")) // red
	linkStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))  // green
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("228")) // yellow
)

func modeStyle(mode core.Mode) lipgloss.Style {
	switch mode {
	case core.ModeMove:
		return moveStyle
	case core.ModeLink:
		return linkStyle
	default:
		return copyStyle
	}
}

func modeVerb(mode core.Mode) string {
	switch mode {
	case core.ModeMove:
		return "Move"
	case core.ModeLink:
		return "Link"
	default:
		return "Copy"
	}
}

// PrintOperation renders one planned operation in the mode's color.
func PrintOperation(mode core.Mode, op core.Operation) {
	style := modeStyle(mode)
	fmt.Printf("%s: %s\n", modeVerb(mode), style.Render(op.Source))
	fmt.Printf("↪ To: %s\n", style.Render(op.Dest))
}

// PrintOperations previews the plan, paginating large lists behind a
// confirmation prompt.
func PrintOperations(mode core.Mode, ops []core.Operation) error {
	if len(ops) <= maxDisplay {
		for _, op := range ops {
			PrintOperation(mode, op)
		}
		return nil
	}

	for _, op := range ops[:maxDisplay] {
		PrintOperation(mode, op)
	}
	fmt.Println(dimStyle.Render(fmt.Sprintf("... and %d more operations", len(ops)-maxDisplay)))

	showAll, err := Confirm("Show all operations?", false)
	if err != nil {
		return err
	}
	if showAll {
		fmt.Println()
		for _, op := range ops[maxDisplay:] {
			PrintOperation(mode, op)
		}
	}
	return nil
}
