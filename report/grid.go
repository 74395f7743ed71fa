package report

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/joshyorko/sbomlic/common"
	"github.com/joshyorko/sbomlic/pretty"
)

// PrintGrid renders the records as a bordered terminal grid, one
// license per line inside the cell, with a total count footer.
func PrintGrid(records []Record) {
	if len(records) == 0 {
		common.Stdout("No artifacts found.\n")
		return
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	borderStyle := lipgloss.NewStyle()
	if pretty.Disabled {
		headerStyle = headerStyle.Bold(false)
	} else {
		headerStyle = headerStyle.Foreground(lipgloss.Color("36"))
		borderStyle = borderStyle.Foreground(lipgloss.Color("240"))
	}

	grid := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("Name", "Version", "Type", "Licenses")

	for _, record := range records {
		licenses := "None"
		if lines := record.GridLines(); len(lines) > 0 {
			licenses = strings.Join(lines, "\n")
		}
		grid.Row(record.Name, record.Version, record.Type, licenses)
	}

	common.Stdout("%s\n", grid.Render())
	common.Stdout("\nTotal artifacts: %d\n", len(records))
}
