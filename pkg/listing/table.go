package listing

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/opst/synthstudio/api-types/jobs"
)

// Column is a column of text tables.
type Column[R Record] struct {
	Header string
	Value  func(R) string
}

// StatusColumn shows the status icon and its tooltip.
func StatusColumn[R Record](overrides map[jobs.Status]string) Column[R] {
	return Column[R]{
		Header: "STATUS",
		Value: func(r R) string {
			icon := StatusIcon(r.Status(), overrides)
			return icon.Render() + " " + icon.Tooltip
		},
	}
}

// headerRow is the row index StyleFunc gives to headers.
const headerRow = 0

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// Table renders records as a text table.
func Table[R Record](records []R, columns ...Column[R]) string {
	headers := make([]string, 0, len(columns))
	for _, c := range columns {
		headers = append(headers, c.Header)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == headerRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, r := range records {
		cells := make([]string, 0, len(columns))
		for _, c := range columns {
			cells = append(cells, c.Value(r))
		}
		t.Row(cells...)
	}
	return t.Render()
}
