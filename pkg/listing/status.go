package listing

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/opst/synthstudio/api-types/jobs"
)

type IconKind int

const (
	Success IconKind = iota
	Failure
	InProgress
	Information
)

// Icon is a status icon with its tooltip.
type Icon struct {
	Kind    IconKind
	Tooltip string
}

var glyphs = map[IconKind]string{
	Success:     "✔",
	Failure:     "!",
	InProgress:  "◌",
	Information: "i",
}

var styles = map[IconKind]lipgloss.Style{
	Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("#52c41a")),
	Failure:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	InProgress:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	Information: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
}

func (i Icon) Glyph() string {
	return glyphs[i.Kind]
}

// Render returns the styled glyph.
func (i Icon) Render() string {
	return styles[i.Kind].Render(i.Glyph())
}

// Tooltips are the default tooltips per status.
//
// Statuses not in the map use DefaultTooltip.
var Tooltips = map[jobs.Status]string{
	jobs.Succeeded:  "Success!",
	jobs.Stopped:    "Error!",
	jobs.TimedOut:   "Job timeout!",
	jobs.Scheduling: "Scheduling!",
	jobs.Running:    "Engine running!",
	jobs.None:       "No job was executed",
}

const DefaultTooltip = "Check the job in the application!"

// DatasetOverrides are tooltips on the datasets page.
var DatasetOverrides = map[jobs.Status]string{
	jobs.None: "Job wasn't executed because dataset total count is less than 25!",
}

// StatusIcon returns the icon for the status.
//
// Tooltips in overrides take precedence over the default ones.
func StatusIcon(status jobs.Status, overrides map[jobs.Status]string) Icon {
	var kind IconKind
	switch status {
	case jobs.Succeeded, jobs.None:
		kind = Success
	case jobs.Stopped, jobs.TimedOut:
		kind = Failure
	case jobs.Scheduling, jobs.Running:
		kind = InProgress
	default:
		kind = Information
	}

	tooltip, ok := overrides[status]
	if !ok {
		if kind == Information {
			tooltip = DefaultTooltip
		} else {
			tooltip = Tooltips[status]
		}
	}
	return Icon{Kind: kind, Tooltip: tooltip}
}
