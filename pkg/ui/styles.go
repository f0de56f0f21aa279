package ui

import "github.com/charmbracelet/lipgloss"

// Color palette. Risk rating colors follow the same convention the
// engagement reports use (Low/Medium/High).
var (
	// Brand colors
	Primary   = lipgloss.Color("#2D7FF9") // Blue - brand color
	Secondary = lipgloss.Color("#00C896") // Teal

	// Risk rating colors
	High   = lipgloss.Color("#FF5454") // Red
	Medium = lipgloss.Color("#FFC53D") // Amber
	Low    = lipgloss.Color("#59C96B") // Green

	// Status colors
	Success = lipgloss.Color("#00D26A")
	Warning = lipgloss.Color("#FFB800")
	Error   = lipgloss.Color("#FF3838")
	Muted   = lipgloss.Color("#6B7280")
)

// Pre-configured styles
var (
	BannerStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	VersionStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	SectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true).
			MarginTop(1)

	ConfigLabelStyle = lipgloss.NewStyle().
				Foreground(Muted).
				Width(15)

	ConfigValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FAFAFA"))

	ProgressFullStyle = lipgloss.NewStyle().
				Foreground(Primary)

	ProgressEmptyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#3B3B4F"))

	StatLabelStyle = lipgloss.NewStyle().
			Foreground(Muted)

	StatValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true)

	BracketStyle = lipgloss.NewStyle().
			Foreground(Muted)

	DividerStyle = lipgloss.NewStyle().
			Foreground(Muted)

	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Table accents for the status view
	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(Secondary).
				Bold(true)

	PendingStyle = lipgloss.NewStyle().
			Foreground(Muted)
)

// RatingStyle returns the appropriate style for a risk rating.
func RatingStyle(rating string) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)
	switch rating {
	case "High":
		return base.Foreground(High)
	case "Medium":
		return base.Foreground(Medium)
	case "Low":
		return base.Foreground(Low)
	default:
		return base.Foreground(Muted)
	}
}

// PriorityStyle returns the appropriate style for a workstream priority.
func PriorityStyle(priority string) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)
	switch priority {
	case "high":
		return base.Foreground(High)
	case "medium":
		return base.Foreground(Medium)
	case "low":
		return base.Foreground(Low)
	default:
		return base.Foreground(Muted)
	}
}
