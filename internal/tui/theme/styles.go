package theme

import "charm.land/lipgloss/v2"

// Styles contains all pre-built lipgloss styles for the TUI.
type Styles struct {
	HeaderTitle  lipgloss.Style
	StepCounter  lipgloss.Style
	Heading      lipgloss.Style
	SectionTitle lipgloss.Style

	Text    lipgloss.Style
	Muted   lipgloss.Style
	Subtle  lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style

	// Lists
	Cursor   lipgloss.Style
	Selected lipgloss.Style
	Chip     lipgloss.Style

	// View tabs
	Tab       lipgloss.Style
	TabActive lipgloss.Style

	// Containers
	Panel lipgloss.Style
	Modal lipgloss.Style
	Toast lipgloss.Style
}
