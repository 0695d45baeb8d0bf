package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "141" // Purple - logo, headings, buttons
	ColorHighlight = "111" // Blue - focused controls, active nav item
	ColorMuted     = "245" // Gray - excerpts, hints, footer
	ColorText      = "252" // Light gray - body text
	ColorSurface   = "236" // Dark gray - card and input borders
	ColorDanger    = "203" // Red - not-found heading, errors
)

// Styles contains shared style definitions used across pages.
var Styles = struct {
	Logo      lipgloss.Style // Bold accent - the TechSphere logo
	NavItem   lipgloss.Style // Nav bar entry
	NavActive lipgloss.Style // Nav bar entry for the current page
	Rule      lipgloss.Style // Separator under the nav bar

	HeroTitle lipgloss.Style // Home banner title
	Heading   lipgloss.Style // Page and section headings
	Title     lipgloss.Style // Article title on the detail page
	Body      lipgloss.Style // Paragraphs
	Muted     lipgloss.Style // Excerpts, footer
	Hint      lipgloss.Style // Key hints
	Status    lipgloss.Style // Transient status line
	Error     lipgloss.Style // Not-found heading, copy errors

	Card        lipgloss.Style // Article preview box
	CardFocused lipgloss.Style // Article preview box with focus
	CardTitle   lipgloss.Style // Title inside a card

	Button        lipgloss.Style // Clickable button
	ButtonFocused lipgloss.Style // Button with focus

	Input        lipgloss.Style // Contact form input frame
	InputFocused lipgloss.Style // Input frame being edited

	Overlay lipgloss.Style // Help overlay box
}{
	Logo: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	NavItem: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	NavActive: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Bold(true).
		Underline(true),
	Rule: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSurface)),
	HeroTitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Heading: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)),
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Body: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)),
	Error: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorSurface)).
		Padding(0, 1),
	CardFocused: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	CardTitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Button: lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color(ColorAccent)).
		Padding(0, 2),
	ButtonFocused: lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color(ColorHighlight)).
		Bold(true).
		Padding(0, 2),
	Input: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorSurface)).
		Padding(0, 1),
	InputFocused: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	Overlay: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(1, 2),
}
