package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title        lipgloss.Style
	Label        lipgloss.Style
	Dim          lipgloss.Style
	Status       lipgloss.Style
	Help         lipgloss.Style
	Chip         lipgloss.Style
	ChipRemove   lipgloss.Style
	Dropdown     lipgloss.Style
	Row          lipgloss.Style
	ActiveRow    lipgloss.Style
	Highlight    lipgloss.Style
	Avatar       lipgloss.Style
	StatusError  lipgloss.Style
	StatusEmpty  lipgloss.Style
	StatusActive lipgloss.Style
}

// NewStyles creates a new Styles instance; highlightColor overrides the
// match highlight colour when non-empty
func NewStyles(highlightColor string) *Styles {
	if highlightColor == "" {
		highlightColor = "226"
	}
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Label: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Dim:   lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Help: lipgloss.NewStyle().Faint(true),
		Chip: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("238")).
			Padding(0, 1),
		ChipRemove: lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")).
			Background(lipgloss.Color("238")).
			Bold(true),
		Dropdown: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")),
		Row:          lipgloss.NewStyle(),
		ActiveRow:    lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Highlight:    lipgloss.NewStyle().Foreground(lipgloss.Color(highlightColor)).Bold(true),
		Avatar:       lipgloss.NewStyle().Bold(true).Width(2).Foreground(lipgloss.Color("16")),
		StatusError:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusEmpty:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		StatusActive: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
	}
}

// avatarColors is the palette avatar badges are drawn from
var avatarColors = []string{"33", "39", "78", "99", "141", "170", "208", "214"}
