package views

import (
	"github.com/charmbracelet/lipgloss"

	"inboxtags/internal/domain"
)

// RemoveGlyph is the remove affordance drawn at the end of every chip
const RemoveGlyph = "×"

// Chip is one rendered tag
type Chip struct {
	Index   int // selection index the remove glyph removes
	Contact domain.Contact
	Text    string // styled chip
	Width   int    // visible width of Text
	// RemoveAt is the column offset of the remove glyph within Text
	RemoveAt int
}

// TagRenderer renders the selection as removable chips. It implements
// widget.TagRenderer and always rebuilds every chip from scratch.
type TagRenderer struct {
	styles      *Styles
	showAvatars bool
	chips       []Chip
}

// NewTagRenderer creates a new tag renderer
func NewTagRenderer(styles *Styles, showAvatars bool) *TagRenderer {
	return &TagRenderer{
		styles:      styles,
		showAvatars: showAvatars,
	}
}

// Render replaces all chips with one per selected contact
func (r *TagRenderer) Render(selection []domain.Contact) {
	chips := make([]Chip, 0, len(selection))
	for i, c := range selection {
		chips = append(chips, r.renderChip(i, c))
	}
	r.chips = chips
}

func (r *TagRenderer) renderChip(index int, c domain.Contact) Chip {
	plain := r.styles.Chip.UnsetPadding()
	label := plain.Render(c.Name)
	if r.showAvatars {
		label = r.styles.RenderAvatar(c) + plain.Render(" "+c.Name)
	}

	// " " + label + " " + glyph + " "
	pad := plain.Render(" ")
	text := pad + label + pad + r.styles.ChipRemove.Render(RemoveGlyph) + pad

	return Chip{
		Index:    index,
		Contact:  c,
		Text:     text,
		Width:    lipgloss.Width(text),
		RemoveAt: 1 + lipgloss.Width(label) + 1,
	}
}

// Chips returns the chips from the last Render
func (r *TagRenderer) Chips() []Chip {
	out := make([]Chip, len(r.chips))
	copy(out, r.chips)
	return out
}
