package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"inboxtags/internal/domain"
	"inboxtags/internal/match"
	"inboxtags/internal/widget"
)

// DropdownRenderer draws the suggestion panel. It implements
// widget.Presenter and doubles as the dropdown anchor element.
type DropdownRenderer struct {
	styles      *Styles
	maxRows     int
	showAvatars bool

	visible   bool
	rows      []widget.Row
	active    int
	start     int // first row in the visible window
	container domain.Rect
	left, top int // relative to container
	view      string
	w, h      int
}

// NewDropdownRenderer creates a new dropdown renderer showing at most
// maxRows rows at a time (0 means unlimited)
func NewDropdownRenderer(styles *Styles, maxRows int, showAvatars bool) *DropdownRenderer {
	return &DropdownRenderer{
		styles:      styles,
		maxRows:     maxRows,
		showAvatars: showAvatars,
	}
}

// Show renders rows under anchor. The panel is left-aligned with the anchor
// and positioned relative to container, so it follows the input wherever
// the wrapper is drawn. It is shifted left only if it would otherwise run
// past the container's right edge.
func (d *DropdownRenderer) Show(rows []widget.Row, active int, anchor, container domain.Rect) {
	if len(rows) == 0 {
		d.Hide()
		return
	}
	d.visible = true
	d.rows = rows
	d.active = max(0, min(active, len(rows)-1))
	d.container = container

	d.start = 0
	if d.maxRows > 0 && len(rows) > d.maxRows && d.active >= d.maxRows {
		d.start = d.active - d.maxRows + 1
	}

	d.view = d.render()
	d.w = lipgloss.Width(d.view)
	d.h = lipgloss.Height(d.view)

	d.left = anchor.X - container.X
	d.top = anchor.Y - container.Y + anchor.H
	if container.W > 0 && d.left+d.w > container.W {
		d.left = max(0, container.W-d.w)
	}
}

// Hide removes all rows and collapses the panel
func (d *DropdownRenderer) Hide() {
	d.visible = false
	d.rows = nil
	d.active = 0
	d.start = 0
	d.view = ""
	d.w, d.h = 0, 0
}

// Visible reports whether the panel is open
func (d *DropdownRenderer) Visible() bool {
	return d.visible
}

// View returns the rendered panel, or "" when hidden
func (d *DropdownRenderer) View() string {
	return d.view
}

// offset returns the panel position relative to its container
func (d *DropdownRenderer) offset() (left, top int) {
	return d.left, d.top
}

// Bounds returns the panel's absolute rect; empty when hidden
func (d *DropdownRenderer) Bounds() domain.Rect {
	if !d.visible {
		return domain.Rect{}
	}
	return domain.Rect{
		X: d.container.X + d.left,
		Y: d.container.Y + d.top,
		W: d.w,
		H: d.h,
	}
}

// RowAt maps a screen point to the index of the row drawn there
func (d *DropdownRenderer) RowAt(p domain.Point) (int, bool) {
	b := d.Bounds()
	if !b.Contains(p) {
		return -1, false
	}
	// inside the border
	line := p.Y - b.Y - 1
	if line < 0 || line >= d.windowLen() || p.X == b.X || p.X == b.X+b.W-1 {
		return -1, false
	}
	return d.start + line, true
}

func (d *DropdownRenderer) windowLen() int {
	n := len(d.rows) - d.start
	if d.maxRows > 0 && n > d.maxRows {
		n = d.maxRows
	}
	return n
}

func (d *DropdownRenderer) render() string {
	end := d.start + d.windowLen()
	lines := make([]string, 0, end-d.start+1)
	for i := d.start; i < end; i++ {
		lines = append(lines, d.renderRow(d.rows[i], i == d.active))
	}
	if hidden := len(d.rows) - end; hidden > 0 {
		lines = append(lines, d.styles.Dim.Render(fmt.Sprintf("  +%d more", hidden)))
	}
	return d.styles.Dropdown.Render(strings.Join(lines, "\n"))
}

func (d *DropdownRenderer) renderRow(row widget.Row, active bool) string {
	name := match.Join(row.Segments, func(s string) string { return d.styles.Highlight.Render(s) })

	cursor := "  "
	if active {
		cursor = "› "
	}
	line := cursor
	if d.showAvatars {
		line += d.styles.RenderAvatar(row.Contact) + " "
	}
	line += name + " "

	if active {
		return d.styles.ActiveRow.Render(line)
	}
	return d.styles.Row.Render(line)
}
