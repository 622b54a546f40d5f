package views

import (
	"strings"

	"inboxtags/internal/domain"
)

// PlacedChip is a chip with its on-screen hit boxes
type PlacedChip struct {
	Chip
	Box    domain.Rect
	Remove domain.Rect
}

// WrapperLayout is the flowed content of the tag wrapper: chips first,
// then the query input after the last chip
type WrapperLayout struct {
	Lines  []string // chip rows; the last one ends where the input starts
	Chips  []PlacedChip
	Input  domain.Rect
	Bounds domain.Rect
}

// FlowLayout lays chips out left to right from origin, wrapping at width.
// The input takes the rest of the last row, or a fresh row when fewer than
// minInput columns are left.
func FlowLayout(origin domain.Point, width int, chips []Chip, minInput int) WrapperLayout {
	if width < 1 {
		width = 1
	}
	if minInput > width {
		minInput = width
	}

	l := WrapperLayout{Lines: []string{""}}
	x, row := 0, 0
	for _, c := range chips {
		if x > 0 && x+c.Width > width {
			l.Lines = append(l.Lines, "")
			x, row = 0, row+1
		}
		box := domain.Rect{X: origin.X + x, Y: origin.Y + row, W: c.Width, H: 1}
		l.Chips = append(l.Chips, PlacedChip{
			Chip: c,
			Box:  box,
			// glyph plus its trailing pad
			Remove: domain.Rect{X: box.X + c.RemoveAt, Y: box.Y, W: 2, H: 1},
		})
		l.Lines[row] += c.Text + " "
		x += c.Width + 1
	}

	if x > 0 && width-x < minInput {
		l.Lines = append(l.Lines, "")
		x, row = 0, row+1
	}
	l.Input = domain.Rect{X: origin.X + x, Y: origin.Y + row, W: width - x, H: 1}
	l.Bounds = domain.Rect{X: origin.X, Y: origin.Y, W: width, H: row + 1}
	return l
}

// RemoveHit returns the selection index whose remove glyph covers p
func (l WrapperLayout) RemoveHit(p domain.Point) (int, bool) {
	for _, c := range l.Chips {
		if c.Remove.Contains(p) {
			return c.Index, true
		}
	}
	return -1, false
}

// Render joins the rows with the input view appended to the last one
func (l WrapperLayout) Render(indent int, input string) string {
	pad := strings.Repeat(" ", max(indent, 0))
	lines := make([]string, len(l.Lines))
	for i, line := range l.Lines {
		lines[i] = pad + line
	}
	lines[len(lines)-1] += input
	return strings.Join(lines, "\n")
}
