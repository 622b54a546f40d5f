package widget

import (
	"errors"
	"fmt"

	"inboxtags/internal/domain"
	"inboxtags/internal/match"
)

var (
	// ErrMissingAnchor is returned when an anchor element is not provided
	ErrMissingAnchor = errors.New("widget anchor element is missing")
	// ErrMissingRenderer is returned when the presenter or tag renderer is nil
	ErrMissingRenderer = errors.New("widget renderer is missing")
	// ErrMissingDirectory is returned when no directory is configured
	ErrMissingDirectory = errors.New("widget directory is missing")
	// ErrMissingBus is returned when no document bus is configured
	ErrMissingBus = errors.New("widget document bus is missing")
)

// State is the widget's dropdown state
type State int

const (
	// Idle means the dropdown is hidden
	Idle State = iota
	// Suggesting means the dropdown shows at least one match
	Suggesting
	// Empty means the query is non-empty but nothing matches
	Empty
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Suggesting:
		return "suggesting"
	case Empty:
		return "empty"
	default:
		return "unknown"
	}
}

// Element is anything with an on-screen bounding box
type Element interface {
	Bounds() domain.Rect
}

// ElementFunc adapts a function to Element
type ElementFunc func() domain.Rect

// Bounds implements Element
func (f ElementFunc) Bounds() domain.Rect { return f() }

// Anchors are the host elements the widget lives in
type Anchors struct {
	Input    Element // query input
	Wrapper  Element // container hosting the chips and the input
	Dropdown Element // container hosting the suggestion panel
}

func (a Anchors) validate() error {
	switch {
	case a.Input == nil:
		return fmt.Errorf("%w: input", ErrMissingAnchor)
	case a.Wrapper == nil:
		return fmt.Errorf("%w: wrapper", ErrMissingAnchor)
	case a.Dropdown == nil:
		return fmt.Errorf("%w: dropdown", ErrMissingAnchor)
	}
	return nil
}

// Row is one suggestion: the contact and its name split around the match
type Row struct {
	Contact  domain.Contact
	Segments []match.Segment
}

// Presenter draws the suggestion panel
type Presenter interface {
	// Show replaces the panel content with rows, placed under anchor and
	// positioned relative to container. active is the keyboard cursor.
	Show(rows []Row, active int, anchor, container domain.Rect)
	// Hide removes all rows and collapses the panel
	Hide()
}

// TagRenderer draws the selection as removable chips
type TagRenderer interface {
	// Render replaces every chip with one per contact; chip i removes index i
	Render(selection []domain.Contact)
}
