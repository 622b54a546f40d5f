// Package widget implements the contact tag selector: a query input that
// offers matching directory contacts in a dropdown and keeps the chosen
// ones as removable chips.
//
// A Widget is driven from a single event loop. None of its methods block and
// none are safe for concurrent use.
package widget

import (
	"log"

	"github.com/oklog/ulid/v2"

	"inboxtags/internal/directory"
	"inboxtags/internal/domain"
	"inboxtags/internal/eventbus"
	"inboxtags/internal/match"
	"inboxtags/internal/selection"
)

// Config wires a widget to its directory, host elements and renderers
type Config struct {
	Directory *directory.Directory
	Anchors   Anchors
	Presenter Presenter
	Tags      TagRenderer
	// Bus is the document-level bus; the widget listens on it for clicks
	Bus eventbus.EventBus
}

// Widget owns one selector's state
type Widget struct {
	id        string
	dir       *directory.Directory
	store     *selection.Store
	anchors   Anchors
	presenter Presenter
	tags      TagRenderer
	bus       eventbus.EventBus

	unsubscribe func()

	matcher *match.Matcher
	matches []domain.Contact
	active  int
	state   State
}

// New creates a widget, renders its empty chip list and subscribes to
// document clicks. Call Close to release the subscription.
func New(cfg Config) (*Widget, error) {
	if cfg.Directory == nil {
		return nil, ErrMissingDirectory
	}
	if err := cfg.Anchors.validate(); err != nil {
		return nil, err
	}
	if cfg.Presenter == nil || cfg.Tags == nil {
		return nil, ErrMissingRenderer
	}
	if cfg.Bus == nil {
		return nil, ErrMissingBus
	}

	w := &Widget{
		id:        ulid.Make().String(),
		dir:       cfg.Directory,
		store:     selection.NewStore(),
		anchors:   cfg.Anchors,
		presenter: cfg.Presenter,
		tags:      cfg.Tags,
		bus:       cfg.Bus,
		matcher:   match.NewMatcher(""),
		state:     Idle,
	}
	w.unsubscribe = cfg.Bus.Subscribe(eventbus.EventClick, w.handleClick)

	w.tags.Render(nil)
	w.presenter.Hide()

	log.Printf("[widget %s] created with %d contacts", w.id, w.dir.Len())
	return w, nil
}

// ID returns the widget's unique instance ID
func (w *Widget) ID() string {
	return w.id
}

// State returns the current dropdown state
func (w *Widget) State() State {
	return w.state
}

// Query returns the normalized current query
func (w *Widget) Query() string {
	return w.matcher.Query()
}

// Matches returns a copy of the suggestions currently offered
func (w *Widget) Matches() []domain.Contact {
	out := make([]domain.Contact, len(w.matches))
	copy(out, w.matches)
	return out
}

// Active returns the keyboard cursor into Matches, or -1 when hidden
func (w *Widget) Active() int {
	if w.state != Suggesting {
		return -1
	}
	return w.active
}

// Selection returns the chosen contacts in order
func (w *Widget) Selection() []domain.Contact {
	return w.store.Contacts()
}

// SetQuery handles a change of the input text. Surrounding whitespace is
// ignored; a blank query hides the dropdown.
func (w *Widget) SetQuery(query string) State {
	prev := w.matcher.Query()
	w.matcher = match.NewMatcher(query)
	if w.matcher.Query() != prev {
		w.active = 0
	}
	w.recompute()
	return w.state
}

// Refresh recomputes and redraws the dropdown for the current query, e.g.
// after the anchors moved
func (w *Widget) Refresh() {
	w.recompute()
}

// Hide closes the dropdown. The query is kept, so the next keystroke
// reopens it.
func (w *Widget) Hide() {
	w.hide()
}

// MoveActive moves the keyboard cursor by delta rows, wrapping around
func (w *Widget) MoveActive(delta int) {
	if w.state != Suggesting || len(w.matches) == 0 {
		return
	}
	n := len(w.matches)
	w.active = ((w.active+delta)%n + n) % n
	w.show()
}

// ChooseActive selects the match under the keyboard cursor
func (w *Widget) ChooseActive() bool {
	if w.state != Suggesting {
		return false
	}
	return w.Choose(w.active)
}

// Choose selects the i-th current match, clears the query, redraws the chips
// and hides the dropdown. It reports false when there is no such match.
func (w *Widget) Choose(i int) bool {
	if w.state != Suggesting || i < 0 || i >= len(w.matches) {
		return false
	}
	c := w.matches[i]
	if _, ok := w.dir.Lookup(c.Name); !ok {
		log.Printf("[widget %s] ignoring %q: not in the directory", w.id, c.Name)
		return false
	}
	if !w.store.Append(c) {
		// Matches exclude selected names, so this only happens if the
		// caller held on to a stale index.
		log.Printf("[widget %s] ignoring duplicate selection of %q", w.id, c.Name)
		return false
	}
	w.tags.Render(w.store.Contacts())

	w.matcher = match.NewMatcher("")
	w.active = 0
	w.hide()

	w.bus.Publish(domain.SelectionChangedEvent{
		WidgetID: w.id,
		Added:    []domain.Contact{c},
		Total:    w.store.Len(),
	})
	return true
}

// RemoveTag removes the chip at index. Stale or out-of-range indices are
// ignored.
func (w *Widget) RemoveTag(index int) bool {
	removed, ok := w.store.RemoveAt(index)
	if !ok {
		log.Printf("[widget %s] ignoring removal of chip %d (have %d)", w.id, index, w.store.Len())
		return false
	}
	w.tags.Render(w.store.Contacts())

	// The removed contact may match the open query again
	if w.state != Idle {
		w.recompute()
	}

	w.bus.Publish(domain.SelectionChangedEvent{
		WidgetID: w.id,
		Removed:  []domain.Contact{removed},
		Total:    w.store.Len(),
	})
	return true
}

// RemoveLast removes the most recently added chip
func (w *Widget) RemoveLast() bool {
	return w.RemoveTag(w.store.Len() - 1)
}

// Bounds is the widget's root region: the wrapper plus the dropdown when open
func (w *Widget) Bounds() domain.Rect {
	r := w.anchors.Wrapper.Bounds()
	if w.state == Suggesting {
		r = r.Union(w.anchors.Dropdown.Bounds())
	}
	return r
}

// Close releases the document click subscription. It is safe to call twice.
func (w *Widget) Close() {
	if w.unsubscribe == nil {
		return
	}
	w.unsubscribe()
	w.unsubscribe = nil
	log.Printf("[widget %s] closed", w.id)
}

func (w *Widget) handleClick(e eventbus.DomainEvent) {
	click, ok := e.(domain.ClickEvent)
	if !ok || w.state == Idle {
		return
	}
	if w.Bounds().Contains(click.At) {
		return
	}
	w.hide()
}

func (w *Widget) recompute() {
	if w.matcher.Empty() {
		w.hide()
		return
	}

	w.matches = match.ComputeMatches(w.dir, w.store, w.matcher.Query())
	if len(w.matches) == 0 {
		wasVisible := w.state == Suggesting
		w.presenter.Hide()
		w.state = Empty
		w.active = 0
		if wasVisible {
			w.publishToggle(false)
		}
		return
	}

	if w.active >= len(w.matches) {
		w.active = 0
	}
	wasVisible := w.state == Suggesting
	w.state = Suggesting
	w.show()
	if !wasVisible {
		w.publishToggle(true)
	}
}

func (w *Widget) show() {
	rows := make([]Row, len(w.matches))
	for i, c := range w.matches {
		rows[i] = Row{Contact: c, Segments: w.matcher.Highlight(c.Name)}
	}
	w.presenter.Show(rows, w.active, w.anchors.Input.Bounds(), w.anchors.Wrapper.Bounds())
}

func (w *Widget) hide() {
	wasVisible := w.state == Suggesting
	w.presenter.Hide()
	w.matches = nil
	w.active = 0
	w.state = Idle
	if wasVisible {
		w.publishToggle(false)
	}
}

func (w *Widget) publishToggle(visible bool) {
	w.bus.Publish(domain.DropdownToggledEvent{
		WidgetID: w.id,
		Visible:  visible,
		Matches:  len(w.matches),
	})
}
