package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventClick            EventType = "Click"
	EventSelectionChanged EventType = "SelectionChanged"
	EventDropdownToggled  EventType = "DropdownToggled"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ClickEvent is emitted for every primary-button press anywhere on screen
type ClickEvent struct {
	At Point
}

func (e ClickEvent) Type() EventType { return EventClick }

// SelectionChangedEvent is emitted after a contact is added to or removed
// from a widget's selection
type SelectionChangedEvent struct {
	WidgetID string
	Added    []Contact
	Removed  []Contact
	Total    int
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// DropdownToggledEvent is emitted when a widget's suggestion panel opens or closes
type DropdownToggledEvent struct {
	WidgetID string
	Visible  bool
	Matches  int
}

func (e DropdownToggledEvent) Type() EventType { return EventDropdownToggled }
