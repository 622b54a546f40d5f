package selection

import (
	"inboxtags/internal/domain"
)

// Store is the ordered list of chosen contacts. Insertion order is
// selection order and names are unique. It is not safe for concurrent use;
// a widget owns exactly one and mutates it from its event loop.
type Store struct {
	contacts []domain.Contact
	names    map[string]struct{}
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		names: make(map[string]struct{}),
	}
}

// Append adds c to the end. A contact whose name is already present is
// ignored and Append reports false.
func (s *Store) Append(c domain.Contact) bool {
	if _, dup := s.names[c.Name]; dup {
		return false
	}
	s.names[c.Name] = struct{}{}
	s.contacts = append(s.contacts, c)
	return true
}

// RemoveAt removes the contact at index. Out-of-range indices are ignored.
func (s *Store) RemoveAt(index int) (domain.Contact, bool) {
	if index < 0 || index >= len(s.contacts) {
		return domain.Contact{}, false
	}
	removed := s.contacts[index]
	s.contacts = append(s.contacts[:index], s.contacts[index+1:]...)
	delete(s.names, removed.Name)
	return removed, true
}

// Contains checks if a contact with name is selected
func (s *Store) Contains(name string) bool {
	_, ok := s.names[name]
	return ok
}

// Len returns the number of selected contacts
func (s *Store) Len() int {
	return len(s.contacts)
}

// Contacts returns a copy of the selection in order
func (s *Store) Contacts() []domain.Contact {
	out := make([]domain.Contact, len(s.contacts))
	copy(out, s.contacts)
	return out
}

// nameList returns selected names in order
func (s *Store) nameList() []string {
	out := make([]string, len(s.contacts))
	for i, c := range s.contacts {
		out[i] = c.Name
	}
	return out
}
