// Package directory holds the fixed pool of contacts a widget can offer.
package directory

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"inboxtags/internal/domain"
)

var (
	// ErrEmptyName is returned when a contact has a blank name
	ErrEmptyName = errors.New("contact name is empty")
	// ErrDuplicateContact is returned when two contacts share a name
	ErrDuplicateContact = errors.New("duplicate contact name")
)

// Directory is an ordered, read-only list of contacts
type Directory struct {
	contacts []domain.Contact
	byName   map[string]int
}

// New builds a directory, keeping the given order. Names are trimmed;
// blank or repeated names are rejected.
func New(contacts []domain.Contact) (*Directory, error) {
	d := &Directory{
		contacts: make([]domain.Contact, 0, len(contacts)),
		byName:   make(map[string]int, len(contacts)),
	}
	for i, c := range contacts {
		c.Name = strings.TrimSpace(c.Name)
		c.AvatarURL = strings.TrimSpace(c.AvatarURL)
		if c.Name == "" {
			return nil, fmt.Errorf("contact %d: %w", i, ErrEmptyName)
		}
		if _, dup := d.byName[c.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateContact, c.Name)
		}
		d.byName[c.Name] = len(d.contacts)
		d.contacts = append(d.contacts, c)
	}
	return d, nil
}

// MustNew is New for static tables; it panics on invalid input
func MustNew(contacts []domain.Contact) *Directory {
	d, err := New(contacts)
	if err != nil {
		panic(err)
	}
	return d
}

// Len returns the number of contacts
func (d *Directory) Len() int {
	if d == nil {
		return 0
	}
	return len(d.contacts)
}

// Lookup finds a contact by exact name
func (d *Directory) Lookup(name string) (domain.Contact, bool) {
	if d == nil {
		return domain.Contact{}, false
	}
	i, ok := d.byName[name]
	if !ok {
		return domain.Contact{}, false
	}
	return d.contacts[i], true
}

// All iterates contacts in directory order
func (d *Directory) All() iter.Seq[domain.Contact] {
	return func(yield func(domain.Contact) bool) {
		if d == nil {
			return
		}
		for _, c := range d.contacts {
			if !yield(c) {
				return
			}
		}
	}
}

// Contacts returns a copy of the contact list
func (d *Directory) Contacts() []domain.Contact {
	if d == nil {
		return nil
	}
	out := make([]domain.Contact, len(d.contacts))
	copy(out, d.contacts)
	return out
}
