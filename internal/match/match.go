// Package match computes which directory contacts to offer for a query.
//
// Matching is case-insensitive literal substring containment. The query is
// escaped before it is compiled, so characters such as "(" or "*" match
// themselves. The same compiled matcher drives both filtering and
// highlighting.
package match

import (
	"iter"
	"log"
	"regexp"
	"slices"
	"strings"

	"inboxtags/internal/domain"
)

// Source is an ordered pool of contacts
type Source interface {
	All() iter.Seq[domain.Contact]
}

// Selection reports which contacts are already chosen
type Selection interface {
	Contains(name string) bool
}

// Names is a Selection backed by a fixed set of names
type Names map[string]struct{}

// NewNames builds a Names set
func NewNames(names ...string) Names {
	n := make(Names, len(names))
	for _, name := range names {
		n[name] = struct{}{}
	}
	return n
}

// Contains implements Selection
func (n Names) Contains(name string) bool {
	_, ok := n[name]
	return ok
}

// Matcher is a compiled query
type Matcher struct {
	query string
	re    *regexp.Regexp
}

// NormalizeQuery trims surrounding whitespace and replaces invalid UTF-8
// with U+FFFD; a blank query becomes ""
func NormalizeQuery(query string) string {
	return strings.TrimSpace(strings.ToValidUTF8(query, "\uFFFD"))
}

// NewMatcher compiles query for case-insensitive literal matching
func NewMatcher(query string) *Matcher {
	q := NormalizeQuery(query)
	m := &Matcher{query: q}
	if q == "" {
		return m
	}
	re, err := regexp.Compile("(?i)" + regexp.QuoteMeta(q))
	if err != nil {
		// a nil re matches nothing
		log.Printf("Cannot compile query %q: %v", q, err)
		return m
	}
	m.re = re
	return m
}

// Query returns the normalized query
func (m *Matcher) Query() string {
	return m.query
}

// Empty reports whether the query is blank. An empty matcher matches nothing.
func (m *Matcher) Empty() bool {
	return m.query == ""
}

// Match reports whether name contains the query
func (m *Matcher) Match(name string) bool {
	if m.re == nil {
		return false
	}
	return m.re.MatchString(name)
}

// Find returns the byte range of the first occurrence of the query in name
func (m *Matcher) Find(name string) (start, end int, ok bool) {
	if m.re == nil {
		return 0, 0, false
	}
	loc := m.re.FindStringIndex(name)
	if loc == nil || loc[0] == loc[1] {
		return 0, 0, false
	}
	return loc[0], loc[1], true
}

// Filter yields contacts from src that match and are not selected, in
// source order. The sequence can be ranged over any number of times.
func (m *Matcher) Filter(src Source, sel Selection) iter.Seq[domain.Contact] {
	return func(yield func(domain.Contact) bool) {
		if m.re == nil || src == nil {
			return
		}
		for c := range src.All() {
			if sel != nil && sel.Contains(c.Name) {
				continue
			}
			if !m.re.MatchString(c.Name) {
				continue
			}
			if !yield(c) {
				return
			}
		}
	}
}

// Matches is the lazy form of ComputeMatches
func Matches(src Source, sel Selection, query string) iter.Seq[domain.Contact] {
	return NewMatcher(query).Filter(src, sel)
}

// ComputeMatches returns the contacts in src whose name contains query
// (case-insensitively), minus those already in sel, in src order.
// A blank query yields no matches.
func ComputeMatches(src Source, sel Selection, query string) []domain.Contact {
	out := slices.Collect(Matches(src, sel, query))
	if out == nil {
		return []domain.Contact{}
	}
	return out
}
