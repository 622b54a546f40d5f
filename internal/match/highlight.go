package match

// Segment is a run of a name, either inside or outside the matched span
type Segment struct {
	Text  string
	Match bool
}

// Highlight splits name around the first occurrence of the query.
// Casing is preserved; only the first occurrence is marked. A name without
// a match comes back as a single unmarked segment.
func (m *Matcher) Highlight(name string) []Segment {
	start, end, ok := m.Find(name)
	if !ok {
		if name == "" {
			return nil
		}
		return []Segment{{Text: name}}
	}

	segs := make([]Segment, 0, 3)
	if start > 0 {
		segs = append(segs, Segment{Text: name[:start]})
	}
	segs = append(segs, Segment{Text: name[start:end], Match: true})
	if end < len(name) {
		segs = append(segs, Segment{Text: name[end:]})
	}
	return segs
}

// Highlight is a convenience wrapper compiling query on the fly
func Highlight(name, query string) []Segment {
	return NewMatcher(query).Highlight(name)
}

// Join renders segments back to text, wrapping matched runs with mark
func Join(segs []Segment, mark func(string) string) string {
	var n int
	for _, s := range segs {
		n += len(s.Text)
	}
	buf := make([]byte, 0, n)
	for _, s := range segs {
		if s.Match && mark != nil {
			buf = append(buf, mark(s.Text)...)
			continue
		}
		buf = append(buf, s.Text...)
	}
	return string(buf)
}
