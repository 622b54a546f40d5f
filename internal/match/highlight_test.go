package match

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHighlightFirstOccurrenceOnly(t *testing.T) {
	segs := Highlight("Anna Banana", "an")
	assert.Equal(t, []Segment{
		{Text: "An", Match: true},
		{Text: "na Banana"},
	}, segs)
}

func TestHighlightPreservesCase(t *testing.T) {
	segs := Highlight("Charlie Lee", "LIE")
	assert.Equal(t, []Segment{
		{Text: "Char"},
		{Text: "lie", Match: true},
		{Text: " Lee"},
	}, segs)
}

func TestHighlightWholeName(t *testing.T) {
	assert.Equal(t, []Segment{{Text: "Bob", Match: true}}, Highlight("Bob", "bob"))
}

func TestHighlightNoMatch(t *testing.T) {
	assert.Equal(t, []Segment{{Text: "Bob Smith"}}, Highlight("Bob Smith", "("))
	assert.Equal(t, []Segment{{Text: "Bob Smith"}}, Highlight("Bob Smith", ""))
	assert.Nil(t, Highlight("", "x"))
}

func TestHighlightSpecialCharacters(t *testing.T) {
	segs := Highlight("Ops (on call)", "(ON")
	assert.Equal(t, []Segment{
		{Text: "Ops "},
		{Text: "(on", Match: true},
		{Text: " call)"},
	}, segs)
}

func TestJoin(t *testing.T) {
	segs := Highlight("Charlie Lee", "lee")
	out := Join(segs, func(s string) string { return "<" + s + ">" })
	assert.Equal(t, "Charlie <Lee>", out)

	// wrapping never strips text
	plain := Join(segs, nil)
	assert.Equal(t, "Charlie Lee", plain)
	assert.Equal(t, "Charlie Lee", strings.NewReplacer("<", "", ">", "").Replace(out))
}
