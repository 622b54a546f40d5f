package views

import (
	"hash/fnv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"inboxtags/internal/domain"
)

// Initials returns up to two upper-case initials for name
func Initials(name string) string {
	var out []rune
	for _, word := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(word)
		if r == utf8.RuneError {
			continue
		}
		out = append(out, unicode.ToUpper(r))
		if len(out) == 2 {
			break
		}
	}
	if len(out) == 0 {
		return "?"
	}
	return string(out)
}

// avatarColor picks a stable colour for a contact, keyed on its avatar URL
// so the same picture always gets the same badge
func avatarColor(c domain.Contact) string {
	key := c.AvatarURL
	if key == "" {
		key = c.Name
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return avatarColors[h.Sum32()%uint32(len(avatarColors))]
}

// RenderAvatar draws a contact's avatar as a coloured initials badge.
// Terminals cannot show the picture itself.
func (s *Styles) RenderAvatar(c domain.Contact) string {
	return s.Avatar.
		Background(lipgloss.Color(avatarColor(c))).
		Render(Initials(c.Name))
}
