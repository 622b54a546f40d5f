package directory

import "inboxtags/internal/domain"

// DefaultContacts is the built-in sample directory used when no contacts
// file is configured
func DefaultContacts() []domain.Contact {
	return []domain.Contact{
		{Name: "Chetan Johnson", AvatarURL: "https://i.pravatar.cc/150?img=1"},
		{Name: "Bob Smith", AvatarURL: "https://i.pravatar.cc/150?img=2"},
		{Name: "Charlie Lee", AvatarURL: "https://i.pravatar.cc/150?img=3"},
		{Name: "Diana Prince", AvatarURL: "https://i.pravatar.cc/150?img=4"},
		{Name: "Eva Adams", AvatarURL: "https://i.pravatar.cc/150?img=5"},
		{Name: "Frank Cooper", AvatarURL: "https://i.pravatar.cc/150?img=6"},
		{Name: "George Martin", AvatarURL: "https://i.pravatar.cc/150?img=7"},
	}
}

// Default returns the built-in directory
func Default() *Directory {
	return MustNew(DefaultContacts())
}
