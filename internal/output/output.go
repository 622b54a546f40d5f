// Package output writes a selection in the formats the CLI supports.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"inboxtags/internal/config"
	"inboxtags/internal/domain"
)

// document is the structured shape; TOML needs a top-level table
type document struct {
	Recipients []domain.Contact `json:"recipients" yaml:"recipients" toml:"recipients"`
}

// Write encodes contacts to w in format
func Write(w io.Writer, format string, contacts []domain.Contact) error {
	if contacts == nil {
		contacts = []domain.Contact{}
	}
	doc := document{Recipients: contacts}

	switch format {
	case "text", "":
		for _, c := range contacts {
			line := c.Name
			if c.AvatarURL != "" {
				line += " <" + c.AvatarURL + ">"
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return fmt.Errorf("failed to write recipients: %w", err)
			}
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode recipients: %w", err)
		}
		return nil
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode recipients: %w", err)
		}
		return enc.Close()
	case "toml":
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return fmt.Errorf("failed to encode recipients: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", config.ErrUnknownFormat, format)
	}
}
