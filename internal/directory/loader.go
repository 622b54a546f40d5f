package directory

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"inboxtags/internal/domain"
)

// ErrUnsupportedFile is returned for contact files with an unknown extension
var ErrUnsupportedFile = errors.New("unsupported contacts file type")

// file is the on-disk shape shared by every supported format
type file struct {
	Contacts []domain.Contact `json:"contacts" yaml:"contacts" toml:"contacts"`
}

// LoadFile reads a directory from a .toml, .yaml/.yml or .json file
func LoadFile(path string) (*Directory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read contacts file: %w", err)
	}

	contacts, err := Decode(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return New(contacts)
}

// Decode parses contact data; ext selects the format (".toml", ".yaml",
// ".yml" or ".json")
func Decode(data []byte, ext string) ([]domain.Contact, error) {
	var f file
	switch strings.ToLower(ext) {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("failed to parse contacts: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse contacts: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse contacts: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFile, ext)
	}
	return f.Contacts, nil
}

// Load returns the directory from path, or the built-in one when path is empty
func Load(path string) (*Directory, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}
