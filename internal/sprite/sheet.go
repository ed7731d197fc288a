package sprite

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat means a sheet file has an extension no parser handles.
var ErrUnknownFormat = errors.New("sprite: unknown sheet format")

// sheetFile is the on-disk layout shared by the YAML and TOML formats.
type sheetFile struct {
	Sprites []sheetEntry `yaml:"sprites" toml:"sprites"`
}

type sheetEntry struct {
	Name   string   `yaml:"name" toml:"name"`
	Width  int      `yaml:"width" toml:"width"`
	Height int      `yaml:"height" toml:"height"`
	Rows   []string `yaml:"rows,omitempty" toml:"rows,omitempty"`
	Data   []int    `yaml:"data,omitempty" toml:"data,omitempty"`
}

// SheetExtensions returns the file extensions LoadSheet can parse.
func SheetExtensions() []string {
	return []string{".yaml", ".yml", ".toml"}
}

// ParseSheet decodes sheet data in the given format ("yaml" or "toml") into entries.
func ParseSheet(data []byte, format string) ([]Entry, error) {
	var sf sheetFile

	switch format {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &sf); err != nil {
			return nil, fmt.Errorf("sprite: yaml unmarshal: %w", err)
		}
	case "toml":
		if err := toml.Unmarshal(data, &sf); err != nil {
			return nil, fmt.Errorf("sprite: toml unmarshal: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q (use %s)", ErrUnknownFormat, format, strings.Join(SheetExtensions(), ", "))
	}

	if len(sf.Sprites) == 0 {
		return nil, errors.New("sprite: sheet defines no sprites")
	}

	entries := make([]Entry, len(sf.Sprites))
	for i, s := range sf.Sprites {
		var mask []uint8
		if len(s.Data) > 0 {
			mask = make([]uint8, len(s.Data))
			for j, v := range s.Data {
				if v != 0 {
					mask[j] = 1
				}
			}
		}
		entries[i] = Entry{
			Name:   s.Name,
			Width:  s.Width,
			Height: s.Height,
			Rows:   s.Rows,
			Data:   mask,
		}
	}
	return entries, nil
}

// LoadSheet reads a sheet file, picks the parser by extension, builds the store and
// checks that every Required sprite is present.
func LoadSheet(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sprite: reading sheet %s: %w", path, err)
	}

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	entries, err := ParseSheet(data, format)
	if err != nil {
		return nil, fmt.Errorf("parsing sheet %s: %w", path, err)
	}

	st, err := NewStore(entries)
	if err != nil {
		return nil, fmt.Errorf("building sheet %s: %w", path, err)
	}
	if err := st.Require(Required...); err != nil {
		return nil, fmt.Errorf("sheet %s: %w", path, err)
	}
	return st, nil
}
