// Package timeline holds the static career timeline shown in the visual panel.
//
// The table is content, not code: it is read from a versioned TOML file and
// falls back to an embedded default when no file is configured.
package timeline

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed default.toml
var defaultTable []byte

// Entry is one position or degree on the timeline.
type Entry struct {
	ID           string `toml:"id" json:"id"`
	Date         string `toml:"date" json:"date"`
	Title        string `toml:"title" json:"title"`
	Organization string `toml:"organization" json:"organization"`
	Description  string `toml:"description" json:"description"`
}

// Table is a versioned set of entries in display order.
type Table struct {
	Version string  `toml:"version" json:"version"`
	Entries []Entry `toml:"entries" json:"entries"`
}

// Marked is an entry with its highlight state.
type Marked struct {
	Entry
	Highlighted bool
}

// DefaultTOML returns the embedded table document.
func DefaultTOML() []byte {
	return append([]byte(nil), defaultTable...)
}

// Default returns the embedded table.
func Default() *Table {
	table, err := Parse(defaultTable)
	if err != nil {
		panic(fmt.Sprintf("embedded timeline is invalid: %v", err))
	}
	return table
}

// Parse decodes and validates a TOML table.
func Parse(data []byte) (*Table, error) {
	var table Table
	if _, err := toml.Decode(string(data), &table); err != nil {
		return nil, fmt.Errorf("error decoding timeline: %w", err)
	}
	if err := table.validate(); err != nil {
		return nil, err
	}
	return &table, nil
}

// Load reads a table from path. An empty path returns the embedded table.
func Load(path string) (*Table, error) {
	if path == "" {
		return Default(), nil
	}

	var table Table
	if _, err := toml.DecodeFile(path, &table); err != nil {
		return nil, fmt.Errorf("error decoding timeline file '%s': %w", path, err)
	}
	if err := table.validate(); err != nil {
		return nil, fmt.Errorf("timeline file '%s': %w", path, err)
	}
	return &table, nil
}

func (t *Table) validate() error {
	seen := make(map[string]bool, len(t.Entries))
	for i, entry := range t.Entries {
		if entry.ID == "" {
			return fmt.Errorf("timeline entry %d has no id", i)
		}
		if seen[entry.ID] {
			return fmt.Errorf("duplicate timeline entry id: %s", entry.ID)
		}
		seen[entry.ID] = true
	}
	return nil
}

// Highlight marks every entry whose id contains id (case-sensitive).
// An empty id marks nothing.
func Highlight(entries []Entry, id string) []Marked {
	marked := make([]Marked, len(entries))
	for i, entry := range entries {
		marked[i] = Marked{
			Entry:       entry,
			Highlighted: id != "" && strings.Contains(entry.ID, id),
		}
	}
	return marked
}
