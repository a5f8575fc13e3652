// Package alias maps user-supplied line names to canonical GO Transit
// line codes.
package alias

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed aliases.toml
var rawTable string

type lineEntry struct {
	Code    string   `toml:"code"`
	Aliases []string `toml:"aliases"`
}

type tableFile struct {
	Lines []lineEntry `toml:"line"`
}

// Table is the immutable many-to-one alias mapping, loaded once at
// startup.
type Table struct {
	codes map[string]string
}

// Load parses the embedded alias table.
func Load() (*Table, error) {
	var file tableFile
	if err := toml.Unmarshal([]byte(rawTable), &file); err != nil {
		return nil, fmt.Errorf("parse alias table: %w", err)
	}

	codes := make(map[string]string)
	for _, line := range file.Lines {
		if line.Code == "" {
			return nil, fmt.Errorf("alias table entry without a code")
		}
		for _, a := range line.Aliases {
			key := strings.ToLower(a)
			if prev, ok := codes[key]; ok && prev != line.Code {
				return nil, fmt.Errorf("alias %q maps to both %q and %q", a, prev, line.Code)
			}
			codes[key] = line.Code
		}
	}
	return &Table{codes: codes}, nil
}

// Normalize lowercases name and resolves it to a canonical line code.
// Unknown names pass through lowercased, not as an error: downstream
// matching is also case-insensitive, so an already-canonical code
// still matches.
func (t *Table) Normalize(name string) string {
	lower := strings.ToLower(name)
	if code, ok := t.codes[lower]; ok {
		return code
	}
	return lower
}
