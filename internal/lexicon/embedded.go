package lexicon

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// embeddedTables contains the built-in pattern corpus baked into the binary
// at compile time, eliminating filesystem dependencies for the default
// deployment.
//
//go:embed patterns/*.yaml
var embeddedTables embed.FS

// Embedded returns the built-in pattern table. Files are read in sorted
// order so the result is stable across builds and runs.
func Embedded() ([]Pattern, error) {
	entries, err := fs.ReadDir(embeddedTables, "patterns")
	if err != nil {
		return nil, fmt.Errorf("read embedded pattern corpus: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if ext := strings.ToLower(filepath.Ext(e.Name())); ext != ".yaml" && ext != ".yml" {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	var all []Pattern
	for _, name := range names {
		data, err := embeddedTables.ReadFile("patterns/" + name)
		if err != nil {
			return nil, fmt.Errorf("read embedded pattern table %s: %w", name, err)
		}
		patterns, err := decode(data, "embedded:"+name)
		if err != nil {
			return nil, err
		}
		all = append(all, patterns...)
	}
	return all, nil
}
