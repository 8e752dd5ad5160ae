package lexicon

import (
	"fmt"
	"os"
)

// LoadFile reads one external YAML pattern table.
func LoadFile(path string) ([]Pattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pattern table: %w", err)
	}
	return decode(data, path)
}

// LoadPaths reads and concatenates external tables in the given order.
// Coordinate collisions across files are left for store construction to
// reject, so a duplicate is fatal at startup rather than silently shadowed.
func LoadPaths(paths []string) ([]Pattern, error) {
	var all []Pattern
	for _, path := range paths {
		patterns, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		all = append(all, patterns...)
	}
	return all, nil
}
