// Package lexicon supplies the fixed pattern table. The built-in corpus is
// baked into the binary via go:embed; additional tables can be loaded from
// YAML files at startup. The core treats the merged table as an opaque
// immutable input — nothing here is consulted after the store is built.
package lexicon

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"sealstack/internal/coordinate"
	"sealstack/internal/pattern"
)

// Pattern is re-exported so callers loading tables need not import the
// store package alongside this one.
type Pattern = pattern.Pattern

// record is one YAML pattern entry.
type record struct {
	Coordinate string   `yaml:"coordinate"`
	Title      string   `yaml:"title"`
	Language   string   `yaml:"language"`
	Tags       []string `yaml:"tags"`
	Body       string   `yaml:"body"`
}

// tableFile is the top-level YAML document shape.
type tableFile struct {
	Patterns []record `yaml:"patterns"`
}

// decode parses one YAML document into patterns. source names the document
// in error messages.
func decode(data []byte, source string) ([]Pattern, error) {
	var f tableFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse pattern table %s: %w", source, err)
	}

	out := make([]Pattern, 0, len(f.Patterns))
	for i, r := range f.Patterns {
		c, err := coordinate.Parse(strings.TrimSpace(r.Coordinate))
		if err != nil {
			return nil, fmt.Errorf("pattern table %s entry %d: %w", source, i, err)
		}
		if r.Title == "" || r.Body == "" {
			return nil, fmt.Errorf("pattern table %s entry %d (%s): title and body are required", source, i, c)
		}

		tags := make([]string, 0, len(r.Tags))
		for _, t := range r.Tags {
			t = strings.ToLower(strings.TrimSpace(t))
			if t != "" {
				tags = append(tags, t)
			}
		}

		out = append(out, Pattern{
			Coordinate: c,
			Title:      r.Title,
			Body:       strings.TrimRight(r.Body, "\n"),
			Tags:       tags,
			Language:   r.Language,
		})
	}
	return out, nil
}
