// Package coordinate implements the semantic coordinate addressing scheme
// used to identify stored code patterns. A coordinate pins a pattern to one
// of seven seal layers, a quadrant within that layer, a lexicon namespace,
// and a dotted entity path, with an authored confidence class:
//
//	L2.Q3.TECH.PYTHON.CONFIG.DATACLASS[C3]
//
// The textual form is the one external contract callers may persist; parsing
// and serialization round-trip losslessly (prefix letters normalize to upper
// case, everything else is preserved byte for byte).
package coordinate

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrMalformed indicates text that does not match the coordinate grammar.
var ErrMalformed = errors.New("malformed coordinate")

// Coordinate is the immutable address of a single pattern.
type Coordinate struct {
	// Layer is the seal layer, 1-7.
	Layer SealLayer

	// Quadrant is a namespacing bucket within the layer, 1-4. It carries
	// no cross-layer meaning.
	Quadrant int

	// Lexicon is the namespace grouping pattern domains (TECH, DATA, AUTH).
	// Case-sensitive.
	Lexicon string

	// Entity is the dotted path naming the pattern concept,
	// e.g. "PYTHON.FUNCTION.BASIC". Case-sensitive.
	Entity string

	// Variant is an optional qualifier. Parse never populates it (the split
	// between entity and variant is not recoverable from text); it exists for
	// coordinates authored in code and serializes as a final path segment.
	Variant string

	// Class is the coherence/confidence class assigned at authoring time,
	// 0 (experimental) through 3 (production-validated).
	Class int
}

// coordPattern matches L<n>.Q<n>.<LEXICON>.<ENTITY...>[C<n>].
// The L/Q/C prefixes are case-insensitive; lexicon and entity are not.
var coordPattern = regexp.MustCompile(`^[Ll]([0-9])\.[Qq]([0-9])\.([A-Za-z0-9_-]+)\.([A-Za-z0-9_.-]+)\[[Cc]([0-9])\]$`)

// Parse converts coordinate text into a Coordinate. It fails with an error
// wrapping ErrMalformed when the text does not match the grammar, or when
// layer, quadrant, or class fall outside their ranges.
func Parse(text string) (Coordinate, error) {
	m := coordPattern.FindStringSubmatch(text)
	if m == nil {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrMalformed, text)
	}

	layer, _ := strconv.Atoi(m[1])
	quadrant, _ := strconv.Atoi(m[2])
	class, _ := strconv.Atoi(m[5])

	if layer < 1 || layer > NumLayers {
		return Coordinate{}, fmt.Errorf("%w: layer %d outside 1-%d in %q", ErrMalformed, layer, NumLayers, text)
	}
	if quadrant < 1 || quadrant > 4 {
		return Coordinate{}, fmt.Errorf("%w: quadrant %d outside 1-4 in %q", ErrMalformed, quadrant, text)
	}
	if class < 0 || class > 3 {
		return Coordinate{}, fmt.Errorf("%w: class %d outside 0-3 in %q", ErrMalformed, class, text)
	}

	entity := m[4]
	for _, seg := range strings.Split(entity, ".") {
		if seg == "" {
			return Coordinate{}, fmt.Errorf("%w: empty entity segment in %q", ErrMalformed, text)
		}
	}

	return Coordinate{
		Layer:    SealLayer(layer),
		Quadrant: quadrant,
		Lexicon:  m[3],
		Entity:   entity,
		Class:    class,
	}, nil
}

// MustParse is Parse for static coordinate literals; it panics on error.
func MustParse(text string) Coordinate {
	c, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return c
}

// String serializes the coordinate back to its textual form. It is the exact
// inverse of a successful Parse.
func (c Coordinate) String() string {
	path := c.Entity
	if c.Variant != "" {
		path += "." + c.Variant
	}
	return fmt.Sprintf("L%d.Q%d.%s.%s[C%d]", c.Layer, c.Quadrant, c.Lexicon, path, c.Class)
}

// Equal reports field-wise equality.
func (c Coordinate) Equal(o Coordinate) bool {
	return c == o
}
