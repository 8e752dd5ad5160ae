package pattern

import (
	"fmt"
	"sort"

	"sealstack/internal/coordinate"
)

// Store is the immutable coordinate-to-pattern mapping. Load is the only
// construction path; after it returns the store is never mutated, so any
// number of requests may read it concurrently without locking.
type Store struct {
	byCoord map[string]*Pattern
}

// Load builds a store from a pattern table. It fails with an error wrapping
// ErrDuplicateCoordinate if two inputs share a coordinate.
func Load(patterns []Pattern) (*Store, error) {
	s := &Store{byCoord: make(map[string]*Pattern, len(patterns))}
	for i := range patterns {
		p := patterns[i]
		key := p.Coordinate.String()
		if _, exists := s.byCoord[key]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCoordinate, key)
		}
		s.byCoord[key] = &p
	}
	return s, nil
}

// Get returns the pattern at an exact coordinate, or false. No fuzzy
// matching; O(1) expected.
func (s *Store) Get(c coordinate.Coordinate) (*Pattern, bool) {
	p, ok := s.byCoord[c.String()]
	return p, ok
}

// All returns every stored pattern ordered by coordinate text. The store is
// conceptually a set keyed by coordinate; the ordering exists only so two
// calls return identical sequences.
func (s *Store) All() []*Pattern {
	out := make([]*Pattern, 0, len(s.byCoord))
	for _, p := range s.byCoord {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Coordinate.String() < out[j].Coordinate.String()
	})
	return out
}

// Len returns the number of stored patterns.
func (s *Store) Len() int {
	return len(s.byCoord)
}

// CountByLayer returns pattern counts keyed by seal layer.
func (s *Store) CountByLayer() map[coordinate.SealLayer]int {
	counts := make(map[coordinate.SealLayer]int)
	for _, p := range s.byCoord {
		counts[p.Coordinate.Layer]++
	}
	return counts
}

// CountByLexicon returns pattern counts keyed by lexicon namespace.
func (s *Store) CountByLexicon() map[string]int {
	counts := make(map[string]int)
	for _, p := range s.byCoord {
		counts[p.Coordinate.Lexicon]++
	}
	return counts
}
