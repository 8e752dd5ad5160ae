// Package pattern holds the immutable pattern store and its seal-layer index.
// The store is built once at startup from a fixed pattern table and is
// read-only for the lifetime of the process; every other component borrows
// read references through lookup calls.
package pattern

import (
	"errors"
	"strings"

	"sealstack/internal/coordinate"
)

// Sentinel errors for store construction and lookup.
var (
	// ErrDuplicateCoordinate indicates two input patterns share a coordinate.
	// Fatal at startup, never seen at request time.
	ErrDuplicateCoordinate = errors.New("duplicate coordinate")

	// ErrNotFound indicates no pattern exists at an exact coordinate.
	ErrNotFound = errors.New("pattern not found")
)

// Pattern is the unit stored and retrieved: a code template addressed by a
// coordinate, tagged for keyword matching.
type Pattern struct {
	// Coordinate is the owning address, unique within a store.
	Coordinate coordinate.Coordinate

	// Title is the human-readable pattern name.
	Title string

	// Body is the template text. The reserved {entity} and {Entity} tokens
	// are substituted at assembly time.
	Body string

	// Tags are lower-case keywords used for matching.
	Tags []string

	// Language names the code language the template renders (go, python, sql).
	Language string
}

// HasTag reports whether the pattern carries the given tag. Matching is
// case-insensitive; authored tags are lower-case by convention.
func (p *Pattern) HasTag(tag string) bool {
	tag = strings.ToLower(tag)
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// TagOverlap counts how many of the given tags the pattern carries.
func (p *Pattern) TagOverlap(tags []string) int {
	n := 0
	for _, t := range tags {
		if p.HasTag(t) {
			n++
		}
	}
	return n
}
