package pattern

import (
	"sort"
	"sync"

	"sealstack/internal/coordinate"
)

// LayerIndex groups a store's patterns by seal layer for candidate lookup.
// It is built lazily on first use and cached; the underlying store never
// changes, so the index is built at most once (sync.Once guarded) and is
// safe for concurrent readers afterwards.
type LayerIndex struct {
	store *Store

	once    sync.Once
	byLayer map[coordinate.SealLayer][]*Pattern
}

// NewLayerIndex creates an index over the given store snapshot.
func NewLayerIndex(store *Store) *LayerIndex {
	return &LayerIndex{store: store}
}

func (ix *LayerIndex) build() {
	ix.byLayer = make(map[coordinate.SealLayer][]*Pattern)
	for _, p := range ix.store.All() {
		layer := p.Coordinate.Layer
		ix.byLayer[layer] = append(ix.byLayer[layer], p)
	}
}

// Candidates returns every pattern at the given layer whose tag set
// intersects the requested tags, ordered by descending tag overlap, then
// descending coordinate class, then ascending coordinate text. The last key
// is a strict total order, so identical calls return identical sequences.
//
// An empty tag set returns all patterns at the layer in the secondary
// ordering (class desc, coordinate text asc).
func (ix *LayerIndex) Candidates(layer coordinate.SealLayer, tags []string) []*Pattern {
	ix.once.Do(ix.build)

	pool := ix.byLayer[layer]
	if len(pool) == 0 {
		return nil
	}

	type scored struct {
		p       *Pattern
		overlap int
	}

	matches := make([]scored, 0, len(pool))
	for _, p := range pool {
		overlap := p.TagOverlap(tags)
		if len(tags) > 0 && overlap == 0 {
			continue
		}
		matches = append(matches, scored{p: p, overlap: overlap})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].overlap != matches[j].overlap {
			return matches[i].overlap > matches[j].overlap
		}
		ci, cj := matches[i].p.Coordinate, matches[j].p.Coordinate
		if ci.Class != cj.Class {
			return ci.Class > cj.Class
		}
		return ci.String() < cj.String()
	})

	out := make([]*Pattern, len(matches))
	for i, m := range matches {
		out[i] = m.p
	}
	return out
}
