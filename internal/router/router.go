// Package router walks an intent through the seven seal layers and picks
// the best candidate pattern at each.
package router

import (
	"sealstack/internal/coordinate"
	"sealstack/internal/pattern"
	"sealstack/internal/query"
)

// Selection is one layer's routing outcome. A nil Pattern is a gap: the
// layer contributes nothing and lowers completeness, but never fails the
// request.
type Selection struct {
	Layer   coordinate.SealLayer
	Pattern *pattern.Pattern
}

// Present reports whether the layer produced a selection.
func (s Selection) Present() bool {
	return s.Pattern != nil
}

// Router resolves intents against an immutable store and its layer index.
type Router struct {
	store *pattern.Store
	index *pattern.LayerIndex
}

// New creates a router over the given store and index.
func New(store *pattern.Store, index *pattern.LayerIndex) *Router {
	return &Router{store: store, index: index}
}

// Route returns one Selection per seal layer in ascending order, always
// length seven. Identical intents yield identical selections: the index
// ordering is a strict total order, so there is no hidden tie-breaking.
func (r *Router) Route(intent query.Intent) []Selection {
	selections := make([]Selection, 0, coordinate.NumLayers)
	for _, layer := range coordinate.Layers() {
		selections = append(selections, r.routeLayer(intent, layer))
	}
	return selections
}

func (r *Router) routeLayer(intent query.Intent, layer coordinate.SealLayer) Selection {
	sel := Selection{Layer: layer}

	if intent.Coordinate != nil {
		if intent.Coordinate.Layer == layer {
			if p, ok := r.store.Get(*intent.Coordinate); ok {
				sel.Pattern = p
			}
		}
		return sel
	}

	tags, visit := intent.LayerTags[layer]
	if !visit {
		return sel
	}

	if candidates := r.index.Candidates(layer, tags); len(candidates) > 0 {
		sel.Pattern = candidates[0]
	}
	return sel
}
