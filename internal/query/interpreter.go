// Package query turns incoming module requests into routing intents. The
// free-text path is deliberately a keyword heuristic, not NLP: it tokenizes,
// drops stop words, picks an entity noun, and expands known concepts into
// per-layer tag hints. The Interpreter contract isolates this so a stronger
// implementation can be substituted without touching the router or assembler.
package query

import (
	"strings"

	"sealstack/internal/coordinate"
)

// Request is one ephemeral module request in one of three shapes: an exact
// coordinate, an explicit (layer, tags) pair, or free text.
type Request struct {
	// Coordinate, when set, bypasses tag matching entirely.
	Coordinate *coordinate.Coordinate

	// Layer, when valid and Coordinate is nil, restricts the intent to one
	// layer matched against Tags.
	Layer coordinate.SealLayer
	Tags  []string

	// Text is the free-text query used when neither shape above applies.
	Text string
}

// TextRequest makes a free-text request.
func TextRequest(text string) Request {
	return Request{Text: text}
}

// CoordinateRequest makes an exact-coordinate request.
func CoordinateRequest(c coordinate.Coordinate) Request {
	return Request{Coordinate: &c}
}

// LayerRequest makes a single-layer tag request.
func LayerRequest(layer coordinate.SealLayer, tags []string) Request {
	return Request{Layer: layer, Tags: tags}
}

// Intent is the routing plan the interpreter derives from a request.
type Intent struct {
	// Coordinate, when set, makes this a single-coordinate lookup.
	Coordinate *coordinate.Coordinate

	// Entity is the concept name substituted into assembled templates.
	Entity string

	// LayerTags holds the candidate tag set for every layer the router
	// should visit. Layers missing from the map are skipped outright; a
	// present layer with an empty set falls back to the index's
	// whole-layer ordering.
	LayerTags map[coordinate.SealLayer][]string
}

// stopWords are tokens too generic to route on. Tokens shorter than three
// characters are dropped before this set is consulted.
var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "that": true,
	"this": true, "from": true, "into": true, "are": true, "was": true,
	"has": true, "have": true, "can": true, "will": true, "should": true,
	"please": true, "want": true, "need": true, "make": true, "build": true,
	"create": true, "add": true, "new": true, "using": true, "use": true,
}

// Interpreter maps requests to intents. Zero-config construction uses the
// built-in concept map; pass nil to NewInterpreter to disable concept hints
// and fall back to the longest-token heuristic only.
type Interpreter struct {
	concepts ConceptMap
}

// NewInterpreter creates an interpreter with the given concept map.
func NewInterpreter(concepts ConceptMap) *Interpreter {
	return &Interpreter{concepts: concepts}
}

// Default returns an interpreter backed by the built-in concept map.
func Default() *Interpreter {
	return NewInterpreter(DefaultConcepts())
}

// Interpret derives an Intent. It never fails: an empty or unmatched query
// yields an intent with empty tag sets for all seven layers, which the
// router resolves through the index's whole-layer fallback ordering.
func (in *Interpreter) Interpret(req Request) Intent {
	if req.Coordinate != nil {
		c := *req.Coordinate
		return Intent{
			Coordinate: &c,
			LayerTags: map[coordinate.SealLayer][]string{
				c.Layer: nil,
			},
		}
	}

	if req.Layer.Valid() {
		return Intent{
			LayerTags: map[coordinate.SealLayer][]string{
				req.Layer: normalizeTags(req.Tags),
			},
		}
	}

	return in.interpretText(req.Text)
}

func (in *Interpreter) interpretText(text string) Intent {
	tokens := Tokenize(text)
	entity, concept := in.detectEntity(tokens)

	global := tokens
	if entity != "" {
		global = appendUnique(global, entity)
	}

	intent := Intent{
		Entity:    entity,
		LayerTags: make(map[coordinate.SealLayer][]string, coordinate.NumLayers),
	}
	for _, layer := range coordinate.Layers() {
		tags := make([]string, len(global))
		copy(tags, global)
		if concept != nil {
			for _, hint := range concept[layer] {
				tags = appendUnique(tags, hint)
			}
		}
		intent.LayerTags[layer] = tags
	}
	return intent
}

// detectEntity picks the entity name: the longest token matching a known
// concept noun (plural folded), or the longest remaining token when the
// concept map has nothing to offer.
func (in *Interpreter) detectEntity(tokens []string) (string, LayerHints) {
	var entity string
	var hints LayerHints
	for _, tok := range tokens {
		noun, ok := in.concepts.Resolve(tok)
		if !ok {
			continue
		}
		if len(tok) > len(entity) {
			entity = noun
			hints = in.concepts[noun]
		}
	}
	if entity != "" {
		return entity, hints
	}

	for _, tok := range tokens {
		if len(tok) > len(entity) {
			entity = tok
		}
	}
	return entity, nil
}

// Tokenize lower-cases text, splits on non-alphanumeric boundaries, and
// drops short tokens, stop words, and duplicates.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !isAlnum(r)
	})

	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) < 3 || stopWords[f] {
			continue
		}
		out = appendUnique(out, f)
	}
	return out
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		out = appendUnique(out, t)
	}
	return out
}

func appendUnique(list []string, s string) []string {
	for _, v := range list {
		if v == s {
			return list
		}
	}
	return append(list, s)
}

func isAlnum(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_'
}
