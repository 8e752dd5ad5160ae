// Package engine wires the pattern store, index, interpreter, router, and
// assembler into the three operations the service exposes: exact retrieval,
// list-style search, and full module assembly. An Engine is built once at
// startup around an immutable store and is safe for arbitrarily many
// concurrent requests; each request is an independent, synchronous
// computation with no I/O inside the core.
package engine

import (
	"fmt"

	"sealstack/internal/assemble"
	"sealstack/internal/coordinate"
	"sealstack/internal/pattern"
	"sealstack/internal/query"
	"sealstack/internal/router"
)

// Engine owns the store and its derived structures for the process
// lifetime. All lookups hand out read references into the store.
type Engine struct {
	store  *pattern.Store
	index  *pattern.LayerIndex
	interp *query.Interpreter
	router *router.Router
}

// Option configures engine construction.
type Option func(*Engine)

// WithInterpreter replaces the default query interpreter, e.g. to supply a
// custom concept map or disable concept hints entirely.
func WithInterpreter(in *query.Interpreter) Option {
	return func(e *Engine) { e.interp = in }
}

// New builds an engine over an already-loaded store.
func New(store *pattern.Store, opts ...Option) *Engine {
	e := &Engine{
		store:  store,
		index:  pattern.NewLayerIndex(store),
		interp: query.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.router = router.New(e.store, e.index)
	return e
}

// Store exposes the underlying store for statistics endpoints.
func (e *Engine) Store() *pattern.Store {
	return e.store
}

// Retrieve looks up one pattern by its exact coordinate text. It fails with
// coordinate.ErrMalformed on bad text and pattern.ErrNotFound when nothing
// is stored at the address.
func (e *Engine) Retrieve(coordText string) (*pattern.Pattern, error) {
	c, err := coordinate.Parse(coordText)
	if err != nil {
		return nil, err
	}
	p, ok := e.store.Get(c)
	if !ok {
		return nil, fmt.Errorf("%w: %s", pattern.ErrNotFound, c)
	}
	return p, nil
}

// SearchOptions narrow a search without engaging the full module pipeline.
type SearchOptions struct {
	// Layer restricts results to one seal layer when valid; zero means all.
	Layer coordinate.SealLayer

	// Lexicon restricts results to one lexicon namespace when non-empty.
	Lexicon string

	// Limit caps the result count; zero means unlimited.
	Limit int
}

// Search interprets free text into tags and returns matching patterns,
// ascending by layer and in index candidate order within each layer.
func (e *Engine) Search(text string, opts SearchOptions) []*pattern.Pattern {
	intent := e.interp.Interpret(query.TextRequest(text))

	var out []*pattern.Pattern
	for _, layer := range coordinate.Layers() {
		if opts.Layer.Valid() && layer != opts.Layer {
			continue
		}
		for _, p := range e.index.Candidates(layer, intent.LayerTags[layer]) {
			if opts.Lexicon != "" && p.Coordinate.Lexicon != opts.Lexicon {
				continue
			}
			out = append(out, p)
			if opts.Limit > 0 && len(out) == opts.Limit {
				return out
			}
		}
	}
	return out
}

// BuildModule runs the full pipeline: interpret, route all seven layers,
// score, and assemble. Partial layer coverage is data in the result, not an
// error; only a module with zero present layers fails, with
// assemble.ErrEmptyModule.
func (e *Engine) BuildModule(text string) (*assemble.Module, error) {
	intent := e.interp.Interpret(query.TextRequest(text))
	selections := e.router.Route(intent)
	return assemble.Build(selections, intent.Entity)
}

// BuildModuleAt runs the pipeline for an explicit coordinate request, used
// when a caller already knows the address of the pattern to anchor on.
func (e *Engine) BuildModuleAt(c coordinate.Coordinate, entity string) (*assemble.Module, error) {
	intent := e.interp.Interpret(query.CoordinateRequest(c))
	selections := e.router.Route(intent)
	return assemble.Build(selections, entity)
}
