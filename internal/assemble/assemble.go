// Package assemble merges routed pattern selections into one composed
// module: rendered template bodies in ascending layer order plus the
// coherence and completeness report.
package assemble

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"sealstack/internal/coherence"
	"sealstack/internal/router"
)

// ErrEmptyModule indicates the assembler had zero present layers to render.
// Callers surface it as "no applicable patterns" rather than returning a
// silently blank module.
var ErrEmptyModule = errors.New("empty module: no layer produced a pattern")

// Reserved placeholder tokens in pattern bodies. The lower-case form takes
// the entity name as a variable-style name, the title-case form as a
// type-style name.
const (
	placeholderLower = "{entity}"
	placeholderTitle = "{Entity}"
)

// Module is the composed, per-request result. It is never persisted.
type Module struct {
	// Entity is the concept name substituted into the templates.
	Entity string

	// Selections is the full per-layer report, ascending, length seven;
	// absent layers are recorded here even though they render nothing.
	Selections []router.Selection

	// Coherence is the worst-pair score, 0-3.
	Coherence int

	// Completeness is the fraction of layers with a present selection.
	Completeness float64

	// Output is the assembled text.
	Output string
}

// Build renders the present selections into one output. Missing layers are
// skipped silently in the text and reported in Selections; Build fails only
// when no layer at all is present.
func Build(selections []router.Selection, entity string) (*Module, error) {
	var sections []string
	for _, s := range selections {
		if !s.Present() {
			continue
		}
		header := fmt.Sprintf("# ===== SEAL %d: %s =====", s.Layer, s.Layer.Name())
		body := substitute(s.Pattern.Body, entity)
		sections = append(sections, header+"\n"+body)
	}

	if len(sections) == 0 {
		return nil, ErrEmptyModule
	}

	return &Module{
		Entity:       entity,
		Selections:   selections,
		Coherence:    coherence.Score(selections),
		Completeness: coherence.Completeness(selections),
		Output:       strings.Join(sections, "\n\n"),
	}, nil
}

// substitute replaces the reserved placeholders with the entity name,
// matching each placeholder's own casing convention.
func substitute(body, entity string) string {
	if entity == "" {
		return body
	}
	body = strings.ReplaceAll(body, placeholderLower, strings.ToLower(entity))
	body = strings.ReplaceAll(body, placeholderTitle, titleCase(entity))
	return body
}

// titleCase upper-cases the first rune and lower-cases the rest.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
