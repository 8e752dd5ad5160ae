package query

import (
	"strings"

	"sealstack/internal/coordinate"
)

// LayerHints is the per-layer tag vocabulary associated with one concept
// noun: the words that name the concept's shape at each seal layer.
type LayerHints map[coordinate.SealLayer][]string

// ConceptMap is the entity-noun list consumed by the interpreter. Keys are
// singular lower-case nouns; values expand the noun into per-layer tag
// hints. A nil map degrades the interpreter to the longest-token heuristic.
type ConceptMap map[string]LayerHints

// Resolve matches a token against the known nouns, folding a trailing
// plural "s". It returns the canonical singular noun.
func (m ConceptMap) Resolve(token string) (string, bool) {
	if m == nil {
		return "", false
	}
	token = strings.ToLower(token)
	if _, ok := m[token]; ok {
		return token, true
	}
	if singular, found := strings.CutSuffix(token, "s"); found {
		if _, ok := m[singular]; ok {
			return singular, true
		}
	}
	return "", false
}

// DefaultConcepts returns the built-in concept vocabulary. The entries mirror
// the layer semantics: identity words at layer 1, shapes at layer 2, behavior
// at layer 3, gates at layer 4, relations at layer 5, evolution at layer 6,
// and completion at layer 7.
func DefaultConcepts() ConceptMap {
	return ConceptMap{
		"user": {
			coordinate.SealIdentity:    {"entity", "identity", "person"},
			coordinate.SealStructure:   {"model", "schema", "dataclass"},
			coordinate.SealFunction:    {"crud", "rest", "api"},
			coordinate.SealAuthority:   {"auth", "jwt", "permission"},
			coordinate.SealCommunity:   {"relationship", "foreign_key"},
			coordinate.SealWisdom:      {"migration", "version"},
			coordinate.SealFulfillment: {"test", "validation"},
		},
		"api": {
			coordinate.SealIdentity:    {"service", "endpoint"},
			coordinate.SealStructure:   {"router", "blueprint"},
			coordinate.SealFunction:    {"http", "rest", "handler"},
			coordinate.SealAuthority:   {"auth", "middleware"},
			coordinate.SealCommunity:   {"client", "integration"},
			coordinate.SealWisdom:      {"version", "deprecation"},
			coordinate.SealFulfillment: {"deploy", "monitor"},
		},
		"database": {
			coordinate.SealIdentity:    {"data", "persistence"},
			coordinate.SealStructure:   {"schema", "table", "model"},
			coordinate.SealFunction:    {"query", "transaction"},
			coordinate.SealAuthority:   {"access", "role"},
			coordinate.SealCommunity:   {"relation", "join"},
			coordinate.SealWisdom:      {"migration", "index"},
			coordinate.SealFulfillment: {"backup", "optimization"},
		},
		"order": {
			coordinate.SealIdentity:    {"entity", "transaction"},
			coordinate.SealStructure:   {"model", "schema", "lineitem"},
			coordinate.SealFunction:    {"crud", "checkout", "payment"},
			coordinate.SealAuthority:   {"auth", "ownership"},
			coordinate.SealCommunity:   {"relationship", "foreign_key"},
			coordinate.SealWisdom:      {"migration", "state"},
			coordinate.SealFulfillment: {"test", "reconciliation"},
		},
		"session": {
			coordinate.SealIdentity:    {"identity", "token"},
			coordinate.SealStructure:   {"model", "store"},
			coordinate.SealFunction:    {"login", "logout", "refresh"},
			coordinate.SealAuthority:   {"auth", "jwt", "cookie"},
			coordinate.SealCommunity:   {"client", "device"},
			coordinate.SealWisdom:      {"expiry", "rotation"},
			coordinate.SealFulfillment: {"test", "revocation"},
		},
	}
}
