package coordinate

import "fmt"

// SealLayer is one of the seven fixed meaning layers patterns are bucketed
// into. The layer is a classification axis only: names and descriptions feed
// documentation and response metadata, never matching logic.
type SealLayer int

const (
	SealIdentity    SealLayer = 1 // what IS this (essence)
	SealStructure   SealLayer = 2 // what is its SHAPE (form)
	SealFunction    SealLayer = 3 // what does it DO (behavior)
	SealAuthority   SealLayer = 4 // who can ACCESS it (gate)
	SealCommunity   SealLayer = 5 // how does it RELATE (network)
	SealWisdom      SealLayer = 6 // how does it EVOLVE (adaptation)
	SealFulfillment SealLayer = 7 // what is its COMPLETE form (telos)
)

// NumLayers is the number of seal layers.
const NumLayers = 7

var sealNames = map[SealLayer]string{
	SealIdentity:    "IDENTITY",
	SealStructure:   "STRUCTURE",
	SealFunction:    "FUNCTION",
	SealAuthority:   "AUTHORITY",
	SealCommunity:   "COMMUNITY",
	SealWisdom:      "WISDOM",
	SealFulfillment: "FULFILLMENT",
}

var sealDescriptions = map[SealLayer]string{
	SealIdentity:    "What is this? Core essence and naming.",
	SealStructure:   "What is its shape? Models, schemas, data forms.",
	SealFunction:    "What does it do? Behavior and operations.",
	SealAuthority:   "Who can access it? Gates, permissions, auth.",
	SealCommunity:   "How does it relate? Links, relations, integrations.",
	SealWisdom:      "How does it evolve? Migrations, versions, adaptation.",
	SealFulfillment: "What is its complete form? Tests, validation, telos.",
}

// Layers returns all seven seal layers in ascending order.
func Layers() []SealLayer {
	out := make([]SealLayer, 0, NumLayers)
	for l := SealLayer(1); l <= NumLayers; l++ {
		out = append(out, l)
	}
	return out
}

// Valid reports whether the layer is within 1-7.
func (s SealLayer) Valid() bool {
	return s >= 1 && s <= NumLayers
}

// Name returns the canonical upper-case layer name, or a numeric fallback
// for out-of-range values.
func (s SealLayer) Name() string {
	if name, ok := sealNames[s]; ok {
		return name
	}
	return fmt.Sprintf("LAYER%d", int(s))
}

// Description returns the short human-readable layer description.
func (s SealLayer) Description() string {
	return sealDescriptions[s]
}

func (s SealLayer) String() string {
	return s.Name()
}
