package coherence

import (
	"testing"

	"sealstack/internal/coordinate"
	"sealstack/internal/pattern"
	"sealstack/internal/router"
)

func sel(layer coordinate.SealLayer, coord string, class int, tags ...string) router.Selection {
	c := coordinate.MustParse(coord)
	c.Class = class
	return router.Selection{
		Layer:   layer,
		Pattern: &pattern.Pattern{Coordinate: c, Tags: tags},
	}
}

func absent(layer coordinate.SealLayer) router.Selection {
	return router.Selection{Layer: layer}
}

func TestScore_FewerThanTwoPresent(t *testing.T) {
	var none []router.Selection
	for _, l := range coordinate.Layers() {
		none = append(none, absent(l))
	}
	if got := Score(none); got != MaxScore {
		t.Errorf("Score(no layers) = %d, want %d", got, MaxScore)
	}

	one := append([]router.Selection{}, none...)
	one[0] = sel(coordinate.SealIdentity, "L1.Q1.TECH.A[C0]", 0, "x")
	if got := Score(one); got != MaxScore {
		t.Errorf("Score(one layer) = %d, want %d", got, MaxScore)
	}
}

func TestScore_SharedVocabularyKeepsMinClass(t *testing.T) {
	selections := []router.Selection{
		sel(coordinate.SealStructure, "L2.Q1.TECH.A[C3]", 3, "model", "schema"),
		sel(coordinate.SealFunction, "L3.Q1.TECH.B[C2]", 2, "model", "crud"),
	}
	if got := Score(selections); got != 2 {
		t.Errorf("Score() = %d, want 2 (min class of a shared-tag pair)", got)
	}
}

func TestScore_DisjointPairPenalizedOnePoint(t *testing.T) {
	selections := []router.Selection{
		sel(coordinate.SealStructure, "L2.Q3.TECH.PYTHON.CONFIG.DATACLASS[C3]", 3, "model", "schema"),
		sel(coordinate.SealAuthority, "L4.Q3.TECH.WEB.MIDDLEWARE.AUTH[C3]", 3, "auth", "jwt"),
	}
	if got := Score(selections); got != 2 {
		t.Errorf("Score() = %d, want 2 (min(3,3)-1 for a shared-tag-less pair)", got)
	}
}

func TestScore_WorstPairWins(t *testing.T) {
	// Two strong pairs plus one weak pair: the weak pair sets the score.
	selections := []router.Selection{
		sel(coordinate.SealIdentity, "L1.Q1.TECH.A[C3]", 3, "svc", "core"),
		sel(coordinate.SealStructure, "L2.Q1.TECH.B[C3]", 3, "svc", "model"),
		sel(coordinate.SealFunction, "L3.Q1.TECH.C[C0]", 0, "svc"),
	}
	if got := Score(selections); got != 0 {
		t.Errorf("Score() = %d, want 0 (worst pair, not average)", got)
	}
}

func TestScore_ClampedAtZero(t *testing.T) {
	selections := []router.Selection{
		sel(coordinate.SealIdentity, "L1.Q1.TECH.A[C0]", 0, "left"),
		sel(coordinate.SealStructure, "L2.Q1.TECH.B[C0]", 0, "right"),
	}
	if got := Score(selections); got != 0 {
		t.Errorf("Score() = %d, want 0 (clamped)", got)
	}
}

func TestScore_Bounds(t *testing.T) {
	cases := [][]router.Selection{
		nil,
		{sel(coordinate.SealIdentity, "L1.Q1.TECH.A[C1]", 1, "a")},
		{
			sel(coordinate.SealIdentity, "L1.Q1.TECH.A[C1]", 1, "a"),
			sel(coordinate.SealWisdom, "L6.Q1.TECH.B[C3]", 3, "b"),
		},
	}
	for i, selections := range cases {
		got := Score(selections)
		if got < 0 || got > MaxScore {
			t.Errorf("case %d: Score() = %d outside [0,%d]", i, got, MaxScore)
		}
	}
}

func TestCompleteness(t *testing.T) {
	var selections []router.Selection
	for _, l := range coordinate.Layers() {
		selections = append(selections, absent(l))
	}
	if got := Completeness(selections); got != 0 {
		t.Errorf("Completeness(none) = %v, want 0", got)
	}

	selections[1] = sel(coordinate.SealStructure, "L2.Q1.TECH.A[C3]", 3, "a")
	selections[3] = sel(coordinate.SealAuthority, "L4.Q1.TECH.B[C3]", 3, "b")
	if got, want := Completeness(selections), 2.0/7.0; got != want {
		t.Errorf("Completeness(two) = %v, want %v", got, want)
	}

	for i, l := range coordinate.Layers() {
		selections[i] = sel(l, "L1.Q1.TECH.X[C3]", 3, "x")
	}
	if got := Completeness(selections); got != 1 {
		t.Errorf("Completeness(all) = %v, want 1", got)
	}
}
