// Package coherence scores how well the patterns selected across seal
// layers fit together. The policy is worst-case, not average: the module
// score is the minimum pairwise compatibility over all present selections,
// so one badly mismatched pair drags the whole module down.
package coherence

import (
	"sealstack/internal/coordinate"
	"sealstack/internal/pattern"
	"sealstack/internal/router"
)

// MaxScore is the top of the coherence scale.
const MaxScore = 3

// Score returns the module coherence, 0-3. With fewer than two present
// layers there is nothing to contradict and the score is exactly MaxScore.
func Score(selections []router.Selection) int {
	present := presentPatterns(selections)
	if len(present) < 2 {
		return MaxScore
	}

	score := MaxScore
	for i := 0; i < len(present); i++ {
		for j := i + 1; j < len(present); j++ {
			if pair := pairwise(present[i], present[j]); pair < score {
				score = pair
			}
		}
	}
	if score < 0 {
		score = 0
	}
	return score
}

// pairwise rates the compatibility of two selected patterns. Shared
// vocabulary keeps the lower of the two authored classes; disjoint tag sets
// are penalized one point as weaker evidence the layers fit together.
func pairwise(a, b *pattern.Pattern) int {
	compat := a.Coordinate.Class
	if b.Coordinate.Class < compat {
		compat = b.Coordinate.Class
	}

	if a.TagOverlap(b.Tags) == 0 {
		compat--
		if compat < 0 {
			compat = 0
		}
	}
	return compat
}

// Completeness returns the fraction of the seven layers with a present
// selection, 0-1.
func Completeness(selections []router.Selection) float64 {
	present := 0
	for _, s := range selections {
		if s.Present() {
			present++
		}
	}
	return float64(present) / float64(coordinate.NumLayers)
}

func presentPatterns(selections []router.Selection) []*pattern.Pattern {
	out := make([]*pattern.Pattern, 0, len(selections))
	for _, s := range selections {
		if s.Present() {
			out = append(out, s.Pattern)
		}
	}
	return out
}
