package core

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Distribution maps a label to a non-negative probability mass. Values are
// unnormalized scores until Normalize is called.
type Distribution map[string]float64

// Ranked is a single entry of a distribution ordered by probability.
type Ranked struct {
	Name        string  `json:"name"`
	Probability float64 `json:"probability"`
}

// Total returns the summed mass of the distribution.
func (d Distribution) Total() float64 {
	values := make([]float64, 0, len(d))
	for _, v := range d {
		values = append(values, v)
	}
	return floats.Sum(values)
}

// Clone returns an independent copy of the distribution.
func (d Distribution) Clone() Distribution {
	out := make(Distribution, len(d))
	for label, v := range d {
		out[label] = v
	}
	return out
}

// Normalize scales values so they sum to 1.0. When the total mass is zero the
// provided fallback is returned instead, so callers never divide by zero.
func (d Distribution) Normalize(fallback Distribution) Distribution {
	total := d.Total()
	if total <= 0 {
		return fallback.Clone()
	}
	out := make(Distribution, len(d))
	for label, v := range d {
		out[label] = v / total
	}
	return out
}

// RankedBy orders entries by descending probability. Ties are broken by the
// position of the label in the canonical ordering; labels missing from the
// canonical ordering sort after known ones, then lexically.
func (d Distribution) RankedBy(canonical []string) []Ranked {
	position := make(map[string]int, len(canonical))
	for i, label := range canonical {
		position[label] = i
	}

	entries := make([]Ranked, 0, len(d))
	for label, p := range d {
		entries = append(entries, Ranked{Name: label, Probability: p})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Probability != entries[j].Probability {
			return entries[i].Probability > entries[j].Probability
		}
		pi, iKnown := position[entries[i].Name]
		pj, jKnown := position[entries[j].Name]
		if iKnown && jKnown {
			return pi < pj
		}
		if iKnown != jKnown {
			return iKnown
		}
		return entries[i].Name < entries[j].Name
	})

	return entries
}

// ArgMax returns the top-ranked label and its probability. The boolean is
// false for an empty distribution.
func (d Distribution) ArgMax(canonical []string) (string, float64, bool) {
	ranked := d.RankedBy(canonical)
	if len(ranked) == 0 {
		return "", 0, false
	}
	return ranked[0].Name, ranked[0].Probability, true
}

// TopN returns the n highest-ranked entries (fewer when the distribution is
// smaller than n).
func (d Distribution) TopN(n int, canonical []string) []Ranked {
	ranked := d.RankedBy(canonical)
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// EntropyBits computes the Shannon entropy, in bits, of a set of
// probabilities. Zero entries contribute nothing.
func EntropyBits(probs []float64) float64 {
	return stat.Entropy(probs) / math.Ln2
}
