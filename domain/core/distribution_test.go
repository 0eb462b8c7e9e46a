package core

import (
	"math"
	"testing"
)

const tolerance = 1e-9

// TestNormalize_SumsToOne verifies the fundamental distribution invariant
func TestNormalize_SumsToOne(t *testing.T) {
	d := Distribution{"a": 3, "b": 1, "c": 6}
	normalized := d.Normalize(nil)

	if diff := math.Abs(normalized.Total() - 1.0); diff > tolerance {
		t.Errorf("normalized total should be 1.0, got %f", normalized.Total())
	}
	if math.Abs(normalized["c"]-0.6) > tolerance {
		t.Errorf("expected c=0.6, got %f", normalized["c"])
	}
}

// TestNormalize_ZeroTotalUsesFallback verifies the normalization guard
func TestNormalize_ZeroTotalUsesFallback(t *testing.T) {
	fallback := Distribution{"x": 0.5, "y": 0.5}
	d := Distribution{"a": 0, "b": 0}

	normalized := d.Normalize(fallback)
	if len(normalized) != 2 || normalized["x"] != 0.5 {
		t.Errorf("expected fallback distribution, got %v", normalized)
	}

	// The fallback must be copied, not shared
	normalized["x"] = 0.9
	if fallback["x"] != 0.5 {
		t.Error("normalization mutated the fallback distribution")
	}
}

// TestRankedBy_CanonicalTieBreak verifies equal probabilities rank by
// canonical table position
func TestRankedBy_CanonicalTieBreak(t *testing.T) {
	canonical := []string{"first", "second", "third"}
	d := Distribution{"third": 0.3, "first": 0.3, "second": 0.4}

	ranked := d.RankedBy(canonical)
	want := []string{"second", "first", "third"}
	for i, entry := range ranked {
		if entry.Name != want[i] {
			t.Errorf("rank %d: expected %s, got %s", i, want[i], entry.Name)
		}
	}
}

// TestArgMax_EmptyDistribution verifies the empty case is signaled
func TestArgMax_EmptyDistribution(t *testing.T) {
	_, _, ok := Distribution{}.ArgMax(nil)
	if ok {
		t.Error("expected ok=false for empty distribution")
	}
}

// TestTopN_TruncatesAndPreservesOrder verifies top-N selection
func TestTopN_TruncatesAndPreservesOrder(t *testing.T) {
	d := Distribution{"a": 0.1, "b": 0.4, "c": 0.3, "d": 0.2}
	top := d.TopN(2, nil)

	if len(top) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(top))
	}
	if top[0].Name != "b" || top[1].Name != "c" {
		t.Errorf("expected [b c], got [%s %s]", top[0].Name, top[1].Name)
	}
}

// TestEntropyBits verifies base-2 entropy values
func TestEntropyBits(t *testing.T) {
	uniform := []float64{0.25, 0.25, 0.25, 0.25}
	if got := EntropyBits(uniform); math.Abs(got-2.0) > 1e-9 {
		t.Errorf("uniform 4-way entropy should be 2 bits, got %f", got)
	}

	certain := []float64{1.0}
	if got := EntropyBits(certain); math.Abs(got) > 1e-9 {
		t.Errorf("certain outcome entropy should be 0 bits, got %f", got)
	}
}
