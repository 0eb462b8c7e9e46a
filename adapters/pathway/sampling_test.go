package pathway

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"roottrace/domain/knowledge"
	"roottrace/internal/config"
	"roottrace/internal/testkit"
)

func samplingConfig(seed int64) config.QuantumConfig {
	return config.QuantumConfig{Mode: "sampling", Shots: 2048, Layers: 6, Seed: seed}
}

// TestSampling_DistributionsSumToOne verifies the decoded output of a full
// exploration is a set of proper probability distributions
func TestSampling_DistributionsSumToOne(t *testing.T) {
	kb := knowledge.Load()
	backend := NewSamplingBackend(samplingConfig(42), config.DefaultWeights(), kb)
	scorerBaseline := baselineOf(kb.PatternWeights[knowledge.PatternPlantationAssigned].Clone())

	outcome, err := backend.Explore(context.Background(), testkit.SurnameOnlyInput("Bradley"), scorerBaseline)
	if err != nil {
		t.Fatalf("explore failed: %v", err)
	}

	if diff := math.Abs(outcome.Regions.Total() - 1.0); diff > tolerance {
		t.Errorf("region distribution should sum to 1.0, got %f", outcome.Regions.Total())
	}
	if diff := math.Abs(outcome.EthnicGroups.Total() - 1.0); diff > tolerance {
		t.Errorf("ethnic distribution should sum to 1.0, got %f", outcome.EthnicGroups.Total())
	}
	if diff := math.Abs(outcome.TimePeriods.Total() - 1.0); diff > tolerance {
		t.Errorf("time distribution should sum to 1.0, got %f", outcome.TimePeriods.Total())
	}
	if outcome.Coherence < 0 || outcome.Coherence > 1 {
		t.Errorf("coherence must lie in [0,1], got %f", outcome.Coherence)
	}
}

// TestSampling_Deterministic verifies a fixed seed reproduces the outcome
func TestSampling_Deterministic(t *testing.T) {
	kb := knowledge.Load()
	baseline := baselineOf(kb.PatternWeights[knowledge.PatternPlantationAssigned].Clone())

	first, err := NewSamplingBackend(samplingConfig(7), config.DefaultWeights(), kb).
		Explore(context.Background(), testkit.SurnameOnlyInput("Bradley"), baseline)
	if err != nil {
		t.Fatalf("explore failed: %v", err)
	}
	second, err := NewSamplingBackend(samplingConfig(7), config.DefaultWeights(), kb).
		Explore(context.Background(), testkit.SurnameOnlyInput("Bradley"), baseline)
	if err != nil {
		t.Fatalf("explore failed: %v", err)
	}

	for region, p := range first.Regions {
		if second.Regions[region] != p {
			t.Errorf("seeded runs should match: region %s %f vs %f", region, p, second.Regions[region])
		}
	}
	if first.Coherence != second.Coherence {
		t.Errorf("seeded coherence should match: %f vs %f", first.Coherence, second.Coherence)
	}
}

// TestSampling_AmplificationFavorsBoostedRegions verifies regions above the
// boost threshold dominate the sampled mass
func TestSampling_AmplificationFavorsBoostedRegions(t *testing.T) {
	kb := knowledge.Load()
	baseline := baselineOf(kb.PatternWeights[knowledge.PatternPlantationAssigned].Clone())

	outcome, err := NewSamplingBackend(samplingConfig(99), config.DefaultWeights(), kb).
		Explore(context.Background(), testkit.SurnameOnlyInput("Bradley"), baseline)
	if err != nil {
		t.Fatalf("explore failed: %v", err)
	}

	// Ghana_Akan and Nigeria_Yoruba carry baseline 0.2 > threshold 0.15 and
	// are amplified; unlisted regions keep only the diffusion floor.
	if outcome.Regions["Ghana_Akan"] <= outcome.Regions["Gabon_Fang"] {
		t.Errorf("amplified region should outweigh floor regions: %v", outcome.Regions)
	}
}

// TestCircuit_RunCountsMatchShots verifies every shot lands in the counts map
func TestCircuit_RunCountsMatchShots(t *testing.T) {
	c := newCircuit(6)
	counts := c.run(rand.New(rand.NewSource(1)), 1000)

	total := 0
	for _, count := range counts {
		total += count
	}
	if total != 1000 {
		t.Errorf("counts should total the shot count, got %d", total)
	}
}

// TestSampling_CancelledContext verifies cancellation surfaces as a
// simulation error rather than a silent fallback
func TestSampling_CancelledContext(t *testing.T) {
	kb := knowledge.Load()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	baseline := baselineOf(kb.DefaultDistribution())
	_, err := NewSamplingBackend(samplingConfig(1), config.DefaultWeights(), kb).
		Explore(ctx, testkit.SurnameOnlyInput("Bradley"), baseline)
	if err == nil {
		t.Error("cancelled context should fail the exploration")
	}
}
