package pathway

import (
	"context"
	"math/rand"
	"time"

	"roottrace/domain/ancestry"
	"roottrace/domain/core"
	"roottrace/domain/knowledge"
	"roottrace/internal/config"
	"roottrace/ports"
)

// SamplingBackend runs the simulated-circuit strategy: build a parameterized
// circuit from the baseline, collect measurement shots, decode the counts.
type SamplingBackend struct {
	kb        *knowledge.Base
	shots     int
	layers    int
	threshold float64
	seed      int64
}

// NewSamplingBackend creates the sampling strategy with the configured shot
// count, layer depth and amplification threshold.
func NewSamplingBackend(cfg config.QuantumConfig, weights config.WeightsConfig, kb *knowledge.Base) *SamplingBackend {
	return &SamplingBackend{
		kb:        kb,
		shots:     cfg.Shots,
		layers:    cfg.Layers,
		threshold: weights.BoostThreshold,
		seed:      cfg.Seed,
	}
}

// Name identifies the strategy.
func (b *SamplingBackend) Name() string { return "sampling" }

// Explore builds and runs the circuit, then decodes the measurement counts
// into per-dimension distributions. A zero-mass outcome is a simulation
// execution error; the caller never receives a partially populated result.
func (b *SamplingBackend) Explore(ctx context.Context, input ancestry.AncestralInput, baseline *ancestry.Baseline) (*ports.PathwayOutcome, error) {
	if err := ctx.Err(); err != nil {
		return nil, core.NewSimulationError(b.Name(), err)
	}

	c := newCircuit(b.layers)
	c.encodeBaseline(baseline, b.kb)
	for layer := 0; layer < b.layers; layer++ {
		c.applyCostLayer()
		c.applyMixerLayer()
	}
	c.amplify(baseline, b.threshold, b.kb)

	seed := b.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	counts := c.run(rand.New(rand.NewSource(seed)), b.shots)

	outcome, err := DecodeMeasurements(counts, b.kb)
	if err != nil {
		return nil, core.NewSimulationError(b.Name(), err)
	}
	return outcome, nil
}
