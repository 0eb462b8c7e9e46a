package pathway

import (
	"context"
	"math"

	"roottrace/domain/ancestry"
	"roottrace/domain/core"
	"roottrace/domain/knowledge"
	"roottrace/internal/config"
	"roottrace/ports"
)

// FallbackCoherence is the constant coherence reported by the deterministic
// approximation, which has no sampled outcomes to measure.
const FallbackCoherence = 0.75

// fallbackSharpenCutoff splits regions into boosted and suppressed sets.
const fallbackSharpenCutoff = 0.2

// FallbackBackend is the deterministic classical approximation used when the
// sampling simulator is not selected. It sharpens the baseline distribution
// with fixed exponents and derives the ethnic and time sub-distributions
// from static tables.
type FallbackBackend struct {
	kb          *knowledge.Base
	sharpenHigh float64
	sharpenLow  float64
}

// NewFallbackBackend creates the fallback strategy with the configured
// sharpening exponents.
func NewFallbackBackend(weights config.WeightsConfig, kb *knowledge.Base) *FallbackBackend {
	return &FallbackBackend{
		kb:          kb,
		sharpenHigh: weights.SharpenHigh,
		sharpenLow:  weights.SharpenLow,
	}
}

// Name identifies the strategy.
func (b *FallbackBackend) Name() string { return "fallback" }

// Explore sharpens the baseline region distribution and derives the ethnic
// and time sub-distributions for its top region.
func (b *FallbackBackend) Explore(ctx context.Context, input ancestry.AncestralInput, baseline *ancestry.Baseline) (*ports.PathwayOutcome, error) {
	if err := ctx.Err(); err != nil {
		return nil, core.NewSimulationError(b.Name(), err)
	}

	enhanced := make(core.Distribution, len(baseline.Top))
	for region, p := range baseline.Top {
		// Fractional exponents amplify confident regions and suppress the rest.
		if p > fallbackSharpenCutoff {
			enhanced[region] = math.Pow(p, b.sharpenHigh)
		} else {
			enhanced[region] = math.Pow(p, b.sharpenLow)
		}
	}

	if enhanced.Total() <= 0 {
		return nil, core.NewSimulationError(b.Name(), core.ErrEmptyDistribution)
	}
	enhanced = enhanced.Normalize(nil)

	topRegion, _, _ := enhanced.ArgMax(b.kb.Regions)

	return &ports.PathwayOutcome{
		Regions:      enhanced,
		EthnicGroups: b.ethnicDistributionFor(topRegion),
		TimePeriods:  b.timeDistribution(),
		Coherence:    FallbackCoherence,
	}, nil
}

// ethnicDistributionFor gives the region's own ethnic group 0.7 and spreads
// 0.1 over up to three other groups from the fixed six-group pool.
func (b *FallbackBackend) ethnicDistributionFor(region string) core.Distribution {
	primary := b.kb.EthnicGroupOf(region)

	dist := core.Distribution{primary: 0.7}
	others := 0
	for _, group := range b.kb.FallbackEthnicPool() {
		if group == primary {
			continue
		}
		if others >= 3 {
			break
		}
		dist[group] = 0.1
		others++
	}
	return dist
}

// timeDistribution is the static table weighted toward the 1701-1850 window.
func (b *FallbackBackend) timeDistribution() core.Distribution {
	return core.Distribution{
		"1701-1750": 0.25,
		"1751-1800": 0.35,
		"1801-1850": 0.25,
		"1851-1900": 0.10,
		"1500-1600": 0.02,
		"1601-1700": 0.03,
	}
}
