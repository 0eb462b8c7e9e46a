package pathway

import (
	"math"
	"math/rand"

	"roottrace/domain/ancestry"
	"roottrace/domain/knowledge"
)

// circuit is the parameterized sampling model for one exploration. It tracks
// accumulated phase per register position plus per-region amplitude weights;
// run() draws measurement outcomes from the resulting biases.
type circuit struct {
	layers int
	phases [numPositions]float64
	// regionWeights indexes the 16 possible region-field values. Phase
	// encoding and amplitude amplification reshape these weights.
	regionWeights [1 << regionBits]float64
}

// newCircuit initializes the uniform superposition: every position unbiased,
// every region-field value equally weighted.
func newCircuit(layers int) *circuit {
	c := &circuit{layers: layers}
	for i := range c.regionWeights {
		c.regionWeights[i] = 1.0
	}
	return c
}

// encodeBaseline phase-encodes the top-5 classical probabilities onto the
// region field: each probability becomes an angle theta = p * pi applied to
// one region-field position and a proportional weight on the region's index.
func (c *circuit) encodeBaseline(baseline *ancestry.Baseline, kb *knowledge.Base) {
	ranked := baseline.Top.RankedBy(kb.Regions)
	for i, entry := range ranked {
		if i >= 5 {
			break
		}
		theta := entry.Probability * math.Pi
		pos := regionOffset + i
		if pos < numPositions {
			c.phases[pos] += theta
		}
		if idx := kb.RegionIndex(entry.Name); idx >= 0 {
			// sin^2(theta/2) is the excitation probability a rotation of
			// theta contributes to a position starting in superposition.
			c.regionWeights[idx] += float64(1<<regionBits) * math.Pow(math.Sin(theta/2), 2)
		}
	}
}

// applyCostLayer couples every surname-field position to every region-field
// position and advances region phases by gamma; ethnic positions receive a
// reduced 0.8*gamma rotation.
func (c *circuit) applyCostLayer() {
	gamma := math.Pi / (2 * float64(c.layers))

	// Each of the five surname positions couples to every region position,
	// so each region position advances by surnameBits * gamma per layer.
	for j := regionOffset; j < regionOffset+regionBits; j++ {
		c.phases[j] += gamma * surnameBits
	}
	for i := ethnicOffset; i < ethnicOffset+ethnicBits; i++ {
		c.phases[i] += gamma * 0.8
	}
}

// applyMixerLayer rotates every position by beta, enabling exploration away
// from the phase-encoded states.
func (c *circuit) applyMixerLayer() {
	beta := math.Pi / (4 * float64(c.layers))
	for i := range c.phases {
		c.phases[i] += beta
	}
}

// amplify boosts the amplitude of any top-5 region whose baseline
// probability exceeds the threshold, then applies a diffusion-style
// inversion about the mean weight.
func (c *circuit) amplify(baseline *ancestry.Baseline, threshold float64, kb *knowledge.Base) {
	ranked := baseline.Top.RankedBy(kb.Regions)
	for i, entry := range ranked {
		if i >= 5 {
			break
		}
		if entry.Probability <= threshold {
			continue
		}
		if idx := kb.RegionIndex(entry.Name); idx >= 0 {
			c.regionWeights[idx] *= 2.0
		}
	}

	// Diffusion: reflect weights about twice the mean, floored so every
	// outcome keeps nonzero support.
	mean := 0.0
	for _, w := range c.regionWeights {
		mean += w
	}
	mean /= float64(len(c.regionWeights))
	for i, w := range c.regionWeights {
		reflected := 2*mean - w
		if w > mean {
			// amplified states keep their lead after reflection
			reflected = w + (w - mean)
		}
		if reflected < 0.05 {
			reflected = 0.05
		}
		c.regionWeights[i] = reflected
	}
}

// run measures all 16 positions shots times and returns outcome counts. The
// region field is drawn from the accumulated amplitude weights; the remaining
// fields are drawn per position from the phase-derived bias.
func (c *circuit) run(rng *rand.Rand, shots int) map[uint16]int {
	cumulative := make([]float64, len(c.regionWeights))
	total := 0.0
	for i, w := range c.regionWeights {
		total += w
		cumulative[i] = total
	}

	counts := make(map[uint16]int)
	for shot := 0; shot < shots; shot++ {
		var outcome uint16

		// Region field: categorical draw over amplitude weights.
		r := rng.Float64() * total
		regionValue := len(cumulative) - 1
		for i, bound := range cumulative {
			if r < bound {
				regionValue = i
				break
			}
		}
		outcome |= uint16(regionValue) << regionOffset

		// Remaining fields: independent per-position draws.
		for pos := 0; pos < numPositions; pos++ {
			if pos >= regionOffset && pos < regionOffset+regionBits {
				continue
			}
			if rng.Float64() < c.biasAt(pos) {
				outcome |= 1 << pos
			}
		}

		counts[outcome]++
	}
	return counts
}

// biasAt converts a position's accumulated phase into a measurement bias.
// Zero phase is an unbiased coin; rotations move the bias sinusoidally.
func (c *circuit) biasAt(pos int) float64 {
	return 0.5 + 0.35*math.Sin(c.phases[pos])
}
