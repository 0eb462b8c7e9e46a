package pathway

import (
	"math"

	"roottrace/domain/core"
	"roottrace/domain/knowledge"
	"roottrace/ports"
)

// DecodeMeasurements converts raw sampled outcome counts into the three
// per-dimension probability distributions plus the coherence score. Each
// field's bit range is extracted from the outcome, interpreted as an unsigned
// integer and mapped modulo its table size to a label.
func DecodeMeasurements(counts map[uint16]int, kb *knowledge.Base) (*ports.PathwayOutcome, error) {
	total := 0
	for _, count := range counts {
		total += count
	}
	if total == 0 {
		return nil, core.ErrEmptyDistribution
	}

	regions := make(core.Distribution)
	ethnic := make(core.Distribution)
	periods := make(core.Distribution)

	for outcome, count := range counts {
		regionIdx := int(outcome>>regionOffset) & (1<<regionBits - 1)
		ethnicIdx := int(outcome>>ethnicOffset) & (1<<ethnicBits - 1)
		timeIdx := int(outcome>>timeOffset) & (1<<timeBits - 1)

		regions[kb.RegionAt(regionIdx)] += float64(count)
		ethnic[kb.EthnicGroupAt(ethnicIdx)] += float64(count)
		periods[kb.TimePeriodAt(timeIdx)] += float64(count)
	}

	shots := float64(total)
	for label := range regions {
		regions[label] /= shots
	}
	for label := range ethnic {
		ethnic[label] /= shots
	}
	for label := range periods {
		periods[label] /= shots
	}

	return &ports.PathwayOutcome{
		Regions:      regions,
		EthnicGroups: ethnic,
		TimePeriods:  periods,
		Coherence:    outcomeCoherence(counts, total),
	}, nil
}

// outcomeCoherence measures how concentrated the sampled outcomes are:
// 1 - H/Hmax over the outcome-count distribution. A single distinct outcome
// has Hmax = 0; that degenerate case is defined as 0.5 rather than dividing
// by zero.
func outcomeCoherence(counts map[uint16]int, total int) float64 {
	if len(counts) <= 1 {
		return 0.5
	}

	probs := make([]float64, 0, len(counts))
	for _, count := range counts {
		probs = append(probs, float64(count)/float64(total))
	}

	entropy := core.EntropyBits(probs)
	maxEntropy := math.Log2(float64(len(counts)))
	if maxEntropy <= 0 {
		return 0.5
	}

	coherence := 1.0 - entropy/maxEntropy
	if coherence < 0 {
		return 0
	}
	if coherence > 1 {
		return 1
	}
	return coherence
}
