package ancestry

import "roottrace/domain/core"

// Baseline is the classical-signal-only scoring result, prior to pathway
// refinement. Regional holds the full normalized distribution; Top holds the
// top-5 view used for phase encoding and synthesis.
type Baseline struct {
	Regional      core.Distribution `json:"regional_probabilities_full"`
	Top           core.Distribution `json:"regional_probabilities"`
	PrimaryRegion string            `json:"primary_region"`
	Confidence    float64           `json:"confidence"`
}
