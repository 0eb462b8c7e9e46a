package ports

import (
	"context"

	"roottrace/domain/ancestry"
	"roottrace/domain/core"
)

// PathwayOutcome is the refined probability view produced by a pathway
// backend: one distribution per decoded dimension plus a coherence score.
type PathwayOutcome struct {
	Regions      core.Distribution `json:"regional_probabilities"`
	EthnicGroups core.Distribution `json:"ethnic_probabilities"`
	TimePeriods  core.Distribution `json:"time_probabilities"`
	Coherence    float64           `json:"quantum_coherence"`
}

// PathwayBackend explores the ancestral probability space starting from the
// classical baseline. Exactly one implementation is selected at construction
// and kept for the lifetime of the resolver; a backend failure surfaces as an
// execution error rather than triggering an ad hoc fallback switch.
type PathwayBackend interface {
	Name() string
	Explore(ctx context.Context, input ancestry.AncestralInput, baseline *ancestry.Baseline) (*PathwayOutcome, error)
}
