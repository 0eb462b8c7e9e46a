package app

import (
	"context"
	"fmt"
	"strings"

	"roottrace/adapters/classical"
	"roottrace/domain/ancestry"
	"roottrace/domain/core"
	"roottrace/domain/knowledge"
	"roottrace/internal"
	"roottrace/internal/config"
	"roottrace/internal/errors"
	"roottrace/ports"
)

// resourceBaseURL parameterizes the cultural reconnection links.
const resourceBaseURL = "https://resources.roottrace.example.com"

// shortSurnameMultiplier adjusts descendant estimates: shorter surnames tend
// to be more common, so their networks run larger.
const shortSurnameMultiplier = 1.5
const shortSurnameCutoff = 6

// ResolverService coordinates the full resolution pipeline: classical
// scoring, pathway exploration and result synthesis. It holds only immutable
// collaborators, so one instance serves any number of concurrent resolutions.
type ResolverService struct {
	kb      *knowledge.Base
	scorer  *classical.Scorer
	backend ports.PathwayBackend
	weights config.WeightsConfig
	logger  *internal.Logger
}

// NewResolverService wires the pipeline with a backend chosen once by the
// caller. Tests substitute fixture backends through the same seam.
func NewResolverService(kb *knowledge.Base, scorer *classical.Scorer, backend ports.PathwayBackend, weights config.WeightsConfig, logger *internal.Logger) *ResolverService {
	return &ResolverService{
		kb:      kb,
		scorer:  scorer,
		backend: backend,
		weights: weights,
		logger:  logger,
	}
}

// Backend exposes the selected strategy name for status reporting.
func (s *ResolverService) Backend() string {
	return s.backend.Name()
}

// Resolve runs one complete resolution. It is pure with respect to shared
// state: inputs are immutable, the knowledge base is read-only, and all
// intermediate distributions are owned by this call.
func (s *ResolverService) Resolve(ctx context.Context, input ancestry.AncestralInput) (*ancestry.AncestralResult, error) {
	if err := input.Validate(); err != nil {
		return nil, errors.WithCode(errors.CodeInvalidInput, err)
	}

	baseline, err := s.scorer.Score(input)
	if err != nil {
		return nil, errors.WithCode(errors.CodeInvalidInput, err)
	}
	s.logger.Debug("classical baseline for %q: primary=%s confidence=%.3f",
		input.Surname, baseline.PrimaryRegion, baseline.Confidence)

	outcome, err := s.backend.Explore(ctx, input, baseline)
	if err != nil {
		return nil, errors.SimulationError(s.backend.Name(), err)
	}

	result := s.synthesize(input, baseline, outcome)
	s.logger.Info("resolved %q: region=%s confidence=%.3f coherence=%.3f",
		input.Surname, result.PrimaryRegion, result.ConfidenceScore, result.QuantumCoherenceScore)
	return result, nil
}

// synthesize combines the classical and pathway outputs into the final
// result and enriches it from the knowledge base.
func (s *ResolverService) synthesize(input ancestry.AncestralInput, baseline *ancestry.Baseline, outcome *ports.PathwayOutcome) *ancestry.AncestralResult {
	combined := make(core.Distribution)
	for region := range baseline.Top {
		combined[region] = baseline.Top[region] * s.weights.ClassicalMix
	}
	for region, p := range outcome.Regions {
		combined[region] += p * s.weights.PathwayMix
	}
	combined = combined.Normalize(s.kb.DefaultDistribution())

	ranked := combined.RankedBy(s.kb.Regions)
	primary := ranked[0]

	secondary := make([]core.Ranked, 0, 3)
	if len(ranked) > 1 {
		end := 4
		if end > len(ranked) {
			end = len(ranked)
		}
		secondary = append(secondary, ranked[1:end]...)
	}

	ethnicGroups := outcome.EthnicGroups.TopN(5, s.kb.EthnicGroups)
	timePeriod, _, _ := outcome.TimePeriods.ArgMax(s.kb.TimePeriods)

	return &ancestry.AncestralResult{
		PrimaryRegion:                 primary.Name,
		ConfidenceScore:               primary.Probability,
		EthnicGroups:                  ethnicGroups,
		CoastalDepartureRegion:        s.kb.CoastalDepartureFor(primary.Name),
		EstimatedTimePeriod:           timePeriod,
		SecondaryRegions:              secondary,
		QuantumCoherenceScore:         outcome.Coherence,
		MedicalHeritageMarkers:        s.kb.MedicalMarkersFor(primary.Name),
		LivingDescendantsEstimate:     s.estimateDescendants(primary.Name, input.Surname),
		CulturalReconnectionResources: s.buildResources(primary.Name, ethnicGroups),
	}
}

// estimateDescendants scales the per-region base by the surname-commonality
// heuristic.
func (s *ResolverService) estimateDescendants(region, surname string) int {
	base := s.kb.DescendantBaseFor(region)
	if len(surname) < shortSurnameCutoff {
		return int(float64(base) * shortSurnameMultiplier)
	}
	return base
}

// buildResources assembles the four fixed-shape reconnection entries for the
// top ethnic group and the region's country.
func (s *ResolverService) buildResources(region string, ethnicGroups []core.Ranked) []ancestry.Resource {
	primaryEthnic := "Unknown"
	if len(ethnicGroups) > 0 {
		primaryEthnic = ethnicGroups[0].Name
	}
	country := s.kb.CountryOf(region)

	return []ancestry.Resource{
		{
			Type:        "language",
			Title:       fmt.Sprintf("Learn %s Language", primaryEthnic),
			Description: fmt.Sprintf("Online courses and mobile apps for %s language", primaryEthnic),
			Link:        fmt.Sprintf("%s/language/%s", resourceBaseURL, strings.ToLower(primaryEthnic)),
		},
		{
			Type:        "organization",
			Title:       fmt.Sprintf("%s Cultural Association", primaryEthnic),
			Description: "Connect with cultural practitioners and community",
			Link:        fmt.Sprintf("%s/orgs/%s", resourceBaseURL, strings.ToLower(primaryEthnic)),
		},
		{
			Type:        "dna_testing",
			Title:       "Traditional DNA Testing",
			Description: "Confirm predictions with lab testing",
			Link:        fmt.Sprintf("%s/dna-partners", resourceBaseURL),
		},
		{
			Type:        "heritage_travel",
			Title:       fmt.Sprintf("Heritage Tours to %s", country),
			Description: "Guided tours to ancestral regions and cultural sites",
			Link:        fmt.Sprintf("%s/travel/%s", resourceBaseURL, strings.ToLower(country)),
		},
	}
}
