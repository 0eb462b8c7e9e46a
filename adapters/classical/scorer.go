package classical

import (
	"strings"

	"roottrace/domain/ancestry"
	"roottrace/domain/core"
	"roottrace/domain/knowledge"
	"roottrace/internal/config"
)

// Scorer turns raw genealogical signals into the baseline region
// distribution. It holds only immutable references, so a single instance is
// safe for concurrent use.
type Scorer struct {
	kb      *knowledge.Base
	weights config.WeightsConfig
}

// NewScorer creates a classical scorer over the given knowledge base.
func NewScorer(kb *knowledge.Base, weights config.WeightsConfig) *Scorer {
	return &Scorer{kb: kb, weights: weights}
}

// Score produces the classical baseline: three signal extractors combined
// with the calibrated 0.4/0.35/0.25 weights, normalized over the union of
// touched regions. A zero-signal input falls back to the six-region uniform
// default.
func (s *Scorer) Score(input ancestry.AncestralInput) (*ancestry.Baseline, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	surnameHits := s.analyzeSurname(input.Surname)
	culturalHits := s.analyzeCulturalMarkers(input.CulturalMarkers)
	geographicHits := s.analyzeGeographicHints(input.GeographicHints)

	scores := make(core.Distribution)
	for region := range union(surnameHits, culturalHits, geographicHits) {
		scores[region] = surnameHits[region]*s.weights.SurnameWeight +
			culturalHits[region]*s.weights.CulturalWeight +
			geographicHits[region]*s.weights.GeographicWeight
	}

	regional := scores.Normalize(s.kb.DefaultDistribution())

	ranked := regional.RankedBy(s.kb.Regions)
	top := make(core.Distribution, 5)
	for i, entry := range ranked {
		if i >= 5 {
			break
		}
		top[entry.Name] = entry.Probability
	}

	return &ancestry.Baseline{
		Regional:      regional,
		Top:           top,
		PrimaryRegion: ranked[0].Name,
		Confidence:    ranked[0].Probability,
	}, nil
}

// analyzeSurname matches the surname against the enumerated pattern classes
// in priority order; the first matching class contributes its region-weight
// table. No match yields the uniform default.
func (s *Scorer) analyzeSurname(surname string) core.Distribution {
	lower := strings.ToLower(surname)

	for _, class := range s.kb.PatternOrder() {
		for _, pattern := range s.kb.SurnamePatterns[class] {
			if strings.Contains(lower, strings.ToLower(pattern)) {
				return s.kb.PatternWeights[class].Clone()
			}
		}
	}
	return s.kb.DefaultDistribution()
}

// analyzeCulturalMarkers scans each marker against every region's cultural,
// linguistic and food keyword sets; each substring hit scores one point for
// that region. The sub-scores are normalized before combination.
func (s *Scorer) analyzeCulturalMarkers(markers []string) core.Distribution {
	scores := make(core.Distribution)

	for _, marker := range markers {
		lower := strings.ToLower(marker)
		for region, sets := range s.kb.RegionalMarkers {
			for _, keywords := range [][]string{sets.Cultural, sets.Linguistic, sets.Food} {
				for _, keyword := range keywords {
					if strings.Contains(lower, strings.ToLower(keyword)) {
						scores[region] += 1.0
					}
				}
			}
		}
	}

	return normalizeOrEmpty(scores)
}

// analyzeGeographicHints accumulates the trade-route weight tables of every
// known US location mentioned in the hints.
func (s *Scorer) analyzeGeographicHints(hints []string) core.Distribution {
	scores := make(core.Distribution)

	for _, hint := range hints {
		lower := strings.ToLower(hint)
		for location, weights := range s.kb.GeographicRoutes {
			if strings.Contains(lower, location) {
				for region, w := range weights {
					scores[region] += w
				}
			}
		}
	}

	return normalizeOrEmpty(scores)
}

// normalizeOrEmpty normalizes non-empty score maps and leaves zero-mass maps
// empty, so absent signals contribute nothing to the combination.
func normalizeOrEmpty(scores core.Distribution) core.Distribution {
	if scores.Total() <= 0 {
		return scores
	}
	return scores.Normalize(nil)
}

func union(dists ...core.Distribution) map[string]struct{} {
	regions := make(map[string]struct{})
	for _, d := range dists {
		for region := range d {
			regions[region] = struct{}{}
		}
	}
	return regions
}
