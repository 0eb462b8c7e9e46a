package testkit

import (
	"context"

	"roottrace/domain/ancestry"
	"roottrace/domain/core"
	"roottrace/ports"
)

// BradleyInput is the canonical Lowcountry test case: a plantation-assigned
// surname with Gullah-corridor cultural and geographic signals.
func BradleyInput() ancestry.AncestralInput {
	return ancestry.AncestralInput{
		Surname:    "Bradley",
		GivenNames: []string{"Michael", "James"},
		CulturalMarkers: []string{
			"Family made fufu on special occasions",
			"Grandmother spoke about 'day names'",
			"Traditional fabric patterns in old photos",
			"Stories about rice farming",
		},
		GeographicHints: []string{
			"Family from South Carolina Lowcountry",
			"Georgetown County historical records",
		},
		LanguagePatterns: []string{
			"Use of 'yam' for sweet potato",
			"Distinctive vowel sounds in speech",
		},
	}
}

// SurnameOnlyInput carries a single surname and no other signals.
func SurnameOnlyInput(surname string) ancestry.AncestralInput {
	return ancestry.AncestralInput{Surname: surname}
}

// FixedBackend is a pathway backend that returns a canned outcome, for
// exercising synthesis without a real simulation.
type FixedBackend struct {
	Outcome *ports.PathwayOutcome
	Err     error
}

// Name identifies the fixture strategy.
func (b *FixedBackend) Name() string { return "fixed" }

// Explore returns the canned outcome or error.
func (b *FixedBackend) Explore(ctx context.Context, input ancestry.AncestralInput, baseline *ancestry.Baseline) (*ports.PathwayOutcome, error) {
	if b.Err != nil {
		return nil, b.Err
	}
	return b.Outcome, nil
}

// ConcentratedOutcome builds a canned pathway outcome peaked on one region.
func ConcentratedOutcome(region, ethnic, period string) *ports.PathwayOutcome {
	return &ports.PathwayOutcome{
		Regions:      core.Distribution{region: 0.8, "Congo_Kongo": 0.2},
		EthnicGroups: core.Distribution{ethnic: 0.7, "Kongo": 0.3},
		TimePeriods:  core.Distribution{period: 0.6, "1801-1850": 0.4},
		Coherence:    0.9,
	}
}
