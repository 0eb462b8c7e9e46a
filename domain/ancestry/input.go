package ancestry

import (
	"strings"

	"roottrace/domain/core"
)

// MaxSurnameLength bounds the surname field of an AncestralInput.
const MaxSurnameLength = 100

// AncestralInput carries the raw genealogical signals for one resolution.
// It is constructed by the caller and never mutated by the engine.
type AncestralInput struct {
	Surname          string   `json:"surname"`
	GivenNames       []string `json:"given_names"`
	CulturalMarkers  []string `json:"cultural_markers"`  // Stories, traditions, food preferences
	GeographicHints  []string `json:"geographic_hints"`  // Known locations in family history
	HistoricalPeriod string   `json:"historical_period,omitempty"`
	LanguagePatterns []string `json:"language_patterns"` // Dialect hints, word usage
}

// Validate checks the boundary contract of the input. A violation is an
// InvalidInput condition the caller must correct before retrying.
func (in AncestralInput) Validate() error {
	if strings.TrimSpace(in.Surname) == "" {
		return core.ErrEmptySurname
	}
	if len(in.Surname) > MaxSurnameLength {
		return core.ErrSurnameTooLong
	}
	return nil
}
