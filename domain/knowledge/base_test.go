package knowledge

import (
	"math"
	"testing"
)

// TestLoad_TableSizes verifies the canonical tables match the register
// layout they are decoded against
func TestLoad_TableSizes(t *testing.T) {
	kb := Load()

	if len(kb.Regions) != 16 {
		t.Errorf("expected 16 regions, got %d", len(kb.Regions))
	}
	if len(kb.EthnicGroups) != 16 {
		t.Errorf("expected 16 ethnic groups, got %d", len(kb.EthnicGroups))
	}
	if len(kb.TimePeriods) != 8 {
		t.Errorf("expected 8 time periods, got %d", len(kb.TimePeriods))
	}
	if len(kb.DefaultRegions()) != 6 {
		t.Errorf("expected 6 default regions, got %d", len(kb.DefaultRegions()))
	}
}

// TestModuloAccessors verifies decoded indices wrap around table sizes
func TestModuloAccessors(t *testing.T) {
	kb := Load()

	if kb.RegionAt(0) != "Ghana_Akan" {
		t.Errorf("region 0 should be Ghana_Akan, got %s", kb.RegionAt(0))
	}
	if kb.RegionAt(16) != kb.RegionAt(0) {
		t.Error("region index should wrap modulo 16")
	}
	if kb.TimePeriodAt(9) != kb.TimePeriodAt(1) {
		t.Error("time index should wrap modulo 8")
	}
}

// TestDefaultDistribution_Uniform verifies the zero-signal fallback
func TestDefaultDistribution_Uniform(t *testing.T) {
	kb := Load()
	dist := kb.DefaultDistribution()

	for region, p := range dist {
		if math.Abs(p-1.0/6.0) > 1e-9 {
			t.Errorf("region %s: expected 1/6, got %f", region, p)
		}
	}
}

// TestEnrichmentDefaults verifies unmapped regions fall back to the
// documented defaults
func TestEnrichmentDefaults(t *testing.T) {
	kb := Load()

	if got := kb.CoastalDepartureFor("Gabon_Fang"); got != DefaultCoastalDeparture {
		t.Errorf("unmapped coastal departure should be %q, got %q", DefaultCoastalDeparture, got)
	}
	markers := kb.MedicalMarkersFor("Gabon_Fang")
	if len(markers) != 1 || markers[0] != DefaultMedicalAdvisory {
		t.Errorf("unmapped medical markers should be the advisory, got %v", markers)
	}
	if got := kb.DescendantBaseFor("Gabon_Fang"); got != DefaultDescendantBase {
		t.Errorf("unmapped descendant base should be %d, got %d", DefaultDescendantBase, got)
	}
}

// TestRegionLabelParsing verifies country/ethnic extraction
func TestRegionLabelParsing(t *testing.T) {
	kb := Load()

	if got := kb.EthnicGroupOf("Sierra_Leone_Mende"); got != "Leone" {
		t.Errorf("compound label takes the second token, expected Leone, got %s", got)
	}
	if got := kb.EthnicGroupOf("Ghana_Akan"); got != "Akan" {
		t.Errorf("expected Akan, got %s", got)
	}
	if got := kb.CountryOf("Ghana_Akan"); got != "Ghana" {
		t.Errorf("expected Ghana, got %s", got)
	}
	if got := kb.CountryOf("Akan"); got != "Akan" {
		t.Errorf("label without underscore should pass through, got %s", got)
	}
}

// TestPatternWeights_PlantationTable verifies the calibrated table used by
// the Bradley regression case
func TestPatternWeights_PlantationTable(t *testing.T) {
	kb := Load()
	weights := kb.PatternWeights[PatternPlantationAssigned]

	expected := map[string]float64{
		"Ghana_Akan": 0.2, "Nigeria_Yoruba": 0.2, "Nigeria_Igbo": 0.15,
		"Senegal_Wolof": 0.15, "Congo_Kongo": 0.15, "Sierra_Leone_Mende": 0.15,
	}
	for region, want := range expected {
		if math.Abs(weights[region]-want) > 1e-9 {
			t.Errorf("plantation weight %s: expected %f, got %f", region, want, weights[region])
		}
	}
}
