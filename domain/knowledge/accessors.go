package knowledge

import (
	"strings"

	"roottrace/domain/core"
)

// Defaults applied when a resolved region has no table entry.
const (
	DefaultCoastalDeparture = "West African Coast"
	DefaultMedicalAdvisory  = "Consult healthcare provider for details"
	DefaultDescendantBase   = 15000
)

// DefaultDistribution returns the fixed uniform distribution over the
// six-region default set. A fresh map is returned on every call so callers
// may mutate their copy.
func (b *Base) DefaultDistribution() core.Distribution {
	dist := make(core.Distribution, len(b.defaultRegions))
	for _, region := range b.defaultRegions {
		dist[region] = 1.0 / float64(len(b.defaultRegions))
	}
	return dist
}

// DefaultRegions lists the six-region default set in canonical order.
func (b *Base) DefaultRegions() []string {
	return append([]string(nil), b.defaultRegions...)
}

// FallbackEthnicPool lists the ethnic groups eligible for the fallback
// backend's sub-distribution.
func (b *Base) FallbackEthnicPool() []string {
	return append([]string(nil), b.fallbackPool...)
}

// PatternOrder lists surname pattern classes in match-priority order.
func (b *Base) PatternOrder() []PatternClass {
	return append([]PatternClass(nil), b.patternOrder...)
}

// RegionAt maps a decoded field value to a region label, modulo table size.
func (b *Base) RegionAt(idx int) string {
	return b.Regions[idx%len(b.Regions)]
}

// EthnicGroupAt maps a decoded field value to an ethnic group label, modulo
// table size.
func (b *Base) EthnicGroupAt(idx int) string {
	return b.EthnicGroups[idx%len(b.EthnicGroups)]
}

// TimePeriodAt maps a decoded field value to a time period label, modulo
// table size.
func (b *Base) TimePeriodAt(idx int) string {
	return b.TimePeriods[idx%len(b.TimePeriods)]
}

// RegionIndex returns the canonical index of a region, or -1 when unknown.
func (b *Base) RegionIndex(region string) int {
	for i, r := range b.Regions {
		if r == region {
			return i
		}
	}
	return -1
}

// CoastalDepartureFor maps a region to its historical departure coast.
func (b *Base) CoastalDepartureFor(region string) string {
	if coast, ok := b.CoastalDeparture[region]; ok {
		return coast
	}
	return DefaultCoastalDeparture
}

// MedicalMarkersFor returns the region's medical heritage markers.
func (b *Base) MedicalMarkersFor(region string) []string {
	if markers, ok := b.MedicalMarkers[region]; ok {
		return append([]string(nil), markers...)
	}
	return []string{DefaultMedicalAdvisory}
}

// DescendantBaseFor returns the base living-descendants estimate for a region.
func (b *Base) DescendantBaseFor(region string) int {
	if base, ok := b.DescendantBase[region]; ok {
		return base
	}
	return DefaultDescendantBase
}

// EthnicGroupOf extracts the ethnic group component of a region label: the
// second underscore-separated token (e.g. "Ghana_Akan" -> "Akan"). Labels
// without an underscore are returned unchanged. Compound country names yield
// their middle token; callers treat the value as a display label.
func (b *Base) EthnicGroupOf(region string) string {
	parts := strings.Split(region, "_")
	if len(parts) > 1 {
		return parts[1]
	}
	return region
}

// CountryOf extracts the country component of a region label
// (e.g. "Ghana_Akan" -> "Ghana").
func (b *Base) CountryOf(region string) string {
	return strings.Split(region, "_")[0]
}
