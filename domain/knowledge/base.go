package knowledge

import "roottrace/domain/core"

// PatternClass identifies a surname etymology class.
type PatternClass string

const (
	PatternPlantationAssigned PatternClass = "plantation_assigned"
	PatternAnglicizedAfrican  PatternClass = "anglicized_african"
	PatternOccupational       PatternClass = "occupational"
	PatternGeographic         PatternClass = "geographic"
)

// RegionalMarkers groups the cultural, linguistic and food keyword sets
// associated with one region.
type RegionalMarkers struct {
	Cultural   []string
	Linguistic []string
	Food       []string
}

// Base holds every static reference table the engine consults. It is built
// once by Load and read-only afterwards; any number of concurrent resolutions
// may read it without synchronization.
type Base struct {
	Regions        []string // canonical 16-region table (index order is the tie-break order)
	EthnicGroups   []string // canonical 16-group table
	TimePeriods    []string // canonical 8-period table
	CoastalRegions []string // historical departure coast names

	SurnamePatterns map[PatternClass][]string
	PatternWeights  map[PatternClass]core.Distribution
	patternOrder    []PatternClass

	RegionalMarkers  map[string]RegionalMarkers
	GeographicRoutes map[string]core.Distribution // US location -> African region weights

	CoastalDeparture map[string]string
	MedicalMarkers   map[string][]string
	DescendantBase   map[string]int

	defaultRegions []string
	fallbackPool   []string // ethnic groups eligible for fallback sub-distributions
}

// Load builds the immutable knowledge base. Called once at process start;
// tests may substitute their own instance.
func Load() *Base {
	b := &Base{
		Regions: []string{
			"Ghana_Akan", "Nigeria_Yoruba", "Nigeria_Igbo", "Senegal_Wolof",
			"Congo_Kongo", "Sierra_Leone_Mende", "Benin_Fon", "Mali_Bambara",
			"Cameroon_Bamileke", "Angola_Mbundu", "Mozambique_Makua", "Liberia_Kpelle",
			"Guinea_Fulani", "Ivory_Coast_Baoule", "Togo_Ewe", "Gabon_Fang",
		},
		EthnicGroups: []string{
			"Akan", "Yoruba", "Igbo", "Wolof", "Kongo", "Mende",
			"Fon", "Bambara", "Bamileke", "Mbundu", "Makua", "Kpelle",
			"Fulani", "Baoule", "Ewe", "Fang",
		},
		TimePeriods: []string{
			"1500-1600", "1601-1700", "1701-1750", "1751-1800",
			"1801-1850", "1851-1900", "1901-1950", "1951-2000",
		},
		CoastalRegions: []string{
			"Senegambia", "Sierra Leone", "Windward Coast", "Gold Coast",
			"Bight of Benin", "Bight of Biafra", "West Central Africa",
			"Southeast Africa",
		},
		defaultRegions: []string{
			"Ghana_Akan", "Nigeria_Yoruba", "Nigeria_Igbo",
			"Senegal_Wolof", "Congo_Kongo", "Sierra_Leone_Mende",
		},
		fallbackPool: []string{"Akan", "Yoruba", "Igbo", "Wolof", "Kongo", "Mende"},
	}

	b.SurnamePatterns = map[PatternClass][]string{
		PatternPlantationAssigned: {"Washington", "Jefferson", "Bradley", "Jackson"},
		PatternAnglicizedAfrican:  {"Freeman", "King", "Prince", "Duke"},
		PatternOccupational:       {"Smith", "Cooper", "Mason", "Wright"},
		PatternGeographic:         {"Rivers", "Brooks", "Hill", "Woods"},
	}
	// Pattern classes are checked in this order; the first match wins.
	b.patternOrder = []PatternClass{
		PatternPlantationAssigned,
		PatternAnglicizedAfrican,
		PatternOccupational,
		PatternGeographic,
	}

	uniform := b.DefaultDistribution()
	b.PatternWeights = map[PatternClass]core.Distribution{
		// Plantation-assigned names suggest the American South, so origins vary.
		PatternPlantationAssigned: {
			"Ghana_Akan": 0.2, "Nigeria_Yoruba": 0.2, "Nigeria_Igbo": 0.15,
			"Senegal_Wolof": 0.15, "Congo_Kongo": 0.15, "Sierra_Leone_Mende": 0.15,
		},
		// Anglicized African names lean toward West African origins.
		PatternAnglicizedAfrican: {
			"Ghana_Akan": 0.25, "Nigeria_Yoruba": 0.25, "Sierra_Leone_Mende": 0.2,
			"Senegal_Wolof": 0.15, "Nigeria_Igbo": 0.15,
		},
		// Occupational and geographic surnames carry no regional signal on
		// their own; their weight tables are the uniform default.
		PatternOccupational: uniform,
		PatternGeographic:   uniform.Clone(),
	}

	b.RegionalMarkers = map[string]RegionalMarkers{
		"Ghana_Akan": {
			Cultural:   []string{"Kente cloth", "Adinkra symbols", "Day names"},
			Linguistic: []string{"Twi words", "Akan naming patterns"},
			Food:       []string{"Fufu", "Jollof rice", "Groundnut stew"},
		},
		"Nigeria_Yoruba": {
			Cultural:   []string{"Orisha traditions", "Gelede masquerades"},
			Linguistic: []string{"Yoruba phrases", "Tonal patterns"},
			Food:       []string{"Egusi soup", "Pounded yam", "Akara"},
		},
		"Nigeria_Igbo": {
			Cultural:   []string{"Chi concept", "Ikenga shrine", "Ozo title"},
			Linguistic: []string{"Igbo words", "Nasal vowels"},
			Food:       []string{"Ofe nsala", "Abacha", "Ukwa"},
		},
		"Senegal_Wolof": {
			Cultural:   []string{"Mbalax music", "Teranga hospitality"},
			Linguistic: []string{"Wolof words", "French influence"},
			Food:       []string{"Thieboudienne", "Yassa", "Mafe"},
		},
		"Congo_Kongo": {
			Cultural:   []string{"Bakongo cosmology", "Kongo crosses"},
			Linguistic: []string{"Kikongo words", "Bantu structure"},
			Food:       []string{"Moambe chicken", "Chikwanga", "Pondu"},
		},
	}

	// US regions mapped to African origins along documented trade routes.
	b.GeographicRoutes = map[string]core.Distribution{
		"south carolina": {"Ghana_Akan": 0.3, "Sierra_Leone_Mende": 0.3, "Congo_Kongo": 0.2},
		"georgia":        {"Ghana_Akan": 0.3, "Nigeria_Igbo": 0.25, "Congo_Kongo": 0.2},
		"virginia":       {"Ghana_Akan": 0.25, "Nigeria_Igbo": 0.25, "Congo_Kongo": 0.25},
		"louisiana":      {"Senegal_Wolof": 0.3, "Congo_Kongo": 0.3, "Nigeria_Yoruba": 0.2},
		"mississippi":    {"Congo_Kongo": 0.3, "Nigeria_Yoruba": 0.25, "Ghana_Akan": 0.2},
		"alabama":        {"Nigeria_Igbo": 0.3, "Ghana_Akan": 0.25, "Congo_Kongo": 0.2},
	}

	b.CoastalDeparture = map[string]string{
		"Ghana_Akan":         "Gold Coast (Elmina, Cape Coast)",
		"Nigeria_Yoruba":     "Bight of Benin (Lagos, Badagry)",
		"Nigeria_Igbo":       "Bight of Biafra (Calabar, Bonny)",
		"Senegal_Wolof":      "Senegambia (Gorée Island, Saint-Louis)",
		"Congo_Kongo":        "West Central Africa (Luanda, Cabinda)",
		"Sierra_Leone_Mende": "Sierra Leone (Freetown, Sherbro)",
	}

	b.MedicalMarkers = map[string][]string{
		"Ghana_Akan":     {"G6PD deficiency common", "Sickle cell trait", "Lactose intolerance"},
		"Nigeria_Yoruba": {"G6PD deficiency", "Sickle cell common", "Hypertension risk"},
		"Nigeria_Igbo":   {"Sickle cell trait", "Thalassemia rare", "Diabetes A variant"},
		"Senegal_Wolof":  {"Sickle cell moderate", "Malaria resistance", "Salt sensitivity"},
		"Congo_Kongo":    {"Sickle cell common", "G6PD moderate", "Tropical disease resistance"},
	}

	b.DescendantBase = map[string]int{
		"Ghana_Akan":         15000,
		"Nigeria_Yoruba":     25000,
		"Nigeria_Igbo":       20000,
		"Senegal_Wolof":      12000,
		"Congo_Kongo":        18000,
		"Sierra_Leone_Mende": 10000,
	}

	return b
}
