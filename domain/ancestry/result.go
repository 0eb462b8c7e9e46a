package ancestry

import "roottrace/domain/core"

// Resource is a single cultural reconnection pointer attached to a result.
type Resource struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

// AncestralResult is the final resolved ancestry determination. It is
// produced once per resolution and owned by the caller afterwards.
type AncestralResult struct {
	PrimaryRegion                 string        `json:"primary_region"`
	ConfidenceScore               float64       `json:"confidence_score"`
	EthnicGroups                  []core.Ranked `json:"ethnic_groups"`
	CoastalDepartureRegion        string        `json:"coastal_departure_region"`
	EstimatedTimePeriod           string        `json:"estimated_time_period"`
	SecondaryRegions              []core.Ranked `json:"secondary_regions"`
	QuantumCoherenceScore         float64       `json:"quantum_coherence_score"`
	MedicalHeritageMarkers        []string      `json:"medical_heritage_markers"`
	LivingDescendantsEstimate     int           `json:"living_descendants_estimate"`
	CulturalReconnectionResources []Resource    `json:"cultural_reconnection_resources"`
}
