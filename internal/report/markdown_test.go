package report

import (
	"strings"
	"testing"

	"roottrace/domain/ancestry"
	"roottrace/domain/core"
	"roottrace/internal/testkit"
)

func sampleResult() *ancestry.AncestralResult {
	return &ancestry.AncestralResult{
		PrimaryRegion:          "Ghana_Akan",
		ConfidenceScore:        0.62,
		EthnicGroups:           []core.Ranked{{Name: "Akan", Probability: 0.7}},
		CoastalDepartureRegion: "Gold Coast (Elmina, Cape Coast)",
		EstimatedTimePeriod:    "1751-1800",
		SecondaryRegions:       []core.Ranked{{Name: "Congo_Kongo", Probability: 0.185}},
		QuantumCoherenceScore:  0.9,
		MedicalHeritageMarkers: []string{"G6PD deficiency common"},
		LivingDescendantsEstimate: 15000,
		CulturalReconnectionResources: []ancestry.Resource{
			{Type: "language", Title: "Learn Akan Language", Description: "Online courses", Link: "https://example.com/akan"},
		},
	}
}

// TestBuildMarkdown verifies the report carries every result section
func TestBuildMarkdown(t *testing.T) {
	md := BuildMarkdown(testkit.SurnameOnlyInput("Bradley"), sampleResult())

	for _, want := range []string{
		"# Ancestry Analysis: Bradley",
		"Ghana_Akan",
		"62.0% confidence",
		"Gold Coast (Elmina, Cape Coast)",
		"1751-1800",
		"- Akan: 70.0%",
		"- Congo_Kongo: 18.5%",
		"G6PD deficiency common",
		"~15000 people",
		"[Learn Akan Language](https://example.com/akan)",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown should contain %q", want)
		}
	}
}

// TestRenderHTML verifies markdown structure survives the HTML conversion
func TestRenderHTML(t *testing.T) {
	md := BuildMarkdown(testkit.SurnameOnlyInput("Bradley"), sampleResult())
	out := string(RenderHTML(md))

	if !strings.Contains(out, "<h1") {
		t.Error("rendered report should contain the title heading")
	}
	if !strings.Contains(out, "<li>") {
		t.Error("rendered report should contain list items")
	}
	if !strings.Contains(out, `href="https://example.com/akan"`) {
		t.Error("rendered report should keep resource links")
	}
}
