package report

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"roottrace/domain/ancestry"
)

// BuildMarkdown summarizes a resolved analysis as a markdown document.
func BuildMarkdown(input ancestry.AncestralInput, result *ancestry.AncestralResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Ancestry Analysis: %s\n\n", input.Surname)
	fmt.Fprintf(&b, "**Primary Region:** %s (%.1f%% confidence)\n\n", result.PrimaryRegion, result.ConfidenceScore*100)
	fmt.Fprintf(&b, "**Coastal Departure:** %s\n\n", result.CoastalDepartureRegion)
	fmt.Fprintf(&b, "**Estimated Period:** %s\n\n", result.EstimatedTimePeriod)
	fmt.Fprintf(&b, "**Pathway Coherence:** %.1f%%\n\n", result.QuantumCoherenceScore*100)

	b.WriteString("## Ethnic Group Probabilities\n\n")
	for _, group := range result.EthnicGroups {
		fmt.Fprintf(&b, "- %s: %.1f%%\n", group.Name, group.Probability*100)
	}

	if len(result.SecondaryRegions) > 0 {
		b.WriteString("\n## Secondary Regions\n\n")
		for _, region := range result.SecondaryRegions {
			fmt.Fprintf(&b, "- %s: %.1f%%\n", region.Name, region.Probability*100)
		}
	}

	b.WriteString("\n## Medical Heritage Markers\n\n")
	for _, marker := range result.MedicalHeritageMarkers {
		fmt.Fprintf(&b, "- %s\n", marker)
	}

	fmt.Fprintf(&b, "\nEstimated living descendants network: ~%d people\n", result.LivingDescendantsEstimate)

	b.WriteString("\n## Cultural Reconnection Resources\n\n")
	for _, resource := range result.CulturalReconnectionResources {
		fmt.Fprintf(&b, "- [%s](%s): %s\n", resource.Title, resource.Link, resource.Description)
	}

	return b.String()
}

// RenderHTML converts the markdown summary into an HTML fragment.
func RenderHTML(md string) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.ToHTML([]byte(md), p, renderer)
}
