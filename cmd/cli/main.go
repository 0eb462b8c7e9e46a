package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"

	"roottrace/adapters/classical"
	"roottrace/adapters/pathway"
	"roottrace/app"
	"roottrace/domain/ancestry"
	"roottrace/domain/knowledge"
	"roottrace/internal"
	"roottrace/internal/config"
)

func main() {
	_ = godotenv.Load()

	surname := flag.String("surname", "", "surname to resolve (required)")
	markers := flag.String("markers", "", "comma-separated cultural markers")
	hints := flag.String("hints", "", "comma-separated geographic hints")
	backendMode := flag.String("backend", "", "override backend: sampling or fallback")
	flag.Parse()

	if *surname == "" {
		log.Fatal("usage: roottrace-cli -surname NAME [-markers ...] [-hints ...]")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}
	if *backendMode != "" {
		cfg.Quantum.Mode = *backendMode
		if err := cfg.Validate(); err != nil {
			log.Fatalf("configuration error: %v", err)
		}
	}

	logger := internal.NewDefaultLogger()
	kb := knowledge.Load()
	resolver := app.NewResolverService(
		kb,
		classical.NewScorer(kb, cfg.Weights),
		pathway.NewBackend(cfg.Quantum, cfg.Weights, kb, logger),
		cfg.Weights,
		logger,
	)

	input := ancestry.AncestralInput{
		Surname:         *surname,
		CulturalMarkers: splitList(*markers),
		GeographicHints: splitList(*hints),
	}

	result, err := resolver.Resolve(context.Background(), input)
	if err != nil {
		log.Fatalf("resolution failed: %v", err)
	}

	printResult(result)
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func printResult(result *ancestry.AncestralResult) {
	fmt.Printf("Primary Region:    %s (%.1f%% confidence)\n", result.PrimaryRegion, result.ConfidenceScore*100)
	fmt.Printf("Coastal Departure: %s\n", result.CoastalDepartureRegion)
	fmt.Printf("Estimated Period:  %s\n", result.EstimatedTimePeriod)
	fmt.Printf("Coherence:         %.1f%%\n", result.QuantumCoherenceScore*100)

	fmt.Println("\nEthnic Groups:")
	for _, group := range result.EthnicGroups {
		fmt.Printf("  %-10s %.1f%%\n", group.Name, group.Probability*100)
	}

	fmt.Println("\nSecondary Regions:")
	for _, region := range result.SecondaryRegions {
		fmt.Printf("  %-20s %.1f%%\n", region.Name, region.Probability*100)
	}

	fmt.Println("\nMedical Heritage Markers:")
	for _, marker := range result.MedicalHeritageMarkers {
		fmt.Printf("  - %s\n", marker)
	}

	fmt.Printf("\nEstimated living descendants network: ~%d people\n", result.LivingDescendantsEstimate)
}
