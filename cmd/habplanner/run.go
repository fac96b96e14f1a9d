package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Miegu/Space-Architects/pkg/advisor"
	"github.com/Miegu/Space-Architects/pkg/catalog"
	"github.com/Miegu/Space-Architects/pkg/compliance"
	"github.com/Miegu/Space-Architects/pkg/scenario"
	"github.com/Miegu/Space-Architects/pkg/validation"
)

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	cat, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	return cat, nil
}

// loadAndValidate loads the catalog and scenario and runs schema validation.
func loadAndValidate(catalogPath, projectPath string) (*catalog.Catalog, *scenario.Scenario, *validation.Report, error) {
	cat, err := loadCatalog(catalogPath)
	if err != nil {
		return nil, nil, nil, err
	}
	sc, err := scenario.LoadProject(projectPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading scenario: %w", err)
	}
	return cat, sc, validation.ValidateSchema(cat, sc), nil
}

func runValidate(catalogPath, projectPath string) error {
	_, _, report, err := loadAndValidate(catalogPath, projectPath)
	if err != nil {
		return err
	}

	printValidationReport(report)

	if !report.Valid {
		os.Exit(1)
	}
	return nil
}

func runScore(catalogPath, projectPath string, jsonOut bool) error {
	cat, sc, report, err := loadAndValidate(catalogPath, projectPath)
	if err != nil {
		return err
	}
	if !report.Valid {
		printValidationReport(report)
		return fmt.Errorf("scenario has validation errors; fix before scoring")
	}

	rep := compliance.Score(cat, sc.Layout(), sc.Mission)
	recs := advisor.Recommend(rep)

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"compliance":      rep,
			"recommendations": recs,
		})
	}

	printComplianceReport(rep)
	if len(recs) > 0 {
		fmt.Println()
		printRecommendations(recs)
	}
	return nil
}

func runRooms(catalogPath string, jsonOut bool) error {
	cat, err := loadCatalog(catalogPath)
	if err != nil {
		return err
	}
	types := cat.List("")

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(types)
	}

	printRoomTypes(types)
	return nil
}
