// Package compliance evaluates a habitat layout against a fixed battery
// of weighted habitability checks and aggregates them into a 0-100 score.
package compliance

import (
	"math"

	"github.com/Miegu/Space-Architects/pkg/catalog"
	"github.com/Miegu/Space-Architects/pkg/scenario"
)

// Category is the outcome of one habitability check.
type Category struct {
	Name       string  `json:"name"`
	Weight     float64 `json:"max_score"`
	RawScore   float64 `json:"raw_score"`
	Percentage float64 `json:"percentage"`
	Passed     bool    `json:"passed"`
	Current    float64 `json:"current"`
	Required   float64 `json:"required"`
	Message    string  `json:"message"`
}

// Report is the full compliance evaluation of a layout.
type Report struct {
	OverallScore int                 `json:"overall_score"`
	Categories   map[string]Category `json:"categories"`
}

// Score evaluates every habitability check over the layout and mission
// parameters. Checks run independently and never short-circuit: a missing
// room type yields zero or partial credit for the checks that need it.
// The computation is pure and idempotent; callers re-run it from scratch
// on every layout change.
func Score(cat *catalog.Catalog, l *scenario.Layout, m scenario.Mission) *Report {
	categories := map[string]Category{
		CategoryVolume:             checkVolumePerPerson(cat, l, m),
		CategoryCrewQuarters:       checkCrewQuarters(l, m),
		CategoryEssentialRooms:     checkEssentialRooms(cat, l),
		CategoryHygieneStations:    checkHygieneStations(l, m),
		CategoryNoiseSeparation:    checkNoiseSeparation(cat, l),
		CategoryAdjacencyConflicts: checkAdjacencyConflicts(cat, l),
		CategoryMedicalAccess:      checkMedicalAccess(cat, l),
	}

	totalRaw, totalWeight := 0.0, 0.0
	for name, c := range categories {
		if c.Weight > 0 {
			c.Percentage = 100 * c.RawScore / c.Weight
		}
		categories[name] = c
		totalRaw += c.RawScore
		totalWeight += c.Weight
	}

	overall := 0
	if totalWeight > 0 {
		overall = int(math.Round(100 * totalRaw / totalWeight))
	}

	return &Report{
		OverallScore: overall,
		Categories:   categories,
	}
}

// partialCredit returns weight scaled by current/required, capped at the
// full weight. A non-positive required yields zero credit.
func partialCredit(weight, current, required float64) float64 {
	if required <= 0 {
		return 0
	}
	return math.Min(weight, weight*current/required)
}
