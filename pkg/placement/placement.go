// Package placement gates candidate room placements against the module
// footprint and the already-placed layout, and scores how well a legal
// placement satisfies the catalog's spatial constraints.
package placement

import (
	"fmt"
	"math"
	"sort"

	"github.com/Miegu/Space-Architects/pkg/catalog"
	"github.com/Miegu/Space-Architects/pkg/geo"
	"github.com/Miegu/Space-Architects/pkg/scenario"
)

// Rule weights and thresholds, uniform across all constraint rules.
const (
	MinDistancePenalty = 5.0
	MaxDistancePenalty = 8.0

	// AdjacencyWindow is the center-to-center distance within which an
	// adjacency bonus applies.
	AdjacencyWindow = 3.0
)

// Result is the outcome of validating a single candidate placement.
// Valid is the hard gate; Score, Violations, and Bonuses are the soft
// constraint-satisfaction signal and are only populated when the hard
// gate passes.
type Result struct {
	Valid      bool     `json:"valid"`
	Score      float64  `json:"score"`
	Violations []string `json:"violations"`
	Bonuses    []string `json:"bonuses"`
}

// Validate checks whether a room of the given type may be placed at pos
// within the layout. It never mutates the layout; committing a valid
// placement is the caller's responsibility. The only error condition is
// an unknown type ID, which indicates bad catalog data rather than a
// user mistake.
func Validate(cat *catalog.Catalog, typeID string, pos geo.Point, l *scenario.Layout) (Result, error) {
	rt, ok := cat.Get(typeID)
	if !ok {
		return Result{}, fmt.Errorf("unknown room type %q", typeID)
	}

	res := Result{Valid: true}
	candidate := geo.NewRect(pos, rt.Footprint.Width, rt.Footprint.Length)

	// Hard gate: all-or-nothing, no partial placement.
	if !candidate.Within(l.Module.Rect()) {
		res.Valid = false
		res.Violations = append(res.Violations,
			fmt.Sprintf("%s extends outside the %.1f x %.1f m module footprint", rt.Name, l.Module.Width, l.Module.Length))
	}

	if !rt.MultipleAllowed && l.Count(typeID) > 0 {
		res.Valid = false
		res.Violations = append(res.Violations,
			fmt.Sprintf("%s: only one instance permitted", rt.Name))
	}

	for _, placed := range l.Rooms {
		prt, ok := cat.Get(placed.TypeID)
		if !ok {
			continue
		}
		if candidate.Overlaps(placed.Bounds(prt)) {
			res.Valid = false
			res.Violations = append(res.Violations,
				fmt.Sprintf("%s overlaps an existing %s", rt.Name, placed.TypeID))
			break
		}
	}

	if !res.Valid {
		return res, nil
	}

	scoreConstraints(cat, rt, candidate, l, &res)
	return res, nil
}

// scoreConstraints applies the candidate type's distance and adjacency
// rules against the placed rooms. A type's own rules never apply to
// other instances of itself.
func scoreConstraints(cat *catalog.Catalog, rt catalog.RoomType, candidate geo.Rect, l *scenario.Layout, res *Result) {
	center := candidate.Center()

	targets := make([]string, 0, len(rt.Constraints))
	for target := range rt.Constraints {
		if target != rt.ID {
			targets = append(targets, target)
		}
	}
	sort.Strings(targets)

	for _, target := range targets {
		rule := rt.Constraints[target]
		nearest, count := nearestDistance(cat, l, target, center)

		if rule.MinDistance > 0 && count > 0 && nearest < rule.MinDistance {
			res.Score -= MinDistancePenalty
			res.Violations = append(res.Violations,
				fmt.Sprintf("too close to %s (%.1f m, minimum %.1f m)", target, nearest, rule.MinDistance))
		}

		if rule.MaxDistance > 0 {
			if count == 0 {
				res.Score -= MaxDistancePenalty
				res.Violations = append(res.Violations,
					fmt.Sprintf("needs %s within %.1f m but none is placed", target, rule.MaxDistance))
			} else if nearest > rule.MaxDistance {
				res.Score -= MaxDistancePenalty
				res.Violations = append(res.Violations,
					fmt.Sprintf("too far from %s (%.1f m, maximum %.1f m)", target, nearest, rule.MaxDistance))
			}
		}

		if rule.AdjacencyBonus > 0 && count > 0 && nearest <= AdjacencyWindow {
			res.Score += rule.AdjacencyBonus
			res.Bonuses = append(res.Bonuses,
				fmt.Sprintf("near %s (+%.0f)", target, rule.AdjacencyBonus))
		}
	}
}

// nearestDistance returns the center-to-center distance to the closest
// placed room of the given type, and how many such rooms exist.
func nearestDistance(cat *catalog.Catalog, l *scenario.Layout, typeID string, from geo.Point) (float64, int) {
	nearest := math.Inf(1)
	count := 0
	for _, r := range l.Rooms {
		if r.TypeID != typeID {
			continue
		}
		rt, ok := cat.Get(r.TypeID)
		if !ok {
			continue
		}
		count++
		if d := from.DistanceTo(r.Bounds(rt).Center()); d < nearest {
			nearest = d
		}
	}
	return nearest, count
}
