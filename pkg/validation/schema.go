package validation

import (
	"fmt"

	"github.com/Miegu/Space-Architects/pkg/catalog"
	"github.com/Miegu/Space-Architects/pkg/scenario"
)

// ValidateSchema performs structural validation on a loaded scenario
// before any scoring runs: mission parameter ranges, module dimensions,
// room type references, and the layout's in-bounds and non-overlap
// invariants.
func ValidateSchema(cat *catalog.Catalog, s *scenario.Scenario) *Report {
	r := NewReport()

	validateMission(s, r)
	validateModule(s, r)
	validateRooms(cat, s, r)

	return r
}

func validateMission(s *scenario.Scenario, r *Report) {
	m := s.Mission

	if m.CrewSize < scenario.MinCrewSize || m.CrewSize > scenario.MaxCrewSize {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("crew_size %d is outside valid range (%d-%d)", m.CrewSize, scenario.MinCrewSize, scenario.MaxCrewSize),
			FieldPath:   "mission.crew_size",
			ActualValue: m.CrewSize,
			Expected:    fmt.Sprintf("%d-%d", scenario.MinCrewSize, scenario.MaxCrewSize),
		})
	}

	if m.DurationDays < 1 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "duration_days must be at least 1",
			FieldPath:   "mission.duration_days",
			ActualValue: m.DurationDays,
			Expected:    ">= 1",
		})
	}

	switch m.Destination {
	case scenario.DestinationMoon, scenario.DestinationMars, scenario.DestinationOrbit:
	default:
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("unknown destination %q", m.Destination),
			FieldPath:   "mission.destination",
			ActualValue: string(m.Destination),
			Expected:    "moon, mars, or orbit",
		})
	}
}

func validateModule(s *scenario.Scenario, r *Report) {
	if s.Module.Width <= 0 || s.Module.Length <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("module footprint must have positive dimensions (got %.1f x %.1f)", s.Module.Width, s.Module.Length),
			FieldPath:   "module",
			ActualValue: fmt.Sprintf("%.1f x %.1f", s.Module.Width, s.Module.Length),
			Expected:    "width > 0 and length > 0",
		})
	}
}

func validateRooms(cat *catalog.Catalog, s *scenario.Scenario, r *Report) {
	moduleRect := s.Module.Rect()
	seen := make(map[string]int, len(s.Rooms))
	typeCounts := make(map[string]int, len(s.Rooms))

	for i, room := range s.Rooms {
		if room.InstanceID != "" {
			if prev, exists := seen[room.InstanceID]; exists {
				r.AddError(Result{
					Level:       LevelSchema,
					Message:     fmt.Sprintf("duplicate instance_id %q at rooms[%d] and rooms[%d]", room.InstanceID, prev, i),
					FieldPath:   fmt.Sprintf("rooms[%d].instance_id", i),
					ActualValue: room.InstanceID,
				})
			}
			seen[room.InstanceID] = i
		}

		rt, ok := cat.Get(room.TypeID)
		if !ok {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("rooms[%d] references unknown room type %q", i, room.TypeID),
				FieldPath:   fmt.Sprintf("rooms[%d].type", i),
				ActualValue: room.TypeID,
				Expected:    "a room type defined in the catalog",
			})
			continue
		}
		typeCounts[room.TypeID]++

		if s.Module.Width > 0 && s.Module.Length > 0 && !room.Bounds(rt).Within(moduleRect) {
			r.AddError(Result{
				Level:       LevelPlacement,
				Message:     fmt.Sprintf("rooms[%d] (%s) extends outside the %.1f x %.1f module footprint", i, room.TypeID, s.Module.Width, s.Module.Length),
				FieldPath:   fmt.Sprintf("rooms[%d].position", i),
				ActualValue: fmt.Sprintf("(%.1f, %.1f)", room.Position.X, room.Position.Y),
			})
		}
	}

	// Single-instance types.
	for typeID, n := range typeCounts {
		rt, _ := cat.Get(typeID)
		if !rt.MultipleAllowed && n > 1 {
			r.AddError(Result{
				Level:       LevelPlacement,
				Message:     fmt.Sprintf("room type %q permits only one instance (found %d)", typeID, n),
				FieldPath:   "rooms",
				ActualValue: n,
				Expected:    "1",
			})
		}
	}

	// Pairwise non-overlap across all placed rooms.
	for i := 0; i < len(s.Rooms); i++ {
		ri, okI := cat.Get(s.Rooms[i].TypeID)
		if !okI {
			continue
		}
		for j := i + 1; j < len(s.Rooms); j++ {
			rj, okJ := cat.Get(s.Rooms[j].TypeID)
			if !okJ {
				continue
			}
			if s.Rooms[i].Bounds(ri).Overlaps(s.Rooms[j].Bounds(rj)) {
				r.AddError(Result{
					Level:        LevelPlacement,
					Message:      fmt.Sprintf("rooms[%d] (%s) overlaps rooms[%d] (%s)", i, s.Rooms[i].TypeID, j, s.Rooms[j].TypeID),
					FieldPath:    fmt.Sprintf("rooms[%d].position", j),
					ConflictWith: fmt.Sprintf("rooms[%d]", i),
					Suggestions:  []string{"Move one of the rooms to a free area of the module"},
				})
			}
		}
	}
}
