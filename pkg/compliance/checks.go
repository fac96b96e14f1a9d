package compliance

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/Miegu/Space-Architects/pkg/catalog"
	"github.com/Miegu/Space-Architects/pkg/scenario"
)

// noiseSources are the room types whose vibration and sound must keep
// their distance from crew quarters.
var noiseSources = []string{catalog.Exercise, catalog.Maintenance}

// prohibitedAdjacencies lists type pairs that must never share an edge.
var prohibitedAdjacencies = [][2]string{
	{catalog.Galley, catalog.Hygiene},
}

func checkVolumePerPerson(cat *catalog.Catalog, l *scenario.Layout, m scenario.Mission) Category {
	c := Category{
		Name:     CategoryVolume,
		Weight:   WeightVolume,
		Required: m.RequiredVolumePerPerson(),
	}

	if m.CrewSize <= 0 {
		c.Message = "crew size must be positive to evaluate habitable volume"
		return c
	}

	total := 0.0
	for _, r := range l.Rooms {
		if rt, ok := cat.Get(r.TypeID); ok {
			total += rt.Volume()
		}
	}

	perPerson := total * HabitableFraction / float64(m.CrewSize)
	c.Current = perPerson
	c.Passed = perPerson >= c.Required
	if c.Passed {
		c.RawScore = c.Weight
		c.Message = fmt.Sprintf("%.1f m³ habitable volume per person (requires %.0f)", perPerson, c.Required)
	} else {
		c.RawScore = partialCredit(c.Weight, perPerson, c.Required)
		c.Message = fmt.Sprintf("only %.1f m³ habitable volume per person, requires %.0f for a %d-day mission", perPerson, c.Required, m.DurationDays)
	}
	return c
}

func checkCrewQuarters(l *scenario.Layout, m scenario.Mission) Category {
	c := Category{
		Name:     CategoryCrewQuarters,
		Weight:   WeightCrewQuarters,
		Required: float64(m.CrewSize),
	}

	if m.CrewSize <= 0 {
		c.Message = "crew size must be positive to evaluate crew quarters"
		return c
	}

	count := l.Count(catalog.CrewQuarters)
	c.Current = float64(count)
	c.Passed = count >= m.CrewSize
	c.RawScore = partialCredit(c.Weight, c.Current, c.Required)
	if c.Passed {
		c.Message = fmt.Sprintf("%d crew quarters for %d crew members", count, m.CrewSize)
	} else {
		c.Message = fmt.Sprintf("%d of %d crew members have private quarters", count, m.CrewSize)
	}
	return c
}

func checkEssentialRooms(cat *catalog.Catalog, l *scenario.Layout) Category {
	ids := cat.EssentialIDs()
	c := Category{
		Name:     CategoryEssentialRooms,
		Weight:   WeightEssentialRooms,
		Required: float64(len(ids)),
	}

	var missing []string
	present := 0
	for _, id := range ids {
		if l.Count(id) > 0 {
			present++
		} else {
			missing = append(missing, id)
		}
	}
	sort.Strings(missing)

	c.Current = float64(present)
	c.Passed = present == len(ids)
	c.RawScore = partialCredit(c.Weight, c.Current, c.Required)
	if c.Passed {
		c.Message = "all essential room types are present"
	} else {
		c.Message = fmt.Sprintf("missing essential rooms: %s", strings.Join(missing, ", "))
	}
	return c
}

func checkHygieneStations(l *scenario.Layout, m scenario.Mission) Category {
	c := Category{
		Name:   CategoryHygieneStations,
		Weight: WeightHygieneStations,
	}

	if m.CrewSize <= 0 {
		c.Message = "crew size must be positive to evaluate hygiene stations"
		return c
	}

	required := int(math.Ceil(float64(m.CrewSize) / float64(CrewPerHygieneStation)))
	count := l.Count(catalog.Hygiene)
	c.Required = float64(required)
	c.Current = float64(count)
	c.Passed = count >= required
	c.RawScore = partialCredit(c.Weight, c.Current, c.Required)
	if c.Passed {
		c.Message = fmt.Sprintf("%d hygiene stations for %d crew members", count, m.CrewSize)
	} else {
		c.Message = fmt.Sprintf("%d hygiene stations placed, %d required for %d crew members", count, required, m.CrewSize)
	}
	return c
}

// checkNoiseSeparation fails when any noise source sits closer than the
// minimum center distance to any crew quarters. Pass/fail only: one bad
// pair fails the whole check. An empty layout fails; a layout with no
// violating pairs passes.
func checkNoiseSeparation(cat *catalog.Catalog, l *scenario.Layout) Category {
	c := Category{
		Name:     CategoryNoiseSeparation,
		Weight:   WeightNoiseSeparation,
		Required: NoiseSeparationMinDistance,
	}

	if len(l.Rooms) == 0 {
		c.Message = "no rooms placed"
		return c
	}

	quiet := l.ByType(catalog.CrewQuarters)
	violations := 0
	closest := math.Inf(1)
	for _, src := range noiseSources {
		srcType, ok := cat.Get(src)
		if !ok {
			continue
		}
		quietType, ok := cat.Get(catalog.CrewQuarters)
		if !ok {
			continue
		}
		for _, noisy := range l.ByType(src) {
			for _, q := range quiet {
				d := noisy.Bounds(srcType).Center().DistanceTo(q.Bounds(quietType).Center())
				if d < closest {
					closest = d
				}
				if d < NoiseSeparationMinDistance {
					violations++
				}
			}
		}
	}

	if !math.IsInf(closest, 1) {
		c.Current = closest
	}
	c.Passed = violations == 0
	if c.Passed {
		c.RawScore = c.Weight
		c.Message = "noise sources are separated from crew quarters"
	} else {
		c.Message = fmt.Sprintf("%d noise source(s) within %.1f m of crew quarters (closest %.1f m)", violations, NoiseSeparationMinDistance, closest)
	}
	return c
}

// checkAdjacencyConflicts fails when any prohibited pair of rooms shares
// an edge. Pass/fail only. An empty layout fails.
func checkAdjacencyConflicts(cat *catalog.Catalog, l *scenario.Layout) Category {
	c := Category{
		Name:   CategoryAdjacencyConflicts,
		Weight: WeightAdjacencyConflicts,
	}

	if len(l.Rooms) == 0 {
		c.Message = "no rooms placed"
		return c
	}

	conflicts := 0
	for _, pair := range prohibitedAdjacencies {
		aType, okA := cat.Get(pair[0])
		bType, okB := cat.Get(pair[1])
		if !okA || !okB {
			continue
		}
		for _, a := range l.ByType(pair[0]) {
			for _, b := range l.ByType(pair[1]) {
				if a.Bounds(aType).Adjacent(b.Bounds(bType), AdjacencyTolerance) {
					conflicts++
				}
			}
		}
	}

	c.Current = float64(conflicts)
	c.Passed = conflicts == 0
	if c.Passed {
		c.RawScore = c.Weight
		c.Message = "no prohibited room adjacencies"
	} else {
		c.Message = fmt.Sprintf("%d prohibited adjacency conflict(s): galley must not touch hygiene", conflicts)
	}
	return c
}

// checkMedicalAccess scores the fraction of rooms within the access
// radius of the nearest medical bay. No medical bay scores zero.
func checkMedicalAccess(cat *catalog.Catalog, l *scenario.Layout) Category {
	c := Category{
		Name:     CategoryMedicalAccess,
		Weight:   WeightMedicalAccess,
		Required: MedicalAccessPassFraction,
	}

	medType, ok := cat.Get(catalog.Medical)
	if !ok {
		c.Message = "catalog defines no medical bay type"
		return c
	}
	bays := l.ByType(catalog.Medical)
	if len(bays) == 0 {
		c.Message = "no medical bay placed"
		return c
	}

	covered := 0
	total := 0
	for _, r := range l.Rooms {
		rt, okR := cat.Get(r.TypeID)
		if !okR {
			continue
		}
		total++
		center := r.Bounds(rt).Center()
		for _, bay := range bays {
			if center.DistanceTo(bay.Bounds(medType).Center()) <= MedicalAccessRadius {
				covered++
				break
			}
		}
	}

	if total == 0 {
		c.Message = "no rooms placed"
		return c
	}

	fraction := float64(covered) / float64(total)
	c.Current = fraction
	c.Passed = fraction >= MedicalAccessPassFraction
	c.RawScore = c.Weight * fraction
	if c.Passed {
		c.Message = fmt.Sprintf("%.0f%% of rooms within %.0f m of a medical bay", fraction*100, MedicalAccessRadius)
	} else {
		c.Message = fmt.Sprintf("only %.0f%% of rooms within %.0f m of a medical bay (requires %.0f%%)", fraction*100, MedicalAccessRadius, MedicalAccessPassFraction*100)
	}
	return c
}
