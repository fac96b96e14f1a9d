package placement

import (
	"math"
	"strings"
	"testing"

	"github.com/Miegu/Space-Architects/pkg/catalog"
	"github.com/Miegu/Space-Architects/pkg/geo"
	"github.com/Miegu/Space-Architects/pkg/scenario"
)

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

func emptyLayout() *scenario.Layout {
	return scenario.NewLayout(20, 15)
}

// --- Hard gate tests ---

func TestValidateUnknownType(t *testing.T) {
	_, err := Validate(catalog.Default(), "cryochamber", geo.Pt(0, 0), emptyLayout())
	if err == nil {
		t.Fatal("expected error for unknown room type")
	}
}

func TestValidateOutOfBounds(t *testing.T) {
	cat := catalog.Default()
	l := emptyLayout()

	// Galley is 3x3; x=18 pokes past the 20 m wide module.
	res, err := Validate(cat, catalog.Galley, geo.Pt(18, 0), l)
	if err != nil {
		t.Fatal(err)
	}
	if res.Valid {
		t.Error("out-of-bounds placement should be invalid")
	}
	if len(res.Violations) == 0 {
		t.Error("expected a violation message")
	}

	// Negative coordinates are out of the module too.
	res, _ = Validate(cat, catalog.Galley, geo.Pt(-1, 0), l)
	if res.Valid {
		t.Error("negative-coordinate placement should be invalid")
	}
}

func TestValidateEdgeTouchingBoundsIsLegal(t *testing.T) {
	// Galley at (17,12) occupies exactly the module corner.
	res, err := Validate(catalog.Default(), catalog.Galley, geo.Pt(17, 12), emptyLayout())
	if err != nil {
		t.Fatal(err)
	}
	if !res.Valid {
		t.Errorf("placement flush with the module edge should be valid: %v", res.Violations)
	}
}

func TestValidateOverlapRejected(t *testing.T) {
	cat := catalog.Default()
	l := emptyLayout()
	l.Add(catalog.Galley, geo.Pt(5, 5))
	before := len(l.Rooms)

	res, err := Validate(cat, catalog.Storage, geo.Pt(5, 5), l)
	if err != nil {
		t.Fatal(err)
	}
	if res.Valid {
		t.Error("fully overlapping placement should be invalid")
	}
	if len(l.Rooms) != before {
		t.Error("validation must not mutate the layout")
	}
}

func TestValidateTouchingEdgesAllowed(t *testing.T) {
	cat := catalog.Default()
	l := emptyLayout()
	l.Add(catalog.Galley, geo.Pt(0, 0)) // 3x3 at origin

	// Storage 2x3 sharing the galley's right edge.
	res, err := Validate(cat, catalog.Storage, geo.Pt(3, 0), l)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Valid {
		t.Errorf("edge-touching placement should be valid: %v", res.Violations)
	}
}

func TestValidateSingleInstanceType(t *testing.T) {
	cat := catalog.Default()
	l := emptyLayout()
	l.Add(catalog.Galley, geo.Pt(0, 0))

	res, err := Validate(cat, catalog.Galley, geo.Pt(10, 10), l)
	if err != nil {
		t.Fatal(err)
	}
	if res.Valid {
		t.Error("second galley should be rejected")
	}
	found := false
	for _, v := range res.Violations {
		if strings.Contains(v, "only one instance permitted") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected uniqueness violation, got %v", res.Violations)
	}
}

// --- Soft scoring tests ---

func TestMinDistanceViolation(t *testing.T) {
	cat := catalog.Default()
	l := emptyLayout()
	// Exercise 3x4 at origin, center (1.5, 2).
	l.Add(catalog.Exercise, geo.Pt(0, 0))

	// Crew quarters 2x3 at (4,0), center (5, 1.5): 3.54 m away, under the 4 m minimum.
	res, err := Validate(cat, catalog.CrewQuarters, geo.Pt(4, 0), l)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Valid {
		t.Fatalf("placement should pass the hard gate: %v", res.Violations)
	}
	if !approxEqual(res.Score, -MinDistancePenalty, 0.001) {
		t.Errorf("expected score %.0f, got %f", -MinDistancePenalty, res.Score)
	}
	if len(res.Violations) != 1 {
		t.Errorf("expected 1 violation, got %v", res.Violations)
	}
}

func TestMinDistanceSatisfied(t *testing.T) {
	cat := catalog.Default()
	l := emptyLayout()
	l.Add(catalog.Exercise, geo.Pt(0, 0)) // center (1.5, 2)

	// Crew quarters at (9,0), center (10, 1.5): 8.5 m away.
	res, err := Validate(cat, catalog.CrewQuarters, geo.Pt(9, 0), l)
	if err != nil {
		t.Fatal(err)
	}
	if res.Score < 0 || len(res.Violations) != 0 {
		t.Errorf("no violation expected at 8.5 m, got score %f, violations %v", res.Score, res.Violations)
	}
}

func TestMaxDistanceAbsentType(t *testing.T) {
	cat := catalog.Default()
	// Galley requires a dining room within 8 m; none placed.
	res, err := Validate(cat, catalog.Galley, geo.Pt(5, 5), emptyLayout())
	if err != nil {
		t.Fatal(err)
	}
	if !approxEqual(res.Score, -MaxDistancePenalty, 0.001) {
		t.Errorf("expected score %.0f for absent dining room, got %f", -MaxDistancePenalty, res.Score)
	}
}

func TestMaxDistanceTooFar(t *testing.T) {
	cat := catalog.Default()
	l := emptyLayout()
	// Dining room 3x4 at (15,10), center (16.5, 12).
	l.Add(catalog.DiningRoom, geo.Pt(15, 10))

	// Galley 3x3 at origin, center (1.5, 1.5): ~18.3 m away, over the 8 m maximum.
	res, err := Validate(cat, catalog.Galley, geo.Pt(0, 0), l)
	if err != nil {
		t.Fatal(err)
	}
	if !approxEqual(res.Score, -MaxDistancePenalty, 0.001) {
		t.Errorf("expected score %.0f, got %f", -MaxDistancePenalty, res.Score)
	}
}

func TestAdjacencyBonusWithinWindow(t *testing.T) {
	cat := catalog.Default()
	l := emptyLayout()
	// Crew quarters 2x3 at origin, center (1, 1.5).
	l.Add(catalog.CrewQuarters, geo.Pt(0, 0))

	// Hygiene 1.5x2 at (2.75, 0.5), center (3.5, 1.5): exactly 2.5 m away.
	res, err := Validate(cat, catalog.Hygiene, geo.Pt(2.75, 0.5), l)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Valid {
		t.Fatalf("placement should be valid: %v", res.Violations)
	}
	if !approxEqual(res.Score, 5.0, 0.001) {
		t.Errorf("expected adjacency bonus of 5, got score %f", res.Score)
	}
	if len(res.Bonuses) != 1 {
		t.Errorf("expected 1 bonus message, got %v", res.Bonuses)
	}
}

func TestAdjacencyBonusOutsideWindow(t *testing.T) {
	cat := catalog.Default()
	l := emptyLayout()
	l.Add(catalog.CrewQuarters, geo.Pt(0, 0)) // center (1, 1.5)

	// Hygiene at (3.75, 0.5), center (4.5, 1.5): 3.5 m away, outside the 3 m window.
	res, err := Validate(cat, catalog.Hygiene, geo.Pt(3.75, 0.5), l)
	if err != nil {
		t.Fatal(err)
	}
	if res.Score != 0 || len(res.Bonuses) != 0 {
		t.Errorf("no bonus expected at 3.5 m, got score %f, bonuses %v", res.Score, res.Bonuses)
	}
}

func TestGalleyNextToDiningRoom(t *testing.T) {
	cat := catalog.Default()
	l := emptyLayout()
	// Dining room 3x4 at (3,0), center (4.5, 2).
	l.Add(catalog.DiningRoom, geo.Pt(3, 0))

	// Galley 3x3 at origin, center (1.5, 1.5): 3.04 m away. Within the 8 m
	// maximum but just outside the 3 m adjacency window.
	res, err := Validate(cat, catalog.Galley, geo.Pt(0, 0), l)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Valid {
		t.Fatalf("placement should be valid: %v", res.Violations)
	}
	if res.Score != 0 {
		t.Errorf("expected neutral score, got %f (violations %v, bonuses %v)", res.Score, res.Violations, res.Bonuses)
	}
}

func TestOwnTypeRulesDoNotApply(t *testing.T) {
	// A self-referencing constraint must never fire against other
	// instances of the same type.
	cat := catalog.New([]catalog.RoomType{
		{
			ID:              "pod",
			Name:            "Pod",
			Footprint:       catalog.Footprint{Width: 2, Length: 2, Height: 2},
			Category:        catalog.CategoryOptional,
			MultipleAllowed: true,
			Constraints: map[string]catalog.Constraint{
				"pod": {MinDistance: 10},
			},
		},
	})
	l := scenario.NewLayout(20, 15)
	l.Add("pod", geo.Pt(0, 0))

	res, err := Validate(cat, "pod", geo.Pt(3, 0), l)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Valid || res.Score != 0 || len(res.Violations) != 0 {
		t.Errorf("own-type rule should be ignored, got %+v", res)
	}
}

// --- Non-overlap invariant ---

func TestNonOverlapInvariantAfterCommits(t *testing.T) {
	cat := catalog.Default()
	l := emptyLayout()

	placements := []struct {
		typeID string
		pos    geo.Point
	}{
		{catalog.CrewQuarters, geo.Pt(0, 0)},
		{catalog.CrewQuarters, geo.Pt(2, 0)},
		{catalog.Hygiene, geo.Pt(4, 0)},
		{catalog.Galley, geo.Pt(0, 4)},
		{catalog.Galley, geo.Pt(10, 10)}, // rejected: single instance
		{catalog.Storage, geo.Pt(1, 4)},  // rejected: overlaps galley
		{catalog.Storage, geo.Pt(6, 0)},
	}

	for _, p := range placements {
		res, err := Validate(cat, p.typeID, p.pos, l)
		if err != nil {
			t.Fatal(err)
		}
		if res.Valid {
			l.Add(p.typeID, p.pos)
		}
	}

	if len(l.Rooms) != 5 {
		t.Errorf("expected 5 committed rooms, got %d", len(l.Rooms))
	}
	for i := 0; i < len(l.Rooms); i++ {
		ri, _ := cat.Get(l.Rooms[i].TypeID)
		for j := i + 1; j < len(l.Rooms); j++ {
			rj, _ := cat.Get(l.Rooms[j].TypeID)
			if l.Rooms[i].Bounds(ri).Overlaps(l.Rooms[j].Bounds(rj)) {
				t.Errorf("rooms %d and %d overlap after validated commits", i, j)
			}
		}
	}
}
