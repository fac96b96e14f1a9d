package scenario

import (
	"github.com/google/uuid"

	"github.com/Miegu/Space-Architects/pkg/catalog"
	"github.com/Miegu/Space-Architects/pkg/geo"
)

// Destination is the mission target.
type Destination string

const (
	DestinationMoon  Destination = "moon"
	DestinationMars  Destination = "mars"
	DestinationOrbit Destination = "orbit"
)

// Crew size bounds accepted by the engine. The UI restricts further.
const (
	MinCrewSize = 1
	MaxCrewSize = 12
)

// Mission holds the user-selected mission parameters. Read-only to the
// engine once set.
type Mission struct {
	CrewSize     int         `yaml:"crew_size" json:"crew_size"`
	DurationDays int         `yaml:"duration_days" json:"duration_days"`
	Destination  Destination `yaml:"destination" json:"destination"`
}

// RequiredVolumePerPerson returns the habitable-volume threshold in cubic
// meters per crew member, tiered by mission duration.
func (m Mission) RequiredVolumePerPerson() float64 {
	switch {
	case m.DurationDays <= 30:
		return 20
	case m.DurationDays <= 90:
		return 25
	case m.DurationDays <= 180:
		return 30
	default:
		return 40
	}
}

// Size is the habitat module's available footprint in meters.
type Size struct {
	Width  float64 `yaml:"width" json:"width"`
	Length float64 `yaml:"length" json:"length"`
}

// Rect returns the module footprint as a rectangle at the local origin.
func (s Size) Rect() geo.Rect {
	return geo.Rect{X: 0, Y: 0, Width: s.Width, Length: s.Length}
}

// Room is a placed room instance. Position is the top-left corner in
// module-local meters.
type Room struct {
	InstanceID string    `yaml:"instance_id,omitempty" json:"instance_id"`
	TypeID     string    `yaml:"type" json:"type"`
	Position   geo.Point `yaml:"position" json:"position"`
}

// Bounds returns the room's rectangle given its type definition.
func (r Room) Bounds(rt catalog.RoomType) geo.Rect {
	return geo.NewRect(r.Position, rt.Footprint.Width, rt.Footprint.Length)
}

// Layout is the current set of placed rooms within a module footprint.
// Insertion order is irrelevant to scoring. Mutations go through Add,
// Remove, and Clear; callers are expected to validate placements first.
type Layout struct {
	Module Size   `yaml:"module" json:"module"`
	Rooms  []Room `yaml:"rooms" json:"rooms"`
}

// NewLayout returns an empty layout for a module footprint.
func NewLayout(width, length float64) *Layout {
	return &Layout{Module: Size{Width: width, Length: length}}
}

// Add appends a placed room with a fresh instance ID and returns it.
// Instance IDs are never reused, even after removal.
func (l *Layout) Add(typeID string, pos geo.Point) Room {
	r := Room{
		InstanceID: uuid.NewString(),
		TypeID:     typeID,
		Position:   pos,
	}
	l.Rooms = append(l.Rooms, r)
	return r
}

// Remove deletes the room with the given instance ID. It reports whether
// a room was removed.
func (l *Layout) Remove(instanceID string) bool {
	for i, r := range l.Rooms {
		if r.InstanceID == instanceID {
			l.Rooms = append(l.Rooms[:i], l.Rooms[i+1:]...)
			return true
		}
	}
	return false
}

// Clear removes all placed rooms.
func (l *Layout) Clear() {
	l.Rooms = nil
}

// ByType returns all rooms of the given type.
func (l *Layout) ByType(typeID string) []Room {
	var out []Room
	for _, r := range l.Rooms {
		if r.TypeID == typeID {
			out = append(out, r)
		}
	}
	return out
}

// Count returns the number of rooms of the given type.
func (l *Layout) Count(typeID string) int {
	n := 0
	for _, r := range l.Rooms {
		if r.TypeID == typeID {
			n++
		}
	}
	return n
}

// Scenario is a full session state: mission parameters plus layout.
// This is the unit the CLI loads from disk and the HTTP API receives
// as JSON from the browser.
type Scenario struct {
	Mission Mission `yaml:"mission" json:"mission"`
	Module  Size    `yaml:"module" json:"module"`
	Rooms   []Room  `yaml:"rooms" json:"rooms"`
}

// Layout returns the scenario's placed rooms as a Layout value.
func (s *Scenario) Layout() *Layout {
	return &Layout{Module: s.Module, Rooms: s.Rooms}
}
