package catalog

import "sort"

// Well-known room type IDs referenced by the compliance rules.
const (
	CrewQuarters = "crew_quarters"
	Hygiene      = "hygiene"
	Galley       = "galley"
	DiningRoom   = "diningroom"
	Exercise     = "exercise"
	Workstation  = "workstation"
	Medical      = "medical"
	Storage      = "storage"
	Maintenance  = "maintenance"
	Recreation   = "recreation"
	Greenhouse   = "greenhouse"
	Airlock      = "airlock"
)

// Catalog is an immutable set of room type definitions resolved by ID.
type Catalog struct {
	types map[string]RoomType
}

// New builds a catalog from the given definitions.
func New(defs []RoomType) *Catalog {
	types := make(map[string]RoomType, len(defs))
	for _, d := range defs {
		types[d.ID] = d
	}
	return &Catalog{types: types}
}

// Get returns the room type with the given ID. The second return value
// is false for an unknown ID.
func (c *Catalog) Get(id string) (RoomType, bool) {
	rt, ok := c.types[id]
	return rt, ok
}

// Has reports whether the catalog defines the given ID.
func (c *Catalog) Has(id string) bool {
	_, ok := c.types[id]
	return ok
}

// Len returns the number of room types defined.
func (c *Catalog) Len() int {
	return len(c.types)
}

// List returns room types sorted by ID. An empty filter returns all types;
// otherwise only types of the given category are returned.
func (c *Catalog) List(filter Category) []RoomType {
	out := make([]RoomType, 0, len(c.types))
	for _, rt := range c.types {
		if filter != "" && rt.Category != filter {
			continue
		}
		out = append(out, rt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// EssentialIDs returns the IDs of essential room types other than crew
// quarters, sorted. Crew quarters have their own per-crew-member check and
// are excluded from the generic coverage check.
func (c *Catalog) EssentialIDs() []string {
	var ids []string
	for id, rt := range c.types {
		if rt.Category == CategoryEssential && id != CrewQuarters {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// Default returns the built-in room catalog.
func Default() *Catalog {
	return New(defaultRoomTypes)
}

var defaultRoomTypes = []RoomType{
	{
		ID:              CrewQuarters,
		Name:            "Crew Quarters",
		Footprint:       Footprint{Width: 2.0, Length: 3.0, Height: 2.4},
		Category:        CategoryEssential,
		MultipleAllowed: true,
		Constraints: map[string]Constraint{
			Exercise:    {MinDistance: 4.0},
			Maintenance: {MinDistance: 4.0},
			Hygiene:     {AdjacencyBonus: 5},
		},
	},
	{
		ID:              Hygiene,
		Name:            "Hygiene Station",
		Footprint:       Footprint{Width: 1.5, Length: 2.0, Height: 2.4},
		Category:        CategoryEssential,
		MultipleAllowed: true,
		Constraints: map[string]Constraint{
			CrewQuarters: {AdjacencyBonus: 5},
			Galley:       {MinDistance: 2.0},
		},
	},
	{
		ID:              Galley,
		Name:            "Galley",
		Footprint:       Footprint{Width: 3.0, Length: 3.0, Height: 2.4},
		Category:        CategoryEssential,
		MultipleAllowed: false,
		Constraints: map[string]Constraint{
			DiningRoom: {MaxDistance: 8.0, AdjacencyBonus: 8},
			Hygiene:    {MinDistance: 2.0},
		},
	},
	{
		ID:              DiningRoom,
		Name:            "Dining Room",
		Footprint:       Footprint{Width: 3.0, Length: 4.0, Height: 2.4},
		Category:        CategoryEssential,
		MultipleAllowed: false,
		Constraints: map[string]Constraint{
			Galley: {AdjacencyBonus: 8},
		},
	},
	{
		ID:              Exercise,
		Name:            "Exercise Area",
		Footprint:       Footprint{Width: 3.0, Length: 4.0, Height: 2.5},
		Category:        CategoryEssential,
		MultipleAllowed: true,
		Constraints: map[string]Constraint{
			CrewQuarters: {MinDistance: 4.0},
			Hygiene:      {AdjacencyBonus: 3},
		},
	},
	{
		ID:              Workstation,
		Name:            "Workstation",
		Footprint:       Footprint{Width: 2.5, Length: 3.0, Height: 2.4},
		Category:        CategoryEssential,
		MultipleAllowed: true,
		Constraints: map[string]Constraint{
			Exercise: {MinDistance: 2.0},
		},
	},
	{
		ID:              Medical,
		Name:            "Medical Bay",
		Footprint:       Footprint{Width: 3.0, Length: 3.0, Height: 2.4},
		Category:        CategoryEssential,
		MultipleAllowed: false,
		Constraints: map[string]Constraint{
			Exercise: {AdjacencyBonus: 3},
		},
	},
	{
		ID:              Storage,
		Name:            "Storage",
		Footprint:       Footprint{Width: 2.0, Length: 3.0, Height: 2.4},
		Category:        CategoryEssential,
		MultipleAllowed: true,
		Constraints: map[string]Constraint{
			Galley: {AdjacencyBonus: 3},
		},
	},
	{
		ID:              Maintenance,
		Name:            "Maintenance Shop",
		Footprint:       Footprint{Width: 3.0, Length: 3.0, Height: 2.5},
		Category:        CategoryOptional,
		MultipleAllowed: true,
		Constraints: map[string]Constraint{
			CrewQuarters: {MinDistance: 4.0},
		},
	},
	{
		ID:              Recreation,
		Name:            "Recreation Area",
		Footprint:       Footprint{Width: 4.0, Length: 4.0, Height: 2.4},
		Category:        CategoryOptional,
		MultipleAllowed: true,
		Constraints: map[string]Constraint{
			DiningRoom: {AdjacencyBonus: 3},
		},
	},
	{
		ID:              Greenhouse,
		Name:            "Greenhouse",
		Footprint:       Footprint{Width: 3.0, Length: 4.0, Height: 2.5},
		Category:        CategoryOptional,
		MultipleAllowed: true,
		Constraints: map[string]Constraint{
			Galley: {AdjacencyBonus: 4},
		},
	},
	{
		ID:              Airlock,
		Name:            "Airlock",
		Footprint:       Footprint{Width: 2.0, Length: 2.0, Height: 2.2},
		Category:        CategoryOptional,
		MultipleAllowed: false,
		Constraints: map[string]Constraint{
			CrewQuarters: {MinDistance: 3.0},
		},
	},
}
