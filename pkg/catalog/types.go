package catalog

// Category classifies a room type for compliance scoring.
type Category string

const (
	CategoryEssential Category = "essential"
	CategoryOptional  Category = "optional"
)

// Footprint is a room type's physical envelope in meters.
type Footprint struct {
	Width  float64 `yaml:"width" json:"width"`
	Length float64 `yaml:"length" json:"length"`
	Height float64 `yaml:"height" json:"height"`
}

// Constraint declares a spatial rule against another room type.
// Zero-valued fields mean the rule is not set.
type Constraint struct {
	MinDistance    float64 `yaml:"min_distance,omitempty" json:"min_distance,omitempty"`
	MaxDistance    float64 `yaml:"max_distance,omitempty" json:"max_distance,omitempty"`
	AdjacencyBonus float64 `yaml:"adjacency_bonus,omitempty" json:"adjacency_bonus,omitempty"`
}

// RoomType is an immutable room definition. Area and volume are always
// derived from the footprint so they cannot drift out of sync with it.
type RoomType struct {
	ID              string                `yaml:"id" json:"id"`
	Name            string                `yaml:"name" json:"name"`
	Footprint       Footprint             `yaml:"footprint" json:"footprint"`
	Category        Category              `yaml:"category" json:"category"`
	MultipleAllowed bool                  `yaml:"multiple_allowed" json:"multiple_allowed"`
	Constraints     map[string]Constraint `yaml:"constraints,omitempty" json:"constraints,omitempty"`
}

// Area returns the floor area in square meters.
func (rt RoomType) Area() float64 {
	return rt.Footprint.Width * rt.Footprint.Length
}

// Volume returns the pressurized volume in cubic meters.
func (rt RoomType) Volume() float64 {
	return rt.Area() * rt.Footprint.Height
}
