package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// catalogFile is the on-disk YAML shape.
type catalogFile struct {
	RoomTypes []RoomType `yaml:"room_types"`
}

// Load reads a room catalog from a YAML file. The file replaces the
// built-in catalog entirely; definitions are validated before use.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog YAML: %w", err)
	}

	if len(f.RoomTypes) == 0 {
		return nil, fmt.Errorf("catalog file %s defines no room types", path)
	}
	if err := validateDefinitions(f.RoomTypes); err != nil {
		return nil, err
	}

	return New(f.RoomTypes), nil
}

func validateDefinitions(defs []RoomType) error {
	ids := make(map[string]bool, len(defs))
	for i, d := range defs {
		if d.ID == "" {
			return fmt.Errorf("room_types[%d]: id must not be empty", i)
		}
		if ids[d.ID] {
			return fmt.Errorf("room_types[%d]: duplicate id %q", i, d.ID)
		}
		ids[d.ID] = true

		fp := d.Footprint
		if fp.Width <= 0 || fp.Length <= 0 || fp.Height <= 0 {
			return fmt.Errorf("room type %q: footprint dimensions must be positive (got %.2f x %.2f x %.2f)",
				d.ID, fp.Width, fp.Length, fp.Height)
		}
		if d.Category != CategoryEssential && d.Category != CategoryOptional {
			return fmt.Errorf("room type %q: category must be %q or %q (got %q)",
				d.ID, CategoryEssential, CategoryOptional, d.Category)
		}
	}

	// Constraint references and rule sanity, after all IDs are known.
	for _, d := range defs {
		for target, c := range d.Constraints {
			if !ids[target] {
				return fmt.Errorf("room type %q: constraint references unknown type %q", d.ID, target)
			}
			if c.MinDistance < 0 || c.MaxDistance < 0 || c.AdjacencyBonus < 0 {
				return fmt.Errorf("room type %q: constraint on %q has negative values", d.ID, target)
			}
			if c.MinDistance > 0 && c.MaxDistance > 0 && c.MinDistance >= c.MaxDistance {
				return fmt.Errorf("room type %q: constraint on %q has min_distance %.1f >= max_distance %.1f",
					d.ID, target, c.MinDistance, c.MaxDistance)
			}
		}
	}
	return nil
}
