package scenario

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Load reads a scenario from a YAML file. Rooms without an instance ID
// are assigned one.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing scenario YAML: %w", err)
	}

	for i := range s.Rooms {
		if s.Rooms[i].InstanceID == "" {
			s.Rooms[i].InstanceID = uuid.NewString()
		}
	}

	return &s, nil
}

// LoadProject loads a scenario from a project directory.
// It looks for habitat.yaml in the given directory.
func LoadProject(projectDir string) (*Scenario, error) {
	return Load(filepath.Join(projectDir, "habitat.yaml"))
}
