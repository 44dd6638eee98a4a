// Package seed bootstraps a fresh install from a YAML file of groups and
// sites. It runs once, only when no persisted state exists yet.
package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader reads and parses the seed file.
type Loader struct {
	filePath string
}

// NewLoader creates a loader for the given path.
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// Load reads and parses the seed YAML. Environment references like
// ${HOME_URL} are expanded before parsing.
func (l *Loader) Load() (File, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return File{}, fmt.Errorf("failed to read seed file: %w", err)
	}

	data = []byte(os.ExpandEnv(string(data)))

	var cfg File
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return File{}, fmt.Errorf("failed to parse seed yaml: %w", err)
	}

	return cfg, nil
}
