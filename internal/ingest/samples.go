package ingest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SamplesFile reads a YAML list of sample texts, the format the serve-mode
// samples watcher reloads from.
func SamplesFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read samples file: %w", err)
	}
	var samples []string
	if err := yaml.Unmarshal(data, &samples); err != nil {
		return nil, fmt.Errorf("parse samples file: %w", err)
	}
	return samples, nil
}
