// Package manifest reads the resource manifest describing the external
// datasets required by the cleaning steps.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Resource describes one external dataset: where to fetch it from, where to
// store it locally and which decompression transform to apply on the way.
type Resource struct {
	Resource  string `json:"resource"`
	SourceURI string `json:"source_uri"`
	TargetURI string `json:"target_uri"`
	ETL       string `json:"etl"`
}

// Load parses the JSON array of resource descriptors at path.
//
// Target paths are taken as-is: the manifest is trusted local input and no
// uniqueness or collision checks are performed on target_uri values.
func Load(path string) ([]Resource, error) {
	raw, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	var resources []Resource
	if err := json.Unmarshal(raw, &resources); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}

	return resources, nil
}
