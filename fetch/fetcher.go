// Package fetch downloads the external datasets named in the resource
// manifest and persists them locally, applying the declared decompression
// transform on the way.
package fetch

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/proteinlab/interactome-prep/logging"
	"github.com/proteinlab/interactome-prep/manifest"
)

// Fetcher downloads manifest resources sequentially.
type Fetcher struct {
	client *http.Client
}

// New creates a Fetcher whose downloads time out after the given duration.
func New(timeout time.Duration) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Fetch downloads every resource whose target file does not already exist.
// A resource whose target is present is skipped without touching it.
// The first failure aborts the remaining descriptors.
func (f *Fetcher) Fetch(resources []manifest.Resource) error {
	for _, res := range resources {
		if _, err := os.Stat(res.TargetURI); err == nil {
			logging.Debug("Resource already present, skipping", "resource", res.Resource, "target", res.TargetURI)
			continue
		}

		if err := f.fetchOne(res); err != nil {
			return fmt.Errorf("failed to fetch %s: %w", res.Resource, err)
		}
	}

	return nil
}

func (f *Fetcher) fetchOne(res manifest.Resource) error {
	transform, err := ParseTransform(res.ETL)
	if err != nil {
		return err
	}

	fmt.Printf("downloading %s (%s)...\n", res.Resource, res.TargetURI)
	start := time.Now()

	response, err := f.client.Get(res.SourceURI)
	if err != nil {
		return fmt.Errorf("failed to download %s: %w", res.SourceURI, err)
	}
	defer func() {
		if err := response.Body.Close(); err != nil {
			logging.Warn("Failed to close response body", "error", err)
		}
	}()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return fmt.Errorf("failed to download %s: unexpected status %s", res.SourceURI, response.Status)
	}

	bodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body for %s: %w", res.SourceURI, err)
	}

	payload, err := transform.Apply(bodyBytes)
	if err != nil {
		return fmt.Errorf("failed to apply %s transform for %s: %w", transform, res.Resource, err)
	}

	targetDir := filepath.Dir(res.TargetURI)
	if err := os.MkdirAll(targetDir, 0750); err != nil {
		return fmt.Errorf("failed to create target directory %s: %w", targetDir, err)
	}

	if err := os.WriteFile(res.TargetURI, payload, 0640); err != nil {
		return fmt.Errorf("failed to write %s: %w", res.TargetURI, err)
	}

	logging.Info("Resource downloaded",
		"resource", res.Resource,
		"target", res.TargetURI,
		"bytes", len(payload),
		"duration", time.Since(start).String())

	return nil
}
