package interactions

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/proteinlab/interactome-prep/logging"
)

// CleanString runs the generic cleaning step: build the identifier mapping
// from mappingPath, resolve and filter the scored pairs at pairsPath and
// write the normalized CSV to outPath.
func CleanString(mappingPath, pairsPath, outPath string) error {
	mapping, err := LoadMapping(mappingPath)
	if err != nil {
		return err
	}

	pairsFile, err := os.Open(filepath.Clean(pairsPath))
	if err != nil {
		return fmt.Errorf("failed to open scored-pair file %s: %w", pairsPath, err)
	}
	defer func() {
		if err := pairsFile.Close(); err != nil {
			logging.Warn("Failed to close scored-pair file", "path", pairsPath, "error", err)
		}
	}()

	records, err := ParseScoredPairs(pairsFile, mapping)
	if err != nil {
		return fmt.Errorf("failed to parse scored-pair file %s: %w", pairsPath, err)
	}

	if err := WriteCSVFile(outPath, records); err != nil {
		return err
	}

	logging.Info("Cleaned STRING interactions",
		"mapping_entries", len(mapping),
		"records_kept", len(records),
		"output", outPath)

	return nil
}

// CleanBioplex runs the pre-mapped cleaning step: filter and rescale the
// BioPlex table at inPath and write the normalized CSV to outPath.
func CleanBioplex(inPath, outPath string) error {
	inFile, err := os.Open(filepath.Clean(inPath))
	if err != nil {
		return fmt.Errorf("failed to open network file %s: %w", inPath, err)
	}
	defer func() {
		if err := inFile.Close(); err != nil {
			logging.Warn("Failed to close network file", "path", inPath, "error", err)
		}
	}()

	records, err := ParseBioplex(inFile)
	if err != nil {
		return fmt.Errorf("failed to parse network file %s: %w", inPath, err)
	}

	if err := WriteCSVFile(outPath, records); err != nil {
		return err
	}

	logging.Info("Cleaned BioPlex interactions",
		"records_kept", len(records),
		"output", outPath)

	return nil
}
