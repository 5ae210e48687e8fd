package interactions

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/proteinlab/interactome-prep/logging"
)

// csvHeader is the fixed first line of every cleaned output file.
const csvHeader = "protein_a,protein_b,score"

// WriteCSV writes the cleaned records to w: the header line first, then one
// comma-joined record per line. Fields are written verbatim, with no quoting
// or escaping.
func WriteCSV(w io.Writer, records []Interaction) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(csvHeader + "\n"); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, rec := range records {
		line := rec.ProteinA + "," + rec.ProteinB + "," + strconv.Itoa(rec.Score) + "\n"
		if _, err := bw.WriteString(line); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	return nil
}

// WriteCSVFile writes the cleaned records to the file at path, creating the
// containing directory if needed.
func WriteCSVFile(path string, records []Interaction) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create output directory for %s: %w", path, err)
	}

	file, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", path, err)
	}

	if err := WriteCSV(file, records); err != nil {
		if closeErr := file.Close(); closeErr != nil {
			logging.Warn("Failed to close output file", "path", path, "error", closeErr)
		}
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close output file %s: %w", path, err)
	}

	return nil
}
