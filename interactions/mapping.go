package interactions

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/proteinlab/interactome-prep/logging"
)

// Mapping resolves external protein identifiers to canonical ones.
type Mapping map[string]string

// Resolve returns the canonical identifier for id, or UnknownIdentifier if
// the mapping has no entry for it.
func (m Mapping) Resolve(id string) string {
	if canonical, ok := m[id]; ok {
		return canonical
	}
	return UnknownIdentifier
}

// LoadMapping builds a Mapping from the tab-separated mapping file at path.
// The lookup key is the first column truncated at its first '|'; the
// canonical identifier is the third column. A key appearing on several lines
// keeps the value of the last one.
func LoadMapping(path string) (Mapping, error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open mapping file %s: %w", path, err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logging.Warn("Failed to close mapping file", "path", path, "error", err)
		}
	}()

	mapping, err := ReadMapping(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse mapping file %s: %w", path, err)
	}

	return mapping, nil
}

// ReadMapping parses mapping rows from r. See LoadMapping for the row shape.
func ReadMapping(r io.Reader) (Mapping, error) {
	mapping := make(Mapping)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0), 1*1024*1024)

	lineCount := 0
	for scanner.Scan() {
		lineCount++
		fields := strings.Split(scanner.Text(), "\t")
		if len(fields) < 3 {
			return nil, fmt.Errorf("line %d: expected at least 3 tab-separated fields, got %d", lineCount, len(fields))
		}

		key, _, _ := strings.Cut(fields[0], "|")
		mapping[key] = fields[2]
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner error at line %d: %w", lineCount, err)
	}

	return mapping, nil
}
