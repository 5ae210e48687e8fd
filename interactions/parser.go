package interactions

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseScoredPairs reads the STRING scored-pair table from r, resolving both
// identifiers through mapping. The first line is a header and is always
// skipped. Rows scoring below ScoreThreshold are dropped; everything else is
// kept in input order, including pairs where neither side resolved.
func ParseScoredPairs(r io.Reader, mapping Mapping) ([]Interaction, error) {
	var records []Interaction

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0), 1*1024*1024)

	lineCount := 0
	for scanner.Scan() {
		lineCount++
		if lineCount == 1 {
			continue
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) < 3 {
			return nil, fmt.Errorf("line %d: expected at least 3 fields, got %d", lineCount, len(fields))
		}

		score, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid score %q: %w", lineCount, fields[2], err)
		}

		if score < ScoreThreshold {
			continue
		}

		records = append(records, Interaction{
			ProteinA: mapping.Resolve(fields[0]),
			ProteinB: mapping.Resolve(fields[1]),
			Score:    score,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner error at line %d: %w", lineCount, err)
	}

	return records, nil
}

// ParseBioplex reads the BioPlex network table from r. The first line is a
// header and is always skipped. Identifiers come from the third and fourth
// columns, trimmed at their first '-'; the confidence probability in the
// last column is scaled to an integer score. Rows scoring below
// ScoreThreshold are dropped.
func ParseBioplex(r io.Reader) ([]Interaction, error) {
	var records []Interaction

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0), 1*1024*1024)

	lineCount := 0
	for scanner.Scan() {
		lineCount++
		if lineCount == 1 {
			continue
		}

		fields := strings.Split(scanner.Text(), "\t")
		if len(fields) < 4 {
			return nil, fmt.Errorf("line %d: expected at least 4 tab-separated fields, got %d", lineCount, len(fields))
		}

		rawScore := fields[len(fields)-1]
		probability, err := strconv.ParseFloat(rawScore, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid confidence %q: %w", lineCount, rawScore, err)
		}

		// Truncating conversion, not rounding: 0.7001 scales to 700 and a
		// product of 699.999 lands at 699, below the threshold. Rounding
		// here would shift records across the cutoff and change the output.
		score := int(probability * 1000)

		if score < ScoreThreshold {
			continue
		}

		a, _, _ := strings.Cut(fields[2], "-")
		b, _, _ := strings.Cut(fields[3], "-")

		records = append(records, Interaction{
			ProteinA: a,
			ProteinB: b,
			Score:    score,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner error at line %d: %w", lineCount, err)
	}

	return records, nil
}
