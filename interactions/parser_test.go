package interactions

import (
	"strings"
	"testing"
)

func TestParseScoredPairsResolvesThroughMapping(t *testing.T) {
	mapping := Mapping{"X": "CANON"}
	input := "protein1 protein2 combined_score\n" +
		"X Y 800\n"

	records, err := ParseScoredPairs(strings.NewReader(input), mapping)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}
	expected := Interaction{ProteinA: "CANON", ProteinB: "unknown", Score: 800}
	if records[0] != expected {
		t.Errorf("Expected %+v, got %+v", expected, records[0])
	}
}

func TestParseScoredPairsThresholdBoundary(t *testing.T) {
	mapping := Mapping{}
	input := "protein1 protein2 combined_score\n" +
		"a b 699\n" +
		"c d 700\n" +
		"e f 701\n"

	records, err := ParseScoredPairs(strings.NewReader(input), mapping)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("Expected scores 700 and 701 to survive, got %d records", len(records))
	}
	if records[0].Score != 700 || records[1].Score != 701 {
		t.Errorf("Expected scores [700 701], got [%d %d]", records[0].Score, records[1].Score)
	}
}

func TestParseScoredPairsSkipsHeaderUnconditionally(t *testing.T) {
	// The first line is dropped even when it looks like a data row
	mapping := Mapping{}
	input := "a b 900\n" +
		"c d 800\n"

	records, err := ParseScoredPairs(strings.NewReader(input), mapping)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}
	if records[0].Score != 800 {
		t.Errorf("Expected the second line to be the only record, got score %d", records[0].Score)
	}
}

func TestParseScoredPairsKeepsFullyUnknownPairs(t *testing.T) {
	// Pairs where neither identifier resolves are still emitted. This is a
	// known quirk of the historical pipeline, preserved on purpose.
	mapping := Mapping{}
	input := "protein1 protein2 combined_score\n" +
		"nobody knows 950\n"

	records, err := ParseScoredPairs(strings.NewReader(input), mapping)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(records) != 1 {
		t.Fatalf("Expected the unknown pair to be kept, got %d records", len(records))
	}
	expected := Interaction{ProteinA: "unknown", ProteinB: "unknown", Score: 950}
	if records[0] != expected {
		t.Errorf("Expected %+v, got %+v", expected, records[0])
	}
}

func TestParseScoredPairsMalformedRows(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"missing score column", "header\na b\n"},
		{"non-integer score", "header\na b high\n"},
		{"empty line", "header\n\n"},
	}

	for _, tc := range testCases {
		_, err := ParseScoredPairs(strings.NewReader(tc.input), Mapping{})
		if err == nil {
			t.Errorf("%s: expected error, got nil", tc.name)
		}
	}
}

func TestParseBioplexTruncatesScores(t *testing.T) {
	input := "GeneA\tGeneB\tUniprotA\tUniprotB\tpInt\n" +
		"h\th\tP1-9\tP2-5\t0.7001\n" +
		"h\th\tP3-1\tP4-2\t0.699999\n"

	records, err := ParseBioplex(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// 700.1 truncates to 700 and stays; 699.999 truncates to 699 and is cut
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}
	expected := Interaction{ProteinA: "P1", ProteinB: "P2", Score: 700}
	if records[0] != expected {
		t.Errorf("Expected %+v, got %+v", expected, records[0])
	}
}

func TestParseBioplexTrimsCompositeIdentifiers(t *testing.T) {
	input := "GeneA\tGeneB\tUniprotA\tUniprotB\tpInt\n" +
		"1\t2\tP04637-2\tQ9Y6K9\t0.999\n"

	records, err := ParseBioplex(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}
	if records[0].ProteinA != "P04637" {
		t.Errorf("Expected isoform suffix to be trimmed, got %s", records[0].ProteinA)
	}
	if records[0].ProteinB != "Q9Y6K9" {
		t.Errorf("Expected identifier without suffix to pass through, got %s", records[0].ProteinB)
	}
	if records[0].Score != 999 {
		t.Errorf("Expected score 999, got %d", records[0].Score)
	}
}

func TestParseBioplexScoreInLastColumn(t *testing.T) {
	// Extra columns between the identifiers and the score are tolerated;
	// the score is always the final column.
	input := "GeneA\tGeneB\tUniprotA\tUniprotB\tSymbolA\tSymbolB\tpW\tpNI\tpInt\n" +
		"1\t2\tP1\tP2\tsA\tsB\t0.01\t0.02\t0.97\n"

	records, err := ParseBioplex(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(records) != 1 || records[0].Score != 970 {
		t.Fatalf("Expected score 970 from the last column, got %+v", records)
	}
}

func TestParseBioplexMalformedRows(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"too few columns", "header\na\tb\tc\n"},
		{"non-numeric confidence", "header\na\tb\tc\td\thigh\n"},
	}

	for _, tc := range testCases {
		_, err := ParseBioplex(strings.NewReader(tc.input))
		if err == nil {
			t.Errorf("%s: expected error, got nil", tc.name)
		}
	}
}
