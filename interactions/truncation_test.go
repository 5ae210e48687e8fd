package interactions

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"pgregory.net/rapid"
)

// The score scaling must truncate, never round: a naive rewrite using
// math.Round would silently move records across the 700 cutoff.
func TestBioplexScoreScalingTruncates(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		probability := rapid.Float64Range(0, 1).Draw(t, "probability")

		input := "GeneA\tGeneB\tUniprotA\tUniprotB\tpInt\n" +
			"1\t2\tP1\tP2\t" + strconv.FormatFloat(probability, 'f', -1, 64) + "\n"

		records, err := ParseBioplex(strings.NewReader(input))
		if err != nil {
			t.Fatalf("Unexpected parse error: %v", err)
		}

		product := probability * 1000
		expected := int(math.Trunc(product))

		if expected < ScoreThreshold {
			if len(records) != 0 {
				t.Fatalf("Probability %v (score %d) should have been filtered, got %+v",
					probability, expected, records)
			}
			return
		}

		if len(records) != 1 {
			t.Fatalf("Probability %v (score %d) should have been kept", probability, expected)
		}
		if records[0].Score != expected {
			t.Fatalf("Probability %v: expected truncated score %d, got %d",
				probability, expected, records[0].Score)
		}
	})
}
