// Package interactions turns raw protein interaction datasets into the
// uniform three-column CSV consumed by the downstream analyses. Two input
// shapes are supported: the STRING scored-pair table, whose identifiers are
// resolved through a separate mapping file, and the BioPlex network table,
// whose identifiers only need composite-suffix trimming and score scaling.
package interactions

// ScoreThreshold is the minimum confidence score an interaction needs to be
// kept. Interactions scoring below 700 are considered noise for this
// pipeline and are dropped. Policy constant, not configurable.
const ScoreThreshold = 700

// UnknownIdentifier is emitted for identifiers absent from the mapping.
const UnknownIdentifier = "unknown"

// Interaction is one scored protein pair in canonical identifier space.
type Interaction struct {
	ProteinA string
	ProteinB string
	Score    int
}
