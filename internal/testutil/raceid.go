package testutil

// DefaultRaceID is used when a scenario does not pin a race ID.
const DefaultRaceID = "test-race-default"

// FixedRaceID returns the same race ID every time.
//
// Unlike racing.SequenceGenerator, which hands out IDs in order and panics
// when exhausted, FixedRaceID can be shared by any number of games.
//
// Stateless and safe for concurrent use.
type FixedRaceID struct {
	id string
}

// NewFixedRaceID creates a fixed race ID generator.
//
// If id is empty, Generate() returns DefaultRaceID.
func NewFixedRaceID(id string) *FixedRaceID {
	if id == "" {
		id = DefaultRaceID
	}
	return &FixedRaceID{id: id}
}

// Generate returns the fixed race ID.
//
// Implements racing.IDGenerator.
func (g *FixedRaceID) Generate() string {
	return g.id
}
