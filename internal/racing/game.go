package racing

import (
	"fmt"
	"log/slog"
)

// DrawSource supplies uniform random integers in [min, max] inclusive.
//
// The Game asks for exactly one draw per car per round, in roster order,
// rounds strictly in sequence.
type DrawSource interface {
	IntInRange(min, max int) int
}

// State is a Game's lifecycle stage.
type State int

const (
	StateUnconfigured State = iota
	StateCarsSet
	StateRoundsSet
	StateConfigured
	StateComplete
	StateFailed
)

var stateNames = map[State]string{
	StateUnconfigured: "UNCONFIGURED",
	StateCarsSet:      "CARS_SET",
	StateRoundsSet:    "ROUNDS_SET",
	StateConfigured:   "CONFIGURED",
	StateComplete:     "COMPLETE",
	StateFailed:       "FAILED",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// RoundSnapshot is the roster's positions after one round, in roster order.
type RoundSnapshot struct {
	Round     int        `json:"round"`
	Positions []Position `json:"positions"`
}

// Game is the race engine: roster, round count, round loop and results.
//
// INVARIANTS:
//   - cars order is input order and never changes
//   - once complete, len(rounds) == totalRounds
//   - totalRounds is immutable once the race has started
type Game struct {
	id          string
	source      DrawSource
	logger      *slog.Logger
	cars        []*Car
	totalRounds int
	rounds      []RoundSnapshot
	carsSet     bool
	roundsSet   bool
	started     bool
	failed      bool
}

// GameOption configures a Game.
type GameOption func(*Game)

// WithIDGenerator sets the generator used to assign the race ID.
//
// Default: UUIDv7Generator.
func WithIDGenerator(gen IDGenerator) GameOption {
	return func(g *Game) {
		g.id = gen.Generate()
	}
}

// WithLogger sets the logger for race progress. Default: slog.Default().
func WithLogger(logger *slog.Logger) GameOption {
	return func(g *Game) {
		g.logger = logger
	}
}

// New creates an unconfigured Game drawing from source.
func New(source DrawSource, opts ...GameOption) *Game {
	g := &Game{
		source: source,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.id == "" {
		g.id = UUIDv7Generator{}.Generate()
	}
	return g
}

// ID returns the race identifier.
func (g *Game) ID() string {
	return g.id
}

// State returns the current lifecycle stage.
func (g *Game) State() State {
	switch {
	case g.failed:
		return StateFailed
	case g.started:
		return StateComplete
	case g.carsSet && g.roundsSet:
		return StateConfigured
	case g.carsSet:
		return StateCarsSet
	case g.roundsSet:
		return StateRoundsSet
	default:
		return StateUnconfigured
	}
}

// SetCars builds one Car per name, preserving order.
//
// Names are assumed validated (length, uniqueness). Calling SetCars again
// before the race replaces the roster.
func (g *Game) SetCars(names []string) error {
	if g.started {
		return newStateError(g.id, "cannot set cars after the race has run")
	}
	if len(names) == 0 {
		return newArgumentError(g.id, "at least one car is required")
	}

	cars := make([]*Car, len(names))
	for i, name := range names {
		cars[i] = NewCar(name)
	}
	g.cars = cars
	g.carsSet = true
	return nil
}

// SetTotalRounds stores the round count. n must be positive.
func (g *Game) SetTotalRounds(n int) error {
	if g.started {
		return newStateError(g.id, "cannot set rounds after the race has run")
	}
	if n <= 0 {
		return newArgumentError(g.id, "total rounds must be a positive integer, got %d", n)
	}
	g.totalRounds = n
	g.roundsSet = true
	return nil
}

// StartRace runs every round in order.
//
// Each round draws once per car in roster order and advances the car when
// ShouldAdvance(draw). A snapshot is captured after every car has moved.
// If any draw falls outside [DrawMin, DrawMax] the race fails and no
// result is available.
func (g *Game) StartRace() error {
	if g.started {
		return newStateError(g.id, "race has already run (state=%s)", g.State())
	}
	if !g.carsSet || !g.roundsSet {
		return newStateError(g.id, "cars and total rounds must be set before starting (state=%s)", g.State())
	}
	g.started = true

	g.logger.Info("race started", "race_id", g.id, "cars", len(g.cars), "rounds", g.totalRounds)

	rounds := make([]RoundSnapshot, 0, g.totalRounds)
	for round := 1; round <= g.totalRounds; round++ {
		for _, car := range g.cars {
			draw := g.source.IntInRange(DrawMin, DrawMax)
			if draw < DrawMin || draw > DrawMax {
				g.failed = true
				g.logger.Error("race failed", "race_id", g.id, "round", round, "car", car.Name(), "draw", draw)
				return &RaceError{
					Code:    ErrCodeDrawOutOfRange,
					Message: fmt.Sprintf("round %d: draw %d for car %q outside [%d, %d]", round, draw, car.Name(), DrawMin, DrawMax),
					RaceID:  g.id,
				}
			}
			if ShouldAdvance(draw) {
				car.Advance()
			}
		}

		rounds = append(rounds, g.snapshot(round))
		g.logger.Debug("round complete", "race_id", g.id, "round", round)
	}
	g.rounds = rounds

	g.logger.Info("race complete", "race_id", g.id, "max_distance", g.maxDistance())
	return nil
}

func (g *Game) snapshot(round int) RoundSnapshot {
	positions := make([]Position, len(g.cars))
	for i, car := range g.cars {
		positions[i] = car.position()
	}
	return RoundSnapshot{Round: round, Positions: positions}
}

func (g *Game) maxDistance() int {
	best := 0
	for _, car := range g.cars {
		if car.Distance() > best {
			best = car.Distance()
		}
	}
	return best
}

func (g *Game) requireComplete() error {
	if g.State() != StateComplete {
		return newStateError(g.id, "race has not completed (state=%s)", g.State())
	}
	return nil
}

// Winners returns every car at the maximum distance, in roster order.
// Ties are not broken.
func (g *Game) Winners() ([]Position, error) {
	if err := g.requireComplete(); err != nil {
		return nil, err
	}

	best := g.maxDistance()
	var winners []Position
	for _, car := range g.cars {
		if car.Distance() == best {
			winners = append(winners, car.position())
		}
	}
	return winners, nil
}

// Cars returns the final positions of every car, in roster order.
func (g *Game) Cars() []Position {
	positions := make([]Position, len(g.cars))
	for i, car := range g.cars {
		positions[i] = car.position()
	}
	return positions
}

// TotalRounds returns the configured round count (0 if unset).
func (g *Game) TotalRounds() int {
	return g.totalRounds
}

// Rounds returns a copy of the per-round snapshots.
func (g *Game) Rounds() []RoundSnapshot {
	out := make([]RoundSnapshot, len(g.rounds))
	for i, r := range g.rounds {
		positions := make([]Position, len(r.Positions))
		copy(positions, r.Positions)
		out[i] = RoundSnapshot{Round: r.Round, Positions: positions}
	}
	return out
}

// Result renders the transcript. It does not mutate the Game and returns
// the same string on every call.
func (g *Game) Result() (string, error) {
	winners, err := g.Winners()
	if err != nil {
		return "", err
	}
	names := make([]string, len(winners))
	for i, w := range winners {
		names[i] = w.Name
	}
	return FormatTranscript(g.rounds, names), nil
}
