package racing

// Draw range and the cutoff at or above which a car advances.
const (
	DrawMin           = 0
	DrawMax           = 9
	MovementThreshold = 4
)

// Car is a single entrant. The name is assumed to be validated by the caller.
//
// Distance only ever grows by one per Advance call.
type Car struct {
	name     string
	distance int
}

// NewCar creates a car at distance 0.
func NewCar(name string) *Car {
	return &Car{name: name}
}

// Advance moves the car forward one unit.
func (c *Car) Advance() {
	c.distance++
}

// Name returns the car's name.
func (c *Car) Name() string {
	return c.name
}

// Distance returns how far the car has travelled.
func (c *Car) Distance() int {
	return c.distance
}

// ShouldAdvance reports whether a draw moves a car.
func ShouldAdvance(draw int) bool {
	return draw >= MovementThreshold
}

// Position is a (name, distance) pair captured at a point in the race.
type Position struct {
	Name     string `json:"name"`
	Distance int    `json:"distance"`
}

func (c *Car) position() Position {
	return Position{Name: c.name, Distance: c.distance}
}
