package harness

import "github.com/roach88/racing/internal/racing"

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass indicates overall success: the expected error (if any) occurred
	// and every assertion held.
	Pass bool `json:"pass"`

	// RaceID is the race identifier the game ran under.
	RaceID string `json:"race_id,omitempty"`

	// Transcript is the rendered result. Empty if the game was rejected.
	Transcript string `json:"transcript,omitempty"`

	// Winners lists winning car names in roster order.
	Winners []string `json:"winners,omitempty"`

	// Cars holds final positions in roster order.
	Cars []racing.Position `json:"cars,omitempty"`

	// ErrorCode is the code of the error that stopped the game, if any.
	ErrorCode string `json:"error_code,omitempty"`

	// DrawsUsed counts scripted draws consumed.
	DrawsUsed int `json:"draws_used"`

	// Errors contains failure messages. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Errors: []string{},
	}
}

// AddError records a failure and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// Distance returns the final distance of the named car.
func (r *Result) Distance(name string) (int, bool) {
	for _, c := range r.Cars {
		if c.Name == name {
			return c.Distance, true
		}
	}
	return 0, false
}
