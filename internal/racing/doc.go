// Package racing implements the car-racing domain model.
//
// A Game owns an ordered roster of Cars and a fixed number of rounds. Each
// round every car receives exactly one draw from a DrawSource; a draw at or
// above MovementThreshold advances the car by one unit. After the final round
// the cars sharing the greatest distance are the winners.
//
// LIFECYCLE:
//
//	UNCONFIGURED -> CARS_SET / ROUNDS_SET -> CONFIGURED -> COMPLETE
//	                                                   \-> FAILED
//
// SetCars and SetTotalRounds may be called in either order, but both must
// precede StartRace. StartRace runs every round to completion or fails the
// whole race; there is no partial result.
//
// Determinism: given the same roster, round count and draw sequence, the
// transcript is byte-identical. The only source of nondeterminism is the
// DrawSource.
//
// A Game is not safe for concurrent use. Concurrent races each need their own
// Game.
package racing
