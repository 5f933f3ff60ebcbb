// Package harness runs scripted race scenarios and checks their outcome.
//
// # Scenario Format
//
// Scenarios are YAML files. Input is given as the raw text a player would
// type, so validation runs exactly as it does interactively:
//
//	name: all_advance
//	description: "Every car advances every round"
//	cars: "pobi,crong,honux"
//	rounds: "5"
//	draws: [9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9]
//	race_id: race-fixed-001
//	assertions:
//	  - type: winners
//	    names: [pobi, crong, honux]
//	  - type: distance
//	    car: pobi
//	    distance: 5
//
// Draws are consumed round by round, in roster order. A scenario that
// leaves draws unused fails, which keeps scripts honest.
//
// A scenario may instead expect the game to be rejected:
//
//	expect_error: LENGTH_OVERFLOW
//
// # Assertion Types
//
//   - winners: the winners, in roster order, are exactly names
//   - distance: car finished at distance
//   - line_count: the transcript has count lines
//   - transcript_contains: the transcript contains text
//
// # Deterministic Testing
//
// Each scenario races with testutil.ScriptedDraws and a fixed race ID, so
// the transcript is byte-identical across runs and can be compared against
// a golden file with RunWithGolden.
package harness
