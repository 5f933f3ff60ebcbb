package racing

import (
	"io"
	"log/slog"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/racing/internal/testutil"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestGame(src DrawSource) *Game {
	return New(src,
		WithIDGenerator(testutil.NewFixedRaceID("race-test")),
		WithLogger(discardLogger()),
	)
}

// recordingSource draws from a seeded PRNG and remembers every draw.
type recordingSource struct {
	rng   *rand.Rand
	draws []int
}

func newRecordingSource(seed uint64) *recordingSource {
	return &recordingSource{rng: rand.New(rand.NewSource(int64(seed)))}
}

func (s *recordingSource) IntInRange(min, max int) int {
	d := min + s.rng.Intn(max-min+1)
	s.draws = append(s.draws, d)
	return d
}

func runRace(t *testing.T, src DrawSource, names []string, rounds int) *Game {
	t.Helper()
	g := newTestGame(src)
	require.NoError(t, g.SetCars(names))
	require.NoError(t, g.SetTotalRounds(rounds))
	require.NoError(t, g.StartRace())
	return g
}

func TestNew_AssignsID(t *testing.T) {
	g := newTestGame(testutil.NewScriptedDraws())
	assert.Equal(t, "race-test", g.ID())

	g = New(testutil.NewScriptedDraws(), WithLogger(discardLogger()))
	assert.Len(t, g.ID(), 36)
}

func TestGame_StateTransitions(t *testing.T) {
	g := newTestGame(testutil.RepeatDraw(9, 2))
	assert.Equal(t, StateUnconfigured, g.State())

	require.NoError(t, g.SetTotalRounds(1))
	assert.Equal(t, StateRoundsSet, g.State())

	require.NoError(t, g.SetCars([]string{"pobi", "crong"}))
	assert.Equal(t, StateConfigured, g.State())

	require.NoError(t, g.StartRace())
	assert.Equal(t, StateComplete, g.State())
	assert.Equal(t, "COMPLETE", g.State().String())
}

func TestGame_SetCarsPreservesOrder(t *testing.T) {
	g := newTestGame(testutil.NewScriptedDraws())
	require.NoError(t, g.SetCars([]string{"honux", "pobi", "crong"}))

	cars := g.Cars()
	require.Len(t, cars, 3)
	assert.Equal(t, "honux", cars[0].Name)
	assert.Equal(t, "pobi", cars[1].Name)
	assert.Equal(t, "crong", cars[2].Name)
	for _, c := range cars {
		assert.Equal(t, 0, c.Distance)
	}
}

func TestGame_SetCarsRejectsEmptyRoster(t *testing.T) {
	g := newTestGame(testutil.NewScriptedDraws())

	err := g.SetCars(nil)
	require.Error(t, err)
	assert.True(t, IsInvalidArgument(err))
	assert.Equal(t, StateUnconfigured, g.State())
}

func TestGame_SetTotalRoundsRejectsNonPositive(t *testing.T) {
	g := newTestGame(testutil.NewScriptedDraws())

	for _, n := range []int{0, -1, -100} {
		err := g.SetTotalRounds(n)
		require.Error(t, err, "n=%d", n)
		assert.True(t, IsInvalidArgument(err))
	}
	assert.Equal(t, 0, g.TotalRounds())
}

func TestGame_StartRaceRequiresConfiguration(t *testing.T) {
	t.Run("nothing set", func(t *testing.T) {
		g := newTestGame(testutil.NewScriptedDraws())
		err := g.StartRace()
		require.Error(t, err)
		assert.True(t, IsInvalidState(err))
	})

	t.Run("cars only", func(t *testing.T) {
		g := newTestGame(testutil.NewScriptedDraws())
		require.NoError(t, g.SetCars([]string{"pobi"}))
		err := g.StartRace()
		require.Error(t, err)
		assert.True(t, IsInvalidState(err))
		assert.Equal(t, StateCarsSet, g.State())
	})

	t.Run("rounds only", func(t *testing.T) {
		g := newTestGame(testutil.NewScriptedDraws())
		require.NoError(t, g.SetTotalRounds(3))
		err := g.StartRace()
		require.Error(t, err)
		assert.True(t, IsInvalidState(err))
	})
}

func TestGame_StartRaceTwiceFails(t *testing.T) {
	src := testutil.RepeatDraw(9, 2)
	g := runRace(t, src, []string{"pobi"}, 2)

	err := g.StartRace()
	require.Error(t, err)
	assert.True(t, IsInvalidState(err))

	// No extra draws consumed, result unchanged
	assert.Equal(t, 2, src.Used())
	assert.Equal(t, StateComplete, g.State())
}

func TestGame_NoReconfigurationAfterRace(t *testing.T) {
	g := runRace(t, testutil.RepeatDraw(9, 1), []string{"pobi"}, 1)

	assert.True(t, IsInvalidState(g.SetCars([]string{"crong"})))
	assert.True(t, IsInvalidState(g.SetTotalRounds(4)))
	assert.Equal(t, 1, g.TotalRounds())
}

func TestGame_ResultsUnavailableBeforeRace(t *testing.T) {
	g := newTestGame(testutil.NewScriptedDraws())
	require.NoError(t, g.SetCars([]string{"pobi"}))
	require.NoError(t, g.SetTotalRounds(1))

	_, err := g.Winners()
	assert.True(t, IsInvalidState(err))

	_, err = g.Result()
	assert.True(t, IsInvalidState(err))
}

func TestGame_SingleCarAdvances(t *testing.T) {
	g := runRace(t, testutil.NewScriptedDraws(8), []string{"pobi"}, 1)
	assert.Equal(t, 1, g.Cars()[0].Distance)
}

func TestGame_SingleCarStays(t *testing.T) {
	g := runRace(t, testutil.NewScriptedDraws(2), []string{"pobi"}, 1)
	assert.Equal(t, 0, g.Cars()[0].Distance)

	// A lone car at distance 0 still wins
	winners, err := g.Winners()
	require.NoError(t, err)
	require.Len(t, winners, 1)
	assert.Equal(t, "pobi", winners[0].Name)
}

func TestGame_DrawsAreRoundMajorRosterOrder(t *testing.T) {
	// round 1: pobi=8 crong=2, round 2: pobi=3 crong=4, round 3: pobi=9 crong=1
	src := testutil.NewScriptedDraws(8, 2, 3, 4, 9, 1)
	g := runRace(t, src, []string{"pobi", "crong"}, 3)

	rounds := g.Rounds()
	require.Len(t, rounds, 3)
	assert.Equal(t, []Position{{"pobi", 1}, {"crong", 0}}, rounds[0].Positions)
	assert.Equal(t, []Position{{"pobi", 1}, {"crong", 1}}, rounds[1].Positions)
	assert.Equal(t, []Position{{"pobi", 2}, {"crong", 1}}, rounds[2].Positions)
	for i, r := range rounds {
		assert.Equal(t, i+1, r.Round)
	}
	assert.Equal(t, 0, src.Remaining())
}

func TestGame_AllAdvanceAllWin(t *testing.T) {
	names := []string{"pobi", "crong", "honux"}
	g := runRace(t, testutil.RepeatDraw(9, 15), names, 5)

	winners, err := g.Winners()
	require.NoError(t, err)
	require.Len(t, winners, 3)
	for i, w := range winners {
		assert.Equal(t, names[i], w.Name)
		assert.Equal(t, 5, w.Distance)
	}

	result, err := g.Result()
	require.NoError(t, err)
	lines := strings.Split(result, "\n")
	assert.Equal(t, "pobi, crong, honux가 최종 우승했습니다.", lines[len(lines)-1])
}

func TestGame_DrawOutOfRangeFailsRace(t *testing.T) {
	src := testutil.NewScriptedDraws(9, 10)
	g := newTestGame(src)
	require.NoError(t, g.SetCars([]string{"pobi", "crong"}))
	require.NoError(t, g.SetTotalRounds(2))

	err := g.StartRace()
	require.Error(t, err)
	assert.True(t, IsDrawOutOfRange(err))
	assert.Equal(t, StateFailed, g.State())
	assert.Empty(t, g.Rounds())

	_, err = g.Result()
	assert.True(t, IsInvalidState(err))

	err = g.StartRace()
	assert.True(t, IsInvalidState(err))
}

func TestGame_RoundsReturnsCopy(t *testing.T) {
	g := runRace(t, testutil.RepeatDraw(9, 1), []string{"pobi"}, 1)

	rounds := g.Rounds()
	rounds[0].Positions[0].Distance = 99

	assert.Equal(t, 1, g.Rounds()[0].Positions[0].Distance)
}

func TestGame_ResultIsStable(t *testing.T) {
	g := runRace(t, newRecordingSource(7), []string{"pobi", "crong", "honux"}, 6)

	first, err := g.Result()
	require.NoError(t, err)
	second, err := g.Result()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGame_RandomRaceProperties(t *testing.T) {
	rosters := [][]string{
		{"pobi"},
		{"pobi", "crong"},
		{"pobi", "crong", "honux"},
		{"a", "bb", "ccc", "dddd", "eeeee"},
	}

	for seed := uint64(1); seed <= 25; seed++ {
		for _, names := range rosters {
			rounds := int(seed%9) + 1
			src := newRecordingSource(seed)
			g := runRace(t, src, names, rounds)

			require.Len(t, src.draws, rounds*len(names))
			require.Len(t, g.Rounds(), rounds)

			// distance == number of qualifying draws, within [0, rounds]
			for i, car := range g.Cars() {
				want := 0
				for r := 0; r < rounds; r++ {
					if src.draws[r*len(names)+i] >= MovementThreshold {
						want++
					}
				}
				assert.Equal(t, want, car.Distance, "seed=%d car=%s", seed, car.Name)
				assert.GreaterOrEqual(t, car.Distance, 0)
				assert.LessOrEqual(t, car.Distance, rounds)
			}

			// distance never decreases and grows by at most one per round
			snaps := g.Rounds()
			for r := 1; r < len(snaps); r++ {
				for i := range names {
					delta := snaps[r].Positions[i].Distance - snaps[r-1].Positions[i].Distance
					assert.Contains(t, []int{0, 1}, delta)
				}
			}

			// winners: non-empty, all at max, nobody else reaches max
			winners, err := g.Winners()
			require.NoError(t, err)
			require.NotEmpty(t, winners)
			best := 0
			for _, c := range g.Cars() {
				if c.Distance > best {
					best = c.Distance
				}
			}
			winnerSet := make(map[string]bool)
			for _, w := range winners {
				assert.Equal(t, best, w.Distance)
				winnerSet[w.Name] = true
			}
			for _, c := range g.Cars() {
				if !winnerSet[c.Name] {
					assert.Less(t, c.Distance, best)
				}
			}

			// transcript line count
			result, err := g.Result()
			require.NoError(t, err)
			assert.Len(t, strings.Split(result, "\n"), ExpectedLineCount(len(names), rounds))
		}
	}
}

func TestGame_ReplayingDrawsReproducesTranscript(t *testing.T) {
	names := []string{"pobi", "crong", "honux"}
	src := newRecordingSource(42)
	first, err := runRace(t, src, names, 8).Result()
	require.NoError(t, err)

	replay := testutil.NewScriptedDraws(src.draws...)
	second, err := runRace(t, replay, names, 8).Result()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
