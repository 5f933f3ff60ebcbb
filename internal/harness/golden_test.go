package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWithGolden_Fixtures(t *testing.T) {
	for _, name := range []string{"all_advance", "single_winner", "threshold"} {
		t.Run(name, func(t *testing.T) {
			s, err := LoadScenario(filepath.Join("testdata", "scenarios", name+".yaml"))
			require.NoError(t, err)

			result, err := RunWithGolden(t, s)
			require.NoError(t, err)
			assert.True(t, result.Pass, "errors: %v", result.Errors)
		})
	}
}

func TestGoldenFilePath(t *testing.T) {
	got := GoldenFilePath(filepath.Join("scenarios", "race", "all_advance.yaml"))
	assert.Equal(t, filepath.Join("scenarios", "race", "golden", "all_advance.golden"), got)
}

func TestUpdateAndCompareGolden(t *testing.T) {
	dir := t.TempDir()
	scenarioFile := filepath.Join(dir, "tie.yaml")
	result := &Result{Transcript: "실행 결과\n\na : \n\na가 최종 우승했습니다."}

	_, err := CompareWithGolden(scenarioFile, result)
	require.Error(t, err)

	require.NoError(t, UpdateGoldenFile(scenarioFile, result))
	data, err := os.ReadFile(filepath.Join(dir, "golden", "tie.golden"))
	require.NoError(t, err)
	assert.Equal(t, result.Transcript, string(data))

	match, err := CompareWithGolden(scenarioFile, result)
	require.NoError(t, err)
	assert.True(t, match)

	match, err = CompareWithGolden(scenarioFile, &Result{Transcript: "different"})
	require.NoError(t, err)
	assert.False(t, match)
}
