package journal

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVJournal(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	runsPath := filepath.Join(dir, "runs.csv")
	trialsPath := filepath.Join(dir, "trials.csv")

	j, err := NewCSV(runsPath, trialsPath)
	require.NoError(t, err)

	run := testRun()
	require.NoError(t, j.RecordRun(run))
	require.NoError(t, j.RecordTrials([]TrialRecord{
		{RunID: run.RunID, TrialIndex: 0, FinalPrice: 812.5, CAGR: 0.072, MaxDrawdown: -0.31, Loss: false},
		{RunID: run.RunID, TrialIndex: 1, FinalPrice: 64, CAGR: -0.015, MaxDrawdown: -0.62, Loss: true},
	}))
	require.NoError(t, j.Close())

	runRows := readCSV(t, runsPath)
	require.Len(t, runRows, 2) // header + one run
	assert.Equal(t, "run_id", runRows[0][0])
	assert.Equal(t, run.RunID, runRows[1][0])
	assert.Equal(t, "100", runRows[1][2])
	assert.Equal(t, "0.1", runRows[1][12])

	trialRows := readCSV(t, trialsPath)
	require.Len(t, trialRows, 3) // header + two trials
	assert.Equal(t, []string{"run_id", "trial_index", "final_price", "cagr", "max_drawdown", "loss"}, trialRows[0])
	assert.Equal(t, "0", trialRows[1][1])
	assert.Equal(t, "false", trialRows[1][5])
	assert.Equal(t, "1", trialRows[2][1])
	assert.Equal(t, "true", trialRows[2][5])
}

func TestNewCSVBadTrialsPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	runsPath := filepath.Join(dir, "runs.csv")
	trialsPath := filepath.Join(dir, "missing", "trials.csv")

	j, err := NewCSV(runsPath, trialsPath)
	assert.Error(t, err)
	assert.Nil(t, j)

	// The runs file was already created; its handle must not stay open.
	assert.NoError(t, os.Remove(runsPath))
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}
