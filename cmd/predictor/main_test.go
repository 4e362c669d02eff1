package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aouyang1/go-predictor"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("PREDICTOR_CONFIG", "")
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestRun(t *testing.T) {
	testData := map[string]struct {
		args     []string
		expected string
		err      error
	}{
		"predict": {
			args:     []string{"predict", "1.0", "2.0", "3.0"},
			expected: "1 2 3\n",
		},
		"predict comma separated": {
			args:     []string{"predict", "1.5,2.5", "3"},
			expected: "1.5 2.5 3\n",
		},
		"predict negative values": {
			args:     []string{"predict", "--", "-1", "-2"},
			expected: "-1 -2\n",
		},
		"predict json": {
			args:     []string{"predict", "-json", "1", "2"},
			expected: "{\"result\":[1,2]}\n",
		},
		"predict empty": {
			args: []string{"predict"},
			err:  predictor.ErrEmptyVector,
		},
		"static": {
			args:     []string{"static", "-horizon", "3", "1", "2", "3", "4", "5"},
			expected: "5 5 5\n",
		},
		"static larger horizon": {
			args:     []string{"static", "-horizon", "5", "1", "2", "3"},
			expected: "3 3 3 3 3\n",
		},
		"static empty": {
			args: []string{"static", "-horizon", "3"},
			err:  predictor.ErrEmptyInput,
		},
		"static zero horizon": {
			args: []string{"static", "-horizon", "0", "1"},
			err:  predictor.ErrNonPositiveHorizon,
		},
		"static missing horizon": {
			args: []string{"static", "1"},
			err:  predictor.ErrNonPositiveHorizon,
		},
		"unknown command": {
			args: []string{"fit", "1"},
			err:  errUsage,
		},
		"no command": {
			args: []string{},
			err:  errUsage,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			stdout, _, err := runCmd(t, td.args...)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, td.expected, stdout)
		})
	}
}

func TestRunInvalidValue(t *testing.T) {
	_, _, err := runCmd(t, "predict", "1", "two")
	assert.Error(t, err)
}

func TestRunLogsFailure(t *testing.T) {
	_, stderr, err := runCmd(t, "static", "-horizon", "0", "1")
	require.Error(t, err)
	assert.Contains(t, stderr, "horizon must be greater than 0")
}

func TestRunStaticPlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prediction.html")
	stdout, _, err := runCmd(t, "static", "-horizon", "2", "-interval", "1h", "-plot", path, "1", "2", "3")
	require.NoError(t, err)
	assert.Equal(t, "3 3\n", stdout)

	html, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(html), "Prediction")
}

func TestRunStaticJSON(t *testing.T) {
	stdout, _, err := runCmd(t, "static", "-json", "-horizon", "2", "0.1", "0.30000000000000004")
	require.NoError(t, err)

	var resp struct {
		Result []float64 `json:"result"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, []float64{0.1 + 0.2, 0.1 + 0.2}, resp.Result)
}

func TestRunInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: loud\n"), 0o644))

	_, stderr, err := runCmd(t, "predict", "-config", path, "1")
	assert.Error(t, err)
	assert.Contains(t, stderr, "validate config")
}
