package predictor

import (
	"bytes"
	"math"
	"testing"
	"time"

	"github.com/aouyang1/go-predictor/timedataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinePrediction(t *testing.T) {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	history, err := timedataset.NewUnivariateDataset(
		[]time.Time{start, start.Add(time.Hour)},
		[]float64{1, 2},
	)
	require.NoError(t, err)

	res := &Results{
		T:        []time.Time{start.Add(2 * time.Hour)},
		Forecast: []float64{2},
	}

	line := LinePrediction(history, res)
	require.Len(t, line.MultiSeries, 2)
	assert.Equal(t, "Historical", line.MultiSeries[0].Name)
	assert.Equal(t, "Forecast", line.MultiSeries[1].Name)
}

func TestLineTSeriesGaps(t *testing.T) {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	line := LineTSeries(
		"gaps",
		[]string{"series"},
		[]time.Time{start, start.Add(time.Hour), start.Add(2 * time.Hour)},
		[][]float64{{1, math.NaN(), 3}},
	)
	require.Len(t, line.MultiSeries, 1)
}

func TestPlotPrediction(t *testing.T) {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	tSeries := []time.Time{start, start.Add(time.Hour), start.Add(2 * time.Hour)}
	y := []float64{1, 2, 3}

	res, err := PredictSeries(tSeries, y, 2)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, PlotPrediction(&buf, tSeries, y, res))
	assert.Contains(t, buf.String(), "Prediction")

	assert.ErrorIs(t, PlotPrediction(&buf, tSeries, y, nil), ErrNoResults)
}
