package predictor

import (
	"testing"
	"time"

	"github.com/aouyang1/go-predictor/timedataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictSeries(t *testing.T) {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	testData := map[string]struct {
		t        []time.Time
		y        []float64
		horizon  int
		expected *Results
		err      error
	}{
		"no data": {
			horizon: 2,
			err:     ErrEmptyInput,
		},
		"length mismatch": {
			t:       []time.Time{start},
			y:       []float64{1, 2},
			horizon: 2,
			err:     timedataset.ErrDatasetLenMismatch,
		},
		"non monotonic": {
			t:       []time.Time{start.Add(time.Hour), start},
			y:       []float64{1, 2},
			horizon: 2,
			err:     timedataset.ErrNonMontonic,
		},
		"zero horizon": {
			t:       []time.Time{start, start.Add(time.Hour)},
			y:       []float64{1, 2},
			horizon: 0,
			err:     ErrNonPositiveHorizon,
		},
		"single point": {
			t:       []time.Time{start},
			y:       []float64{1},
			horizon: 2,
			err:     ErrCannotInferInterval,
		},
		"hourly": {
			t: []time.Time{
				start,
				start.Add(time.Hour),
				start.Add(2 * time.Hour),
			},
			y:       []float64{1, 2, 3},
			horizon: 2,
			expected: &Results{
				T: []time.Time{
					start.Add(3 * time.Hour),
					start.Add(4 * time.Hour),
				},
				Forecast: []float64{3, 3},
			},
		},
		"missing point uses most common interval": {
			t: []time.Time{
				start,
				start.Add(time.Minute),
				start.Add(2 * time.Minute),
				start.Add(5 * time.Minute),
			},
			y:       []float64{1, 2, 3, 4},
			horizon: 1,
			expected: &Results{
				T:        []time.Time{start.Add(6 * time.Minute)},
				Forecast: []float64{4},
			},
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			res, err := PredictSeries(td.t, td.y, td.horizon)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, td.expected, res)
		})
	}
}

func TestPredictSeriesWithInterval(t *testing.T) {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	res, err := PredictSeriesWithInterval([]time.Time{start}, []float64{42}, 3, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t,
		&Results{
			T: []time.Time{
				start.Add(24 * time.Hour),
				start.Add(48 * time.Hour),
				start.Add(72 * time.Hour),
			},
			Forecast: []float64{42, 42, 42},
		},
		res,
	)

	_, err = PredictSeriesWithInterval([]time.Time{start}, []float64{42}, 3, 0)
	assert.ErrorIs(t, err, ErrCannotInferInterval)
}
