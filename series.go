package predictor

import (
	"errors"
	"fmt"
	"time"

	"github.com/aouyang1/go-predictor/timedataset"
)

// PredictSeries repeats the last value of a time series over horizon future points. The future
// time points are spaced by the most common interval in the historical time, so at least two
// points are required. Use PredictSeriesWithInterval when the interval is known.
func PredictSeries(t []time.Time, y []float64, horizon int) (*Results, error) {
	return predictSeries(t, y, horizon, 0)
}

// PredictSeriesWithInterval repeats the last value of a time series over horizon future points
// spaced by interval.
func PredictSeriesWithInterval(t []time.Time, y []float64, horizon int, interval time.Duration) (*Results, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("interval of %s, %w", interval, ErrCannotInferInterval)
	}
	return predictSeries(t, y, horizon, interval)
}

func predictSeries(t []time.Time, y []float64, horizon int, interval time.Duration) (*Results, error) {
	td, err := timedataset.NewUnivariateDataset(t, y)
	if err != nil {
		if errors.Is(err, timedataset.ErrNoTrainingData) {
			return nil, ErrEmptyInput
		}
		return nil, fmt.Errorf("unable to create historical dataset, %w, %w", ErrInvalidInput, err)
	}

	forecast, err := PredictStatic(td.Y, horizon)
	if err != nil {
		return nil, err
	}

	tSlice := timedataset.TimeSlice(td.T)
	if interval == 0 {
		interval, err = tSlice.EstimateFreq()
		if err != nil {
			return nil, fmt.Errorf("%w, %w", ErrCannotInferInterval, err)
		}
	}

	horizonT, err := tSlice.Horizon(horizon, interval)
	if err != nil {
		return nil, fmt.Errorf("unable to generate horizon time, %w", err)
	}

	return &Results{
		T:        horizonT,
		Forecast: forecast,
	}, nil
}
