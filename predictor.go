// Package predictor provides placeholder time series predictions over a historical series of
// float64 observations. Predict passes the history through unchanged and PredictStatic repeats
// the last observation over a forecast horizon.
package predictor

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Predict returns a copy of the input as the prediction. The input must contain at least one
// value.
func Predict(input []float64) ([]float64, error) {
	if len(input) == 0 {
		return nil, ErrEmptyVector
	}

	res := make([]float64, len(input))
	copy(res, input)
	return res, nil
}

// PredictStatic predicts horizon future values by repeating the last value of data. An empty
// data slice is rejected before the horizon is checked.
func PredictStatic(data []float64, horizon int) ([]float64, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	if horizon <= 0 {
		return nil, fmt.Errorf("got horizon of %d, %w", horizon, ErrNonPositiveHorizon)
	}

	res := make([]float64, horizon)
	floats.AddConst(data[len(data)-1], res)
	return res, nil
}
