package predictor

import "time"

// Results holds the predicted values aligned with the time points they were predicted for
type Results struct {
	T        []time.Time `json:"time"`
	Forecast []float64   `json:"forecast"`
}
