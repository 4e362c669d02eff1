package predictor

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/aouyang1/go-predictor/timedataset"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// LineTSeries generates an echart multi-line chart for some arbitrary time/value combination. The input
// y is a slice of series that must have the same length as the input time slice. NaN values are
// left as gaps in the line.
func LineTSeries(title string, seriesName []string, t []time.Time, y [][]float64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
	)

	lineData := make([][]opts.LineData, len(y))
	for i := 0; i < len(y); i++ {
		lineData[i] = make([]opts.LineData, 0, len(y[i]))
		for j := 0; j < len(y[i]); j++ {
			if math.IsNaN(y[i][j]) {
				lineData[i] = append(lineData[i], opts.LineData{Value: nil})
				continue
			}
			lineData[i] = append(lineData[i], opts.LineData{Value: y[i][j]})
		}
	}

	line = line.SetXAxis(t)
	for i, series := range seriesName {
		line = line.AddSeries(series, lineData[i])
	}

	return line
}

// LinePrediction generates an echart line chart with the historical series followed by the
// predicted values on a shared time axis.
func LinePrediction(history *timedataset.TimeDataset, res *Results) *charts.Line {
	n := len(history.T) + len(res.T)
	t := make([]time.Time, 0, n)
	t = append(t, history.T...)
	t = append(t, res.T...)

	actual := make([]float64, n)
	forecast := make([]float64, n)
	for i := 0; i < n; i++ {
		if i < len(history.Y) {
			actual[i] = history.Y[i]
			forecast[i] = math.NaN()
			continue
		}
		actual[i] = math.NaN()
		forecast[i] = res.Forecast[i-len(history.Y)]
	}

	return LineTSeries(
		"Prediction",
		[]string{"Historical", "Forecast"},
		t,
		[][]float64{actual, forecast},
	)
}

// PlotPrediction uses the Apache Echarts library to render an html page showing the historical
// series and its prediction.
func PlotPrediction(w io.Writer, t []time.Time, y []float64, res *Results) error {
	if res == nil || len(res.T) == 0 {
		return ErrNoResults
	}
	history, err := timedataset.NewUnivariateDataset(t, y)
	if err != nil {
		return fmt.Errorf("unable to create historical dataset, %w", err)
	}

	page := components.NewPage()
	page.AddCharts(LinePrediction(history, res))
	return page.Render(w)
}
