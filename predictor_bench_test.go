package predictor

import (
	"os"
	"testing"
	"time"

	"github.com/aouyang1/go-predictor/timedataset"
	"github.com/goccy/go-json"
	"github.com/pkg/profile"
)

var benchPredictRes []float64

func generateBenchSeries() ([]time.Time, []float64) {
	minutes := 7 * 24 * 60
	t := timedataset.GenerateT(minutes, time.Minute, time.Now)
	y := timedataset.GenerateConstY(minutes, 98.3).
		Add(timedataset.GenerateWaveY(t, 10.5, 86400.0, 1.0, 2*60*60))
	return t, y
}

func BenchmarkPredict(b *testing.B) {
	_, y := generateBenchSeries()

	var err error
	b.ResetTimer()
	for b.Loop() {
		benchPredictRes, err = Predict(y)
		if err != nil {
			panic(err)
		}
	}
}

func BenchmarkPredictStatic(b *testing.B) {
	_, y := generateBenchSeries()

	var err error
	b.ResetTimer()
	defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	for b.Loop() {
		benchPredictRes, err = PredictStatic(y, len(y))
		if err != nil {
			panic(err)
		}
	}
}

func BenchmarkPredictSeries(b *testing.B) {
	t, y := generateBenchSeries()

	var res *Results
	var err error
	b.ResetTimer()
	for b.Loop() {
		res, err = PredictSeries(t, y, 60)
		if err != nil {
			panic(err)
		}
	}

	bytes, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		panic(err)
	}
	if err := os.WriteFile("benchmark_results.json", bytes, 0o644); err != nil {
		panic(err)
	}
}
