package timedataset

import (
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
)

func GenerateT(n int, interval time.Duration, nowFunc func() time.Time) []time.Time {
	t := make([]time.Time, 0, n)
	ct := time.Unix(nowFunc().Unix()/60*60, 0).Add(-time.Duration(n) * interval).UTC()
	for i := 0; i < n; i++ {
		t = append(t, ct.Add(interval*time.Duration(i)))
	}
	return t
}

type Series []float64

func (s Series) Add(src Series) Series {
	floats.Add(s, src)
	return s
}

func GenerateConstY(n int, val float64) Series {
	y := make(Series, n)
	floats.AddConst(val, y)
	return y
}

func GenerateWaveY(t []time.Time, amp, periodSec, order, timeOffset float64) Series {
	n := len(t)
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		val := amp * math.Sin(2.0*math.Pi*order/periodSec*(float64(t[i].Unix())+timeOffset))
		y = append(y, val)
	}
	return Series(y)
}
