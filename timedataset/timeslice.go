package timedataset

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrCannotInferFreq  = errors.New("cannot infer frequency from time data")
	ErrNonPositiveCount = errors.New("horizon count must be greater than 0")
	ErrNonPositiveFreq  = errors.New("horizon frequency must be greater than 0")
)

type TimeSlice []time.Time

func (t TimeSlice) EndTime() time.Time {
	var lastTime time.Time
	if len(t) < 1 {
		return lastTime
	}

	lastTime = t[len(t)-1]
	return lastTime
}

// EstimateFreq returns the most common spacing between consecutive time points. Ties are
// broken by the smallest spacing.
func (t TimeSlice) EstimateFreq() (time.Duration, error) {
	if len(t) < 2 {
		return 0, ErrCannotInferFreq
	}

	frequencies := make(map[time.Duration]int)
	for i := 1; i < len(t); i++ {
		delta := t[i].Sub(t[i-1])
		frequencies[delta] += 1
	}

	var maxCnt int
	var maxDelta time.Duration
	for delta, cnt := range frequencies {
		if cnt > maxCnt || (cnt == maxCnt && delta < maxDelta) {
			maxCnt = cnt
			maxDelta = delta
		}
	}
	return maxDelta, nil
}

// Horizon generates n time points after the end of the slice spaced by freq.
func (t TimeSlice) Horizon(n int, freq time.Duration) (TimeSlice, error) {
	if n <= 0 {
		return nil, fmt.Errorf("got %d, %w", n, ErrNonPositiveCount)
	}
	if freq <= 0 {
		return nil, fmt.Errorf("got %s, %w", freq, ErrNonPositiveFreq)
	}

	end := t.EndTime()
	horizon := make(TimeSlice, 0, n)
	for i := 0; i < n; i++ {
		horizon = append(horizon, end.Add(time.Duration(i+1)*freq))
	}
	return horizon, nil
}
