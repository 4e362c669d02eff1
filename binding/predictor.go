package binding

import (
	"errors"
	"fmt"

	"github.com/aouyang1/go-predictor"
)

const (
	ModuleName = "predictor"

	// DefaultMaxHorizon is the largest horizon predict_static accepts unless overridden.
	DefaultMaxHorizon = 1 << 20
)

var ErrHorizonTooLarge = errors.New("horizon exceeds the maximum")

type options struct {
	maxHorizon int
}

// Option configures the default module.
type Option func(*options)

// WithMaxHorizon bounds the horizon accepted by predict_static. Values less than 1 keep the
// default.
func WithMaxHorizon(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxHorizon = n
		}
	}
}

// Default returns a module exposing predict and predict_static.
func Default(opts ...Option) *Module {
	o := &options{maxHorizon: DefaultMaxHorizon}
	for _, opt := range opts {
		opt(o)
	}

	m := NewModule(ModuleName)
	m.MustRegister(&Function{
		Name: "predict",
		Doc:  "Predict returns the input values unchanged. Raises ValueError when input is empty.",
		Args: []string{"input"},
		Call: predict,
	})
	m.MustRegister(&Function{
		Name: "predict_static",
		Doc: fmt.Sprintf("Predict horizon future values by repeating the last value of data. Raises ValueError "+
			"when data is empty or horizon is not between 1 and %d.", o.maxHorizon),
		Args: []string{"data", "horizon"},
		Call: predictStatic(o.maxHorizon),
	})
	return m
}

func predict(args []any) (any, error) {
	input, err := ToVector(args[0])
	if err != nil {
		return nil, err
	}
	res, err := predictor.Predict(input)
	if err != nil {
		return nil, err
	}
	return FromVector(res), nil
}

func predictStatic(maxHorizon int) Func {
	return func(args []any) (any, error) {
		data, err := ToVector(args[0])
		if err != nil {
			return nil, err
		}
		horizon, err := ToHorizon(args[1])
		if err != nil {
			return nil, err
		}
		if horizon > maxHorizon {
			return nil, valueErrorf("got horizon of %d, %w of %d", horizon, ErrHorizonTooLarge, maxHorizon)
		}
		res, err := predictor.PredictStatic(data, horizon)
		if err != nil {
			return nil, err
		}
		return FromVector(res), nil
	}
}
