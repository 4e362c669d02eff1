package binding

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"

	"github.com/spf13/cast"
)

// ToVector converts a host list into a native float64 vector preserving element order. Numeric
// slices are copied directly and generic lists are coerced element by element. Strings, booleans
// and nil elements are rejected.
func ToVector(v any) ([]float64, error) {
	switch vals := v.(type) {
	case []float64:
		res := make([]float64, len(vals))
		copy(res, vals)
		return res, nil
	case []float32:
		res := make([]float64, len(vals))
		for i, val := range vals {
			res[i] = float64(val)
		}
		return res, nil
	case []int:
		res := make([]float64, len(vals))
		for i, val := range vals {
			res[i] = float64(val)
		}
		return res, nil
	case []int64:
		res := make([]float64, len(vals))
		for i, val := range vals {
			res[i] = float64(val)
		}
		return res, nil
	case []any:
		res := make([]float64, len(vals))
		for i, val := range vals {
			f, err := toFloat(val)
			if err != nil {
				return nil, typeErrorf("element %d, %v", i, err)
			}
			res[i] = f
		}
		return res, nil
	case nil:
		return nil, typeErrorf("expected a list of floats, got None")
	default:
		return nil, typeErrorf("expected a list of floats, got %T", v)
	}
}

func toFloat(v any) (float64, error) {
	switch v.(type) {
	case nil:
		return 0, errors.New("must be real number, not None")
	case string:
		return 0, errors.New("must be real number, not str")
	case bool:
		return 0, errors.New("must be real number, not bool")
	}
	return cast.ToFloat64E(v)
}

// ToHorizon converts a host integer into a native int. Floating point values are accepted only
// when they are integral.
func ToHorizon(v any) (int, error) {
	switch val := v.(type) {
	case nil:
		return 0, typeErrorf("horizon must be an integer, not None")
	case string:
		return 0, typeErrorf("horizon must be an integer, not str")
	case bool:
		return 0, typeErrorf("horizon must be an integer, not bool")
	case json.Number:
		i, err := val.Int64()
		if err == nil && i >= math.MinInt && i <= math.MaxInt {
			return int(i), nil
		}
		f, ferr := val.Float64()
		if ferr != nil && !errors.Is(ferr, strconv.ErrRange) {
			return 0, typeErrorf("horizon must be an integer, got %s", val)
		}
		return ToHorizon(f)
	case float64:
		if math.IsNaN(val) || val != math.Trunc(val) {
			return 0, typeErrorf("horizon must be an integer, got %v", val)
		}
		if val < math.MinInt || val >= -math.MinInt {
			return 0, valueErrorf("horizon %v is out of range", val)
		}
		return int(val), nil
	case float32:
		return ToHorizon(float64(val))
	}

	h, err := cast.ToIntE(v)
	if err != nil {
		return 0, typeErrorf("horizon must be an integer, %v", err)
	}
	return h, nil
}

// FromVector converts a native vector into a host list.
func FromVector(vals []float64) []any {
	res := make([]any, len(vals))
	for i, val := range vals {
		res[i] = val
	}
	return res
}
