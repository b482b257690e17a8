package utils

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToFloat converts a decoded JSON value to float64 using explicit type switching.
// It handles standard numeric types, json.Number and numeric strings.
func ToFloat(val any) (float64, error) {
	switch v := val.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case json.Number:
		return v.Float64()
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("not a number: %q", v)
		}
		return f, nil
	case nil:
		return 0, fmt.Errorf("missing value")
	default:
		return 0, fmt.Errorf("unsupported numeric type %T", v)
	}
}

// ToInt64 converts a decoded JSON value to int64, truncating toward zero.
func ToInt64(val any) (int64, error) {
	if n, ok := val.(json.Number); ok {
		if i, err := n.Int64(); err == nil {
			return i, nil
		}
	}
	f, err := ToFloat(val)
	if err != nil {
		return 0, err
	}
	return truncate(f)
}

// ScaleDown divides val by factor and truncates toward zero. The division is
// done in floating point so fractional raw amounts behave like integral ones.
func ScaleDown(val any, factor int64) (int64, error) {
	f, err := ToFloat(val)
	if err != nil {
		return 0, err
	}
	return truncate(f / float64(factor))
}

// truncate converts f to int64, rejecting values int64 cannot hold.
func truncate(f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("not a finite number: %v", f)
	}
	// float64(math.MaxInt64) rounds up to 2^63, which is already out of range.
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, fmt.Errorf("out of int64 range: %v", f)
	}
	return int64(f), nil
}
