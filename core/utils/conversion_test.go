package utils_test

import (
	"encoding/json"
	"math"
	"testing"

	"gdkp-ledger/core/utils"

	"github.com/stretchr/testify/assert"
)

func TestToInt64(t *testing.T) {
	tests := []struct {
		name    string
		val     any
		want    int64
		wantErr bool
	}{
		{"Float", float64(1500), 1500, false},
		{"FloatTruncates", 12.9, 12, false},
		{"NegativeTruncatesTowardZero", -12.9, -12, false},
		{"Int", 7, 7, false},
		{"JSONNumber", json.Number("42"), 42, false},
		{"JSONNumberFloat", json.Number("42.7"), 42, false},
		{"String", "300", 300, false},
		{"StringFloat", " 300.5 ", 300, false},
		{"BadString", "abc", 0, true},
		{"Nil", nil, 0, true},
		{"Bool", true, 0, true},
		{"AboveInt64", 1e19, 0, true},
		{"BelowInt64", -1e19, 0, true},
		{"TwoToThe63", math.Ldexp(1, 63), 0, true},
		{"HugeJSONNumber", json.Number("99999999999999999999"), 0, true},
		{"MinInt64", float64(-1 << 63), -1 << 63, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := utils.ToInt64(tt.val)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScaleDown(t *testing.T) {
	tests := []struct {
		name string
		val  any
		want int64
	}{
		{"Exact", float64(50000), 5},
		{"Truncates", float64(59999), 5},
		{"BelowFactor", float64(9999), 0},
		{"Negative", float64(-15000), -1},
		{"Fractional", 123456.78, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := utils.ScaleDown(tt.val, 10000)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := utils.ScaleDown(nil, 10000)
	assert.Error(t, err)

	_, err = utils.ScaleDown(1e30, 10000)
	assert.Error(t, err)
}
