package calculator_test

import (
	"encoding/json"
	"math"
	"testing"

	"finance-engine/calculator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumber_Float(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected float64
	}{
		{"int", 12, 12},
		{"int64", int64(-7), -7},
		{"uint8", uint8(200), 200},
		{"float32", float32(0.5), 0.5},
		{"float64", 7.25, 7.25},
		{"json.Number", json.Number("1e3"), 1000},
		{"numeric string", " 42.5 ", 42.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calculator.Num(tt.value).Float("x")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNumber_FloatTypeMismatch(t *testing.T) {
	for _, value := range []any{"abc", true, []int{1}, nil, math.NaN(), math.Inf(-1), "NaN"} {
		_, err := calculator.Num(value).Float("x")
		assert.ErrorIs(t, err, calculator.ErrTypeMismatch, "%#v", value)
	}

	_, err := calculator.Number{}.Float("x")
	assert.ErrorIs(t, err, calculator.ErrTypeMismatch)
}

func TestNumber_Whole(t *testing.T) {
	n, err := calculator.Num(12.0).Whole("months", 1)
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	_, err = calculator.Num(2.5).Whole("months", 1)
	assert.ErrorIs(t, err, calculator.ErrDomainViolation)

	_, err = calculator.Num(0).Whole("months", 1)
	assert.ErrorIs(t, err, calculator.ErrDomainViolation)

	_, err = calculator.Num(-1).Whole("months", 0)
	assert.ErrorIs(t, err, calculator.ErrDomainViolation)

	n, err = calculator.Number{}.WholeOr("compounding_per_year", 1, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestNumber_JSON(t *testing.T) {
	var in struct {
		A calculator.Number `json:"a"`
		B calculator.Number `json:"b"`
		C calculator.Number `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a": 3.5, "b": null}`), &in))

	assert.True(t, in.A.IsSet())
	assert.False(t, in.B.IsSet())
	assert.False(t, in.C.IsSet())

	a, err := in.A.Float("a")
	require.NoError(t, err)
	assert.Equal(t, 3.5, a)

	out, err := json.Marshal(in.A)
	require.NoError(t, err)
	assert.JSONEq(t, `3.5`, string(out))
}

func TestNumberList(t *testing.T) {
	floats, err := calculator.ParseNumberList("50000, 20000,,").Floats("assets")
	require.NoError(t, err)
	assert.Equal(t, []float64{50000, 20000}, floats)

	_, err = calculator.NotAList().Floats("assets")
	assert.ErrorIs(t, err, calculator.ErrTypeMismatch)

	_, err = calculator.Nums(1, "x").Floats("assets")
	var verr *calculator.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "assets[1]", verr.Field)
	assert.ErrorIs(t, err, calculator.ErrTypeMismatch)
}
