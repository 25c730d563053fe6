package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundTo(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{name: "zero", input: 0, expected: 0},
		{name: "depreciação mensal", input: 500000.0 / 60, expected: 8333.33},
		{name: "arredonda para cima", input: 297916.666666, expected: 297916.67},
		{name: "valor negativo", input: -139726.02739726, expected: -139726.03},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RoundTo(tt.input, 2))
		})
	}
}

func TestRoundTo_NonFinite(t *testing.T) {
	assert.True(t, math.IsInf(RoundTo(math.Inf(1), 2), 1))
	assert.True(t, math.IsInf(RoundTo(math.Inf(-1), 2), -1))
	assert.True(t, math.IsNaN(RoundTo(math.NaN(), 2)))
}

func TestFormatFixed(t *testing.T) {
	assert.Equal(t, "1700000.00", FormatFixed(1700000, 2))
	assert.Equal(t, "0.7059", FormatFixed(1200000.0/1700000.0, 4))
	assert.Equal(t, "-500000.00", FormatFixed(-500000, 2))
}

func TestFormatExact(t *testing.T) {
	assert.Equal(t, "8333.333333333334", FormatExact(500000.0/60))
	assert.Equal(t, "1700000", FormatExact(1700000))
	assert.Equal(t, "-0.085", FormatExact(-0.085))
}

func TestGenerateID(t *testing.T) {
	first, err := GenerateID()
	assert.NoError(t, err)
	assert.Len(t, first, runIDLength)

	second, err := GenerateID()
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)
}
