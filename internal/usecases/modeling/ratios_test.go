package modeling

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/clinic-financial-model/internal/domain"
)

func TestCalculateRatios_ReferenceExample(t *testing.T) {
	in := referenceInputs()
	projection := BuildProjection(in)
	cashFlow := BuildCashFlow(in, projection)

	ratios := CalculateRatios(in, projection, cashFlow)

	assert.Equal(t, 1.5, ratios.CurrentRatio)
	assert.InDelta(t, 1200000.0/1700000.0, ratios.OperatingMargin, 1e-12)
	assert.InDelta(t, 12*projection[0].NetProfit/in.EquityInjection, ratios.ROE, 1e-9)
	assert.InDelta(t, 12*cashFlow[0].CashFromOperations/(in.DebtInterestRate*in.EquityInjection), ratios.DSCR, 1e-9)
	assert.InDelta(t, 10.64, ratios.ROE, 0.005)
	assert.InDelta(t, 111.85, ratios.DSCR, 0.005)
	assert.Empty(t, ratios.Degenerate())
}

func TestCalculateRatios_DivisionByZeroPropagates(t *testing.T) {
	tests := []struct {
		name       string
		inputs     domain.Inputs
		degenerate []string
		validate   func(t *testing.T, ratios domain.Ratios)
	}{
		{
			name: "Aporte zero - ROE e DSCR infinitos",
			inputs: func() domain.Inputs {
				in := referenceInputs()
				in.EquityInjection = 0
				return in
			}(),
			degenerate: []string{domain.ColROE, domain.ColDSCR},
			validate: func(t *testing.T, ratios domain.Ratios) {
				assert.True(t, math.IsInf(ratios.ROE, 1))
				assert.True(t, math.IsInf(ratios.DSCR, 1))
			},
		},
		{
			name: "Taxa de juros zero - apenas DSCR infinito",
			inputs: func() domain.Inputs {
				in := referenceInputs()
				in.DebtInterestRate = 0
				return in
			}(),
			degenerate: []string{domain.ColDSCR},
			validate: func(t *testing.T, ratios domain.Ratios) {
				assert.False(t, math.IsInf(ratios.ROE, 0))
				assert.True(t, math.IsInf(ratios.DSCR, 1))
			},
		},
		{
			name:       "Premissas zeradas - tudo indefinido exceto o índice de liquidez",
			inputs:     domain.Inputs{},
			degenerate: []string{domain.ColOperatingMargin, domain.ColROE, domain.ColDSCR},
			validate: func(t *testing.T, ratios domain.Ratios) {
				assert.Equal(t, CurrentRatioPlaceholder, ratios.CurrentRatio)
				assert.True(t, math.IsNaN(ratios.OperatingMargin))
				assert.True(t, math.IsNaN(ratios.ROE))
				assert.True(t, math.IsNaN(ratios.DSCR))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			projection := BuildProjection(tt.inputs)
			cashFlow := BuildCashFlow(tt.inputs, projection)

			ratios := CalculateRatios(tt.inputs, projection, cashFlow)

			assert.Equal(t, tt.degenerate, ratios.Degenerate())
			tt.validate(t, ratios)
		})
	}
}

func TestModelChain_Idempotent(t *testing.T) {
	in := referenceInputs()

	firstProjection := BuildProjection(in)
	firstCashFlow := BuildCashFlow(in, firstProjection)
	firstRatios := CalculateRatios(in, firstProjection, firstCashFlow)

	secondProjection := BuildProjection(in)
	secondCashFlow := BuildCashFlow(in, secondProjection)
	secondRatios := CalculateRatios(in, secondProjection, secondCashFlow)

	assert.Equal(t, firstProjection, secondProjection)
	assert.Equal(t, firstCashFlow, secondCashFlow)
	assert.Equal(t, firstRatios, secondRatios)
	assert.Equal(t, referenceInputs(), in)
}
