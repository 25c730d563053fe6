package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScenario(t *testing.T) {
	tests := []struct {
		input    string
		expected Scenario
		wantErr  bool
	}{
		{input: "", expected: ScenarioBase},
		{input: "base", expected: ScenarioBase},
		{input: " Upside ", expected: ScenarioUpside},
		{input: "DOWNSIDE", expected: ScenarioDownside},
		{input: "extremo", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			scenario, err := ParseScenario(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidScenario)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, scenario)
		})
	}
}

func TestScenario_Multiplier(t *testing.T) {
	assert.Equal(t, 1.0, ScenarioBase.Multiplier())
	assert.Equal(t, 1.1, ScenarioUpside.Multiplier())
	assert.Equal(t, 0.9, ScenarioDownside.Multiplier())
}

func TestScenario_ApplyOnlyScalesVisitsAndRevenuePerVisit(t *testing.T) {
	in := DefaultInputs()

	upside := ScenarioUpside.Apply(in)
	assert.Equal(t, 1100, upside.AvgPatientVisits)
	assert.InDelta(t, 1650.0, upside.AvgRevenuePerVisit, 1e-9)

	downside := ScenarioDownside.Apply(in)
	assert.Equal(t, 900, downside.AvgPatientVisits)
	assert.InDelta(t, 1350.0, downside.AvgRevenuePerVisit, 1e-9)

	for _, adjusted := range []Inputs{upside, downside} {
		assert.Equal(t, in.MonthlyProductSales, adjusted.MonthlyProductSales)
		assert.Equal(t, in.FixedOverheads, adjusted.FixedOverheads)
		assert.Equal(t, in.VariableCostPerVisit, adjusted.VariableCostPerVisit)
		assert.Equal(t, in.EquipmentPurchase, adjusted.EquipmentPurchase)
		assert.Equal(t, in.ReceivableDays, adjusted.ReceivableDays)
		assert.Equal(t, in.PayableDays, adjusted.PayableDays)
		assert.Equal(t, in.DebtInterestRate, adjusted.DebtInterestRate)
		assert.Equal(t, in.EquityInjection, adjusted.EquityInjection)
	}

	assert.Equal(t, in, ScenarioBase.Apply(in))
	assert.Equal(t, DefaultInputs(), in)
}

func TestScenario_ApplyTruncatesVisits(t *testing.T) {
	in := Inputs{AvgPatientVisits: 7}

	assert.Equal(t, 7, ScenarioUpside.Apply(in).AvgPatientVisits)
	assert.Equal(t, 6, ScenarioDownside.Apply(in).AvgPatientVisits)
}
