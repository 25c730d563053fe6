package domain

import (
	stderrors "errors"
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidScenario indica um cenário desconhecido
var ErrInvalidScenario = stderrors.New("cenário inválido")

// Scenario é a variação aplicada às premissas de atendimento antes do cálculo
type Scenario string

const (
	ScenarioBase     Scenario = "base"
	ScenarioUpside   Scenario = "upside"
	ScenarioDownside Scenario = "downside"
)

// Multiplicadores de cada cenário
const (
	baseMultiplier     = 1.0
	upsideMultiplier   = 1.1
	downsideMultiplier = 0.9
)

// Scenarios lista os cenários na ordem em que aparecem no formulário
var Scenarios = []Scenario{ScenarioBase, ScenarioUpside, ScenarioDownside}

// ParseScenario interpreta o nome do cenário; vazio significa base
func ParseScenario(value string) (Scenario, error) {
	normalized := Scenario(strings.ToLower(strings.TrimSpace(value)))
	if normalized == "" {
		return ScenarioBase, nil
	}

	for _, scenario := range Scenarios {
		if normalized == scenario {
			return scenario, nil
		}
	}

	return "", errors.Wrapf(ErrInvalidScenario, "%q (valores aceitos: base, upside, downside)", value)
}

// Multiplier retorna o fator do cenário
func (s Scenario) Multiplier() float64 {
	switch s {
	case ScenarioUpside:
		return upsideMultiplier
	case ScenarioDownside:
		return downsideMultiplier
	default:
		return baseMultiplier
	}
}

// Apply escala apenas o número de atendimentos (truncado) e a receita por atendimento.
// Vendas de produtos, custos e condições de financiamento não mudam.
func (s Scenario) Apply(in Inputs) Inputs {
	factor := s.Multiplier()
	in.AvgPatientVisits = int(float64(in.AvgPatientVisits) * factor)
	in.AvgRevenuePerVisit = in.AvgRevenuePerVisit * factor
	return in
}
