package modeling

import (
	"context"
	"time"

	"github.com/vfg2006/clinic-financial-model/internal/domain"
	"github.com/vfg2006/clinic-financial-model/pkg/apiErrors"
	"github.com/vfg2006/clinic-financial-model/pkg/log"
	"github.com/vfg2006/clinic-financial-model/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_modeler.go -package=mocks

// Modeler executa o modelo financeiro para os colaboradores (API, CLI e agendador)
type Modeler interface {
	// Run aplica o cenário às premissas e executa projeção, fluxo de caixa e indicadores em sequência
	Run(ctx context.Context, inputs domain.Inputs, scenario domain.Scenario) (*domain.ModelResult, error)

	// Defaults retorna as premissas iniciais do formulário
	Defaults() domain.Inputs
}

type Service struct {
	generateID func() (string, error)
	now        func() time.Time
}

func NewService() Modeler {
	return &Service{
		generateID: utils.GenerateID,
		now:        time.Now,
	}
}

func (s *Service) Defaults() domain.Inputs {
	return domain.DefaultInputs()
}

func (s *Service) Run(ctx context.Context, inputs domain.Inputs, scenario domain.Scenario) (*domain.ModelResult, error) {
	logger := log.ForContext(ctx)

	scenario, err := domain.ParseScenario(string(scenario))
	if err != nil {
		return nil, NewModelError(err, apiErrors.ErrInvalidRequest, "")
	}

	runID, err := s.generateID()
	if err != nil {
		return nil, NewModelError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}

	adjusted := scenario.Apply(inputs)

	projection := BuildProjection(adjusted)
	cashFlow := BuildCashFlow(adjusted, projection)
	ratios := CalculateRatios(adjusted, projection, cashFlow)

	result := &domain.ModelResult{
		RunID:           runID,
		Scenario:        scenario,
		RequestedInputs: inputs,
		Inputs:          adjusted,
		Projection:      projection,
		CashFlow:        cashFlow,
		Ratios:          ratios,
		Charts:          buildCharts(projection, cashFlow),
		GeneratedAt:     s.now(),
	}

	if degenerate := ratios.Degenerate(); len(degenerate) > 0 {
		logger.WithFields(log.Fields{
			"run_id":                  runID,
			"model_degenerate_ratios": degenerate,
		}).Warnf("model-run: indicadores sem valor finito (divisão por zero): %v", degenerate)
	}

	logger.WithFields(log.Fields{
		"run_id":   runID,
		"scenario": scenario,
	}).Info("model-run: modelo calculado com sucesso")

	return result, nil
}

// buildCharts extrai as séries de receita total e saldo final de caixa para o painel
func buildCharts(projection domain.Projection, cashFlow domain.CashFlow) domain.Charts {
	charts := domain.Charts{
		TotalRevenue: make([]domain.ChartPoint, 0, len(projection)),
		ClosingCash:  make([]domain.ChartPoint, 0, len(cashFlow)),
	}

	for _, month := range projection {
		charts.TotalRevenue = append(charts.TotalRevenue, domain.ChartPoint{Month: month.Month, Value: month.TotalRevenue})
	}

	for _, month := range cashFlow {
		charts.ClosingCash = append(charts.ClosingCash, domain.ChartPoint{Month: month.Month, Value: month.ClosingCash})
	}

	return charts
}
