package modeling

import (
	"github.com/vfg2006/clinic-financial-model/internal/domain"
)

// CalculateRatios calcula os indicadores do período sobre a soma dos 12 meses.
// Aporte ou taxa de juros zerados produzem ±Inf/NaN em ROE e DSCR.
func CalculateRatios(in domain.Inputs, projection domain.Projection, cashFlow domain.CashFlow) domain.Ratios {
	var ebitda, totalRevenue, netProfit float64
	for _, month := range projection {
		ebitda += month.EBITDA
		totalRevenue += month.TotalRevenue
		netProfit += month.NetProfit
	}

	var cashFromOperations float64
	for _, month := range cashFlow {
		cashFromOperations += month.CashFromOperations
	}

	// Serviço da dívida anual: juros sobre uma dívida igual ao aporte
	annualDebtService := in.DebtInterestRate * in.EquityInjection

	return domain.Ratios{
		CurrentRatio:    CurrentRatioPlaceholder,
		OperatingMargin: ebitda / totalRevenue,
		ROE:             netProfit / in.EquityInjection,
		DSCR:            cashFromOperations / annualDebtService,
	}
}
