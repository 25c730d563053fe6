package modeling

import (
	"github.com/vfg2006/clinic-financial-model/internal/domain"
)

// BuildCashFlow monta o fluxo de caixa mensal a partir das premissas e da projeção.
// Os meses são processados em ordem: o saldo inicial de cada mês é o saldo final do anterior.
func BuildCashFlow(in domain.Inputs, projection domain.Projection) domain.CashFlow {
	cashFlow := make(domain.CashFlow, 0, len(projection))

	// O saldo inicial do primeiro mês é o aporte de capital
	closingCash := in.EquityInjection

	for i, month := range projection {
		row := domain.CashFlowRow{
			Month:            month.Month,
			NetProfit:        month.NetProfit,
			Depreciation:     month.Depreciation,
			DeltaReceivables: -month.TotalRevenue * float64(in.ReceivableDays) / DaysPerYear,
			DeltaPayables:    month.VariableCosts * float64(in.PayableDays) / DaysPerYear,
		}
		row.CashFromOperations = row.NetProfit + row.Depreciation + row.DeltaReceivables + row.DeltaPayables

		// Investimento em equipamento apenas no primeiro mês
		if i == 0 {
			row.CapEx = -in.EquipmentPurchase
		}

		// O aporte entra em todos os meses, como na planilha de referência
		row.EquityInjection = in.EquityInjection
		row.NetBorrowing = 0
		row.NetChangeInCash = row.CashFromOperations + row.CapEx + row.EquityInjection + row.NetBorrowing

		row.OpeningCash = closingCash
		row.ClosingCash = row.OpeningCash + row.NetChangeInCash
		closingCash = row.ClosingCash

		cashFlow = append(cashFlow, row)
	}

	return cashFlow
}
