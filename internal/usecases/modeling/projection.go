package modeling

import (
	"math"

	"github.com/vfg2006/clinic-financial-model/internal/domain"
)

// BuildProjection monta a projeção mensal de resultados a partir das premissas.
// Nenhum valor depende do mês, então as 12 linhas são idênticas exceto pelo rótulo.
func BuildProjection(in domain.Inputs) domain.Projection {
	visits := float64(in.AvgPatientVisits)

	patientRevenue := visits * in.AvgRevenuePerVisit
	productRevenue := in.MonthlyProductSales
	totalRevenue := patientRevenue + productRevenue
	variableCosts := visits * in.VariableCostPerVisit
	grossProfit := totalRevenue - variableCosts
	ebitda := grossProfit - in.FixedOverheads

	// Equipamento depreciado desde o primeiro mês
	depreciation := in.EquipmentPurchase / DepreciationMonths
	ebit := ebitda - depreciation

	// A dívida modelada é igual ao aporte de capital
	interestExpense := in.EquityInjection * in.DebtInterestRate / MonthsPerYear
	taxes := math.Max(ebit*TaxRate, 0)
	netProfit := ebit - interestExpense - taxes

	projection := make(domain.Projection, 0, domain.MonthsInHorizon)
	for _, month := range domain.Months {
		projection = append(projection, domain.ProjectionRow{
			Month:           month,
			PatientRevenue:  patientRevenue,
			ProductRevenue:  productRevenue,
			TotalRevenue:    totalRevenue,
			VariableCosts:   variableCosts,
			GrossProfit:     grossProfit,
			FixedOverheads:  in.FixedOverheads,
			EBITDA:          ebitda,
			Depreciation:    depreciation,
			EBIT:            ebit,
			InterestExpense: interestExpense,
			Taxes:           taxes,
			NetProfit:       netProfit,
		})
	}

	return projection
}
