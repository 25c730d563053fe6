package domain

// Colunas da projeção de resultados, na ordem de exportação
const (
	ColPatientRevenue  = "Patient Revenue"
	ColProductRevenue  = "Product Revenue"
	ColTotalRevenue    = "Total Revenue"
	ColVariableCosts   = "Variable Costs"
	ColGrossProfit     = "Gross Profit"
	ColFixedOverheads  = "Fixed Overheads"
	ColEBITDA          = "EBITDA"
	ColDepreciation    = "Depreciation"
	ColEBIT            = "EBIT"
	ColInterestExpense = "Interest Expense"
	ColTaxes           = "Taxes"
	ColNetProfit       = "Net Profit"
)

var ProjectionColumns = []string{
	ColPatientRevenue,
	ColProductRevenue,
	ColTotalRevenue,
	ColVariableCosts,
	ColGrossProfit,
	ColFixedOverheads,
	ColEBITDA,
	ColDepreciation,
	ColEBIT,
	ColInterestExpense,
	ColTaxes,
	ColNetProfit,
}

// ProjectionRow representa o DRE projetado de um mês
type ProjectionRow struct {
	Month           string  `json:"month"`
	PatientRevenue  float64 `json:"patient_revenue"`
	ProductRevenue  float64 `json:"product_revenue"`
	TotalRevenue    float64 `json:"total_revenue"`
	VariableCosts   float64 `json:"variable_costs"`
	GrossProfit     float64 `json:"gross_profit"`
	FixedOverheads  float64 `json:"fixed_overheads"`
	EBITDA          float64 `json:"ebitda"`
	Depreciation    float64 `json:"depreciation"`
	EBIT            float64 `json:"ebit"`
	InterestExpense float64 `json:"interest_expense"`
	Taxes           float64 `json:"taxes"`
	NetProfit       float64 `json:"net_profit"`
}

// Projection é a projeção mensal de resultados, uma linha por mês do eixo temporal
type Projection []ProjectionRow

func (r ProjectionRow) values() []float64 {
	return []float64{
		r.PatientRevenue,
		r.ProductRevenue,
		r.TotalRevenue,
		r.VariableCosts,
		r.GrossProfit,
		r.FixedOverheads,
		r.EBITDA,
		r.Depreciation,
		r.EBIT,
		r.InterestExpense,
		r.Taxes,
		r.NetProfit,
	}
}

// Table converte a projeção para a representação genérica de exportação
func (p Projection) Table() Table {
	rows := make([]TableRow, 0, len(p))
	for _, row := range p {
		rows = append(rows, TableRow{Label: row.Month, Values: row.values()})
	}

	return Table{
		Name:    TableProjection,
		Title:   "Revenue & Profit Projection",
		RowKey:  MonthColumn,
		Columns: ProjectionColumns,
		Rows:    rows,
	}
}
