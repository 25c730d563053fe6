package domain

// Colunas da demonstração de fluxo de caixa, com a grafia das planilhas exportadas
const (
	ColCFNetProfit        = "Net Profit"
	ColCFDepreciation     = "+ Depreciation"
	ColDeltaReceivables   = "Δ Receivables"
	ColDeltaPayables      = "Δ Payables"
	ColCashFromOperations = "Cash from Operations"
	ColCapEx              = "CapEx"
	ColEquityInjection    = "Equity Injection"
	ColNetBorrowing       = "Net Borrowing"
	ColNetChangeInCash    = "Net Change in Cash"
	ColOpeningCash        = "Opening Cash"
	ColClosingCash        = "Closing Cash"
)

var CashFlowColumns = []string{
	ColCFNetProfit,
	ColCFDepreciation,
	ColDeltaReceivables,
	ColDeltaPayables,
	ColCashFromOperations,
	ColCapEx,
	ColEquityInjection,
	ColNetBorrowing,
	ColNetChangeInCash,
	ColOpeningCash,
	ColClosingCash,
}

// CashFlowRow representa o fluxo de caixa de um mês
type CashFlowRow struct {
	Month              string  `json:"month"`
	NetProfit          float64 `json:"net_profit"`
	Depreciation       float64 `json:"depreciation"`
	DeltaReceivables   float64 `json:"delta_receivables"`
	DeltaPayables      float64 `json:"delta_payables"`
	CashFromOperations float64 `json:"cash_from_operations"`
	CapEx              float64 `json:"capex"`
	EquityInjection    float64 `json:"equity_injection"`
	NetBorrowing       float64 `json:"net_borrowing"`
	NetChangeInCash    float64 `json:"net_change_in_cash"`
	OpeningCash        float64 `json:"opening_cash"`
	ClosingCash        float64 `json:"closing_cash"`
}

// CashFlow é a demonstração mensal de fluxo de caixa; o saldo final de um mês é o saldo inicial do seguinte
type CashFlow []CashFlowRow

func (r CashFlowRow) values() []float64 {
	return []float64{
		r.NetProfit,
		r.Depreciation,
		r.DeltaReceivables,
		r.DeltaPayables,
		r.CashFromOperations,
		r.CapEx,
		r.EquityInjection,
		r.NetBorrowing,
		r.NetChangeInCash,
		r.OpeningCash,
		r.ClosingCash,
	}
}

// Table converte o fluxo de caixa para a representação genérica de exportação
func (c CashFlow) Table() Table {
	rows := make([]TableRow, 0, len(c))
	for _, row := range c {
		rows = append(rows, TableRow{Label: row.Month, Values: row.values()})
	}

	return Table{
		Name:    TableCashFlow,
		Title:   "Statement of Cash Flows",
		RowKey:  MonthColumn,
		Columns: CashFlowColumns,
		Rows:    rows,
	}
}
