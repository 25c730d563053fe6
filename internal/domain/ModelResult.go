package domain

import "time"

// ChartPoint é um ponto de série temporal dos gráficos do painel
type ChartPoint struct {
	Month string  `json:"month"`
	Value float64 `json:"value"`
}

// Charts reúne as séries exibidas no painel
type Charts struct {
	TotalRevenue []ChartPoint `json:"total_revenue"`
	ClosingCash  []ChartPoint `json:"closing_cash"`
}

// ModelResult é o resultado completo de uma execução do modelo.
// Inputs já tem o cenário aplicado; RequestedInputs guarda as premissas como recebidas.
type ModelResult struct {
	RunID           string     `json:"run_id"`
	Scenario        Scenario   `json:"scenario"`
	RequestedInputs Inputs     `json:"requested_inputs"`
	Inputs          Inputs     `json:"inputs"`
	Projection      Projection `json:"projection"`
	CashFlow        CashFlow   `json:"cash_flow"`
	Ratios          Ratios     `json:"ratios"`
	Charts          Charts     `json:"charts"`
	GeneratedAt     time.Time  `json:"generated_at"`
}

// Tables retorna as três tabelas do resultado, na ordem de exibição
func (r *ModelResult) Tables() []Table {
	return []Table{
		r.Projection.Table(),
		r.CashFlow.Table(),
		r.Ratios.Table(),
	}
}

// TableByName retorna uma das tabelas do resultado pelo nome
func (r *ModelResult) TableByName(name string) (Table, bool) {
	for _, table := range r.Tables() {
		if table.Name == name {
			return table, true
		}
	}
	return Table{}, false
}
