package domain

// Nomes das tabelas geradas pelo modelo, usados também como sufixo dos arquivos exportados
const (
	TableProjection = "projection"
	TableCashFlow   = "cashflow"
	TableRatios     = "ratios"
)

// Table é a representação genérica e ordenada de uma tabela do modelo, usada pelos exportadores
type Table struct {
	Name    string
	Title   string
	RowKey  string   // Coluna-chave (Month); vazio para tabelas de linha única
	Columns []string // Colunas de valores, sem a coluna-chave
	Rows    []TableRow
}

// TableRow é uma linha da tabela: rótulo do mês e valores na ordem de Columns
type TableRow struct {
	Label  string
	Values []float64
}

// Header retorna o cabeçalho completo, com a coluna-chave primeiro quando existir
func (t Table) Header() []string {
	if t.RowKey == "" {
		return append([]string{}, t.Columns...)
	}
	return append([]string{t.RowKey}, t.Columns...)
}

// Column retorna a série de valores de uma coluna
func (t Table) Column(name string) ([]float64, bool) {
	index := -1
	for i, column := range t.Columns {
		if column == name {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, false
	}

	series := make([]float64, 0, len(t.Rows))
	for _, row := range t.Rows {
		series = append(series, row.Values[index])
	}
	return series, true
}
