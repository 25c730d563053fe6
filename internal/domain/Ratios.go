package domain

import (
	"math"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Colunas da tabela de indicadores
const (
	ColCurrentRatio    = "Current Ratio"
	ColOperatingMargin = "Operating Margin"
	ColROE             = "ROE"
	ColDSCR            = "DSCR"
)

var RatioColumns = []string{
	ColCurrentRatio,
	ColOperatingMargin,
	ColROE,
	ColDSCR,
}

// Ratios é a tabela de linha única com os indicadores do período.
// Divisões por zero não são tratadas: o resultado é ±Inf ou NaN.
type Ratios struct {
	CurrentRatio    float64 `json:"current_ratio"`
	OperatingMargin float64 `json:"operating_margin"`
	ROE             float64 `json:"roe"`
	DSCR            float64 `json:"dscr"`
}

func (r Ratios) values() []float64 {
	return []float64{r.CurrentRatio, r.OperatingMargin, r.ROE, r.DSCR}
}

// Degenerate retorna os indicadores que não são números finitos
func (r Ratios) Degenerate() []string {
	degenerate := make([]string, 0)
	for i, value := range r.values() {
		if math.IsInf(value, 0) || math.IsNaN(value) {
			degenerate = append(degenerate, RatioColumns[i])
		}
	}
	return degenerate
}

// Table converte os indicadores para a representação genérica de exportação
func (r Ratios) Table() Table {
	return Table{
		Name:    TableRatios,
		Title:   "Key Financial Ratios",
		Columns: RatioColumns,
		Rows:    []TableRow{{Values: r.values()}},
	}
}

// MarshalJSON serializa valores não finitos como texto ("inf", "-inf", "NaN"), já que JSON não os representa
func (r Ratios) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		CurrentRatio    any `json:"current_ratio"`
		OperatingMargin any `json:"operating_margin"`
		ROE             any `json:"roe"`
		DSCR            any `json:"dscr"`
	}{
		CurrentRatio:    jsonNumber(r.CurrentRatio),
		OperatingMargin: jsonNumber(r.OperatingMargin),
		ROE:             jsonNumber(r.ROE),
		DSCR:            jsonNumber(r.DSCR),
	})
}

// FormatNonFinite retorna a grafia de um valor não finito e false quando o valor é finito
func FormatNonFinite(v float64) (string, bool) {
	switch {
	case math.IsNaN(v):
		return "NaN", true
	case math.IsInf(v, 1):
		return "inf", true
	case math.IsInf(v, -1):
		return "-inf", true
	}
	return "", false
}

func jsonNumber(v float64) any {
	if text, ok := FormatNonFinite(v); ok {
		return text
	}
	return v
}
