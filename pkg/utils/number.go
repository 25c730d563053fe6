package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

// RoundTo arredonda com aritmética decimal para evitar resíduos de ponto flutuante (ex: 8333.335)
func RoundTo(f float64, places int32) float64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}

	return decimal.NewFromFloat(f).Round(places).InexactFloat64()
}

// FormatFixed formata com casas decimais fixas; o chamador trata valores não finitos
func FormatFixed(f float64, places int32) string {
	return decimal.NewFromFloat(f).StringFixed(places)
}

// FormatExact formata com os dígitos mínimos que identificam o float64, sem arredondamento
func FormatExact(f float64) string {
	return decimal.NewFromFloat(f).String()
}
