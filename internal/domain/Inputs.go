package domain

import (
	stderrors "errors"
	"strings"

	"github.com/pkg/errors"
)

// ErrNegativeInput indica premissas negativas recusadas pelo formulário
var ErrNegativeInput = stderrors.New("premissa com valor negativo")

// Inputs representa as premissas do negócio para uma execução do modelo.
// As chaves json/mapstructure são exatamente os nomes usados nos arquivos de entrada.
type Inputs struct {
	AvgPatientVisits     int     `json:"avg_patient_visits" mapstructure:"avg_patient_visits"`
	AvgRevenuePerVisit   float64 `json:"avg_revenue_per_visit" mapstructure:"avg_revenue_per_visit"`
	MonthlyProductSales  float64 `json:"monthly_product_sales" mapstructure:"monthly_product_sales"`
	FixedOverheads       float64 `json:"fixed_overheads" mapstructure:"fixed_overheads"`
	VariableCostPerVisit float64 `json:"variable_cost_per_visit" mapstructure:"variable_cost_per_visit"`
	EquipmentPurchase    float64 `json:"equipment_purchase" mapstructure:"equipment_purchase"`
	ReceivableDays       int     `json:"receivable_days" mapstructure:"receivable_days"`
	PayableDays          int     `json:"payable_days" mapstructure:"payable_days"`
	DebtInterestRate     float64 `json:"debt_interest_rate" mapstructure:"debt_interest_rate"` // Taxa anual (ex: 0.085)
	EquityInjection      float64 `json:"equity_injection" mapstructure:"equity_injection"`
}

// InputFields lista as chaves obrigatórias de um registro de premissas, na ordem do formulário
var InputFields = []string{
	"avg_patient_visits",
	"avg_revenue_per_visit",
	"monthly_product_sales",
	"fixed_overheads",
	"variable_cost_per_visit",
	"equipment_purchase",
	"receivable_days",
	"payable_days",
	"debt_interest_rate",
	"equity_injection",
}

// DefaultInputs retorna os valores iniciais do formulário de premissas
func DefaultInputs() Inputs {
	return Inputs{
		AvgPatientVisits:     1000,
		AvgRevenuePerVisit:   1500,
		MonthlyProductSales:  200000,
		FixedOverheads:       200000,
		VariableCostPerVisit: 300,
		EquipmentPurchase:    500000,
		ReceivableDays:       30,
		PayableDays:          45,
		DebtInterestRate:     0.085,
		EquityInjection:      1000000,
	}
}

// Validate verifica apenas a não negatividade das premissas.
// O cálculo não chama Validate: valores negativos se propagam aritmeticamente.
func (in Inputs) Validate() error {
	values := map[string]float64{
		"avg_patient_visits":      float64(in.AvgPatientVisits),
		"avg_revenue_per_visit":   in.AvgRevenuePerVisit,
		"monthly_product_sales":   in.MonthlyProductSales,
		"fixed_overheads":         in.FixedOverheads,
		"variable_cost_per_visit": in.VariableCostPerVisit,
		"equipment_purchase":      in.EquipmentPurchase,
		"receivable_days":         float64(in.ReceivableDays),
		"payable_days":            float64(in.PayableDays),
		"debt_interest_rate":      in.DebtInterestRate,
		"equity_injection":        in.EquityInjection,
	}

	negative := make([]string, 0)
	for _, field := range InputFields {
		if values[field] < 0 {
			negative = append(negative, field)
		}
	}

	if len(negative) > 0 {
		return errors.Wrap(ErrNegativeInput, strings.Join(negative, ", "))
	}

	return nil
}
