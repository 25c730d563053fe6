package modeling

// Constantes do modelo financeiro
const (
	// DepreciationMonths é a vida útil do equipamento (depreciação linear em 5 anos)
	DepreciationMonths = 60

	// MonthsPerYear converte a taxa de juros anual em mensal
	MonthsPerYear = 12

	// DaysPerYear é a base dos prazos de recebimento e pagamento
	DaysPerYear = 365

	// TaxRate incide sobre o EBIT positivo; prejuízo não gera crédito
	TaxRate = 0.25

	// CurrentRatioPlaceholder é fixo: o modelo não tem balanço patrimonial
	CurrentRatioPlaceholder = 1.5
)
