package exporter

import (
	stderrors "errors"
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"

	"github.com/vfg2006/clinic-financial-model/internal/domain"
	"github.com/vfg2006/clinic-financial-model/pkg/utils"
)

var (
	ErrUnsupportedFormat    = stderrors.New("formato de exportação não suportado")
	ErrUnsupportedPrecision = stderrors.New("precisão de exportação não suportada")
)

// Format é o formato dos arquivos exportados
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// Precision define como os valores são gravados: arredondados ou com todos os dígitos
type Precision string

const (
	PrecisionRounded Precision = "rounded"
	PrecisionFull    Precision = "full"
)

const (
	moneyPlaces = 2
	ratioPlaces = 4
)

// ParseFormat interpreta o formato de exportação; vazio significa csv
func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	}
	return "", errors.Wrapf(ErrUnsupportedFormat, "%q (valores aceitos: csv, xlsx)", value)
}

// ParsePrecision interpreta a precisão de exportação; vazio significa rounded
func ParsePrecision(value string) (Precision, error) {
	switch Precision(strings.ToLower(strings.TrimSpace(value))) {
	case "", PrecisionRounded:
		return PrecisionRounded, nil
	case PrecisionFull:
		return PrecisionFull, nil
	}
	return "", errors.Wrapf(ErrUnsupportedPrecision, "%q (valores aceitos: rounded, full)", value)
}

func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv"
}

// FileName monta o nome do arquivo de uma tabela: <prefixo>_<tabela>.<extensão>
func FileName(prefix, table string, format Format) string {
	return fmt.Sprintf("%s_%s.%s", prefix, table, format)
}

// places retorna as casas decimais de uma tabela: indicadores são frações, o restante é dinheiro
func places(tableName string) int32 {
	if tableName == domain.TableRatios {
		return ratioPlaces
	}
	return moneyPlaces
}

// FormatValue formata um valor arredondado para exportação textual
func FormatValue(tableName string, v float64) string {
	if text, ok := domain.FormatNonFinite(v); ok {
		return text
	}
	return utils.FormatFixed(v, places(tableName))
}

// textValue formata um valor de csv. Com precisão completa o valor sai com todos os dígitos
// e NaN vira campo vazio, como no csv do pandas.
func textValue(tableName string, v float64, precision Precision) string {
	if precision != PrecisionFull {
		return FormatValue(tableName, v)
	}
	if math.IsNaN(v) {
		return ""
	}
	if text, ok := domain.FormatNonFinite(v); ok {
		return text
	}
	return utils.FormatExact(v)
}

// cellValue retorna o valor de uma célula de planilha: número ou texto para não finitos
func cellValue(tableName string, v float64, precision Precision) interface{} {
	if text, ok := domain.FormatNonFinite(v); ok {
		return text
	}
	if precision == PrecisionFull {
		return v
	}
	return utils.RoundTo(v, places(tableName))
}
