package exporter

import (
	"encoding/csv"
	"io"

	"github.com/pkg/errors"

	"github.com/vfg2006/clinic-financial-model/internal/domain"
)

// WriteCSV escreve a tabela com cabeçalho, sem coluna de índice
func WriteCSV(w io.Writer, table domain.Table, precision Precision) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(table.Header()); err != nil {
		return errors.Wrap(err, "erro ao escrever cabeçalho csv")
	}

	for _, row := range table.Rows {
		record := make([]string, 0, len(row.Values)+1)
		if table.RowKey != "" {
			record = append(record, row.Label)
		}
		for _, value := range row.Values {
			record = append(record, textValue(table.Name, value, precision))
		}

		if err := writer.Write(record); err != nil {
			return errors.Wrapf(err, "erro ao escrever linha %s", row.Label)
		}
	}

	writer.Flush()
	return errors.Wrap(writer.Error(), "erro ao finalizar csv")
}
