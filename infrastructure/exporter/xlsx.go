package exporter

import (
	"io"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/vfg2006/clinic-financial-model/internal/domain"
)

const defaultSheet = "Sheet1"

// WriteXLSX escreve a tabela numa planilha com o nome da tabela.
// Valores finitos são gravados como números; não finitos como texto.
func WriteXLSX(w io.Writer, table domain.Table, precision Precision) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := table.Name
	if err := f.SetSheetName(defaultSheet, sheet); err != nil {
		return errors.Wrap(err, "erro ao nomear planilha")
	}

	header := table.Header()
	headerRow := make([]interface{}, 0, len(header))
	for _, column := range header {
		headerRow = append(headerRow, column)
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return errors.Wrap(err, "erro ao escrever cabeçalho xlsx")
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return errors.Wrap(err, "erro ao criar estilo")
	}
	lastHeaderCell, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return errors.Wrap(err, "erro ao calcular célula")
	}
	if err := f.SetCellStyle(sheet, "A1", lastHeaderCell, bold); err != nil {
		return errors.Wrap(err, "erro ao aplicar estilo")
	}

	for i, row := range table.Rows {
		values := make([]interface{}, 0, len(row.Values)+1)
		if table.RowKey != "" {
			values = append(values, row.Label)
		}
		for _, value := range row.Values {
			values = append(values, cellValue(table.Name, value, precision))
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errors.Wrap(err, "erro ao calcular célula")
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return errors.Wrapf(err, "erro ao escrever linha %s", row.Label)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return errors.Wrap(err, "erro ao gravar xlsx")
	}

	return nil
}
