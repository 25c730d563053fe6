package exporter

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/vfg2006/clinic-financial-model/internal/domain"
	"github.com/vfg2006/clinic-financial-model/pkg/log"
)

// Exporter grava as tabelas de um resultado no formato configurado
type Exporter struct {
	format    Format
	precision Precision
}

type Option func(*Exporter)

// WithPrecision troca o arredondamento padrão dos valores exportados
func WithPrecision(precision Precision) Option {
	return func(e *Exporter) {
		e.precision = precision
	}
}

func New(format Format, opts ...Option) *Exporter {
	e := &Exporter{format: format, precision: PrecisionRounded}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Exporter) Format() Format {
	return e.format
}

func (e *Exporter) Precision() Precision {
	return e.precision
}

// Write escreve uma tabela no formato do exportador
func (e *Exporter) Write(w io.Writer, table domain.Table) error {
	switch e.format {
	case FormatCSV:
		return WriteCSV(w, table, e.precision)
	case FormatXLSX:
		return WriteXLSX(w, table, e.precision)
	}
	return errors.Wrapf(ErrUnsupportedFormat, "%q", e.format)
}

// WriteAll grava as três tabelas em <prefixo>_projection, <prefixo>_cashflow e <prefixo>_ratios,
// retornando os caminhos na ordem de gravação
func (e *Exporter) WriteAll(prefix string, result *domain.ModelResult) ([]string, error) {
	if dir := filepath.Dir(prefix); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrapf(err, "erro ao criar diretório %s", dir)
		}
	}

	paths := make([]string, 0, 3)
	for _, table := range result.Tables() {
		path := FileName(prefix, table.Name, e.format)
		if err := e.writeFile(path, table); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}

	log.L.WithFields(log.Fields{
		"run_id":           result.RunID,
		"export_format":    e.format,
		"export_precision": e.precision,
		"export_files":     paths,
	}).Info("exporter: tabelas gravadas")

	return paths, nil
}

func (e *Exporter) writeFile(path string, table domain.Table) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "erro ao criar arquivo %s", path)
	}
	defer file.Close()

	if err := e.Write(file, table); err != nil {
		return errors.Wrapf(err, "erro ao exportar %s", path)
	}

	return file.Close()
}
