package exporter

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/vfg2006/clinic-financial-model/internal/domain"
)

var reportPage = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
{{.Body}}</body>
</html>
`))

const reportTitle = "Optometry Financial Model"

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// RenderMarkdown monta o relatório do resultado: as três tabelas e as séries dos gráficos
func RenderMarkdown(result *domain.ModelResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", reportTitle)
	fmt.Fprintf(&b, "Run `%s`, scenario **%s**.\n\n", result.RunID, result.Scenario)

	for _, table := range result.Tables() {
		fmt.Fprintf(&b, "## %s\n\n", table.Title)
		writeMarkdownTable(&b, table)
		b.WriteString("\n")
	}

	b.WriteString("## Dashboard Charts\n\n")
	writeMarkdownTable(&b, chartsTable(result.Charts))

	if degenerate := result.Ratios.Degenerate(); len(degenerate) > 0 {
		fmt.Fprintf(&b, "\n> Indicadores sem valor finito: %s\n", strings.Join(degenerate, ", "))
	}

	return b.String()
}

// RenderReport converte o relatório em Markdown para uma página HTML
func RenderReport(result *domain.ModelResult) ([]byte, error) {
	var body bytes.Buffer
	if err := markdown.Convert([]byte(RenderMarkdown(result)), &body); err != nil {
		return nil, errors.Wrap(err, "erro ao converter relatório")
	}

	var page bytes.Buffer
	err := reportPage.Execute(&page, struct {
		Title string
		Body  template.HTML
	}{
		Title: reportTitle,
		Body:  template.HTML(body.String()), // goldmark descarta HTML bruto por padrão
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao montar relatório")
	}

	return page.Bytes(), nil
}

func writeMarkdownTable(b *strings.Builder, table domain.Table) {
	header := table.Header()
	b.WriteString("| " + strings.Join(header, " | ") + " |\n")

	separators := make([]string, len(header))
	for i := range separators {
		separators[i] = "---:"
	}
	if table.RowKey != "" {
		separators[0] = "---"
	}
	b.WriteString("|" + strings.Join(separators, "|") + "|\n")

	for _, row := range table.Rows {
		cells := make([]string, 0, len(header))
		if table.RowKey != "" {
			cells = append(cells, row.Label)
		}
		for _, value := range row.Values {
			cells = append(cells, FormatValue(table.Name, value))
		}
		b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}
}

func chartsTable(charts domain.Charts) domain.Table {
	rows := make([]domain.TableRow, 0, len(charts.TotalRevenue))
	for i, point := range charts.TotalRevenue {
		values := []float64{point.Value}
		if i < len(charts.ClosingCash) {
			values = append(values, charts.ClosingCash[i].Value)
		}
		rows = append(rows, domain.TableRow{Label: point.Month, Values: values})
	}

	return domain.Table{
		Name:    "charts",
		RowKey:  domain.MonthColumn,
		Columns: []string{domain.ColTotalRevenue, domain.ColClosingCash},
		Rows:    rows,
	}
}
