package report

import (
	"fmt"
	"html/template"
	"os"
	"strings"
	"time"

	"StockScout/internal/model"
)

var tableTmpl = template.Must(template.New("table").Parse(`<table border="1" cellpadding="4" cellspacing="0">
<tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr>
{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}</table>`))

var pageTmpl = template.Must(template.New("page").Parse(`<html><head><meta charset="utf-8"><title>Daily Scan</title></head><body>
<h2>Daily Stock Scan</h2>
{{.Table}}
<p style="color:#666">Generated at: {{.GeneratedAt}}</p>
</body></html>
`))

// TableHTML renders the table as an HTML fragment, preserving row order.
func TableHTML(table model.RankedTable) (string, error) {
	rows := make([][]string, 0, len(table))
	for _, rec := range table {
		rows = append(rows, Row(rec))
	}
	var b strings.Builder
	err := tableTmpl.Execute(&b, struct {
		Columns []string
		Rows    [][]string
	}{Columns, rows})
	if err != nil {
		return "", fmt.Errorf("render table: %w", err)
	}
	return b.String(), nil
}

// TopHTML renders the first n records as an HTML fragment, for inline use
// in the notification body.
func TopHTML(table model.RankedTable, n int) (string, error) {
	return TableHTML(table.Top(n))
}

func (w *Writer) writeHTML(path string, table model.RankedTable, at time.Time) error {
	frag, err := TableHTML(table)
	if err != nil {
		return err
	}
	var b strings.Builder
	err = pageTmpl.Execute(&b, struct {
		Table       template.HTML
		GeneratedAt string
	}{template.HTML(frag), at.Format(time.RFC3339)})
	if err != nil {
		return fmt.Errorf("render html page: %w", err)
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write html: %w", err)
	}
	return nil
}
