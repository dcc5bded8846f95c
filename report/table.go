// Package report formats result tables for display and download.
package report

import (
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/kjirawat/DADS6005-Real-Time-Midterm/domain/models"
)

func newWriter(t *models.Table) table.Writer {
	w := table.NewWriter()
	header := table.Row{}
	for _, c := range t.Columns {
		header = append(header, c)
	}
	w.AppendHeader(header)
	for _, values := range t.Values() {
		w.AppendRow(table.Row(values))
	}
	w.SetStyle(table.StyleLight)
	return w
}

// Text renders t as a box-drawn table for logs and terminals.
func Text(t *models.Table) string {
	return newWriter(t).Render()
}

// HTML renders t as an HTML <table> fragment.
func HTML(t *models.Table) string {
	w := newWriter(t)
	w.Style().HTML = table.HTMLOptions{
		CSSClass:    "data",
		EmptyColumn: "&nbsp;",
		EscapeText:  true,
		Newline:     "<br/>",
	}
	return w.RenderHTML()
}

// CSV renders t with a header line followed by one line per row.
func CSV(t *models.Table) string {
	return newWriter(t).RenderCSV()
}
