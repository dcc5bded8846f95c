package web

import (
	"bytes"
	"html/template"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/kjirawat/DADS6005-Real-Time-Midterm/domain/models"
	"github.com/kjirawat/DADS6005-Real-Time-Midterm/query"
	"github.com/kjirawat/DADS6005-Real-Time-Midterm/report"
)

const (
	panelWidth  = "380px"
	panelHeight = "320px"
)

func newBar(t *models.Table, p panel) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: panelWidth, Height: panelHeight}),
		charts.WithTitleOpts(opts.Title{Title: p.Style.Title}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      p.Style.XName,
			AxisLabel: &opts.AxisLabel{Rotate: p.Style.Rotation, Interval: "0"},
		}),
		charts.WithYAxisOpts(opts.YAxis{Name: p.Style.YName}),
		charts.WithGridOpts(opts.Grid{Bottom: "90", Top: "60"}),
	)

	if t.Grouped() {
		categories := t.Categories()
		counts := map[[2]string]int64{}
		for _, r := range t.Rows {
			counts[[2]string{r.Category, r.SubCategory}] += r.Count
		}
		bar.SetXAxis(categories)
		for gi, g := range t.SubCategories() {
			data := make([]opts.BarData, 0, len(categories))
			for _, c := range categories {
				if v, ok := counts[[2]string{c, g}]; ok {
					data = append(data, opts.BarData{Value: v})
				} else {
					data = append(data, opts.BarData{Value: "-"})
				}
			}
			bar.AddSeries(g, data, charts.WithItemStyleOpts(opts.ItemStyle{Color: hexColor(p.Style.Palette, gi)}))
		}
		return bar
	}

	data := make([]opts.BarData, 0, t.Len())
	for i, r := range t.Rows {
		d := opts.BarData{Value: r.Count}
		if len(p.Style.Palette) > 1 {
			d.ItemStyle = &opts.ItemStyle{Color: hexColor(p.Style.Palette, i)}
		}
		data = append(data, d)
	}
	bar.SetXAxis(t.Categories()).
		AddSeries(p.Style.YName, data, charts.WithItemStyleOpts(opts.ItemStyle{Color: hexColor(p.Style.Palette, 0)}))
	return bar
}

func hexColor(palette []string, i int) string {
	if len(palette) == 0 {
		return ""
	}
	return "#" + palette[i%len(palette)]
}

type option struct {
	Label    string
	Selected bool
}

type header struct {
	Title    string
	RenderID string
	Viewtime []option
	Weekdays []option
	Tables   []template.HTML
}

func options(all, selected []string) []option {
	chosen := map[string]bool{}
	for _, s := range selected {
		chosen[s] = true
	}
	out := make([]option, 0, len(all))
	for _, a := range all {
		out = append(out, option{Label: a, Selected: chosen[a]})
	}
	return out
}

var (
	headerTmpl = template.Must(template.New("header").Parse(tmplHeader))
	footerTmpl = template.Must(template.New("footer").Parse(tmplFooter))
)

// renderDashboard writes the full page: filter form, the four charts in a
// flex row, and the data tables behind them.
func renderDashboard(w io.Writer, title string, dash *models.Dashboard) error {
	page := components.NewPage()
	page.PageTitle = title
	page.SetLayout(components.PageFlexLayout)
	var tables []template.HTML
	for i, t := range dash.Tables() {
		page.AddCharts(newBar(t, panels[i]))
		tables = append(tables, template.HTML(report.HTML(t)))
	}

	var body bytes.Buffer
	if err := page.Render(&body); err != nil {
		return err
	}

	data := header{
		Title:    title,
		RenderID: dash.RenderID,
		Viewtime: options(query.ViewtimeLabels(), dash.Selection.Viewtime),
		Weekdays: options(query.Weekdays, dash.Selection.Weekdays),
		Tables:   tables,
	}
	var head, foot bytes.Buffer
	if err := headerTmpl.Execute(&head, data); err != nil {
		return err
	}
	if err := footerTmpl.Execute(&foot, data); err != nil {
		return err
	}

	html := body.Bytes()
	html = insertAfter(html, []byte("<body>"), head.Bytes())
	html = insertBefore(html, []byte("</body>"), foot.Bytes())
	_, err := w.Write(html)
	return err
}

func insertAfter(doc, marker, fragment []byte) []byte {
	i := bytes.Index(doc, marker)
	if i < 0 {
		return append(append([]byte{}, fragment...), doc...)
	}
	i += len(marker)
	return concat(doc[:i], fragment, doc[i:])
}

func insertBefore(doc, marker, fragment []byte) []byte {
	i := bytes.LastIndex(doc, marker)
	if i < 0 {
		return append(append([]byte{}, doc...), fragment...)
	}
	return concat(doc[:i], fragment, doc[i:])
}

func concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
