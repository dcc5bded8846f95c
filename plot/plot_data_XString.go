package plot

import (
	"github.com/wcharczuk/go-chart/v2"
)

type dataXStringsForGraph struct {
	xValues   []string
	yValues   []float64
	nameYAxis string
	nameGraph string
	palette   []string
	rotation  float64
}

// NewDataXStringsForGraph holds one bar per label. A single-colour palette
// paints every bar the same; longer palettes are cycled per bar.
func NewDataXStringsForGraph(xValues []string, y []float64, nameYAxis, nameGraph string, palette []string, rotation float64) dataXStringsForGraph {
	return dataXStringsForGraph{
		xValues:   xValues,
		yValues:   y,
		nameYAxis: nameYAxis,
		nameGraph: nameGraph,
		palette:   palette,
		rotation:  rotation,
	}
}

func (d dataXStringsForGraph) GetNameGraph() string {
	return d.nameGraph
}
func (d dataXStringsForGraph) getNameYAxis() string {
	return d.nameYAxis
}
func (d dataXStringsForGraph) getYValues() []float64 {
	return d.yValues
}
func (d dataXStringsForGraph) getLabelRotation() float64 {
	return d.rotation
}

func (d dataXStringsForGraph) calculateChartDimensions(minBarWidth float64) (width, height int) {
	return chartDimensions(len(d.xValues), minBarWidth)
}

func (d dataXStringsForGraph) generateBarValues() []chart.Value {
	var bars []chart.Value
	for i := 0; i < len(d.xValues) && i < len(d.yValues); i++ {
		bars = append(bars, chart.Value{
			Value: d.yValues[i],
			Label: d.xValues[i],
			Style: chart.Style{
				FillColor:   colorAt(d.palette, i),
				StrokeColor: colorAt(d.palette, i),
			},
		})
	}
	return bars
}
