package plot

import (
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
)

// dataGroupedForGraph draws one bar per (category, group) pair, coloured by
// group and laid out category by category.
type dataGroupedForGraph struct {
	categories []string
	groups     []string
	values     map[[2]string]float64
	nameYAxis  string
	nameGraph  string
	palette    []string
	rotation   float64
}

func NewDataGroupedForGraph(categories, groups []string, values map[[2]string]float64, nameYAxis, nameGraph string, palette []string, rotation float64) dataGroupedForGraph {
	return dataGroupedForGraph{
		categories: categories,
		groups:     groups,
		values:     values,
		nameYAxis:  nameYAxis,
		nameGraph:  nameGraph,
		palette:    palette,
		rotation:   rotation,
	}
}

func (d dataGroupedForGraph) GetNameGraph() string {
	return d.nameGraph
}
func (d dataGroupedForGraph) getNameYAxis() string {
	return d.nameYAxis
}
func (d dataGroupedForGraph) getLabelRotation() float64 {
	return d.rotation
}

func (d dataGroupedForGraph) getYValues() []float64 {
	var y []float64
	for _, b := range d.generateBarValues() {
		y = append(y, b.Value)
	}
	return y
}

func (d dataGroupedForGraph) calculateChartDimensions(minBarWidth float64) (width, height int) {
	return chartDimensions(len(d.generateBarValues()), minBarWidth)
}

// generateBarValues leaves out pairs that have no row.
func (d dataGroupedForGraph) generateBarValues() []chart.Value {
	var bars []chart.Value
	for _, c := range d.categories {
		for gi, g := range d.groups {
			v, ok := d.values[[2]string{c, g}]
			if !ok {
				continue
			}
			bars = append(bars, chart.Value{
				Value: v,
				Label: fmt.Sprintf("%s / %s", c, g),
				Style: chart.Style{
					FillColor:   colorAt(d.palette, gi),
					StrokeColor: colorAt(d.palette, gi),
				},
			})
		}
	}
	return bars
}
