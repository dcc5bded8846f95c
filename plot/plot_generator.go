package plot

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/kjirawat/DADS6005-Real-Time-Midterm/domain/models"
)

var ErrNoData = errors.New("no rows to plot")

// Style describes how one dashboard panel is drawn.
type Style struct {
	Title    string
	XName    string
	YName    string
	Palette  []string
	Rotation float64
}

// NewGraph picks a simple or grouped bar layout for t.
func NewGraph(t *models.Table, s Style) dataForGraph {
	if t.Grouped() {
		values := map[[2]string]float64{}
		for _, r := range t.Rows {
			values[[2]string{r.Category, r.SubCategory}] += float64(r.Count)
		}
		return NewDataGroupedForGraph(t.Categories(), t.SubCategories(), values, s.YName, s.Title, s.Palette, s.Rotation)
	}
	x := make([]string, 0, t.Len())
	y := make([]float64, 0, t.Len())
	for _, r := range t.Rows {
		x = append(x, r.Category)
		y = append(y, float64(r.Count))
	}
	return NewDataXStringsForGraph(x, y, s.YName, s.Title, s.Palette, s.Rotation)
}

// DrawTable renders t as a PNG bar chart.
func DrawTable(t *models.Table, s Style) ([]byte, error) {
	if t == nil || t.Len() == 0 {
		return nil, ErrNoData
	}
	return DrawPlotBar(NewGraph(t, s))
}

func DrawPlotBar(data dataForGraph) ([]byte, error) {
	barValues := data.generateBarValues()
	if len(barValues) == 0 {
		return nil, ErrNoData
	}
	paddingX := customizePaddingXBottom(barValues, data.getLabelRotation())
	width, height := data.calculateChartDimensions(40)
	maxY, ticks := yTicks(findMaxValue(data.getYValues()))

	bar := chart.BarChart{
		Title: data.GetNameGraph(),
		TitleStyle: chart.Style{
			FontSize: 11,
		},
		Background: chart.Style{
			FillColor: drawing.ColorWhite,
			Padding: chart.Box{
				Top:    40,
				Left:   20,
				Right:  20,
				Bottom: paddingX,
			},
		},
		Width:    width,
		Height:   height + paddingX,
		BarWidth: 30,
		Bars:     barValues,
		YAxis: chart.YAxis{
			Name: data.getNameYAxis(),
			Range: &chart.ContinuousRange{
				Min: 0.0,
				Max: maxY,
			},
			Ticks: ticks,
			Style: chart.Style{
				StrokeWidth: 1,
				StrokeColor: chart.ColorBlack,
				FontSize:    8,
			},
			GridMajorStyle: chart.Style{
				StrokeColor:     chart.ColorBlack,
				StrokeWidth:     1,
				StrokeDashArray: []float64{5.0, 5.0},
			},
		},
		XAxis: chart.Style{
			StrokeWidth:         1,
			StrokeColor:         chart.ColorBlack,
			TextRotationDegrees: data.getLabelRotation(),
			FontSize:            8,
		},
	}
	bar.Background.StrokeWidth = 1
	bar.Background.StrokeColor = drawing.ColorFromHex("efefef")

	buffer := bytes.NewBuffer([]byte{})
	if err := bar.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("error rendering chart: %w", err)
	}
	return buffer.Bytes(), nil
}

// chartDimensions sizes a chart for n bars at roughly the 4x3 aspect of the
// dashboard panels.
func chartDimensions(n int, minBarWidth float64) (width, height int) {
	if n <= 0 || minBarWidth <= 0 {
		return 0, 0
	}
	const (
		paddingY     = 100
		spacingRatio = 0.5
		minWidth     = 400
		aspectRatio  = 3.0 / 4.0
	)
	barSpacing := minBarWidth * spacingRatio
	width = int((minBarWidth+barSpacing)*float64(n)) + paddingY
	if width < minWidth {
		width = minWidth
	}
	height = int(float64(width) * aspectRatio)
	return width, height
}

// yTicks returns the axis maximum rounded up to a whole grid step and the
// ticks from zero to it.
func yTicks(maxValue float64) (float64, []chart.Tick) {
	step := calculateGridStep(maxValue)
	if step <= 0 {
		return 1, nil
	}
	maxY := math.Ceil(maxValue/step) * step
	var ticks []chart.Tick
	for i := 0.0; i <= maxY+step/2; i += step {
		ticks = append(ticks, chart.Tick{
			Value: i,
			Label: formatTick(i),
		})
	}
	return maxY, ticks
}

func formatTick(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}

func calculateGridStep(maxValue float64) float64 {
	if maxValue <= 0 {
		return 0
	}
	if maxValue < 1e-10 {
		return 1e-10
	}

	// Order of magnitude, then the value normalized to [1, 10).
	magnitude := math.Pow(10, math.Floor(math.Log10(maxValue)))
	normalized := maxValue / magnitude

	var step float64
	switch {
	case normalized <= 1:
		step = 0.2
	case normalized <= 2:
		step = 0.5
	case normalized <= 5:
		step = 1.0
	default:
		step = 2.0
	}

	finalStep := step * magnitude
	if finalStep >= 1000 {
		return math.Round(finalStep/100) * 100
	}
	if finalStep >= 100 {
		return math.Round(finalStep/10) * 10
	}
	return finalStep
}

func findMaxValue(y []float64) float64 {
	if len(y) == 0 {
		return 0
	}
	max := y[0]
	for _, v := range y {
		if v > max {
			max = v
		}
	}
	return max
}

// customizePaddingXBottom reserves room under the axis for the bar labels.
func customizePaddingXBottom(values []chart.Value, rotation float64) int {
	count := 0
	for _, v := range values {
		if len(v.Label) > count {
			count = len(v.Label)
		}
	}
	if rotation == 0 {
		return 40
	}
	return count*6 + 20
}
