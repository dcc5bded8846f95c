package plot

import "github.com/wcharczuk/go-chart/v2/drawing"

// Colours are hex without the leading '#'.
const SkyBlue = "87ceeb"

// Viridis is sampled at seven evenly spaced points, one per weekday.
var Viridis = []string{"440154", "443983", "31688e", "21918c", "35b779", "90d743", "fde725"}

// Deep is used for the hue of grouped bars.
var Deep = []string{"4c72b0", "dd8452", "55a868", "c44e52", "8172b3", "937860", "da8bc3", "8c8c8c", "ccb974", "64b5cd"}

func colorAt(palette []string, i int) drawing.Color {
	if len(palette) == 0 {
		return drawing.ColorFromHex(SkyBlue)
	}
	return drawing.ColorFromHex(palette[i%len(palette)])
}
