package web

import (
	"github.com/kjirawat/DADS6005-Real-Time-Midterm/domain/models"
	"github.com/kjirawat/DADS6005-Real-Time-Midterm/plot"
)

type panel struct {
	Name  models.PanelName
	Style plot.Style
}

var panels = []panel{
	{
		Name: models.PanelViewtime,
		Style: plot.Style{
			Title:    "View Count by Viewtime Range",
			XName:    "Viewtime Range",
			YName:    "View Count",
			Palette:  []string{plot.SkyBlue},
			Rotation: 45,
		},
	},
	{
		Name: models.PanelCityLevel,
		Style: plot.Style{
			Title:    "User Count by City and Level",
			XName:    "City",
			YName:    "User Count",
			Palette:  plot.Deep,
			Rotation: 45,
		},
	},
	{
		Name: models.PanelRegionGender,
		Style: plot.Style{
			Title:    "Gender Distribution Across All Regions",
			XName:    "Region ID",
			YName:    "User Count",
			Palette:  plot.Deep,
			Rotation: 45,
		},
	},
	{
		Name: models.PanelWeekday,
		Style: plot.Style{
			Title:   "User Registration Distribution by Day of the Week",
			XName:   "Day of the Week",
			YName:   "Registration Count",
			Palette: plot.Viridis,
		},
	},
}

func findPanel(name string) (panel, bool) {
	for _, p := range panels {
		if string(p.Name) == name {
			return p, true
		}
	}
	return panel{}, false
}
