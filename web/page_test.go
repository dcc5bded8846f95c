package web

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjirawat/DADS6005-Real-Time-Midterm/domain/models"
)

func TestNewBarGroupedSeries(t *testing.T) {
	tbl := &models.Table{
		Name:    models.PanelRegionGender,
		Columns: []string{"regionid", "gender", "user_count"},
		Rows: []models.Row{
			{Category: "Region_1", SubCategory: "FEMALE", Count: 3},
			{Category: "Region_2", SubCategory: "MALE", Count: 2},
			{Category: "Region_2", SubCategory: "OTHER", Count: 1},
		},
	}
	bar := newBar(tbl, panels[2])
	assert.Len(t, bar.MultiSeries, 3)

	var buf bytes.Buffer
	require.NoError(t, bar.Render(&buf))
	assert.Contains(t, buf.String(), "Gender Distribution Across All Regions")
	assert.Contains(t, buf.String(), "FEMALE")
}

func TestNewBarSimpleSeries(t *testing.T) {
	tbl := &models.Table{
		Name:    models.PanelWeekday,
		Columns: []string{"day_of_week", "registration_count"},
		Rows:    []models.Row{{Category: "Fri", Count: 3}, {Category: "Mon", Count: 1}},
	}
	bar := newBar(tbl, panels[3])
	assert.Len(t, bar.MultiSeries, 1)
}

func TestInsertFragments(t *testing.T) {
	const original = "<html><body><div></div></body></html>"
	doc := []byte(original)
	out := insertAfter(doc, []byte("<body>"), []byte("<h1>x</h1>"))
	out = insertBefore(out, []byte("</body>"), []byte("<p>y</p>"))
	assert.Equal(t, "<html><body><h1>x</h1><div></div><p>y</p></body></html>", string(out))
	assert.Equal(t, original, string(doc))

	assert.Equal(t, "ab", string(insertAfter([]byte("b"), []byte("<body>"), []byte("a"))))
	assert.Equal(t, "ba", string(insertBefore([]byte("b"), []byte("</body>"), []byte("a"))))
}

func TestOptions(t *testing.T) {
	got := options([]string{"Sun", "Mon", "Tue"}, []string{"Tue"})
	assert.Equal(t, []option{{Label: "Sun"}, {Label: "Mon"}, {Label: "Tue", Selected: true}}, got)
}

func TestKnown(t *testing.T) {
	assert.Equal(t, []string{"Sun", "Sat"}, known([]string{"Sat", "Bogus", "Sun", "Sat"}, []string{"Sun", "Mon", "Sat"}))
	assert.Equal(t, []string{}, known(nil, []string{"Sun"}))
}
