package report

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/pierrec/lz4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjirawat/DADS6005-Real-Time-Midterm/domain/models"
)

func cityTable() *models.Table {
	return &models.Table{
		Name:    models.PanelCityLevel,
		Columns: []string{"city", "level", "user_count"},
		Rows: []models.Row{
			{Category: "Frankfurt", SubCategory: "Gold", Count: 4},
			{Category: "Palo Alto", SubCategory: "Silver", Count: 1},
		},
	}
}

func TestText(t *testing.T) {
	out := Text(cityTable())
	assert.Contains(t, strings.ToLower(out), "user_count")
	assert.Contains(t, out, "Frankfurt")
	assert.Contains(t, out, "Silver")
}

func TestHTML(t *testing.T) {
	tbl := cityTable()
	tbl.Rows = append(tbl.Rows, models.Row{Category: "<script>", SubCategory: "x", Count: 1})
	out := HTML(tbl)
	assert.Contains(t, out, `<table class="data">`)
	assert.Contains(t, out, "Palo Alto")
	assert.NotContains(t, out, "<script>")
}

func TestCSV(t *testing.T) {
	lines := strings.Split(CSV(cityTable()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "Frankfurt,Gold,4")
	assert.Contains(t, lines[2], "Palo Alto,Silver,1")
}

func TestWriteCSVCompressed(t *testing.T) {
	var plain, packed bytes.Buffer
	require.NoError(t, WriteCSV(&plain, cityTable(), false))
	require.NoError(t, WriteCSV(&packed, cityTable(), true))

	unpacked, err := io.ReadAll(lz4.NewReader(&packed))
	require.NoError(t, err)
	assert.Equal(t, plain.String(), string(unpacked))
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "view_count_by_viewtime_range", Slug("View Count by Viewtime Range"))
	assert.Equal(t, "prilozhenie", Slug("Приложение"))
	assert.Equal(t, "table", Slug("  !!  "))
}
