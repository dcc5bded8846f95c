package query

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjirawat/DADS6005-Real-Time-Midterm/domain/models"
	"github.com/kjirawat/DADS6005-Real-Time-Midterm/store"
)

// fakeDriver answers by matching a marker in the SQL text.
type fakeDriver struct {
	results map[string]*store.ResultSet
	errs    map[string]error
	queries []string
}

func (d *fakeDriver) Query(ctx context.Context, sql string) (*store.ResultSet, error) {
	d.queries = append(d.queries, sql)
	for marker, err := range d.errs {
		if strings.Contains(sql, marker) {
			return nil, err
		}
	}
	for marker, rs := range d.results {
		if strings.Contains(sql, marker) {
			return rs, nil
		}
	}
	return &store.ResultSet{}, nil
}

func (d *fakeDriver) Close() error { return nil }

func newFakeDriver() *fakeDriver {
	return &fakeDriver{
		results: map[string]*store.ResultSet{
			"viewtime_range": {
				Columns: []string{"viewtime_range", "view_count"},
				Rows: [][]interface{}{
					{"Range 2 (101-200)", int64(12)},
					{"Range 1 (1-100)", int64(8)},
					{"Range 8+ (701 and above)", int64(3)},
				},
			},
			"users_clickstream_REALTIME": {
				Columns: []string{"city", "level", "user_count"},
				Rows: [][]interface{}{
					{"Frankfurt", "Gold", int64(4)},
					{"Frankfurt", "Silver", int64(2)},
					{"Palo Alto", "Gold", int64(1)},
				},
			},
			"regionid": {
				Columns: []string{"regionid", "gender", "user_count"},
				Rows: [][]interface{}{
					{"Region_1", "FEMALE", int64(9)},
					{"Region_1", "MALE", int64(6)},
				},
			},
			"day_of_week": {
				Columns: []string{"day_of_week", "registration_count"},
				Rows: [][]interface{}{
					{"Fri", int64(3)},
					{"Mon", int64(2)},
					{"Sun", int64(1)},
				},
			},
		},
		errs: map[string]error{},
	}
}

func TestRunDeclaredSchemas(t *testing.T) {
	d := newFakeDriver()
	r := NewRunner(store.NewConn(d), false, nil)

	dash, err := r.Run(context.Background(), models.Selection{Viewtime: ViewtimeLabels()})
	require.NoError(t, err)

	assert.Equal(t, ViewtimeColumns, dash.Viewtime.Columns)
	assert.Equal(t, CityLevelColumns, dash.CityLevel.Columns)
	assert.Equal(t, RegionGenderColumns, dash.Regions.Columns)
	assert.Equal(t, WeekdayColumns, dash.Weekdays.Columns)
	for _, tbl := range dash.Tables() {
		for _, row := range tbl.Values() {
			assert.Len(t, row, len(tbl.Columns))
		}
	}
	assert.Len(t, d.queries, 4)
}

func TestRunOrderAndPostFilter(t *testing.T) {
	d := newFakeDriver()
	r := NewRunner(store.NewConn(d), false, nil)

	dash, err := r.Run(context.Background(), models.Selection{
		Viewtime: []string{"Range 1 (1-100)"},
		Weekdays: []string{"Sun", "Mon"},
	})
	require.NoError(t, err)

	assert.Equal(t, []models.Row{{Category: "Range 1 (1-100)", Count: 8}}, dash.Viewtime.Rows)
	assert.Equal(t, []models.Row{{Category: "Mon", Count: 2}, {Category: "Sun", Count: 1}}, dash.Weekdays.Rows)
	assert.Equal(t, models.Row{Category: "Frankfurt", SubCategory: "Gold", Count: 4}, dash.CityLevel.Rows[0])

	require.Len(t, d.queries, 4)
	assert.Contains(t, d.queries[0], TablePageviews)
	assert.Contains(t, d.queries[1], TableClickstream)
	assert.Contains(t, d.queries[2], "regionid")
	assert.Contains(t, d.queries[3], "day_of_week")
	for _, q := range d.queries {
		assert.NotContains(t, q, "WHERE")
	}
}

func TestRunWeekdayPassThrough(t *testing.T) {
	r := NewRunner(store.NewConn(newFakeDriver()), false, nil)
	dash, err := r.Run(context.Background(), models.Selection{Viewtime: nil})
	require.NoError(t, err)
	assert.Equal(t, 0, dash.Viewtime.Len())
	assert.Equal(t, 3, dash.Weekdays.Len())
}

func TestRunPushdown(t *testing.T) {
	d := newFakeDriver()
	r := NewRunner(store.NewConn(d), true, nil)

	_, err := r.Run(context.Background(), models.Selection{
		Viewtime: []string{"Range 2 (101-200)"},
		Weekdays: []string{"Sat"},
	})
	require.NoError(t, err)
	require.Len(t, d.queries, 4)
	assert.Contains(t, d.queries[0], "IN ('Range 2 (101-200)')")
	assert.Contains(t, d.queries[3], "IN ('Sat')")
}

func TestRunPushdownEmptyViewtimeSkipsQuery(t *testing.T) {
	d := newFakeDriver()
	r := NewRunner(store.NewConn(d), true, nil)

	dash, err := r.Run(context.Background(), models.Selection{})
	require.NoError(t, err)
	assert.Equal(t, 0, dash.Viewtime.Len())
	assert.Equal(t, ViewtimeColumns, dash.Viewtime.Columns)
	assert.Len(t, d.queries, 3)
	assert.NotContains(t, d.queries[2], "WHERE")
}

func TestRunAbortsOnQueryError(t *testing.T) {
	d := newFakeDriver()
	boom := errors.New("broker down")
	d.errs["regionid"] = boom
	r := NewRunner(store.NewConn(d), false, nil)

	dash, err := r.Run(context.Background(), models.Selection{})
	assert.Nil(t, dash)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), string(models.PanelRegionGender))
	assert.Len(t, d.queries, 3)
}

func TestRunSchemaMismatch(t *testing.T) {
	d := newFakeDriver()
	d.results["users_clickstream_REALTIME"] = &store.ResultSet{
		Columns: []string{"city", "user_count"},
		Rows:    [][]interface{}{{"Frankfurt", int64(1)}},
	}
	r := NewRunner(store.NewConn(d), false, nil)

	_, err := r.Run(context.Background(), models.Selection{})
	assert.ErrorIs(t, err, ErrSchemaMismatch)
}

func TestToTableRowWidthMismatch(t *testing.T) {
	_, err := toTable(models.PanelWeekday, WeekdayColumns, WeekdayColumns, [][]interface{}{{"Mon"}})
	assert.ErrorIs(t, err, ErrSchemaMismatch)
}

func TestToTableBadCount(t *testing.T) {
	_, err := toTable(models.PanelWeekday, WeekdayColumns, WeekdayColumns, [][]interface{}{{"Mon", "many"}})
	assert.Error(t, err)
}

func TestToTableEmptyResult(t *testing.T) {
	tbl, err := toTable(models.PanelCityLevel, CityLevelColumns, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, CityLevelColumns, tbl.Columns)
	assert.Equal(t, 0, tbl.Len())
}

func TestPanel(t *testing.T) {
	d := newFakeDriver()
	r := NewRunner(store.NewConn(d), false, nil)
	ctx := context.Background()

	vt, err := r.Panel(ctx, models.PanelViewtime, models.Selection{Viewtime: []string{"Range 2 (101-200)"}})
	require.NoError(t, err)
	assert.Equal(t, []models.Row{{Category: "Range 2 (101-200)", Count: 12}}, vt.Rows)

	wd, err := r.Panel(ctx, models.PanelWeekday, models.Selection{})
	require.NoError(t, err)
	assert.Equal(t, 3, wd.Len())

	rg, err := r.Panel(ctx, models.PanelRegionGender, models.Selection{})
	require.NoError(t, err)
	assert.True(t, rg.Grouped())

	_, err = r.Panel(ctx, "heatmap", models.Selection{})
	assert.ErrorIs(t, err, ErrUnknownPanel)
	assert.Len(t, d.queries, 3)
}
