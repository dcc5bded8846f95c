package query

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/kjirawat/DADS6005-Real-Time-Midterm/domain/models"
	"github.com/kjirawat/DADS6005-Real-Time-Midterm/store"
)

var (
	ErrSchemaMismatch = errors.New("result does not match declared schema")
	ErrUnknownPanel   = errors.New("unknown panel")
)

var (
	ViewtimeColumns     = []string{"viewtime_range", "view_count"}
	CityLevelColumns    = []string{"city", "level", "user_count"}
	RegionGenderColumns = []string{"regionid", "gender", "user_count"}
	WeekdayColumns      = []string{"day_of_week", "registration_count"}
)

// Runner executes the four dashboard queries on one connection, each on its
// own cursor.
type Runner struct {
	conn     *store.Conn
	pushdown bool
	log      log.FieldLogger
}

func NewRunner(conn *store.Conn, pushdown bool, logger log.FieldLogger) *Runner {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Runner{conn: conn, pushdown: pushdown, log: logger}
}

// Run executes the four queries in sequence and post-filters the viewtime
// and weekday tables by sel. Any failure aborts the whole run.
func (r *Runner) Run(ctx context.Context, sel models.Selection) (*models.Dashboard, error) {
	viewtime, err := r.ViewCountByViewtime(ctx, sel.Viewtime)
	if err != nil {
		return nil, err
	}
	cityLevel, err := r.UserCountByCityLevel(ctx)
	if err != nil {
		return nil, err
	}
	regions, err := r.UserCountByRegionGender(ctx)
	if err != nil {
		return nil, err
	}
	weekdays, err := r.RegistrationsByWeekday(ctx, sel.Weekdays)
	if err != nil {
		return nil, err
	}

	return &models.Dashboard{
		Selection: sel,
		Viewtime:  FilterViewtime(viewtime, sel.Viewtime),
		CityLevel: cityLevel,
		Regions:   regions,
		Weekdays:  FilterWeekday(weekdays, sel.Weekdays),
	}, nil
}

// Panel runs the single query behind name and applies its post-filter.
func (r *Runner) Panel(ctx context.Context, name models.PanelName, sel models.Selection) (*models.Table, error) {
	switch name {
	case models.PanelViewtime:
		t, err := r.ViewCountByViewtime(ctx, sel.Viewtime)
		if err != nil {
			return nil, err
		}
		return FilterViewtime(t, sel.Viewtime), nil
	case models.PanelCityLevel:
		return r.UserCountByCityLevel(ctx)
	case models.PanelRegionGender:
		return r.UserCountByRegionGender(ctx)
	case models.PanelWeekday:
		t, err := r.RegistrationsByWeekday(ctx, sel.Weekdays)
		if err != nil {
			return nil, err
		}
		return FilterWeekday(t, sel.Weekdays), nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownPanel, name)
	}
}

// ViewCountByViewtime returns the unfiltered bucket counts unless pushdown is
// enabled, in which case only the selected buckets are queried.
func (r *Runner) ViewCountByViewtime(ctx context.Context, selected []string) (*models.Table, error) {
	if !r.pushdown {
		return r.fetch(ctx, models.PanelViewtime, ViewtimeColumns, ViewtimeCountSQL(nil))
	}
	if len(selected) == 0 {
		// IN () is not valid SQL and could only match nothing.
		return &models.Table{Name: models.PanelViewtime, Columns: ViewtimeColumns, Rows: []models.Row{}}, nil
	}
	return r.fetch(ctx, models.PanelViewtime, ViewtimeColumns, ViewtimeCountSQL(selected))
}

func (r *Runner) UserCountByCityLevel(ctx context.Context) (*models.Table, error) {
	return r.fetch(ctx, models.PanelCityLevel, CityLevelColumns, CityLevelSQL())
}

func (r *Runner) UserCountByRegionGender(ctx context.Context) (*models.Table, error) {
	return r.fetch(ctx, models.PanelRegionGender, RegionGenderColumns, RegionGenderSQL())
}

func (r *Runner) RegistrationsByWeekday(ctx context.Context, selected []string) (*models.Table, error) {
	if !r.pushdown {
		selected = nil
	}
	return r.fetch(ctx, models.PanelWeekday, WeekdayColumns, RegistrationWeekdaySQL(selected))
}

func (r *Runner) fetch(ctx context.Context, name models.PanelName, columns []string, sql string) (*models.Table, error) {
	start := time.Now()
	cur := r.conn.Cursor()
	if err := cur.Execute(ctx, sql); err != nil {
		return nil, fmt.Errorf("%s query: %w", name, err)
	}
	rows, err := cur.FetchAll()
	if err != nil {
		return nil, fmt.Errorf("%s fetch: %w", name, err)
	}
	t, err := toTable(name, columns, cur.Columns(), rows)
	if err != nil {
		return nil, err
	}
	r.log.WithFields(log.Fields{
		"panel":   name,
		"rows":    t.Len(),
		"elapsed": time.Since(start),
	}).Debug("query done")
	return t, nil
}

func toTable(name models.PanelName, declared, got []string, rows [][]interface{}) (*models.Table, error) {
	empty := len(got) == 0 && len(rows) == 0
	if len(got) != len(declared) && !empty {
		return nil, fmt.Errorf("%s: %w: want %v, got %v", name, ErrSchemaMismatch, declared, got)
	}

	t := &models.Table{Name: name, Columns: declared, Rows: make([]models.Row, 0, len(rows))}
	for i, row := range rows {
		if len(row) != len(declared) {
			return nil, fmt.Errorf("%s row %d: %w: want %d values, got %d", name, i, ErrSchemaMismatch, len(declared), len(row))
		}
		count, err := store.AsInt64(row[len(row)-1])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", name, i, err)
		}
		r := models.Row{Category: store.AsString(row[0]), Count: count}
		if len(declared) == 3 {
			r.SubCategory = store.AsString(row[1])
		}
		t.Rows = append(t.Rows, r)
	}
	return t, nil
}
