package models

type PanelName string

const (
	PanelViewtime     PanelName = "viewtime"
	PanelCityLevel    PanelName = "city-level"
	PanelRegionGender PanelName = "region-gender"
	PanelWeekday      PanelName = "weekday"
)

// Row is one aggregated tuple: (category, count) or (category, sub-category, count).
type Row struct {
	Category    string `json:"category"`
	SubCategory string `json:"sub_category,omitempty"`
	Count       int64  `json:"count"`
}

// Table is an ordered, immutable result set with declared column names.
type Table struct {
	Name    PanelName `json:"name"`
	Columns []string  `json:"columns"`
	Rows    []Row     `json:"rows"`
}

// Grouped reports whether rows carry a sub-category column.
func (t *Table) Grouped() bool {
	return len(t.Columns) == 3
}

func (t *Table) Len() int {
	return len(t.Rows)
}

// Categories returns the distinct category labels in first-seen order.
func (t *Table) Categories() []string {
	return distinct(t.Rows, func(r Row) string { return r.Category })
}

// SubCategories returns the distinct sub-category labels in first-seen order.
func (t *Table) SubCategories() []string {
	return distinct(t.Rows, func(r Row) string { return r.SubCategory })
}

// Values returns each row as a slice matching Columns.
func (t *Table) Values() [][]interface{} {
	out := make([][]interface{}, 0, len(t.Rows))
	for _, r := range t.Rows {
		if t.Grouped() {
			out = append(out, []interface{}{r.Category, r.SubCategory, r.Count})
		} else {
			out = append(out, []interface{}{r.Category, r.Count})
		}
	}
	return out
}

func distinct(rows []Row, key func(Row) string) []string {
	seen := map[string]bool{}
	var out []string
	for _, r := range rows {
		k := key(r)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}

// Selection holds the user's filter choices for one page render.
type Selection struct {
	Viewtime []string `json:"viewtime"`
	Weekdays []string `json:"weekdays"`
}

// Dashboard is the post-filtered output of one render, in panel order.
type Dashboard struct {
	RenderID  string    `json:"render_id"`
	Selection Selection `json:"selection"`
	Viewtime  *Table    `json:"viewtime"`
	CityLevel *Table    `json:"city_level"`
	Regions   *Table    `json:"region_gender"`
	Weekdays  *Table    `json:"weekday"`
}

// Tables returns the four panels in layout order.
func (d *Dashboard) Tables() []*Table {
	return []*Table{d.Viewtime, d.CityLevel, d.Regions, d.Weekdays}
}

// Table returns the panel with the given name, or nil.
func (d *Dashboard) Table(name PanelName) *Table {
	for _, t := range d.Tables() {
		if t != nil && t.Name == name {
			return t
		}
	}
	return nil
}
