package query

import (
	"github.com/pivolan/go_utils"

	"github.com/kjirawat/DADS6005-Real-Time-Midterm/domain/models"
)

// FilterViewtime keeps the rows whose bucket is in selected. An empty
// selection keeps nothing.
func FilterViewtime(t *models.Table, selected []string) *models.Table {
	return keep(t, selected)
}

// FilterWeekday keeps the rows whose weekday is in selected, or every row
// when nothing is selected.
func FilterWeekday(t *models.Table, selected []string) *models.Table {
	if len(selected) == 0 {
		return t
	}
	return keep(t, selected)
}

func keep(t *models.Table, selected []string) *models.Table {
	out := &models.Table{Name: t.Name, Columns: t.Columns, Rows: []models.Row{}}
	for _, r := range t.Rows {
		if go_utils.InArray(r.Category, selected) {
			out.Rows = append(out.Rows, r)
		}
	}
	return out
}
