package query

import (
	"strings"
)

const (
	TablePageviews   = "pageviews_stream_REALTIME"
	TableClickstream = "users_clickstream_REALTIME"
	TableUsers       = "users_table_REALTIME"
)

// Quote renders s as a SQL string literal.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// InList renders the values as a comma separated list of literals.
func InList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = Quote(v)
	}
	return strings.Join(quoted, ", ")
}

// ViewtimeCountSQL counts page views per viewtime bucket. When selected is
// non-nil the buckets are restricted to it in SQL.
func ViewtimeCountSQL(selected []string) string {
	bucket := ViewtimeCaseSQL("viewtime")
	var b strings.Builder
	b.WriteString("SELECT\n  " + bucket + " AS viewtime_range,\n  COUNT(*) AS view_count\n")
	b.WriteString("FROM\n  " + TablePageviews + "\n")
	if selected != nil {
		b.WriteString("WHERE\n  " + bucket + " IN (" + InList(selected) + ")\n")
	}
	b.WriteString("GROUP BY\n  viewtime_range\nORDER BY\n  view_count DESC")
	return b.String()
}

func CityLevelSQL() string {
	return `SELECT
  city,
  level,
  COUNT(*) AS user_count
FROM
  ` + TableClickstream + `
GROUP BY
  city, level
ORDER BY
  city, level`
}

func RegionGenderSQL() string {
	return `SELECT
  regionid,
  gender,
  COUNT(*) AS user_count
FROM
  ` + TableUsers + `
GROUP BY
  regionid, gender
ORDER BY
  user_count DESC`
}

// RegistrationWeekdaySQL counts registrations per weekday. When selected is
// non-empty the weekdays are restricted to it in SQL.
func RegistrationWeekdaySQL(selected []string) string {
	day := WeekdayCaseSQL("registertime")
	var b strings.Builder
	b.WriteString("SELECT\n  " + day + " AS day_of_week,\n  COUNT(userid) AS registration_count\n")
	b.WriteString("FROM\n  " + TableUsers + "\n")
	if len(selected) > 0 {
		b.WriteString("WHERE\n  " + day + " IN (" + InList(selected) + ")\n")
	}
	b.WriteString("GROUP BY\n  day_of_week\nORDER BY\n  day_of_week")
	return b.String()
}
