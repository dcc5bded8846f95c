package query

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuote(t *testing.T) {
	assert.Equal(t, "'Mon'", Quote("Mon"))
	assert.Equal(t, "'O''Brien'", Quote("O'Brien"))
	assert.Equal(t, "'x'', ''y'", Quote("x', 'y"))
}

func TestInList(t *testing.T) {
	assert.Equal(t, "'Sun', 'Sat'", InList([]string{"Sun", "Sat"}))
	assert.Equal(t, "", InList(nil))
}

func TestViewtimeCountSQL(t *testing.T) {
	plain := ViewtimeCountSQL(nil)
	assert.Contains(t, plain, "FROM\n  pageviews_stream_REALTIME")
	assert.Contains(t, plain, "AS viewtime_range")
	assert.Contains(t, plain, "COUNT(*) AS view_count")
	assert.Contains(t, plain, "ORDER BY\n  view_count DESC")
	assert.NotContains(t, plain, "WHERE")
	assert.NotContains(t, plain, ";")

	filtered := ViewtimeCountSQL([]string{"Range 1 (1-100)", "Range 8+ (701 and above)"})
	assert.Contains(t, filtered, "WHERE")
	assert.Contains(t, filtered, "IN ('Range 1 (1-100)', 'Range 8+ (701 and above)')")
	assert.Equal(t, 2, strings.Count(filtered, "ELSE 'Range 8+ (701 and above)'"))
}

func TestRegistrationWeekdaySQL(t *testing.T) {
	plain := RegistrationWeekdaySQL(nil)
	assert.Contains(t, plain, "COUNT(userid) AS registration_count")
	assert.Contains(t, plain, "FROM\n  users_table_REALTIME")
	assert.Contains(t, plain, "GROUP BY\n  day_of_week")
	assert.NotContains(t, plain, "WHERE")

	filtered := RegistrationWeekdaySQL([]string{"Sun"})
	assert.Contains(t, filtered, "IN ('Sun')")
}

func TestStaticQueries(t *testing.T) {
	assert.Contains(t, CityLevelSQL(), "users_clickstream_REALTIME")
	assert.Contains(t, CityLevelSQL(), "ORDER BY\n  city, level")
	assert.Contains(t, RegionGenderSQL(), "users_table_REALTIME")
	assert.Contains(t, RegionGenderSQL(), "ORDER BY\n  user_count DESC")
}
