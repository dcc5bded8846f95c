package store

import (
	"context"
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// clickhouseDriver talks to ClickHouse through its MySQL wire port.
type clickhouseDriver struct {
	db *gorm.DB
}

func OpenClickhouse(dsn string) (Driver, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("cannot connect to clickhouse: %w", err)
	}
	return &clickhouseDriver{db: db}, nil
}

func (d *clickhouseDriver) Query(ctx context.Context, sql string) (*ResultSet, error) {
	rows, err := d.db.WithContext(ctx).Raw(sql).Rows()
	if err != nil {
		return nil, fmt.Errorf("clickhouse query: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	rs := &ResultSet{Columns: columns}
	for rows.Next() {
		values := make([]interface{}, len(columns))
		ptrs := make([]interface{}, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("clickhouse scan: %w", err)
		}
		rs.Rows = append(rs.Rows, values)
	}
	return rs, rows.Err()
}

func (d *clickhouseDriver) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
