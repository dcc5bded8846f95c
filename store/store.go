// Package store connects to the analytical store the dashboard reads from.
package store

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/kjirawat/DADS6005-Real-Time-Midterm/config"
)

var ErrNotExecuted = errors.New("cursor has no executed statement")

// ResultSet is the raw answer of one statement.
type ResultSet struct {
	Columns []string
	Rows    [][]interface{}
}

// Driver executes a single SQL statement against a store.
type Driver interface {
	Query(ctx context.Context, sql string) (*ResultSet, error)
	Close() error
}

// Conn is one connection to the store. Cursors derived from it are independent.
type Conn struct {
	driver Driver
}

func NewConn(d Driver) *Conn {
	return &Conn{driver: d}
}

// Open connects to the store selected by cfg.StoreDriver.
func Open(cfg *config.Config) (*Conn, error) {
	switch cfg.StoreDriver {
	case config.DriverPinot:
		return NewConn(NewPinot(cfg.BrokerURL(), http.DefaultClient)), nil
	case config.DriverClickhouse:
		d, err := OpenClickhouse(cfg.DbDsn)
		if err != nil {
			return nil, err
		}
		return NewConn(d), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

func (c *Conn) Cursor() *Cursor {
	return &Cursor{conn: c}
}

func (c *Conn) Close() error {
	return c.driver.Close()
}

// Cursor runs one statement and holds its result until fetched.
type Cursor struct {
	conn   *Conn
	result *ResultSet
}

func (c *Cursor) Execute(ctx context.Context, sql string) error {
	rs, err := c.conn.driver.Query(ctx, sql)
	if err != nil {
		return err
	}
	c.result = rs
	return nil
}

// Columns returns the column names of the last executed statement.
func (c *Cursor) Columns() []string {
	if c.result == nil {
		return nil
	}
	return c.result.Columns
}

func (c *Cursor) FetchAll() ([][]interface{}, error) {
	if c.result == nil {
		return nil, ErrNotExecuted
	}
	rows := c.result.Rows
	c.result = &ResultSet{Columns: c.result.Columns}
	return rows, nil
}
