package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

type pinotDriver struct {
	url    string
	client *http.Client
}

// NewPinot returns a driver posting SQL to a Pinot broker query endpoint.
func NewPinot(url string, client *http.Client) Driver {
	if client == nil {
		client = http.DefaultClient
	}
	return &pinotDriver{url: url, client: client}
}

type brokerResponse struct {
	ResultTable *struct {
		DataSchema struct {
			ColumnNames     []string `json:"columnNames"`
			ColumnDataTypes []string `json:"columnDataTypes"`
		} `json:"dataSchema"`
		Rows [][]interface{} `json:"rows"`
	} `json:"resultTable"`
	Exceptions []struct {
		ErrorCode int    `json:"errorCode"`
		Message   string `json:"message"`
	} `json:"exceptions"`
}

func (d *pinotDriver) Query(ctx context.Context, sql string) (*ResultSet, error) {
	payload, err := json.Marshal(map[string]string{"sql": sql})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("pinot request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pinot query: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("pinot query: %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	var br brokerResponse
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(&br); err != nil {
		return nil, fmt.Errorf("pinot decode: %w", err)
	}
	if len(br.Exceptions) > 0 {
		e := br.Exceptions[0]
		return nil, fmt.Errorf("pinot broker error %d: %s", e.ErrorCode, e.Message)
	}
	if br.ResultTable == nil {
		return &ResultSet{}, nil
	}
	return &ResultSet{
		Columns: br.ResultTable.DataSchema.ColumnNames,
		Rows:    br.ResultTable.Rows,
	}, nil
}

func (d *pinotDriver) Close() error {
	d.client.CloseIdleConnections()
	return nil
}
