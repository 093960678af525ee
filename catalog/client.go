// Package catalog fetches table schemas from a Unity Catalog REST endpoint.
//
// The client is the generator's only external collaborator: given a
// fully-qualified table name it returns the column list (name, type_text,
// nullable). It performs no retries and sets no timeout of its own; callers
// wanting either supply their own http.Client.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/protogen-dev/protogen"
)

// Client errors.
var (
	// ErrFetch is returned when the catalog request fails at the transport
	// or HTTP level.
	ErrFetch = errors.New("catalog: fetch failed")

	// ErrSchemaShape is returned when the fetched payload lacks a required
	// column field.
	ErrSchemaShape = errors.New("catalog: unexpected schema shape")
)

// tablesPath is the Unity Catalog tables API prefix.
const tablesPath = "/api/2.1/unity-catalog/tables/"

// Client fetches table schemas from a Unity Catalog endpoint.
type Client struct {
	endpoint string
	token    string
	httpc    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client. This is where a
// timeout or retry policy belongs, if one is wanted.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.httpc = c }
}

// NewClient creates a catalog client for the given endpoint URL and bearer
// token.
func NewClient(endpoint, token string, opts ...Option) *Client {
	c := &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		token:    token,
		httpc:    http.DefaultClient,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Table is the subset of the catalog's table payload the generator needs.
type Table struct {
	Name    string            `json:"name" yaml:"name"`
	Columns []protogen.Column `json:"columns" yaml:"columns"`
}

// GetTable fetches the schema of a table by its fully-qualified name
// (catalog.schema.table).
func (c *Client) GetTable(ctx context.Context, fullName string) (*Table, error) {
	reqURL := c.endpoint + tablesPath + url.PathEscape(fullName)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: %s: %s: %s", ErrFetch, fullName, resp.Status, strings.TrimSpace(string(body)))
	}

	return decodeTable(resp.Body)
}

// decodeTable decodes and shape-checks a table payload. Every column must
// carry name and type_text; a missing field is surfaced by name.
func decodeTable(r io.Reader) (*Table, error) {
	var payload struct {
		Name    string            `json:"name"`
		Columns []json.RawMessage `json:"columns"`
	}

	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchemaShape, err)
	}

	if payload.Columns == nil {
		return nil, fmt.Errorf("%w: missing %q", ErrSchemaShape, "columns")
	}

	table := &Table{
		Name:    payload.Name,
		Columns: make([]protogen.Column, 0, len(payload.Columns)),
	}

	for i, raw := range payload.Columns {
		// Pointer fields distinguish a missing key from an empty value.
		var col struct {
			Name     *string `json:"name"`
			TypeText *string `json:"type_text"`
			Nullable bool    `json:"nullable"`
		}

		if err := json.Unmarshal(raw, &col); err != nil {
			return nil, fmt.Errorf("%w: column %d: %w", ErrSchemaShape, i, err)
		}

		if col.Name == nil {
			return nil, fmt.Errorf("%w: column %d missing %q", ErrSchemaShape, i, "name")
		}

		if col.TypeText == nil {
			return nil, fmt.Errorf("%w: column %q missing %q", ErrSchemaShape, *col.Name, "type_text")
		}

		table.Columns = append(table.Columns, protogen.Column{
			Name:     *col.Name,
			TypeText: *col.TypeText,
			Nullable: col.Nullable,
		})
	}

	return table, nil
}
