package catalog_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/protogen-dev/protogen"
	"github.com/protogen-dev/protogen/catalog"
)

const tablePayload = `{
	"name": "air_quality",
	"full_name": "unity.catalog.air_quality",
	"columns": [
		{"name": "id", "type_text": "INT", "nullable": false},
		{"name": "city", "type_text": "STRING", "nullable": true},
		{"name": "readings", "type_text": "ARRAY<DOUBLE>", "nullable": true}
	]
}`

func TestGetTable(t *testing.T) {
	t.Parallel()

	var gotPath, gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(tablePayload))
	}))
	defer srv.Close()

	client := catalog.NewClient(srv.URL, "dapi123")

	table, err := client.GetTable(context.Background(), "unity.catalog.air_quality")
	require.NoError(t, err)

	assert.Equal(t, "/api/2.1/unity-catalog/tables/unity.catalog.air_quality", gotPath)
	assert.Equal(t, "Bearer dapi123", gotAuth)
	assert.Equal(t, "air_quality", table.Name)
	assert.Equal(t, []protogen.Column{
		{Name: "id", TypeText: "INT", Nullable: false},
		{Name: "city", TypeText: "STRING", Nullable: true},
		{Name: "readings", TypeText: "ARRAY<DOUBLE>", Nullable: true},
	}, table.Columns)
}

func TestGetTable_TrimsTrailingSlash(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/2.1/unity-catalog/tables/a.b.c", r.URL.Path)
		_, _ = w.Write([]byte(`{"name": "c", "columns": []}`))
	}))
	defer srv.Close()

	client := catalog.NewClient(srv.URL+"/", "tok")

	table, err := client.GetTable(context.Background(), "a.b.c")
	require.NoError(t, err)
	assert.Empty(t, table.Columns)
}

func TestGetTable_HTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error_code": "TABLE_DOES_NOT_EXIST"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	client := catalog.NewClient(srv.URL, "tok")

	_, err := client.GetTable(context.Background(), "a.b.missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, catalog.ErrFetch))
	assert.Contains(t, err.Error(), "404")
	assert.Contains(t, err.Error(), "a.b.missing")
}

func TestGetTable_TransportError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused

	client := catalog.NewClient(srv.URL, "tok")

	_, err := client.GetTable(context.Background(), "a.b.c")
	require.Error(t, err)
	assert.True(t, errors.Is(err, catalog.ErrFetch))
}

func TestGetTable_SchemaShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		payload  string
		contains string
	}{
		{"missing columns", `{"name": "t"}`, `"columns"`},
		{"column missing name", `{"columns": [{"type_text": "INT"}]}`, `"name"`},
		{"column missing type_text", `{"columns": [{"name": "id"}]}`, `"type_text"`},
		{"not json", `<html>login</html>`, ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.payload))
			}))
			defer srv.Close()

			client := catalog.NewClient(srv.URL, "tok")

			_, err := client.GetTable(context.Background(), "a.b.c")
			require.Error(t, err)
			assert.True(t, errors.Is(err, catalog.ErrSchemaShape))
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestGetTable_WithHTTPClient(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name": "t", "columns": []}`))
	}))
	defer srv.Close()

	client := catalog.NewClient(srv.URL, "tok", catalog.WithHTTPClient(srv.Client()))

	_, err := client.GetTable(context.Background(), "a.b.c")
	require.NoError(t, err)
}
