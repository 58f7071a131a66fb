// Package testserver stands up the full catalog stack behind an
// httptest server for integration tests.
package testserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agencyops/agencydesk/internal/domain/project"
	"github.com/agencyops/agencydesk/internal/mcp"
	"github.com/agencyops/agencydesk/internal/memory"
	"github.com/agencyops/agencydesk/internal/repository"
	"github.com/agencyops/agencydesk/internal/sqlite"
	"github.com/agencyops/agencydesk/internal/transport"
)

type TestServer struct {
	Server  *httptest.Server
	Catalog repository.Catalog

	t      *testing.T
	nextID int
}

// New builds a test server backed by the in-memory catalog.
func New(t *testing.T) *TestServer {
	t.Helper()
	return newWithCatalog(t, memory.NewCatalog())
}

// NewSQLite builds a test server backed by an isolated in-memory
// SQLite database.
func NewSQLite(t *testing.T) *TestServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())
	t.Cleanup(func() { _ = db.Close() })

	return newWithCatalog(t, sqlite.NewCatalog(db))
}

func newWithCatalog(t *testing.T, catalog repository.Catalog) *TestServer {
	t.Helper()

	svc := project.NewService(catalog, nil)
	handler := mcp.NewHandler(svc)
	server := httptest.NewServer(transport.NewServer(handler))
	t.Cleanup(server.Close)

	return &TestServer{Server: server, Catalog: catalog, t: t}
}

// Call posts a JSON-RPC request for method with the given params and
// returns the decoded response.
func (ts *TestServer) Call(method string, params any) transport.Response {
	ts.t.Helper()

	ts.nextID++
	rawParams, err := json.Marshal(params)
	require.NoError(ts.t, err)

	req := transport.Request{
		JSONRPC: "2.0",
		ID:      ts.nextID,
		Method:  method,
		Params:  rawParams,
	}
	body, err := json.Marshal(req)
	require.NoError(ts.t, err)

	resp, err := http.Post(ts.Server.URL+"/rpc", "application/json", bytes.NewReader(body))
	require.NoError(ts.t, err)
	defer resp.Body.Close()

	var rpcResp transport.Response
	require.NoError(ts.t, json.NewDecoder(resp.Body).Decode(&rpcResp))
	return rpcResp
}

// MustResult fails the test unless the response succeeded, then
// unmarshals the result into out.
func (ts *TestServer) MustResult(resp transport.Response, out any) {
	ts.t.Helper()

	require.Nil(ts.t, resp.Error, "unexpected RPC error: %+v", resp.Error)
	raw, err := json.Marshal(resp.Result)
	require.NoError(ts.t, err)
	require.NoError(ts.t, json.Unmarshal(raw, out))
}
