package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/agencyops/agencydesk/internal/mcp"
	"github.com/stretchr/testify/require"
)

type testHandler struct {
	method string
	err    error
}

func (h *testHandler) Handle(_ context.Context, method string, params json.RawMessage) (any, error) {
	h.method = method
	if h.err != nil {
		return nil, h.err
	}
	return map[string]string{"status": "ok"}, nil
}

func postRPC(t *testing.T, url, payload string) *http.Response {
	t.Helper()
	resp, err := http.Post(url+"/rpc", "application/json", bytes.NewBufferString(payload))
	require.NoError(t, err)
	return resp
}

func TestHTTPServer_RPC(t *testing.T) {
	handler := &testHandler{}
	server := httptest.NewServer(NewServer(handler))
	t.Cleanup(server.Close)

	resp := postRPC(t, server.URL, `{"jsonrpc":"2.0","method":"list_projects","id":1}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "list_projects", handler.method)

	var body Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Nil(t, body.Error)
}

func TestHTTPServer_RPC_DomainError(t *testing.T) {
	handler := &testHandler{err: &mcp.APIError{Code: "VALIDATION_FAILED", Message: "project input failed validation"}}
	server := httptest.NewServer(NewServer(handler))
	t.Cleanup(server.Close)

	resp := postRPC(t, server.URL, `{"jsonrpc":"2.0","method":"create_project","id":2}`)

	var body Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotNil(t, body.Error)
	require.Equal(t, ErrDomain, body.Error.Code)
	require.Equal(t, "project input failed validation", body.Error.Message)
}

func TestHTTPServer_RPC_InternalError(t *testing.T) {
	handler := &testHandler{err: errors.New("storage offline")}
	server := httptest.NewServer(NewServer(handler))
	t.Cleanup(server.Close)

	resp := postRPC(t, server.URL, `{"jsonrpc":"2.0","method":"list_projects","id":3}`)

	var body Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotNil(t, body.Error)
	require.Equal(t, ErrInternal, body.Error.Code)
}

func TestHTTPServer_RPC_MethodNotFound(t *testing.T) {
	handler := &testHandler{err: fmt.Errorf("%w: drop_catalog", mcp.ErrUnknownMethod)}
	server := httptest.NewServer(NewServer(handler))
	t.Cleanup(server.Close)

	resp := postRPC(t, server.URL, `{"jsonrpc":"2.0","method":"drop_catalog","id":4}`)

	var body Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotNil(t, body.Error)
	require.Equal(t, ErrMethodNotFound, body.Error.Code)
}

func TestHTTPServer_RPC_InvalidPayload(t *testing.T) {
	handler := &testHandler{}
	server := httptest.NewServer(NewServer(handler))
	t.Cleanup(server.Close)

	resp := postRPC(t, server.URL, `not json`)

	var body Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotNil(t, body.Error)
	require.Equal(t, ErrInvalidReq, body.Error.Code)
}

func TestHTTPServer_Health(t *testing.T) {
	handler := &testHandler{}
	server := httptest.NewServer(NewServer(handler))
	t.Cleanup(server.Close)

	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
