package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/agencyops/agencydesk/internal/mcp"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// CatalogHandler handles catalog method dispatch.
type CatalogHandler interface {
	Handle(ctx context.Context, method string, params json.RawMessage) (any, error)
}

// Server wires HTTP handlers.
type Server struct {
	handler CatalogHandler
}

// NewServer creates an HTTP router exposing the catalog over JSON-RPC.
func NewServer(handler CatalogHandler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	srv := &Server{handler: handler}

	r.Post("/rpc", srv.handleRPC)
	r.Get("/health", srv.handleHealth)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleRPC(w http.ResponseWriter, r *http.Request) {
	req, err := ParseRequest(r.Body)
	if err != nil {
		WriteError(w, nil, ErrInvalidReq, "invalid request", nil)
		return
	}

	result, err := s.handler.Handle(r.Context(), req.Method, req.Params)
	if err != nil {
		var apiErr *mcp.APIError
		if errors.As(err, &apiErr) {
			WriteError(w, req.ID, ErrDomain, apiErr.Message, apiErr)
			return
		}
		if errors.Is(err, mcp.ErrUnknownMethod) {
			WriteError(w, req.ID, ErrMethodNotFound, err.Error(), nil)
			return
		}
		WriteError(w, req.ID, ErrInternal, err.Error(), nil)
		return
	}

	WriteResult(w, req.ID, result)
}
