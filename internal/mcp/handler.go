package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/agencyops/agencydesk/internal/domain/project"
)

// ProjectService defines catalog operations needed by MCP.
type ProjectService interface {
	Create(ctx context.Context, in project.Input) (*project.Project, error)
	List(ctx context.Context, criteria project.FilterCriteria) ([]project.Project, error)
	Get(ctx context.Context, id string) (*project.Project, error)
	Summary(ctx context.Context) (project.CatalogSummary, error)
}

// Handler dispatches catalog methods.
type Handler struct {
	projects ProjectService
}

// NewHandler creates a new MCP handler.
func NewHandler(projects ProjectService) *Handler {
	return &Handler{projects: projects}
}

// Handle dispatches a method call to the catalog service.
func (h *Handler) Handle(ctx context.Context, method string, params json.RawMessage) (any, error) {
	switch method {
	case "create_project":
		var req CreateProjectParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.CreateProject(ctx, req)
	case "list_projects":
		var req ListProjectsParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.ListProjects(ctx, req)
	case "get_project":
		var req GetProjectParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.GetProject(ctx, req)
	case "catalog_summary":
		return h.CatalogSummary(ctx)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMethod, method)
	}
}

// CreateProject validates raw input and appends the project.
func (h *Handler) CreateProject(ctx context.Context, req CreateProjectParams) (CreateProjectResponse, error) {
	proj, err := h.projects.Create(ctx, req.Input())
	if err != nil {
		return CreateProjectResponse{}, mapError(err)
	}
	return CreateProjectResponse{Project: *proj}, nil
}

// ListProjects filters the catalog by the requested facets.
func (h *Handler) ListProjects(ctx context.Context, req ListProjectsParams) (ListProjectsResponse, error) {
	criteria, matchNone := criteriaFromParams(req)
	if matchNone {
		return ListProjectsResponse{Projects: []project.Project{}}, nil
	}

	projects, err := h.projects.List(ctx, criteria)
	if err != nil {
		return ListProjectsResponse{}, mapError(err)
	}
	return ListProjectsResponse{Projects: projects, Total: len(projects)}, nil
}

// GetProject fetches one catalog entry by ID.
func (h *Handler) GetProject(ctx context.Context, req GetProjectParams) (*project.Project, error) {
	proj, err := h.projects.Get(ctx, req.ID)
	if err != nil {
		return nil, mapError(err)
	}
	return proj, nil
}

// CatalogSummary aggregates catalog stats.
func (h *Handler) CatalogSummary(ctx context.Context) (project.CatalogSummary, error) {
	summary, err := h.projects.Summary(ctx)
	if err != nil {
		return project.CatalogSummary{}, mapError(err)
	}
	return summary, nil
}

// criteriaFromParams builds filter criteria from raw facet text.
// Criteria are never an error: a facet value outside its closed enum
// can equal no record, so it matches nothing rather than failing.
func criteriaFromParams(req ListProjectsParams) (project.FilterCriteria, bool) {
	criteria := project.FilterCriteria{Search: req.Search}

	if req.Category != "" {
		cat, ok := project.ParseCategory(req.Category)
		if !ok {
			return project.FilterCriteria{}, true
		}
		criteria.Category = &cat
	}
	if req.Status != "" {
		status, ok := project.ParseStatus(req.Status)
		if !ok {
			return project.FilterCriteria{}, true
		}
		criteria.Status = &status
	}
	if req.BillingType != "" {
		billing, ok := project.ParseBillingType(req.BillingType)
		if !ok {
			return project.FilterCriteria{}, true
		}
		criteria.BillingType = &billing
	}

	return criteria, false
}

func decodeParams(params json.RawMessage, out any) error {
	if len(params) == 0 {
		return nil
	}
	return json.Unmarshal(params, out)
}

func mapError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}
