package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/agencyops/agencydesk/internal/domain/project"
	"github.com/agencyops/agencydesk/internal/memory"
	"github.com/stretchr/testify/require"
)

func newHandler(t *testing.T) (*Handler, *project.Service) {
	t.Helper()
	svc := project.NewService(memory.NewCatalog(), nil)
	return NewHandler(svc), svc
}

func seedProject(t *testing.T, svc *project.Service, name, client, category, status, billing string) *project.Project {
	t.Helper()
	proj, err := svc.Create(context.Background(), project.Input{
		"name":        name,
		"client":      client,
		"category":    category,
		"status":      status,
		"billingType": billing,
		"value":       1000,
		"startDate":   "2025-01-01",
	})
	require.NoError(t, err)
	return proj
}

func TestHandler_CreateProject(t *testing.T) {
	h, _ := newHandler(t)
	ctx := context.Background()

	resp, err := h.CreateProject(ctx, CreateProjectParams{
		Name:        "Site Revamp",
		Client:      "Acme Co",
		Category:    "Development",
		Status:      "inprogress",
		BillingType: "fixed",
		Value:       "50000",
		StartDate:   "2025-01-01",
		Team:        []string{"Ana"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Project.ID)
	require.Equal(t, float64(50000), resp.Project.Value)
	require.Equal(t, project.CategoryDevelopment, resp.Project.Category)
}

func TestHandler_CreateProject_ValidationFailureListsEveryField(t *testing.T) {
	h, _ := newHandler(t)

	_, err := h.CreateProject(context.Background(), CreateProjectParams{
		Name:  "A",
		Value: "-5",
	})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "VALIDATION_FAILED", apiErr.Code)

	fields, ok := apiErr.Details.([]project.FieldError)
	require.True(t, ok)
	names := make([]string, 0, len(fields))
	for _, fe := range fields {
		names = append(names, fe.Field)
	}
	require.Contains(t, names, "name")
	require.Contains(t, names, "client")
	require.Contains(t, names, "value")
	require.Contains(t, names, "startDate")
}

func TestHandler_ListProjects_Facets(t *testing.T) {
	h, svc := newHandler(t)
	ctx := context.Background()

	seedProject(t, svc, "Site Revamp", "Acme Co", "development", "inprogress", "fixed")
	seedProject(t, svc, "Monthly SEO", "Borealis", "performance", "billed", "retainer")

	resp, err := h.ListProjects(ctx, ListProjectsParams{})
	require.NoError(t, err)
	require.Equal(t, 2, resp.Total)

	resp, err = h.ListProjects(ctx, ListProjectsParams{Search: "acme", Category: "development"})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	require.Equal(t, "Site Revamp", resp.Projects[0].Name)
}

func TestHandler_ListProjects_UnknownFacetMatchesNothing(t *testing.T) {
	h, svc := newHandler(t)
	ctx := context.Background()
	seedProject(t, svc, "Site Revamp", "Acme Co", "development", "inprogress", "fixed")

	// Criteria are never an error, even nonsense ones.
	resp, err := h.ListProjects(ctx, ListProjectsParams{Category: "surprise"})
	require.NoError(t, err)
	require.Equal(t, 0, resp.Total)
	require.NotNil(t, resp.Projects)
}

func TestHandler_GetProject(t *testing.T) {
	h, svc := newHandler(t)
	ctx := context.Background()
	proj := seedProject(t, svc, "Site Revamp", "Acme Co", "development", "inprogress", "fixed")

	got, err := h.GetProject(ctx, GetProjectParams{ID: proj.ID})
	require.NoError(t, err)
	require.Equal(t, proj.ID, got.ID)

	_, err = h.GetProject(ctx, GetProjectParams{ID: "missing"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "PROJECT_NOT_FOUND", apiErr.Code)
}

func TestHandler_CatalogSummary(t *testing.T) {
	h, svc := newHandler(t)
	ctx := context.Background()
	seedProject(t, svc, "Site Revamp", "Acme Co", "development", "inprogress", "fixed")
	seedProject(t, svc, "Monthly SEO", "Borealis", "performance", "billed", "retainer")

	summary, err := h.CatalogSummary(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, summary.Total)
	require.Equal(t, 1, summary.ByStatus[project.StatusInProgress])
	require.Equal(t, float64(2000), summary.TotalValue)
}

func TestHandler_Handle_Dispatch(t *testing.T) {
	h, svc := newHandler(t)
	ctx := context.Background()
	seedProject(t, svc, "Site Revamp", "Acme Co", "development", "inprogress", "fixed")

	params, _ := json.Marshal(map[string]any{"search": "revamp"})
	result, err := h.Handle(ctx, "list_projects", params)
	require.NoError(t, err)
	resp, ok := result.(ListProjectsResponse)
	require.True(t, ok)
	require.Equal(t, 1, resp.Total)

	_, err = h.Handle(ctx, "destroy_catalog", nil)
	require.ErrorIs(t, err, ErrUnknownMethod)
}
