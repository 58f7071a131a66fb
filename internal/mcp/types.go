package mcp

import "github.com/agencyops/agencydesk/internal/domain/project"

// CreateProjectParams carries raw form input for a new catalog entry.
// Values stay untyped until the validator has its one pass over them.
type CreateProjectParams struct {
	Name        string   `json:"name,omitempty"`
	Client      string   `json:"client,omitempty"`
	Category    string   `json:"category,omitempty"`
	Status      string   `json:"status,omitempty"`
	BillingType string   `json:"billingType,omitempty"`
	Value       any      `json:"value,omitempty"`
	StartDate   string   `json:"startDate,omitempty"`
	EndDate     string   `json:"endDate,omitempty"`
	Team        []string `json:"team,omitempty"`
}

// Input converts the params to the validator's raw input shape,
// carrying only the fields the caller actually supplied.
func (p CreateProjectParams) Input() project.Input {
	in := project.Input{}
	if p.Name != "" {
		in["name"] = p.Name
	}
	if p.Client != "" {
		in["client"] = p.Client
	}
	if p.Category != "" {
		in["category"] = p.Category
	}
	if p.Status != "" {
		in["status"] = p.Status
	}
	if p.BillingType != "" {
		in["billingType"] = p.BillingType
	}
	if p.Value != nil {
		in["value"] = p.Value
	}
	if p.StartDate != "" {
		in["startDate"] = p.StartDate
	}
	if p.EndDate != "" {
		in["endDate"] = p.EndDate
	}
	if p.Team != nil {
		in["team"] = p.Team
	}
	return in
}

// ListProjectsParams selects filter facets. Empty fields match all.
type ListProjectsParams struct {
	Search      string `json:"search,omitempty"`
	Category    string `json:"category,omitempty"`
	Status      string `json:"status,omitempty"`
	BillingType string `json:"billingType,omitempty"`
}

// GetProjectParams identifies a single catalog entry.
type GetProjectParams struct {
	ID string `json:"id"`
}

// ListProjectsResponse returns matching projects in catalog order.
type ListProjectsResponse struct {
	Projects []project.Project `json:"projects"`
	Total    int               `json:"total"`
}

// CreateProjectResponse wraps a freshly appended project.
type CreateProjectResponse struct {
	Project project.Project `json:"project"`
}
