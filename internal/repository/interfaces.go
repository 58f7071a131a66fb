package repository

import (
	"context"

	"github.com/agencyops/agencydesk/internal/domain/project"
)

// Catalog holds the canonical, append-only project collection.
// List returns records in insertion order; implementations never reorder.
type Catalog interface {
	Append(ctx context.Context, proj *project.Project) error
	List(ctx context.Context) ([]project.Project, error)
	Get(ctx context.Context, id string) (*project.Project, error)
}
