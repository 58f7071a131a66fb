package project

import "context"

// Repository holds the canonical catalog. Implementations preserve
// insertion order: List must return records in the order appended.
type Repository interface {
	Append(ctx context.Context, proj *Project) error
	List(ctx context.Context) ([]Project, error)
	Get(ctx context.Context, id string) (*Project, error)
}
