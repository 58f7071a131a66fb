// Package memory provides the default in-process catalog backend.
package memory

import (
	"context"
	"sync"

	"github.com/agencyops/agencydesk/internal/domain/project"
	"github.com/agencyops/agencydesk/internal/repository"
)

// Catalog is an append-only, insertion-ordered project store.
type Catalog struct {
	mu      sync.RWMutex
	records []project.Project
	byID    map[string]int
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{byID: make(map[string]int)}
}

// Append adds a project to the end of the catalog.
func (c *Catalog) Append(_ context.Context, proj *project.Project) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.byID[proj.ID]; exists {
		return repository.ErrDuplicateID
	}
	c.byID[proj.ID] = len(c.records)
	c.records = append(c.records, *proj)
	return nil
}

// List returns all projects in insertion order.
func (c *Catalog) List(_ context.Context) ([]project.Project, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]project.Project, len(c.records))
	copy(out, c.records)
	return out, nil
}

// Get returns the project with the given ID.
func (c *Catalog) Get(_ context.Context, id string) (*project.Project, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	idx, ok := c.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	proj := c.records[idx]
	return &proj, nil
}
