package mocks

import (
	"context"

	"github.com/agencyops/agencydesk/internal/domain/project"
	"github.com/stretchr/testify/mock"
)

// Catalog is a mock for repository.Catalog.
type Catalog struct {
	mock.Mock
}

func (m *Catalog) Append(ctx context.Context, proj *project.Project) error {
	args := m.Called(ctx, proj)
	return args.Error(0)
}

func (m *Catalog) List(ctx context.Context) ([]project.Project, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]project.Project); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Catalog) Get(ctx context.Context, id string) (*project.Project, error) {
	args := m.Called(ctx, id)
	if proj, ok := args.Get(0).(*project.Project); ok {
		return proj, args.Error(1)
	}
	return nil, args.Error(1)
}
