package repository

import (
	"errors"
	"testing"

	"github.com/agencyops/agencydesk/internal/domain/project"
	"github.com/stretchr/testify/require"
)

// Backends return the repository sentinels while the domain service
// matches against its own; both must be the same values.
func TestSentinelsMatchDomain(t *testing.T) {
	require.True(t, errors.Is(ErrNotFound, project.ErrNotFound))
	require.True(t, errors.Is(ErrDuplicateID, project.ErrDuplicateID))
}
