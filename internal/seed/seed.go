// Package seed loads an initial catalog from a YAML file. Every entry
// passes through the same validation as client-submitted input, so a
// bad seed file fails startup instead of planting invalid records.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/agencyops/agencydesk/internal/domain/project"
	"github.com/agencyops/agencydesk/internal/repository"
)

// Load reads the YAML file at path and appends its entries to the
// catalog in file order. Entries without an id get a generated one.
func Load(ctx context.Context, path string, catalog repository.Catalog, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}

	var entries []map[string]any
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	for i, entry := range entries {
		proj, err := buildProject(entry)
		if err != nil {
			return fmt.Errorf("seed entry %d: %w", i, err)
		}
		if err := catalog.Append(ctx, proj); err != nil {
			return fmt.Errorf("seed entry %d (%s): %w", i, proj.ID, err)
		}
	}

	logger.Info("catalog seeded", "path", path, "count", len(entries))
	return nil
}

func buildProject(entry map[string]any) (*project.Project, error) {
	id := ""
	if raw, ok := entry["id"]; ok {
		s, ok := raw.(string)
		if !ok || s == "" {
			return nil, fmt.Errorf("id must be a non-empty string")
		}
		id = s
		delete(entry, "id")
	}
	if id == "" {
		id = uuid.NewString()
	}

	draft, fieldErrs := project.Validate(entry)
	if len(fieldErrs) > 0 {
		return nil, &project.ValidationError{Fields: fieldErrs}
	}

	return &project.Project{
		ID:        id,
		Draft:     draft,
		CreatedAt: time.Now().UTC(),
	}, nil
}
