package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/agencyops/agencydesk/internal/domain/project"
	"github.com/agencyops/agencydesk/internal/repository"
)

// Catalog implements repository.Catalog for SQLite. The seq column
// keeps insertion order so List never reorders the catalog.
type Catalog struct {
	db *DB
}

// NewCatalog creates a new Catalog backed by the given database.
func NewCatalog(db *DB) *Catalog {
	return &Catalog{db: db}
}

// Append adds a project to the end of the catalog.
func (c *Catalog) Append(ctx context.Context, proj *project.Project) error {
	team, err := json.Marshal(proj.Team)
	if err != nil {
		return fmt.Errorf("failed to encode team: %w", err)
	}

	query := `
		INSERT INTO projects (
			id, name, client, category, status, billing_type,
			value, start_date, end_date, team, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = c.db.ExecContext(ctx, query,
		proj.ID,
		proj.Name,
		proj.Client,
		proj.Category,
		proj.Status,
		proj.BillingType,
		proj.Value,
		proj.StartDate.Format(time.RFC3339),
		encodeDate(proj.EndDate),
		string(team),
		proj.CreatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicateID
		}
		return fmt.Errorf("failed to append project: %w", err)
	}

	return nil
}

// List returns all projects in insertion order.
func (c *Catalog) List(ctx context.Context) ([]project.Project, error) {
	query := `
		SELECT id, name, client, category, status, billing_type,
		       value, start_date, end_date, team, created_at
		FROM projects
		ORDER BY seq ASC
	`

	rows, err := c.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := make([]project.Project, 0)
	for rows.Next() {
		proj, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *proj)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}

	return projects, nil
}

// Get returns the project with the given ID.
func (c *Catalog) Get(ctx context.Context, id string) (*project.Project, error) {
	query := `
		SELECT id, name, client, category, status, billing_type,
		       value, start_date, end_date, team, created_at
		FROM projects
		WHERE id = ?
	`

	row := c.db.QueryRowContext(ctx, query, id)
	proj, err := scanProject(row)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return proj, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*project.Project, error) {
	var proj project.Project
	var startDate string
	var endDate sql.NullString
	var team string

	err := row.Scan(
		&proj.ID,
		&proj.Name,
		&proj.Client,
		&proj.Category,
		&proj.Status,
		&proj.BillingType,
		&proj.Value,
		&startDate,
		&endDate,
		&team,
		&proj.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan project: %w", err)
	}

	proj.StartDate, err = time.Parse(time.RFC3339, startDate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse start date: %w", err)
	}
	if endDate.Valid {
		end, err := time.Parse(time.RFC3339, endDate.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse end date: %w", err)
		}
		proj.EndDate = &end
	}
	if err := json.Unmarshal([]byte(team), &proj.Team); err != nil {
		return nil, fmt.Errorf("failed to decode team: %w", err)
	}

	return &proj, nil
}

func encodeDate(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(time.RFC3339)
}
