package project

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Service handles catalog operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new catalog service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// Create validates raw input, assigns a fresh ID, and appends the
// project to the catalog. Invalid input returns a *ValidationError
// carrying every failed field.
func (s *Service) Create(ctx context.Context, in Input) (*Project, error) {
	draft, fieldErrs := Validate(in)
	if len(fieldErrs) > 0 {
		return nil, &ValidationError{Fields: fieldErrs}
	}

	proj := &Project{
		ID:        uuid.NewString(),
		Draft:     draft,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Append(ctx, proj); err != nil {
		return nil, fmt.Errorf("appending project: %w", err)
	}

	s.logger.Info("project created", "id", proj.ID, "name", proj.Name, "client", proj.Client)
	return proj, nil
}

// List returns the catalog entries matching the criteria, in catalog order.
func (s *Service) List(ctx context.Context, criteria FilterCriteria) ([]Project, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	return Filter(records, criteria), nil
}

// Get fetches a project by ID.
func (s *Service) Get(ctx context.Context, id string) (*Project, error) {
	proj, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}
	return proj, nil
}

// Summary aggregates status counts and total value over the catalog.
func (s *Service) Summary(ctx context.Context) (CatalogSummary, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return CatalogSummary{}, fmt.Errorf("listing projects: %w", err)
	}

	summary := CatalogSummary{
		Total:    len(records),
		ByStatus: make(map[Status]int, len(Statuses())),
	}
	for _, st := range Statuses() {
		summary.ByStatus[st] = 0
	}
	for _, p := range records {
		summary.ByStatus[p.Status]++
		summary.TotalValue += p.Value
	}
	return summary, nil
}
