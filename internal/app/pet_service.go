// Package app contains application services that orchestrate use cases.
// This is the application layer - it coordinates domain rules and the
// repositories behind port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/petlink/petlink-api/internal/domain"
	"github.com/petlink/petlink-api/internal/platform/logging"
	"github.com/petlink/petlink-api/internal/ports"
)

// Clock returns the current time; injected so tests can pin timestamps.
type Clock func() time.Time

// PetService orchestrates pet use cases. It validates inputs against the
// configured bounds, delegates storage to the repository, and returns only
// domain errors.
type PetService struct {
	repo   ports.PetRepository
	limits domain.Limits
	now    Clock
	logger *slog.Logger
}

// PetServiceConfig contains the pet service dependencies.
type PetServiceConfig struct {
	Repo   ports.PetRepository
	Limits domain.Limits
	Now    Clock
	Logger *slog.Logger
}

// NewPetService creates a pet service with the provided dependencies.
func NewPetService(cfg PetServiceConfig) *PetService {
	if cfg.Repo == nil {
		panic("app: PetService requires a repository")
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &PetService{
		repo:   cfg.Repo,
		limits: cfg.Limits,
		now:    now,
		logger: logger.With(slog.String("component", "app.PetService")),
	}
}

// ListAll returns every pet in stable insertion order.
func (s *PetService) ListAll(ctx context.Context) ([]domain.Pet, error) {
	pets, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing pets: %w", err)
	}

	return pets, nil
}

// List returns one page of pets ordered by createdAt ascending, plus the
// total count before slicing.
func (s *PetService) List(ctx context.Context, page, pageSize int) ([]domain.Pet, int, error) {
	return s.Search(ctx, domain.PetFilter{}, page, pageSize)
}

// Search filters pets by the AND-combined optional criteria and paginates
// the result.
func (s *PetService) Search(ctx context.Context, filter domain.PetFilter, page, pageSize int) ([]domain.Pet, int, error) {
	if err := s.limits.ValidatePagination(page, pageSize); err != nil {
		return nil, 0, err
	}

	pets, total, err := s.repo.Find(ctx, filter, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("searching pets: %w", err)
	}

	return pets, total, nil
}

// GetByID returns a single pet. Absence is a not found error; the
// endpoint layer decides that means 404.
func (s *PetService) GetByID(ctx context.Context, id int64) (domain.Pet, error) {
	if err := s.limits.ValidateID(id, "pet id"); err != nil {
		return domain.Pet{}, err
	}

	return s.repo.GetByID(ctx, id)
}

// Create validates the attrs and stores a new pet. The id and createdAt
// are server-assigned and adopted always starts false.
func (s *PetService) Create(ctx context.Context, attrs domain.PetAttrs) (domain.Pet, error) {
	if err := s.limits.ValidatePetAttrs(attrs); err != nil {
		return domain.Pet{}, err
	}

	pet, err := s.repo.Create(ctx, domain.Pet{
		Name:        attrs.Name,
		Type:        attrs.Type,
		Description: attrs.Description,
		Age:         attrs.Age,
		Adopted:     false,
		CreatedAt:   s.now(),
	})
	if err != nil {
		return domain.Pet{}, err
	}

	logging.FromContext(ctx).Info("pet created",
		slog.Int64("pet_id", pet.ID),
		slog.String("name", pet.Name),
	)

	return pet, nil
}

// Update validates and applies the attrs to an existing pet. Adopted and
// createdAt are immutable through this path.
func (s *PetService) Update(ctx context.Context, id int64, attrs domain.PetAttrs) (domain.Pet, error) {
	if err := s.limits.ValidateID(id, "pet id"); err != nil {
		return domain.Pet{}, err
	}

	if err := s.limits.ValidatePetAttrs(attrs); err != nil {
		return domain.Pet{}, err
	}

	pet, err := s.repo.Update(ctx, id, attrs)
	if err != nil {
		return domain.Pet{}, err
	}

	logging.FromContext(ctx).Info("pet updated", slog.Int64("pet_id", id))

	return pet, nil
}

// Delete removes a pet. Adopted pets are protected by the repository.
func (s *PetService) Delete(ctx context.Context, id int64) error {
	if err := s.limits.ValidateID(id, "pet id"); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	logging.FromContext(ctx).Info("pet deleted", slog.Int64("pet_id", id))

	return nil
}

// Adopt flips the one-way adopted latch.
func (s *PetService) Adopt(ctx context.Context, id int64) (domain.Pet, error) {
	if err := s.limits.ValidateID(id, "pet id"); err != nil {
		return domain.Pet{}, err
	}

	pet, err := s.repo.Adopt(ctx, id)
	if err != nil {
		return domain.Pet{}, err
	}

	logging.FromContext(ctx).Info("pet adopted", slog.Int64("pet_id", id))

	return pet, nil
}
