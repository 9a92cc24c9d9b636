// Package ports defines the interfaces (ports) between the application
// layer and its adapters, following hexagonal architecture.
//
// Repositories own the stored collections; no other component mutates them
// directly. Compound check-then-act operations (duplicate-name check plus
// insert, existence check plus adopt) are atomic with respect to concurrent
// callers - that contract is part of the interface, not an implementation
// detail.
package ports

import (
	"context"

	"github.com/petlink/petlink-api/internal/domain"
)

// PetRepository owns the pet collection.
type PetRepository interface {
	// List returns all pets in insertion order.
	List(ctx context.Context) ([]domain.Pet, error)

	// Find returns the page [offset, offset+limit) of pets matching the
	// filter in createdAt-ascending order, plus the total match count
	// before slicing. Both are computed under the same read lock so a
	// page and its total are always consistent.
	Find(ctx context.Context, filter domain.PetFilter, offset, limit int) ([]domain.Pet, int, error)

	// GetByID returns the pet or a not found error.
	GetByID(ctx context.Context, id int64) (domain.Pet, error)

	// Create assigns the next id, rejects case-insensitive duplicate
	// names with a conflict error, and stores the pet.
	Create(ctx context.Context, pet domain.Pet) (domain.Pet, error)

	// Update applies the attrs to an existing pet. Renaming to a name
	// held by a different pet is a conflict. Adopted and CreatedAt are
	// not touched.
	Update(ctx context.Context, id int64, attrs domain.PetAttrs) (domain.Pet, error)

	// Delete removes a pet. Adopted pets cannot be deleted.
	Delete(ctx context.Context, id int64) error

	// Adopt latches the pet to adopted. Adopting twice is a business
	// rule violation.
	Adopt(ctx context.Context, id int64) (domain.Pet, error)
}

// UserRepository owns the user collection.
type UserRepository interface {
	// GetByUsername looks up a user case-insensitively.
	GetByUsername(ctx context.Context, username string) (domain.User, error)

	// Create stores a user, rejecting case-insensitive duplicate
	// usernames and emails with conflict errors.
	Create(ctx context.Context, user domain.User) error
}
