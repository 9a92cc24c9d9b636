// Package memory provides in-memory repository implementations.
//
// The stores are the process-wide "database" for the registry. Each store
// guards its collection with a single mutex so that compound operations
// (duplicate-name check plus insert, existence check plus adopt) are atomic
// with respect to concurrent requests. Readers take the read lock and copy,
// so a reader never observes a partially-applied write.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/petlink/petlink-api/internal/domain"
)

// PetStore is a mutex-guarded in-memory pet collection.
type PetStore struct {
	mu     sync.RWMutex
	byID   map[int64]domain.Pet
	order  []int64
	nextID int64
	msgs   domain.Messages
}

// NewPetStore creates a pet store seeded with the given pets.
// The id counter starts above the highest seeded id.
func NewPetStore(msgs domain.Messages, seed []domain.Pet) *PetStore {
	s := &PetStore{
		byID: make(map[int64]domain.Pet, len(seed)),
		msgs: msgs,
	}

	for _, p := range seed {
		s.byID[p.ID] = p
		s.order = append(s.order, p.ID)

		if p.ID > s.nextID {
			s.nextID = p.ID
		}
	}

	return s
}

// List returns all pets in insertion order.
func (s *PetStore) List(_ context.Context) ([]domain.Pet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Pet, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}

	return out, nil
}

// Find returns the requested page of matching pets in createdAt-ascending
// order plus the total match count. Page and total come from the same
// locked snapshot.
func (s *PetStore) Find(_ context.Context, filter domain.PetFilter, offset, limit int) ([]domain.Pet, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]domain.Pet, 0, len(s.order))
	for _, id := range s.order {
		p := s.byID[id]
		if matches(p, filter) {
			matched = append(matched, p)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].ID < matched[j].ID
		}
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})

	total := len(matched)

	// offset goes negative when the caller's page*pageSize product
	// overflows; either way the page is past the end.
	if offset < 0 || offset >= total {
		return []domain.Pet{}, total, nil
	}

	end := offset + limit
	if end > total {
		end = total
	}

	return matched[offset:end], total, nil
}

// GetByID returns the pet or a not found error.
func (s *PetStore) GetByID(_ context.Context, id int64) (domain.Pet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.byID[id]
	if !ok {
		return domain.Pet{}, domain.NewNotFoundError("pet", id)
	}

	return p, nil
}

// Create assigns the next id and stores the pet. Case-insensitive
// duplicate names are a conflict; the check and the insert happen under
// one write lock.
func (s *PetStore) Create(_ context.Context, pet domain.Pet) (domain.Pet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.nameTakenLocked(pet.Name, 0) {
		return domain.Pet{}, domain.NewConflictError("pet", s.msgs.DuplicatePetName)
	}

	s.nextID++
	pet.ID = s.nextID

	s.byID[pet.ID] = pet
	s.order = append(s.order, pet.ID)

	return pet, nil
}

// Update applies attrs to an existing pet. Renaming to a name held by a
// different pet is a conflict. Adopted and CreatedAt are preserved.
func (s *PetStore) Update(_ context.Context, id int64, attrs domain.PetAttrs) (domain.Pet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.byID[id]
	if !ok {
		return domain.Pet{}, domain.NewNotFoundError("pet", id)
	}

	if s.nameTakenLocked(attrs.Name, id) {
		return domain.Pet{}, domain.NewConflictError("pet", s.msgs.DuplicatePetName)
	}

	p.Name = attrs.Name
	p.Type = attrs.Type
	p.Description = attrs.Description
	p.Age = attrs.Age

	s.byID[id] = p

	return p, nil
}

// Delete removes a pet. Adopted pets cannot be deleted.
func (s *PetStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.byID[id]
	if !ok {
		return domain.NewNotFoundError("pet", id)
	}

	if p.Adopted {
		return domain.NewBusinessRuleError(s.msgs.CannotDeleteAdopted)
	}

	delete(s.byID, id)

	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	return nil
}

// Adopt latches the pet to adopted. The latch is one-way.
func (s *PetStore) Adopt(_ context.Context, id int64) (domain.Pet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.byID[id]
	if !ok {
		return domain.Pet{}, domain.NewNotFoundError("pet", id)
	}

	if p.Adopted {
		return domain.Pet{}, domain.NewBusinessRuleError(s.msgs.AlreadyAdopted)
	}

	p.Adopted = true
	s.byID[id] = p

	return p, nil
}

// Name implements ports.HealthChecker.
func (s *PetStore) Name() string {
	return "pet-store"
}

// Check implements ports.HealthChecker. An in-memory store is healthy as
// long as the process is up.
func (s *PetStore) Check(_ context.Context) error {
	return nil
}

// nameTakenLocked reports whether another pet (not excludeID) already uses
// the name, ignoring case. Caller must hold at least the read lock.
func (s *PetStore) nameTakenLocked(name string, excludeID int64) bool {
	for id, p := range s.byID {
		if id != excludeID && strings.EqualFold(p.Name, name) {
			return true
		}
	}

	return false
}

// matches applies the AND-combined optional filters.
func matches(p domain.Pet, f domain.PetFilter) bool {
	if f.Name != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Name)) {
		return false
	}

	if f.Type != "" && !strings.EqualFold(p.Type, f.Type) {
		return false
	}

	if f.Adopted != nil && p.Adopted != *f.Adopted {
		return false
	}

	return true
}
