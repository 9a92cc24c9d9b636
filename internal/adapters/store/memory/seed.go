package memory

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/petlink/petlink-api/internal/domain"
)

// intPtr is a seed-data convenience.
func intPtr(v int) *int { return &v }

// SeedPets returns the demo pet records. Whiskers is pre-adopted so the
// adoption latch is exercisable out of the box.
func SeedPets() []domain.Pet {
	base := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)

	return []domain.Pet{
		{
			ID:          1,
			Name:        "Buddy",
			Type:        "Dog",
			Description: "Friendly golden retriever who loves fetch",
			Age:         intPtr(3),
			CreatedAt:   base,
		},
		{
			ID:          2,
			Name:        "Whiskers",
			Type:        "Cat",
			Description: "Calm tabby, already settled with a family",
			Age:         intPtr(5),
			Adopted:     true,
			CreatedAt:   base.Add(24 * time.Hour),
		},
		{
			ID:          3,
			Name:        "Coco",
			Type:        "Rabbit",
			Description: "Curious dwarf rabbit",
			Age:         intPtr(1),
			CreatedAt:   base.Add(48 * time.Hour),
		},
		{
			ID:          4,
			Name:        "Rex",
			Type:        "Dog",
			Description: "Energetic shepherd mix",
			Age:         intPtr(2),
			CreatedAt:   base.Add(72 * time.Hour),
		},
	}
}

// SeedUsers returns the demo accounts. Passwords are bcrypt-hashed at
// startup; the demo credential is admin/admin123.
func SeedUsers() ([]domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return []domain.User{
		{
			Username:     "admin",
			PasswordHash: string(hash),
			Email:        "admin@petlink.local",
			CreatedAt:    time.Date(2024, time.March, 1, 8, 0, 0, 0, time.UTC),
		},
	}, nil
}
