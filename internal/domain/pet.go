// Package domain contains core business entities and rules.
package domain

import "time"

// Pet represents an animal listed in the adoption registry.
// This is a domain entity - it has no knowledge of external systems.
type Pet struct {
	// ID is the unique, server-assigned identifier. IDs are assigned
	// monotonically and never reused.
	ID int64

	// Name identifies the pet. Names are unique case-insensitively
	// across all live pets.
	Name string

	// Type is the species, letters and spaces only (e.g. "Dog", "Guinea Pig").
	Type string

	// Description is optional free text about the pet.
	Description string

	// Age in years. Optional.
	Age *int

	// Adopted is a one-way latch: once true, the pet can neither be
	// adopted again nor deleted.
	Adopted bool

	// CreatedAt is when the pet was registered.
	CreatedAt time.Time
}

// PetAttrs carries the caller-settable pet fields for create and update.
// Adopted and CreatedAt are never settable through this path.
type PetAttrs struct {
	Name        string
	Type        string
	Description string
	Age         *int
}

// PetFilter holds the optional search filters, AND-combined.
type PetFilter struct {
	// Name matches as a case-insensitive substring.
	Name string

	// Type matches case-insensitively but exactly.
	Type string

	// Adopted matches exactly when set.
	Adopted *bool
}

// IsZero reports whether no filter is set.
func (f PetFilter) IsZero() bool {
	return f.Name == "" && f.Type == "" && f.Adopted == nil
}
