package dto

import (
	"time"

	"github.com/petlink/petlink-api/internal/domain"
)

// LoginRequest is the body for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest is the body for POST /auth/register.
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email"    validate:"omitempty,email"`
}

// RefreshRequest is the body for POST /auth/refresh.
type RefreshRequest struct {
	Token string `json:"token" validate:"required"`
}

// PetRequest is the body for creating and updating pets. Adopted and
// createdAt are server-controlled and deliberately absent. Field bounds
// are domain rules; only presence is checked at the binding layer.
type PetRequest struct {
	Name        string `json:"name" validate:"required"`
	Type        string `json:"type" validate:"required"`
	Description string `json:"description"`
	Age         *int   `json:"age"`
}

// Attrs converts the request to the domain attribute set.
func (r *PetRequest) Attrs() domain.PetAttrs {
	return domain.PetAttrs{
		Name:        r.Name,
		Type:        r.Type,
		Description: r.Description,
		Age:         r.Age,
	}
}

// PetSearchRequest carries the optional search filters plus pagination.
type PetSearchRequest struct {
	Name    string `form:"name"`
	Type    string `form:"type"`
	Adopted *bool  `form:"adopted"`
	PageRequest
}

// Filter converts the request to the domain filter.
func (r *PetSearchRequest) Filter() domain.PetFilter {
	return domain.PetFilter{
		Name:    r.Name,
		Type:    r.Type,
		Adopted: r.Adopted,
	}
}

// PetResponse is the wire shape for a pet.
type PetResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Description string    `json:"description,omitempty"`
	Age         *int      `json:"age,omitempty"`
	Adopted     bool      `json:"adopted"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToPetResponse converts a domain pet to its wire shape.
func ToPetResponse(p domain.Pet) PetResponse {
	return PetResponse{
		ID:          p.ID,
		Name:        p.Name,
		Type:        p.Type,
		Description: p.Description,
		Age:         p.Age,
		Adopted:     p.Adopted,
		CreatedAt:   p.CreatedAt,
	}
}

// ToPetResponses converts a slice of domain pets.
func ToPetResponses(pets []domain.Pet) []PetResponse {
	out := make([]PetResponse, 0, len(pets))
	for _, p := range pets {
		out = append(out, ToPetResponse(p))
	}

	return out
}

// UserResponse is the wire shape for a registered user. The password
// hash never leaves the service layer.
type UserResponse struct {
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain user to its wire shape.
func ToUserResponse(u domain.User) UserResponse {
	return UserResponse{
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// LoginResponse is the wire shape for an issued session.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Username  string    `json:"username"`
}
