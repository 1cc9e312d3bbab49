// Package api defines the JSON response shapes shared across HTTP handlers.
package api

import (
	"time"

	authentity "fitness_backend/internal/feature/auth/domain/entity"
	recordentity "fitness_backend/internal/feature/records/domain/entity"
)

// ErrorResponse is the body returned for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// UserResponse is the public view of a user. It never carries the
// password hash.
type UserResponse struct {
	ID        uint                  `json:"id"`
	Email     string                `json:"email"`
	Name      string                `json:"name"`
	CreatedAt time.Time             `json:"created_at"`
	Records   []recordentity.Record `json:"records"`
}

// AuthResponse is the body returned by register and login.
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// VerifyResponse is the body returned by the verify-token endpoint.
type VerifyResponse struct {
	User UserResponse `json:"user"`
}

// NewUserResponse builds the public user view from a user entity and its
// records. A nil records slice serializes as [] rather than null.
func NewUserResponse(u *authentity.User, records []recordentity.Record) UserResponse {
	if records == nil {
		records = make([]recordentity.Record, 0)
	}
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
		Records:   records,
	}
}
