// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"atlas/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for account persistence.
// The application layer depends on this interface, not the concrete
// implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	// Matching is an exact string comparison.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user. The store enforces email uniqueness;
	// a duplicate insert fails even when two callers pass the
	// FindByEmail pre-check concurrently.
	Create(ctx context.Context, user *entity.User) error
}
