// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"sugarrush/internal/domain/entity"
)

var (
	// ErrUserNotFound is a domain-specific error returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists is returned when a second user is created for the same Google id.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrInvalidUserID is returned when an id is not in the store's id format.
	ErrInvalidUserID = errors.New("invalid user id")
)

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their internal id.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByGoogleID retrieves a single user by their Google subject id.
	FindByGoogleID(ctx context.Context, googleID string) (*entity.User, error)

	// List returns the users matching filter, oldest first.
	List(ctx context.Context, filter entity.UserFilter) ([]*entity.User, error)

	// Create persists a new user and fills in its ID and timestamps.
	Create(ctx context.Context, user *entity.User) error

	// Update overwrites the mutable fields of an existing user.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user by internal id.
	Delete(ctx context.Context, id string) error

	// ValidID reports whether id has the shape this store uses for user ids.
	ValidID(id string) bool
}
