// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"sugarrush/internal/domain/entity"
)

// --- Input DTOs ---

// Actor is the authenticated caller of a user management operation.
type Actor struct {
	UserID string
	Role   entity.Role
}

// IsAdmin reports whether the actor bypasses ownership checks.
func (a Actor) IsAdmin() bool {
	return a.Role.IsAdmin()
}

// Owns reports whether id is the actor's own account.
func (a Actor) Owns(id string) bool {
	return a.UserID != "" && a.UserID == id
}

// UpdateUserInput carries the optional fields of an update. Nil means unchanged.
type UpdateUserInput struct {
	PreferredName *string
	PhoneNumber   *string
	Role          *entity.Role
}

// UserUsecase defines the user management operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	List(ctx context.Context, actor Actor, filter entity.UserFilter) ([]*entity.User, error)
	Get(ctx context.Context, actor Actor, id string) (*entity.User, error)
	Update(ctx context.Context, actor Actor, id string, input UpdateUserInput) (*entity.User, error)
	Delete(ctx context.Context, actor Actor, id string) error
}
