package impl

import (
	"context"
	"log/slog"

	deliverycontext "sugarrush/internal/delivery/context"
	"sugarrush/internal/domain/entity"
	domainerrors "sugarrush/internal/domain/errors"
	"sugarrush/internal/domain/repository"
	"sugarrush/internal/usecase"

	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface with self-or-admin ownership rules.
type userService struct {
	users  repository.UserRepository
	logger *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(users repository.UserRepository, logger *slog.Logger) usecase.UserUsecase {
	return &userService{
		users:  users,
		logger: logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns every matching user to admins and at most the caller's own record to everyone else.
func (srv *userService) List(ctx context.Context, actor usecase.Actor, filter entity.UserFilter) ([]*entity.User, error) {
	var users []*entity.User

	if actor.IsAdmin() {
		found, err := srv.users.List(ctx, filter)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list users")
		}
		users = found
	} else {
		self, err := srv.users.FindByID(ctx, actor.UserID)
		switch {
		case errors.Is(err, repository.ErrUserNotFound), errors.Is(err, repository.ErrInvalidUserID):
			// deleted account, answered with 404 below
		case err != nil:
			return nil, errors.Wrap(err, "failed to find current user")
		case filter.Matches(self):
			users = []*entity.User{self}
		}
	}

	if len(users) == 0 {
		return nil, domainerrors.ErrNoMatchingUsers
	}
	srv.log(ctx).Debug("Listed users", slog.Int("count", len(users)), slog.Bool("admin", actor.IsAdmin()))

	return users, nil
}

func (srv *userService) Get(ctx context.Context, actor usecase.Actor, id string) (*entity.User, error) {
	if !srv.users.ValidID(id) {
		return nil, domainerrors.ErrInvalidUserID
	}
	if !actor.IsAdmin() && !actor.Owns(id) {
		return nil, domainerrors.ErrViewUserForbidden
	}

	user, err := srv.users.FindByID(ctx, id)
	if err != nil {
		return nil, srv.mapRepoError(err, "failed to find user")
	}

	return user, nil
}

// Update applies input to the user. The user must exist before permissions are checked.
// Role changes need an admin; every other change needs the owner or an admin.
func (srv *userService) Update(ctx context.Context, actor usecase.Actor, id string, input usecase.UpdateUserInput) (*entity.User, error) {
	if !srv.users.ValidID(id) {
		return nil, domainerrors.ErrInvalidUserID
	}

	user, err := srv.users.FindByID(ctx, id)
	if err != nil {
		return nil, srv.mapRepoError(err, "failed to find user")
	}

	if input.Role != nil && !actor.IsAdmin() {
		return nil, domainerrors.ErrRoleUpdateForbidden
	}
	if !actor.IsAdmin() && !actor.Owns(user.ID) {
		return nil, domainerrors.ErrUpdateUserForbidden
	}

	changes := entity.UserChanges{
		Role:          input.Role,
		PreferredName: input.PreferredName,
		PhoneNumber:   input.PhoneNumber,
	}
	if changes.IsEmpty() {
		return user, nil
	}
	changes.Apply(user)

	if err := srv.users.Update(ctx, user); err != nil {
		return nil, srv.mapRepoError(err, "failed to update user")
	}
	srv.log(ctx).Info("Updated user",
		slog.String("user_id", user.ID),
		slog.String("actor_id", actor.UserID),
		slog.Bool("role_changed", input.Role != nil),
	)

	return user, nil
}

func (srv *userService) Delete(ctx context.Context, actor usecase.Actor, id string) error {
	if !srv.users.ValidID(id) {
		return domainerrors.ErrInvalidUserID
	}
	if !actor.IsAdmin() && !actor.Owns(id) {
		return domainerrors.ErrDeleteUserForbidden
	}

	if err := srv.users.Delete(ctx, id); err != nil {
		return srv.mapRepoError(err, "failed to delete user")
	}
	srv.log(ctx).Info("Deleted user", slog.String("user_id", id), slog.String("actor_id", actor.UserID))

	return nil
}

func (srv *userService) mapRepoError(err error, message string) error {
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		return domainerrors.ErrUserNotFound
	case errors.Is(err, repository.ErrInvalidUserID):
		return domainerrors.ErrInvalidUserID
	default:
		return errors.Wrap(err, message)
	}
}
