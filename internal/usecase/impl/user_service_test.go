package impl

import (
	"context"
	"testing"

	"sugarrush/internal/domain/entity"
	domainerrors "sugarrush/internal/domain/errors"
	"sugarrush/internal/domain/repository"
	mockRepo "sugarrush/internal/mocks/repository"
	"sugarrush/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	adminActor  = usecase.Actor{UserID: "admin-1", Role: entity.RoleAdmin}
	driverActor = usecase.Actor{UserID: "driver-1", Role: entity.RoleDriver}
)

func newUserServiceForTest(t *testing.T) (*mockRepo.MockUserRepository, usecase.UserUsecase) {
	repo := mockRepo.NewMockUserRepository(t)

	return repo, NewUserService(repo, newDiscardLogger())
}

func strPtr(s string) *string { return &s }

func TestUserService_List(t *testing.T) {
	t.Run("admin sees every match", func(t *testing.T) {
		repo, svc := newUserServiceForTest(t)
		filter := entity.UserFilter{Role: entity.RoleDriver}
		repo.EXPECT().List(mock.Anything, filter).Return([]*entity.User{{ID: "a"}, {ID: "b"}}, nil)

		users, err := svc.List(context.Background(), adminActor, filter)
		require.NoError(t, err)
		assert.Len(t, users, 2)
	})

	t.Run("admin with no match", func(t *testing.T) {
		repo, svc := newUserServiceForTest(t)
		repo.EXPECT().List(mock.Anything, entity.UserFilter{Name: "nobody"}).Return(nil, nil)

		_, err := svc.List(context.Background(), adminActor, entity.UserFilter{Name: "nobody"})
		assert.ErrorIs(t, err, domainerrors.ErrNoMatchingUsers)
	})

	t.Run("non-admin only sees self", func(t *testing.T) {
		repo, svc := newUserServiceForTest(t)
		self := &entity.User{ID: "driver-1", Username: "Dana Driver", Role: entity.RoleDriver}
		repo.EXPECT().FindByID(mock.Anything, "driver-1").Return(self, nil)

		users, err := svc.List(context.Background(), driverActor, entity.UserFilter{})
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Same(t, self, users[0])
	})

	t.Run("non-admin filter excludes self", func(t *testing.T) {
		repo, svc := newUserServiceForTest(t)
		repo.EXPECT().FindByID(mock.Anything, "driver-1").
			Return(&entity.User{ID: "driver-1", Username: "Dana Driver", Role: entity.RoleDriver}, nil)

		_, err := svc.List(context.Background(), driverActor, entity.UserFilter{Role: entity.RoleAdmin})
		assert.ErrorIs(t, err, domainerrors.ErrNoMatchingUsers)
	})

	t.Run("repository failure", func(t *testing.T) {
		repo, svc := newUserServiceForTest(t)
		repo.EXPECT().List(mock.Anything, entity.UserFilter{}).Return(nil, assert.AnError)

		_, err := svc.List(context.Background(), adminActor, entity.UserFilter{})
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestUserService_Get(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		repo, svc := newUserServiceForTest(t)
		repo.EXPECT().ValidID("not-an-id").Return(false)

		_, err := svc.Get(context.Background(), driverActor, "not-an-id")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidUserID)
	})

	t.Run("other user is forbidden", func(t *testing.T) {
		repo, svc := newUserServiceForTest(t)
		repo.EXPECT().ValidID("driver-2").Return(true)

		_, err := svc.Get(context.Background(), driverActor, "driver-2")
		assert.ErrorIs(t, err, domainerrors.ErrViewUserForbidden)
	})

	t.Run("admin reads anyone", func(t *testing.T) {
		repo, svc := newUserServiceForTest(t)
		repo.EXPECT().ValidID("driver-2").Return(true)
		repo.EXPECT().FindByID(mock.Anything, "driver-2").Return(&entity.User{ID: "driver-2"}, nil)

		user, err := svc.Get(context.Background(), adminActor, "driver-2")
		require.NoError(t, err)
		assert.Equal(t, "driver-2", user.ID)
	})

	t.Run("missing user", func(t *testing.T) {
		repo, svc := newUserServiceForTest(t)
		repo.EXPECT().ValidID("driver-1").Return(true)
		repo.EXPECT().FindByID(mock.Anything, "driver-1").Return(nil, repository.ErrUserNotFound)

		_, err := svc.Get(context.Background(), driverActor, "driver-1")
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})
}

func TestUserService_Update(t *testing.T) {
	t.Run("owner edits profile fields", func(t *testing.T) {
		repo, svc := newUserServiceForTest(t)
		repo.EXPECT().ValidID("driver-1").Return(true)
		repo.EXPECT().FindByID(mock.Anything, "driver-1").
			Return(&entity.User{ID: "driver-1", Role: entity.RoleDriver}, nil)
		repo.EXPECT().Update(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.PreferredName == "Dee" && u.PhoneNumber == "+1-555-123-4567" && u.Role == entity.RoleDriver
		})).Return(nil)

		user, err := svc.Update(context.Background(), driverActor, "driver-1", usecase.UpdateUserInput{
			PreferredName: strPtr("Dee"),
			PhoneNumber:   strPtr("+1-555-123-4567"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Dee", user.PreferredName)
	})

	t.Run("owner cannot change own role", func(t *testing.T) {
		repo, svc := newUserServiceForTest(t)
		role := entity.RoleAdmin
		repo.EXPECT().ValidID("driver-1").Return(true)
		repo.EXPECT().FindByID(mock.Anything, "driver-1").Return(&entity.User{ID: "driver-1", Role: entity.RoleDriver}, nil)

		_, err := svc.Update(context.Background(), driverActor, "driver-1", usecase.UpdateUserInput{Role: &role})
		assert.ErrorIs(t, err, domainerrors.ErrRoleUpdateForbidden)
	})

	t.Run("admin changes role", func(t *testing.T) {
		repo, svc := newUserServiceForTest(t)
		role := entity.RoleStoreOwner
		repo.EXPECT().ValidID("driver-1").Return(true)
		repo.EXPECT().FindByID(mock.Anything, "driver-1").Return(&entity.User{ID: "driver-1", Role: entity.RoleDriver}, nil)
		repo.EXPECT().Update(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.Role == entity.RoleStoreOwner
		})).Return(nil)

		user, err := svc.Update(context.Background(), adminActor, "driver-1", usecase.UpdateUserInput{Role: &role})
		require.NoError(t, err)
		assert.Equal(t, entity.RoleStoreOwner, user.Role)
	})

	t.Run("missing user is reported before permissions", func(t *testing.T) {
		repo, svc := newUserServiceForTest(t)
		repo.EXPECT().ValidID("ghost").Return(true)
		repo.EXPECT().FindByID(mock.Anything, "ghost").Return(nil, repository.ErrUserNotFound)

		_, err := svc.Update(context.Background(), driverActor, "ghost", usecase.UpdateUserInput{})
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})

	t.Run("owner with empty body writes nothing", func(t *testing.T) {
		repo, svc := newUserServiceForTest(t)
		repo.EXPECT().ValidID("driver-1").Return(true)
		repo.EXPECT().FindByID(mock.Anything, "driver-1").Return(&entity.User{ID: "driver-1", PreferredName: "Dee"}, nil)

		user, err := svc.Update(context.Background(), driverActor, "driver-1", usecase.UpdateUserInput{})
		require.NoError(t, err)
		assert.Equal(t, "Dee", user.PreferredName)
	})

	t.Run("stranger with empty body is forbidden", func(t *testing.T) {
		repo, svc := newUserServiceForTest(t)
		repo.EXPECT().ValidID("driver-2").Return(true)
		repo.EXPECT().FindByID(mock.Anything, "driver-2").Return(&entity.User{ID: "driver-2"}, nil)

		_, err := svc.Update(context.Background(), driverActor, "driver-2", usecase.UpdateUserInput{})
		assert.ErrorIs(t, err, domainerrors.ErrUpdateUserForbidden)
	})
}

func TestUserService_Delete(t *testing.T) {
	t.Run("owner deletes self", func(t *testing.T) {
		repo, svc := newUserServiceForTest(t)
		repo.EXPECT().ValidID("driver-1").Return(true)
		repo.EXPECT().Delete(mock.Anything, "driver-1").Return(nil)

		require.NoError(t, svc.Delete(context.Background(), driverActor, "driver-1"))
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		repo, svc := newUserServiceForTest(t)
		repo.EXPECT().ValidID("driver-2").Return(true)

		err := svc.Delete(context.Background(), driverActor, "driver-2")
		assert.ErrorIs(t, err, domainerrors.ErrDeleteUserForbidden)
	})

	t.Run("admin deletes missing user", func(t *testing.T) {
		repo, svc := newUserServiceForTest(t)
		repo.EXPECT().ValidID("driver-2").Return(true)
		repo.EXPECT().Delete(mock.Anything, "driver-2").Return(repository.ErrUserNotFound)

		err := svc.Delete(context.Background(), adminActor, "driver-2")
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})
}
