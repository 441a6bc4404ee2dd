package postgres

import (
	"context"
	"strings"
	"time"

	"sugarrush/internal/domain/entity"
	"sugarrush/internal/domain/repository"
	"sugarrush/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements repository.UserRepository using GORM.
type userRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db, now: time.Now}
}

func (repo *userRepository) ValidID(id string) bool {
	_, err := uuid.Parse(id)

	return err == nil
}

func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, repository.ErrInvalidUserID
	}

	return repo.first(ctx, "id = ?", userID)
}

func (repo *userRepository) FindByGoogleID(ctx context.Context, googleID string) (*entity.User, error) {
	return repo.first(ctx, "google_id = ?", googleID)
}

func (repo *userRepository) first(ctx context.Context, query string, arg any) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where(query, arg).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return toUserDomain(&userM), nil
}

func (repo *userRepository) List(ctx context.Context, filter entity.UserFilter) ([]*entity.User, error) {
	tx := repo.db.WithContext(ctx).Model(&model.UserModel{})
	if filter.Role != "" {
		tx = tx.Where("role = ?", filter.Role.String())
	}
	if filter.Name != "" {
		tx = tx.Where("username ILIKE ? ESCAPE '\\'", "%"+escapeLike(filter.Name)+"%")
	}

	var userMs []*model.UserModel
	if err := tx.Order("created_at ASC").Find(&userMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userMs))
	for _, userM := range userMs {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	id, err := uuid.NewV7()
	if err != nil {
		return errors.Wrap(err, "failed to generate user id")
	}

	now := repo.now().UTC()
	user.ID = id.String()
	user.CreatedAt = now
	user.UpdatedAt = now

	if err := repo.db.WithContext(ctx).Create(fromUserDomain(user, id)).Error; err != nil {
		user.ID = ""
		if isUniqueConstraintViolation(err) {
			return repository.ErrUserAlreadyExists
		}

		return errors.Wrap(err, "failed to create user")
	}

	return nil
}

// Update rewrites the mutable columns. google_id and created_at are never touched.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userID, err := uuid.Parse(user.ID)
	if err != nil {
		return repository.ErrInvalidUserID
	}

	user.UpdatedAt = repo.now().UTC()

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"username":       user.Username,
			"email":          user.Email,
			"role":           user.Role.String(),
			"preferred_name": user.PreferredName,
			"phone_number":   user.PhoneNumber,
			"updated_at":     user.UpdatedAt,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrUserAlreadyExists
		}

		return errors.Wrap(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func (repo *userRepository) Delete(ctx context.Context, id string) error {
	userID, err := uuid.Parse(id)
	if err != nil {
		return repository.ErrInvalidUserID
	}

	result := repo.db.WithContext(ctx).Delete(&model.UserModel{}, "id = ?", userID)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func toUserDomain(userM *model.UserModel) *entity.User {
	return &entity.User{
		ID:            userM.ID.String(),
		GoogleID:      userM.GoogleID,
		Username:      userM.Username,
		Email:         userM.Email,
		Role:          entity.Role(userM.Role),
		PreferredName: userM.PreferredName,
		PhoneNumber:   userM.PhoneNumber,
		CreatedAt:     userM.CreatedAt,
		UpdatedAt:     userM.UpdatedAt,
	}
}

func fromUserDomain(user *entity.User, id uuid.UUID) *model.UserModel {
	return &model.UserModel{
		ID:            id,
		GoogleID:      user.GoogleID,
		Username:      user.Username,
		Email:         user.Email,
		PreferredName: user.PreferredName,
		PhoneNumber:   user.PhoneNumber,
		Role:          user.Role.String(),
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
}
