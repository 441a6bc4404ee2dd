package postgres

import (
	"testing"
	"time"

	"sugarrush/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestUserModelMapping(t *testing.T) {
	id := uuid.MustParse("01890a5d-ac96-774b-bcce-b302099a8057")
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	user := &entity.User{
		ID:            id.String(),
		GoogleID:      "google-123",
		Username:      "Candy Fan",
		Email:         "fan@example.com",
		Role:          entity.RoleStoreOwner,
		PreferredName: "CF",
		PhoneNumber:   "+1-555-123-4567",
		CreatedAt:     created,
		UpdatedAt:     created,
	}

	assert.Equal(t, user, toUserDomain(fromUserDomain(user, id)))
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\% off\_now \\o/`, escapeLike(`50% off_now \o/`))
	assert.Equal(t, "plain", escapeLike("plain"))
}

func TestIsUniqueConstraintViolation(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.Wrap(gorm.ErrDuplicatedKey, "create")))
	assert.True(t, isUniqueConstraintViolation(errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_google_id" (SQLSTATE 23505)`)))
	assert.False(t, isUniqueConstraintViolation(errors.New("connection refused")))
	assert.False(t, isUniqueConstraintViolation(nil))
}

func TestUserRepository_ValidID(t *testing.T) {
	repo := &userRepository{}

	assert.True(t, repo.ValidID(uuid.NewString()))
	assert.False(t, repo.ValidID("665f1c2e9b1d4a0012345678"))
}
