package mongo

import (
	"context"
	"time"

	"sugarrush/internal/domain/entity"
	"sugarrush/internal/domain/repository"
	"sugarrush/internal/errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// userRepository implements repository.UserRepository on a MongoDB collection.
type userRepository struct {
	collection *mongo.Collection
	now        func() time.Time
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(collection *mongo.Collection) repository.UserRepository {
	return &userRepository{collection: collection, now: time.Now}
}

func ensureUserIndexes(ctx context.Context, collection *mongo.Collection) error {
	_, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "googleId", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("googleId_unique"),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("email_unique"),
		},
	})
	if err != nil {
		return errors.Wrap(err, "failed to create user indexes")
	}

	return nil
}

func (repo *userRepository) ValidID(id string) bool {
	_, err := bson.ObjectIDFromHex(id)

	return err == nil
}

func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrInvalidUserID
	}

	return repo.findOne(ctx, bson.M{"_id": objectID})
}

func (repo *userRepository) FindByGoogleID(ctx context.Context, googleID string) (*entity.User, error) {
	return repo.findOne(ctx, bson.M{"googleId": googleID})
}

func (repo *userRepository) findOne(ctx context.Context, filter bson.M) (*entity.User, error) {
	var doc userDocument
	if err := repo.collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return doc.toDomain(), nil
}

func (repo *userRepository) List(ctx context.Context, filter entity.UserFilter) ([]*entity.User, error) {
	cursor, err := repo.collection.Find(ctx, listFilter(filter),
		options.Find().SetSort(bson.D{{Key: "date_created", Value: 1}}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	var docs []userDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode users")
	}

	users := make([]*entity.User, 0, len(docs))
	for i := range docs {
		users = append(users, docs[i].toDomain())
	}

	return users, nil
}

func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	now := repo.now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	doc, err := toUserDocument(user)
	if err != nil {
		return repository.ErrInvalidUserID
	}
	doc.ID = bson.NewObjectID()

	if _, err := repo.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrUserAlreadyExists
		}

		return errors.Wrap(err, "failed to create user")
	}

	user.ID = doc.ID.Hex()

	return nil
}

// Update rewrites the mutable fields. googleId and date_created are never part of the $set.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	objectID, err := bson.ObjectIDFromHex(user.ID)
	if err != nil {
		return repository.ErrInvalidUserID
	}

	user.UpdatedAt = repo.now().UTC()

	result, err := repo.collection.UpdateByID(ctx, objectID, bson.M{
		"$set": bson.M{
			"username":       user.Username,
			"email":          user.Email,
			"role":           user.Role.String(),
			"preferred_name": user.PreferredName,
			"phone_number":   user.PhoneNumber,
			"updated_at":     user.UpdatedAt,
		},
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrUserAlreadyExists
		}

		return errors.Wrap(err, "failed to update user")
	}
	if result.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func (repo *userRepository) Delete(ctx context.Context, id string) error {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrInvalidUserID
	}

	result, err := repo.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return errors.Wrap(err, "failed to delete user")
	}
	if result.DeletedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}
