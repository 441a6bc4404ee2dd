package mongo

import (
	"regexp"
	"time"

	"sugarrush/internal/domain/entity"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// userDocument mirrors a document in the users collection.
type userDocument struct {
	ID            bson.ObjectID `bson:"_id,omitempty"`
	GoogleID      string        `bson:"googleId"`
	Username      string        `bson:"username"`
	Email         string        `bson:"email"`
	PreferredName string        `bson:"preferred_name"`
	PhoneNumber   string        `bson:"phone_number"`
	Role          string        `bson:"role"`
	DateCreated   time.Time     `bson:"date_created"`
	UpdatedAt     time.Time     `bson:"updated_at"`
}

func toUserDocument(u *entity.User) (*userDocument, error) {
	doc := &userDocument{
		GoogleID:      u.GoogleID,
		Username:      u.Username,
		Email:         u.Email,
		PreferredName: u.PreferredName,
		PhoneNumber:   u.PhoneNumber,
		Role:          u.Role.String(),
		DateCreated:   u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}

	if u.ID != "" {
		id, err := bson.ObjectIDFromHex(u.ID)
		if err != nil {
			return nil, err
		}
		doc.ID = id
	}

	return doc, nil
}

func (d *userDocument) toDomain() *entity.User {
	return &entity.User{
		ID:            d.ID.Hex(),
		GoogleID:      d.GoogleID,
		Username:      d.Username,
		Email:         d.Email,
		Role:          entity.Role(d.Role),
		PreferredName: d.PreferredName,
		PhoneNumber:   d.PhoneNumber,
		CreatedAt:     d.DateCreated,
		UpdatedAt:     d.UpdatedAt,
	}
}

// listFilter translates a UserFilter into a query document. The name is
// matched literally, so regex metacharacters from the query string are escaped.
func listFilter(filter entity.UserFilter) bson.M {
	query := bson.M{}
	if filter.Role != "" {
		query["role"] = filter.Role.String()
	}
	if filter.Name != "" {
		query["username"] = bson.Regex{Pattern: regexp.QuoteMeta(filter.Name), Options: "i"}
	}

	return query
}
