package mongo

import (
	"context"
	"strings"
	"time"

	admindomain "github.com/rewax-co/survey-services/api/internal/admin/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository resuelve cuentas del personal por correo.
type UserRepository struct {
	users *mongo.Collection
}

// NewUserRepository binds the repository to the user collection.
func NewUserRepository(db *mongo.Database, userCollection string) *UserRepository {
	return &UserRepository{users: db.Collection(userCollection)}
}

// FindByEmail busca la cuenta con correo normalizado a minúsculas.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*admindomain.User, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))

	var doc UserDocument
	if err := r.users.FindOne(ctx, bson.M{"email": normalized}).Decode(&doc); err != nil {
		return nil, err
	}

	user := mapUserDocument(doc)
	return &user, nil
}

// UpdatePassword reemplaza el hash de la cuenta indicada.
func (r *UserRepository) UpdatePassword(ctx context.Context, id string, passwordHash []byte) error {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return mongo.ErrNoDocuments
	}

	update := bson.M{"$set": bson.M{
		"passwordHash": passwordHash,
		"updatedAt":    time.Now().UTC(),
	}}
	result, err := r.users.UpdateByID(ctx, objectID, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func mapUserDocument(doc UserDocument) admindomain.User {
	return admindomain.User{
		ID:           doc.ID.Hex(),
		Email:        doc.Email,
		PasswordHash: doc.PasswordHash,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}
}
