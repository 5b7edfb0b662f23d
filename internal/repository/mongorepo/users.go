package mongorepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/245124737105-sketch/PolyglotPal/internal/common"
	"github.com/245124737105-sketch/PolyglotPal/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UsersR struct {
	coll *mongo.Collection
}

func NewUsersRepository(coll *mongo.Collection) *UsersR {
	return &UsersR{coll: coll}
}

func (u *UsersR) CreateUser(ctx context.Context, user models.User) error {
	if _, err := u.coll.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("user %s: %w", user.Email, common.ErrAlreadyExists)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (u *UsersR) UserByEmail(ctx context.Context, email string) (models.User, error) {
	return u.userBy(ctx, bson.M{"email": email}, email)
}

func (u *UsersR) UserByID(ctx context.Context, id string) (models.User, error) {
	return u.userBy(ctx, bson.M{"_id": id}, id)
}

func (u *UsersR) userBy(ctx context.Context, filter bson.M, value string) (models.User, error) {
	var user models.User
	if err := u.coll.FindOne(ctx, filter).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, fmt.Errorf("user %s: %w", value, common.ErrNotFound)
		}
		return models.User{}, fmt.Errorf("database error: %w", err)
	}

	return user, nil
}

func (u *UsersR) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	res, err := u.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"last_login": at}})
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}

	if res.MatchedCount == 0 {
		return fmt.Errorf("user %s: %w", id, common.ErrNotFound)
	}

	return nil
}
