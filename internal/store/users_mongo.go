package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sajid-dev/doctors-portal-api/internal/models"
)

type mongoUsers struct {
	col *mongo.Collection
}

func (u *mongoUsers) All(ctx context.Context) ([]models.User, error) {
	cursor, err := u.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

func (u *mongoUsers) ByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := u.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

func (u *mongoUsers) Insert(ctx context.Context, user *models.User) (InsertResult, error) {
	res, err := u.col.InsertOne(ctx, user)
	if err != nil {
		return InsertResult{}, fmt.Errorf("insert user: %w", err)
	}
	return insertResult(res), nil
}

func (u *mongoUsers) PromoteToAdmin(ctx context.Context, id primitive.ObjectID) (UpdateResult, error) {
	update := bson.M{"$set": bson.M{"role": models.RoleAdmin}}
	opts := options.Update().SetUpsert(true)
	res, err := u.col.UpdateOne(ctx, bson.M{"_id": id}, update, opts)
	if err != nil {
		return UpdateResult{}, fmt.Errorf("promote user %s: %w", id.Hex(), err)
	}
	out := UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}
	if oid, ok := res.UpsertedID.(primitive.ObjectID); ok {
		out.UpsertedID = oid.Hex()
	}
	return out, nil
}

func (u *mongoUsers) Delete(ctx context.Context, id primitive.ObjectID) (DeleteResult, error) {
	res, err := u.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return DeleteResult{}, fmt.Errorf("delete user %s: %w", id.Hex(), err)
	}
	return DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}
