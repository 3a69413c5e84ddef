package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sajid-dev/doctors-portal-api/internal/models"
)

type mongoBookings struct {
	col *mongo.Collection
}

func (b *mongoBookings) list(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	cursor, err := b.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("decode bookings: %w", err)
	}
	return bookings, nil
}

func (b *mongoBookings) ByDate(ctx context.Context, date string) ([]models.Booking, error) {
	return b.list(ctx, bson.M{"appointmentDate": date})
}

func (b *mongoBookings) ByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	return b.list(ctx, bson.M{"email": email})
}

func (b *mongoBookings) ByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	var booking models.Booking
	err := b.col.FindOne(ctx, bson.M{"_id": id}).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find booking %s: %w", id.Hex(), err)
	}
	return &booking, nil
}

func (b *mongoBookings) Exists(ctx context.Context, date, treatment, email string) (bool, error) {
	filter := bson.M{
		"appointmentDate": date,
		"treatment":       treatment,
		"email":           email,
	}
	count, err := b.col.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("count bookings: %w", err)
	}
	return count > 0, nil
}

func (b *mongoBookings) Insert(ctx context.Context, booking *models.Booking) (InsertResult, error) {
	res, err := b.col.InsertOne(ctx, booking)
	if err != nil {
		return InsertResult{}, fmt.Errorf("insert booking: %w", err)
	}
	return insertResult(res), nil
}

func (b *mongoBookings) Delete(ctx context.Context, id primitive.ObjectID) (DeleteResult, error) {
	res, err := b.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return DeleteResult{}, fmt.Errorf("delete booking %s: %w", id.Hex(), err)
	}
	return DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

func insertResult(res *mongo.InsertOneResult) InsertResult {
	out := InsertResult{Acknowledged: true}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		out.InsertedID = oid.Hex()
	}
	return out
}
