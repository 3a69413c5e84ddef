package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sajid-dev/doctors-portal-api/internal/models"
)

type mongoDoctors struct {
	col *mongo.Collection
}

func (d *mongoDoctors) All(ctx context.Context) ([]models.Doctor, error) {
	cursor, err := d.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find doctors: %w", err)
	}
	defer cursor.Close(ctx)

	doctors := []models.Doctor{}
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, fmt.Errorf("decode doctors: %w", err)
	}
	return doctors, nil
}

func (d *mongoDoctors) Insert(ctx context.Context, doctor *models.Doctor) (InsertResult, error) {
	res, err := d.col.InsertOne(ctx, doctor)
	if err != nil {
		return InsertResult{}, fmt.Errorf("insert doctor: %w", err)
	}
	return insertResult(res), nil
}

func (d *mongoDoctors) Delete(ctx context.Context, id primitive.ObjectID) (DeleteResult, error) {
	res, err := d.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return DeleteResult{}, fmt.Errorf("delete doctor %s: %w", id.Hex(), err)
	}
	return DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}
