package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sajid-dev/doctors-portal-api/internal/models"
)

type mongoServices struct {
	col *mongo.Collection
}

func (s *mongoServices) All(ctx context.Context) ([]models.Service, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find services: %w", err)
	}
	defer cursor.Close(ctx)

	services := []models.Service{}
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("decode services: %w", err)
	}
	return services, nil
}

func (s *mongoServices) Names(ctx context.Context) ([]models.ServiceName, error) {
	opts := options.Find().SetProjection(bson.M{"name": 1})
	cursor, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find service names: %w", err)
	}
	defer cursor.Close(ctx)

	names := []models.ServiceName{}
	if err := cursor.All(ctx, &names); err != nil {
		return nil, fmt.Errorf("decode service names: %w", err)
	}
	return names, nil
}
