package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sajid-dev/doctors-portal-api/internal/models"
)

// Write results mirror the driver's acknowledgement shapes because the
// API returns them to the client as-is.

type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

type UpdateResult struct {
	Acknowledged  bool   `json:"acknowledged"`
	MatchedCount  int64  `json:"matchedCount"`
	ModifiedCount int64  `json:"modifiedCount"`
	UpsertedID    string `json:"upsertedId,omitempty"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// Services is the read-only treatment catalog.
type Services interface {
	All(ctx context.Context) ([]models.Service, error)
	// Names returns the catalog projected to name only.
	Names(ctx context.Context) ([]models.ServiceName, error)
}

// Bookings is the appointment collection. Lookups that miss return
// (nil, nil) rather than an error.
type Bookings interface {
	ByDate(ctx context.Context, date string) ([]models.Booking, error)
	ByEmail(ctx context.Context, email string) ([]models.Booking, error)
	ByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error)
	// Exists reports whether a booking with the same date, treatment
	// and email is already stored.
	Exists(ctx context.Context, date, treatment, email string) (bool, error)
	Insert(ctx context.Context, b *models.Booking) (InsertResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (DeleteResult, error)
}

// Users is the user directory.
type Users interface {
	All(ctx context.Context) ([]models.User, error)
	ByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, u *models.User) (InsertResult, error)
	// PromoteToAdmin sets role=admin on the user with the given id,
	// creating the document if none matches (upsert).
	PromoteToAdmin(ctx context.Context, id primitive.ObjectID) (UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (DeleteResult, error)
}

// Doctors is the admin-managed doctor directory.
type Doctors interface {
	All(ctx context.Context) ([]models.Doctor, error)
	Insert(ctx context.Context, d *models.Doctor) (InsertResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (DeleteResult, error)
}

// Store bundles the per-collection repositories.
type Store struct {
	Services Services
	Bookings Bookings
	Users    Users
	Doctors  Doctors
}

// NewMongo wires the repositories onto the given database handle.
func NewMongo(db *mongo.Database) *Store {
	return &Store{
		Services: &mongoServices{col: db.Collection("services")},
		Bookings: &mongoBookings{col: db.Collection("bookings")},
		Users:    &mongoUsers{col: db.Collection("users")},
		Doctors:  &mongoDoctors{col: db.Collection("doctors")},
	}
}
