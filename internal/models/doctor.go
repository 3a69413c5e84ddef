package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Doctor is an admin-managed record. Specialty should match a Service
// name; Image is a passthrough URL.
type Doctor struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email,omitempty" json:"email,omitempty"`
	Specialty string             `bson:"specialty" json:"specialty"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
}
