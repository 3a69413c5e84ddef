package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Service is a treatment offered by the clinic. Slots is the full set
// of bookable times for the treatment, independent of date; the
// services endpoint replaces it with the remaining slots for the
// requested date before sending it to the client.
type Service struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Price float64            `bson:"price,omitempty" json:"price,omitempty"`
	Slots []string           `bson:"slots" json:"slots"`
}

// ServiceName is the projection used by the specialty picker.
type ServiceName struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name string             `bson:"name" json:"name"`
}
