package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Booking is a patient appointment. Treatment references a Service by
// name; Patient, Phone and Price are passed through from the client
// unchanged.
type Booking struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	AppointmentDate string             `bson:"appointmentDate" json:"appointmentDate"`
	Treatment       string             `bson:"treatment" json:"treatment"`
	Patient         string             `bson:"patient,omitempty" json:"patient,omitempty"`
	Slot            string             `bson:"slot" json:"slot"`
	Email           string             `bson:"email" json:"email"`
	Phone           string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Price           float64            `bson:"price,omitempty" json:"price,omitempty"`
}
