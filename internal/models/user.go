package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Role is the access level stored on a user document. Anything other
// than RoleAdmin (including an absent field) is a regular user.
type Role string

const (
	RoleRegular Role = ""
	RoleAdmin   Role = "admin"
)

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Email string             `bson:"email" json:"email"`
	Role  Role               `bson:"role,omitempty" json:"role,omitempty"`
}
