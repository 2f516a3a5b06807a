package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	RoleContractor = "contractor"
	RoleManager    = "manager"
)

// User is a contractor or manager account. Password holds a bcrypt hash once
// stored and is cleared before a user leaves the service.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email    string             `bson:"email,omitempty" json:"email"`
	Password string             `bson:"password,omitempty" json:"password,omitempty"`
	Role     string             `bson:"role,omitempty" json:"role"`
	Services []string           `bson:"services" json:"services,omitempty"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
