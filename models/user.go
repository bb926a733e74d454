package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents an account able to log in and manage employee records.
// The password hash never serializes into responses.
type User struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserName    string             `json:"userName" bson:"userName"`
	Password    string             `json:"-" bson:"password"`
	Email       string             `json:"email" bson:"email"`
	PhoneNumber string             `json:"phoneNumber" bson:"phoneNumber"`
}
