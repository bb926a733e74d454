package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Employee struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Email       string             `json:"email" bson:"email"`
	MobileNo    string             `json:"mobileNo" bson:"mobileNo"`
	Designation string             `json:"designation" bson:"designation"`
	Gender      string             `json:"gender" bson:"gender"`
	Course      []string           `json:"course" bson:"course"`
	ImgUpload   string             `json:"imgUpload" bson:"imgUpload"`
	CreateDate  time.Time          `json:"createDate" bson:"createDate"`
}
