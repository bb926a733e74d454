package repositories

import (
	"context"
	"log"

	"staffMan/config"
	"staffMan/database"
	"staffMan/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetUserByEmail returns (nil, nil) when no account carries the email.
func GetUserByEmail(email string) (*models.User, error) {
	var user models.User

	userCollection := database.GetCollection(config.DB_Collection.Users)
	err := userCollection.FindOne(context.Background(), bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		log.Println("Error fetching user by email:", err)
		return nil, err
	}

	return &user, nil
}

// GetUserByUserName returns (nil, nil) when the name is unknown.
func GetUserByUserName(userName string) (*models.User, error) {
	var user models.User

	userCollection := database.GetCollection(config.DB_Collection.Users)
	err := userCollection.FindOne(context.Background(), bson.M{"userName": userName}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		log.Println("Error fetching user by name:", err)
		return nil, err
	}

	return &user, nil
}

func GetUserByID(id string) (*models.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var user models.User
	userCollection := database.GetCollection(config.DB_Collection.Users)
	err = userCollection.FindOne(context.Background(), bson.M{"_id": objID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		log.Println("Error fetching user by id:", err)
		return nil, err
	}

	return &user, nil
}

// CreateUser inserts the account and fills in its generated id.
func CreateUser(user *models.User) error {
	userCollection := database.GetCollection(config.DB_Collection.Users)
	res, err := userCollection.InsertOne(context.Background(), user)
	if err != nil {
		return err
	}

	user.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}
