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

// GetEmployeeByEmail returns (nil, nil) when no record carries the email.
func GetEmployeeByEmail(email string) (*models.Employee, error) {
	var employee models.Employee

	collection := database.GetCollection(config.DB_Collection.Employees)
	err := collection.FindOne(context.Background(), bson.M{"email": email}).Decode(&employee)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		log.Println("Error fetching employee by email:", err)
		return nil, err
	}

	return &employee, nil
}

func GetEmployeeByID(id string) (*models.Employee, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var employee models.Employee
	collection := database.GetCollection(config.DB_Collection.Employees)
	err = collection.FindOne(context.Background(), bson.M{"_id": objID}).Decode(&employee)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		log.Println("Error fetching employee by id:", err)
		return nil, err
	}

	return &employee, nil
}

// CreateEmployee inserts the record and fills in its generated id.
func CreateEmployee(employee *models.Employee) error {
	collection := database.GetCollection(config.DB_Collection.Employees)
	res, err := collection.InsertOne(context.Background(), employee)
	if err != nil {
		return err
	}

	employee.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// ListEmployees returns every record in natural store order.
func ListEmployees() ([]models.Employee, error) {
	collection := database.GetCollection(config.DB_Collection.Employees)

	cursor, err := collection.Find(context.Background(), bson.M{})
	if err != nil {
		log.Println("Error listing employees:", err)
		return nil, err
	}
	defer cursor.Close(context.Background())

	employees := []models.Employee{}
	if err := cursor.All(context.Background(), &employees); err != nil {
		log.Println("Error decoding employees:", err)
		return nil, err
	}

	return employees, nil
}

// UpdateEmployee replaces the stored document with the given one.
func UpdateEmployee(employee *models.Employee) error {
	collection := database.GetCollection(config.DB_Collection.Employees)

	res, err := collection.ReplaceOne(context.Background(), bson.M{"_id": employee.ID}, employee)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}

func DeleteEmployee(id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	collection := database.GetCollection(config.DB_Collection.Employees)
	res, err := collection.DeleteOne(context.Background(), bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}
