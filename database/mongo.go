package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"staffMan/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var MongoClient *mongo.Client
var MongoCtx = context.Background()

func Connect() (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(MongoCtx, 30*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(config.AppConfig.MongoURI)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("MongoDB connection failed: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("MongoDB ping failed: %v", err)
	}

	log.Println("✅ Connected to MongoDB")

	MongoClient = client

	if err := ensureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("MongoDB index creation failed: %v", err)
	}

	return client, nil
}

// ensureIndexes enforces email uniqueness at the storage layer, so two
// concurrent creates racing past the handler's duplicate pre-check can
// never both persist.
func ensureIndexes(ctx context.Context) error {
	emailIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	collections := []config.CollectionName{
		config.DB_Collection.Users,
		config.DB_Collection.Employees,
	}
	for _, name := range collections {
		if _, err := GetCollection(name).Indexes().CreateOne(ctx, emailIndex); err != nil {
			return err
		}
	}
	return nil
}

func GetCollection(collectionName config.CollectionName) *mongo.Collection {
	return MongoClient.Database(config.AppConfig.MongoDB).Collection(string(collectionName))
}

func Disconnect() {
	if MongoClient != nil {
		if err := MongoClient.Disconnect(MongoCtx); err != nil {
			log.Fatalf("❌ MongoDB Disconnection Error: %v", err)
		}
		log.Println("✅ MongoDB Disconnected")
	}
}
