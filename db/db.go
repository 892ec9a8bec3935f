package db

import (
	"context"
	"fmt"
	"os"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	Client *mongo.Client

	UserCollection     *mongo.Collection
	ProductCollection  *mongo.Collection
	CartCollection     *mongo.Collection
	OrderCollection    *mongo.Collection
	WishlistCollection *mongo.Collection
	ReviewsCollection  *mongo.Collection
)

// Init connects to MongoDB and binds the collection handles. It must be
// called once at startup before any handler runs.
func Init(ctx context.Context) error {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGODB_DB")
	if dbName == "" {
		dbName = "armoire"
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongo ping: %w", err)
	}
	Client = client

	database := client.Database(dbName)
	UserCollection = database.Collection("users")
	ProductCollection = database.Collection("products")
	CartCollection = database.Collection("carts")
	OrderCollection = database.Collection("orders")
	WishlistCollection = database.Collection("wishlists")
	ReviewsCollection = database.Collection("reviews")

	return ensureIndexes(ctx, database)
}

// Close releases the connection; call on shutdown.
func Close(ctx context.Context) error {
	if Client == nil {
		return nil
	}
	return Client.Disconnect(ctx)
}

func ensureIndexes(ctx context.Context, database *mongo.Database) error {
	idx := []struct {
		coll   string
		models []mongo.IndexModel
	}{
		{"users", []mongo.IndexModel{
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		}},
		{"carts", []mongo.IndexModel{
			{Keys: bson.D{{Key: "userId", Value: 1}}, Options: options.Index().SetUnique(true)},
		}},
		{"orders", []mongo.IndexModel{
			{Keys: bson.D{{Key: "razorpayOrderId", Value: 1}}, Options: options.Index().SetSparse(true)},
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}}},
		}},
		{"wishlists", []mongo.IndexModel{
			{Keys: bson.D{{Key: "user", Value: 1}}, Options: options.Index().SetUnique(true)},
		}},
		{"reviews", []mongo.IndexModel{
			{Keys: bson.D{{Key: "user", Value: 1}, {Key: "product", Value: 1}}, Options: options.Index().SetUnique(true)},
		}},
	}
	for _, i := range idx {
		if _, err := database.Collection(i.coll).Indexes().CreateMany(ctx, i.models); err != nil {
			return fmt.Errorf("indexes %s: %w", i.coll, err)
		}
	}
	return nil
}
