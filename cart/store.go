package cart

import (
	"context"
	"errors"
	"time"

	"armoire/db"
	"armoire/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Load fetches the user's cart, creating an empty one lazily on first
// access. Totals are recomputed on the way out so a stale document never
// reaches a caller.
func Load(ctx context.Context, userID string) (*models.Cart, error) {
	var c models.Cart
	err := db.CartCollection.FindOne(ctx, bson.M{"userId": userID}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.NewCart(userID), nil
	}
	if err != nil {
		return nil, err
	}
	if c.Items == nil {
		c.Items = []models.CartItem{}
	}
	c.Recalculate()
	return &c, nil
}

// Save upserts the cart document keyed by user id.
func Save(ctx context.Context, c *models.Cart) error {
	c.UpdatedAt = time.Now()
	_, err := db.CartCollection.ReplaceOne(
		ctx,
		bson.M{"userId": c.UserID},
		c,
		options.Replace().SetUpsert(true),
	)
	return err
}

// ClearForUser empties a cart in place without loading it first. Used by
// payment reconciliation, which acts on the order's user rather than the
// requester.
func ClearForUser(ctx context.Context, userID string) error {
	_, err := db.CartCollection.UpdateOne(
		ctx,
		bson.M{"userId": userID},
		bson.M{"$set": bson.M{
			"items":     []models.CartItem{},
			"subtotal":  0,
			"discount":  0,
			"total":     0,
			"updatedAt": time.Now(),
		}},
	)
	return err
}
