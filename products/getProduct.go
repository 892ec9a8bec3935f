package products

import (
	"context"
	"errors"
	"time"

	"armoire/db"
	"armoire/models"
	"armoire/rdx"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const cacheTTL = 5 * time.Minute

func cacheKey(id string) string { return "product:" + id }

// FindByID resolves a product through the Redis read-through cache. Returns
// models.ErrNotFound when the product does not exist.
func FindByID(ctx context.Context, id string) (models.Product, error) {
	var product models.Product
	if id == "" {
		return product, models.ErrNotFound
	}

	if rdx.CacheGet(ctx, cacheKey(id), &product) {
		return product, nil
	}

	err := db.ProductCollection.FindOne(ctx, bson.M{"productId": id}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return product, models.ErrNotFound
	}
	if err != nil {
		return product, err
	}

	rdx.CacheSet(ctx, cacheKey(id), product, cacheTTL)
	return product, nil
}

// invalidate drops the cached copy after an admin write.
func invalidate(ctx context.Context, id string) {
	rdx.CacheDel(ctx, cacheKey(id))
}
