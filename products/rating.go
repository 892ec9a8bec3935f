package products

import (
	"context"

	"armoire/db"
	"armoire/models"

	"go.mongodb.org/mongo-driver/bson"
)

// AddRating folds one new review rating into the product's denormalized
// stats. Read-modify-write without a version check; concurrent reviews can
// race, which only skews the cached average until the next write.
func AddRating(ctx context.Context, productID string, rating int) error {
	product, err := FindByID(ctx, productID)
	if err != nil {
		return err
	}

	count := product.Rating.Count + 1
	average := (product.Rating.Average*float64(product.Rating.Count) + float64(rating)) / float64(count)

	_, err = db.ProductCollection.UpdateOne(
		ctx,
		bson.M{"productId": productID},
		bson.M{"$set": bson.M{"rating": models.RatingStats{Average: average, Count: count}}},
	)
	if err != nil {
		return err
	}

	invalidate(ctx, productID)
	return nil
}
