package reviews

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"armoire/db"
	"armoire/models"
	"armoire/products"
	"armoire/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AddReview records a review, one per user per product, and folds the
// rating into the product's stats.
func AddReview(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		ProductID string `json:"productId"`
		Rating    int    `json:"rating"`
		Comment   string `json:"comment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if req.Rating < 1 || req.Rating > 5 || req.Comment == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Rating must be 1-5 and comment is required")
		return
	}

	if _, err := products.FindByID(ctx, req.ProductID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Product not found")
			return
		}
		log.Println("AddReview product lookup error:", err)
		http.Error(w, "Error adding review", http.StatusInternalServerError)
		return
	}

	count, err := db.ReviewsCollection.CountDocuments(ctx, bson.M{
		"user":    userID,
		"product": req.ProductID,
	})
	if err != nil {
		log.Println("AddReview count error:", err)
		http.Error(w, "Error adding review", http.StatusInternalServerError)
		return
	}
	if count > 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "You have already reviewed this product")
		return
	}

	review := models.Review{
		ReviewID:  utils.GenerateRandomString(16),
		UserID:    userID,
		ProductID: req.ProductID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		Status:    models.ReviewPending,
		CreatedAt: time.Now(),
	}

	if _, err := db.ReviewsCollection.InsertOne(ctx, review); err != nil {
		log.Println("AddReview insert error:", err)
		http.Error(w, "Error adding review", http.StatusInternalServerError)
		return
	}

	if err := products.AddRating(ctx, req.ProductID, req.Rating); err != nil {
		log.Println("AddReview rating stats error:", err)
	}

	utils.RespondWithJSON(w, http.StatusCreated, review)
}

// GetProductReviews lists a product's visible reviews: approved or pending,
// rating 3 and up, newest first, paginated.
func GetProductReviews(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	productID := ps.ByName("productId")
	skip, limit := utils.ParsePagination(r, 10, 100)

	filter := bson.M{
		"product": productID,
		"status":  bson.M{"$in": []string{models.ReviewApproved, models.ReviewPending}},
		"rating":  bson.M{"$gte": 3},
	}

	total, err := db.ReviewsCollection.CountDocuments(ctx, filter)
	if err != nil {
		log.Println("GetProductReviews count error:", err)
		http.Error(w, "Error fetching reviews", http.StatusInternalServerError)
		return
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := db.ReviewsCollection.Find(ctx, filter, opts)
	if err != nil {
		log.Println("GetProductReviews find error:", err)
		http.Error(w, "Error fetching reviews", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		log.Println("GetProductReviews decode error:", err)
		http.Error(w, "Error fetching reviews", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"reviews":      reviews,
		"totalReviews": total,
		"totalPages":   utils.TotalPages(total, limit),
		"currentPage":  utils.Page(skip, limit),
	})
}

// ListReviews returns all reviews for moderation, optionally filtered by
// status. Admin only.
func ListReviews(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["status"] = status
	}
	skip, limit := utils.ParsePagination(r, 10, 100)

	total, err := db.ReviewsCollection.CountDocuments(ctx, filter)
	if err != nil {
		log.Println("ListReviews count error:", err)
		http.Error(w, "Error fetching reviews", http.StatusInternalServerError)
		return
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := db.ReviewsCollection.Find(ctx, filter, opts)
	if err != nil {
		log.Println("ListReviews find error:", err)
		http.Error(w, "Error fetching reviews", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		log.Println("ListReviews decode error:", err)
		http.Error(w, "Error fetching reviews", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"reviews":      reviews,
		"totalReviews": total,
		"totalPages":   utils.TotalPages(total, limit),
		"currentPage":  utils.Page(skip, limit),
	})
}

// SetReviewStatus moderates a review. Admin only.
func SetReviewStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	switch req.Status {
	case models.ReviewPending, models.ReviewApproved, models.ReviewRejected:
	default:
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid status")
		return
	}

	res, err := db.ReviewsCollection.UpdateOne(
		ctx,
		bson.M{"reviewId": ps.ByName("reviewId")},
		bson.M{"$set": bson.M{"status": req.Status}},
	)
	if err != nil {
		log.Println("SetReviewStatus error:", err)
		http.Error(w, "Error updating review", http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Review not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Review updated"})
}

// DeleteReview removes a review outright. Admin only. Rating stats are not
// recomputed on delete.
func DeleteReview(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	res, err := db.ReviewsCollection.DeleteOne(ctx, bson.M{"reviewId": ps.ByName("reviewId")})
	if err != nil {
		log.Println("DeleteReview error:", err)
		http.Error(w, "Error deleting review", http.StatusInternalServerError)
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Review not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Review deleted"})
}
