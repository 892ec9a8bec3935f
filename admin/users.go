package admin

import (
	"context"
	"log"
	"net/http"
	"time"

	"armoire/db"
	"armoire/models"
	"armoire/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetUsers lists accounts for the dashboard, paginated. Password and token
// fields never serialize (json:"-" on the model).
func GetUsers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if role := r.URL.Query().Get("role"); role != "" {
		filter["role"] = role
	}
	skip, limit := utils.ParsePagination(r, 10, 100)

	total, err := db.UserCollection.CountDocuments(ctx, filter)
	if err != nil {
		log.Println("GetUsers count error:", err)
		http.Error(w, "Error fetching users", http.StatusInternalServerError)
		return
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := db.UserCollection.Find(ctx, filter, opts)
	if err != nil {
		log.Println("GetUsers find error:", err)
		http.Error(w, "Error fetching users", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		log.Println("GetUsers decode error:", err)
		http.Error(w, "Error fetching users", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"users":       users,
		"totalUsers":  total,
		"totalPages":  utils.TotalPages(total, limit),
		"currentPage": utils.Page(skip, limit),
	})
}
