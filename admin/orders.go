package admin

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"armoire/db"
	"armoire/models"
	"armoire/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// orderFilter translates the dashboard's list query params into a Mongo
// filter: status, paymentStatus, minTotal, maxTotal.
func orderFilter(r *http.Request) bson.M {
	q := r.URL.Query()
	filter := bson.M{}

	if status := q.Get("status"); status != "" {
		filter["status"] = status
	}
	if ps := q.Get("paymentStatus"); ps != "" {
		filter["paymentStatus"] = ps
	}

	total := bson.M{}
	if min := q.Get("minTotal"); min != "" {
		if v, err := strconv.ParseFloat(min, 64); err == nil {
			total["$gte"] = v
		}
	}
	if max := q.Get("maxTotal"); max != "" {
		if v, err := strconv.ParseFloat(max, 64); err == nil {
			total["$lte"] = v
		}
	}
	if len(total) > 0 {
		filter["total"] = total
	}

	return filter
}

// GetOrders lists all orders for the dashboard, filtered and paginated.
func GetOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	filter := orderFilter(r)
	skip, limit := utils.ParsePagination(r, 10, 100)

	total, err := db.OrderCollection.CountDocuments(ctx, filter)
	if err != nil {
		log.Println("GetOrders count error:", err)
		http.Error(w, "Error fetching orders", http.StatusInternalServerError)
		return
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := db.OrderCollection.Find(ctx, filter, opts)
	if err != nil {
		log.Println("GetOrders find error:", err)
		http.Error(w, "Error fetching orders", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		log.Println("GetOrders decode error:", err)
		http.Error(w, "Error fetching orders", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"orders":      orders,
		"totalOrders": total,
		"totalPages":  utils.TotalPages(total, limit),
		"currentPage": utils.Page(skip, limit),
	})
}

// GetOrder returns one order by id, regardless of owner.
func GetOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var order models.Order
	err := db.OrderCollection.FindOne(ctx, bson.M{"orderId": ps.ByName("orderId")}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}
	if err != nil {
		log.Println("admin GetOrder error:", err)
		http.Error(w, "Error fetching order", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, order)
}

// UpdateOrderStatus applies a partial {status, paymentStatus} update. There
// is deliberately no transition guard: the dashboard may set any value over
// any other, including backward moves like Paid -> Pending. Changing that
// needs product sign-off; see the repo design notes.
func UpdateOrderStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req struct {
		Status        string `json:"status"`
		PaymentStatus string `json:"paymentStatus"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	update := bson.M{}
	if req.Status != "" {
		update["status"] = req.Status
	}
	if req.PaymentStatus != "" {
		update["paymentStatus"] = req.PaymentStatus
	}
	if len(update) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Nothing to update")
		return
	}

	var order models.Order
	err := db.OrderCollection.FindOneAndUpdate(
		ctx,
		bson.M{"orderId": ps.ByName("orderId")},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}
	if err != nil {
		log.Println("UpdateOrderStatus error:", err)
		http.Error(w, "Error updating order status", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, order)
}

// DeleteOrder hard-deletes an order. No cascading cleanup of cart or
// inventory state.
func DeleteOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	res, err := db.OrderCollection.DeleteOne(ctx, bson.M{"orderId": ps.ByName("orderId")})
	if err != nil {
		log.Println("DeleteOrder error:", err)
		http.Error(w, "Error deleting order", http.StatusInternalServerError)
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Order deleted"})
}
