package orders

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"armoire/cart"
	"armoire/db"
	"armoire/models"
	"armoire/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateOrder is the direct, non-gateway path (cash-on-delivery-style).
// It trusts the client that payment will happen out of band: the order is
// placed immediately and the cart cleared unconditionally, with no payment
// confirmation. Payment status stays at its default.
func CreateOrder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	c, err := cart.Load(ctx, userID)
	if err != nil {
		log.Println("CreateOrder cart load error:", err)
		http.Error(w, "Error creating order", http.StatusInternalServerError)
		return
	}

	order, err := buildOrder(c, req, false)
	if err != nil {
		utils.RespondWithDomainError(w, err, "Error creating order")
		return
	}

	if _, err := db.OrderCollection.InsertOne(ctx, order); err != nil {
		log.Println("CreateOrder insert error:", err)
		http.Error(w, "Error creating order", http.StatusInternalServerError)
		return
	}

	c.Clear()
	if err := cart.Save(ctx, c); err != nil {
		// Order exists but the cart survived; recoverable, but don't hide it.
		log.Printf("ANOMALY: order %s placed but cart for user %s not cleared: %v", order.OrderID, userID, err)
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"message": "Order created successfully",
		"order":   order,
	})
}

// CreateRazorpayOrder initiates checkout through the payment gateway: it
// creates a gateway order for the cart total plus delivery fee and persists
// a Pending order referencing it. The cart is NOT cleared here; that happens
// only once the payment callback verifies.
func CreateRazorpayOrder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	var req CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	c, err := cart.Load(ctx, userID)
	if err != nil {
		log.Println("CreateRazorpayOrder cart load error:", err)
		http.Error(w, "Error creating order", http.StatusInternalServerError)
		return
	}

	order, err := buildOrder(c, req, true)
	if err != nil {
		utils.RespondWithDomainError(w, err, "Error creating order")
		return
	}

	// Gateway amounts are in minor currency units.
	gwOrder, err := gateway.CreateOrder(ctx, int64(order.Total*100), "INR", receiptRef(time.Now()))
	if err != nil {
		log.Println("CreateRazorpayOrder gateway error:", err)
		utils.RespondWithDomainError(w, models.ErrGateway, "Error creating order")
		return
	}
	order.RazorpayOrderID = gwOrder.ID

	if _, err := db.OrderCollection.InsertOne(ctx, order); err != nil {
		log.Println("CreateRazorpayOrder insert error:", err)
		http.Error(w, "Error creating order", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"orderId":  gwOrder.ID,
		"amount":   gwOrder.Amount,
		"currency": gwOrder.Currency,
		"order":    order,
	})
}

// GetOrderHistory lists the requester's orders, newest first.
func GetOrderHistory(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := db.OrderCollection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		log.Println("GetOrderHistory find error:", err)
		http.Error(w, "Error fetching order history", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		log.Println("GetOrderHistory decode error:", err)
		http.Error(w, "Error fetching order history", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, orders)
}

// GetOrder returns one of the requester's orders.
func GetOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var order models.Order
	err := db.OrderCollection.FindOne(ctx, bson.M{
		"orderId": ps.ByName("orderId"),
		"userId":  userID,
	}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}
	if err != nil {
		log.Println("GetOrder error:", err)
		http.Error(w, "Error fetching order", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, order)
}
