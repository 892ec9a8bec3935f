package cart

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"armoire/models"
	"armoire/products"
	"armoire/utils"

	"github.com/julienschmidt/httprouter"
)

type itemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type discountRequest struct {
	DiscountAmount float64 `json:"discountAmount"`
}

// GetCart returns the user's cart, creating it lazily.
func GetCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	c, err := Load(ctx, userID)
	if err != nil {
		log.Println("GetCart load error:", err)
		http.Error(w, "Could not retrieve cart", http.StatusInternalServerError)
		return
	}
	if err := Save(ctx, c); err != nil {
		log.Println("GetCart save error:", err)
		http.Error(w, "Could not retrieve cart", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, c)
}

// AddToCart increments quantity if the product is already in the cart, or
// appends a new line with the product's current price snapshot.
func AddToCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	product, err := products.FindByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Product not found")
			return
		}
		log.Println("AddToCart product lookup error:", err)
		http.Error(w, "Error adding item to cart", http.StatusInternalServerError)
		return
	}

	c, err := Load(ctx, userID)
	if err != nil {
		log.Println("AddToCart load error:", err)
		http.Error(w, "Error adding item to cart", http.StatusInternalServerError)
		return
	}

	if err := c.AddItem(product, req.Quantity); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Quantity must be a positive integer")
		return
	}

	if err := Save(ctx, c); err != nil {
		log.Println("AddToCart save error:", err)
		http.Error(w, "Error adding item to cart", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, c)
}

// RemoveFromCart drops a line item.
func RemoveFromCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	c, err := Load(ctx, userID)
	if err != nil {
		log.Println("RemoveFromCart load error:", err)
		http.Error(w, "Error removing item from cart", http.StatusInternalServerError)
		return
	}

	c.RemoveItem(req.ProductID)

	if err := Save(ctx, c); err != nil {
		log.Println("RemoveFromCart save error:", err)
		http.Error(w, "Error removing item from cart", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, c)
}

// UpdateQuantity replaces the quantity of an existing line.
func UpdateQuantity(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	c, err := Load(ctx, userID)
	if err != nil {
		log.Println("UpdateQuantity load error:", err)
		http.Error(w, "Error updating item quantity", http.StatusInternalServerError)
		return
	}

	if err := c.SetQuantity(req.ProductID, req.Quantity); err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Item not found in cart")
		default:
			utils.RespondWithError(w, http.StatusBadRequest, "Quantity must be a positive integer")
		}
		return
	}

	if err := Save(ctx, c); err != nil {
		log.Println("UpdateQuantity save error:", err)
		http.Error(w, "Error updating item quantity", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, c)
}

// ApplyDiscount sets an absolute discount on the cart, clamped to the
// subtotal.
func ApplyDiscount(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req discountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	c, err := Load(ctx, userID)
	if err != nil {
		log.Println("ApplyDiscount load error:", err)
		http.Error(w, "Error applying discount", http.StatusInternalServerError)
		return
	}

	newTotal, err := c.ApplyDiscount(req.DiscountAmount)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Discount must not be negative")
		return
	}

	if err := Save(ctx, c); err != nil {
		log.Println("ApplyDiscount save error:", err)
		http.Error(w, "Error applying discount", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"message":  "Discount applied",
		"subtotal": c.Subtotal,
		"discount": c.Discount,
		"newTotal": newTotal,
		"cart":     c,
	})
}

// ClearCart empties the cart and zeroes its totals.
func ClearCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	c, err := Load(ctx, userID)
	if err != nil {
		log.Println("ClearCart load error:", err)
		http.Error(w, "Error clearing cart", http.StatusInternalServerError)
		return
	}

	c.Clear()

	if err := Save(ctx, c); err != nil {
		log.Println("ClearCart save error:", err)
		http.Error(w, "Error clearing cart", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Cart cleared", "cart": c})
}
