package orders

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"armoire/cart"
	"armoire/db"
	"armoire/globals"
	"armoire/models"
	"armoire/rdx"
	"armoire/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type verifyRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}

// VerifySignature recomputes the gateway callback signature,
// HMAC-SHA256 over "orderID|paymentID", and compares in constant time.
func VerifySignature(orderID, paymentID, provided string, secret []byte) bool {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(provided))
}

// VerifyPayment reconciles an inbound payment callback: on a valid
// signature it moves the matching order to Processing/Paid, records the
// payment identifiers, and clears the order owner's cart. A bad signature
// is an expected tampering outcome, reported as {success:false} with no
// state change. There is no nonce tracking: a replayed valid payload
// re-returns success, but the Pending->Paid transition only happens once.
func VerifyPayment(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req verifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	if !VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature, globals.RazorpaySecret) {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{
			"success": false,
			"message": "Payment verification failed",
		})
		return
	}

	// Serialize concurrent callbacks for the same gateway order.
	locked, err := rdx.AcquireLock(ctx, "verify:"+req.RazorpayOrderID, 30*time.Second)
	if err != nil {
		log.Println("VerifyPayment lock error:", err)
	}
	if !locked {
		utils.RespondWithError(w, http.StatusConflict, "Payment verification already in progress")
		return
	}
	defer rdx.ReleaseLock(ctx, "verify:"+req.RazorpayOrderID)

	var order models.Order
	err = db.OrderCollection.FindOneAndUpdate(
		ctx,
		bson.M{"razorpayOrderId": req.RazorpayOrderID},
		bson.M{"$set": bson.M{
			"status":            models.OrderProcessing,
			"paymentStatus":     models.PaymentPaid,
			"razorpayPaymentId": req.RazorpayPaymentID,
			"razorpaySignature": req.RazorpaySignature,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		utils.RespondWithJSON(w, http.StatusNotFound, utils.M{
			"success": false,
			"message": "Order not found",
		})
		return
	}
	if err != nil {
		log.Println("VerifyPayment update error:", err)
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{
			"success": false,
			"message": "Internal Server Error",
		})
		return
	}

	// Third write of a non-atomic sequence: a failure here leaves a paid
	// order with a populated cart. Recoverable, so report it loudly
	// instead of failing the verified payment.
	if err := cart.ClearForUser(ctx, order.UserID); err != nil {
		log.Printf("ANOMALY: payment verified for order %s but cart for user %s not cleared: %v",
			order.OrderID, order.UserID, err)
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"message": "Payment has been verified",
		"order":   order,
	})
}
