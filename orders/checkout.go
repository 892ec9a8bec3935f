package orders

import (
	"fmt"
	"regexp"
	"time"

	"armoire/models"
	"armoire/razorpay"
	"armoire/utils"
)

// 10-digit Indian mobile number, leading digit 6-9.
var mobileRe = regexp.MustCompile(`^[6-9]\d{9}$`)

// Flat surcharge for expedited delivery, in major currency units.
const expressDeliveryFee = 100

// gateway is the payment collaborator used by the checkout handler. Wired
// once at startup; tests substitute a fake.
var gateway razorpay.Gateway

func SetGateway(g razorpay.Gateway) { gateway = g }

// CheckoutRequest is the validated input for both order-creation paths.
type CheckoutRequest struct {
	MobileNumber    string         `json:"mobileNumber"`
	ShippingAddress models.Address `json:"shippingAddress"`
	BillingAddress  models.Address `json:"billingAddress"`
	DeliveryOption  string         `json:"deliveryOption"`
}

func deliveryFee(option string) float64 {
	if option == "express" {
		return expressDeliveryFee
	}
	return 0
}

// buildOrder validates the request against the cart and freezes an order
// snapshot. Total is fixed here as subtotal - discount + deliveryFee and
// never recomputed afterwards. The delivery fee only applies on the
// gateway path; withFee distinguishes the two.
func buildOrder(c *models.Cart, req CheckoutRequest, withFee bool) (*models.Order, error) {
	if !mobileRe.MatchString(req.MobileNumber) {
		return nil, fmt.Errorf("%w: mobile number must be 10 digits starting with 6-9", models.ErrInvalidInput)
	}
	if len(c.Items) == 0 {
		return nil, models.ErrEmptyCart
	}

	fee := 0.0
	if withFee {
		fee = deliveryFee(req.DeliveryOption)
	}

	items := make([]models.OrderItem, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, models.OrderItem{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       it.Price,
		})
	}

	return &models.Order{
		OrderID:         "ORD" + utils.GenerateRandomString(12),
		UserID:          c.UserID,
		Items:           items,
		Subtotal:        c.Subtotal,
		Discount:        c.Discount,
		DeliveryFee:     fee,
		Total:           c.Total + fee,
		ShippingAddress: req.ShippingAddress,
		BillingAddress:  req.BillingAddress,
		DeliveryOption:  req.DeliveryOption,
		MobileNumber:    req.MobileNumber,
		Status:          models.OrderPending,
		PaymentStatus:   models.PaymentPending,
		CreatedAt:       time.Now(),
	}, nil
}

// receiptRef derives the gateway receipt reference. Uniqueness is only as
// strong as the timestamp; the gateway is not asked to dedupe beyond it.
func receiptRef(now time.Time) string {
	return fmt.Sprintf("order_receipt_%d", now.UnixMilli())
}
