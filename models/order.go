package models

import "time"

// Fulfillment statuses.
const (
	OrderPending    = "Pending"
	OrderProcessing = "Processing"
	OrderShipped    = "Shipped"
	OrderDelivered  = "Delivered"
	OrderCancelled  = "Cancelled"
)

// Payment statuses.
const (
	PaymentPending = "Pending"
	PaymentPaid    = "Paid"
	PaymentFailed  = "Failed"
)

// OrderItem is a frozen snapshot of a cart line at checkout time.
type OrderItem struct {
	ProductID   string  `json:"productId" bson:"productId"`
	ProductName string  `json:"productName" bson:"productName"`
	Quantity    int     `json:"quantity" bson:"quantity"`
	Price       float64 `json:"price" bson:"price"`
}

// Address is a shipping or billing address supplied at checkout.
type Address struct {
	Line1   string `json:"line1" bson:"line1"`
	Line2   string `json:"line2,omitempty" bson:"line2,omitempty"`
	City    string `json:"city" bson:"city"`
	State   string `json:"state" bson:"state"`
	Pincode string `json:"pincode" bson:"pincode"`
}

// Order is the immutable purchase record created from a cart. Item snapshots
// and amounts are fixed at creation; only status, paymentStatus and the
// gateway identifiers change afterwards.
type Order struct {
	OrderID           string      `json:"orderId" bson:"orderId"`
	UserID            string      `json:"userId" bson:"userId"`
	Items             []OrderItem `json:"items" bson:"items"`
	Subtotal          float64     `json:"subtotal" bson:"subtotal"`
	Discount          float64     `json:"discount" bson:"discount"`
	DeliveryFee       float64     `json:"deliveryFee" bson:"deliveryFee"`
	Total             float64     `json:"total" bson:"total"`
	ShippingAddress   Address     `json:"shippingAddress" bson:"shippingAddress"`
	BillingAddress    Address     `json:"billingAddress,omitempty" bson:"billingAddress,omitempty"`
	DeliveryOption    string      `json:"deliveryOption,omitempty" bson:"deliveryOption,omitempty"`
	MobileNumber      string      `json:"mobileNumber" bson:"mobileNumber"`
	Status            string      `json:"status" bson:"status"`
	PaymentStatus     string      `json:"paymentStatus" bson:"paymentStatus"`
	RazorpayOrderID   string      `json:"razorpayOrderId,omitempty" bson:"razorpayOrderId,omitempty"`
	RazorpayPaymentID string      `json:"razorpayPaymentId,omitempty" bson:"razorpayPaymentId,omitempty"`
	RazorpaySignature string      `json:"razorpaySignature,omitempty" bson:"razorpaySignature,omitempty"`
	CreatedAt         time.Time   `json:"createdAt" bson:"createdAt"`
}
