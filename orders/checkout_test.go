package orders

import (
	"strings"
	"testing"
	"time"

	"armoire/models"
)

func testCart() *models.Cart {
	c := models.NewCart("u1")
	c.Items = []models.CartItem{
		{ProductID: "A", ProductName: "Wardrobe", Quantity: 2, Price: 100},
		{ProductID: "B", ProductName: "Cabinet", Quantity: 1, Price: 50},
	}
	c.Recalculate()
	return c
}

func TestBuildOrder_MobileValidation(t *testing.T) {
	cases := []struct {
		mobile string
		ok     bool
	}{
		{"9123456789", true},
		{"6000000000", true},
		{"5123456789", false}, // leading digit below 6
		{"912345678", false},  // 9 digits
		{"91234567890", false},
		{"91234a6789", false},
		{"", false},
	}

	for _, tc := range cases {
		t.Run(tc.mobile, func(t *testing.T) {
			_, err := buildOrder(testCart(), CheckoutRequest{MobileNumber: tc.mobile}, false)
			if tc.ok && err != nil {
				t.Errorf("expected success, got %v", err)
			}
			if !tc.ok {
				if err == nil || !strings.Contains(err.Error(), models.ErrInvalidInput.Error()) {
					t.Errorf("expected ErrInvalidInput, got %v", err)
				}
			}
		})
	}
}

func TestBuildOrder_EmptyCart(t *testing.T) {
	c := models.NewCart("u1")
	_, err := buildOrder(c, CheckoutRequest{MobileNumber: "9123456789"}, true)
	if err != models.ErrEmptyCart {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestBuildOrder_ExpressDeliveryFee(t *testing.T) {
	c := testCart()
	if _, err := c.ApplyDiscount(30); err != nil {
		t.Fatalf("ApplyDiscount: %v", err)
	}
	// subtotal 250, discount 30 -> cart total 220

	order, err := buildOrder(c, CheckoutRequest{
		MobileNumber:   "9123456789",
		DeliveryOption: "express",
	}, true)
	if err != nil {
		t.Fatalf("buildOrder: %v", err)
	}

	if order.DeliveryFee != 100 {
		t.Errorf("expected delivery fee 100, got %v", order.DeliveryFee)
	}
	if order.Total != 320 {
		t.Errorf("expected total 320, got %v", order.Total)
	}
	if order.Total != order.Subtotal-order.Discount+order.DeliveryFee {
		t.Errorf("order total invariant broken: %+v", order)
	}
}

func TestBuildOrder_StandardDeliveryIsFree(t *testing.T) {
	order, err := buildOrder(testCart(), CheckoutRequest{
		MobileNumber:   "9123456789",
		DeliveryOption: "standard",
	}, true)
	if err != nil {
		t.Fatalf("buildOrder: %v", err)
	}
	if order.DeliveryFee != 0 {
		t.Errorf("expected delivery fee 0, got %v", order.DeliveryFee)
	}
	if order.Total != 250 {
		t.Errorf("expected total 250, got %v", order.Total)
	}
}

func TestBuildOrder_DirectPathIgnoresDeliveryOption(t *testing.T) {
	order, err := buildOrder(testCart(), CheckoutRequest{
		MobileNumber:   "9123456789",
		DeliveryOption: "express",
	}, false)
	if err != nil {
		t.Fatalf("buildOrder: %v", err)
	}
	if order.DeliveryFee != 0 {
		t.Errorf("direct path should not charge a delivery fee, got %v", order.DeliveryFee)
	}
}

func TestBuildOrder_Snapshot(t *testing.T) {
	c := testCart()
	order, err := buildOrder(c, CheckoutRequest{MobileNumber: "9123456789"}, false)
	if err != nil {
		t.Fatalf("buildOrder: %v", err)
	}

	if order.Status != models.OrderPending || order.PaymentStatus != models.PaymentPending {
		t.Errorf("new order should be Pending/Pending, got %s/%s", order.Status, order.PaymentStatus)
	}
	if order.UserID != "u1" {
		t.Errorf("expected order owner u1, got %s", order.UserID)
	}
	if !strings.HasPrefix(order.OrderID, "ORD") {
		t.Errorf("unexpected order id %q", order.OrderID)
	}
	if len(order.Items) != 2 {
		t.Fatalf("expected 2 item snapshots, got %d", len(order.Items))
	}

	// Mutating the cart afterwards must not reach into the snapshot.
	c.Items[0].Quantity = 99
	if order.Items[0].Quantity == 99 {
		t.Error("order items alias the cart items")
	}
}

func TestReceiptRef(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	if got := receiptRef(now); got != "order_receipt_1700000000000" {
		t.Errorf("receiptRef: got %q", got)
	}
}
