package razorpay

import (
	"context"
	"fmt"
	"os"

	rzp "github.com/razorpay/razorpay-go"
)

// GatewayOrder is the provider-side record created to collect a payment.
type GatewayOrder struct {
	ID       string
	Amount   int64 // minor currency units
	Currency string
}

// Gateway creates provider orders. The checkout workflow depends on this
// interface so tests can substitute a fake.
type Gateway interface {
	CreateOrder(ctx context.Context, amountMinorUnits int64, currency, receipt string) (GatewayOrder, error)
}

// Client wraps the Razorpay SDK.
type Client struct {
	sdk *rzp.Client
}

func NewClient() *Client {
	return &Client{sdk: rzp.NewClient(
		os.Getenv("RAZORPAY_KEY_ID"),
		os.Getenv("RAZORPAY_KEY_SECRET"),
	)}
}

func (c *Client) CreateOrder(ctx context.Context, amountMinorUnits int64, currency, receipt string) (GatewayOrder, error) {
	data := map[string]interface{}{
		"amount":          amountMinorUnits,
		"currency":        currency,
		"receipt":         receipt,
		"payment_capture": 1,
	}

	body, err := c.sdk.Order.Create(data, nil)
	if err != nil {
		return GatewayOrder{}, fmt.Errorf("razorpay order create: %w", err)
	}

	id, ok := body["id"].(string)
	if !ok || id == "" {
		return GatewayOrder{}, fmt.Errorf("razorpay order create: malformed response")
	}

	amount := amountMinorUnits
	if a, ok := body["amount"].(float64); ok {
		amount = int64(a)
	}
	cur := currency
	if s, ok := body["currency"].(string); ok && s != "" {
		cur = s
	}

	return GatewayOrder{ID: id, Amount: amount, Currency: cur}, nil
}
