package models

import "time"

// CartItem is one line in a user's cart. Price is the unit price snapshot
// taken when the item was first added.
type CartItem struct {
	ProductID   string  `json:"productId" bson:"productId"`
	ProductName string  `json:"productName" bson:"productName"`
	Quantity    int     `json:"quantity" bson:"quantity"`
	Price       float64 `json:"price" bson:"price"`
}

// Cart is the per-user mutable collection of intended purchases. Totals are
// always recomputed from items + discount before persisting; client-supplied
// totals are never trusted.
type Cart struct {
	UserID    string     `json:"userId" bson:"userId"`
	Items     []CartItem `json:"items" bson:"items"`
	Subtotal  float64    `json:"subtotal" bson:"subtotal"`
	Discount  float64    `json:"discount" bson:"discount"`
	Total     float64    `json:"total" bson:"total"`
	UpdatedAt time.Time  `json:"updatedAt" bson:"updatedAt"`
}

// NewCart returns an empty cart for the user. Carts are created lazily on
// first access.
func NewCart(userID string) *Cart {
	return &Cart{UserID: userID, Items: []CartItem{}}
}

// Recalculate recomputes subtotal and total from the line items, clamping
// discount into [0, subtotal].
func (c *Cart) Recalculate() {
	subtotal := 0.0
	for _, it := range c.Items {
		subtotal += float64(it.Quantity) * it.Price
	}
	c.Subtotal = subtotal
	if c.Discount < 0 {
		c.Discount = 0
	}
	if c.Discount > subtotal {
		c.Discount = subtotal
	}
	c.Total = subtotal - c.Discount
}

// AddItem merges quantity into an existing line for the product, or appends
// a new line with the product's current price as the snapshot.
func (c *Cart) AddItem(p Product, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidInput
	}
	for i := range c.Items {
		if c.Items[i].ProductID == p.ProductID {
			c.Items[i].Quantity += quantity
			c.Recalculate()
			return nil
		}
	}
	c.Items = append(c.Items, CartItem{
		ProductID:   p.ProductID,
		ProductName: p.Name,
		Quantity:    quantity,
		Price:       p.Price.Amount,
	})
	c.Recalculate()
	return nil
}

// RemoveItem drops the line for the product if present.
func (c *Cart) RemoveItem(productID string) {
	kept := c.Items[:0]
	for _, it := range c.Items {
		if it.ProductID != productID {
			kept = append(kept, it)
		}
	}
	c.Items = kept
	c.Recalculate()
}

// SetQuantity replaces the quantity of an existing line.
func (c *Cart) SetQuantity(productID string, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidInput
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity
			c.Recalculate()
			return nil
		}
	}
	return ErrNotFound
}

// ApplyDiscount sets an absolute discount, clamped to the subtotal, and
// returns the new total. Negative amounts are rejected.
func (c *Cart) ApplyDiscount(amount float64) (float64, error) {
	if amount < 0 {
		return c.Total, ErrInvalidInput
	}
	c.Discount = amount
	c.Recalculate()
	return c.Total, nil
}

// Clear empties the cart and zeroes all totals.
func (c *Cart) Clear() {
	c.Items = []CartItem{}
	c.Subtotal = 0
	c.Discount = 0
	c.Total = 0
}
