package models

import "time"

// Price carries an amount in major currency units plus its currency code.
type Price struct {
	Amount   float64 `json:"amount" bson:"amount"`
	Currency string  `json:"currency" bson:"currency"`
}

// Inventory tracks sellable stock. Reserved units are counted against
// quantity but not yet shipped.
type Inventory struct {
	Quantity int `json:"quantity" bson:"quantity"`
	Reserved int `json:"reserved" bson:"reserved"`
}

// RatingStats is the denormalized review summary shown on product cards.
type RatingStats struct {
	Average float64 `json:"average" bson:"average"`
	Count   int     `json:"count" bson:"count"`
}

type Product struct {
	ProductID   string      `json:"productId" bson:"productId"`
	SKU         string      `json:"sku" bson:"sku"`
	Name        string      `json:"name" bson:"name"`
	Description string      `json:"description" bson:"description"`
	Price       Price       `json:"price" bson:"price"`
	Inventory   Inventory   `json:"inventory" bson:"inventory"`
	Categories  []string    `json:"categories" bson:"categories"`
	Tags        []string    `json:"tags,omitempty" bson:"tags,omitempty"`
	Rating      RatingStats `json:"rating" bson:"rating"`
	CreatedAt   time.Time   `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt" bson:"updatedAt"`
}
