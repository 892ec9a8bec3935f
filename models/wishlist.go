package models

import "time"

// Wishlist is a set of product ids per user or guest. Guest lists are keyed
// by a minted guest id and become merge candidates once the guest signs in.
type Wishlist struct {
	UserID    string    `json:"user" bson:"user"`
	Products  []string  `json:"products" bson:"products"`
	IsGuest   bool      `json:"isGuest" bson:"isGuest"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Contains reports whether the wishlist already holds the product.
func (w *Wishlist) Contains(productID string) bool {
	for _, id := range w.Products {
		if id == productID {
			return true
		}
	}
	return false
}

// Merge unions other's products into w, preserving order and de-duplicating.
func (w *Wishlist) Merge(other *Wishlist) {
	for _, id := range other.Products {
		if !w.Contains(id) {
			w.Products = append(w.Products, id)
		}
	}
}
