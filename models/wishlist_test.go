package models

import (
	"reflect"
	"testing"
)

func TestWishlist_Merge(t *testing.T) {
	user := &Wishlist{UserID: "u1", Products: []string{"p1", "p2"}}
	guest := &Wishlist{UserID: "g1", Products: []string{"p2", "p3", "p1", "p4"}, IsGuest: true}

	user.Merge(guest)

	want := []string{"p1", "p2", "p3", "p4"}
	if !reflect.DeepEqual(user.Products, want) {
		t.Errorf("merge: got %v, want %v", user.Products, want)
	}
}

func TestWishlist_MergeIntoEmpty(t *testing.T) {
	user := &Wishlist{UserID: "u1", Products: []string{}}
	guest := &Wishlist{UserID: "g1", Products: []string{"p1", "p1", "p2"}, IsGuest: true}

	user.Merge(guest)

	want := []string{"p1", "p2"}
	if !reflect.DeepEqual(user.Products, want) {
		t.Errorf("merge: got %v, want %v", user.Products, want)
	}
}
