package models

import "testing"

func product(id string, amount float64) Product {
	return Product{
		ProductID: id,
		Name:      "Product " + id,
		Price:     Price{Amount: amount, Currency: "INR"},
	}
}

// The cart invariant: total == subtotal - discount and 0 <= discount <= subtotal
// after every mutating operation.
func checkInvariant(t *testing.T, c *Cart) {
	t.Helper()
	if c.Total != c.Subtotal-c.Discount {
		t.Errorf("total %v != subtotal %v - discount %v", c.Total, c.Subtotal, c.Discount)
	}
	if c.Discount < 0 || c.Discount > c.Subtotal {
		t.Errorf("discount %v outside [0, %v]", c.Discount, c.Subtotal)
	}
}

func TestCart_AddItemMergesLines(t *testing.T) {
	c := NewCart("u1")

	if err := c.AddItem(product("A", 100), 2); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := c.AddItem(product("A", 100), 3); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	if len(c.Items) != 1 {
		t.Fatalf("expected 1 line, got %d", len(c.Items))
	}
	if c.Items[0].Quantity != 5 {
		t.Errorf("expected quantity 5, got %d", c.Items[0].Quantity)
	}
	if c.Subtotal != 500 {
		t.Errorf("expected subtotal 500, got %v", c.Subtotal)
	}
	checkInvariant(t, c)
}

func TestCart_AddItemRejectsNonPositiveQuantity(t *testing.T) {
	c := NewCart("u1")
	for _, q := range []int{0, -1} {
		if err := c.AddItem(product("A", 100), q); err != ErrInvalidInput {
			t.Errorf("quantity %d: expected ErrInvalidInput, got %v", q, err)
		}
	}
	if len(c.Items) != 0 {
		t.Errorf("cart should be unchanged, has %d items", len(c.Items))
	}
}

func TestCart_RemoveItem(t *testing.T) {
	c := NewCart("u1")
	c.AddItem(product("A", 100), 2)
	c.AddItem(product("B", 50), 1)

	c.RemoveItem("A")

	if len(c.Items) != 1 || c.Items[0].ProductID != "B" {
		t.Fatalf("expected only B to remain, got %+v", c.Items)
	}
	if c.Subtotal != 50 {
		t.Errorf("expected subtotal 50, got %v", c.Subtotal)
	}
	checkInvariant(t, c)

	// Removing an absent product is a no-op.
	c.RemoveItem("Z")
	if len(c.Items) != 1 {
		t.Errorf("unexpected mutation removing absent product")
	}
}

func TestCart_SetQuantity(t *testing.T) {
	c := NewCart("u1")
	c.AddItem(product("A", 100), 2)

	if err := c.SetQuantity("A", 7); err != nil {
		t.Fatalf("SetQuantity: %v", err)
	}
	if c.Subtotal != 700 {
		t.Errorf("expected subtotal 700, got %v", c.Subtotal)
	}
	checkInvariant(t, c)

	if err := c.SetQuantity("missing", 1); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := c.SetQuantity("A", 0); err != ErrInvalidInput {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCart_ApplyDiscount(t *testing.T) {
	t.Run("normal", func(t *testing.T) {
		c := NewCart("u1")
		c.AddItem(product("A", 100), 2)

		total, err := c.ApplyDiscount(30)
		if err != nil {
			t.Fatalf("ApplyDiscount: %v", err)
		}
		if total != 170 {
			t.Errorf("expected total 170, got %v", total)
		}
		checkInvariant(t, c)
	})

	t.Run("clamps to subtotal", func(t *testing.T) {
		c := NewCart("u1")
		c.AddItem(product("A", 100), 1)

		total, err := c.ApplyDiscount(500)
		if err != nil {
			t.Fatalf("ApplyDiscount: %v", err)
		}
		if total != 0 {
			t.Errorf("expected total 0, got %v", total)
		}
		if c.Discount != 100 {
			t.Errorf("expected discount clamped to 100, got %v", c.Discount)
		}
		checkInvariant(t, c)
	})

	t.Run("rejects negative", func(t *testing.T) {
		c := NewCart("u1")
		c.AddItem(product("A", 100), 1)

		if _, err := c.ApplyDiscount(-1); err != ErrInvalidInput {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
		if c.Discount != 0 {
			t.Errorf("discount mutated on rejected input: %v", c.Discount)
		}
	})
}

func TestCart_DiscountSurvivesItemChanges(t *testing.T) {
	c := NewCart("u1")
	c.AddItem(product("A", 100), 2)
	c.ApplyDiscount(150)

	// Shrinking the cart below the discount re-clamps it.
	c.SetQuantity("A", 1)
	if c.Discount != 100 || c.Total != 0 {
		t.Errorf("expected discount re-clamped to 100 and total 0, got discount=%v total=%v", c.Discount, c.Total)
	}
	checkInvariant(t, c)
}

func TestCart_Clear(t *testing.T) {
	c := NewCart("u1")
	c.AddItem(product("A", 100), 2)
	c.ApplyDiscount(30)

	c.Clear()

	if len(c.Items) != 0 || c.Subtotal != 0 || c.Discount != 0 || c.Total != 0 {
		t.Errorf("clear left state behind: %+v", c)
	}
}

// End-to-end pricing scenario: two products, a discount, then checkout math
// picks up from the cart total.
func TestCart_PricingScenario(t *testing.T) {
	c := NewCart("u1")
	c.AddItem(product("A", 100), 2)
	c.AddItem(product("B", 50), 1)

	if c.Subtotal != 250 {
		t.Fatalf("expected subtotal 250, got %v", c.Subtotal)
	}

	total, err := c.ApplyDiscount(30)
	if err != nil {
		t.Fatalf("ApplyDiscount: %v", err)
	}
	if total != 220 {
		t.Errorf("expected total 220, got %v", total)
	}
	checkInvariant(t, c)
}
