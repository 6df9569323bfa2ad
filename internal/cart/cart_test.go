package cart_test

import (
	"testing"

	"github.com/izaj/izaj-golang/internal/cart"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// The worked checkout example: one discounted chandelier, quantity 2,
// shipped to Laguna.
func TestDerivedAmounts(t *testing.T) {
	c := cart.New(cart.LineItem{
		ID:            1,
		UnitPrice:     15995,
		OriginalPrice: int64Ptr(16995),
		Quantity:      2,
	})

	assert.True(t, c.Subtotal().Equal(dec("31990")), "subtotal = %s", c.Subtotal())
	assert.True(t, c.Discount().Equal(dec("2000")), "discount = %s", c.Discount())
	assert.True(t, cart.ShippingCost("Laguna").Equal(dec("200")))
	assert.True(t, c.Tax().Equal(dec("3838.8")), "tax = %s", c.Tax())
	assert.True(t, c.Total("Laguna").Equal(dec("34028.8")), "total = %s", c.Total("Laguna"))
}

func TestTotalFormula(t *testing.T) {
	c := cart.New(
		cart.LineItem{ID: 1, UnitPrice: 1200, Quantity: 3},
		cart.LineItem{ID: 2, UnitPrice: 450, OriginalPrice: int64Ptr(500), Quantity: 4},
	)

	for _, city := range []string{"Laguna", "Cavite", "Manila", ""} {
		want := c.Subtotal().Sub(c.Discount()).Add(cart.ShippingCost(city)).Add(c.Tax())
		got := c.Total(city)
		assert.True(t, got.Equal(want), "city %q: total = %s, want %s", city, got, want)
		assert.False(t, got.IsNegative())
	}
}

func TestSetQuantityClamping(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		want     int
	}{
		{"below minimum clamps to 1", 0, 1},
		{"negative clamps to 1", -5, 1},
		{"minimum stays", 1, 1},
		{"in range stays", 7, 7},
		{"maximum stays", 10, 10},
		{"above maximum clamps to 10", 11, 10},
		{"far above maximum clamps to 10", 999, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cart.New(cart.LineItem{ID: 1, UnitPrice: 100, Quantity: 5})

			c.SetQuantity(1, tt.quantity)
			require.Equal(t, tt.want, c.Items()[0].Quantity)

			// Repeating the call at the boundary changes nothing.
			c.SetQuantity(1, tt.quantity)
			assert.Equal(t, tt.want, c.Items()[0].Quantity)
		})
	}
}

func TestSetQuantityAbsentIDIsNoOp(t *testing.T) {
	c := cart.New(cart.LineItem{ID: 1, UnitPrice: 100, Quantity: 2})
	c.SetQuantity(42, 5)

	require.Equal(t, 1, c.Len())
	assert.Equal(t, 2, c.Items()[0].Quantity)
}

func TestSetQuantityPreservesOrder(t *testing.T) {
	c := cart.New(
		cart.LineItem{ID: 3, UnitPrice: 100, Quantity: 1},
		cart.LineItem{ID: 1, UnitPrice: 200, Quantity: 1},
		cart.LineItem{ID: 2, UnitPrice: 300, Quantity: 1},
	)

	c.SetQuantity(1, 9)

	ids := []int64{}
	for _, item := range c.Items() {
		ids = append(ids, item.ID)
	}
	assert.Equal(t, []int64{3, 1, 2}, ids)
}

func TestRemoveItemIdempotent(t *testing.T) {
	c := cart.New(
		cart.LineItem{ID: 1, UnitPrice: 100, Quantity: 1},
		cart.LineItem{ID: 2, UnitPrice: 200, Quantity: 1},
	)

	c.RemoveItem(1)
	require.Equal(t, 1, c.Len())

	// Removing the same ID again is equivalent to removing it once.
	c.RemoveItem(1)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, int64(2), c.Items()[0].ID)

	// Removing an ID that never existed is a no-op.
	c.RemoveItem(99)
	assert.Equal(t, 1, c.Len())
}

func TestDiscountZeroWithoutOriginalPrices(t *testing.T) {
	c := cart.New(
		cart.LineItem{ID: 1, UnitPrice: 100, Quantity: 3},
		cart.LineItem{ID: 2, UnitPrice: 250, Quantity: 1},
	)

	assert.True(t, c.Discount().IsZero())
}

func TestShippingCostTable(t *testing.T) {
	tests := []struct {
		city string
		want string
	}{
		{"San Pablo City", "200"},
		{"Laguna", "200"},
		{"Quezon", "250"},
		{"Cavite", "250"},
		{"Batangas", "250"},
		{"Camarines Sur", "300"},
		{"Sorsogon", "300"},
		{"La Union", "300"},
		// Anything not in the table falls back to the default rate,
		// including case mismatches and empty input.
		{"laguna", "300"},
		{"SAN PABLO CITY", "300"},
		{"Manila", "300"},
		{"", "300"},
	}

	for _, tt := range tests {
		t.Run("city "+tt.city, func(t *testing.T) {
			got := cart.ShippingCost(tt.city)
			assert.True(t, got.Equal(dec(tt.want)), "ShippingCost(%q) = %s, want %s", tt.city, got, tt.want)
		})
	}
}

func TestEmptyCart(t *testing.T) {
	c := cart.New()

	assert.True(t, c.IsEmpty())
	assert.True(t, c.Subtotal().IsZero())
	assert.True(t, c.Discount().IsZero())
	assert.True(t, c.Tax().IsZero())
	assert.True(t, c.Total("Laguna").IsZero())
}

func TestRemovingLastItemEmptiesCart(t *testing.T) {
	c := cart.New(cart.LineItem{ID: 1, UnitPrice: 100, Quantity: 1})
	c.RemoveItem(1)

	assert.True(t, c.IsEmpty())
	assert.True(t, c.Total("").IsZero())
}

func TestNewClampsInboundQuantities(t *testing.T) {
	c := cart.New(
		cart.LineItem{ID: 1, UnitPrice: 100, Quantity: 0},
		cart.LineItem{ID: 2, UnitPrice: 100, Quantity: 25},
	)

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, 10, items[1].Quantity)
}

func TestNewKeepsFirstDuplicateID(t *testing.T) {
	c := cart.New(
		cart.LineItem{ID: 1, UnitPrice: 100, Quantity: 1},
		cart.LineItem{ID: 1, UnitPrice: 999, Quantity: 5},
	)

	require.Equal(t, 1, c.Len())
	assert.Equal(t, int64(100), c.Items()[0].UnitPrice)
}
