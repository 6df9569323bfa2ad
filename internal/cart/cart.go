package cart

import (
	"github.com/shopspring/decimal"
)

// Quantity limits enforced on every line item.
// Values outside this range are clamped, never rejected.
const (
	MinQuantity = 1
	MaxQuantity = 10
)

// taxRate is applied to the PRE-discount subtotal.
// The storefront has always charged 12% VAT on the undiscounted amount.
var taxRate = decimal.RequireFromString("0.12")

// shippingRates maps a delivery city to its flat rate in pesos.
// Keys are exact strings. Anything else (including empty or
// case-mismatched input) falls back to defaultShippingRate.
var shippingRates = map[string]int64{
	"San Pablo City": 200,
	"Quezon":         250,
	"Laguna":         200,
	"Cavite":         250,
	"Batangas":       250,
	"Camarines Sur":  300,
	"Sorsogon":       300,
	"La Union":       300,
}

// defaultShippingRate covers every city not in the table.
const defaultShippingRate = 300

// LineItem is one catalog entry plus its quantity within a cart.
// Prices are whole pesos. OriginalPrice, when set, marks the item
// as discounted per unit (OriginalPrice - UnitPrice).
type LineItem struct {
	ID            int64  `json:"id"`
	UnitPrice     int64  `json:"price"`
	OriginalPrice *int64 `json:"originalPrice,omitempty"`
	Quantity      int    `json:"quantity"`
}

// Cart is the ledger: an ordered collection of line items, unique by ID.
// All derived amounts (subtotal, discount, tax, total) are recomputed on
// every read. Nothing is cached, so there is no invalidation to get wrong.
type Cart struct {
	items []LineItem
}

// New builds a cart from the given items. Quantities are clamped on the
// way in. A duplicate ID keeps the first occurrence.
func New(items ...LineItem) *Cart {
	c := &Cart{}
	for _, item := range items {
		if c.find(item.ID) != -1 {
			continue
		}
		item.Quantity = clampQuantity(item.Quantity)
		c.items = append(c.items, item)
	}
	return c
}

// Items returns a copy of the line items in order.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of distinct line items.
func (c *Cart) Len() int {
	return len(c.items)
}

// IsEmpty reports whether the cart holds no items.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// SetQuantity updates the quantity of the item with the given ID.
// The new quantity is clamped to [MinQuantity, MaxQuantity]; out-of-range
// input is silently clamped, not rejected. Collection order is unchanged.
// An absent ID is a no-op.
func (c *Cart) SetQuantity(id int64, quantity int) {
	i := c.find(id)
	if i == -1 {
		return
	}
	c.items[i].Quantity = clampQuantity(quantity)
}

// RemoveItem filters the item with the given ID out of the cart.
// Removing an ID that is not present is a no-op, so the operation
// is idempotent.
func (c *Cart) RemoveItem(id int64) {
	i := c.find(id)
	if i == -1 {
		return
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
}

// Subtotal is the sum of unit price times quantity over all items.
func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range c.items {
		line := decimal.NewFromInt(item.UnitPrice).Mul(decimal.NewFromInt(int64(item.Quantity)))
		sum = sum.Add(line)
	}
	return sum
}

// Discount is the sum of (original price - unit price) times quantity
// over the items that carry an original price. Items without one
// contribute zero.
func (c *Cart) Discount() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range c.items {
		if item.OriginalPrice == nil {
			continue
		}
		perUnit := decimal.NewFromInt(*item.OriginalPrice - item.UnitPrice)
		sum = sum.Add(perUnit.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return sum
}

// Tax is 12% of the subtotal. Note this is the undiscounted subtotal:
// the discount is netted into the total afterwards, it does not reduce
// the taxable amount.
func (c *Cart) Tax() decimal.Decimal {
	return c.Subtotal().Mul(taxRate)
}

// Total is subtotal - discount + shipping + tax for the given delivery
// city, clamped at zero. An empty cart totals zero: nothing is shipped,
// so nothing is charged.
func (c *Cart) Total(city string) decimal.Decimal {
	if c.IsEmpty() {
		return decimal.Zero
	}
	total := c.Subtotal().Sub(c.Discount()).Add(ShippingCost(city)).Add(c.Tax())
	if total.IsNegative() {
		return decimal.Zero
	}
	return total
}

// ShippingCost returns the flat delivery rate for the given city.
// It is a pure function of the city alone: it does not scale with
// weight, item count, or subtotal.
func ShippingCost(city string) decimal.Decimal {
	if rate, ok := shippingRates[city]; ok {
		return decimal.NewFromInt(rate)
	}
	return decimal.NewFromInt(defaultShippingRate)
}

func (c *Cart) find(id int64) int {
	for i, item := range c.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func clampQuantity(quantity int) int {
	if quantity < MinQuantity {
		return MinQuantity
	}
	if quantity > MaxQuantity {
		return MaxQuantity
	}
	return quantity
}
