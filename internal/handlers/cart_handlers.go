package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/izaj/izaj-golang/internal/cart"
)

//
// --- Cart Pricing Handlers ---
//

// The cart lives on the client; the server never stores it. These
// endpoints take the full line-item collection on every call and return
// the derived amounts.

// PriceCartInput defines the JSON for pricing a cart. An empty or
// missing item list is a valid (empty) cart, not an error.
type PriceCartInput struct {
	Items []cart.LineItem `json:"items"`
	City  string          `json:"city"`
}

// PriceCart is the handler for POST /v1/cart/price.
// Quantities outside [1, 10] are clamped, not rejected.
func (h *Handlers) PriceCart(c *gin.Context) {
	var input PriceCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ledger := cart.New(input.Items...)

	c.JSON(http.StatusOK, gin.H{
		"items":    ledger.Items(),
		"subtotal": ledger.Subtotal().InexactFloat64(),
		"discount": ledger.Discount().InexactFloat64(),
		"shipping": cart.ShippingCost(input.City).InexactFloat64(),
		"tax":      ledger.Tax().InexactFloat64(),
		"total":    ledger.Total(input.City).InexactFloat64(),
	})
}

// EstimateShippingInput defines the JSON for the shipping estimate panel.
type EstimateShippingInput struct {
	Address cart.ShippingAddress `json:"address" binding:"required"`
}

// EstimateShipping is the handler for POST /v1/cart/estimate-shipping.
// The rate depends on the city alone, not on the cart contents.
func (h *Handlers) EstimateShipping(c *gin.Context) {
	var input EstimateShippingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"city":     input.Address.City,
		"shipping": cart.ShippingCost(input.Address.City).InexactFloat64(),
	})
}
