package cart

// DefaultCountry is the only country the store ships to.
const DefaultCountry = "Philippines"

// ShippingAddress is the transient form state behind the shipping
// estimate panel. Only City feeds the rate lookup; the rest is carried
// for display. It is never persisted.
type ShippingAddress struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// NewShippingAddress returns an address with the country defaulted.
func NewShippingAddress() ShippingAddress {
	return ShippingAddress{Country: DefaultCountry}
}
