package entities

import "encoding/json"

// ShippingAddress is the shipping_address fragment of a payer or of a
// transaction item list.
type ShippingAddress struct {
	RecipientName string `json:"recipient_name,omitempty"`
	Line1         string `json:"line1,omitempty"`
	Line2         string `json:"line2,omitempty"`
	City          string `json:"city,omitempty"`
	CountryCode   string `json:"country_code,omitempty"`
	PostalCode    string `json:"postal_code,omitempty"`
	Phone         string `json:"phone,omitempty"`
	State         string `json:"state,omitempty"`
}

var _ Updatable = ShippingAddress{}

func (a ShippingAddress) MarshalJSON() ([]byte, error) {
	type wire ShippingAddress
	return json.Marshal(wire(a))
}
