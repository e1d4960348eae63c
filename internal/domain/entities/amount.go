package entities

import "encoding/json"

// Amount is the amount of a payment transaction. Total is a decimal string as
// the PayPal API expects it, e.g. "30.11".
type Amount struct {
	Currency string         `json:"currency"`
	Total    string         `json:"total"`
	Details  *AmountDetails `json:"details,omitempty"`
}

type AmountDetails struct {
	Subtotal         string `json:"subtotal,omitempty"`
	Tax              string `json:"tax,omitempty"`
	Shipping         string `json:"shipping,omitempty"`
	HandlingFee      string `json:"handling_fee,omitempty"`
	ShippingDiscount string `json:"shipping_discount,omitempty"`
	Insurance        string `json:"insurance,omitempty"`
}

var _ Updatable = Amount{}

func (a Amount) MarshalJSON() ([]byte, error) {
	type wire Amount
	return json.Marshal(wire(a))
}
