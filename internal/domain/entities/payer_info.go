package entities

import "encoding/json"

// MaxEmailLength is the payer email limit documented by the PayPal payments API.
const MaxEmailLength = 127

// PayerInfo is the payer_info fragment of a PayPal payment.
//
// Setters normalize instead of rejecting: an email longer than MaxEmailLength
// is cut, also when it comes from a decoded server response.
type PayerInfo struct {
	email           string
	firstName       string
	lastName        string
	payerID         string
	countryCode     string
	shippingAddress *ShippingAddress
}

var _ Updatable = PayerInfo{}

type payerInfoJSON struct {
	Email           string           `json:"email,omitempty"`
	FirstName       string           `json:"first_name,omitempty"`
	LastName        string           `json:"last_name,omitempty"`
	PayerID         string           `json:"payer_id,omitempty"`
	ShippingAddress *ShippingAddress `json:"shipping_address,omitempty"`
	CountryCode     string           `json:"country_code,omitempty"`
}

func (p PayerInfo) Email() string {
	return p.email
}

func (p *PayerInfo) SetEmail(email string) {
	p.email = ensureMaxLength(email, MaxEmailLength)
}

func (p PayerInfo) FirstName() string {
	return p.firstName
}

func (p *PayerInfo) SetFirstName(firstName string) {
	p.firstName = firstName
}

func (p PayerInfo) LastName() string {
	return p.lastName
}

func (p *PayerInfo) SetLastName(lastName string) {
	p.lastName = lastName
}

func (p PayerInfo) PayerID() string {
	return p.payerID
}

func (p *PayerInfo) SetPayerID(payerID string) {
	p.payerID = payerID
}

func (p PayerInfo) CountryCode() string {
	return p.countryCode
}

func (p *PayerInfo) SetCountryCode(countryCode string) {
	p.countryCode = countryCode
}

// ShippingAddress returns a copy; the payer keeps its own address.
func (p PayerInfo) ShippingAddress() *ShippingAddress {
	if p.shippingAddress == nil {
		return nil
	}
	addr := *p.shippingAddress
	return &addr
}

func (p *PayerInfo) SetShippingAddress(addr *ShippingAddress) {
	if addr == nil {
		p.shippingAddress = nil
		return
	}
	owned := *addr
	p.shippingAddress = &owned
}

func (p PayerInfo) MarshalJSON() ([]byte, error) {
	return json.Marshal(payerInfoJSON{
		Email:           p.email,
		FirstName:       p.firstName,
		LastName:        p.lastName,
		PayerID:         p.payerID,
		ShippingAddress: p.shippingAddress,
		CountryCode:     p.countryCode,
	})
}

func (p *PayerInfo) UnmarshalJSON(data []byte) error {
	var w payerInfoJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*p = PayerInfo{}
	p.SetEmail(w.Email)
	p.SetFirstName(w.FirstName)
	p.SetLastName(w.LastName)
	p.SetPayerID(w.PayerID)
	p.SetCountryCode(w.CountryCode)
	p.SetShippingAddress(w.ShippingAddress)
	return nil
}

func ensureMaxLength(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
