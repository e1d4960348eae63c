package request

import (
	"strings"

	"paypal_connector/internal/domain/entities"
)

// ExecutePaymentRequest is the payload of the execute route. payer_id is the
// id PayPal hands back after the buyer approved the payment.
type ExecutePaymentRequest struct {
	PayerID string `json:"payer_id" binding:"required"`
}

type ShippingAddressRequest struct {
	RecipientName string `json:"recipient_name"`
	Line1         string `json:"line1" binding:"required"`
	Line2         string `json:"line2"`
	City          string `json:"city" binding:"required"`
	CountryCode   string `json:"country_code" binding:"required,len=2"`
	PostalCode    string `json:"postal_code"`
	Phone         string `json:"phone"`
	State         string `json:"state"`
}

func (r ShippingAddressRequest) ToEntity() entities.ShippingAddress {
	return entities.ShippingAddress{
		RecipientName: strings.TrimSpace(r.RecipientName),
		Line1:         strings.TrimSpace(r.Line1),
		Line2:         strings.TrimSpace(r.Line2),
		City:          strings.TrimSpace(r.City),
		CountryCode:   strings.ToUpper(strings.TrimSpace(r.CountryCode)),
		PostalCode:    strings.TrimSpace(r.PostalCode),
		Phone:         strings.TrimSpace(r.Phone),
		State:         strings.TrimSpace(r.State),
	}
}

// PayerInfoRequest carries the payer fields to replace. Emails longer than
// entities.MaxEmailLength are accepted and cut.
type PayerInfoRequest struct {
	Email           string                  `json:"email"`
	FirstName       string                  `json:"first_name"`
	LastName        string                  `json:"last_name"`
	PayerID         string                  `json:"payer_id"`
	CountryCode     string                  `json:"country_code" binding:"omitempty,len=2"`
	ShippingAddress *ShippingAddressRequest `json:"shipping_address"`
}

func (r PayerInfoRequest) ToEntity() entities.PayerInfo {
	var p entities.PayerInfo
	p.SetEmail(strings.TrimSpace(r.Email))
	p.SetFirstName(strings.TrimSpace(r.FirstName))
	p.SetLastName(strings.TrimSpace(r.LastName))
	p.SetPayerID(strings.TrimSpace(r.PayerID))
	p.SetCountryCode(strings.ToUpper(strings.TrimSpace(r.CountryCode)))
	if r.ShippingAddress != nil {
		addr := r.ShippingAddress.ToEntity()
		p.SetShippingAddress(&addr)
	}
	return p
}

// IsEmpty reports whether no payer field was sent.
func (r PayerInfoRequest) IsEmpty() bool {
	return strings.TrimSpace(r.Email) == "" &&
		strings.TrimSpace(r.FirstName) == "" &&
		strings.TrimSpace(r.LastName) == "" &&
		strings.TrimSpace(r.PayerID) == "" &&
		strings.TrimSpace(r.CountryCode) == "" &&
		r.ShippingAddress == nil
}

type AmountDetailsRequest struct {
	Subtotal         string `json:"subtotal" binding:"omitempty,numeric"`
	Tax              string `json:"tax" binding:"omitempty,numeric"`
	Shipping         string `json:"shipping" binding:"omitempty,numeric"`
	HandlingFee      string `json:"handling_fee" binding:"omitempty,numeric"`
	ShippingDiscount string `json:"shipping_discount" binding:"omitempty,numeric"`
	Insurance        string `json:"insurance" binding:"omitempty,numeric"`
}

// AmountRequest replaces the transaction amount, e.g. {"currency":"USD","total":"30.11"}.
type AmountRequest struct {
	Currency string                `json:"currency" binding:"required,len=3"`
	Total    string                `json:"total" binding:"required,numeric"`
	Details  *AmountDetailsRequest `json:"details"`
}

func (r AmountRequest) ToEntity() entities.Amount {
	a := entities.Amount{
		Currency: strings.ToUpper(strings.TrimSpace(r.Currency)),
		Total:    strings.TrimSpace(r.Total),
	}
	if r.Details != nil {
		a.Details = &entities.AmountDetails{
			Subtotal:         r.Details.Subtotal,
			Tax:              r.Details.Tax,
			Shipping:         r.Details.Shipping,
			HandlingFee:      r.Details.HandlingFee,
			ShippingDiscount: r.Details.ShippingDiscount,
			Insurance:        r.Details.Insurance,
		}
	}
	return a
}
