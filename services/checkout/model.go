package checkout

import (
	"github.com/shopspring/decimal"

	"github.com/MarcGrol/shopcheckout/services/cart"
	"github.com/MarcGrol/shopcheckout/services/refdata"
)

type AddressKind string

const (
	ShippingAddress AddressKind = "shippingAddress"
	BillingAddress  AddressKind = "billingAddress"
)

type Customer struct {
	FirstName string `form:"firstName" validate:"required,min=2,notonlywhitespace"`
	LastName  string `form:"lastName" validate:"required,min=2,notonlywhitespace"`
	Email     string `form:"email" validate:"required,emailaddress"`
}

type Address struct {
	Street  string           `form:"street" validate:"required,min=10,notonlywhitespace"`
	City    string           `form:"city" validate:"required,min=2,notonlywhitespace"`
	State   *refdata.State   `form:"state" validate:"required"`
	Country *refdata.Country `form:"country" validate:"required"`
	ZipCode string           `form:"zipCode" validate:"required,min=2,notonlywhitespace"`
}

func (a Address) CountryCode() string {
	if a.Country == nil {
		return ""
	}
	return a.Country.Code
}

func (a Address) CountryName() string {
	if a.Country == nil {
		return ""
	}
	return a.Country.Name
}

func (a Address) StateName() string {
	if a.State == nil {
		return ""
	}
	return a.State.Name
}

// clone never shares the state and country with the original
func (a Address) clone() Address {
	clone := a
	if a.State != nil {
		state := *a.State
		clone.State = &state
	}
	if a.Country != nil {
		country := *a.Country
		clone.Country = &country
	}
	return clone
}

type CreditCard struct {
	CardType        string `form:"cardType" validate:"required"`
	NameOnCard      string `form:"nameOnCard" validate:"required,min=2,notonlywhitespace"`
	CardNumber      string `form:"cardNumber" validate:"required,digits=16"`
	SecurityCode    string `form:"securityCode" validate:"required,digits=3"`
	ExpirationMonth int    `form:"expirationMonth" validate:"required"`
	ExpirationYear  int    `form:"expirationYear" validate:"required"`
}

type Form struct {
	Customer        Customer   `form:"customer"`
	ShippingAddress Address    `form:"shippingAddress"`
	BillingAddress  Address    `form:"billingAddress"`
	CreditCard      CreditCard `form:"creditCard"`
}

func (f Form) clone() Form {
	clone := f
	clone.ShippingAddress = f.ShippingAddress.clone()
	clone.BillingAddress = f.BillingAddress.clone()
	return clone
}

// AddressInput is an address as edited on the page: country by code, state by name
type AddressInput struct {
	Street  string `form:"street"`
	City    string `form:"city"`
	State   string `form:"state"`
	Country string `form:"country"`
	ZipCode string `form:"zipCode"`
}

type FormInput struct {
	Customer              Customer     `form:"customer"`
	ShippingAddress       AddressInput `form:"shippingAddress"`
	BillingAddress        AddressInput `form:"billingAddress"`
	CreditCard            CreditCard   `form:"creditCard"`
	BillingSameAsShipping bool         `form:"billingSameAsShipping"`
}

type NoticeKind string

const (
	NoticeInfo    NoticeKind = "info"
	NoticeWarning NoticeKind = "warning"
	NoticeError   NoticeKind = "error"
)

type Notice struct {
	Kind    NoticeKind
	Message string
}

var allFields = []string{
	"customer.firstName", "customer.lastName", "customer.email",
	"shippingAddress.street", "shippingAddress.city", "shippingAddress.state", "shippingAddress.country", "shippingAddress.zipCode",
	"billingAddress.street", "billingAddress.city", "billingAddress.state", "billingAddress.country", "billingAddress.zipCode",
	"creditCard.cardType", "creditCard.nameOnCard", "creditCard.cardNumber", "creditCard.securityCode",
	"creditCard.expirationMonth", "creditCard.expirationYear",
}

// View is a private copy of the state of a checkout visit
type View struct {
	VisitUID              string
	Form                  Form
	Touched               map[string]bool
	Errors                map[string]string
	Valid                 bool
	BillingSameAsShipping bool
	Countries             []refdata.Country
	ShippingAddressStates []refdata.State
	BillingAddressStates  []refdata.State
	CreditCardMonths      []int
	CreditCardYears       []int
	TotalPrice            decimal.Decimal
	TotalQuantity         int
	LineItems             []cart.CartItem
	Notices               []Notice
	Submitting            bool
	TrackingNumber        string
	RedirectURL           string
}

var cardTypes = []string{"Visa", "Mastercard", "American Express"}

func (v View) CardTypes() []string {
	return cardTypes
}

// ErrorOf only reports problems of fields the user has touched
func (v View) ErrorOf(field string) string {
	if !v.Touched[field] {
		return ""
	}
	return v.Errors[field]
}

type AddressSection struct {
	Kind      AddressKind
	Title     string
	Address   Address
	Countries []refdata.Country
	States    []refdata.State
	Errors    map[string]string
}

func (v View) AddressSections() []AddressSection {
	return []AddressSection{
		v.addressSection(ShippingAddress, "Shipping Address", v.Form.ShippingAddress, v.ShippingAddressStates),
		v.addressSection(BillingAddress, "Billing Address", v.Form.BillingAddress, v.BillingAddressStates),
	}
}

func (v View) addressSection(kind AddressKind, title string, address Address, states []refdata.State) AddressSection {
	errors := map[string]string{}
	for _, field := range []string{"street", "city", "state", "country", "zipCode"} {
		if msg := v.ErrorOf(string(kind) + "." + field); msg != "" {
			errors[field] = msg
		}
	}
	return AddressSection{
		Kind:      kind,
		Title:     title,
		Address:   address,
		Countries: v.Countries,
		States:    states,
		Errors:    errors,
	}
}
