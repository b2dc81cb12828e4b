package orderapi

import "github.com/shopspring/decimal"

type Customer struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
}

// Address carries state and country as display names
type Address struct {
	Street  string `json:"street" validate:"required"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required"`
	Country string `json:"country" validate:"required"`
	ZipCode string `json:"zipCode" validate:"required"`
}

type Order struct {
	TotalPrice    decimal.Decimal `json:"totalPrice"`
	TotalQuantity int             `json:"totalQuantity" validate:"gt=0"`
}

type OrderItem struct {
	ImageURL  string          `json:"imageUrl"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int             `json:"quantity" validate:"gt=0"`
	ProductID string          `json:"productId" validate:"required"`
}

type Purchase struct {
	Customer        Customer    `json:"customer" validate:"required"`
	ShippingAddress Address     `json:"shippingAddress" validate:"required"`
	BillingAddress  Address     `json:"billingAddress" validate:"required"`
	Order           Order       `json:"order" validate:"required"`
	OrderItems      []OrderItem `json:"orderItems" validate:"required,gt=0,dive"`
}

type PurchaseResponse struct {
	OrderTrackingNumber string `json:"orderTrackingNumber"`
}
