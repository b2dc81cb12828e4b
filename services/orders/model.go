package orders

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MarcGrol/shopcheckout/services/orderapi"
)

type OrderStatus string

const (
	OrderStatusPlaced   OrderStatus = "placed"
	OrderStatusAccepted OrderStatus = "accepted"
)

type OrderRecordItem struct {
	ProductID        string
	ImageURL         string
	UnitPriceInCents int64
	Quantity         int
}

// OrderRecord holds money in cents: datastore has no decimal type
type OrderRecord struct {
	TrackingNumber    string
	CreatedAt         time.Time
	LastModified      *time.Time
	Status            OrderStatus
	Customer          orderapi.Customer
	ShippingAddress   orderapi.Address
	BillingAddress    orderapi.Address
	TotalPriceInCents int64
	TotalQuantity     int
	Items             []OrderRecordItem
}

func toCents(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}

func newOrderRecord(trackingNumber string, createdAt time.Time, purchase orderapi.Purchase) OrderRecord {
	items := make([]OrderRecordItem, 0, len(purchase.OrderItems))
	for _, item := range purchase.OrderItems {
		items = append(items, OrderRecordItem{
			ProductID:        item.ProductID,
			ImageURL:         item.ImageURL,
			UnitPriceInCents: toCents(item.UnitPrice),
			Quantity:         item.Quantity,
		})
	}
	return OrderRecord{
		TrackingNumber:    trackingNumber,
		CreatedAt:         createdAt,
		Status:            OrderStatusPlaced,
		Customer:          purchase.Customer,
		ShippingAddress:   purchase.ShippingAddress,
		BillingAddress:    purchase.BillingAddress,
		TotalPriceInCents: toCents(purchase.Order.TotalPrice),
		TotalQuantity:     purchase.Order.TotalQuantity,
		Items:             items,
	}
}
