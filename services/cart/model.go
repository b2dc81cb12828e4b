package cart

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	UID              string
	Name             string
	ImageURL         string
	UnitPriceInCents int64
}

func (p Product) UnitPrice() decimal.Decimal {
	return decimal.New(p.UnitPriceInCents, -2)
}

type CartItem struct {
	ProductUID       string
	Name             string
	ImageURL         string
	UnitPriceInCents int64
	Quantity         int
}

func (i CartItem) UnitPrice() decimal.Decimal {
	return decimal.New(i.UnitPriceInCents, -2)
}

func (i CartItem) SubTotal() decimal.Decimal {
	return i.UnitPrice().Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type Cart struct {
	UID          string
	Items        []CartItem
	LastModified time.Time
}

// Summary is what observers of a cart get to see
type Summary struct {
	CartUID       string
	TotalPrice    decimal.Decimal
	TotalQuantity int
	Items         []CartItem
}

func (c Cart) summary() Summary {
	summary := Summary{
		CartUID:    c.UID,
		TotalPrice: decimal.Zero,
		Items:      make([]CartItem, len(c.Items)),
	}
	copy(summary.Items, c.Items)

	for _, item := range c.Items {
		summary.TotalPrice = summary.TotalPrice.Add(item.SubTotal())
		summary.TotalQuantity += item.Quantity
	}

	return summary
}

func (c *Cart) add(product Product, quantity int) {
	for idx, item := range c.Items {
		if item.ProductUID == product.UID {
			c.Items[idx].Quantity += quantity
			return
		}
	}
	c.Items = append(c.Items, CartItem{
		ProductUID:       product.UID,
		Name:             product.Name,
		ImageURL:         product.ImageURL,
		UnitPriceInCents: product.UnitPriceInCents,
		Quantity:         quantity,
	})
}

// decrement drops the item when its quantity reaches zero
func (c *Cart) decrement(productUID string) bool {
	for idx, item := range c.Items {
		if item.ProductUID == productUID {
			if item.Quantity <= 1 {
				c.remove(productUID)
				return true
			}
			c.Items[idx].Quantity--
			return true
		}
	}
	return false
}

func (c *Cart) remove(productUID string) bool {
	for idx, item := range c.Items {
		if item.ProductUID == productUID {
			c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
			return true
		}
	}
	return false
}
