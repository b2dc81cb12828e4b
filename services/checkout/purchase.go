package checkout

import "github.com/MarcGrol/shopcheckout/services/orderapi"

func (a Address) resolve() orderapi.Address {
	return orderapi.Address{
		Street:  a.Street,
		City:    a.City,
		State:   a.StateName(),
		Country: a.CountryName(),
		ZipCode: a.ZipCode,
	}
}

func (s state) purchase() orderapi.Purchase {
	items := make([]orderapi.OrderItem, 0, len(s.lineItems))
	for _, item := range s.lineItems {
		items = append(items, orderapi.OrderItem{
			ImageURL:  item.ImageURL,
			UnitPrice: item.UnitPrice(),
			Quantity:  item.Quantity,
			ProductID: item.ProductUID,
		})
	}

	return orderapi.Purchase{
		Customer: orderapi.Customer{
			FirstName: s.form.Customer.FirstName,
			LastName:  s.form.Customer.LastName,
			Email:     s.form.Customer.Email,
		},
		ShippingAddress: s.form.ShippingAddress.resolve(),
		BillingAddress:  s.form.BillingAddress.resolve(),
		Order: orderapi.Order{
			TotalPrice:    s.totalPrice,
			TotalQuantity: s.totalQuantity,
		},
		OrderItems: items,
	}
}
