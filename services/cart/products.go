package cart

import "sort"

var catalog = map[string]Product{
	"book-luv2code-1000": {UID: "book-luv2code-1000", Name: "Crash Course in Go", ImageURL: "/assets/images/products/books/book-luv2code-1000.png", UnitPriceInCents: 1499},
	"book-luv2code-1001": {UID: "book-luv2code-1001", Name: "Become a Guru in JavaScript", ImageURL: "/assets/images/products/books/book-luv2code-1001.png", UnitPriceInCents: 2099},
	"mug-luv2code-1000":  {UID: "mug-luv2code-1000", Name: "Coffee Mug - Express", ImageURL: "/assets/images/products/coffeemugs/coffeemug-luv2code-1000.png", UnitPriceInCents: 1899},
	"pad-luv2code-1000":  {UID: "pad-luv2code-1000", Name: "Mouse Pad - Fidget Spinner", ImageURL: "/assets/images/products/mousepads/mousepad-luv2code-1000.png", UnitPriceInCents: 1999},
	"tag-luv2code-1000":  {UID: "tag-luv2code-1000", Name: "Luggage Tag - Cherish Life", ImageURL: "/assets/images/products/luggagetags/luggagetag-luv2code-1000.png", UnitPriceInCents: 2999},
}

func listProducts() []Product {
	products := make([]Product, 0, len(catalog))
	for _, p := range catalog {
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool {
		return products[i].Name < products[j].Name
	})
	return products
}
