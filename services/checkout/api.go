package checkout

import (
	"context"

	"github.com/MarcGrol/shopcheckout/services/cart"
	"github.com/MarcGrol/shopcheckout/services/refdata"
)

//go:generate mockgen -source=api.go -package checkout -destination api_mock.go ReferenceData CartSummary
type ReferenceData interface {
	GetCountries(c context.Context) ([]refdata.Country, error)
	GetStates(c context.Context, countryCode string) ([]refdata.State, error)
	GetCreditCardMonths(c context.Context, startMonth int) ([]int, error)
	GetCreditCardYears(c context.Context) ([]int, error)
}

type CartSummary interface {
	Subscribe(c context.Context, cartUID string, onChange func(cart.Summary)) (func(), error)
	Reset(c context.Context, cartUID string) error
}
