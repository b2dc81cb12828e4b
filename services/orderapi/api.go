package orderapi

import "context"

//go:generate mockgen -source=api.go -package orderapi -destination placer_mock.go OrderPlacer
type OrderPlacer interface {
	PlaceOrder(c context.Context, purchase Purchase) (PurchaseResponse, error)
}
