package orders

import (
	"context"
	"fmt"
	"strings"

	"github.com/MarcGrol/shopcheckout/lib/myerrors"
	"github.com/MarcGrol/shopcheckout/lib/mylog"
	"github.com/MarcGrol/shopcheckout/services/orderapi"
	"github.com/MarcGrol/shopcheckout/services/orders/orderevents"
)

// PlaceOrder makes Service usable as an orderapi.OrderPlacer
func (s *Service) PlaceOrder(c context.Context, purchase orderapi.Purchase) (orderapi.PurchaseResponse, error) {
	err := s.validate.Struct(purchase)
	if err != nil {
		return orderapi.PurchaseResponse{}, myerrors.NewInvalidInputError(fmt.Errorf("invalid purchase: %s", err))
	}
	if !purchase.Order.TotalPrice.IsPositive() {
		return orderapi.PurchaseResponse{}, myerrors.NewInvalidInputErrorf("invalid purchase: total price %s must be positive", purchase.Order.TotalPrice)
	}

	trackingNumber := strings.ToUpper(s.uuider.Create())
	order := newOrderRecord(trackingNumber, s.nower.Now(), purchase)

	s.logger.Log(c, trackingNumber, mylog.SeverityInfo, "Place order %s of %d items for %s", trackingNumber, order.TotalQuantity, purchase.Customer.Email)

	err = s.orderStore.RunInTransaction(c, func(c context.Context) error {
		err := s.orderStore.Put(c, trackingNumber, order)
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		err = s.publisher.Publish(c, orderevents.TopicName, orderevents.OrderPlaced{
			TrackingNumber:    trackingNumber,
			CustomerEmail:     purchase.Customer.Email,
			TotalPriceInCents: order.TotalPriceInCents,
			TotalQuantity:     order.TotalQuantity,
		})
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		return nil
	})
	if err != nil {
		return orderapi.PurchaseResponse{}, err
	}

	return orderapi.PurchaseResponse{
		OrderTrackingNumber: trackingNumber,
	}, nil
}

func (s *Service) getOrder(c context.Context, trackingNumber string) (OrderRecord, error) {
	s.logger.Log(c, trackingNumber, mylog.SeverityInfo, "Fetch order %s", trackingNumber)

	order, found, err := s.orderStore.Get(c, trackingNumber)
	if err != nil {
		return OrderRecord{}, myerrors.NewInternalError(err)
	}
	if !found {
		return OrderRecord{}, myerrors.NewNotFoundError(fmt.Errorf("order with tracking number %s not found", trackingNumber))
	}

	return order, nil
}
