package orders

import (
	"context"
	"fmt"

	"github.com/MarcGrol/shopcheckout/lib/myerrors"
	"github.com/MarcGrol/shopcheckout/lib/myhttp"
	"github.com/MarcGrol/shopcheckout/lib/mylog"
	"github.com/MarcGrol/shopcheckout/services/orders/orderevents"
)

func (s *Service) Subscribe(c context.Context) error {
	err := s.publisher.CreateTopic(c, orderevents.TopicName)
	if err != nil {
		return fmt.Errorf("error creating topic %s: %s", orderevents.TopicName, err)
	}

	err = s.pubsub.Subscribe(c, orderevents.TopicName, myhttp.GuessHostnameWithScheme()+"/api/orders/event")
	if err != nil {
		return fmt.Errorf("error subscribing to topic %s: %s", orderevents.TopicName, err)
	}

	return nil
}

// OnOrderPlaced accepts a placed order; fulfillment would start here
func (s *Service) OnOrderPlaced(c context.Context, topic string, event orderevents.OrderPlaced) error {
	s.logger.Log(c, event.TrackingNumber, mylog.SeverityInfo, "Event: order %s placed", event.TrackingNumber)

	now := s.nower.Now()

	return s.orderStore.RunInTransaction(c, func(c context.Context) error {
		// must be idempotent
		order, found, err := s.orderStore.Get(c, event.TrackingNumber)
		if err != nil {
			return myerrors.NewInternalError(err)
		}
		if !found {
			return myerrors.NewNotFoundError(fmt.Errorf("order with tracking number %s not found", event.TrackingNumber))
		}
		if order.Status == OrderStatusAccepted {
			return nil
		}

		order.Status = OrderStatusAccepted
		order.LastModified = &now

		err = s.orderStore.Put(c, event.TrackingNumber, order)
		if err != nil {
			return myerrors.NewInternalError(err)
		}
		return nil
	})
}
