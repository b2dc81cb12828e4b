package cart

import (
	"context"
	"fmt"

	"github.com/MarcGrol/shopcheckout/lib/myerrors"
	"github.com/MarcGrol/shopcheckout/lib/mylog"
)

func (s *Service) AddToCart(c context.Context, cartUID string, productUID string, quantity int) (Summary, error) {
	s.logger.Log(c, cartUID, mylog.SeverityInfo, "Add %d x %s to cart %s", quantity, productUID, cartUID)

	product, found := catalog[productUID]
	if !found {
		return Summary{}, myerrors.NewNotFoundError(fmt.Errorf("product with uid %s not found", productUID))
	}
	if quantity < 1 {
		return Summary{}, myerrors.NewInvalidInputErrorf("quantity %d must be positive", quantity)
	}

	return s.modify(c, cartUID, func(cart *Cart) error {
		cart.add(product, quantity)
		return nil
	})
}

func (s *Service) DecrementQuantity(c context.Context, cartUID string, productUID string) (Summary, error) {
	s.logger.Log(c, cartUID, mylog.SeverityInfo, "Decrement %s in cart %s", productUID, cartUID)

	return s.modify(c, cartUID, func(cart *Cart) error {
		if !cart.decrement(productUID) {
			return myerrors.NewNotFoundError(fmt.Errorf("product with uid %s not in cart %s", productUID, cartUID))
		}
		return nil
	})
}

func (s *Service) Remove(c context.Context, cartUID string, productUID string) (Summary, error) {
	s.logger.Log(c, cartUID, mylog.SeverityInfo, "Remove %s from cart %s", productUID, cartUID)

	return s.modify(c, cartUID, func(cart *Cart) error {
		if !cart.remove(productUID) {
			return myerrors.NewNotFoundError(fmt.Errorf("product with uid %s not in cart %s", productUID, cartUID))
		}
		return nil
	})
}

// Reset empties the cart and zeroes its totals
func (s *Service) Reset(c context.Context, cartUID string) error {
	s.logger.Log(c, cartUID, mylog.SeverityInfo, "Reset cart %s", cartUID)

	_, err := s.modify(c, cartUID, func(cart *Cart) error {
		cart.Items = []CartItem{}
		return nil
	})
	return err
}

func (s *Service) LineItems(c context.Context, cartUID string) ([]CartItem, error) {
	summary, err := s.Summary(c, cartUID)
	if err != nil {
		return nil, err
	}
	return summary.Items, nil
}

// Summary of an unknown cart is an empty summary
func (s *Service) Summary(c context.Context, cartUID string) (Summary, error) {
	cart, err := s.getCart(c, cartUID)
	if err != nil {
		return Summary{}, err
	}
	return cart.summary(), nil
}

// Subscribe calls onChange with the current summary right away and after every modification of the cart,
// until the returned function is called. onChange must not modify the cart itself.
func (s *Service) Subscribe(c context.Context, cartUID string, onChange func(Summary)) (func(), error) {
	unlock := s.lockCart(cartUID)
	defer unlock()

	summary, err := s.Summary(c, cartUID)
	if err != nil {
		return nil, err
	}

	s.mutex.Lock()
	s.lastSubscriberID++
	id := s.lastSubscriberID
	s.subscribers[cartUID] = append(s.subscribers[cartUID], subscriber{id: id, onChange: onChange})
	s.mutex.Unlock()

	s.logger.Log(c, cartUID, mylog.SeverityDebug, "Subscriber %d added to cart %s", id, cartUID)

	onChange(summary)

	return func() {
		s.unsubscribe(cartUID, id)
	}, nil
}

func (s *Service) unsubscribe(cartUID string, id int) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	remaining := []subscriber{}
	for _, sub := range s.subscribers[cartUID] {
		if sub.id != id {
			remaining = append(remaining, sub)
		}
	}
	if len(remaining) == 0 {
		delete(s.subscribers, cartUID)
		return
	}
	s.subscribers[cartUID] = remaining
}

func (s *Service) modify(c context.Context, cartUID string, modifier func(cart *Cart) error) (Summary, error) {
	unlock := s.lockCart(cartUID)
	defer unlock()

	var cart Cart
	err := s.cartStore.RunInTransaction(c, func(c context.Context) error {
		var err error
		cart, err = s.getCart(c, cartUID)
		if err != nil {
			return err
		}

		err = modifier(&cart)
		if err != nil {
			return err
		}
		cart.LastModified = s.nower.Now()

		err = s.cartStore.Put(c, cartUID, cart)
		if err != nil {
			return myerrors.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return Summary{}, err
	}

	summary := cart.summary()
	s.notify(cartUID, summary)

	return summary, nil
}

func (s *Service) getCart(c context.Context, cartUID string) (Cart, error) {
	cart, found, err := s.cartStore.Get(c, cartUID)
	if err != nil {
		return Cart{}, myerrors.NewInternalError(err)
	}
	if !found {
		return Cart{UID: cartUID, Items: []CartItem{}}, nil
	}
	items := make([]CartItem, len(cart.Items))
	copy(items, cart.Items)
	cart.Items = items

	return cart, nil
}

func (s *Service) notify(cartUID string, summary Summary) {
	s.mutex.Lock()
	subscribers := make([]subscriber, len(s.subscribers[cartUID]))
	copy(subscribers, s.subscribers[cartUID])
	s.mutex.Unlock()

	// Callbacks may unsubscribe, so never call them with the lock held
	for _, sub := range subscribers {
		items := make([]CartItem, len(summary.Items))
		copy(items, summary.Items)
		sub.onChange(Summary{
			CartUID:       summary.CartUID,
			TotalPrice:    summary.TotalPrice,
			TotalQuantity: summary.TotalQuantity,
			Items:         items,
		})
	}
}
