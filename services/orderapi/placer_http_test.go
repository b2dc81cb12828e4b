package orderapi

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/shopcheckout/lib/myerrors"
	"github.com/MarcGrol/shopcheckout/lib/myhttpclient"
)

var examplePurchase = Purchase{
	Customer:        Customer{FirstName: "Marc", LastName: "Grol", Email: "marc@example.com"},
	ShippingAddress: Address{Street: "Heemstrakwartier 79", City: "De Bilt", State: "Utrecht", Country: "Netherlands", ZipCode: "3731TB"},
	BillingAddress:  Address{Street: "Heemstrakwartier 79", City: "De Bilt", State: "Utrecht", Country: "Netherlands", ZipCode: "3731TB"},
	Order:           Order{TotalPrice: decimal.RequireFromString("59.98"), TotalQuantity: 2},
	OrderItems: []OrderItem{
		{ImageURL: "a.png", UnitPrice: decimal.RequireFromString("29.99"), Quantity: 1, ProductID: "a"},
		{ImageURL: "b.png", UnitPrice: decimal.RequireFromString("29.99"), Quantity: 1, ProductID: "b"},
	},
}

func TestHTTPOrderPlacer(t *testing.T) {

	t.Run("Order placed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, sender, sut := setup(ctrl)

		// given
		sender.EXPECT().Send(gomock.Any(), "POST", "http://orders.example.com/api/checkout/purchase", gomock.Any()).
			DoAndReturn(func(c context.Context, method, url string, body []byte) (int, []byte, error) {
				got := Purchase{}
				assert.NoError(t, json.Unmarshal(body, &got))
				assert.Equal(t, "59.98", got.Order.TotalPrice.String())
				assert.Len(t, got.OrderItems, 2)
				return 200, []byte(`{"orderTrackingNumber":"ABC123"}`), nil
			})

		// when
		resp, err := sut.PlaceOrder(c, examplePurchase)

		// then
		assert.NoError(t, err)
		assert.Equal(t, "ABC123", resp.OrderTrackingNumber)
	})

	t.Run("Order rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, sender, sut := setup(ctrl)

		// given
		sender.EXPECT().Send(gomock.Any(), "POST", gomock.Any(), gomock.Any()).
			Return(400, []byte(`{"ErrorCode":1,"Message":"invalid purchase"}`), nil)

		// when
		_, err := sut.PlaceOrder(c, examplePurchase)

		// then
		assert.Error(t, err)
		assert.Equal(t, 502, myerrors.GetHTTPStatus(err))
		assert.Equal(t, "invalid purchase", myerrors.Cause(err).Error())
	})

	t.Run("Order backend responds garbage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, sender, sut := setup(ctrl)

		// given
		sender.EXPECT().Send(gomock.Any(), "POST", gomock.Any(), gomock.Any()).
			Return(500, []byte(`<html>oops</html>`), nil)

		// when
		_, err := sut.PlaceOrder(c, examplePurchase)

		// then
		assert.Error(t, err)
		assert.Equal(t, "order backend responded with http-status 500", myerrors.Cause(err).Error())
	})

	t.Run("Order backend unreachable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, sender, sut := setup(ctrl)

		// given
		sender.EXPECT().Send(gomock.Any(), "POST", gomock.Any(), gomock.Any()).
			Return(0, nil, fmt.Errorf("connection refused"))

		// when
		_, err := sut.PlaceOrder(c, examplePurchase)

		// then
		assert.Error(t, err)
		assert.Equal(t, 503, myerrors.GetHTTPStatus(err))
	})

	t.Run("Order response without tracking number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, sender, sut := setup(ctrl)

		// given
		sender.EXPECT().Send(gomock.Any(), "POST", gomock.Any(), gomock.Any()).
			Return(200, []byte(`{}`), nil)

		// when
		_, err := sut.PlaceOrder(c, examplePurchase)

		// then
		assert.Error(t, err)
	})
}

func setup(ctrl *gomock.Controller) (context.Context, *myhttpclient.MockHTTPSender, OrderPlacer) {
	sender := myhttpclient.NewMockHTTPSender(ctrl)
	return context.TODO(), sender, NewHTTPOrderPlacer(sender, "http://orders.example.com/")
}
