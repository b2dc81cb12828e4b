package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/shopcheckout/lib/myevents"
	"github.com/MarcGrol/shopcheckout/lib/mylog"
	"github.com/MarcGrol/shopcheckout/lib/mypublisher"
	"github.com/MarcGrol/shopcheckout/lib/mypubsub"
	"github.com/MarcGrol/shopcheckout/lib/mystore"
	"github.com/MarcGrol/shopcheckout/lib/mytime"
	"github.com/MarcGrol/shopcheckout/lib/myuuid"
	"github.com/MarcGrol/shopcheckout/services/orderapi"
	"github.com/MarcGrol/shopcheckout/services/orders/orderevents"
)

var purchase1 = orderapi.Purchase{
	Customer:        orderapi.Customer{FirstName: "Eva", LastName: "Grol", Email: "eva@example.com"},
	ShippingAddress: orderapi.Address{Street: "Heemstrakwartier 79", City: "De Bilt", State: "Ontario", Country: "Canada", ZipCode: "3731TB"},
	BillingAddress:  orderapi.Address{Street: "Heemstrakwartier 79", City: "De Bilt", State: "Ontario", Country: "Canada", ZipCode: "3731TB"},
	Order:           orderapi.Order{TotalPrice: decimal.RequireFromString("59.98"), TotalQuantity: 2},
	OrderItems: []orderapi.OrderItem{
		{ImageURL: "a.png", UnitPrice: decimal.RequireFromString("29.99"), Quantity: 1, ProductID: "a"},
		{ImageURL: "b.png", UnitPrice: decimal.RequireFromString("29.99"), Quantity: 1, ProductID: "b"},
	},
}

func TestOrderService(t *testing.T) {

	t.Run("Place order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, router, store, nower, uuider, publisher, _ := setup(ctrl)

		// given
		nower.EXPECT().Now().Return(mytime.ExampleTime)
		uuider.EXPECT().Create().Return("abc123")
		publisher.EXPECT().Publish(gomock.Any(), orderevents.TopicName, orderevents.OrderPlaced{
			TrackingNumber:    "ABC123",
			CustomerEmail:     "eva@example.com",
			TotalPriceInCents: 5998,
			TotalQuantity:     2,
		}).Return(nil)

		// when
		response := send(t, router, http.MethodPost, "/api/checkout/purchase", purchase1)

		// then
		assert.Equal(t, 200, response.Code)
		resp := orderapi.PurchaseResponse{}
		assert.NoError(t, json.Unmarshal(response.Body.Bytes(), &resp))
		assert.Equal(t, "ABC123", resp.OrderTrackingNumber)

		order, found, _ := store.Get(c, "ABC123")
		assert.True(t, found)
		assert.Equal(t, OrderStatusPlaced, order.Status)
		assert.Equal(t, int64(5998), order.TotalPriceInCents)
		assert.Len(t, order.Items, 2)
		assert.Equal(t, int64(2999), order.Items[0].UnitPriceInCents)
	})

	t.Run("Place invalid order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _, _, _, _ := setup(ctrl)

		// given
		invalid := purchase1
		invalid.Customer.Email = "not-an-email"

		// when
		response := send(t, router, http.MethodPost, "/api/checkout/purchase", invalid)

		// then
		assert.Equal(t, 400, response.Code)
		assert.Contains(t, response.Body.String(), "invalid purchase")
	})

	t.Run("Place order without items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _, _, _, _ := setup(ctrl)

		// given
		invalid := purchase1
		invalid.OrderItems = []orderapi.OrderItem{}

		// when
		response := send(t, router, http.MethodPost, "/api/checkout/purchase", invalid)

		// then
		assert.Equal(t, 400, response.Code)
	})

	t.Run("Place order with malformed json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _, _, _, _ := setup(ctrl)

		// when
		request, err := http.NewRequest(http.MethodPost, "/api/checkout/purchase", bytes.NewBufferString("{"))
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 400, response.Code)
	})

	t.Run("Get order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, router, store, _, _, _, _ := setup(ctrl)

		// given
		_ = store.Put(c, "ABC123", newOrderRecord("ABC123", mytime.ExampleTime, purchase1))

		// when
		response := send(t, router, http.MethodGet, "/api/orders/ABC123", nil)

		// then
		assert.Equal(t, 200, response.Code)
		assert.Contains(t, response.Body.String(), `"TrackingNumber": "ABC123"`)
	})

	t.Run("Get unknown order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _, _, _, _ := setup(ctrl)

		// when
		response := send(t, router, http.MethodGet, "/api/orders/XYZ", nil)

		// then
		assert.Equal(t, 404, response.Code)
	})

	t.Run("Order placed event accepts order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, router, store, nower, _, _, _ := setup(ctrl)

		// given
		_ = store.Put(c, "ABC123", newOrderRecord("ABC123", mytime.ExampleTime, purchase1))
		nower.EXPECT().Now().Return(mytime.ExampleTime)

		// when
		response := send(t, router, http.MethodPost, "/api/orders/event", pushRequest(t, orderevents.OrderPlaced{TrackingNumber: "ABC123"}))

		// then
		assert.Equal(t, 200, response.Code)
		order, _, _ := store.Get(c, "ABC123")
		assert.Equal(t, OrderStatusAccepted, order.Status)
		assert.NotNil(t, order.LastModified)
	})

	t.Run("Subscribe to own topic", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, _, store, nower, uuider, publisher, pubsub := setup(ctrl)
		sut := NewService(store, nower, uuider, mylog.New("orders"), publisher, pubsub)

		// given
		publisher.EXPECT().CreateTopic(gomock.Any(), orderevents.TopicName).Return(nil)
		pubsub.EXPECT().Subscribe(gomock.Any(), orderevents.TopicName, gomock.Any()).Return(nil)

		// when
		err := sut.Subscribe(c)

		// then
		assert.NoError(t, err)
	})
}

func pushRequest(t *testing.T, event myevents.Event) myevents.PushRequest {
	payload, err := json.Marshal(event)
	assert.NoError(t, err)
	envelope, err := json.Marshal(myevents.EventEnvelope{
		UID:           "1",
		Topic:         orderevents.TopicName,
		AggregateUID:  event.GetAggregateName(),
		EventTypeName: event.GetEventTypeName(),
		EventPayload:  string(payload),
	})
	assert.NoError(t, err)

	return myevents.PushRequest{
		Message:      myevents.PushMessage{Data: envelope, ID: "1"},
		Subscription: "order-push",
	}
}

func send(t *testing.T, router *mux.Router, method string, url string, body any) *httptest.ResponseRecorder {
	reader := bytes.NewBuffer(nil)
	if body != nil {
		asJSON, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewBuffer(asJSON)
	}
	request, err := http.NewRequest(method, url, reader)
	assert.NoError(t, err)
	response := httptest.NewRecorder()
	router.ServeHTTP(response, request)
	return response
}

func setup(ctrl *gomock.Controller) (context.Context, *mux.Router, mystore.Store[OrderRecord], *mytime.MockNower, *myuuid.MockUUIDer, *mypublisher.MockPublisher, *mypubsub.MockPubSub) {
	c := context.TODO()
	store, _, _ := mystore.NewInMemoryStore[OrderRecord](c)
	nower := mytime.NewMockNower(ctrl)
	uuider := myuuid.NewMockUUIDer(ctrl)
	publisher := mypublisher.NewMockPublisher(ctrl)
	pubsub := mypubsub.NewMockPubSub(ctrl)
	logger := mylog.New("orders")

	router := mux.NewRouter()
	NewWebService(NewService(store, nower, uuider, logger, publisher, pubsub), logger).RegisterEndpoints(c, router)

	return c, router, store, nower, uuider, publisher, pubsub
}
