package cart

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/shopcheckout/lib/mylog"
	"github.com/MarcGrol/shopcheckout/lib/mysession"
	"github.com/MarcGrol/shopcheckout/lib/mystore"
	"github.com/MarcGrol/shopcheckout/lib/mytime"
	"github.com/MarcGrol/shopcheckout/lib/myuuid"
)

func TestCartWebService(t *testing.T) {

	t.Run("Show empty cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _ := setupWeb(ctrl)

		// when
		request, err := http.NewRequest(http.MethodGet, "/cart", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		got := response.Body.String()
		assert.Contains(t, got, "Crash Course in Go")
		assert.Contains(t, got, "Your shopping cart is empty.")
	})

	t.Run("Add item to cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, router, store, nower := setupWeb(ctrl)

		// given
		nower.EXPECT().Now().Return(mytime.ExampleTime)

		// when
		form := url.Values{"productUID": {"tag-luv2code-1000"}, "quantity": {"2"}}
		request, err := http.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(form.Encode()))
		assert.NoError(t, err)
		request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 303, response.Code)
		assert.Equal(t, "/cart", response.Header().Get("Location"))
		cart, found, _ := store.Get(c, "cart-1")
		assert.True(t, found)
		assert.Equal(t, []CartItem{{ProductUID: "tag-luv2code-1000", Name: "Luggage Tag - Cherish Life", ImageURL: "/assets/images/products/luggagetags/luggagetag-luv2code-1000.png", UnitPriceInCents: 2999, Quantity: 2}}, cart.Items)
	})

	t.Run("Add unknown item to cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _ := setupWeb(ctrl)

		// when
		form := url.Values{"productUID": {"unknown"}}
		request, err := http.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(form.Encode()))
		assert.NoError(t, err)
		request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 404, response.Code)
	})

	t.Run("Remove item from cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, router, store, nower := setupWeb(ctrl)

		// given
		nower.EXPECT().Now().Return(mytime.ExampleTime)
		_ = store.Put(c, "cart-1", Cart{UID: "cart-1", Items: []CartItem{{ProductUID: "mug-luv2code-1000", UnitPriceInCents: 1899, Quantity: 4}}})

		// when
		request, err := http.NewRequest(http.MethodPost, "/cart/items/mug-luv2code-1000/remove", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 303, response.Code)
		cart, _, _ := store.Get(c, "cart-1")
		assert.Empty(t, cart.Items)
	})

	t.Run("Get cart summary as json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, router, store, _ := setupWeb(ctrl)

		// given
		_ = store.Put(c, "cart-1", Cart{UID: "cart-1", Items: []CartItem{
			{ProductUID: "mug-luv2code-1000", UnitPriceInCents: 1899, Quantity: 2},
			{ProductUID: "tag-luv2code-1000", UnitPriceInCents: 2999, Quantity: 1},
		}})

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/cart", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		got := Summary{}
		assert.NoError(t, json.Unmarshal(response.Body.Bytes(), &got))
		assert.Equal(t, "67.97", got.TotalPrice.StringFixed(2))
		assert.Equal(t, 3, got.TotalQuantity)
	})
}

func setupWeb(ctrl *gomock.Controller) (context.Context, *mux.Router, mystore.Store[Cart], *mytime.MockNower) {
	c := context.TODO()
	store, _, _ := mystore.NewInMemoryStore[Cart](c)
	nower := mytime.NewMockNower(ctrl)
	uuider := myuuid.NewMockUUIDer(ctrl)
	uuider.EXPECT().Create().Return("cart-1").AnyTimes()
	logger := mylog.New("cart")

	router := mux.NewRouter()
	NewWebService(NewService(store, nower, logger), mysession.New("secret", uuider), logger).RegisterEndpoints(c, router)

	return c, router, store, nower
}
