package refdata

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/shopcheckout/lib/mylog"
	"github.com/MarcGrol/shopcheckout/lib/mystore"
	"github.com/MarcGrol/shopcheckout/lib/mytime"
)

func TestReferenceDataService(t *testing.T) {

	t.Run("List countries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _ := setup(t, ctrl)

		// when
		response := get(t, router, "/api/countries")

		// then
		assert.Equal(t, 200, response.Code)
		got := []Country{}
		assert.NoError(t, json.Unmarshal(response.Body.Bytes(), &got))
		assert.Len(t, got, 6)
		assert.Equal(t, "Brazil", got[0].Name)
		assert.Equal(t, "United States", got[5].Name)
	})

	t.Run("List states of country sorted by name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _ := setup(t, ctrl)

		// when
		response := get(t, router, "/api/states?code=CA")

		// then
		assert.Equal(t, 200, response.Code)
		got := []State{}
		assert.NoError(t, json.Unmarshal(response.Body.Bytes(), &got))
		assert.Len(t, got, 8)
		assert.Equal(t, "Alberta", got[0].Name)
		for _, state := range got {
			assert.Equal(t, "CA", state.CountryCode)
		}
	})

	t.Run("List states of unknown country", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _ := setup(t, ctrl)

		// when
		response := get(t, router, "/api/states?code=XX")

		// then
		assert.Equal(t, 200, response.Code)
		got := []State{}
		assert.NoError(t, json.Unmarshal(response.Body.Bytes(), &got))
		assert.Empty(t, got)
	})

	t.Run("List states without code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _ := setup(t, ctrl)

		// when
		response := get(t, router, "/api/states")

		// then
		assert.Equal(t, 400, response.Code)
	})

	t.Run("Months from start month", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _ := setup(t, ctrl)

		// when
		response := get(t, router, "/api/creditcard/months?start=10")

		// then
		assert.Equal(t, 200, response.Code)
		got := []int{}
		assert.NoError(t, json.Unmarshal(response.Body.Bytes(), &got))
		assert.Equal(t, []int{10, 11, 12}, got)
	})

	t.Run("Months without start month", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _ := setup(t, ctrl)

		// when
		response := get(t, router, "/api/creditcard/months")

		// then
		assert.Equal(t, 200, response.Code)
		got := []int{}
		assert.NoError(t, json.Unmarshal(response.Body.Bytes(), &got))
		assert.Len(t, got, 12)
		assert.Equal(t, 1, got[0])
	})

	t.Run("Months with invalid start month", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _ := setup(t, ctrl)

		for _, start := range []string{"0", "13", "abc"} {
			// when
			response := get(t, router, "/api/creditcard/months?start="+start)

			// then
			assert.Equal(t, 400, response.Code, start)
		}
	})

	t.Run("Years from current year", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, nower := setup(t, ctrl)

		// given
		nower.EXPECT().Now().Return(mytime.ExampleTime)

		// when
		response := get(t, router, "/api/creditcard/years")

		// then
		assert.Equal(t, 200, response.Code)
		got := []int{}
		assert.NoError(t, json.Unmarshal(response.Body.Bytes(), &got))
		assert.Len(t, got, 11)
		assert.Equal(t, 2023, got[0])
		assert.Equal(t, 2033, got[10])
	})
}

func get(t *testing.T, router *mux.Router, url string) *httptest.ResponseRecorder {
	request, err := http.NewRequest(http.MethodGet, url, nil)
	assert.NoError(t, err)
	response := httptest.NewRecorder()
	router.ServeHTTP(response, request)
	return response
}

func setup(t *testing.T, ctrl *gomock.Controller) (context.Context, *mux.Router, *mytime.MockNower) {
	c := context.TODO()
	countryStore, _, _ := mystore.NewInMemoryStore[Country](c)
	stateStore, _, _ := mystore.NewInMemoryStore[State](c)
	nower := mytime.NewMockNower(ctrl)
	logger := mylog.New("refdata")

	service := NewService(countryStore, stateStore, nower, logger)
	err := service.Seed(c)
	assert.NoError(t, err)

	router := mux.NewRouter()
	NewWebService(service, logger).RegisterEndpoints(c, router)

	return c, router, nower
}
