package warmup

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/shopcheckout/lib/myerrors"
	"github.com/MarcGrol/shopcheckout/services/refdata"
)

func TestWarmup(t *testing.T) {

	t.Run("Warmup loads reference data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		router, countries := setup(ctrl)

		// given
		countries.EXPECT().GetCountries(gomock.Any()).Return([]refdata.Country{{ID: 2, Code: "CA", Name: "Canada"}}, nil)

		// when
		response := doWarmup(t, router)

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		assert.Contains(t, response.Body.String(), "Successfully processed warmup request")
	})

	t.Run("Warmup fails when store is unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		router, countries := setup(ctrl)

		// given
		countries.EXPECT().GetCountries(gomock.Any()).Return(nil, myerrors.NewUnavailableError(fmt.Errorf("datastore down")))

		// when
		response := doWarmup(t, router)

		// then
		assert.Equal(t, http.StatusServiceUnavailable, response.Code)
		assert.Contains(t, response.Body.String(), "datastore down")
	})
}

func doWarmup(t *testing.T, router *mux.Router) *httptest.ResponseRecorder {
	request, err := http.NewRequest(http.MethodGet, "/_ah/warmup", nil)
	assert.NoError(t, err)
	response := httptest.NewRecorder()
	router.ServeHTTP(response, request)
	return response
}

func setup(ctrl *gomock.Controller) (*mux.Router, *MockCountryLister) {
	countries := NewMockCountryLister(ctrl)
	router := mux.NewRouter()
	NewService(countries).RegisterEndpoints(context.TODO(), router)
	return router, countries
}
