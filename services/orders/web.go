package orders

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/shopcheckout/lib/mycontext"
	"github.com/MarcGrol/shopcheckout/lib/myerrors"
	"github.com/MarcGrol/shopcheckout/lib/myhttp"
	"github.com/MarcGrol/shopcheckout/lib/mylog"
	"github.com/MarcGrol/shopcheckout/services/orderapi"
	"github.com/MarcGrol/shopcheckout/services/orders/orderevents"
)

type webService struct {
	service *Service
	logger  mylog.Logger
}

func NewWebService(service *Service, logger mylog.Logger) *webService {
	return &webService{
		service: service,
		logger:  logger,
	}
}

func (s webService) RegisterEndpoints(c context.Context, router *mux.Router) {
	router.HandleFunc("/api/checkout/purchase", s.placeOrder()).Methods("POST")
	router.HandleFunc("/api/orders/{trackingNumber}", s.getOrder()).Methods("GET")

	// Pubsub push subscription delivers order events here
	router.HandleFunc("/api/orders/event", s.handleEvent()).Methods("POST")
}

func (s webService) placeOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		purchase := orderapi.Purchase{}
		err := json.NewDecoder(r.Body).Decode(&purchase)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(err))
			return
		}

		resp, err := s.service.PlaceOrder(c, purchase)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, resp)
	}
}

func (s webService) getOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		order, err := s.service.getOrder(c, mux.Vars(r)["trackingNumber"])
		if err != nil {
			errorWriter.WriteError(c, w, 3, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, order)
	}
}

func (s webService) handleEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		err := orderevents.DispatchEvent(c, r.Body, s.service)
		if err != nil {
			errorWriter.WriteError(c, w, 4, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, myhttp.SuccessResponse{Message: "Event processed"})
	}
}
